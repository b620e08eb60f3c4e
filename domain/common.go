package domain

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

var (
	MessageFailedBodyRequest = "failed to read request body"

	ErrNotFound           = errors.New("record not found")
	ErrMultipleFound      = errors.New("more than one record found")
	ErrIntegrity          = errors.New("integrity constraint violated")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const DateLayout = "2006-01-02"

type (
	// IDRequest is shared by every endpoint addressing a single row by id.
	IDRequest struct {
		ID uint `form:"id"`
	}

	Empty struct{}
)

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

// FormatTime renders a time of day as hh:mm:ss, adding microseconds only
// when present.
func FormatTime(t datatypes.Time) string {
	d := time.Duration(t)
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second
	micros := d / time.Microsecond

	if micros > 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%06d", hours, minutes, seconds, micros)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
