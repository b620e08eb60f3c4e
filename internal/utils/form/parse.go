package form

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"
)

var (
	trailingZeroFraction = regexp.MustCompile(`\.0*\s*$`)
	timeOfDay            = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})(?::(\d{1,2})(?:[.,](\d{1,6})\d{0,6})?)?$`)
)

const maxIntegerLength = 1000

// ParseInteger accepts base-10 integers, tolerating surrounding whitespace
// and a zero fraction such as "12.00".
func ParseInteger(raw string) (int64, bool) {
	if len(raw) > maxIntegerLength {
		return 0, false
	}
	s := strings.TrimSpace(trailingZeroFraction.ReplaceAllString(raw, ""))
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseNumber accepts finite decimal numbers.
func ParseNumber(raw string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ParseDate accepts ISO dates, YYYY-MM-DD, with one or two digit month and day.
func ParseDate(raw string) (datatypes.Date, bool) {
	t, err := time.Parse("2006-1-2", strings.TrimSpace(raw))
	if err != nil {
		return datatypes.Date{}, false
	}
	return datatypes.Date(t), true
}

// ParseTime accepts hh:mm[:ss[.uuuuuu]]. Fraction digits past the sixth are
// dropped.
func ParseTime(raw string) (datatypes.Time, bool) {
	m := timeOfDay.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second := 0
	if m[3] != "" {
		second, _ = strconv.Atoi(m[3])
	}
	micro := 0
	if m[4] != "" {
		micro, _ = strconv.Atoi(m[4] + strings.Repeat("0", 6-len(m[4])))
	}

	if hour > 23 || minute > 59 || second > 59 {
		return 0, false
	}
	return datatypes.NewTime(hour, minute, second, micro*int(time.Microsecond)), true
}

// IsEmail reports whether s has exactly one @, a non-empty local part and a
// dotted domain.
func IsEmail(s string) bool {
	if strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}
	return !strings.HasPrefix(domain, ".") && !strings.Contains(domain, "..")
}
