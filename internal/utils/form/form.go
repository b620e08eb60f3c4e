// Package form turns a raw request mapping (query string, form body or a
// flattened JSON object) into a typed request struct.
//
// Fields are bound by their `form` tag. A field is required unless the tag
// carries the omitempty option, in which case an absent or empty value leaves
// it untouched. Conversion errors and `validate` constraint failures are
// collected for every field before returning, so a single response reports
// all offending fields at once.
package form

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

const (
	MsgRequired       = "This field is required."
	MsgInvalidInteger = "A valid integer is required."
	MsgInvalidNumber  = "A valid number is required."
	MsgInvalidDate    = "Date has wrong format. Use one of these formats instead: YYYY[-MM[-DD]]."
	MsgInvalidTime    = "Time has wrong format. Use one of these formats instead: hh:mm[:ss[.uuuuuu]]."
	MsgBlank          = "This field may not be blank."
	MsgInvalidEmail   = "Enter a valid email address."

	msgMaxLength = "Ensure this field has no more than %s characters."
)

var (
	dateType = reflect.TypeOf(datatypes.Date{})
	timeType = reflect.TypeOf(datatypes.Time(0))

	ErrInvalidTarget = errors.New("form: target must be a non-nil pointer to a struct")
)

// Errors maps a field name to its violation messages.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], " ")))
	}
	return strings.Join(parts, "; ")
}

type Binder struct {
	validate *validator.Validate
}

// NewBinder returns a binder that runs validate on successfully converted
// fields. validate may be nil, in which case only conversion is performed.
func NewBinder(validate *validator.Validate) *Binder {
	return &Binder{validate: validate}
}

// Bind fills dst from values. It returns Errors when any field is missing or
// invalid.
func (b *Binder) Bind(values url.Values, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	rv = rv.Elem()
	rt := rv.Type()

	errs := Errors{}
	var failed []string

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		tag, ok := sf.Tag.Lookup("form")
		if !ok || tag == "-" || !sf.IsExported() {
			continue
		}
		name, optional := parseTag(tag, sf.Name)

		raw, present := lookup(values, name)
		if present && optional && strings.TrimSpace(raw) == "" {
			present = false
		}
		if !present {
			if !optional {
				errs.Add(name, MsgRequired)
				failed = append(failed, sf.Name)
			}
			continue
		}

		if msg := setField(rv.Field(i), raw); msg != "" {
			errs.Add(name, msg)
			failed = append(failed, sf.Name)
		}
	}

	if b.validate != nil {
		if err := b.validate.StructExcept(dst, failed...); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				return err
			}
			for _, fe := range verrs {
				errs.Add(fe.Field(), translate(fe))
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func parseTag(tag, fallback string) (string, bool) {
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = fallback
	}
	return name, opts == "omitempty"
}

// lookup returns the last value submitted for key.
func lookup(values url.Values, key string) (string, bool) {
	vs, ok := values[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// setField converts raw into the field's type and returns a violation
// message on failure.
func setField(field reflect.Value, raw string) string {
	if field.Kind() == reflect.Pointer {
		elem := reflect.New(field.Type().Elem())
		if msg := setField(elem.Elem(), raw); msg != "" {
			return msg
		}
		field.Set(elem)
		return ""
	}

	switch field.Type() {
	case dateType:
		d, ok := ParseDate(raw)
		if !ok {
			return MsgInvalidDate
		}
		field.Set(reflect.ValueOf(d))
		return ""
	case timeType:
		t, ok := ParseTime(raw)
		if !ok {
			return MsgInvalidTime
		}
		field.Set(reflect.ValueOf(t))
		return ""
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(strings.TrimSpace(raw))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := ParseInteger(raw)
		if !ok || field.OverflowInt(n) {
			return MsgInvalidInteger
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := ParseInteger(raw)
		if !ok {
			return MsgInvalidInteger
		}
		// Unsigned fields hold row ids. A negative id is a valid integer
		// that matches no row, and no auto-increment key is 0.
		if n < 0 {
			n = 0
		}
		if field.OverflowUint(uint64(n)) {
			return MsgInvalidInteger
		}
		field.SetUint(uint64(n))
	case reflect.Float32, reflect.Float64:
		f, ok := ParseNumber(raw)
		if !ok {
			return MsgInvalidNumber
		}
		field.SetFloat(f)
	default:
		return fmt.Sprintf("Unsupported field type %s.", field.Type())
	}
	return ""
}

func translate(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return MsgBlank
	case "max":
		return fmt.Sprintf(msgMaxLength, fe.Param())
	case "emailaddr", "email":
		return MsgInvalidEmail
	default:
		return fe.Error()
	}
}
