package advice

import (
	"fmt"
	"strings"
)

// MissingFieldError reports a required field absent from the document.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("advice: required field %q is missing", e.Field)
}

// InvalidEnumValueError reports an enumerated field carrying a value outside
// its closed set.
type InvalidEnumValueError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("advice: field %q has invalid value %q (allowed: %s)",
		e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// RangeError reports a numeric field outside its declared range.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("advice: field %q value %g is outside range [%g, %g]",
		e.Field, e.Value, e.Min, e.Max)
}

// prefixField rewrites the field name on a validation error so that errors
// from nested values carry their full path (e.g. "action_items[0].title").
func prefixField(err error, prefix string) error {
	switch e := err.(type) {
	case *MissingFieldError:
		e.Field = prefix + "." + e.Field
	case *InvalidEnumValueError:
		e.Field = prefix + "." + e.Field
	case *RangeError:
		e.Field = prefix + "." + e.Field
	}
	return err
}
