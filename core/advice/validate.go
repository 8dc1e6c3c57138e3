package advice

import "fmt"

// Shared building blocks for the per-record Validate implementations.

// indexed renders a list element's field path prefix, e.g. "action_items[2]".
func indexed(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}

func requireString(field, value string) error {
	if value == "" {
		return &MissingFieldError{Field: field}
	}
	return nil
}

// requireRange checks a numeric field declared with an inclusive range. A nil
// pointer means the field was absent from the document.
func requireRange(field string, value *float64, min, max float64) error {
	if value == nil {
		return &MissingFieldError{Field: field}
	}
	if *value < min || *value > max {
		return &RangeError{Field: field, Value: *value, Min: min, Max: max}
	}
	return nil
}

func requireNonNegative(field string, value *float64) error {
	if value == nil {
		return &MissingFieldError{Field: field}
	}
	if *value < 0 {
		return &RangeError{Field: field, Value: *value, Min: 0, Max: maxFinite}
	}
	return nil
}

// maxFinite stands in for "no upper bound" in range reports.
const maxFinite = 1e308

// firstError returns the first non-nil error among checks.
func firstError(checks ...error) error {
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}
