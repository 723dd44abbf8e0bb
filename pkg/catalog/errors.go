package catalog

import "errors"

// ValidationError is returned when a required album field is missing.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " must be provided in request body"
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
