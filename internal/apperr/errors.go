package apperr

import "errors"

// ValidationError reports caller input rejected before any work was done.
// Field names the offending query parameter or flag.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Public is the text safe to show to the caller. The wrapped cause is left out.
func (e *ValidationError) Public() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Public() + ": " + e.Err.Error()
	}
	return e.Public()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

func NewValidationWrap(field, msg string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: msg, Err: err}
}

// AsValidation finds a ValidationError anywhere in err's chain.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
