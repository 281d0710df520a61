package enrich

import (
	"errors"
)

// TransientError marks a transport-level failure that may succeed on retry.
type TransientError struct {
	err error
}

func (e *TransientError) Error() string {
	return e.err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.err
}

func NewTransientError(err error) error {
	return &TransientError{err: err}
}

func IsTransient(err error) bool {
	var transient *TransientError
	return errors.As(err, &transient)
}

var (
	ErrNoJSON        = errors.New("no json object in response")
	ErrMissingFields = errors.New("response is missing title or summary")
	ErrEmptyResponse = errors.New("empty response from model")
)
