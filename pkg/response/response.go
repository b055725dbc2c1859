package response

import (
	"errors"
)

type Error struct {
	Code  int
	Err   error
	Field string
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{Code: code, Err: errors.New(err)}
}

// NewFieldError is NewError for failures caused by one input field.
func NewFieldError(code int, field string, err string) error {
	return &Error{Code: code, Err: errors.New(err), Field: field}
}
