package mango_errors

import (
	"errors"
	"strings"
)

// Common errors
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrInactiveAccount  = errors.New("account is deactivated")
	ErrTooLarge         = errors.New("file too large")
	ErrInvalidImage     = errors.New("invalid image file")
	ErrModelUnavailable = errors.New("ML model not loaded properly")
	ErrRateLimited      = errors.New("rate limited")
)

// ValidationErrors collects every violated rule for a single request so the
// client can show them all at once instead of failing on the first one.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}

// AsValidationErrors unwraps err into a ValidationErrors list if it is one.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
