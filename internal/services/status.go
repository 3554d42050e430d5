package services

import (
	"errors"

	mango_errors "mangosense/pkg/errors"
)

// HTTPStatus maps service errors to response status codes. Duplicate
// accounts surface inside a 400 validation list rather than as 409, matching
// the mobile client's expectations.
func HTTPStatus(err error) int {
	var v mango_errors.ValidationErrors
	if errors.As(err, &v) {
		return 400
	}

	switch {
	case errors.Is(err, mango_errors.ErrInvalidInput),
		errors.Is(err, mango_errors.ErrInvalidEmail),
		errors.Is(err, mango_errors.ErrTooLarge),
		errors.Is(err, mango_errors.ErrInvalidImage),
		errors.Is(err, mango_errors.ErrAlreadyExists):
		return 400
	case errors.Is(err, mango_errors.ErrUnauthorized),
		errors.Is(err, mango_errors.ErrInactiveAccount):
		return 401
	case errors.Is(err, mango_errors.ErrForbidden):
		return 403
	case errors.Is(err, mango_errors.ErrNotFound):
		return 404
	case errors.Is(err, mango_errors.ErrRateLimited):
		return 429
	case errors.Is(err, mango_errors.ErrModelUnavailable):
		return 500
	default:
		return 500
	}
}
