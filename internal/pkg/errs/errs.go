// Package errs carries the error taxonomy shared by handlers and the
// repository: validation, auth, access-denied and not-found failures are
// terminal and surfaced to the caller, everything else is internal and
// surfaced as an opaque failure.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrAuth         = errors.New("unauthorized")
	ErrAccessDenied = errors.New("access denied")
	ErrNotFound     = errors.New("not found")
)

func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the text safe to surface to the caller. Access-denied
// responses stay generic so probing cannot confirm a conversation exists,
// and internal failures never leak store detail.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrAccessDenied):
		return "access denied"
	case errors.Is(err, ErrValidation), errors.Is(err, ErrAuth), errors.Is(err, ErrNotFound):
		return err.Error()
	default:
		return "internal error"
	}
}
