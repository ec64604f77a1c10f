package apierrors

import (
	"errors"
	"net/http"

	"hotel-booking-predictor/services"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// FromError maps service errors to HTTP errors
func FromError(err error) *HTTPError {
	var httpErr *HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, services.ErrBusy):
		return NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrTooManySessions):
		return NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, services.ErrUnknownField):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
