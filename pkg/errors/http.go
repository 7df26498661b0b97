package errors

import "net/http"

// HTTPError is an error that already knows which status code it maps to.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError. Code defaults to the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	ErrBadGateway          = NewHTTPError(http.StatusBadGateway, "Upstream calendar request failed")
)
