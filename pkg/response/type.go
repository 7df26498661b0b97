package response

import pkgErrors "calendar-agent/pkg/errors"

// Resp is the standard JSON envelope for probe responses and every error.
type Resp struct {
	ErrorCode int                    `json:"error_code"`
	Message   string                 `json:"message"`
	Data      any                    `json:"data,omitempty"`
	Errors    []pkgErrors.FieldError `json:"errors,omitempty"`
}
