package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// FieldError describes one request field that failed validation.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is returned when a request body does not match its schema.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid request body"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return "invalid request body: " + strings.Join(parts, ", ")
}

// StatusCode implements the status lookup used by pkg/response.
func (e *ValidationError) StatusCode() int {
	return http.StatusUnprocessableEntity
}

// NewValidationError converts a binding error into a ValidationError.
// Errors that are not field-level (e.g. malformed JSON) are reported against "body".
func NewValidationError(err error) *ValidationError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]FieldError, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, FieldError{Field: fieldName(fe), Reason: fe.Tag()})
		}
		return &ValidationError{Fields: fields}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &ValidationError{Fields: []FieldError{{Field: typeErr.Field, Reason: "type"}}}
	}

	return &ValidationError{Fields: []FieldError{{Field: "body", Reason: err.Error()}}}
}

// NewFieldError builds a single-field ValidationError.
func NewFieldError(field, reason string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}

// ConfigureValidator registers the notblank rule on v and makes it report fields by
// their json tag instead of the Go field name.
func ConfigureValidator(v *validator.Validate) error {
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return fmt.Errorf("register notblank: %w", err)
	}
	registerJSONTagNames(v)
	return nil
}

func registerJSONTagNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// fieldName prefers the json tag name registered on the validator, falling back to the Go name.
func fieldName(fe validator.FieldError) string {
	if name := fe.Field(); name != "" {
		return name
	}
	return fe.StructField()
}
