package errors_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	pkgErrors "calendar-agent/pkg/errors"
)

type sampleReq struct {
	Summary string `json:"summary" validate:"required"`
	Day     string `json:"day"     validate:"required"`
}

func TestNewValidationError(t *testing.T) {
	t.Run("Validator errors list every field", func(t *testing.T) {
		v := validator.New()
		if err := pkgErrors.ConfigureValidator(v); err != nil {
			t.Fatal(err)
		}
		err := v.Struct(sampleReq{})
		if err == nil {
			t.Fatal("expected validation failure")
		}

		ve := pkgErrors.NewValidationError(err)
		if len(ve.Fields) != 2 {
			t.Fatalf("expected 2 fields, got %d", len(ve.Fields))
		}
		if ve.Fields[0].Field != "summary" || ve.Fields[1].Field != "day" {
			t.Errorf("expected json field names, got %+v", ve.Fields)
		}
		if ve.Fields[0].Reason != "required" {
			t.Errorf("expected reason required, got %s", ve.Fields[0].Reason)
		}
		if ve.StatusCode() != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d", ve.StatusCode())
		}
	})

	t.Run("Whitespace-only value fails notblank", func(t *testing.T) {
		v := validator.New()
		if err := pkgErrors.ConfigureValidator(v); err != nil {
			t.Fatal(err)
		}
		type titled struct {
			Summary string `json:"summary" validate:"required,notblank"`
		}

		ve := pkgErrors.NewValidationError(v.Struct(titled{Summary: "  \t "}))
		if len(ve.Fields) != 1 || ve.Fields[0].Field != "summary" || ve.Fields[0].Reason != "notblank" {
			t.Errorf("expected summary notblank, got %+v", ve.Fields)
		}
		if err := v.Struct(titled{Summary: " Standup "}); err != nil {
			t.Errorf("padded summary should pass: %v", err)
		}
	})

	t.Run("Type mismatch names the field", func(t *testing.T) {
		var req sampleReq
		err := json.Unmarshal([]byte(`{"summary": 12}`), &req)
		ve := pkgErrors.NewValidationError(err)
		if ve.Fields[0].Field != "summary" {
			t.Errorf("expected summary, got %s", ve.Fields[0].Field)
		}
	})

	t.Run("Malformed body falls back to body", func(t *testing.T) {
		var req sampleReq
		err := json.Unmarshal([]byte(`{`), &req)
		ve := pkgErrors.NewValidationError(err)
		if ve.Fields[0].Field != "body" {
			t.Errorf("expected body, got %s", ve.Fields[0].Field)
		}
		if !strings.HasPrefix(ve.Error(), "invalid request body") {
			t.Errorf("unexpected message: %s", ve.Error())
		}
	})
}

func TestNewHTTPError(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusConflict, "conflict")
	if err.Error() != "conflict" || err.StatusCode != http.StatusConflict || err.Code != http.StatusConflict {
		t.Errorf("unexpected error: %+v", err)
	}
}
