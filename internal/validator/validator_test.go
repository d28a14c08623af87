package validator

import (
	"errors"
	"strings"
	"testing"
)

type sampleRequest struct {
	Name  string   `validate:"required"`
	Email string   `validate:"required,email"`
	Tags  []string `validate:"required"`
}

func TestValidate_PassesCompleteStruct(t *testing.T) {
	v := New()
	req := sampleRequest{Name: "asha", Email: "asha@example.com", Tags: []string{"go"}}
	if err := v.Validate(req); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_EmptySliceSatisfiesRequired(t *testing.T) {
	// required on a slice rejects nil but accepts a non-nil empty slice.
	v := New()
	req := sampleRequest{Name: "asha", Email: "asha@example.com", Tags: []string{}}
	if err := v.Validate(req); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_NilSliceFailsRequired(t *testing.T) {
	v := New()
	req := sampleRequest{Name: "asha", Email: "asha@example.com"}
	err := v.Validate(req)

	var validationErrors ValidationErrors
	if !errors.As(err, &validationErrors) {
		t.Fatalf("Validate() error = %v, want ValidationErrors", err)
	}
	if len(validationErrors) != 1 {
		t.Fatalf("got %d errors, want 1", len(validationErrors))
	}
	if validationErrors[0].Field != "tags" {
		t.Errorf("Field = %q, want tags", validationErrors[0].Field)
	}
	if validationErrors[0].Rule != "required" {
		t.Errorf("Rule = %q, want required", validationErrors[0].Rule)
	}
}

func TestValidate_ReportsEveryFailedField(t *testing.T) {
	v := New()
	err := v.Validate(sampleRequest{Email: "not-an-email", Tags: []string{"x"}})

	var validationErrors ValidationErrors
	if !errors.As(err, &validationErrors) {
		t.Fatalf("Validate() error = %v, want ValidationErrors", err)
	}
	if len(validationErrors) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(validationErrors), validationErrors)
	}

	byField := map[string]ValidationError{}
	for _, ve := range validationErrors {
		byField[ve.Field] = ve
	}
	if ve, ok := byField["name"]; !ok || ve.Message != "this field is required" {
		t.Errorf("name error = %+v, want required message", ve)
	}
	if ve, ok := byField["email"]; !ok || ve.Message != "must be a valid email address" {
		t.Errorf("email error = %+v, want email message", ve)
	}
}

func TestValidationErrors_ErrorJoinsFields(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "this field is required"},
		{Field: "email", Message: "must be a valid email address"},
	}
	msg := errs.Error()
	if !strings.Contains(msg, "name:") || !strings.Contains(msg, "email:") {
		t.Errorf("Error() = %q, want both fields mentioned", msg)
	}
}
