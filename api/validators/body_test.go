package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/resumehub/resumehub-backend/pkg/errors"
)

type registerBody struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
}

func decodeInto(t *testing.T, payload string) error {
	t.Helper()
	r := httptest.NewRequest("POST", "/", strings.NewReader(payload))
	var body registerBody
	return DecodeJSONBody(r, &body)
}

func TestDecodeJSONBodyValid(t *testing.T) {
	err := decodeInto(t, `{"username":"jordan1","email":"jordan@example.com"}`)
	if err != nil {
		t.Fatalf("expected valid body, got %v", err)
	}
}

func TestDecodeJSONBodyMalformedJSON(t *testing.T) {
	err := decodeInto(t, `{"username":`)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyUnknownField(t *testing.T) {
	err := decodeInto(t, `{"username":"jordan1","email":"jordan@example.com","admin":true}`)
	if err == nil {
		t.Fatal("expected unknown field to be rejected")
	}
}

func TestDecodeJSONBodyFieldMessages(t *testing.T) {
	err := decodeInto(t, `{"username":"j!","email":"nope"}`)
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed validation error, got %v", err)
	}

	details := typed.Details()
	if len(details) == 0 {
		t.Fatal("expected field-level details")
	}
	joined := strings.Join(details, "; ")
	if !strings.Contains(joined, "username") {
		t.Fatalf("expected username detail, got %q", joined)
	}
	if !strings.Contains(joined, "email must be a valid email") {
		t.Fatalf("expected email detail, got %q", joined)
	}
}

func TestPhoneRule(t *testing.T) {
	if err := decodeInto(t, `{"username":"jordan1","email":"j@example.com","phone":"+14155550100"}`); err != nil {
		t.Fatalf("expected valid phone, got %v", err)
	}

	err := decodeInto(t, `{"username":"jordan1","email":"j@example.com","phone":"0123"}`)
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected phone validation error, got %v", err)
	}
	if !strings.Contains(strings.Join(typed.Details(), " "), "phone") {
		t.Fatalf("expected phone detail, got %v", typed.Details())
	}
}

func TestValidateStructDirect(t *testing.T) {
	body := registerBody{Username: "jordan1", Email: "jordan@example.com"}
	if err := ValidateStruct(&body); err != nil {
		t.Fatalf("expected struct to validate, got %v", err)
	}

	body.Username = "ab"
	if err := ValidateStruct(&body); err == nil {
		t.Fatal("expected min length violation")
	}
}
