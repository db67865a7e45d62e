package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	simple := NewDomainErrorSimple("NOT_FOUND", "Consultation request not found", http.StatusNotFound)
	if got := simple.ToHTTPError(); got.Success || got.Message != "Consultation request not found" || got.Error != "" {
		t.Fatalf("unexpected http error: %+v", got)
	}
	if simple.Error() != "NOT_FOUND: Consultation request not found" {
		t.Fatalf("unexpected error text: %s", simple.Error())
	}

	cause := errors.New("connection refused")
	wrapped := NewDomainError("STORAGE_ERROR", "Failed to send message", cause, http.StatusInternalServerError)
	if got := wrapped.ToHTTPError(); got.Error != "connection refused" {
		t.Fatalf("expected cause text, got %+v", got)
	}
	if !errors.Is(wrapped, cause) {
		t.Fatalf("expected unwrap to cause")
	}
}
