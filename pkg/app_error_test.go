package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPErrorHidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:5432: connection refused")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	body := appErr.ToHTTPError()
	if body.ErrorCode != "INTERNAL_ERROR" || body.ErrorDescription != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected cause to be unwrappable")
	}
}

func TestAppError_Error(t *testing.T) {
	simple := NewDomainErrorSimple("MEASURE_NOT_FOUND", "Measure not found", http.StatusNotFound)
	if simple.Error() != "MEASURE_NOT_FOUND: Measure not found" {
		t.Fatalf("unexpected message: %s", simple.Error())
	}
	if simple.Unwrap() != nil {
		t.Fatalf("expected nil cause")
	}

	wrapped := NewDomainError("INTERNAL_ERROR", "oops", errors.New("db"), http.StatusInternalServerError)
	if wrapped.Error() != "INTERNAL_ERROR: oops: db" {
		t.Fatalf("unexpected message: %s", wrapped.Error())
	}
}
