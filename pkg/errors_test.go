package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" || body.Details != nil {
		t.Fatalf("unexpected body %+v", body)
	}

	simple := NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	withDetails := simple.WithDetails(map[string]string{"step_id": "ownership"})
	if simple.Details != nil {
		t.Fatalf("WithDetails must not modify the receiver")
	}
	if withDetails.ToHTTPError().Details["step_id"] != "ownership" || withDetails.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected error %+v", withDetails)
	}
	if simple.Error() != "QUOTE_NOT_FOUND: Quote not found" {
		t.Fatalf("unexpected message %q", simple.Error())
	}
}
