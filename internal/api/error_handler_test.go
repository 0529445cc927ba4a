package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fixpoint/repairdesk/internal/core/domain"
)

func invoke(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	return rec, body
}

func TestErrorHandler_ValidationError(t *testing.T) {
	rec, body := invoke(t, domain.NewValidationError("password", "password must be at least 8 characters"))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var fields map[string][]string
	if err := json.Unmarshal(body["errors"], &fields); err != nil {
		t.Fatalf("errors is not an object: %v", err)
	}
	if len(fields["password"]) != 1 {
		t.Fatalf("expected password message, got %+v", fields)
	}
}

func TestErrorHandler_AuthSplit(t *testing.T) {
	rec, _ := invoke(t, domain.ErrUnauthenticated)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec, _ = invoke(t, domain.ErrForbidden)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestErrorHandler_DuplicateEmail(t *testing.T) {
	rec, body := invoke(t, domain.ErrUserExists)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var fields map[string][]string
	if err := json.Unmarshal(body["errors"], &fields); err != nil {
		t.Fatalf("errors is not an object: %v", err)
	}
	if _, ok := fields["email"]; !ok {
		t.Fatalf("expected error keyed by email, got %+v", fields)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := invoke(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if string(body["errors"]) != "{}" {
		t.Fatalf("expected empty errors object, got %s", body["errors"])
	}
}

func TestErrorHandler_UnexpectedErrorIsSanitized(t *testing.T) {
	rec, body := invoke(t, errors.New("pq: connection refused to 10.0.0.3"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var msg string
	if err := json.Unmarshal(body["message"], &msg); err != nil {
		t.Fatalf("message missing: %v", err)
	}
	if msg != "internal server error" {
		t.Fatalf("internal cause leaked: %q", msg)
	}
}
