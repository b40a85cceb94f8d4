package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devportfolio/portfolio-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	return rec.Code, body["error"]
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusConflict},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrProjectNotFound, http.StatusNotFound},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		if code, _ := renderError(t, tc.err); code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
	}
}

func TestErrorHandler_ValidationErrorNamesField(t *testing.T) {
	code, msg := renderError(t, domain.NewValidationError("title", "must be at most %d characters", 100))
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != "title must be at most 100 characters" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("find project"), domain.ErrProjectNotFound)
	if code, _ := renderError(t, wrapped); code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped error, got %d", code)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != "invalid payload" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, msg := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}
