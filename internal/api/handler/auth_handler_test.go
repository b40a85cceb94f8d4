package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/devportfolio/portfolio-api/internal/core/domain"
	"github.com/devportfolio/portfolio-api/internal/core/ports"
)

type stubAccountService struct {
	signupFn func(ctx context.Context, input ports.SignupInput) (*ports.AccountView, error)
	loginFn  func(ctx context.Context, email, password string) (string, *ports.AccountView, error)
	editFn   func(ctx context.Context, accountID string, input ports.EditAccountInput) (*ports.AccountView, error)
	logoutFn func(ctx context.Context, jti string) error
	listFn   func(ctx context.Context) ([]ports.AccountView, error)
}

func (s *stubAccountService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AccountView, error) {
	return s.signupFn(ctx, input)
}

func (s *stubAccountService) Login(ctx context.Context, email, password string) (string, *ports.AccountView, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAccountService) Edit(ctx context.Context, accountID string, input ports.EditAccountInput) (*ports.AccountView, error) {
	return s.editFn(ctx, accountID, input)
}

func (s *stubAccountService) Logout(ctx context.Context, jti string) error {
	return s.logoutFn(ctx, jti)
}

func (s *stubAccountService) ListAccounts(ctx context.Context) ([]ports.AccountView, error) {
	return s.listFn(ctx)
}

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAccountService{
		signupFn: func(ctx context.Context, input ports.SignupInput) (*ports.AccountView, error) {
			if input.Email != "alice@example.com" || input.Name != "Alice" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.AccountView{ID: "u1", Email: input.Email, Name: input.Name, Active: true}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/auth/signup",
		`{"email":"alice@example.com","password":"secret","name":"Alice"}`)

	if err := handler.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "alice@example.com" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
}

func TestAuthHandler_Signup_EmailTaken(t *testing.T) {
	stub := &stubAccountService{
		signupFn: func(ctx context.Context, input ports.SignupInput) (*ports.AccountView, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/auth/signup",
		`{"email":"bob@example.com","password":"pw"}`)

	if err := handler.Signup(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken passthrough, got %v", err)
	}
}

func TestAuthHandler_Signup_InvalidEmail(t *testing.T) {
	stub := &stubAccountService{
		signupFn: func(ctx context.Context, input ports.SignupInput) (*ports.AccountView, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/auth/signup", `{"email":"not-an-email","password":"pw"}`)

	err := handler.Signup(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAccountService{
		loginFn: func(ctx context.Context, email, password string) (string, *ports.AccountView, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &ports.AccountView{ID: "u1", Email: email}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"secret"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_ErrorPassthrough(t *testing.T) {
	stub := &stubAccountService{
		loginFn: func(ctx context.Context, email, password string) (string, *ports.AccountView, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"bad"}`)

	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials passthrough, got %v", err)
	}
}

func TestAuthHandler_Edit_Success(t *testing.T) {
	stub := &stubAccountService{
		editFn: func(ctx context.Context, accountID string, input ports.EditAccountInput) (*ports.AccountView, error) {
			if accountID != "u1" {
				t.Fatalf("unexpected account id: %s", accountID)
			}
			if input.Password == nil || *input.Password != "newpass" {
				t.Fatalf("password not forwarded: %+v", input)
			}
			return &ports.AccountView{ID: accountID}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPut, "/auth/edit", `{"password":"newpass"}`)
	c.Set("user_id", "u1")
	c.Set("jti", "jti_1")

	if err := handler.Edit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Edit_UnknownFieldRejected(t *testing.T) {
	stub := &stubAccountService{
		editFn: func(ctx context.Context, accountID string, input ports.EditAccountInput) (*ports.AccountView, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(http.MethodPut, "/auth/edit", `{"email":"new@example.com"}`)
	c.Set("user_id", "u1")
	c.Set("jti", "jti_1")

	err := handler.Edit(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if !strings.Contains(he.Message.(string), "email") {
		t.Fatalf("rejection should name the field: %v", he.Message)
	}
}

func TestAuthHandler_Edit_MissingIdentity(t *testing.T) {
	handler := NewAuthHandler(&stubAccountService{})

	c, _ := newTestContext(http.MethodPut, "/auth/edit", `{"password":"x"}`)

	err := handler.Edit(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	var revoked string
	stub := &stubAccountService{
		logoutFn: func(ctx context.Context, jti string) error {
			revoked = jti
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/auth/logout", "")
	c.Set("user_id", "u1")
	c.Set("jti", "jti_42")

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if revoked != "jti_42" {
		t.Fatalf("expected jti_42 revoked, got %q", revoked)
	}
}

func TestAuthHandler_ListUsers(t *testing.T) {
	stub := &stubAccountService{
		listFn: func(ctx context.Context) ([]ports.AccountView, error) {
			return []ports.AccountView{{ID: "u1"}, {ID: "u2"}}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/auth/users", "")
	c.Set("user_id", "u1")
	c.Set("jti", "jti_1")

	if err := handler.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(resp))
	}
}
