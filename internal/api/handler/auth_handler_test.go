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

	"github.com/fixpoint/repairdesk/internal/core/domain"
	"github.com/fixpoint/repairdesk/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	logoutFn   func(ctx context.Context, principal *domain.Principal) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, principal *domain.Principal) error {
	return s.logoutFn(ctx, principal)
}

func (s *stubAuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubAuthService) UpdateProfile(ctx context.Context, userID string, in ports.UpdateProfileInput) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubAuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	return domain.ErrUserNotFound
}

type stubResetService struct {
	requestFn func(ctx context.Context, email string) error
	consumeFn func(ctx context.Context, email, token, password string) error
}

func (s *stubResetService) Request(ctx context.Context, email string) error {
	return s.requestFn(ctx, email)
}

func (s *stubResetService) Consume(ctx context.Context, email, token, password string) error {
	return s.consumeFn(ctx, email, token, password)
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Name != "Alice" || in.Email != "alice@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "u1", Name: in.Name, Email: in.Email, Role: domain.RoleUser}, nil
		},
	}
	handler := NewAuthHandler(stub, &stubResetService{})

	c, rec := newAuthContext(t, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"hunter2hunter2","password_confirmation":"hunter2hunter2"}`)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %+v", resp)
	}
	user, ok := data["user"].(map[string]any)
	if !ok || user["email"] != "alice@example.com" || user["role"] != domain.RoleUser {
		t.Fatalf("unexpected user payload: %+v", data)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatal("password hash leaked into the response")
	}
}

func TestAuthHandler_Register_ValidationError(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, &stubResetService{})

	c, _ := newAuthContext(t, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"not-an-email","password":"short","password_confirmation":"short"}`)

	err := handler.Register(c)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Fields["email"]) == 0 || len(verr.Fields["password"]) == 0 {
		t.Fatalf("expected email and password failures, got %+v", verr.Fields)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub, &stubResetService{})

	c, _ := newAuthContext(t, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"hunter2hunter2","password_confirmation":"hunter2hunter2"}`)

	if err := handler.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to surface, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			if email != "alice@example.com" || password != "hunter2hunter2" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.LoginResult{
				User:      &domain.User{ID: "u1", Email: email, Role: domain.RoleAdmin},
				Token:     "token123",
				ExpiresIn: 3600,
			}, nil
		},
	}
	handler := NewAuthHandler(stub, &stubResetService{})

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"hunter2hunter2"}`)

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
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %+v", resp)
	}
	if data["token"] != "token123" || data["expires_in"] != float64(3600) {
		t.Fatalf("unexpected login payload: %+v", data)
	}
}

func TestAuthHandler_Login_UnknownEmail(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewAuthHandler(stub, &stubResetService{})

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"ghost@example.com","password":"whatever1"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown email, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	errs, ok := resp["errors"].(map[string]any)
	if !ok {
		t.Fatalf("expected errors object, got %+v", resp)
	}
	if _, keyed := errs["email"]; !keyed {
		t.Fatalf("expected failure keyed under email, got %+v", errs)
	}
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, &stubResetService{})

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrong-pass"}`)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	errs, ok := resp["errors"].(map[string]any)
	if !ok {
		t.Fatalf("expected errors object, got %+v", resp)
	}
	if _, keyed := errs["password"]; !keyed {
		t.Fatalf("expected failure keyed under password, got %+v", errs)
	}
}

func TestAuthHandler_Logout_RequiresPrincipal(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{}, &stubResetService{})

	c, _ := newAuthContext(t, http.MethodPost, "/auth/logout", "")

	if err := handler.Logout(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthHandler_Logout_RevokesToken(t *testing.T) {
	var revoked *domain.Principal
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, principal *domain.Principal) error {
			revoked = principal
			return nil
		},
	}
	handler := NewAuthHandler(stub, &stubResetService{})

	c, rec := newAuthContext(t, http.MethodPost, "/auth/logout", "")
	c.Set(PrincipalKey, &domain.Principal{UserID: "u1", TokenID: "jti-1"})

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if revoked == nil || revoked.TokenID != "jti-1" {
		t.Fatalf("expected token jti-1 revoked, got %+v", revoked)
	}
}

func TestAuthHandler_RequestReset_AlwaysOK(t *testing.T) {
	stub := &stubResetService{
		requestFn: func(ctx context.Context, email string) error { return nil },
	}
	handler := NewAuthHandler(&stubAuthService{}, stub)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/reset-password",
		`{"email":"alice@example.com"}`)

	if err := handler.RequestReset(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_ConsumeReset_BadToken(t *testing.T) {
	stub := &stubResetService{
		consumeFn: func(ctx context.Context, email, token, password string) error {
			return domain.ErrResetMismatch
		},
	}
	handler := NewAuthHandler(&stubAuthService{}, stub)

	c, _ := newAuthContext(t, http.MethodPut, "/auth/reset-password",
		`{"email":"alice@example.com","token":"deadbeef","password":"hunter2hunter2","password_confirmation":"hunter2hunter2"}`)

	if err := handler.ConsumeReset(c); !errors.Is(err, domain.ErrResetMismatch) {
		t.Fatalf("expected ErrResetMismatch to surface, got %v", err)
	}
}
