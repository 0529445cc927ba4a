package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fixpoint/repairdesk/internal/api/handler"
	"github.com/fixpoint/repairdesk/internal/core/domain"
	"github.com/fixpoint/repairdesk/internal/core/token"
)

type fakeUsers struct {
	users map[string]*domain.User
}

func (f *fakeUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUsers) Update(_ context.Context, u *domain.User) error {
	f.users[u.ID] = u
	return nil
}

type fakeRevoker struct {
	revoked map[string]bool
}

func (f *fakeRevoker) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	f.revoked[tokenID] = true
	return nil
}

func (f *fakeRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return f.revoked[tokenID], nil
}

func authFixture() (*token.Issuer, *fakeUsers, *fakeRevoker) {
	issuer := token.NewIssuer("secret", time.Hour)
	users := &fakeUsers{users: map[string]*domain.User{
		"u1": {ID: "u1", Email: "alice@example.com", Role: domain.RoleAdmin},
	}}
	return issuer, users, &fakeRevoker{revoked: make(map[string]bool)}
}

func runAuth(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, *domain.Principal, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var principal *domain.Principal
	called := false
	h := mw(func(c echo.Context) error {
		called = true
		principal, _ = c.Get(handler.PrincipalKey).(*domain.Principal)
		return c.NoContent(http.StatusOK)
	})

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, principal, called
}

func TestAuth_ValidToken(t *testing.T) {
	issuer, users, revoker := authFixture()
	signed, _, err := issuer.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec, principal, called := runAuth(t, Auth(issuer, users, revoker), "Bearer "+signed)
	if !called {
		t.Fatalf("next not called, status %d", rec.Code)
	}
	if principal == nil {
		t.Fatalf("principal not injected")
	}
	if principal.UserID != "u1" || principal.Role != domain.RoleAdmin {
		t.Fatalf("unexpected principal: %+v", principal)
	}
	if principal.TokenID == "" {
		t.Fatalf("principal missing token id")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	issuer, users, revoker := authFixture()

	rec, _, called := runAuth(t, Auth(issuer, users, revoker), "")
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidHeaderFormat(t *testing.T) {
	issuer, users, revoker := authFixture()

	rec, _, called := runAuth(t, Auth(issuer, users, revoker), "Token abc")
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	_, users, revoker := authFixture()
	expiredIssuer := token.NewIssuer("secret", -time.Minute)
	signed, _, err := expiredIssuer.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	verifier := token.NewIssuer("secret", time.Hour)
	rec, _, called := runAuth(t, Auth(verifier, users, revoker), "Bearer "+signed)
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_RevokedToken(t *testing.T) {
	issuer, users, revoker := authFixture()
	signed, _, err := issuer.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := issuer.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	revoker.revoked[claims.TokenID] = true

	rec, _, called := runAuth(t, Auth(issuer, users, revoker), "Bearer "+signed)
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_UnknownSubject(t *testing.T) {
	issuer, users, revoker := authFixture()
	signed, _, err := issuer.Issue("deleted-user")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec, _, called := runAuth(t, Auth(issuer, users, revoker), "Bearer "+signed)
	if called {
		t.Fatalf("next should not run")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
