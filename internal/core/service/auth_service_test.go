package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fixpoint/repairdesk/internal/core/domain"
	"github.com/fixpoint/repairdesk/internal/core/ports"
	"github.com/fixpoint/repairdesk/internal/core/token"
)

type stubAuthRepo struct {
	users map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

type stubRevoker struct {
	revoked map[string]bool
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]bool)}
}

func (r *stubRevoker) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	r.revoked[tokenID] = true
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return r.revoked[tokenID], nil
}

func newTestAuthService(repo ports.AuthRepository, revoker ports.TokenRevoker) *AuthService {
	return NewAuthService(repo, token.NewIssuer("secret", time.Hour), revoker, zerolog.Nop())
}

func TestAuthService_Register_DefaultsRoleUser(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo, newStubRevoker())

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if user.PasswordHash == "correct-horse" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct-horse")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo, newStubRevoker())

	in := ports.RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "pass-word-1"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(newStubAuthRepo(), newStubRevoker())

	if _, err := svc.Login(context.Background(), "nobody@example.com", "whatever"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo, newStubRevoker())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Carol", Email: "carol@example.com", Password: "right-password"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(context.Background(), "carol@example.com", "wrong-password"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	issuer := token.NewIssuer("secret", time.Hour)
	svc := NewAuthService(repo, issuer, newStubRevoker(), zerolog.Nop())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Dave", Email: "dave@example.com", Password: "s3cret-pass"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := svc.Login(context.Background(), "DAVE@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Token == "" || res.ExpiresIn != 3600 {
		t.Fatalf("unexpected result: token=%q expires_in=%d", res.Token, res.ExpiresIn)
	}

	claims, err := issuer.Verify(res.Token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.UserID != res.User.ID {
		t.Fatalf("token subject %q does not match user %q", claims.UserID, res.User.ID)
	}
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	revoker := newStubRevoker()
	svc := newTestAuthService(newStubAuthRepo(), revoker)

	principal := &domain.Principal{UserID: "u1", TokenID: "tok-1"}
	if err := svc.Logout(context.Background(), principal); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if revoked, _ := revoker.IsRevoked(context.Background(), "tok-1"); !revoked {
		t.Fatalf("expected token to be revoked")
	}
}

func TestAuthService_UpdateProfile_OnlyNameAndPhone(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo, newStubRevoker())

	user, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Erin", Email: "erin@example.com", Password: "pass-word-1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	originalHash := repo.users[user.ID].PasswordHash

	updated, err := svc.UpdateProfile(context.Background(), user.ID, ports.UpdateProfileInput{Name: "Erin B", Phone: "555-0101"})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Name != "Erin B" || updated.Phone != "555-0101" {
		t.Fatalf("profile not updated: %+v", updated)
	}
	if updated.Email != "erin@example.com" {
		t.Fatalf("email changed unexpectedly: %q", updated.Email)
	}
	if repo.users[user.ID].PasswordHash != originalHash {
		t.Fatalf("password hash changed by profile update")
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := newTestAuthService(repo, newStubRevoker())

	user, err := svc.Register(context.Background(), ports.RegisterInput{Name: "Fay", Email: "fay@example.com", Password: "old-password"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.ChangePassword(context.Background(), user.ID, "not-the-old-one", "new-password-1"); err != domain.ErrOldPasswordMismatch {
		t.Fatalf("expected ErrOldPasswordMismatch, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), user.ID, "old-password", "new-password-1"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	if _, err := svc.Login(context.Background(), "fay@example.com", "old-password"); err != domain.ErrInvalidCredentials {
		t.Fatalf("old password still accepted: %v", err)
	}
	if _, err := svc.Login(context.Background(), "fay@example.com", "new-password-1"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}
