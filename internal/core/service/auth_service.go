package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fixpoint/repairdesk/internal/core/domain"
	"github.com/fixpoint/repairdesk/internal/core/ports"
	"github.com/fixpoint/repairdesk/internal/core/token"
)

// AuthService implements registration, login, logout and account self-service.
type AuthService struct {
	repo    ports.AuthRepository
	issuer  *token.Issuer
	revoker ports.TokenRevoker
	logger  zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, issuer *token.Issuer, revoker ports.TokenRevoker, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, revoker: revoker, logger: logger}
}

// Register creates a new account. The role is always "user"; elevated roles
// are only ever assigned by an admin, never self-selected at registration.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
		Phone:        strings.TrimSpace(in.Phone),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies credentials and mints a bearer token. An unknown email and a
// wrong password surface as different errors so the handler can key the
// failure to the right field.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}

	if !verifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	signed, expiresIn, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return &ports.LoginResult{User: user, Token: signed, ExpiresIn: expiresIn}, nil
}

// Logout revokes the presented token for the remainder of its lifetime.
func (s *AuthService) Logout(ctx context.Context, principal *domain.Principal) error {
	ttl := s.issuer.TTL()
	if err := s.revoker.Revoke(ctx, principal.TokenID, ttl); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", principal.UserID).Msg("user logged out")
	return nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateProfile changes name and phone only. Email and password are not
// reachable through this operation.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		user.Name = name
	}
	if phone := strings.TrimSpace(in.Phone); phone != "" {
		user.Phone = phone
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password before accepting a new one.
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !verifyPassword(oldPassword, user.PasswordHash) {
		return domain.ErrOldPasswordMismatch
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", userID).Msg("password changed")
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyPassword reports whether plaintext matches digest. A mismatch is
// never an error, just false.
func verifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
