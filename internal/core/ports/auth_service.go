package ports

import (
	"context"

	"github.com/fixpoint/repairdesk/internal/core/domain"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

type LoginResult struct {
	User      *domain.User
	Token     string
	ExpiresIn int64
}

// UpdateProfileInput carries the only fields a user may change on their own
// profile. Email and password deliberately have no place here.
type UpdateProfileInput struct {
	Name  string
	Phone string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, principal *domain.Principal) error
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}
