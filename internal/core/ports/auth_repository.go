package ports

import (
	"context"

	"github.com/fixpoint/repairdesk/internal/core/domain"
)

// AuthRepository defines the persistence interface for user accounts.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
