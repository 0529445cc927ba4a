package ports

import (
	"context"

	"github.com/fixpoint/repairdesk/internal/core/domain"
)

// ResetRepository persists the password-reset ledger. Upsert replaces any
// existing record for the same email so a new request supersedes old tokens.
type ResetRepository interface {
	Upsert(ctx context.Context, record *domain.PasswordReset) error
	FindByEmail(ctx context.Context, email string) (*domain.PasswordReset, error)
	DeleteByEmail(ctx context.Context, email string) error
}
