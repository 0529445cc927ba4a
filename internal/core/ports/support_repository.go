package ports

import (
	"context"

	"github.com/fixpoint/repairdesk/internal/core/domain"
)

// SupportRepository persists contact-form submissions.
type SupportRepository interface {
	Create(ctx context.Context, request *domain.SupportRequest) error
	List(ctx context.Context) ([]domain.SupportRequest, error)
}
