package ports

import (
	"context"

	"github.com/fixpoint/repairdesk/internal/core/domain"
)

type SupportInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type SupportService interface {
	Create(ctx context.Context, in SupportInput) (*domain.SupportRequest, error)
	List(ctx context.Context) ([]domain.SupportRequest, error)
}
