package ports

import (
	"context"

	"github.com/fixpoint/repairdesk/internal/core/domain"
)

// RepairRepository persists repair requests. Create must write the parent
// record and its image rows atomically: a failed image write rolls back the
// parent. Deletes are soft.
type RepairRepository interface {
	Create(ctx context.Context, request *domain.RepairRequest) error
	FindByID(ctx context.Context, id string) (*domain.RepairRequest, error)
	List(ctx context.Context) ([]domain.RepairRequest, error)
	Update(ctx context.Context, request *domain.RepairRequest) error
	Delete(ctx context.Context, id string) error
}
