package ports

import (
	"context"

	"github.com/fixpoint/repairdesk/internal/core/domain"
)

type CreateRepairInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	DeviceBrand   string
	DeviceModel   string
	Problem       string
	ImagePaths    []string
}

type UpdateRepairInput struct {
	Status     domain.RepairStatus
	QuoteCents *int64
}

type RepairService interface {
	Create(ctx context.Context, in CreateRepairInput) (*domain.RepairRequest, error)
	Get(ctx context.Context, id string) (*domain.RepairRequest, error)
	List(ctx context.Context) ([]domain.RepairRequest, error)
	Update(ctx context.Context, id string, in UpdateRepairInput) (*domain.RepairRequest, error)
	Delete(ctx context.Context, id string) error
}
