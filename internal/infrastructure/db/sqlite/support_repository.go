package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/fixpoint/repairdesk/internal/core/domain"
)

type SupportRepository struct {
	db *gorm.DB
}

func NewSupportRepository(db *gorm.DB) *SupportRepository {
	return &SupportRepository{db: db}
}

func (r *SupportRepository) Create(ctx context.Context, request *domain.SupportRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return fmt.Errorf("insert support request: %w", err)
	}
	return nil
}

func (r *SupportRepository) List(ctx context.Context) ([]domain.SupportRequest, error) {
	var requests []domain.SupportRequest
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("list support requests: %w", err)
	}
	return requests, nil
}
