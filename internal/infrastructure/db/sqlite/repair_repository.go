package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fixpoint/repairdesk/internal/core/domain"
)

type RepairRepository struct {
	db *gorm.DB
}

func NewRepairRepository(db *gorm.DB) *RepairRepository {
	return &RepairRepository{db: db}
}

// Create writes the parent record and its image rows inside one transaction.
// If any image insert fails the parent is rolled back with it; there is no
// path that leaves an orphaned repair request behind.
func (r *RepairRepository) Create(ctx context.Context, request *domain.RepairRequest) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Images").Create(request).Error; err != nil {
			return err
		}
		for i := range request.Images {
			if err := tx.Create(&request.Images[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert repair request: %w", err)
	}
	return nil
}

func (r *RepairRepository) FindByID(ctx context.Context, id string) (*domain.RepairRequest, error) {
	var request domain.RepairRequest
	if err := r.db.WithContext(ctx).Preload("Images").Where("id = ?", id).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRepairNotFound
		}
		return nil, fmt.Errorf("find repair request: %w", err)
	}
	return &request, nil
}

func (r *RepairRepository) List(ctx context.Context) ([]domain.RepairRequest, error) {
	var requests []domain.RepairRequest
	if err := r.db.WithContext(ctx).Preload("Images").Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("list repair requests: %w", err)
	}
	return requests, nil
}

func (r *RepairRepository) Update(ctx context.Context, request *domain.RepairRequest) error {
	if err := r.db.WithContext(ctx).Omit("Images").Save(request).Error; err != nil {
		return fmt.Errorf("update repair request: %w", err)
	}
	return nil
}

func (r *RepairRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.RepairRequest{}).Error; err != nil {
		return fmt.Errorf("delete repair request: %w", err)
	}
	return nil
}
