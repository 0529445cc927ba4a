package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fixpoint/repairdesk/internal/core/domain"
)

type ResetRepository struct {
	db *gorm.DB
}

func NewResetRepository(db *gorm.DB) *ResetRepository {
	return &ResetRepository{db: db}
}

// Upsert writes the ledger record for record.Email, replacing any existing
// one. Email is the primary key, so at most one record per address can exist.
func (r *ResetRepository) Upsert(ctx context.Context, record *domain.PasswordReset) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"token_hash", "created_at"}),
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("upsert reset record: %w", err)
	}
	return nil
}

func (r *ResetRepository) FindByEmail(ctx context.Context, email string) (*domain.PasswordReset, error) {
	var record domain.PasswordReset
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrResetNotFound
		}
		return nil, fmt.Errorf("find reset record: %w", err)
	}
	return &record, nil
}

func (r *ResetRepository) DeleteByEmail(ctx context.Context, email string) error {
	if err := r.db.WithContext(ctx).Where("email = ?", email).Delete(&domain.PasswordReset{}).Error; err != nil {
		return fmt.Errorf("delete reset record: %w", err)
	}
	return nil
}
