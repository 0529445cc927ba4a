// Package sqlite provides the relational store behind all repositories:
// a GORM-managed SQLite database with migrations and first-run seeding.
package sqlite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fixpoint/repairdesk/internal/core/domain"
)

// Open initialises the database at path, applies the connection PRAGMAs and
// runs migrations. The parent directory is created when missing.
func Open(path string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite dir: %w", err)
	}

	dsn := path + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.User{},
		&domain.PasswordReset{},
		&domain.Category{},
		&domain.Article{},
		&domain.RepairRequest{},
		&domain.RepairImage{},
		&domain.SupportRequest{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}
	return nil
}

// Seed creates the first admin account when the users table is empty, so a
// fresh deployment is reachable. Role/permission expansion is a fixed code
// table (domain.PermissionsFor) and needs no rows of its own.
func Seed(db *gorm.DB, adminEmail, adminPassword string, log zerolog.Logger) error {
	var count int64
	if err := db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// Emails are stored lowercased; seeding must match what login looks up.
	email := strings.ToLower(strings.TrimSpace(adminEmail))

	now := time.Now().UTC()
	admin := &domain.User{
		ID:           uuid.NewString(),
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("seeded initial admin account")
	return nil
}
