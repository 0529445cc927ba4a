package domain

import (
	"time"

	"gorm.io/gorm"
)

// Category groups catalog articles.
type Category struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Name        string         `gorm:"size:120" json:"name"`
	Description string         `gorm:"size:1000" json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Article is a catalog entry priced in cents to avoid locale-dependent
// decimal handling.
type Article struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	CategoryID  string         `gorm:"size:36;index" json:"category_id"`
	Title       string         `gorm:"size:191" json:"title"`
	Description string         `gorm:"size:2000" json:"description,omitempty"`
	PriceCents  int64          `json:"price_cents"`
	ImagePath   string         `gorm:"size:255" json:"image_path,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
