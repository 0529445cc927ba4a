package domain

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleUser     = "user"
)

// ValidRole reports whether role is one of the fixed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEmployee, RoleUser:
		return true
	}
	return false
}

// User models an account in the system. Emails are stored lowercased so
// lookups are case-insensitive. Accounts are soft-deleted, never removed.
type User struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	Name         string         `gorm:"size:120" json:"name"`
	Email        string         `gorm:"uniqueIndex;size:191" json:"email"`
	PasswordHash string         `gorm:"size:191" json:"-"`
	Phone        string         `gorm:"size:32" json:"phone,omitempty"`
	Role         string         `gorm:"size:16;default:user" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Principal is the request-scoped identity resolved by the auth middleware
// and threaded explicitly through handlers.
type Principal struct {
	UserID  string
	Email   string
	Role    string
	TokenID string
}
