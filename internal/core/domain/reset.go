package domain

import "time"

// PasswordReset is a single-use reset ledger entry. Only the bcrypt hash of
// the token is stored; at most one usable record exists per email.
type PasswordReset struct {
	Email     string    `gorm:"primaryKey;size:191"`
	TokenHash string    `gorm:"size:191"`
	CreatedAt time.Time
}
