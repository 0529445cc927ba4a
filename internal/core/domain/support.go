package domain

import "time"

// SupportRequest is a message submitted through the public contact form.
type SupportRequest struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:120" json:"name"`
	Email     string    `gorm:"size:191" json:"email"`
	Subject   string    `gorm:"size:191" json:"subject"`
	Message   string    `gorm:"size:4000" json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
