package domain

import (
	"time"

	"gorm.io/gorm"
)

// RepairStatus represents the lifecycle state of a repair request.
type RepairStatus string

const (
	RepairPending   RepairStatus = "pending"
	RepairReviewing RepairStatus = "reviewing"
	RepairQuoted    RepairStatus = "quoted"
	RepairRepaired  RepairStatus = "repaired"
	RepairRejected  RepairStatus = "rejected"
)

// statusLabels maps each status variant to its display string, keeping
// presentation out of the variant type itself.
var statusLabels = map[RepairStatus]string{
	RepairPending:   "Pending review",
	RepairReviewing: "Under review",
	RepairQuoted:    "Quote sent",
	RepairRepaired:  "Repaired",
	RepairRejected:  "Rejected",
}

// Valid reports whether s is a known status variant.
func (s RepairStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display string for s, or the raw value when unknown.
func (s RepairStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// RepairRequest is a customer's request for a repair quote. Its image rows
// are written in the same transaction as the parent record.
type RepairRequest struct {
	ID            string         `gorm:"primaryKey;size:36" json:"id"`
	CustomerName  string         `gorm:"size:120" json:"customer_name"`
	CustomerEmail string         `gorm:"size:191;index" json:"customer_email"`
	CustomerPhone string         `gorm:"size:32" json:"customer_phone,omitempty"`
	DeviceBrand   string         `gorm:"size:120" json:"device_brand"`
	DeviceModel   string         `gorm:"size:120" json:"device_model"`
	Problem       string         `gorm:"size:2000" json:"problem"`
	Status        RepairStatus   `gorm:"size:16;default:pending" json:"status"`
	QuoteCents    *int64         `json:"quote_cents,omitempty"`
	Images        []RepairImage  `gorm:"constraint:OnDelete:CASCADE" json:"images"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// RepairImage stores the path of an uploaded image attached to a request.
type RepairImage struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	RepairRequestID string    `gorm:"size:36;index" json:"-"`
	Path            string    `gorm:"size:255" json:"path"`
	CreatedAt       time.Time `json:"created_at"`
}
