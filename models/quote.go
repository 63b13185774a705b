package models

import (
	"time"

	"gorm.io/gorm"
)

// Quote represents a price quote a manufacturer submitted for an order.
// The matching engine only reads quote history (recent prices per
// manufacturer) for cost-efficiency scoring; quote lifecycle management
// lives outside this service.
type Quote struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	OrderID        uint    `gorm:"not null;index" json:"order_id"`
	ManufacturerID uint    `gorm:"not null;index" json:"manufacturer_id"`
	Amount         float64 `gorm:"not null" json:"amount"`
	LeadTimeDays   int     `json:"lead_time_days"`
	Status         string  `gorm:"not null;default:'submitted'" json:"status"` // submitted, accepted, rejected, withdrawn

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}
