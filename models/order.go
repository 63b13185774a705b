package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Order represents a manufacturing order posted by a client
type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ClientID    uint   `gorm:"not null;index" json:"client_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Quantity    int    `gorm:"not null;check:quantity > 0" json:"quantity"`
	Status      string `gorm:"not null;default:'open'" json:"status"` // open, matched, quoted, in_production, completed, cancelled

	// Technical requirements. Processes holds every manufacturing process the
	// order needs; the first entry is the primary process used for matching.
	Processes          []string `gorm:"serializer:json" json:"manufacturing_processes"`
	Materials          []string `gorm:"serializer:json" json:"required_materials"`
	Certifications     []string `gorm:"serializer:json" json:"required_certifications"`
	Industry           string   `json:"industry"`
	ToleranceMM        *float64 `json:"tolerance_mm"` // nullable, tightest required tolerance in millimeters
	CustomRequirements []string `gorm:"serializer:json" json:"custom_requirements"`

	BudgetMin        *float64  `json:"budget_min"` // nullable, same currency as BudgetMax
	BudgetMax        *float64  `json:"budget_max"`
	DeliveryDeadline time.Time `gorm:"not null" json:"delivery_deadline"`

	// Optional location preference
	PreferredCountry string `json:"preferred_country"`
	PreferredRegion  string `json:"preferred_region"`
	PreferredCity    string `json:"preferred_city"`

	DrawingS3Key *string `json:"drawing_s3_key"`               // nullable, S3 key for the technical drawing
	DrawingURL   *string `gorm:"-" json:"drawing_url,omitempty"` // computed field, presigned URL for the drawing

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderValidationError describes a malformed order that cannot be scored
type OrderValidationError struct {
	Code    string
	Message string
}

func (e *OrderValidationError) Error() string {
	return e.Message
}

// Validate checks the invariants an order must satisfy before it can be
// matched: budget range ordering and a deadline that has not already passed.
func (o *Order) Validate(now time.Time) error {
	if o.BudgetMin != nil && o.BudgetMax != nil && *o.BudgetMin > *o.BudgetMax {
		return &OrderValidationError{
			Code:    "INVALID_BUDGET_RANGE",
			Message: fmt.Sprintf("budget_min (%.2f) exceeds budget_max (%.2f)", *o.BudgetMin, *o.BudgetMax),
		}
	}
	if !o.DeliveryDeadline.IsZero() && o.DeliveryDeadline.Before(now) {
		return &OrderValidationError{
			Code:    "DEADLINE_IN_PAST",
			Message: fmt.Sprintf("delivery deadline %s is in the past", o.DeliveryDeadline.Format(time.RFC3339)),
		}
	}
	if o.Quantity < 0 {
		return &OrderValidationError{
			Code:    "INVALID_QUANTITY",
			Message: fmt.Sprintf("quantity must not be negative, got %d", o.Quantity),
		}
	}
	return nil
}

// PrimaryProcess returns the order's main manufacturing process, or ""
// when no process requirement was supplied.
func (o *Order) PrimaryProcess() string {
	for _, p := range o.Processes {
		if strings.TrimSpace(p) != "" {
			return p
		}
	}
	return ""
}

// HasLocationPreference reports whether the client supplied any location preference
func (o *Order) HasLocationPreference() bool {
	return o.PreferredCountry != "" || o.PreferredRegion != "" || o.PreferredCity != ""
}

// BudgetMidpoint returns the midpoint of the budget range. When only one
// bound is present it is used directly; the second return value is false
// when no budget information exists at all.
func (o *Order) BudgetMidpoint() (float64, bool) {
	switch {
	case o.BudgetMin != nil && o.BudgetMax != nil:
		return (*o.BudgetMin + *o.BudgetMax) / 2, true
	case o.BudgetMax != nil:
		return *o.BudgetMax, true
	case o.BudgetMin != nil:
		return *o.BudgetMin, true
	}
	return 0, false
}
