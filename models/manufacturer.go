package models

import (
	"time"

	"gorm.io/gorm"
)

// ManufacturerProfile represents a manufacturer registered on the platform.
// Capability fields are free-text sets maintained by the manufacturer and are
// fuzzy-matched against order requirements, never compared exactly.
type ManufacturerProfile struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CompanyName string `gorm:"not null" json:"company_name"`

	// Eligibility gates. Profiles failing any of these are excluded from
	// matching before scoring.
	IsActive           bool `gorm:"default:true" json:"is_active"`
	IsVerified         bool `gorm:"default:false" json:"is_verified"`
	OnboardingComplete bool `gorm:"default:false" json:"onboarding_complete"`

	// Declared capabilities
	Processes      []string `gorm:"serializer:json" json:"manufacturing_processes"`
	Materials      []string `gorm:"serializer:json" json:"materials"`
	Certifications []string `gorm:"serializer:json" json:"certifications"`
	Industries     []string `gorm:"serializer:json" json:"industries_served"`

	// Location
	Country   string   `json:"country"`
	City      string   `json:"city"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	// Aggregate performance stats, maintained by the platform
	CompletedOrders  int      `gorm:"default:0" json:"completed_orders"`
	OverallRating    *float64 `json:"overall_rating"`     // nullable, 0-5
	QualityRating    *float64 `json:"quality_rating"`     // nullable, 0-5
	OnTimeRate       *float64 `json:"on_time_rate"`       // nullable, 0-1
	AvgResponseHours *float64 `json:"avg_response_hours"` // nullable

	// Production characteristics
	LeadTimeDays int  `gorm:"default:0" json:"lead_time_days"`
	RushCapable  bool `gorm:"default:false" json:"rush_capable"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the ManufacturerProfile model
func (ManufacturerProfile) TableName() string {
	return "manufacturer_profiles"
}

// IsEligible reports whether the manufacturer passes the hard eligibility
// gates that apply before any scoring happens.
func (m *ManufacturerProfile) IsEligible() bool {
	return m.IsActive && m.IsVerified && m.OnboardingComplete
}

// HasCapabilities reports whether the manufacturer has declared any
// manufacturing processes. Profiles without declared capabilities are kept
// as candidates and scored with neutral defaults instead of being excluded.
func (m *ManufacturerProfile) HasCapabilities() bool {
	return len(m.Processes) > 0
}
