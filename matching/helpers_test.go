package matching

import (
	"time"

	"github.com/fablink/fablink-api/models"
)

// f64 returns a pointer to v, for optional profile fields in tests.
func f64(v float64) *float64 {
	return &v
}

// testNow is the fixed clock used across matching tests so deadline math
// is reproducible.
var testNow = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

// testOrder builds a machining order with a comfortable deadline and budget.
func testOrder() *models.Order {
	min, max := 8000.0, 12000.0
	return &models.Order{
		ID:               42,
		ClientID:         7,
		Title:            "Bracket production run",
		Quantity:         500,
		Processes:        []string{"CNC Machining"},
		Materials:        []string{"Aluminum 6061"},
		Industry:         "Aerospace",
		BudgetMin:        &min,
		BudgetMax:        &max,
		DeliveryDeadline: testNow.AddDate(0, 0, 45),
	}
}

// testManufacturer builds an eligible, well-rated machining shop.
func testManufacturer(id uint, name string) models.ManufacturerProfile {
	return models.ManufacturerProfile{
		ID:                 id,
		CompanyName:        name,
		IsActive:           true,
		IsVerified:         true,
		OnboardingComplete: true,
		Processes:          []string{"CNC Machining", "CNC Milling"},
		Materials:          []string{"Aluminum 6061", "Stainless Steel"},
		Certifications:     []string{"ISO 9001"},
		Industries:         []string{"Aerospace"},
		Country:            "USA",
		City:               "Cleveland",
		CompletedOrders:    40,
		OverallRating:      f64(4.6),
		QualityRating:      f64(4.7),
		OnTimeRate:         f64(0.95),
		AvgResponseHours:   f64(3),
		LeadTimeDays:       10,
	}
}
