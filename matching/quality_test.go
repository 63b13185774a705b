package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreQualityBrackets(t *testing.T) {
	tests := []struct {
		name     string
		quality  *float64
		overall  *float64
		certs    []string
		expected float64
	}{
		{"top ratings with cert", f64(4.9), f64(4.8), []string{"ISO 9001"}, 15.0},
		{"strong ratings", f64(4.4), f64(4.4), nil, 12.0},
		{"decent ratings", f64(3.8), f64(3.6), nil, 8.0},
		{"weak ratings", f64(2.5), f64(2.8), nil, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testManufacturer(1, "Shop")
			m.QualityRating = tt.quality
			m.OverallRating = tt.overall
			m.Certifications = tt.certs

			assert.Equal(t, tt.expected, ScoreQuality(&m))
		})
	}
}

func TestScoreQualityNoRatingDefaults(t *testing.T) {
	established := testManufacturer(1, "Established")
	established.QualityRating = nil
	established.OverallRating = nil
	established.Certifications = nil
	established.CompletedOrders = 40

	newcomer := testManufacturer(2, "Newcomer")
	newcomer.QualityRating = nil
	newcomer.OverallRating = nil
	newcomer.Certifications = nil
	newcomer.CompletedOrders = 3

	// 7.5 default lands in the 8-point bracket, 6.5 in the 3-point one.
	assert.Equal(t, 8.0, ScoreQuality(&established))
	assert.Equal(t, 3.0, ScoreQuality(&newcomer))
}

func TestCertificationBonus(t *testing.T) {
	assert.Equal(t, 0.0, certificationBonus(nil))
	assert.Equal(t, 0.5, certificationBonus([]string{"ISO 9001"}))

	// Fuzzy matching tolerates formatting differences.
	assert.Equal(t, 0.5, certificationBonus([]string{"ISO9001:2015"}))

	// Bonus is capped at one point even with every recognized cert.
	assert.Equal(t, 1.0, certificationBonus([]string{"ISO 9001", "AS9100", "IATF 16949"}))
}

func TestScoreQualityCertificationLiftsBracket(t *testing.T) {
	m := testManufacturer(1, "Certified")
	m.QualityRating = f64(4.0)
	m.OverallRating = f64(4.0)
	m.Certifications = nil
	assert.Equal(t, 8.0, ScoreQuality(&m))

	m.Certifications = []string{"ISO 9001", "AS9100"}
	assert.Equal(t, 12.0, ScoreQuality(&m))
}
