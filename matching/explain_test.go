package matching

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fablink/fablink-api/models"
)

func strongBreakdown() models.MatchScoreBreakdown {
	return models.MatchScoreBreakdown{
		Capability:   34,
		Performance:  25,
		Quality:      15,
		Proximity:    12,
		Cost:         8,
		Availability: 5,
		TotalScore:   99,
	}
}

func weakBreakdown() models.MatchScoreBreakdown {
	return models.MatchScoreBreakdown{
		Capability:   10,
		Performance:  5,
		Quality:      3,
		Proximity:    2,
		Cost:         1,
		Availability: 2,
		TotalScore:   23,
	}
}

func TestExplainStrongMatch(t *testing.T) {
	m := testManufacturer(1, "Precision Works")
	b := strongBreakdown()

	exp := Explain(&m, &b, nil)

	assert.NotEmpty(t, exp.Strengths)
	assert.LessOrEqual(t, len(exp.Strengths), maxStrengths)
	assert.Contains(t, exp.Strengths, "Exceptional capability match for this process")
	assert.Contains(t, exp.Strengths, "Proven track record across 40 completed orders")
	assert.Empty(t, exp.Concerns)
	assert.True(t, strings.HasPrefix(exp.RecommendationReason, "Excellent fit"))
	assert.Contains(t, exp.RecommendationReason, "led by")
}

func TestExplainWeakMatch(t *testing.T) {
	m := testManufacturer(2, "Mismatched Shop")
	m.CompletedOrders = 2
	m.OverallRating = nil
	m.QualityRating = nil
	m.OnTimeRate = nil
	b := weakBreakdown()

	complexity := models.ComplexityAnalysis{Level: models.ComplexityCritical}
	exp := Explain(&m, &b, &complexity)

	assert.LessOrEqual(t, len(exp.Concerns), maxConcerns)
	assert.Contains(t, exp.Concerns, "Limited capability overlap with the order requirements")
	assert.Contains(t, exp.Concerns, "Insufficient track record on the platform")
	assert.True(t, strings.HasPrefix(exp.RecommendationReason, "Potential fit"))
}

func TestConfidenceNeverClaimsCertainty(t *testing.T) {
	m := testManufacturer(1, "Complete Profile")
	b := strongBreakdown()

	c := confidence(&m, &b)
	assert.LessOrEqual(t, c, MaxConfidence)
	assert.Greater(t, c, 0.0)
}

func TestConfidenceRewardsCompleteness(t *testing.T) {
	full := testManufacturer(1, "Complete")
	sparse := testManufacturer(2, "Sparse")
	sparse.Materials = nil
	sparse.Certifications = nil
	sparse.OverallRating = nil
	sparse.QualityRating = nil
	sparse.OnTimeRate = nil

	b := strongBreakdown()
	assert.Greater(t, confidence(&full, &b), confidence(&sparse, &b))
}

func TestRecommendationReasonTiers(t *testing.T) {
	tests := []struct {
		total  float64
		prefix string
	}{
		{92, "Excellent fit"},
		{78, "Very good fit"},
		{65, "Good fit"},
		{40, "Potential fit"},
	}

	for _, tt := range tests {
		b := strongBreakdown()
		b.TotalScore = tt.total
		reason := recommendationReason(&b)
		assert.True(t, strings.HasPrefix(reason, tt.prefix), "total %.0f: got %q", tt.total, reason)
	}
}

func TestRecommendationReasonNamesTopFactor(t *testing.T) {
	b := models.MatchScoreBreakdown{
		Capability:   14, // 0.4 of max
		Performance:  24, // 0.96 of max, the leader
		Quality:      7,
		Proximity:    4,
		Cost:         3,
		Availability: 2,
		TotalScore:   54,
	}
	assert.Contains(t, recommendationReason(&b), "led by performance history")
}

func TestEstimateCostRange(t *testing.T) {
	order := testOrder() // midpoint 10000

	b := strongBreakdown()
	assert.Equal(t, "6000-9000", EstimateCostRange(&b, order))

	b.Cost = 4
	assert.Equal(t, "10000-13000", EstimateCostRange(&b, order))

	noBudget := testOrder()
	noBudget.BudgetMin = nil
	noBudget.BudgetMax = nil
	assert.Equal(t, "No budget supplied", EstimateCostRange(&b, noBudget))
}

func TestEstimateTimeline(t *testing.T) {
	m := testManufacturer(1, "Shop")
	m.LeadTimeDays = 10
	m.RushCapable = false
	assert.Equal(t, "10 days", EstimateTimeline(&m))

	m.RushCapable = true
	assert.Equal(t, "7 days", EstimateTimeline(&m))

	m.LeadTimeDays = 1
	assert.Equal(t, "1 day", EstimateTimeline(&m))
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, dedupe([]string{"a", "b", "a"}))
}
