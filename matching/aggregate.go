package matching

import (
	"github.com/fablink/fablink-api/models"
)

// Aggregate sums the six factor sub-scores into the 0-100 total. Each
// sub-score is already scaled to its factor's maximum, so this is a direct
// sum, not a weighted average.
func Aggregate(b *models.MatchScoreBreakdown) float64 {
	total := b.Capability + b.Performance + b.Quality + b.Proximity + b.Cost + b.Availability
	return clamp(total, 0, 100)
}

// Neutral values for signals the enhanced pass mixes in when no explicit
// input exists. Personalization requires a client preference model and
// market context requires demand data, neither of which is available inside
// a single ranking run, so both default to the scale midpoint.
const (
	neutralPersonalizationScore = 50.0
	neutralMarketContextScore   = 50.0
)

// EnhancedScore recombines the audit-grade total with a complexity-fit
// component and (currently neutral) personalization and market-context
// components using fixed mixing weights. The result is used only for
// re-ranking and tie-breaking; TotalScore itself is never replaced.
func EnhancedScore(total float64, m *models.ManufacturerProfile, complexity *models.ComplexityAnalysis) float64 {
	fit := complexityFitScore(m, complexity)

	adjusted := total*EnhancedBaseWeight +
		fit*EnhancedComplexityWeight +
		neutralPersonalizationScore*EnhancedPersonalizationWeight +
		neutralMarketContextScore*EnhancedMarketWeight

	return clamp(adjusted, 0, 100)
}

// complexityFitScore measures how ready a manufacturer is for an order of
// the given complexity: track record and certifications build readiness,
// and readiness at or above the order's demand scores a full 100.
func complexityFitScore(m *models.ManufacturerProfile, complexity *models.ComplexityAnalysis) float64 {
	if complexity == nil {
		return neutralMarketContextScore
	}

	readiness := clamp(float64(m.CompletedOrders)*2, 0, 80) +
		clamp(float64(len(m.Certifications))*5, 0, 20)
	demand := complexity.Score * 10

	return clamp(100-(demand-readiness), 0, 100)
}
