package matching

import (
	"time"

	"github.com/fablink/fablink-api/models"
)

// RecommendationSource produces ranked recommendations for an order. Both
// variants (the full scoring engine and the degraded heuristic) return the
// same ManufacturerMatch shape, so callers can swap one for the other when a
// dependency is down without changing response handling.
type RecommendationSource interface {
	Recommend(order *models.Order, pool []models.ManufacturerProfile, opts Options) (*models.RankingResult, error)
}

// Recommend implements RecommendationSource for the full engine.
func (e *Engine) Recommend(order *models.Order, pool []models.ManufacturerProfile, opts Options) (*models.RankingResult, error) {
	return e.RankManufacturers(order, pool, opts)
}

// FallbackHeuristic is the degraded recommendation source: a plain
// rating-and-volume ranking used when the full engine cannot run. Results
// are marked with SourceFallbackHeuristic so downstream consumers know the
// scores are coarse.
type FallbackHeuristic struct {
	nowFn func() time.Time
}

// NewFallbackHeuristic creates the degraded source.
func NewFallbackHeuristic() *FallbackHeuristic {
	return &FallbackHeuristic{nowFn: time.Now}
}

// SetNowFunc overrides the heuristic's clock (primarily for testing).
func (f *FallbackHeuristic) SetNowFunc(fn func() time.Time) {
	f.nowFn = fn
}

// Recommend ranks eligible manufacturers by rating and completed-order
// volume only. Sub-scores other than performance and quality are left at
// their neutral midpoints so totals stay comparable with engine output.
func (f *FallbackHeuristic) Recommend(order *models.Order, pool []models.ManufacturerProfile, opts Options) (*models.RankingResult, error) {
	now := f.nowFn()

	if order == nil {
		return nil, &MatchError{Kind: ErrKindInvalidOrder, Message: "order is required"}
	}
	if err := order.Validate(now); err != nil {
		return nil, &MatchError{Kind: ErrKindInvalidOrder, Message: "order failed validation", Err: err}
	}

	result := &models.RankingResult{
		OrderID:    order.ID,
		TopMatches: []models.ManufacturerMatch{},
		Source:     models.SourceFallbackHeuristic,
	}

	matches := make([]models.ManufacturerMatch, 0, len(pool))
	for i := range pool {
		m := &pool[i]
		if !m.IsEligible() {
			continue
		}

		breakdown := models.MatchScoreBreakdown{
			Capability:   capabilityAdaptableDefault,
			Performance:  ScorePerformance(m),
			Quality:      ScoreQuality(m),
			Proximity:    8.0,
			Cost:         6.0,
			Availability: ScoreAvailability(m, order, now),
		}
		breakdown.TotalScore = Aggregate(&breakdown)

		matches = append(matches, models.ManufacturerMatch{
			ManufacturerID:       m.ID,
			ManufacturerName:     m.CompanyName,
			ScoreBreakdown:       breakdown,
			Strengths:            []string{},
			Concerns:             []string{"Scored by the fallback heuristic; capability fit not assessed"},
			Confidence:           0.5,
			EstimatedCostRange:   EstimateCostRange(&breakdown, order),
			EstimatedTimeline:    EstimateTimeline(m),
			RecommendationReason: recommendationReason(&breakdown),
		})
	}

	result.TotalCandidates = len(matches)
	if len(matches) == 0 {
		result.MarketInsights = marketInsights(order)
		return result, nil
	}

	minFloor := opts.MinScoreFloor
	if minFloor == 0 {
		minFloor = DefaultMinScoreFloor
	}

	gated, backfilled := ApplyRules(matches, minFloor, opts.MaxRecommendations)
	result.Backfilled = backfilled
	result.TopMatches = gated
	for _, m := range gated {
		if !m.Backfilled {
			result.QualifiedMatches++
		}
	}
	return result, nil
}
