// Package matching implements the manufacturer-order ranking engine: a
// deterministic, explainable multi-factor scoring model that filters a
// manufacturer pool, scores each candidate across six weighted factors,
// applies business-rule gates and produces human-readable rationale.
package matching

import (
	"fmt"
	"math"
)

// Factor maxima. Each factor scorer returns a value already scaled to its
// maximum, so the total score is a direct sum on a 0-100 scale.
const (
	CapabilityWeight   = 35.0
	PerformanceWeight  = 25.0
	QualityWeight      = 15.0
	ProximityWeight    = 12.0
	CostWeight         = 8.0
	AvailabilityWeight = 5.0
)

// Fuzzy-match thresholds (0-100 similarity scale). Hoisted here so tests can
// assert against them and recalibration never touches scorer logic.
const (
	// Candidate filter: minimum token-sort similarity between the required
	// process and the manufacturer's best declared process.
	FilterProcessThreshold = 40

	// Capability scorer process tiers
	CapabilityExactMatchThreshold   = 90
	CapabilityStrongMatchThreshold  = 70
	CapabilityPartialMatchThreshold = 50

	// Material overlap: a required material counts as covered when its best
	// fuzzy match against the manufacturer's materials reaches this.
	MaterialMatchThreshold = 60

	// Industry experience match
	IndustryMatchThreshold = 70

	// Quality certifications are recognized via partial-ratio matching.
	CertificationMatchThreshold = 80

	// Geographic city/country matching
	LocationMatchThreshold = 80
)

// Scoring constants that are business policy rather than fuzzy thresholds.
const (
	// Performance: manufacturers below this completed-order count are
	// hard-capped at the lowest performance bracket.
	MinTrackRecordOrders = 5

	// Cost: quote history window and sample cap.
	QuoteHistoryDays = 180
	QuoteHistoryMax  = 20

	// Availability sub-score at or above which a match is considered
	// rush-viable and eligible for the urgency boost.
	RushViableAvailabilityScore = 4.0

	// Confidence is never allowed to claim certainty.
	MaxConfidence = 0.95
)

// Enhanced score mixing weights: base total, complexity fit,
// personalization, market context. Must sum to 1.0.
const (
	EnhancedBaseWeight            = 0.70
	EnhancedComplexityWeight      = 0.15
	EnhancedPersonalizationWeight = 0.10
	EnhancedMarketWeight          = 0.05
)

// FactorWeights holds the six factor maxima as a unit so their sum invariant
// can be validated in one place.
type FactorWeights struct {
	Capability   float64
	Performance  float64
	Quality      float64
	Proximity    float64
	Cost         float64
	Availability float64
}

// DefaultWeights returns the production weight distribution.
func DefaultWeights() FactorWeights {
	return FactorWeights{
		Capability:   CapabilityWeight,
		Performance:  PerformanceWeight,
		Quality:      QualityWeight,
		Proximity:    ProximityWeight,
		Cost:         CostWeight,
		Availability: AvailabilityWeight,
	}
}

// Sum returns the total of all factor maxima.
func (w FactorWeights) Sum() float64 {
	return w.Capability + w.Performance + w.Quality + w.Proximity + w.Cost + w.Availability
}

// Validate checks that the factor maxima sum to exactly 100 and none are negative.
func (w FactorWeights) Validate() error {
	if math.Abs(w.Sum()-100.0) > 1e-9 {
		return fmt.Errorf("factor weights sum to %.4f, must sum to 100", w.Sum())
	}
	for _, v := range []float64{w.Capability, w.Performance, w.Quality, w.Proximity, w.Cost, w.Availability} {
		if v < 0 {
			return fmt.Errorf("negative factor weight: %f", v)
		}
	}
	return nil
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
