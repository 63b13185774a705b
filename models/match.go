package models

// MatchScoreBreakdown carries the six weighted factor scores for one
// manufacturer-order pair. Each sub-score is already scaled to its factor's
// maximum (capability 35, performance 25, quality 15, proximity 12, cost 8,
// availability 5), so TotalScore is a direct sum on a 0-100 scale.
type MatchScoreBreakdown struct {
	Capability   float64 `json:"capability_score"`
	Performance  float64 `json:"performance_score"`
	Quality      float64 `json:"quality_score"`
	Proximity    float64 `json:"proximity_score"`
	Cost         float64 `json:"cost_score"`
	Availability float64 `json:"availability_score"`

	TotalScore float64 `json:"total_score"` // 0-100, audit-grade, never boosted

	// ComplexityAdjustedScore recombines the total with complexity fit and
	// personalization signals. It is used only for re-ranking and
	// tie-breaking, never in place of TotalScore.
	ComplexityAdjustedScore *float64 `json:"complexity_adjusted_score,omitempty"`
}

// SubScores returns the six factor scores in their canonical order
// (capability, performance, quality, proximity, cost, availability).
func (b *MatchScoreBreakdown) SubScores() []float64 {
	return []float64{b.Capability, b.Performance, b.Quality, b.Proximity, b.Cost, b.Availability}
}

// ManufacturerMatch is one ranked recommendation produced by a matching run.
// It is immutable after creation except for Rank, which is reassigned
// whenever the result list is re-sorted.
type ManufacturerMatch struct {
	ManufacturerID   uint   `json:"manufacturer_id"`
	ManufacturerName string `json:"manufacturer_name"`
	Rank             int    `json:"rank"` // 1-based, contiguous, descending score order

	ScoreBreakdown MatchScoreBreakdown `json:"score_breakdown"`

	Strengths  []string `json:"strengths"`
	Concerns   []string `json:"concerns"`
	Confidence float64  `json:"confidence"` // 0.0-1.0, capped at 0.95

	EstimatedCostRange string `json:"estimated_cost_range"`
	EstimatedTimeline  string `json:"estimated_timeline"`

	RecommendationReason string `json:"recommendation_reason"`

	// Backfilled marks matches below the qualifying floor that were promoted
	// to satisfy the minimum result count.
	Backfilled bool `json:"backfilled,omitempty"`
}

// Recommendation source variants. Both produce the same ManufacturerMatch
// shape, so callers never need to care which one served a request.
const (
	SourceFullEngine        = "full_engine"
	SourceFallbackHeuristic = "fallback_heuristic"
)

// RankingResult is the complete output of one matching run.
type RankingResult struct {
	OrderID          uint                `json:"order_id"`
	TopMatches       []ManufacturerMatch `json:"top_matches"`
	QualifiedMatches int                 `json:"qualified_matches"`
	TotalCandidates  int                 `json:"total_candidates"`
	Backfilled       bool                `json:"backfilled"`
	MarketInsights   string              `json:"market_insights,omitempty"`
	Complexity       *ComplexityAnalysis `json:"complexity_analysis,omitempty"`
	Source           string              `json:"source"`
	FromCache        bool                `json:"from_cache,omitempty"`
}
