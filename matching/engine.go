package matching

import (
	"log"
	"sort"
	"time"

	"github.com/fablink/fablink-api/models"
)

// QuoteSource supplies a manufacturer's recent quote prices. It is an
// external collaborator: the engine only reads from it and treats lookup
// failures as missing data, never as a fatal error.
type QuoteSource interface {
	RecentQuotes(manufacturerID uint, since time.Time) ([]float64, error)
}

// Options control one ranking run.
type Options struct {
	// MaxRecommendations caps the returned list. Zero means the default
	// cap of 15; values above 15 are reduced to 15.
	MaxRecommendations int

	// MinScoreFloor is the qualifying total-score floor. Zero means the
	// default of 60.
	MinScoreFloor float64

	// UrgencyBoost (1.0-3.0) multiplies the ranking key of rush-viable
	// matches before the final sort. Zero means no boost.
	UrgencyBoost float64
}

// Engine is the full scoring/ranking pipeline. It is stateless across
// invocations: every call receives a fresh pool snapshot and produces a
// fresh result.
type Engine struct {
	quotes QuoteSource
	nowFn  func() time.Time
}

// NewEngine creates an Engine reading quote history from the given source.
// A nil source is allowed; cost scoring then always uses its neutral default.
func NewEngine(quotes QuoteSource) *Engine {
	return &Engine{
		quotes: quotes,
		nowFn:  time.Now,
	}
}

// SetNowFunc overrides the engine's clock (primarily for testing).
func (e *Engine) SetNowFunc(fn func() time.Time) {
	e.nowFn = fn
}

// RankManufacturers runs the full pipeline: validate, analyze complexity,
// filter, score each candidate, gate, boost, explain. An empty pool or a
// pool with no viable candidates is a normal outcome carrying market
// insights, not an error; only malformed input fails.
func (e *Engine) RankManufacturers(order *models.Order, pool []models.ManufacturerProfile, opts Options) (*models.RankingResult, error) {
	now := e.nowFn()

	if order == nil {
		return nil, &MatchError{Kind: ErrKindInvalidOrder, Message: "order is required"}
	}
	if err := order.Validate(now); err != nil {
		return nil, &MatchError{Kind: ErrKindInvalidOrder, Message: "order failed validation", Err: err}
	}
	if opts.UrgencyBoost != 0 && (opts.UrgencyBoost < 1.0 || opts.UrgencyBoost > 3.0) {
		return nil, &MatchError{Kind: ErrKindInvalidOptions, Message: "urgency_boost must be between 1.0 and 3.0"}
	}
	if opts.MinScoreFloor < 0 || opts.MinScoreFloor > 100 {
		return nil, &MatchError{Kind: ErrKindInvalidOptions, Message: "min_score_floor must be between 0 and 100"}
	}

	complexity := AnalyzeComplexity(order, now)

	result := &models.RankingResult{
		OrderID:    order.ID,
		TopMatches: []models.ManufacturerMatch{},
		Complexity: &complexity,
		Source:     models.SourceFullEngine,
	}

	candidates := FilterCandidates(pool, order)
	result.TotalCandidates = len(candidates)

	if len(candidates) == 0 {
		result.MarketInsights = marketInsights(order)
		return result, nil
	}

	matches := make([]models.ManufacturerMatch, 0, len(candidates))
	for i := range candidates {
		match, ok := e.scoreCandidate(&candidates[i], order, &complexity, now)
		if !ok {
			continue
		}
		matches = append(matches, match)
	}

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

	qualified := 0
	for _, m := range gated {
		if !m.Backfilled {
			qualified++
		}
	}
	result.QualifiedMatches = qualified

	if opts.UrgencyBoost > 1.0 {
		applyUrgencyBoost(gated, opts.UrgencyBoost)
	}

	result.TopMatches = gated
	if backfilled || qualified < MinQualifiedResults {
		result.MarketInsights = marketInsights(order)
	}
	return result, nil
}

// scoreCandidate scores one manufacturer. A panic while scoring a single
// candidate is recovered, logged and reported as a skip: one bad record
// must not abort the whole ranking run.
func (e *Engine) scoreCandidate(m *models.ManufacturerProfile, order *models.Order, complexity *models.ComplexityAnalysis, now time.Time) (match models.ManufacturerMatch, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("matching: skipping manufacturer %d (%s): scoring panic: %v", m.ID, m.CompanyName, r)
			ok = false
		}
	}()

	breakdown := models.MatchScoreBreakdown{
		Capability:   ScoreCapability(m, order),
		Performance:  ScorePerformance(m),
		Quality:      ScoreQuality(m),
		Proximity:    ScoreProximity(m, order),
		Cost:         ScoreCost(e.recentQuotes(m.ID, now), order),
		Availability: ScoreAvailability(m, order, now),
	}
	breakdown.TotalScore = Aggregate(&breakdown)

	adjusted := EnhancedScore(breakdown.TotalScore, m, complexity)
	breakdown.ComplexityAdjustedScore = &adjusted

	explanation := Explain(m, &breakdown, complexity)

	return models.ManufacturerMatch{
		ManufacturerID:       m.ID,
		ManufacturerName:     m.CompanyName,
		ScoreBreakdown:       breakdown,
		Strengths:            explanation.Strengths,
		Concerns:             explanation.Concerns,
		Confidence:           explanation.Confidence,
		EstimatedCostRange:   EstimateCostRange(&breakdown, order),
		EstimatedTimeline:    EstimateTimeline(m),
		RecommendationReason: explanation.RecommendationReason,
	}, true
}

// recentQuotes fetches the manufacturer's quote history inside the lookback
// window. Lookup failures are a data-quality signal, not an error: the cost
// scorer falls back to its neutral default on nil history.
func (e *Engine) recentQuotes(manufacturerID uint, now time.Time) []float64 {
	if e.quotes == nil {
		return nil
	}
	since := now.AddDate(0, 0, -QuoteHistoryDays)
	prices, err := e.quotes.RecentQuotes(manufacturerID, since)
	if err != nil {
		log.Printf("matching: quote history unavailable for manufacturer %d: %v", manufacturerID, err)
		return nil
	}
	return prices
}

// applyUrgencyBoost multiplies the ranking key of rush-viable matches
// (availability at or above the rush threshold), then re-sorts and
// re-ranks. The audit-grade TotalScore is never touched; the boosted key
// is carried in ComplexityAdjustedScore.
func applyUrgencyBoost(matches []models.ManufacturerMatch, boost float64) {
	for i := range matches {
		b := &matches[i].ScoreBreakdown
		if b.Availability < RushViableAvailabilityScore {
			continue
		}
		key := b.TotalScore
		if b.ComplexityAdjustedScore != nil {
			key = *b.ComplexityAdjustedScore
		}
		boosted := clamp(key*boost, 0, 100)
		b.ComplexityAdjustedScore = &boosted
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return rankingKey(&matches[i]) > rankingKey(&matches[j])
	})
	AssignRanks(matches)
}

func rankingKey(m *models.ManufacturerMatch) float64 {
	if m.ScoreBreakdown.ComplexityAdjustedScore != nil {
		return *m.ScoreBreakdown.ComplexityAdjustedScore
	}
	return m.ScoreBreakdown.TotalScore
}

// marketInsights enumerates relaxations worth suggesting when the pool is
// thin or empty.
func marketInsights(order *models.Order) string {
	insights := "Few manufacturers matched this order. Consider: "
	suggestions := []string{"broadening the manufacturing process requirements"}

	if order.HasLocationPreference() {
		suggestions = append(suggestions, "expanding the geographic preference")
	}
	if _, hasBudget := order.BudgetMidpoint(); hasBudget {
		suggestions = append(suggestions, "adjusting the budget range")
	}
	suggestions = append(suggestions, "extending the delivery timeline")

	for i, s := range suggestions {
		if i > 0 {
			insights += "; "
		}
		insights += s
	}
	return insights + "."
}
