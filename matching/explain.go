package matching

import (
	"fmt"
	"math"

	"github.com/fablink/fablink-api/models"
)

// Explanation caps: real clients skim, so the rationale stays short.
const (
	maxStrengths = 5
	maxConcerns  = 4
)

// factorName is the display name for each sub-factor in canonical order.
var factorNames = []string{
	"capability match",
	"performance history",
	"quality record",
	"geographic proximity",
	"cost efficiency",
	"availability",
}

// factorMaxima mirrors factorNames.
var factorMaxima = []float64{
	CapabilityWeight, PerformanceWeight, QualityWeight,
	ProximityWeight, CostWeight, AvailabilityWeight,
}

// Explanation is the human-readable rationale for one match.
type Explanation struct {
	Strengths            []string
	Concerns             []string
	Confidence           float64
	RecommendationReason string
}

// Explain derives strengths, concerns, a confidence level and a
// recommendation sentence from a score breakdown. Strength and concern
// strings come from thresholding each sub-score against fixed fractions of
// its factor maximum.
func Explain(m *models.ManufacturerProfile, b *models.MatchScoreBreakdown, complexity *models.ComplexityAnalysis) Explanation {
	return Explanation{
		Strengths:            strengths(m, b),
		Concerns:             concerns(m, b, complexity),
		Confidence:           confidence(m, b),
		RecommendationReason: recommendationReason(b),
	}
}

func strengths(m *models.ManufacturerProfile, b *models.MatchScoreBreakdown) []string {
	var out []string

	if b.Capability >= 0.9*CapabilityWeight {
		out = append(out, "Exceptional capability match for this process")
	} else if b.Capability >= 0.7*CapabilityWeight {
		out = append(out, "Strong capability match")
	}

	if b.Performance >= 0.8*PerformanceWeight {
		out = append(out, fmt.Sprintf("Proven track record across %d completed orders", m.CompletedOrders))
	}

	if b.Quality >= 0.8*QualityWeight {
		out = append(out, "Excellent quality ratings")
	}
	if certificationBonus(m.Certifications) > 0 {
		out = append(out, "Holds recognized quality certifications")
	}

	if b.Proximity >= ProximityWeight {
		out = append(out, "Located in the preferred region")
	}

	if b.Cost >= 0.9*CostWeight {
		out = append(out, "Historically prices below budget")
	}

	if b.Availability >= 0.8*AvailabilityWeight {
		out = append(out, "Fast production turnaround")
	} else if m.RushCapable {
		out = append(out, "Can expedite rush orders")
	}

	out = dedupe(out)
	if len(out) > maxStrengths {
		out = out[:maxStrengths]
	}
	return out
}

func concerns(m *models.ManufacturerProfile, b *models.MatchScoreBreakdown, complexity *models.ComplexityAnalysis) []string {
	var out []string

	if b.Capability < 0.5*CapabilityWeight {
		out = append(out, "Limited capability overlap with the order requirements")
	}

	if m.CompletedOrders < MinTrackRecordOrders {
		out = append(out, "Insufficient track record on the platform")
	} else if b.Performance < 0.5*PerformanceWeight {
		out = append(out, "Mixed performance history")
	}

	if b.Quality < 0.5*QualityWeight {
		out = append(out, "Below-average quality signals")
	}

	if b.Cost < 0.5*CostWeight {
		out = append(out, "Premium pricing relative to budget")
	}

	if b.Availability <= 2.0 {
		out = append(out, "Long lead time for this timeline")
	}

	if complexity != nil && complexity.Level == models.ComplexityCritical && m.CompletedOrders < 20 {
		out = append(out, "Limited experience for a critical-complexity order")
	}

	out = dedupe(out)
	if len(out) > maxConcerns {
		out = out[:maxConcerns]
	}
	return out
}

// confidence blends three signals: how complete the manufacturer's data is,
// how consistent the six sub-scores are (low variance reads as a coherent
// picture), and the total score itself. The result never claims certainty.
func confidence(m *models.ManufacturerProfile, b *models.MatchScoreBreakdown) float64 {
	completeness := dataCompleteness(m)

	// Variance across sub-scores, each normalized to 0-1 first.
	normalized := make([]float64, len(factorMaxima))
	var mean float64
	for i, s := range b.SubScores() {
		normalized[i] = s / factorMaxima[i]
		mean += normalized[i]
	}
	mean /= float64(len(normalized))

	var variance float64
	for _, n := range normalized {
		variance += (n - mean) * (n - mean)
	}
	variance /= float64(len(normalized))

	consistency := math.Max(0.5, 1-variance)
	scoreFraction := b.TotalScore / 100

	c := (completeness + consistency + scoreFraction) / 3
	return clamp(c, 0, MaxConfidence)
}

// dataCompleteness is the fraction of the profile fields the scorers expect
// that are actually populated.
func dataCompleteness(m *models.ManufacturerProfile) float64 {
	expected := 8.0
	populated := 0.0

	if len(m.Processes) > 0 {
		populated++
	}
	if len(m.Materials) > 0 {
		populated++
	}
	if len(m.Certifications) > 0 {
		populated++
	}
	if m.OverallRating != nil {
		populated++
	}
	if m.QualityRating != nil {
		populated++
	}
	if m.OnTimeRate != nil {
		populated++
	}
	if m.Country != "" || m.City != "" {
		populated++
	}
	if m.LeadTimeDays > 0 {
		populated++
	}

	return populated / expected
}

// recommendationReason names the single strongest factor and embeds the
// numeric total, phrased per score tier.
func recommendationReason(b *models.MatchScoreBreakdown) string {
	topIdx := 0
	topFraction := 0.0
	for i, s := range b.SubScores() {
		fraction := s / factorMaxima[i]
		if fraction > topFraction {
			topFraction = fraction
			topIdx = i
		}
	}

	var tier string
	switch {
	case b.TotalScore >= 85:
		tier = "Excellent fit"
	case b.TotalScore >= 75:
		tier = "Very good fit"
	case b.TotalScore >= 60:
		tier = "Good fit"
	default:
		tier = "Potential fit"
	}

	return fmt.Sprintf("%s (score %.1f/100), led by %s", tier, b.TotalScore, factorNames[topIdx])
}

// EstimateCostRange produces a rough price range string from the order
// budget and the manufacturer's cost positioning.
func EstimateCostRange(b *models.MatchScoreBreakdown, order *models.Order) string {
	midpoint, ok := order.BudgetMidpoint()
	if !ok || midpoint <= 0 {
		return "No budget supplied"
	}

	// Cost sub-score encodes where recent quotes landed against budget.
	var lo, hi float64
	switch {
	case b.Cost >= 8.0:
		lo, hi = 0.6*midpoint, 0.9*midpoint
	case b.Cost >= 6.0:
		lo, hi = 0.8*midpoint, 1.05*midpoint
	case b.Cost >= 4.0:
		lo, hi = 1.0*midpoint, 1.3*midpoint
	default:
		lo, hi = 1.2*midpoint, 1.6*midpoint
	}
	return fmt.Sprintf("%.0f-%.0f", lo, hi)
}

// EstimateTimeline renders the manufacturer's effective lead time.
func EstimateTimeline(m *models.ManufacturerProfile) string {
	days := float64(m.LeadTimeDays)
	if m.RushCapable {
		days *= rushLeadTimeFactor
	}
	rounded := int(math.Ceil(days))
	if rounded <= 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", rounded)
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, s := range items {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
