package matching

import (
	"fmt"
	"time"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/fablink/fablink-api/models"
)

// Dimension weights for the complexity composite. Quality-standard pressure
// is folded into the precision and custom dimensions rather than weighted
// separately.
const (
	complexityProcessWeight   = 0.25
	complexityMaterialWeight  = 0.20
	complexityPrecisionWeight = 0.20
	complexityTimelineWeight  = 0.15
	complexityCustomWeight    = 0.10
)

// pressureBumpThreshold: timeline or precision pressure above this adds one
// extra recommended option for critical orders.
const pressureBumpThreshold = 0.8

// exoticMaterials are materials that meaningfully raise manufacturing
// difficulty, matched fuzzily against the order's required materials.
var exoticMaterials = []string{
	"titanium", "inconel", "hastelloy", "tungsten", "cobalt chrome",
	"carbon fiber", "peek", "magnesium", "zirconium", "monel", "kovar",
}

// AnalyzeComplexity scores an order's inherent manufacturing difficulty
// across five dimensions, each normalized to 0-1, and combines them into a
// 0-10 composite. The result is computed fresh per request and never
// persisted as authoritative.
func AnalyzeComplexity(order *models.Order, now time.Time) models.ComplexityAnalysis {
	analysis := models.ComplexityAnalysis{
		ProcessScore:     processComplexity(order.Processes),
		MaterialScore:    materialComplexity(order.Materials),
		PrecisionScore:   precisionComplexity(order),
		TimelinePressure: timelinePressure(order.DeliveryDeadline, now),
		CustomScore:      customComplexity(order.CustomRequirements),
	}

	weightTotal := complexityProcessWeight + complexityMaterialWeight +
		complexityPrecisionWeight + complexityTimelineWeight + complexityCustomWeight

	weighted := analysis.ProcessScore*complexityProcessWeight +
		analysis.MaterialScore*complexityMaterialWeight +
		analysis.PrecisionScore*complexityPrecisionWeight +
		analysis.TimelinePressure*complexityTimelineWeight +
		analysis.CustomScore*complexityCustomWeight

	analysis.Score = weighted / weightTotal * 10

	switch {
	case analysis.Score <= 3:
		analysis.Level = models.ComplexitySimple
	case analysis.Score <= 6:
		analysis.Level = models.ComplexityModerate
	case analysis.Score <= 8:
		analysis.Level = models.ComplexityHigh
	default:
		analysis.Level = models.ComplexityCritical
	}

	analysis.Factors = complexityFactors(order, &analysis)
	analysis.RecommendedOptions = recommendedOptionCount(&analysis)

	return analysis
}

// recommendedOptionCount decides how many ranked options to present:
// harder orders warrant more alternatives, and critical orders under heavy
// timeline or precision pressure get one more, capped at 5.
func recommendedOptionCount(a *models.ComplexityAnalysis) int {
	switch a.Level {
	case models.ComplexitySimple:
		return 2
	case models.ComplexityModerate:
		return 3
	case models.ComplexityHigh:
		return 4
	}

	count := 4
	if a.TimelinePressure > pressureBumpThreshold || a.PrecisionScore > pressureBumpThreshold {
		count++
	}
	if count > 5 {
		count = 5
	}
	return count
}

// processComplexity scales with the number of distinct processes required.
func processComplexity(processes []string) float64 {
	distinct := make(map[string]bool)
	for _, p := range processes {
		if p != "" {
			distinct[p] = true
		}
	}
	return clamp(float64(len(distinct))/5.0, 0, 1)
}

// materialComplexity blends the exotic-material fraction with material count.
func materialComplexity(materials []string) float64 {
	if len(materials) == 0 {
		return 0.1
	}

	exotic := 0
	for _, m := range materials {
		for _, e := range exoticMaterials {
			if fuzzy.PartialRatio(e, m) >= CertificationMatchThreshold {
				exotic++
				break
			}
		}
	}

	exoticFraction := float64(exotic) / float64(len(materials))
	countPressure := clamp(float64(len(materials))/4.0, 0, 1)

	return clamp(0.7*exoticFraction+0.3*countPressure, 0, 1)
}

// precisionComplexity maps the tightest required tolerance to 0-1, with a
// bump when the order demands quality-system certifications.
func precisionComplexity(order *models.Order) float64 {
	var score float64
	if order.ToleranceMM == nil {
		score = 0.3 // unspecified tolerance: assume ordinary machining
	} else {
		tol := *order.ToleranceMM
		switch {
		case tol <= 0.005:
			score = 1.0
		case tol <= 0.01:
			score = 0.9
		case tol <= 0.05:
			score = 0.7
		case tol <= 0.1:
			score = 0.5
		case tol <= 0.5:
			score = 0.3
		default:
			score = 0.1
		}
	}

	if len(order.Certifications) > 0 {
		score = clamp(score+0.1, 0, 1)
	}
	return score
}

// timelinePressure maps days until the deadline to 0-1.
func timelinePressure(deadline, now time.Time) float64 {
	if deadline.IsZero() {
		return 0.2
	}
	days := deadline.Sub(now).Hours() / 24
	switch {
	case days <= 7:
		return 1.0
	case days <= 14:
		return 0.8
	case days <= 30:
		return 0.5
	case days <= 60:
		return 0.3
	default:
		return 0.1
	}
}

// customComplexity scales with the number of custom requirements.
func customComplexity(requirements []string) float64 {
	return clamp(float64(len(requirements))/4.0, 0, 1)
}

// complexityFactors produces the human-readable contributing factors list.
func complexityFactors(order *models.Order, a *models.ComplexityAnalysis) []string {
	var factors []string

	if a.ProcessScore >= 0.6 {
		factors = append(factors, fmt.Sprintf("Requires %d distinct manufacturing processes", len(order.Processes)))
	}
	if a.MaterialScore >= 0.5 {
		factors = append(factors, "Exotic or difficult-to-machine materials")
	}
	if a.PrecisionScore >= 0.7 {
		if order.ToleranceMM != nil {
			factors = append(factors, fmt.Sprintf("Tight tolerance requirement (±%.3f mm)", *order.ToleranceMM))
		} else {
			factors = append(factors, "High precision requirements")
		}
	}
	if a.TimelinePressure >= 0.8 {
		factors = append(factors, "Aggressive delivery timeline")
	}
	if a.CustomScore >= 0.5 {
		factors = append(factors, fmt.Sprintf("%d custom requirements", len(order.CustomRequirements)))
	}
	if len(order.Certifications) > 0 {
		factors = append(factors, "Certification requirements apply")
	}

	return factors
}
