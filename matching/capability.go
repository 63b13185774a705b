package matching

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/fablink/fablink-api/models"
)

// Capability blends three signals into the 35-point budget: how well the
// manufacturer's declared processes cover the order's primary process, what
// fraction of required materials the manufacturer works with, and whether the
// manufacturer has served the order's industry before.
const (
	capabilityProcessSlice  = 0.60
	capabilityMaterialSlice = 0.25
	capabilityIndustrySlice = 0.15

	// Neutral "adaptable" default when either side has no technical specs:
	// sparse data must not zero out a candidate.
	capabilityAdaptableDefault = 15.0
)

// ScoreCapability returns the capability sub-score, scaled to [0, 35].
func ScoreCapability(m *models.ManufacturerProfile, order *models.Order) float64 {
	requiredProcess := order.PrimaryProcess()

	// Missing technical specs on either side score as a mid-range
	// adaptable match rather than zero.
	if requiredProcess == "" || !m.HasCapabilities() {
		return capabilityAdaptableDefault
	}

	processScore := processTierScore(requiredProcess, m.Processes)
	materialScore := materialOverlapScore(order.Materials, m.Materials)
	industryScore := industryExperienceScore(order.Industry, m.Industries)

	score := processScore*capabilityProcessSlice +
		materialScore*capabilityMaterialSlice +
		industryScore*capabilityIndustrySlice

	return clamp(score, 0, CapabilityWeight)
}

// processTierScore maps the best process similarity onto the 0-35 scale:
// an exact-tier match earns the full budget, strong and partial matches
// earn descending tiers, anything below the partial threshold earns nothing.
func processTierScore(required string, declared []string) float64 {
	best := bestProcessSimilarity(required, declared)

	switch {
	case best >= CapabilityExactMatchThreshold:
		return 35.0
	case best >= CapabilityStrongMatchThreshold:
		return 25.0
	case best >= CapabilityPartialMatchThreshold:
		return 15.0
	default:
		return 0.0
	}
}

// materialOverlapScore scales the covered-materials fraction onto 0-35.
// A required material counts as covered when its best fuzzy match against
// the manufacturer's materials reaches MaterialMatchThreshold.
func materialOverlapScore(required, available []string) float64 {
	if len(required) == 0 {
		// No material requirements: treat as fully compatible.
		return 35.0
	}
	if len(available) == 0 {
		// Unknown material capabilities: adaptable default.
		return capabilityAdaptableDefault
	}

	covered := 0
	for _, req := range required {
		for _, have := range available {
			if fuzzy.TokenSortRatio(req, have) >= MaterialMatchThreshold {
				covered++
				break
			}
		}
	}

	return 35.0 * float64(covered) / float64(len(required))
}

// industryExperienceScore checks whether the manufacturer has served the
// order's industry, again via fuzzy matching over free-text tags.
func industryExperienceScore(industry string, served []string) float64 {
	if industry == "" {
		return 35.0
	}
	if len(served) == 0 {
		return capabilityAdaptableDefault
	}

	for _, s := range served {
		if fuzzy.TokenSortRatio(industry, s) >= IndustryMatchThreshold {
			return 35.0
		}
	}
	return 10.0
}
