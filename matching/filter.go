package matching

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/fablink/fablink-api/models"
)

// FilterCandidates narrows the full manufacturer pool to candidates worth
// scoring. It applies the cheap eligibility gates (active, verified,
// onboarded) and a coarse process-compatibility check; expensive multi-factor
// scoring only runs on what survives.
//
// Manufacturers with no declared capabilities are kept on purpose: missing
// data is scored later with neutral defaults, never treated as exclusion.
func FilterCandidates(pool []models.ManufacturerProfile, order *models.Order) []models.ManufacturerProfile {
	candidates := make([]models.ManufacturerProfile, 0, len(pool))

	requiredProcess := order.PrimaryProcess()

	for _, m := range pool {
		if !m.IsEligible() {
			continue
		}

		if !m.HasCapabilities() || requiredProcess == "" {
			candidates = append(candidates, m)
			continue
		}

		if bestProcessSimilarity(requiredProcess, m.Processes) >= FilterProcessThreshold {
			candidates = append(candidates, m)
		}
	}

	return candidates
}

// bestProcessSimilarity returns the highest token-sort similarity (0-100)
// between the required process and any of the declared processes.
func bestProcessSimilarity(required string, declared []string) int {
	best := 0
	for _, p := range declared {
		if p == "" {
			continue
		}
		if score := fuzzy.TokenSortRatio(required, p); score > best {
			best = score
		}
	}
	return best
}
