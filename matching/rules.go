package matching

import (
	"sort"

	"github.com/fablink/fablink-api/models"
)

// Business-rule gate defaults.
const (
	DefaultMinScoreFloor      = 60.0
	DefaultMaxRecommendations = 15
	MinQualifiedResults       = 3
)

// ApplyRules filters and orders scored matches according to the business
// rules: matches below the qualifying floor are dropped, the best
// unqualified candidates backfill the list up to the minimum result count,
// and the final list is capped. The second return value reports whether
// backfill happened.
//
// Sorting is stable throughout: ties keep their input order so ranking runs
// are reproducible.
func ApplyRules(matches []models.ManufacturerMatch, minFloor float64, maxResults int) ([]models.ManufacturerMatch, bool) {
	if maxResults <= 0 || maxResults > DefaultMaxRecommendations {
		maxResults = DefaultMaxRecommendations
	}

	sorted := make([]models.ManufacturerMatch, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ScoreBreakdown.TotalScore > sorted[j].ScoreBreakdown.TotalScore
	})

	qualified := make([]models.ManufacturerMatch, 0, len(sorted))
	unqualified := make([]models.ManufacturerMatch, 0)
	for _, m := range sorted {
		if m.ScoreBreakdown.TotalScore >= minFloor {
			qualified = append(qualified, m)
		} else {
			unqualified = append(unqualified, m)
		}
	}

	backfilled := false
	for len(qualified) < MinQualifiedResults && len(unqualified) > 0 {
		next := unqualified[0]
		next.Backfilled = true
		qualified = append(qualified, next)
		unqualified = unqualified[1:]
		backfilled = true
	}

	if len(qualified) > maxResults {
		qualified = qualified[:maxResults]
	}

	AssignRanks(qualified)
	return qualified, backfilled
}

// AssignRanks rewrites Rank as 1..N over the list's current order. It is
// called after every re-sort so rank values stay contiguous.
func AssignRanks(matches []models.ManufacturerMatch) {
	for i := range matches {
		matches[i].Rank = i + 1
	}
}
