package matching

import (
	"github.com/fablink/fablink-api/models"
)

// ScorePerformance returns the performance-history sub-score, scaled to
// [0, 25]. It derives a 0-100 success-rate proxy from whichever aggregate
// signals the profile carries, then maps the proxy onto discrete brackets.
//
// Manufacturers with fewer than MinTrackRecordOrders completed orders are
// hard-capped at the lowest bracket: no amount of rating data substitutes
// for an actual track record.
func ScorePerformance(m *models.ManufacturerProfile) float64 {
	if m.CompletedOrders < MinTrackRecordOrders {
		return 5.0
	}

	proxy := successRateProxy(m)

	switch {
	case proxy >= 95:
		return 25.0
	case proxy >= 85:
		return 20.0
	case proxy >= 70:
		return 15.0
	default:
		return 5.0
	}
}

// successRateProxy averages the available-of signals: overall rating as a
// percentage, on-time-delivery rate, quality rating as a percentage and a
// response-time score. Profiles with no signals at all fall back to a tier
// based purely on volume of completed work.
func successRateProxy(m *models.ManufacturerProfile) float64 {
	var sum float64
	var n int

	if m.OverallRating != nil {
		sum += clamp(*m.OverallRating/5.0*100, 0, 100)
		n++
	}
	if m.OnTimeRate != nil {
		sum += clamp(*m.OnTimeRate*100, 0, 100)
		n++
	}
	if m.QualityRating != nil {
		sum += clamp(*m.QualityRating/5.0*100, 0, 100)
		n++
	}
	if m.AvgResponseHours != nil {
		sum += responseTimeScore(*m.AvgResponseHours)
		n++
	}

	if n == 0 {
		switch {
		case m.CompletedOrders >= 50:
			return 85
		case m.CompletedOrders >= 20:
			return 75
		default:
			return 65
		}
	}

	return sum / float64(n)
}

// responseTimeScore maps average response hours to a 0-100 score with a
// linear decay: one hour scores ~95, a full day scores ~50.
func responseTimeScore(hours float64) float64 {
	if hours <= 0 {
		return 97
	}
	return clamp(97-2*hours, 10, 97)
}
