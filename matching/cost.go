package matching

import (
	"github.com/fablink/fablink-api/models"
)

// ScoreCost returns the cost-efficiency sub-score, scaled to [0, 8]. It
// compares the manufacturer's average recent quote price against the order's
// budget midpoint. A manufacturer with no quote history, or an order with no
// budget, scores the within-budget default of 6.
//
// recentQuotes is the manufacturer's quote history already restricted to the
// lookback window; only the most recent QuoteHistoryMax entries are used.
func ScoreCost(recentQuotes []float64, order *models.Order) float64 {
	midpoint, ok := order.BudgetMidpoint()
	if !ok || midpoint <= 0 || len(recentQuotes) == 0 {
		return 6.0
	}

	if len(recentQuotes) > QuoteHistoryMax {
		recentQuotes = recentQuotes[:QuoteHistoryMax]
	}

	var sum float64
	for _, price := range recentQuotes {
		sum += price
	}
	avg := sum / float64(len(recentQuotes))

	ratio := avg / midpoint
	switch {
	case ratio <= 0.8:
		return 8.0
	case ratio <= 1.0:
		return 6.0
	case ratio <= 1.3:
		return 4.0
	default:
		return 1.0
	}
}
