package matching

import (
	"time"

	"github.com/fablink/fablink-api/models"
)

// rushLeadTimeFactor is the lead-time reduction assumed for manufacturers
// that can expedite rush orders.
const rushLeadTimeFactor = 0.7

// ScoreAvailability returns the availability sub-score, scaled to [0, 5],
// from the manufacturer's effective production lead time. Lead times beyond
// two weeks still score 2 when they fit before the order deadline, and 1
// when they do not.
func ScoreAvailability(m *models.ManufacturerProfile, order *models.Order, now time.Time) float64 {
	leadDays := float64(m.LeadTimeDays)
	if m.RushCapable {
		leadDays *= rushLeadTimeFactor
	}

	switch {
	case leadDays <= 1:
		return 5.0
	case leadDays <= 7:
		return 4.0
	case leadDays <= 14:
		return 3.0
	}

	if !order.DeliveryDeadline.IsZero() {
		daysUntilDeadline := order.DeliveryDeadline.Sub(now).Hours() / 24
		if leadDays > daysUntilDeadline {
			return 1.0
		}
	}
	return 2.0
}
