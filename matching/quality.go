package matching

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/fablink/fablink-api/models"
)

// RecognizedQualityCertifications are the certifications that earn a quality
// bonus. Matching is fuzzy (partial ratio) so "ISO9001:2015" and
// "ISO 9001 certified" both count.
var RecognizedQualityCertifications = []string{
	"ISO 9001",
	"AS9100",
	"ISO 14001",
	"IATF 16949",
}

const (
	certificationBonusPer = 0.5
	certificationBonusCap = 1.0
)

// ScoreQuality returns the quality sub-score, scaled to [0, 15]. Rating
// signals are averaged on a 0-10 scale, a capped certification bonus is
// added, and the result maps onto discrete brackets.
func ScoreQuality(m *models.ManufacturerProfile) float64 {
	var sum float64
	var n int

	if m.QualityRating != nil {
		sum += clamp(*m.QualityRating*2, 0, 10)
		n++
	}
	if m.OverallRating != nil {
		sum += clamp(*m.OverallRating*2, 0, 10)
		n++
	}

	var composite float64
	if n == 0 {
		// No rating data: assume decent quality for established shops,
		// slightly below for the rest.
		if m.CompletedOrders >= 20 {
			composite = 7.5
		} else {
			composite = 6.5
		}
	} else {
		composite = sum / float64(n)
	}

	composite += certificationBonus(m.Certifications)

	switch {
	case composite >= 9.5:
		return 15.0
	case composite >= 8.5:
		return 12.0
	case composite >= 7.0:
		return 8.0
	default:
		return 3.0
	}
}

// certificationBonus adds half a point per recognized quality certification,
// capped at one full point.
func certificationBonus(certs []string) float64 {
	var bonus float64
	for _, recognized := range RecognizedQualityCertifications {
		for _, c := range certs {
			if fuzzy.PartialRatio(recognized, c) >= CertificationMatchThreshold {
				bonus += certificationBonusPer
				break
			}
		}
	}
	if bonus > certificationBonusCap {
		bonus = certificationBonusCap
	}
	return bonus
}
