package matching

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/fablink/fablink-api/models"
)

// ScoreProximity returns the geographic proximity sub-score, scaled to
// [0, 12]. Orders without a location preference score a same-country
// default of 8 for every candidate.
func ScoreProximity(m *models.ManufacturerProfile, order *models.Order) float64 {
	if !order.HasLocationPreference() {
		return 8.0
	}

	// City-level match, exact or fuzzy.
	if order.PreferredCity != "" && m.City != "" {
		if fuzzy.Ratio(order.PreferredCity, m.City) >= LocationMatchThreshold {
			return 12.0
		}
	}

	// Region preference matched against the manufacturer's city covers
	// metro-area phrasings like "Greater Chicago".
	if order.PreferredRegion != "" && m.City != "" {
		if fuzzy.PartialRatio(order.PreferredRegion, m.City) >= LocationMatchThreshold {
			return 12.0
		}
	}

	if order.PreferredCountry != "" && m.Country != "" {
		if fuzzy.Ratio(order.PreferredCountry, m.Country) >= LocationMatchThreshold {
			return 8.0
		}
		if continentOf(order.PreferredCountry) == continentOf(m.Country) && continentOf(m.Country) != "" {
			return 5.0
		}
		return 2.0
	}

	// Preference exists but nothing comparable on the profile.
	return 2.0
}

// continentLookup is a simplified country-to-continent table covering the
// countries seen on the platform. Unknown countries map to "".
var continentLookup = map[string]string{
	"usa": "north america", "united states": "north america", "canada": "north america", "mexico": "north america",
	"germany": "europe", "france": "europe", "uk": "europe", "united kingdom": "europe",
	"italy": "europe", "spain": "europe", "poland": "europe", "netherlands": "europe",
	"sweden": "europe", "switzerland": "europe", "czech republic": "europe", "portugal": "europe",
	"china": "asia", "japan": "asia", "india": "asia", "south korea": "asia",
	"taiwan": "asia", "vietnam": "asia", "thailand": "asia", "malaysia": "asia", "singapore": "asia",
	"brazil": "south america", "argentina": "south america", "chile": "south america", "colombia": "south america",
	"australia": "oceania", "new zealand": "oceania",
	"south africa": "africa", "egypt": "africa", "morocco": "africa", "nigeria": "africa",
	"turkey": "asia", "israel": "asia", "uae": "asia", "united arab emirates": "asia",
}

func continentOf(country string) string {
	return continentLookup[strings.ToLower(strings.TrimSpace(country))]
}
