package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fablink/fablink-api/models"
)

func TestFilterCandidatesEligibilityGates(t *testing.T) {
	order := testOrder()

	tests := []struct {
		name   string
		mutate func(*models.ManufacturerProfile)
		kept   bool
	}{
		{"fully eligible", func(m *models.ManufacturerProfile) {}, true},
		{"inactive", func(m *models.ManufacturerProfile) { m.IsActive = false }, false},
		{"unverified", func(m *models.ManufacturerProfile) { m.IsVerified = false }, false},
		{"onboarding incomplete", func(m *models.ManufacturerProfile) { m.OnboardingComplete = false }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testManufacturer(1, "Acme Machining")
			tt.mutate(&m)

			kept := FilterCandidates([]models.ManufacturerProfile{m}, order)
			if tt.kept {
				assert.Len(t, kept, 1)
			} else {
				assert.Empty(t, kept)
			}
		})
	}
}

func TestFilterCandidatesKeepsProfilesWithoutCapabilities(t *testing.T) {
	// Missing data must not be penalized as exclusion: profiles with no
	// declared processes are scored later with neutral defaults.
	m := testManufacturer(1, "Quiet Shop")
	m.Processes = nil

	kept := FilterCandidates([]models.ManufacturerProfile{m}, testOrder())
	assert.Len(t, kept, 1)
}

func TestFilterCandidatesProcessCompatibility(t *testing.T) {
	order := testOrder() // requires CNC Machining

	similar := testManufacturer(1, "Precision Mills")
	similar.Processes = []string{"CNC Milling"}

	unrelated := testManufacturer(2, "Circuit Works")
	unrelated.Processes = []string{"Electronics Assembly"}

	kept := FilterCandidates([]models.ManufacturerProfile{similar, unrelated}, order)
	assert.Len(t, kept, 1)
	assert.Equal(t, uint(1), kept[0].ID, "Only the process-compatible shop should survive the filter")
}

func TestFilterCandidatesNoProcessRequirement(t *testing.T) {
	order := testOrder()
	order.Processes = nil

	m := testManufacturer(1, "Anything Inc")
	kept := FilterCandidates([]models.ManufacturerProfile{m}, order)
	assert.Len(t, kept, 1, "Without a process requirement every eligible shop is a candidate")
}

func TestFilterCandidatesDeterministic(t *testing.T) {
	order := testOrder()
	pool := []models.ManufacturerProfile{
		testManufacturer(1, "A"),
		testManufacturer(2, "B"),
		testManufacturer(3, "C"),
	}

	first := FilterCandidates(pool, order)
	second := FilterCandidates(pool, order)
	assert.Equal(t, first, second)
}
