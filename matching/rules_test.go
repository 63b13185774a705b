package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fablink/fablink-api/models"
)

func scoredMatch(id uint, total float64) models.ManufacturerMatch {
	return models.ManufacturerMatch{
		ManufacturerID:   id,
		ManufacturerName: fmt.Sprintf("Shop %d", id),
		ScoreBreakdown:   models.MatchScoreBreakdown{TotalScore: total},
	}
}

func TestApplyRulesSortsAndRanks(t *testing.T) {
	matches := []models.ManufacturerMatch{
		scoredMatch(1, 72),
		scoredMatch(2, 91),
		scoredMatch(3, 65),
		scoredMatch(4, 88),
	}

	result, backfilled := ApplyRules(matches, DefaultMinScoreFloor, DefaultMaxRecommendations)

	assert.False(t, backfilled)
	assert.Len(t, result, 4)

	ids := []uint{}
	for i, m := range result {
		ids = append(ids, m.ManufacturerID)
		assert.Equal(t, i+1, m.Rank)
		assert.False(t, m.Backfilled)
	}
	assert.Equal(t, []uint{2, 4, 1, 3}, ids)
}

func TestApplyRulesFloorDropsLowScores(t *testing.T) {
	matches := []models.ManufacturerMatch{
		scoredMatch(1, 82),
		scoredMatch(2, 45),
		scoredMatch(3, 77),
		scoredMatch(4, 30),
		scoredMatch(5, 61),
	}

	result, backfilled := ApplyRules(matches, DefaultMinScoreFloor, DefaultMaxRecommendations)

	assert.False(t, backfilled)
	assert.Len(t, result, 3)
	for _, m := range result {
		assert.GreaterOrEqual(t, m.ScoreBreakdown.TotalScore, DefaultMinScoreFloor)
	}
}

func TestApplyRulesBackfillsThinResults(t *testing.T) {
	matches := []models.ManufacturerMatch{
		scoredMatch(1, 82),
		scoredMatch(2, 55),
		scoredMatch(3, 48),
		scoredMatch(4, 40),
	}

	result, backfilled := ApplyRules(matches, DefaultMinScoreFloor, DefaultMaxRecommendations)

	assert.True(t, backfilled)
	assert.Len(t, result, MinQualifiedResults)

	// Only the qualified match keeps Backfilled == false; the two best
	// unqualified candidates are pulled up and flagged.
	assert.Equal(t, uint(1), result[0].ManufacturerID)
	assert.False(t, result[0].Backfilled)
	assert.Equal(t, uint(2), result[1].ManufacturerID)
	assert.True(t, result[1].Backfilled)
	assert.Equal(t, uint(3), result[2].ManufacturerID)
	assert.True(t, result[2].Backfilled)
}

func TestApplyRulesCapsResults(t *testing.T) {
	var matches []models.ManufacturerMatch
	for i := 1; i <= 25; i++ {
		matches = append(matches, scoredMatch(uint(i), 60+float64(i)))
	}

	result, _ := ApplyRules(matches, DefaultMinScoreFloor, 10)
	assert.Len(t, result, 10)
	assert.Equal(t, 1, result[0].Rank)
	assert.Equal(t, 10, result[9].Rank)

	// Out-of-range caps fall back to the default maximum.
	result, _ = ApplyRules(matches, DefaultMinScoreFloor, 0)
	assert.Len(t, result, DefaultMaxRecommendations)
	result, _ = ApplyRules(matches, DefaultMinScoreFloor, 100)
	assert.Len(t, result, DefaultMaxRecommendations)
}

func TestApplyRulesStableOnTies(t *testing.T) {
	matches := []models.ManufacturerMatch{
		scoredMatch(10, 75),
		scoredMatch(20, 75),
		scoredMatch(30, 75),
	}

	for run := 0; run < 5; run++ {
		result, _ := ApplyRules(matches, DefaultMinScoreFloor, DefaultMaxRecommendations)
		assert.Equal(t, uint(10), result[0].ManufacturerID)
		assert.Equal(t, uint(20), result[1].ManufacturerID)
		assert.Equal(t, uint(30), result[2].ManufacturerID)
	}
}

func TestApplyRulesDoesNotMutateInput(t *testing.T) {
	matches := []models.ManufacturerMatch{
		scoredMatch(1, 50),
		scoredMatch(2, 90),
	}

	ApplyRules(matches, DefaultMinScoreFloor, DefaultMaxRecommendations)

	assert.Equal(t, uint(1), matches[0].ManufacturerID)
	assert.Equal(t, 0, matches[0].Rank)
	assert.False(t, matches[0].Backfilled)
}

func TestAssignRanks(t *testing.T) {
	matches := []models.ManufacturerMatch{
		{ManufacturerID: 1, Rank: 7},
		{ManufacturerID: 2, Rank: 2},
	}
	AssignRanks(matches)
	assert.Equal(t, 1, matches[0].Rank)
	assert.Equal(t, 2, matches[1].Rank)
}
