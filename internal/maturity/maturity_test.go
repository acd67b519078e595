package maturity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

func allLevels(l1, l2, l3, l4 bool) Levels {
	return Levels{Level1: l1, Level2: l2, Level3: l3, Level4: l4}
}

func TestScoreCategory_Cumulative(t *testing.T) {
	tests := []struct {
		name     string
		levels   Levels
		expected float64
	}{
		{"no evidence", allLevels(false, false, false, false), 0.0},
		{"level 1 only", allLevels(true, false, false, false), 1.0},
		{"levels 1-2", allLevels(true, true, false, false), 2.0},
		{"levels 1-3", allLevels(true, true, true, false), 3.0},
		{"all levels", allLevels(true, true, true, true), 4.0},
		{"gap at level 3 stops accumulation", allLevels(true, true, false, true), 2.0},
		{"gap at level 2 stops accumulation", allLevels(true, false, true, true), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scored := ScoreCategory(tt.levels)
			assert.Equal(t, tt.expected, scored.Score)
			assert.False(t, scored.PartialScore)
		})
	}
}

func TestScoreCategory_PartialCredit(t *testing.T) {
	// Level 2 and 3 evidence without the level 1 base earn 0.2 each.
	scored := ScoreCategory(allLevels(false, true, true, true))

	assert.InDelta(t, 0.4, scored.Score, 1e-9)
	assert.True(t, scored.PartialScore)
	assert.False(t, scored.HasLevel1)
	assert.False(t, scored.Breakdown.Level4)
}

func TestScoreCategory_Level4NeverPartial(t *testing.T) {
	scored := ScoreCategory(allLevels(false, false, false, true))

	assert.Equal(t, 0.0, scored.Score)
	assert.False(t, scored.PartialScore)
}

func fullAssessment(levels Levels) map[Category]Levels {
	assessment := make(map[Category]Levels, len(Categories))
	for _, id := range Categories {
		assessment[id] = levels
	}
	return assessment
}

func TestScore_AllLevelsPassed(t *testing.T) {
	result := Score(fullAssessment(allLevels(true, true, true, true)), testNow)

	assert.Equal(t, 4.0, result.FinalScore)
	assert.True(t, result.Passed)
	assert.Contains(t, result.Status, "certified")
	assert.Len(t, result.Categories, 8)
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, 8, result.Summary.CategoriesWithLevel1)
	assert.Equal(t, testNow, result.GeneratedAt)
}

func TestScore_NoEvidenceFails(t *testing.T) {
	result := Score(nil, testNow)

	assert.Equal(t, 0.0, result.FinalScore)
	assert.False(t, result.Passed)
	assert.Contains(t, result.Status, "not certified")
	assert.Len(t, result.Recommendations, 8)
	for _, rec := range result.Recommendations {
		assert.Equal(t, "critical", rec.Priority)
	}
}

func TestScore_ThresholdBoundary(t *testing.T) {
	// Four categories at 3.0 and four at 2.0 average exactly 2.5.
	assessment := make(map[Category]Levels, len(Categories))
	for i, id := range Categories {
		if i < 4 {
			assessment[id] = allLevels(true, true, true, false)
		} else {
			assessment[id] = allLevels(true, true, false, false)
		}
	}

	result := Score(assessment, testNow)

	assert.Equal(t, 2.5, result.FinalScore)
	assert.True(t, result.Passed)
}

func TestScore_RecommendationOrdering(t *testing.T) {
	assessment := fullAssessment(allLevels(true, true, true, true))
	assessment[Leadership] = allLevels(false, false, false, false) // critical
	assessment[Processes] = allLevels(true, false, false, false)  // high
	assessment[Resources] = allLevels(true, true, false, false)   // medium

	result := Score(assessment, testNow)

	assert.Len(t, result.Recommendations, 3)
	assert.Equal(t, "critical", result.Recommendations[0].Priority)
	assert.Equal(t, "high", result.Recommendations[1].Priority)
	assert.Equal(t, "medium", result.Recommendations[2].Priority)
	assert.Equal(t, "Leadership", result.Recommendations[0].Category)
}
