package maturity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutoEvaluate_PerformanceLadder(t *testing.T) {
	tests := []struct {
		name     string
		fcr, flr float64
		expected Levels
	}{
		{"no evidence", 10, 10, Levels{}},
		{"fcr alone reaches level 1", 55, 0, Levels{Level1: true}},
		{"flr alone reaches level 1", 0, 65, Levels{Level1: true}},
		{"mid range", 70, 75, Levels{Level1: true, Level2: true}},
		{"strong", 80, 85, Levels{Level1: true, Level2: true, Level3: true}},
		{"world class", 90, 95, Levels{Level1: true, Level2: true, Level3: true, Level4: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evaluation := AutoEvaluate(OperationalEvidence{FCRRate: tt.fcr, FLRRate: tt.flr})
			assert.Equal(t, tt.expected, evaluation[ResultsPerformance])
		})
	}
}

func TestAutoEvaluate_HandlingNeedsBothSignals(t *testing.T) {
	healthy := AutoEvaluate(OperationalEvidence{
		AbandonmentRate: 2,
		OpenTickets:     100,
		ClosedTickets:   150,
	})
	assert.Equal(t, Levels{Level1: true, Level2: true, Level3: true, Level4: true}, healthy[ResultsHandling])

	lowAbandonmentOnly := AutoEvaluate(OperationalEvidence{
		AbandonmentRate: 2,
		OpenTickets:     100,
		ClosedTickets:   10,
	})
	assert.Equal(t, Levels{}, lowAbandonmentOnly[ResultsHandling])
}

func TestAutoEvaluate_HandlingRequiresTelephonyData(t *testing.T) {
	evaluation := AutoEvaluate(OperationalEvidence{
		AbandonmentRate: 0,
		OpenTickets:     100,
		ClosedTickets:   150,
	})
	assert.Equal(t, Levels{}, evaluation[ResultsHandling])
}

func TestAutoEvaluate_PeopleLadder(t *testing.T) {
	evaluation := AutoEvaluate(OperationalEvidence{
		CSATAverage:      4.2,
		CSATPositiveRate: 85,
	})
	assert.Equal(t, Levels{Level1: true, Level2: true, Level3: true}, evaluation[ResultsPeople])
}

func TestAutoEvaluate_OnlyResultsCategories(t *testing.T) {
	evaluation := AutoEvaluate(OperationalEvidence{})

	assert.Len(t, evaluation, 3)
	assert.NotContains(t, evaluation, Leadership)
	assert.NotContains(t, evaluation, Processes)
}

func TestMergeAssessments_AutoWins(t *testing.T) {
	self := map[Category]Levels{
		Leadership:         {Level1: true, Level2: true},
		ResultsPerformance: {Level1: true, Level2: true, Level3: true, Level4: true},
	}
	auto := map[Category]Levels{
		ResultsPerformance: {Level1: true},
	}

	merged := MergeAssessments(self, auto)

	assert.Equal(t, Levels{Level1: true, Level2: true}, merged[Leadership])
	assert.Equal(t, Levels{Level1: true}, merged[ResultsPerformance])
}
