package maturity

// OperationalEvidence is the slice of computed KPIs the auto-evaluator
// reads. Rates are percentages; CSATAverage is on the 1-5 scale.
type OperationalEvidence struct {
	FCRRate          float64
	FLRRate          float64
	AbandonmentRate  float64
	OpenTickets      int
	ClosedTickets    int
	CSATAverage      float64
	CSATPositiveRate float64
}

// AutoEvaluate derives the three results categories from operational
// metrics using fixed threshold ladders. The remaining five categories
// need externally supplied self-assessment and are never derivable
// from ticket or call data.
func AutoEvaluate(evidence OperationalEvidence) map[Category]Levels {
	evaluation := make(map[Category]Levels, 3)

	evaluation[ResultsPerformance] = Levels{
		Level1: evidence.FCRRate >= 50 || evidence.FLRRate >= 60,
		Level2: evidence.FCRRate >= 65 && evidence.FLRRate >= 70,
		Level3: evidence.FCRRate >= 75 && evidence.FLRRate >= 80,
		Level4: evidence.FCRRate >= 85 && evidence.FLRRate >= 90,
	}

	// A zero rate means no telephony data was measured, so it counts
	// as the worst case rather than a perfect score.
	abandonment := evidence.AbandonmentRate
	if abandonment <= 0 {
		abandonment = 100
	}
	backlogRatio := 0.0
	if evidence.OpenTickets > 0 {
		backlogRatio = float64(evidence.ClosedTickets) / float64(evidence.OpenTickets)
	}
	evaluation[ResultsHandling] = Levels{
		Level1: abandonment <= 15 && backlogRatio >= 0.5,
		Level2: abandonment <= 10 && backlogRatio >= 0.8,
		Level3: abandonment <= 5 && backlogRatio >= 1.0,
		Level4: abandonment <= 3 && backlogRatio >= 1.2,
	}

	evaluation[ResultsPeople] = Levels{
		Level1: evidence.CSATAverage >= 3.0 || evidence.CSATPositiveRate >= 60,
		Level2: evidence.CSATAverage >= 3.5 && evidence.CSATPositiveRate >= 70,
		Level3: evidence.CSATAverage >= 4.0 && evidence.CSATPositiveRate >= 80,
		Level4: evidence.CSATAverage >= 4.5 && evidence.CSATPositiveRate >= 90,
	}

	return evaluation
}

// MergeAssessments overlays the automatic evaluation onto a
// self-assessment; auto-derived categories win.
func MergeAssessments(self, auto map[Category]Levels) map[Category]Levels {
	merged := make(map[Category]Levels, len(Categories))
	for id, levels := range self {
		merged[id] = levels
	}
	for id, levels := range auto {
		merged[id] = levels
	}
	return merged
}
