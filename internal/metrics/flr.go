package metrics

import "github.com/deskpulse/deskpulse/internal/domain"

// FLRResult reports the first-level-resolution rate over eligible
// resolved tickets.
type FLRResult struct {
	Rate          float64 `json:"rate"`
	Count         int     `json:"count"`
	TotalEligible int     `json:"total_eligible"`
	Formula       string  `json:"formula"`
	Error         string  `json:"error,omitempty"`
}

// CalcFLR computes the first-level-resolution rate: eligible resolved
// tickets that carry no escalation flag at all. Shares the escalation
// predicate with the reopen breakdown.
func CalcFLR(tickets []domain.TicketRecord, opts Options) FLRResult {
	w := opts.window()

	result := FLRResult{
		Formula: "FLR = incidents resolved at level 1 / total incidents x 100",
	}

	for _, t := range tickets {
		if !t.IsEligible() || !w.contains(t.CreatedAt) || !t.IsResolved() {
			continue
		}
		result.TotalEligible++

		if !t.WasEscalated() {
			result.Count++
		}
	}

	result.Rate = percentage(result.Count, result.TotalEligible)
	return result
}
