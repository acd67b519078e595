package metrics

import "github.com/deskpulse/deskpulse/internal/domain"

// ReopenByLevel breaks the reopen rate down by support level: n1 holds
// tickets resolved without escalation, n2 those that were escalated.
// n3 is reserved for a dedicated third-level mapping and stays zero
// until the ticketing provider exposes one.
type ReopenByLevel struct {
	N1 float64 `json:"n1"`
	N2 float64 `json:"n2"`
	N3 float64 `json:"n3"`
}

// ReopenResult reports the reopen rate over eligible resolved tickets.
type ReopenResult struct {
	Rate    float64       `json:"rate"`
	ByLevel ReopenByLevel `json:"by_level"`
	Count   int           `json:"count"`
	Total   int           `json:"total"`
	Formula string        `json:"formula"`
	Error   string        `json:"error,omitempty"`
}

// CalcReopenRate computes the fraction of eligible resolved tickets
// that were reopened at least once, with a per-level breakdown.
func CalcReopenRate(tickets []domain.TicketRecord, opts Options) ReopenResult {
	w := opts.window()

	result := ReopenResult{
		Formula: "reopen rate = reopened incidents / total resolved incidents x 100",
	}

	var reopenedN1, reopenedN2, totalN1, totalN2 int

	for _, t := range tickets {
		if !t.IsEligible() || !w.contains(t.CreatedAt) || !t.IsResolved() {
			continue
		}
		result.Total++

		escalated := t.WasEscalated()
		if escalated {
			totalN2++
		} else {
			totalN1++
		}

		if t.ReopenedCount > 0 {
			result.Count++
			if escalated {
				reopenedN2++
			} else {
				reopenedN1++
			}
		}
	}

	result.Rate = percentage(result.Count, result.Total)
	result.ByLevel = ReopenByLevel{
		N1: percentage(reopenedN1, totalN1),
		N2: percentage(reopenedN2, totalN2),
	}
	return result
}
