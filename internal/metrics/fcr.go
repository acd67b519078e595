package metrics

import (
	"time"

	"github.com/deskpulse/deskpulse/internal/domain"
)

// fcrFastResolution is the resolution interval below which a ticket is
// assumed to have been handled in a single contact.
const fcrFastResolution = 4 * time.Hour

// FCRResult reports the first-contact-resolution rate over eligible
// resolved tickets.
type FCRResult struct {
	Rate          float64 `json:"rate"`
	Count         int     `json:"count"`
	TotalEligible int     `json:"total_eligible"`
	Formula       string  `json:"formula"`
	Error         string  `json:"error,omitempty"`
}

// CalcFCR computes the first-contact-resolution rate. A resolved
// eligible ticket counts as FCR when it was resolved within four hours
// or when it shows at most one outbound interaction and no group
// escalation. Either condition alone qualifies, so a slow single-touch
// resolution still counts.
func CalcFCR(tickets []domain.TicketRecord, opts Options) FCRResult {
	w := opts.window()

	result := FCRResult{
		Formula: "FCR = incidents resolved on first contact / total incidents x 100",
	}

	for _, t := range tickets {
		if !t.IsEligible() || !w.contains(t.CreatedAt) || !t.IsResolved() {
			continue
		}
		result.TotalEligible++

		withinTime := t.ResolutionInterval() <= fcrFastResolution
		singleTouch := t.Stats.OutboundCount <= 1 && !t.Stats.GroupEscalated

		if withinTime || singleTouch {
			result.Count++
		}
	}

	result.Rate = percentage(result.Count, result.TotalEligible)
	return result
}
