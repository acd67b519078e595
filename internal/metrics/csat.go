package metrics

import "github.com/deskpulse/deskpulse/internal/domain"

// CSATResult reports customer satisfaction over resolved tickets that
// carry a rating on the 1-5 scale.
type CSATResult struct {
	Average       float64 `json:"average"`
	PositiveRate  float64 `json:"positive_rate"`
	PositiveCount int     `json:"positive_count"`
	Total         int     `json:"total"`
	Formula       string  `json:"formula"`
	Error         string  `json:"error,omitempty"`
}

// CalcCSAT averages the satisfaction ratings of resolved tickets in the
// window. PositiveRate is the share of ratings at 4 or above.
func CalcCSAT(tickets []domain.TicketRecord, opts Options) CSATResult {
	w := opts.window()

	result := CSATResult{
		Formula: "CSAT = sum of ratings / number of ratings",
	}

	var sum float64

	for _, t := range tickets {
		if !w.contains(t.CreatedAt) || !t.IsResolved() {
			continue
		}
		if t.SatisfactionRating == nil || *t.SatisfactionRating <= 0 {
			continue
		}

		sum += *t.SatisfactionRating
		result.Total++
		if *t.SatisfactionRating >= 4 {
			result.PositiveCount++
		}
	}

	if result.Total > 0 {
		result.Average = round2(sum / float64(result.Total))
	}
	result.PositiveRate = percentage(result.PositiveCount, result.Total)
	return result
}

// NormalizedScore returns the average rating projected onto a 0-100
// scale, for report sections that present CSAT as a percentage.
func (r CSATResult) NormalizedScore() float64 {
	return round2(r.Average * 20)
}
