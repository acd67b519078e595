package metrics

import "github.com/deskpulse/deskpulse/internal/domain"

// maxResponseMinutes caps plausible first-response intervals at seven
// days; anything beyond that is treated as a data artifact.
const maxResponseMinutes = 7 * 24 * 60

// ResponseByTouchpoint reports average first-response minutes split by
// ticket type.
type ResponseByTouchpoint struct {
	Incidents float64 `json:"incidents"`
	Requests  float64 `json:"requests"`
}

// ResponseTimeResult reports the average first-response time in
// minutes over tickets that received a first response.
type ResponseTimeResult struct {
	Overall      float64              `json:"overall"`
	ByTouchpoint ResponseByTouchpoint `json:"by_touchpoint"`
	Total        int                  `json:"total"`
	Formula      string               `json:"formula"`
	Error        string               `json:"error,omitempty"`
}

// CalcResponseTime averages created-to-first-response intervals over
// tickets in the window, excluding non-positive and implausibly long
// intervals.
func CalcResponseTime(tickets []domain.TicketRecord, opts Options) ResponseTimeResult {
	w := opts.window()

	result := ResponseTimeResult{
		Formula: "response time = sum of wait times per touchpoint / count per touchpoint",
	}

	var sum, incidentSum, requestSum float64
	var incidentCount, requestCount int

	for _, t := range tickets {
		if !w.contains(t.CreatedAt) || t.FirstRespondedAt == nil {
			continue
		}

		minutes := t.FirstRespondedAt.Sub(t.CreatedAt).Minutes()
		if minutes <= 0 || minutes >= maxResponseMinutes {
			continue
		}

		sum += minutes
		result.Total++

		if t.IsIncident() {
			incidentSum += minutes
			incidentCount++
		} else {
			requestSum += minutes
			requestCount++
		}
	}

	if result.Total > 0 {
		result.Overall = round2(sum / float64(result.Total))
	}
	if incidentCount > 0 {
		result.ByTouchpoint.Incidents = round2(incidentSum / float64(incidentCount))
	}
	if requestCount > 0 {
		result.ByTouchpoint.Requests = round2(requestSum / float64(requestCount))
	}
	return result
}
