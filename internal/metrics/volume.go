package metrics

import "github.com/deskpulse/deskpulse/internal/domain"

// VolumeResult reports the basic ticket volume counters for a period.
// Received and unresolved are counted by creation date; resolved is
// counted by resolution date, so a ticket created before the window but
// resolved inside it still counts as resolved work.
type VolumeResult struct {
	Received   int    `json:"received"`
	Resolved   int    `json:"resolved"`
	Unresolved int    `json:"unresolved"`
	Error      string `json:"error,omitempty"`
}

// CalcVolume counts received, resolved, and unresolved tickets for the
// window.
func CalcVolume(tickets []domain.TicketRecord, opts Options) VolumeResult {
	w := opts.window()

	var result VolumeResult

	for _, t := range tickets {
		inWindow := w.contains(t.CreatedAt)
		if inWindow {
			result.Received++
		}

		resolved := t.ResolutionTimestamp()
		if resolved != nil {
			if w.contains(*resolved) {
				result.Resolved++
			}
		} else if inWindow {
			result.Unresolved++
		}
	}

	return result
}

// AverageResult carries a single averaged value in minutes with the
// sample count it was derived from.
type AverageResult struct {
	Minutes float64 `json:"minutes"`
	Count   int     `json:"count"`
	Error   string  `json:"error,omitempty"`
}

// CalcAvgResolutionMinutes averages created-to-resolved intervals over
// tickets resolved inside the window. Non-positive intervals are
// skipped as data artifacts.
func CalcAvgResolutionMinutes(tickets []domain.TicketRecord, opts Options) AverageResult {
	w := opts.window()

	var result AverageResult
	var sum float64

	for _, t := range tickets {
		resolved := t.ResolutionTimestamp()
		if resolved == nil || !w.contains(*resolved) {
			continue
		}

		minutes := resolved.Sub(t.CreatedAt).Minutes()
		if minutes <= 0 {
			continue
		}
		sum += minutes
		result.Count++
	}

	if result.Count > 0 {
		result.Minutes = round2(sum / float64(result.Count))
	}
	return result
}

// CalcAvgFirstResponseMinutes averages created-to-first-response
// intervals over tickets created inside the window.
func CalcAvgFirstResponseMinutes(tickets []domain.TicketRecord, opts Options) AverageResult {
	w := opts.window()

	var result AverageResult
	var sum float64

	for _, t := range tickets {
		if !w.contains(t.CreatedAt) || t.FirstRespondedAt == nil {
			continue
		}

		minutes := t.FirstRespondedAt.Sub(t.CreatedAt).Minutes()
		if minutes <= 0 {
			continue
		}
		sum += minutes
		result.Count++
	}

	if result.Count > 0 {
		result.Minutes = round2(sum / float64(result.Count))
	}
	return result
}

// CostPerTicketResult reports the unit cost of support for a period.
type CostPerTicketResult struct {
	CostPerTicket float64 `json:"cost_per_ticket"`
	TotalBudget   float64 `json:"total_budget"`
	TotalTickets  int     `json:"total_tickets"`
	Formula       string  `json:"formula"`
	Error         string  `json:"error,omitempty"`
}

// CalcCostPerTicket divides the support budget by ticket volume. A
// missing or negative budget yields a zeroed result with an error
// message instead of a fault.
func CalcCostPerTicket(totalBudget float64, totalTickets int) CostPerTicketResult {
	result := CostPerTicketResult{
		Formula: "cost per ticket = total support budget / total tickets",
	}

	if totalBudget < 0 {
		result.Error = "budget not provided"
		return result
	}

	result.TotalBudget = totalBudget
	result.TotalTickets = totalTickets
	if totalTickets > 0 {
		result.CostPerTicket = round2(totalBudget / float64(totalTickets))
	}
	return result
}
