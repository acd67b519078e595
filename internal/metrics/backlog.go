package metrics

import "github.com/deskpulse/deskpulse/internal/domain"

// AgeDistribution buckets open tickets by age since creation. Every
// open ticket falls into exactly one bucket.
type AgeDistribution struct {
	LessThan24h      int `json:"less_than_24h"`
	Between24hAnd72h int `json:"between_24h_and_72h"`
	Between72hAnd7d  int `json:"between_72h_and_7d"`
	MoreThan7d       int `json:"more_than_7d"`
}

func (d *AgeDistribution) add(ageHours float64) {
	switch {
	case ageHours < 24:
		d.LessThan24h++
	case ageHours < 72:
		d.Between24hAnd72h++
	case ageHours < 24*7:
		d.Between72hAnd7d++
	default:
		d.MoreThan7d++
	}
}

// BacklogResult reports overdue open tickets against all open eligible
// tickets, with an age histogram. "Open" is a snapshot property
// evaluated against Options.Now, so the date window does not apply.
type BacklogResult struct {
	Rate            float64         `json:"rate"`
	OverdueOpen     int             `json:"overdue_open"`
	TotalOpen       int             `json:"total_open"`
	AgeDistribution AgeDistribution `json:"age_distribution"`
	Formula         string          `json:"formula"`
	Error           string          `json:"error,omitempty"`
}

// CalcBacklog computes the overdue share of the open eligible backlog.
func CalcBacklog(tickets []domain.TicketRecord, opts Options) BacklogResult {
	now := opts.now()

	result := BacklogResult{
		Formula: "backlog = overdue open incidents / total open incidents x 100",
	}

	for _, t := range tickets {
		if !t.IsEligible() || t.IsResolved() {
			continue
		}
		result.TotalOpen++

		result.AgeDistribution.add(now.Sub(t.CreatedAt).Hours())

		if now.After(opts.dueBy(t)) {
			result.OverdueOpen++
		}
	}

	result.Rate = percentage(result.OverdueOpen, result.TotalOpen)
	return result
}

// BacklogDetailResult is the basic-report backlog variant: window-
// scoped open/closed counts, the net backlog, and the average age of
// the currently open tickets.
type BacklogDetailResult struct {
	OpenTickets     int             `json:"open_tickets"`
	ClosedTickets   int             `json:"closed_tickets"`
	NetBacklog      int             `json:"net_backlog"`
	AvgAgeHours     float64         `json:"avg_age_hours"`
	AgeDistribution AgeDistribution `json:"age_distribution"`
	Formula         string          `json:"formula"`
	Error           string          `json:"error,omitempty"`
}

// CalcBacklogDetail counts open versus closed tickets created inside
// the window and profiles the age of the open ones at Options.Now.
func CalcBacklogDetail(tickets []domain.TicketRecord, opts Options) BacklogDetailResult {
	w := opts.window()
	now := opts.now()

	result := BacklogDetailResult{
		Formula: "net backlog = open tickets - closed tickets in period",
	}

	var totalAgeHours float64

	for _, t := range tickets {
		if !w.contains(t.CreatedAt) {
			continue
		}

		if t.IsResolved() {
			result.ClosedTickets++
			continue
		}

		result.OpenTickets++
		age := now.Sub(t.CreatedAt).Hours()
		totalAgeHours += age
		result.AgeDistribution.add(age)
	}

	result.NetBacklog = result.OpenTickets - result.ClosedTickets
	if result.OpenTickets > 0 {
		result.AvgAgeHours = round2(totalAgeHours / float64(result.OpenTickets))
	}
	return result
}
