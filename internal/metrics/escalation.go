package metrics

import (
	"sort"

	"github.com/deskpulse/deskpulse/internal/domain"
)

// EscalationResult reports one escalation rate. The denominator varies
// by metric: hierarchical and internal-functional escalation use all
// eligible tickets, external-functional uses resolved eligible tickets.
type EscalationResult struct {
	Rate      float64 `json:"rate"`
	Escalated int     `json:"escalated"`
	Total     int     `json:"total"`
	Formula   string  `json:"formula"`
	Error     string  `json:"error,omitempty"`
}

// CalcHierarchicalEscalation computes the share of eligible tickets
// escalated to management.
func CalcHierarchicalEscalation(tickets []domain.TicketRecord, opts Options) EscalationResult {
	w := opts.window()

	result := EscalationResult{
		Formula: "hierarchical escalation = incidents escalated to management / total incidents x 100",
	}

	for _, t := range tickets {
		if !t.IsEligible() || !w.contains(t.CreatedAt) {
			continue
		}
		result.Total++
		if t.Stats.EscalatedToManagement {
			result.Escalated++
		}
	}

	result.Rate = percentage(result.Escalated, result.Total)
	return result
}

// CalcInternalEscalation computes the share of eligible tickets moved
// to another group inside the support center.
func CalcInternalEscalation(tickets []domain.TicketRecord, opts Options) EscalationResult {
	w := opts.window()

	result := EscalationResult{
		Formula: "internal escalation = incidents escalated within the support center / total incidents x 100",
	}

	for _, t := range tickets {
		if !t.IsEligible() || !w.contains(t.CreatedAt) {
			continue
		}
		result.Total++
		if t.Stats.GroupEscalated || t.Stats.EscalatedToGroupID != 0 {
			result.Escalated++
		}
	}

	result.Rate = percentage(result.Escalated, result.Total)
	return result
}

// CalcExternalEscalation computes the share of resolved eligible
// tickets escalated outside the support center.
func CalcExternalEscalation(tickets []domain.TicketRecord, opts Options) EscalationResult {
	w := opts.window()

	result := EscalationResult{
		Formula: "external escalation = incidents escalated outside the support center / total resolved x 100",
	}

	for _, t := range tickets {
		if !t.IsEligible() || !w.contains(t.CreatedAt) || !t.IsResolved() {
			continue
		}
		result.Total++
		if t.Stats.EscalatedToExternal {
			result.Escalated++
		}
	}

	result.Rate = percentage(result.Escalated, result.Total)
	return result
}

// EscalationTarget is one destination group with its escalation volume.
type EscalationTarget struct {
	GroupID int64  `json:"group_id"`
	Name    string `json:"name"`
	Count   int    `json:"count"`
}

// TopEscalationTargets returns the most frequent escalation destination
// groups, largest first, capped at limit.
func TopEscalationTargets(tickets []domain.TicketRecord, groups domain.GroupDirectory, opts Options, limit int) []EscalationTarget {
	w := opts.window()

	counts := make(map[int64]int)
	for _, t := range tickets {
		if !w.contains(t.CreatedAt) || t.Stats.EscalatedToGroupID == 0 {
			continue
		}
		counts[t.Stats.EscalatedToGroupID]++
	}

	targets := make([]EscalationTarget, 0, len(counts))
	for id, count := range counts {
		targets = append(targets, EscalationTarget{GroupID: id, Name: groups.Name(id), Count: count})
	}
	// Count descending, group ID ascending for deterministic output.
	sort.Slice(targets, func(i, j int) bool {
		if targets[i].Count != targets[j].Count {
			return targets[i].Count > targets[j].Count
		}
		return targets[i].GroupID < targets[j].GroupID
	})

	if limit > 0 && len(targets) > limit {
		targets = targets[:limit]
	}
	return targets
}
