package metrics

import "github.com/deskpulse/deskpulse/internal/domain"

// ResolutionByType splits SLA compliance between incidents and service
// requests.
type ResolutionByType struct {
	Incidents float64 `json:"incidents"`
	Requests  float64 `json:"requests"`
}

// ResolutionTimeResult reports the share of resolved tickets that met
// their effective SLA deadline.
type ResolutionTimeResult struct {
	Rate      float64          `json:"rate"`
	WithinSLA int              `json:"within_sla"`
	Total     int              `json:"total"`
	ByType    ResolutionByType `json:"by_type"`
	Formula   string           `json:"formula"`
	Error     string           `json:"error,omitempty"`
}

// CalcResolutionTime computes SLA compliance over resolved tickets in
// the window, split by ticket type.
func CalcResolutionTime(tickets []domain.TicketRecord, opts Options) ResolutionTimeResult {
	w := opts.window()

	result := ResolutionTimeResult{
		Formula: "resolution time = incidents resolved within SLA / total incidents x 100",
	}

	var incidentsWithin, incidentsTotal, requestsWithin, requestsTotal int

	for _, t := range tickets {
		if !w.contains(t.CreatedAt) {
			continue
		}
		resolved := t.ResolutionTimestamp()
		if resolved == nil {
			continue
		}
		result.Total++

		incident := t.IsIncident()
		if incident {
			incidentsTotal++
		} else {
			requestsTotal++
		}

		if !resolved.After(opts.dueBy(t)) {
			result.WithinSLA++
			if incident {
				incidentsWithin++
			} else {
				requestsWithin++
			}
		}
	}

	result.Rate = percentage(result.WithinSLA, result.Total)
	result.ByType = ResolutionByType{
		Incidents: percentage(incidentsWithin, incidentsTotal),
		Requests:  percentage(requestsWithin, requestsTotal),
	}
	return result
}

// GroupResolution is the SLA compliance of one support group.
type GroupResolution struct {
	WithinSLA int     `json:"within_sla"`
	Total     int     `json:"total"`
	Rate      float64 `json:"rate"`
}

// ResolutionDistributionResult reports SLA compliance per support
// group, keyed by group display name.
type ResolutionDistributionResult struct {
	Rate      float64                    `json:"rate"`
	WithinSLA int                        `json:"within_sla"`
	Total     int                        `json:"total"`
	ByGroup   map[string]GroupResolution `json:"by_group"`
	Formula   string                     `json:"formula"`
	Error     string                     `json:"error,omitempty"`
}

// CalcResolutionDistribution computes per-group SLA compliance over all
// resolved tickets, using the directory for display names.
func CalcResolutionDistribution(tickets []domain.TicketRecord, groups domain.GroupDirectory, opts Options) ResolutionDistributionResult {
	result := ResolutionDistributionResult{
		ByGroup: make(map[string]GroupResolution),
		Formula: "distribution = incidents resolved within SLA per group / total per group x 100",
	}

	for _, t := range tickets {
		resolved := t.ResolutionTimestamp()
		if resolved == nil {
			continue
		}

		name := groups.Name(t.GroupID)
		entry := result.ByGroup[name]
		entry.Total++
		result.Total++

		if !resolved.After(opts.dueBy(t)) {
			entry.WithinSLA++
			result.WithinSLA++
		}
		result.ByGroup[name] = entry
	}

	for name, entry := range result.ByGroup {
		entry.Rate = percentage(entry.WithinSLA, entry.Total)
		result.ByGroup[name] = entry
	}
	result.Rate = percentage(result.WithinSLA, result.Total)
	return result
}
