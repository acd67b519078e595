package domain

// SLAPolicy defines the response and resolution targets for a support
// group, in minutes. Resolution targets vary by ticket priority.
type SLAPolicy struct {
	FirstResponseMinutes        int                    `json:"first_response_minutes"`
	ResolutionMinutesByPriority map[TicketPriority]int `json:"resolution_minutes_by_priority"`
}

// ResolutionMinutes returns the resolution target for a priority,
// falling back to the Medium target for unmapped priorities.
func (p SLAPolicy) ResolutionMinutes(priority TicketPriority) int {
	if minutes, ok := p.ResolutionMinutesByPriority[priority]; ok {
		return minutes
	}
	return p.ResolutionMinutesByPriority[PriorityMedium]
}

// DefaultSLAPolicy is the standard support-desk SLA: respond within 15
// minutes, resolve within 72h/24h/4h/2h for Low through Urgent.
func DefaultSLAPolicy() SLAPolicy {
	return SLAPolicy{
		FirstResponseMinutes: 15,
		ResolutionMinutesByPriority: map[TicketPriority]int{
			PriorityLow:    4320,
			PriorityMedium: 1440,
			PriorityHigh:   240,
			PriorityUrgent: 120,
		},
	}
}

// SLATable maps group identifiers to their SLA policies. Calculators
// receive a table instead of matching on group-name substrings.
type SLATable struct {
	Default SLAPolicy           `json:"default"`
	ByGroup map[int64]SLAPolicy `json:"by_group,omitempty"`
}

// DefaultSLATable returns a table that applies DefaultSLAPolicy to
// every group.
func DefaultSLATable() SLATable {
	return SLATable{Default: DefaultSLAPolicy()}
}

// PolicyFor returns the SLA policy for a group, or the default policy
// when the group has no dedicated entry.
func (s SLATable) PolicyFor(groupID int64) SLAPolicy {
	if policy, ok := s.ByGroup[groupID]; ok {
		return policy
	}
	return s.Default
}
