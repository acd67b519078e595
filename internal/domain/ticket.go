package domain

import (
	"strings"
	"time"
)

// TicketPriority is the ordinal priority scale used by the ticketing
// provider: 1 = Low through 4 = Urgent.
type TicketPriority int

const (
	PriorityLow    TicketPriority = 1
	PriorityMedium TicketPriority = 2
	PriorityHigh   TicketPriority = 3
	PriorityUrgent TicketPriority = 4
)

// String returns a human-readable priority label.
func (p TicketPriority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	default:
		return "unknown"
	}
}

// TicketStats carries the provider-specific escalation and interaction
// flags. Absent flags are zero values and are treated as "no evidence".
type TicketStats struct {
	Escalated             bool  `json:"escalated"`
	EscalatedToGroupID    int64 `json:"escalated_to_group_id,omitempty"`
	EscalatedToManagement bool  `json:"escalated_to_management"`
	EscalatedToExternal   bool  `json:"escalated_to_external"`
	GroupEscalated        bool  `json:"group_escalated"`
	OutboundCount         int   `json:"outbound_count"`
}

// TicketRecord is the canonical ticket shape produced by the upstream
// ticketing adapter. All provider field aliases are resolved before a
// record reaches the calculators.
type TicketRecord struct {
	ID                 int64          `json:"id"`
	CreatedAt          time.Time      `json:"created_at"`
	Priority           TicketPriority `json:"priority"`
	Type               string         `json:"type"`
	Source             string         `json:"source,omitempty"`
	GroupID            int64          `json:"group_id,omitempty"`
	ResponderID        *int64         `json:"responder_id,omitempty"`
	ResolvedAt         *time.Time     `json:"resolved_at,omitempty"`
	ClosedAt           *time.Time     `json:"closed_at,omitempty"`
	DueBy              *time.Time     `json:"due_by,omitempty"`
	FirstRespondedAt   *time.Time     `json:"first_responded_at,omitempty"`
	ReopenedCount      int            `json:"reopened_count"`
	SatisfactionRating *float64       `json:"satisfaction_rating,omitempty"`
	ArticleID          *int64         `json:"article_id,omitempty"`
	Stats              TicketStats    `json:"stats"`
}

// eligibleTypes is the HDI incident/request allow-list, matched
// case-insensitively as substrings of the provider ticket type.
var eligibleTypes = []string{
	"incident",
	"incidente",
	"service request",
	"request",
	"requisição",
	"requisicao",
}

// IsEligible reports whether the ticket type is an incident or service
// request and therefore counts toward HDI-SCC metrics.
func (t TicketRecord) IsEligible() bool {
	tp := strings.ToLower(t.Type)
	if tp == "" {
		return false
	}
	for _, allowed := range eligibleTypes {
		if strings.Contains(tp, allowed) {
			return true
		}
	}
	return false
}

// IsIncident distinguishes incidents from service requests when a
// metric breaks down by ticket type.
func (t TicketRecord) IsIncident() bool {
	return strings.Contains(strings.ToLower(t.Type), "incident")
}

// ResolutionTimestamp returns the timestamp that marks this ticket
// resolved: resolved_at when present, closed_at otherwise, nil when the
// ticket is still part of the open backlog.
func (t TicketRecord) ResolutionTimestamp() *time.Time {
	if t.ResolvedAt != nil {
		return t.ResolvedAt
	}
	return t.ClosedAt
}

// IsResolved reports whether the ticket carries a resolution timestamp.
func (t TicketRecord) IsResolved() bool {
	return t.ResolutionTimestamp() != nil
}

// WasEscalated reports whether any escalation flag marks the ticket as
// handled beyond the first level.
func (t TicketRecord) WasEscalated() bool {
	return t.Stats.Escalated || t.Stats.EscalatedToGroupID != 0 || t.Stats.GroupEscalated
}

// ResolutionInterval returns resolved-minus-created. Records whose
// resolution timestamp precedes creation are processed as-is; the
// negative interval simply fails any fast-resolution check.
func (t TicketRecord) ResolutionInterval() time.Duration {
	resolved := t.ResolutionTimestamp()
	if resolved == nil {
		return 0
	}
	return resolved.Sub(t.CreatedAt)
}

// EffectiveDueBy resolves the SLA deadline: the explicit due_by when
// present, otherwise created_at plus the policy's resolution target for
// the ticket's priority.
func (t TicketRecord) EffectiveDueBy(policy SLAPolicy) time.Time {
	if t.DueBy != nil {
		return *t.DueBy
	}
	priority := t.Priority
	if priority < PriorityLow || priority > PriorityUrgent {
		priority = PriorityMedium
	}
	return t.CreatedAt.Add(time.Duration(policy.ResolutionMinutes(priority)) * time.Minute)
}
