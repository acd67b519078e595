package domain

import (
	"strconv"
	"time"
)

// CallDirection classifies a telephony call record.
type CallDirection string

const (
	CallInbound  CallDirection = "inbound"
	CallOutbound CallDirection = "outbound"
	CallInternal CallDirection = "internal"
)

// CallRecord is the canonical telephony record produced by the upstream
// telephony adapter.
type CallRecord struct {
	ID              string        `json:"id"`
	StartedAt       time.Time     `json:"started_at"`
	DurationSeconds int           `json:"duration_seconds"`
	TalkTimeSeconds int           `json:"talk_time_seconds"`
	Direction       CallDirection `json:"direction"`
	Answered        bool          `json:"answered"`
	Abandoned       bool          `json:"abandoned"`
	QueueID         string        `json:"queue_id,omitempty"`
	Extension       string        `json:"extension,omitempty"`
}

// IsInbound reports whether the call arrived at the support center.
func (c CallRecord) IsInbound() bool {
	return c.Direction == CallInbound
}

// Group is a support group from the ticketing provider's directory.
type Group struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GroupDirectory maps group IDs to display names for report breakdowns.
type GroupDirectory map[int64]string

// NewGroupDirectory builds a directory from a group listing.
func NewGroupDirectory(groups []Group) GroupDirectory {
	dir := make(GroupDirectory, len(groups))
	for _, g := range groups {
		dir[g.ID] = g.Name
	}
	return dir
}

// Name returns the display name for a group, or a stable placeholder
// for groups missing from the directory.
func (d GroupDirectory) Name(id int64) string {
	if name, ok := d[id]; ok {
		return name
	}
	if id == 0 {
		return "unassigned"
	}
	return "group " + strconv.FormatInt(id, 10)
}
