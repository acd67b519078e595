package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/deskpulse/deskpulse/internal/domain"
)

func TestCalcHierarchicalEscalation(t *testing.T) {
	toManagement := incident(base)
	toManagement.Stats.EscalatedToManagement = true

	result := CalcHierarchicalEscalation([]domain.TicketRecord{toManagement, incident(base), incident(base), incident(base)}, testOpts)

	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 1, result.Escalated)
	assert.Equal(t, 25.0, result.Rate)
}

func TestCalcInternalEscalation(t *testing.T) {
	byFlag := incident(base)
	byFlag.Stats.GroupEscalated = true

	byTarget := incident(base)
	byTarget.Stats.EscalatedToGroupID = 7

	result := CalcInternalEscalation([]domain.TicketRecord{byFlag, byTarget, incident(base), incident(base)}, testOpts)

	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 2, result.Escalated)
	assert.Equal(t, 50.0, result.Rate)
}

func TestCalcExternalEscalation_ResolvedDenominator(t *testing.T) {
	external := resolvedIncident(base, time.Hour)
	external.Stats.EscalatedToExternal = true

	openExternal := incident(base)
	openExternal.Stats.EscalatedToExternal = true

	result := CalcExternalEscalation([]domain.TicketRecord{external, openExternal, resolvedIncident(base, time.Hour)}, testOpts)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Escalated)
	assert.Equal(t, 50.0, result.Rate)
}

func TestTopEscalationTargets(t *testing.T) {
	dir := domain.NewGroupDirectory([]domain.Group{
		{ID: 7, Name: "Infrastructure"},
		{ID: 9, Name: "Networking"},
	})

	mk := func(groupID int64) domain.TicketRecord {
		t := incident(base)
		t.Stats.EscalatedToGroupID = groupID
		return t
	}

	tickets := []domain.TicketRecord{mk(9), mk(9), mk(7), mk(12), incident(base)}

	targets := TopEscalationTargets(tickets, dir, testOpts, 2)

	assert.Len(t, targets, 2)
	assert.Equal(t, EscalationTarget{GroupID: 9, Name: "Networking", Count: 2}, targets[0])
	assert.Equal(t, EscalationTarget{GroupID: 7, Name: "Infrastructure", Count: 1}, targets[1])
}

func TestTopEscalationTargets_UnknownGroupName(t *testing.T) {
	mk := incident(base)
	mk.Stats.EscalatedToGroupID = 99

	targets := TopEscalationTargets([]domain.TicketRecord{mk}, domain.GroupDirectory{}, testOpts, 5)

	assert.Len(t, targets, 1)
	assert.Equal(t, "group 99", targets[0].Name)
}
