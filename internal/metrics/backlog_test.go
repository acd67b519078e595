package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/deskpulse/deskpulse/internal/domain"
)

func TestCalcBacklog_OverdueShare(t *testing.T) {
	// Due by default Medium SLA (24h), still open 21 days later.
	overdue := incident(base)

	fresh := incident(testOpts.Now.Add(-2 * time.Hour))

	resolved := resolvedIncident(base, time.Hour)

	result := CalcBacklog([]domain.TicketRecord{overdue, fresh, resolved}, testOpts)

	assert.Equal(t, 2, result.TotalOpen)
	assert.Equal(t, 1, result.OverdueOpen)
	assert.Equal(t, 50.0, result.Rate)
}

func TestCalcBacklog_AgeBucketsSumToOpen(t *testing.T) {
	now := testOpts.Now
	tickets := []domain.TicketRecord{
		incident(now.Add(-2 * time.Hour)),
		incident(now.Add(-30 * time.Hour)),
		incident(now.Add(-4 * 24 * time.Hour)),
		incident(now.Add(-10 * 24 * time.Hour)),
	}

	result := CalcBacklog(tickets, testOpts)

	dist := result.AgeDistribution
	assert.Equal(t, 1, dist.LessThan24h)
	assert.Equal(t, 1, dist.Between24hAnd72h)
	assert.Equal(t, 1, dist.Between72hAnd7d)
	assert.Equal(t, 1, dist.MoreThan7d)
	assert.Equal(t, result.TotalOpen, dist.LessThan24h+dist.Between24hAnd72h+dist.Between72hAnd7d+dist.MoreThan7d)
}

func TestCalcBacklog_RespectsExplicitDueBy(t *testing.T) {
	open := incident(base)
	open.DueBy = tsPtr(testOpts.Now.Add(24 * time.Hour))

	result := CalcBacklog([]domain.TicketRecord{open}, testOpts)

	assert.Equal(t, 1, result.TotalOpen)
	assert.Equal(t, 0, result.OverdueOpen)
}

func TestCalcBacklogDetail_NetBacklog(t *testing.T) {
	tickets := []domain.TicketRecord{
		resolvedIncident(base, time.Hour),
		resolvedIncident(base, 2*time.Hour),
		resolvedIncident(base, 3*time.Hour),
		incident(base),
		incident(base.Add(24 * time.Hour)),
	}

	result := CalcBacklogDetail(tickets, testOpts)

	assert.Equal(t, 2, result.OpenTickets)
	assert.Equal(t, 3, result.ClosedTickets)
	assert.Equal(t, -1, result.NetBacklog)
	assert.Greater(t, result.AvgAgeHours, 0.0)
}

func TestCalcBacklogDetail_Empty(t *testing.T) {
	result := CalcBacklogDetail(nil, testOpts)

	assert.Equal(t, 0, result.OpenTickets)
	assert.Equal(t, 0, result.ClosedTickets)
	assert.Equal(t, 0, result.NetBacklog)
	assert.Equal(t, 0.0, result.AvgAgeHours)
}
