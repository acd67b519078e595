package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/deskpulse/deskpulse/internal/domain"
	"github.com/deskpulse/deskpulse/internal/metrics"
	"github.com/deskpulse/deskpulse/internal/workforce"
)

var (
	reportNow  = time.Date(2026, 3, 31, 12, 0, 0, 0, time.Local)
	reportBase = time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
)

func testOptions() Options {
	return Options{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
		Budget:    10000,
		Now:       reportNow,
	}
}

func sampleTickets() []domain.TicketRecord {
	resolved := reportBase.Add(time.Hour)
	rating := 5.0

	return []domain.TicketRecord{
		{
			ID:                 1,
			CreatedAt:          reportBase,
			Priority:           domain.PriorityMedium,
			Type:               "Incident",
			Source:             "Email",
			ResolvedAt:         &resolved,
			SatisfactionRating: &rating,
		},
		{
			ID:        2,
			CreatedAt: reportBase.Add(2 * time.Hour),
			Priority:  domain.PriorityHigh,
			Type:      "Incident",
			Source:    "Phone",
			GroupID:   3,
			Stats:     domain.TicketStats{EscalatedToGroupID: 7},
		},
		{
			ID:        3,
			CreatedAt: reportBase.Add(4 * time.Hour),
			Priority:  domain.PriorityLow,
			Type:      "Service Request",
			Source:    "Portal",
		},
	}
}

func sampleCalls() []domain.CallRecord {
	return []domain.CallRecord{
		{ID: "c1", StartedAt: reportBase, Direction: domain.CallInbound, Answered: true, DurationSeconds: 180, TalkTimeSeconds: 150},
		{ID: "c2", StartedAt: reportBase, Direction: domain.CallInbound, Abandoned: true},
	}
}

func sampleGroups() []domain.Group {
	return []domain.Group{{ID: 3, Name: "Service Desk"}, {ID: 7, Name: "Infrastructure"}}
}

func TestEngine_Basic(t *testing.T) {
	engine := NewEngine()

	result := engine.Basic(sampleTickets(), sampleCalls(), sampleGroups(), testOptions())

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, 3, result.TotalTickets)
	assert.Equal(t, 2, result.TotalCalls)
	assert.Equal(t, 3, result.Volume.Received)
	assert.Equal(t, 1, result.Volume.Resolved)
	assert.Equal(t, 100.0, result.FCR.Rate)
	assert.Equal(t, 50.0, result.AbandonmentRate.Rate)
	assert.Equal(t, 10000.0, result.CostPerTicket.TotalBudget)
	assert.Equal(t, 2, result.Backlog.OpenTickets)
	assert.Equal(t, 5.0, result.CSAT.Average)
	assert.Nil(t, result.ErlangC)
	assert.Equal(t, reportNow, result.LastUpdated)
	assert.Equal(t, "2026-03-01", result.Period.StartDate)
	assert.Len(t, result.Maturity.Categories, 8)

	assert.Len(t, result.TopEscalations, 1)
	assert.Equal(t, "Infrastructure", result.TopEscalations[0].Name)
}

func TestEngine_Basic_WithWorkforce(t *testing.T) {
	opts := testOptions()
	opts.Workforce = &workforce.ErlangParams{
		CallsPerHour:        100,
		AvgHandleTimeSec:    240,
		TargetServiceLevel:  0.80,
		TargetAnswerTimeSec: 20,
	}

	result := NewEngine().Basic(sampleTickets(), sampleCalls(), sampleGroups(), opts)

	assert.NotNil(t, result.ErlangC)
	assert.Equal(t, 10, result.ErlangC.AgentsRequired)
}

func TestEngine_Basic_Deterministic(t *testing.T) {
	engine := NewEngine()
	opts := testOptions()

	first := engine.Basic(sampleTickets(), sampleCalls(), sampleGroups(), opts)
	second := engine.Basic(sampleTickets(), sampleCalls(), sampleGroups(), opts)

	// Everything except the report ID is a pure function of the inputs.
	first.ID = second.ID
	assert.Equal(t, first, second)
}

func TestEngine_Full(t *testing.T) {
	engine := NewEngine()

	result := engine.Full(sampleTickets(), sampleCalls(), sampleGroups(), testOptions())

	assert.NotEmpty(t, result.ID)
	assert.Nil(t, result.PeopleExperience.ENPS)
	assert.Nil(t, result.PeopleExperience.Turnover)
	assert.Nil(t, result.CustomerExperience.NPS)
	assert.Equal(t, 5.0, result.CustomerExperience.CSAT.Average)
	assert.Equal(t, 100.0, result.CustomerExperience.CSATScore)

	perf := result.PerformanceResults
	assert.Equal(t, 3, perf.RegisteredTickets.Registered)
	assert.Equal(t, 2, perf.ContactsReceived.ByTouchpoint.Phone)
	assert.Equal(t, 50.0, perf.AbandonmentRate.Rate)
	assert.Equal(t, 33.33, perf.InternalEsc.Rate)
	assert.Contains(t, perf.ResolutionByGroup.ByGroup, "unassigned")
	assert.Len(t, result.Maturity.Categories, 8)
}

func TestEngine_Full_WithSurveys(t *testing.T) {
	opts := testOptions()
	opts.EmployeeSurvey = &metrics.SurveyData{Promoters: 12, Detractors: 3, Passives: 5}
	opts.CustomerSurvey = &metrics.SurveyData{Promoters: 70, Detractors: 10, Passives: 20}
	opts.Staff = &metrics.StaffData{Left: 2, Total: 20}
	opts.Absence = &metrics.AbsenceData{UnplannedHours: 16, PlannedHours: 160, TotalAnalysts: 20}

	result := NewEngine().Full(sampleTickets(), sampleCalls(), sampleGroups(), opts)

	assert.NotNil(t, result.PeopleExperience.ENPS)
	assert.Equal(t, 45.0, result.PeopleExperience.ENPS.Score)
	assert.NotNil(t, result.PeopleExperience.Turnover)
	assert.Equal(t, 10.0, result.PeopleExperience.Turnover.Rate)
	assert.NotNil(t, result.PeopleExperience.Absenteeism)
	assert.Equal(t, 0.5, result.PeopleExperience.Absenteeism.Rate)
	assert.NotNil(t, result.CustomerExperience.NPS)
	assert.Equal(t, 60.0, result.CustomerExperience.NPS.Score)
}

func TestEngine_Full_WithWorkforceData(t *testing.T) {
	opts := testOptions()
	opts.Utilization = &metrics.UtilizationData{
		HandleMinutes: metrics.TouchpointMinutes{Phone: 8, Email: 12, Chat: 10, Portal: 15},
		Contacts:      metrics.TouchpointCounts{Phone: 3000, Email: 1200, Chat: 600, Portal: 400},
		PlannedHours:  160,
		TotalAnalysts: 10,
	}
	opts.AgentTime = &metrics.AgentTimeData{TalkMinutes: 3000, AfterCallMinutes: 900, LoggedMinutes: 4800}
	opts.Feedback = &metrics.FeedbackData{Responded: 340, Received: 400}

	result := NewEngine().Full(sampleTickets(), sampleCalls(), sampleGroups(), opts)

	assert.NotNil(t, result.PeopleExperience.StaffUtilization)
	assert.Equal(t, 52.5, result.PeopleExperience.StaffUtilization.Rate)
	assert.NotNil(t, result.PeopleExperience.Occupancy)
	assert.Equal(t, 81.25, result.PeopleExperience.Occupancy.Rate)
	assert.NotNil(t, result.CustomerExperience.FeedbackReturn)
	assert.Equal(t, 85.0, result.CustomerExperience.FeedbackReturn.Rate)
}

func TestEngine_Full_WorkforceDataAbsent(t *testing.T) {
	result := NewEngine().Full(sampleTickets(), sampleCalls(), sampleGroups(), testOptions())

	assert.Nil(t, result.PeopleExperience.StaffUtilization)
	assert.Nil(t, result.PeopleExperience.Occupancy)
	assert.Nil(t, result.CustomerExperience.FeedbackReturn)
}
