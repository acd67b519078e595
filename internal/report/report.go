// Package report composes the individual calculators into the two
// public report shapes: the basic HDI metrics report and the full
// HDI-SCC report. The engine holds no state; every report is a
// deterministic function of the supplied record collections and
// options.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/deskpulse/deskpulse/internal/domain"
	"github.com/deskpulse/deskpulse/internal/maturity"
	"github.com/deskpulse/deskpulse/internal/metrics"
	"github.com/deskpulse/deskpulse/internal/workforce"
)

// Options parameterizes a report run. StartDate and EndDate are ISO
// dates; Now anchors snapshot checks and timestamps (zero means
// time.Now()). Optional inputs that cannot be derived from ticket or
// call data (budget, workforce parameters, self-assessment, surveys)
// are included when the caller has them.
type Options struct {
	StartDate      string                                `json:"start_date"`
	EndDate        string                                `json:"end_date"`
	GroupID        int64                                 `json:"group_id,omitempty"`
	AgentID        int64                                 `json:"agent_id,omitempty"`
	Budget         float64                               `json:"budget,omitempty"`
	Workforce      *workforce.ErlangParams               `json:"workforce,omitempty"`
	CategoryScores map[maturity.Category]maturity.Levels `json:"category_scores,omitempty"`
	EmployeeSurvey *metrics.SurveyData                   `json:"employee_survey,omitempty"`
	CustomerSurvey *metrics.SurveyData                   `json:"customer_survey,omitempty"`
	Staff          *metrics.StaffData                    `json:"staff,omitempty"`
	Absence        *metrics.AbsenceData                  `json:"absence,omitempty"`
	Utilization    *metrics.UtilizationData              `json:"utilization,omitempty"`
	AgentTime      *metrics.AgentTimeData                `json:"agent_time,omitempty"`
	Feedback       *metrics.FeedbackData                 `json:"feedback,omitempty"`
	SLA            domain.SLATable                       `json:"sla,omitempty"`
	Now            time.Time                             `json:"-"`
}

func (o Options) metricOptions() metrics.Options {
	return metrics.Options{
		StartDate: o.StartDate,
		EndDate:   o.EndDate,
		Now:       o.Now,
		SLA:       o.SLA,
	}
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

// Period echoes the requested date window on every report.
type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Engine is the aggregation façade over the calculators.
type Engine struct {
	topGroups int
}

// NewEngine returns a report engine. Reports list the five busiest
// escalation-target groups.
func NewEngine() *Engine {
	return &Engine{topGroups: 5}
}

// NewEngineWithTopGroups returns an engine that lists up to n
// escalation-target groups per report.
func NewEngineWithTopGroups(n int) *Engine {
	if n <= 0 {
		return NewEngine()
	}
	return &Engine{topGroups: n}
}

// BasicReport is the basic HDI metrics report.
type BasicReport struct {
	ID               string                       `json:"id"`
	Volume           metrics.VolumeResult         `json:"volume"`
	FCR              metrics.FCRResult            `json:"fcr"`
	FLR              metrics.FLRResult            `json:"flr"`
	AbandonmentRate  metrics.AbandonmentResult    `json:"abandonment_rate"`
	CostPerTicket    metrics.CostPerTicketResult  `json:"cost_per_ticket"`
	AvgResolution    metrics.AverageResult        `json:"avg_resolution_time"`
	AvgFirstResponse metrics.AverageResult        `json:"avg_first_response_time"`
	Backlog          metrics.BacklogDetailResult  `json:"backlog"`
	CSAT             metrics.CSATResult           `json:"csat"`
	SLACompliance    metrics.ResolutionTimeResult `json:"sla_compliance"`
	TopEscalations   []metrics.EscalationTarget   `json:"top_escalations"`
	ErlangC          *workforce.ErlangResult      `json:"erlang_c,omitempty"`
	Maturity         maturity.Result              `json:"maturity"`
	TotalTickets     int                          `json:"total_tickets"`
	TotalCalls       int                          `json:"total_calls"`
	Period           Period                       `json:"period"`
	LastUpdated      time.Time                    `json:"last_updated"`
}

// Basic computes the basic HDI report: volume counters, the headline
// efficiency and satisfaction rates, backlog detail, the SLA donut
// source, the top escalation-target groups, optional staffing, and the
// maturity assessment.
func (e *Engine) Basic(tickets []domain.TicketRecord, calls []domain.CallRecord, groups []domain.Group, opts Options) BasicReport {
	mo := opts.metricOptions()
	dir := domain.NewGroupDirectory(groups)

	report := BasicReport{
		ID:               uuid.NewString(),
		Volume:           metrics.CalcVolume(tickets, mo),
		FCR:              metrics.CalcFCR(tickets, mo),
		FLR:              metrics.CalcFLR(tickets, mo),
		AbandonmentRate:  metrics.CalcAbandonmentRate(calls, mo),
		CostPerTicket:    metrics.CalcCostPerTicket(opts.Budget, len(tickets)),
		AvgResolution:    metrics.CalcAvgResolutionMinutes(tickets, mo),
		AvgFirstResponse: metrics.CalcAvgFirstResponseMinutes(tickets, mo),
		Backlog:          metrics.CalcBacklogDetail(tickets, mo),
		CSAT:             metrics.CalcCSAT(tickets, mo),
		SLACompliance:    metrics.CalcResolutionTime(tickets, mo),
		TopEscalations:   metrics.TopEscalationTargets(tickets, dir, mo, e.topGroups),
		TotalTickets:     len(tickets),
		TotalCalls:       len(calls),
		Period:           Period{StartDate: opts.StartDate, EndDate: opts.EndDate},
		LastUpdated:      opts.now(),
	}

	if opts.Workforce != nil {
		erlang := workforce.CalcErlangC(*opts.Workforce)
		report.ErlangC = &erlang
	}

	report.Maturity = e.assessMaturity(report.FCR, report.FLR, report.AbandonmentRate, report.Backlog, report.CSAT, opts)
	return report
}

func (e *Engine) assessMaturity(fcr metrics.FCRResult, flr metrics.FLRResult, abandonment metrics.AbandonmentResult, backlog metrics.BacklogDetailResult, csat metrics.CSATResult, opts Options) maturity.Result {
	auto := maturity.AutoEvaluate(maturity.OperationalEvidence{
		FCRRate:          fcr.Rate,
		FLRRate:          flr.Rate,
		AbandonmentRate:  abandonment.Rate,
		OpenTickets:      backlog.OpenTickets,
		ClosedTickets:    backlog.ClosedTickets,
		CSATAverage:      csat.Average,
		CSATPositiveRate: csat.PositiveRate,
	})
	return maturity.Score(maturity.MergeAssessments(opts.CategoryScores, auto), opts.now())
}

// PeopleExperience groups the people-results section of the full
// report. Sections without supplied input data stay null.
type PeopleExperience struct {
	ENPS             *metrics.NPSResult              `json:"enps,omitempty"`
	Turnover         *metrics.TurnoverResult         `json:"turnover,omitempty"`
	Absenteeism      *metrics.AbsenteeismResult      `json:"absenteeism,omitempty"`
	StaffUtilization *metrics.StaffUtilizationResult `json:"staff_utilization,omitempty"`
	Occupancy        *metrics.OccupancyResult        `json:"occupancy,omitempty"`
}

// CustomerExperience groups the customer-results section.
type CustomerExperience struct {
	NPS            *metrics.NPSResult            `json:"nps,omitempty"`
	CSAT           metrics.CSATResult            `json:"csat"`
	CSATScore      float64                       `json:"csat_score"`
	FeedbackReturn *metrics.FeedbackReturnResult `json:"feedback_return,omitempty"`
}

// PerformanceResults groups the operational performance section.
type PerformanceResults struct {
	RegisteredTickets metrics.RegisteredTicketsResult      `json:"registered_tickets"`
	ContactsReceived  metrics.ContactsReceivedResult       `json:"contacts_received"`
	ResponseTime      metrics.ResponseTimeResult           `json:"response_time"`
	AbandonmentRate   metrics.AbandonmentResult            `json:"abandonment_rate"`
	TelephonySummary  metrics.CallSummaryResult            `json:"telephony_summary"`
	ResolutionTime    metrics.ResolutionTimeResult         `json:"resolution_time"`
	FCR               metrics.FCRResult                    `json:"fcr"`
	FLR               metrics.FLRResult                    `json:"flr"`
	ReopenedRate      metrics.ReopenResult                 `json:"reopened_rate"`
	Backlog           metrics.BacklogResult                `json:"backlog"`
	HierarchicalEsc   metrics.EscalationResult             `json:"hierarchical_escalation"`
	InternalEsc       metrics.EscalationResult             `json:"internal_functional_escalation"`
	ExternalEsc       metrics.EscalationResult             `json:"external_functional_escalation"`
	ResolutionByGroup metrics.ResolutionDistributionResult `json:"resolution_time_distribution"`
	KnowledgeUsage    metrics.KnowledgeUsageResult         `json:"knowledge_management_usage"`
}

// FullReport is the complete HDI-SCC report.
type FullReport struct {
	ID                 string             `json:"id"`
	PeopleExperience   PeopleExperience   `json:"people_experience"`
	CustomerExperience CustomerExperience `json:"customer_experience"`
	PerformanceResults PerformanceResults `json:"performance_results"`
	Maturity           maturity.Result    `json:"maturity"`
	Period             Period             `json:"period"`
	LastUpdated        time.Time          `json:"last_updated"`
}

// Full computes the full HDI-SCC report: the basic performance metrics
// plus people-experience, customer-experience, channel breakdowns, and
// per-group resolution distribution.
func (e *Engine) Full(tickets []domain.TicketRecord, calls []domain.CallRecord, groups []domain.Group, opts Options) FullReport {
	mo := opts.metricOptions()
	dir := domain.NewGroupDirectory(groups)

	contacts := metrics.CalcContactsReceived(tickets, len(calls), mo)
	csat := metrics.CalcCSAT(tickets, mo)

	report := FullReport{
		ID: uuid.NewString(),
		CustomerExperience: CustomerExperience{
			CSAT:      csat,
			CSATScore: csat.NormalizedScore(),
		},
		PerformanceResults: PerformanceResults{
			RegisteredTickets: metrics.CalcRegisteredTickets(tickets, contacts.Total, mo),
			ContactsReceived:  contacts,
			ResponseTime:      metrics.CalcResponseTime(tickets, mo),
			AbandonmentRate:   metrics.CalcAbandonmentRate(calls, mo),
			TelephonySummary:  metrics.CalcCallSummary(calls, mo),
			ResolutionTime:    metrics.CalcResolutionTime(tickets, mo),
			FCR:               metrics.CalcFCR(tickets, mo),
			FLR:               metrics.CalcFLR(tickets, mo),
			ReopenedRate:      metrics.CalcReopenRate(tickets, mo),
			Backlog:           metrics.CalcBacklog(tickets, mo),
			HierarchicalEsc:   metrics.CalcHierarchicalEscalation(tickets, mo),
			InternalEsc:       metrics.CalcInternalEscalation(tickets, mo),
			ExternalEsc:       metrics.CalcExternalEscalation(tickets, mo),
			ResolutionByGroup: metrics.CalcResolutionDistribution(tickets, dir, mo),
			KnowledgeUsage:    metrics.CalcKnowledgeUsage(tickets, mo),
		},
		Period:      Period{StartDate: opts.StartDate, EndDate: opts.EndDate},
		LastUpdated: opts.now(),
	}

	if opts.EmployeeSurvey != nil {
		enps := metrics.CalcNPS(*opts.EmployeeSurvey)
		report.PeopleExperience.ENPS = &enps
	}
	if opts.Staff != nil {
		turnover := metrics.CalcTurnover(*opts.Staff)
		report.PeopleExperience.Turnover = &turnover
	}
	if opts.Absence != nil {
		absenteeism := metrics.CalcAbsenteeism(*opts.Absence)
		report.PeopleExperience.Absenteeism = &absenteeism
	}
	if opts.Utilization != nil {
		utilization := metrics.CalcStaffUtilization(*opts.Utilization)
		report.PeopleExperience.StaffUtilization = &utilization
	}
	if opts.AgentTime != nil {
		occupancy := metrics.CalcOccupancy(*opts.AgentTime)
		report.PeopleExperience.Occupancy = &occupancy
	}
	if opts.CustomerSurvey != nil {
		nps := metrics.CalcNPS(*opts.CustomerSurvey)
		report.CustomerExperience.NPS = &nps
	}
	if opts.Feedback != nil {
		feedbackReturn := metrics.CalcFeedbackReturn(*opts.Feedback)
		report.CustomerExperience.FeedbackReturn = &feedbackReturn
	}

	backlogDetail := metrics.CalcBacklogDetail(tickets, mo)
	report.Maturity = e.assessMaturity(report.PerformanceResults.FCR, report.PerformanceResults.FLR, report.PerformanceResults.AbandonmentRate, backlogDetail, csat, opts)
	return report
}
