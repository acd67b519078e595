package metrics

// TouchpointMinutes carries average handle time per touchpoint, in
// minutes per contact.
type TouchpointMinutes struct {
	Phone  float64 `json:"phone"`
	Email  float64 `json:"email"`
	Chat   float64 `json:"chat"`
	Portal float64 `json:"portal"`
}

// TouchpointCounts tallies contacts per touchpoint.
type TouchpointCounts struct {
	Phone  int `json:"phone"`
	Email  int `json:"email"`
	Chat   int `json:"chat"`
	Portal int `json:"portal"`
}

// TouchpointRates carries a percentage per touchpoint.
type TouchpointRates struct {
	Phone  float64 `json:"phone"`
	Email  float64 `json:"email"`
	Chat   float64 `json:"chat"`
	Portal float64 `json:"portal"`
}

// UtilizationData describes the handled workload against the planned
// schedule, supplied externally from workforce-management systems.
type UtilizationData struct {
	HandleMinutes TouchpointMinutes `json:"handle_minutes"`
	Contacts      TouchpointCounts  `json:"contacts"`
	PlannedHours  float64           `json:"planned_hours"`
	TotalAnalysts int               `json:"total_analysts"`
}

// StaffUtilizationResult reports how much of the planned schedule was
// spent handling contacts.
type StaffUtilizationResult struct {
	Rate         float64         `json:"rate"`
	ByTouchpoint TouchpointRates `json:"by_touchpoint"`
	Formula      string          `json:"formula"`
	Error        string          `json:"error,omitempty"`
}

// CalcStaffUtilization weighs handle time per touchpoint against the
// total planned minutes of the team.
func CalcStaffUtilization(data UtilizationData) StaffUtilizationResult {
	result := StaffUtilizationResult{
		Formula: "utilization = sum(handle minutes x contacts) / (planned hours x 60 x analysts) x 100",
	}

	plannedMinutes := data.PlannedHours * 60 * float64(data.TotalAnalysts)
	if plannedMinutes <= 0 {
		return result
	}

	phone := data.HandleMinutes.Phone * float64(data.Contacts.Phone)
	email := data.HandleMinutes.Email * float64(data.Contacts.Email)
	chat := data.HandleMinutes.Chat * float64(data.Contacts.Chat)
	portal := data.HandleMinutes.Portal * float64(data.Contacts.Portal)

	result.ByTouchpoint = TouchpointRates{
		Phone:  round2(phone / plannedMinutes * 100),
		Email:  round2(email / plannedMinutes * 100),
		Chat:   round2(chat / plannedMinutes * 100),
		Portal: round2(portal / plannedMinutes * 100),
	}
	result.Rate = round2((phone + email + chat + portal) / plannedMinutes * 100)
	return result
}

// AgentTimeData is the logged-time breakdown of the agent pool for a
// period, in minutes.
type AgentTimeData struct {
	TalkMinutes      float64 `json:"talk_minutes"`
	AfterCallMinutes float64 `json:"after_call_minutes"`
	LoggedMinutes    float64 `json:"logged_minutes"`
}

// OccupancyResult reports productive time against logged time.
type OccupancyResult struct {
	Rate              float64 `json:"rate"`
	ProductiveMinutes float64 `json:"productive_minutes"`
	LoggedMinutes     float64 `json:"logged_minutes"`
	IdleMinutes       float64 `json:"idle_minutes"`
	Formula           string  `json:"formula"`
	Error             string  `json:"error,omitempty"`
}

// CalcOccupancy computes talk plus after-call work over total logged
// time.
func CalcOccupancy(agent AgentTimeData) OccupancyResult {
	result := OccupancyResult{
		Formula: "occupancy = (talk time + after-call work) / logged time x 100",
	}

	if agent.LoggedMinutes <= 0 {
		result.Error = "logged time not provided"
		return result
	}

	productive := agent.TalkMinutes + agent.AfterCallMinutes
	result.ProductiveMinutes = productive
	result.LoggedMinutes = agent.LoggedMinutes
	result.IdleMinutes = agent.LoggedMinutes - productive
	result.Rate = round2(productive / agent.LoggedMinutes * 100)
	return result
}

// FeedbackData tallies survey invitations against responses.
type FeedbackData struct {
	Responded    int              `json:"responded"`
	Received     int              `json:"received"`
	ByTouchpoint TouchpointCounts `json:"by_touchpoint"`
}

// FeedbackReturnResult reports the share of survey invitations that
// came back answered.
type FeedbackReturnResult struct {
	Rate         float64          `json:"rate"`
	Responded    int              `json:"responded"`
	Received     int              `json:"received"`
	ByTouchpoint TouchpointCounts `json:"by_touchpoint"`
	Formula      string           `json:"formula"`
	Error        string           `json:"error,omitempty"`
}

// CalcFeedbackReturn computes the survey response rate.
func CalcFeedbackReturn(feedback FeedbackData) FeedbackReturnResult {
	return FeedbackReturnResult{
		Rate:         percentage(feedback.Responded, feedback.Received),
		Responded:    feedback.Responded,
		Received:     feedback.Received,
		ByTouchpoint: feedback.ByTouchpoint,
		Formula:      "feedback return = responded surveys / received surveys x 100",
	}
}
