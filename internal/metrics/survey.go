package metrics

// SurveyData is the promoter/detractor tally of an NPS-style survey,
// supplied externally since survey systems are not part of the
// ticketing data.
type SurveyData struct {
	Promoters  int `json:"promoters"`
	Detractors int `json:"detractors"`
	Passives   int `json:"passives"`
}

// NPSResult reports a net promoter score on the -100..100 scale.
type NPSResult struct {
	Score      float64 `json:"score"`
	Promoters  float64 `json:"promoters"`
	Detractors float64 `json:"detractors"`
	Passives   float64 `json:"passives"`
	Total      int     `json:"total"`
	Formula    string  `json:"formula"`
	Error      string  `json:"error,omitempty"`
}

// CalcNPS computes promoter minus detractor percentage. Used for both
// the employee (eNPS) and customer (NPS) surveys.
func CalcNPS(survey SurveyData) NPSResult {
	result := NPSResult{
		Formula: "NPS = % promoters - % detractors",
	}

	total := survey.Promoters + survey.Detractors + survey.Passives
	if total == 0 {
		return result
	}

	result.Total = total
	result.Promoters = percentage(survey.Promoters, total)
	result.Detractors = percentage(survey.Detractors, total)
	result.Passives = percentage(survey.Passives, total)
	result.Score = round2(result.Promoters - result.Detractors)
	return result
}

// StaffData is the headcount movement of the support team for a
// period.
type StaffData struct {
	Left  int `json:"left"`
	Total int `json:"total"`
}

// TurnoverResult reports analyst turnover.
type TurnoverResult struct {
	Rate    float64 `json:"rate"`
	Left    int     `json:"left"`
	Total   int     `json:"total"`
	Formula string  `json:"formula"`
	Error   string  `json:"error,omitempty"`
}

// CalcTurnover computes the share of analysts who left the team.
func CalcTurnover(staff StaffData) TurnoverResult {
	return TurnoverResult{
		Rate:    percentage(staff.Left, staff.Total),
		Left:    staff.Left,
		Total:   staff.Total,
		Formula: "turnover = analysts who left / total analysts x 100",
	}
}

// AbsenceData describes unplanned absence hours against the planned
// schedule.
type AbsenceData struct {
	UnplannedHours float64 `json:"unplanned_hours"`
	PlannedHours   float64 `json:"planned_hours"`
	TotalAnalysts  int     `json:"total_analysts"`
}

// AbsenteeismResult reports the unplanned-absence rate.
type AbsenteeismResult struct {
	Rate           float64 `json:"rate"`
	UnplannedHours float64 `json:"unplanned_hours"`
	PlannedHours   float64 `json:"planned_hours"`
	TotalAnalysts  int     `json:"total_analysts"`
	Formula        string  `json:"formula"`
	Error          string  `json:"error,omitempty"`
}

// CalcAbsenteeism computes unplanned absence against the total planned
// hours of the team.
func CalcAbsenteeism(absence AbsenceData) AbsenteeismResult {
	result := AbsenteeismResult{
		UnplannedHours: absence.UnplannedHours,
		PlannedHours:   absence.PlannedHours,
		TotalAnalysts:  absence.TotalAnalysts,
		Formula:        "absenteeism = unplanned absence hours / (planned hours x analysts) x 100",
	}

	totalPlanned := absence.PlannedHours * float64(absence.TotalAnalysts)
	if totalPlanned > 0 {
		result.Rate = round2(absence.UnplannedHours / totalPlanned * 100)
	}
	return result
}
