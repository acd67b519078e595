// Package workforce sizes the support-center staff. The Erlang-C
// solver finds the smallest agent count that meets a service-level
// target for a given call load, and the gross staffing model inflates
// a base headcount for shrinkage.
package workforce

import "math"

// maxAgents caps the solver iteration. The wait-probability formula
// only converges while n exceeds the traffic intensity, so pathological
// inputs (load at or beyond feasible staffing) would otherwise loop
// unbounded.
const maxAgents = 1000

// ErlangParams are the inputs of the Erlang-C calculation.
type ErlangParams struct {
	CallsPerHour        float64 `json:"calls_per_hour"`
	AvgHandleTimeSec    float64 `json:"avg_handle_time_seconds"`
	TargetServiceLevel  float64 `json:"target_service_level"`
	TargetAnswerTimeSec float64 `json:"target_answer_time_seconds"`
	Shrinkage           float64 `json:"shrinkage"`
}

// ErlangResult reports the staffing requirement. ServiceLevel and
// Shrinkage are percentages; TrafficIntensity is in Erlangs.
type ErlangResult struct {
	AgentsRequired      int     `json:"agents_required"`
	GrossAgentsRequired int     `json:"gross_agents_required"`
	ServiceLevel        float64 `json:"service_level"`
	TrafficIntensity    float64 `json:"traffic_intensity"`
	Shrinkage           float64 `json:"shrinkage"`
	Formula             string  `json:"formula"`
	Error               string  `json:"error,omitempty"`
}

// CalcErlangC solves for the agent count whose service level meets the
// target. Missing call volume or handle time yields a zeroed result
// with an error message rather than a fault.
func CalcErlangC(params ErlangParams) ErlangResult {
	result := ErlangResult{
		Formula: "Erlang-C: SL(n) = 1 - C(a,n) x e^(-(n-a)t/AHT)",
	}

	if params.CallsPerHour <= 0 || params.AvgHandleTimeSec <= 0 {
		result.Error = "insufficient parameters for Erlang-C"
		return result
	}

	traffic := params.CallsPerHour * params.AvgHandleTimeSec / 3600

	agents := int(math.Ceil(traffic))
	currentSL := 0.0
	for currentSL < params.TargetServiceLevel && agents < maxAgents {
		agents++
		currentSL = serviceLevel(traffic, agents, params.TargetAnswerTimeSec, params.AvgHandleTimeSec)
	}

	gross := agents
	if params.Shrinkage > 0 && params.Shrinkage < 1 {
		gross = int(math.Ceil(float64(agents) / (1 - params.Shrinkage)))
	}

	result.AgentsRequired = agents
	result.GrossAgentsRequired = gross
	result.ServiceLevel = math.Round(currentSL*100*100) / 100
	result.TrafficIntensity = math.Round(traffic*100) / 100
	result.Shrinkage = params.Shrinkage * 100
	return result
}

// waitProbability is the Erlang-C probability that an arriving call
// has to queue:
//
//	C(a,n) = [(a^n/n!) x n/(n-a)] / [sum_{k<n} a^k/k! + (a^n/n!) x n/(n-a)]
//
// The a^k/k! terms are accumulated incrementally so large n stays
// inside float64 range.
func waitProbability(a float64, n int) float64 {
	if float64(n) <= a {
		return 1
	}

	term := 1.0 // a^0/0!
	sum := 0.0
	for k := 0; k < n; k++ {
		sum += term
		term *= a / float64(k+1)
	}
	// term is now a^n/n!.
	last := term * float64(n) / (float64(n) - a)
	return last / (sum + last)
}

func serviceLevel(a float64, n int, targetAnswerTime, avgHandleTime float64) float64 {
	pw := waitProbability(a, n)
	return 1 - pw*math.Exp(-(float64(n)-a)*(targetAnswerTime/avgHandleTime))
}

// ShrinkageFactors are the named components of staff time lost to
// non-handling activities, each a fraction of paid time.
type ShrinkageFactors struct {
	Vacation  float64 `json:"vacation"`
	SickLeave float64 `json:"sick_leave"`
	Breaks    float64 `json:"breaks"`
	Training  float64 `json:"training"`
	Meetings  float64 `json:"meetings"`
}

// DefaultShrinkage is the standard 22% loss model.
func DefaultShrinkage() ShrinkageFactors {
	return ShrinkageFactors{
		Vacation:  0.05,
		SickLeave: 0.03,
		Breaks:    0.10,
		Training:  0.02,
		Meetings:  0.02,
	}
}

func (f ShrinkageFactors) total() float64 {
	return f.Vacation + f.SickLeave + f.Breaks + f.Training + f.Meetings
}

// GrossStaffingResult reports the shrinkage-adjusted headcount. The
// breakdown values are percentages.
type GrossStaffingResult struct {
	BaseStaff      int              `json:"base_staff"`
	GrossStaff     int              `json:"gross_staff"`
	TotalShrinkage float64          `json:"total_shrinkage"`
	Breakdown      ShrinkageFactors `json:"breakdown"`
	Formula        string           `json:"formula"`
	Error          string           `json:"error,omitempty"`
}

// CalcGrossStaffing inflates a base headcount by the combined
// shrinkage: gross = ceil(base / (1 - total shrinkage)).
func CalcGrossStaffing(baseStaff int, factors ShrinkageFactors) GrossStaffingResult {
	result := GrossStaffingResult{
		BaseStaff: baseStaff,
		Formula:   "gross staff = ceil(base staff / (1 - total shrinkage))",
	}

	total := factors.total()
	if total >= 1 {
		result.Error = "combined shrinkage must stay below 100%"
		return result
	}

	result.GrossStaff = int(math.Ceil(float64(baseStaff) / (1 - total)))
	result.TotalShrinkage = math.Round(total*100*100) / 100
	result.Breakdown = ShrinkageFactors{
		Vacation:  math.Round(factors.Vacation*100*100) / 100,
		SickLeave: math.Round(factors.SickLeave*100*100) / 100,
		Breaks:    math.Round(factors.Breaks*100*100) / 100,
		Training:  math.Round(factors.Training*100*100) / 100,
		Meetings:  math.Round(factors.Meetings*100*100) / 100,
	}
	return result
}
