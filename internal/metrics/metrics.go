// Package metrics implements the HDI ticket and telephony KPI
// calculators. Every calculator is a pure function of its inputs: it
// filters records by the option date window, derives one indicator, and
// returns a result carrying the rate together with the numerator and
// denominator it was computed from.
package metrics

import (
	"math"
	"time"

	"github.com/deskpulse/deskpulse/internal/domain"
)

// Options carries the shared calculator parameters. StartDate and
// EndDate are ISO dates (2006-01-02); empty bounds are unbounded. Now
// anchors age and overdue checks and defaults to time.Now().
type Options struct {
	StartDate string
	EndDate   string
	Now       time.Time
	SLA       domain.SLATable
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

func (o Options) slaTable() domain.SLATable {
	if o.SLA.Default.ResolutionMinutesByPriority == nil {
		return domain.DefaultSLATable()
	}
	return o.SLA
}

func (o Options) dueBy(t domain.TicketRecord) time.Time {
	return t.EffectiveDueBy(o.slaTable().PolicyFor(t.GroupID))
}

// window is the inclusive created-at filter [start 00:00:00, end
// 23:59:59] derived from the option dates.
type window struct {
	start, end       time.Time
	hasStart, hasEnd bool
}

func (o Options) window() window {
	var w window
	if o.StartDate != "" {
		if start, err := time.ParseInLocation("2006-01-02", o.StartDate, time.Local); err == nil {
			w.start = start
			w.hasStart = true
		}
	}
	if o.EndDate != "" {
		if end, err := time.ParseInLocation("2006-01-02", o.EndDate, time.Local); err == nil {
			w.end = end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
			w.hasEnd = true
		}
	}
	return w
}

func (w window) contains(t time.Time) bool {
	if w.hasStart && t.Before(w.start) {
		return false
	}
	if w.hasEnd && t.After(w.end) {
		return false
	}
	return true
}

// round2 rounds to two decimal places, the precision every reported
// rate and average uses.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// percentage returns the rounded rate num/den×100, or 0 for a zero
// denominator. A degenerate denominator is distinguishable from a true
// 0% only through the counts on the result, never through the rate.
func percentage(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return round2(float64(num) / float64(den) * 100)
}
