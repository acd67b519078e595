package metrics

import "github.com/deskpulse/deskpulse/internal/domain"

// AbandonmentResult reports the share of inbound calls the caller hung
// up before being answered.
type AbandonmentResult struct {
	Rate      float64 `json:"rate"`
	Abandoned int     `json:"abandoned"`
	Received  int     `json:"received"`
	Formula   string  `json:"formula"`
	Error     string  `json:"error,omitempty"`
}

// CalcAbandonmentRate computes the abandonment rate over inbound calls
// started inside the window.
func CalcAbandonmentRate(calls []domain.CallRecord, opts Options) AbandonmentResult {
	w := opts.window()

	result := AbandonmentResult{
		Formula: "abandonment = abandoned contacts / received contacts x 100",
	}

	for _, c := range calls {
		if !c.IsInbound() || !w.contains(c.StartedAt) {
			continue
		}
		result.Received++
		if c.Abandoned {
			result.Abandoned++
		}
	}

	result.Rate = percentage(result.Abandoned, result.Received)
	return result
}

// CallSummaryResult aggregates inbound telephony volume. Duration and
// talk-time averages cover answered calls only; unanswered calls are
// excluded from those denominators.
type CallSummaryResult struct {
	Inbound            int     `json:"inbound"`
	Answered           int     `json:"answered"`
	Abandoned          int     `json:"abandoned"`
	AnswerRate         float64 `json:"answer_rate"`
	AvgDurationSeconds float64 `json:"avg_duration_seconds"`
	AvgTalkTimeSeconds float64 `json:"avg_talk_time_seconds"`
	Formula            string  `json:"formula"`
	Error              string  `json:"error,omitempty"`
}

// CalcCallSummary summarizes inbound calls in the window.
func CalcCallSummary(calls []domain.CallRecord, opts Options) CallSummaryResult {
	w := opts.window()

	result := CallSummaryResult{
		Formula: "telephony summary: received, answered and abandoned inbound calls",
	}

	var durationSum, talkSum float64

	for _, c := range calls {
		if !c.IsInbound() || !w.contains(c.StartedAt) {
			continue
		}
		result.Inbound++
		if c.Abandoned {
			result.Abandoned++
		}
		if c.Answered {
			result.Answered++
			durationSum += float64(c.DurationSeconds)
			talkSum += float64(c.TalkTimeSeconds)
		}
	}

	result.AnswerRate = percentage(result.Answered, result.Inbound)
	if result.Answered > 0 {
		result.AvgDurationSeconds = round2(durationSum / float64(result.Answered))
		result.AvgTalkTimeSeconds = round2(talkSum / float64(result.Answered))
	}
	return result
}
