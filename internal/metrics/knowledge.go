package metrics

import "github.com/deskpulse/deskpulse/internal/domain"

// KnowledgeUsageResult reports how many resolved tickets were closed
// with a knowledge-base article linked.
type KnowledgeUsageResult struct {
	Rate          float64 `json:"rate"`
	WithArticle   int     `json:"with_article"`
	TotalResolved int     `json:"total_resolved"`
	Formula       string  `json:"formula"`
	Error         string  `json:"error,omitempty"`
}

// CalcKnowledgeUsage computes knowledge-base participation over all
// resolved tickets in the window.
func CalcKnowledgeUsage(tickets []domain.TicketRecord, opts Options) KnowledgeUsageResult {
	w := opts.window()

	result := KnowledgeUsageResult{
		Formula: "knowledge usage = incidents closed with a linked article / total resolved x 100",
	}

	for _, t := range tickets {
		if !w.contains(t.CreatedAt) || !t.IsResolved() {
			continue
		}
		result.TotalResolved++
		if t.ArticleID != nil {
			result.WithArticle++
		}
	}

	result.Rate = percentage(result.WithArticle, result.TotalResolved)
	return result
}
