// Package maturity scores a support center against the eight HDI
// capability categories. Levels accumulate from level 1 upward; partial
// evidence without the level-1 base earns a small fractional credit. A
// final score of 2.5 across the categories certifies the center.
package maturity

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Category identifies one of the eight capability categories.
type Category string

const (
	Leadership         Category = "leadership"
	StrategyPolicy     Category = "strategy_policy"
	PeopleManagement   Category = "people_mgmt"
	Resources          Category = "resources"
	Processes          Category = "processes"
	ResultsHandling    Category = "results_handling"
	ResultsPeople      Category = "results_people"
	ResultsPerformance Category = "results_perf"
)

// Categories lists the eight categories in their canonical order.
var Categories = []Category{
	Leadership,
	StrategyPolicy,
	PeopleManagement,
	Resources,
	Processes,
	ResultsHandling,
	ResultsPeople,
	ResultsPerformance,
}

var categoryLabels = map[Category]string{
	Leadership:         "Leadership",
	StrategyPolicy:     "Strategy & Policy",
	PeopleManagement:   "People Management",
	Resources:          "Resources",
	Processes:          "Processes & Procedures",
	ResultsHandling:    "Contact Handling Results",
	ResultsPeople:      "People Results",
	ResultsPerformance: "Performance Results",
}

// Label returns the display name of a category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Levels holds the evidence that a category satisfies each maturity
// tier's requirements.
type Levels struct {
	Level1 bool `json:"level1"`
	Level2 bool `json:"level2"`
	Level3 bool `json:"level3"`
	Level4 bool `json:"level4"`
}

// LevelBreakdown records which levels actually counted toward the
// score after the cumulative rule.
type LevelBreakdown struct {
	Level1 bool `json:"level1"`
	Level2 bool `json:"level2"`
	Level3 bool `json:"level3"`
	Level4 bool `json:"level4"`
}

// CategoryScore is the scored result of one category.
type CategoryScore struct {
	ID           Category       `json:"id"`
	Label        string         `json:"label"`
	Score        float64        `json:"score"`
	HasLevel1    bool           `json:"has_level1"`
	PartialScore bool           `json:"partial_score"`
	Breakdown    LevelBreakdown `json:"breakdown"`
}

// ScoreCategory applies the cumulative scoring rule: one point per
// level, awarded only while every lower level also holds. Without
// level 1, evidence of level 2 or 3 earns 0.2 each as partial credit,
// and level 4 never counts.
func ScoreCategory(levels Levels) CategoryScore {
	if levels.Level1 {
		score := 1.0
		if levels.Level2 {
			score = 2.0
			if levels.Level3 {
				score = 3.0
				if levels.Level4 {
					score = 4.0
				}
			}
		}
		return CategoryScore{
			Score:     score,
			HasLevel1: true,
			Breakdown: LevelBreakdown{
				Level1: true,
				Level2: levels.Level2,
				Level3: levels.Level3 && levels.Level2,
				Level4: levels.Level4 && levels.Level3 && levels.Level2,
			},
		}
	}

	partial := 0.0
	if levels.Level2 {
		partial += 0.2
	}
	if levels.Level3 {
		partial += 0.2
	}

	return CategoryScore{
		Score:        partial,
		PartialScore: partial > 0,
		Breakdown: LevelBreakdown{
			Level2: levels.Level2,
			Level3: levels.Level3,
		},
	}
}

// PassingScore is the certification threshold.
const PassingScore = 2.5

// Recommendation is one prioritized remediation step.
type Recommendation struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
}

// Summary condenses the category results.
type Summary struct {
	TotalCategories            int     `json:"total_categories"`
	CategoriesWithLevel1       int     `json:"categories_with_level1"`
	CategoriesWithPartialScore int     `json:"categories_with_partial_score"`
	AverageScore               float64 `json:"average_score"`
}

// Result is the full maturity assessment.
type Result struct {
	FinalScore      float64          `json:"final_score"`
	Passed          bool             `json:"passed"`
	PassingScore    float64          `json:"passing_score"`
	Status          string           `json:"status"`
	Categories      []CategoryScore  `json:"categories"`
	Recommendations []Recommendation `json:"recommendations"`
	Summary         Summary          `json:"summary"`
	GeneratedAt     time.Time        `json:"generated_at"`
}

var priorityOrder = map[string]int{
	"critical": 0,
	"high":     1,
	"medium":   2,
	"low":      3,
}

// Score evaluates all eight categories, averages them, and derives the
// pass/fail decision and the prioritized recommendations. Categories
// missing from the input score as all-false.
func Score(categoryLevels map[Category]Levels, now time.Time) Result {
	categories := make([]CategoryScore, 0, len(Categories))
	total := 0.0

	for _, id := range Categories {
		scored := ScoreCategory(categoryLevels[id])
		scored.ID = id
		scored.Label = id.Label()
		categories = append(categories, scored)
		total += scored.Score
	}

	finalScore := total / float64(len(categories))

	result := Result{
		FinalScore:   math.Round(finalScore*1000) / 1000,
		Passed:       finalScore >= PassingScore,
		PassingScore: PassingScore,
		Categories:   categories,
		GeneratedAt:  now,
		Summary: Summary{
			TotalCategories: len(categories),
			AverageScore:    math.Round(finalScore*100) / 100,
		},
	}

	for _, cat := range categories {
		if cat.HasLevel1 {
			result.Summary.CategoriesWithLevel1++
		}
		if cat.PartialScore {
			result.Summary.CategoriesWithPartialScore++
		}

		switch {
		case !cat.HasLevel1:
			result.Recommendations = append(result.Recommendations, Recommendation{
				Category: cat.Label,
				Priority: "critical",
				Message:  fmt.Sprintf("%q has no level 1 evidence. Implement the baseline requirements first.", cat.Label),
			})
		case cat.Score < 2.0:
			result.Recommendations = append(result.Recommendations, Recommendation{
				Category: cat.Label,
				Priority: "high",
				Message:  fmt.Sprintf("%q is at level 1. Work toward level 2.", cat.Label),
			})
		case cat.Score < 3.0:
			result.Recommendations = append(result.Recommendations, Recommendation{
				Category: cat.Label,
				Priority: "medium",
				Message:  fmt.Sprintf("%q is at level 2. Advance to level 3.", cat.Label),
			})
		}
	}

	sort.SliceStable(result.Recommendations, func(i, j int) bool {
		return priorityOrder[result.Recommendations[i].Priority] < priorityOrder[result.Recommendations[j].Priority]
	})

	if result.Passed {
		result.Status = fmt.Sprintf("certified: score %.2f meets the %.1f threshold", result.FinalScore, PassingScore)
	} else {
		result.Status = fmt.Sprintf("not certified: score %.2f is below the %.1f threshold", result.FinalScore, PassingScore)
	}
	return result
}
