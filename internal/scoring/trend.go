package scoring

import "cogscreen-go/internal/models"

// Trend is the direction of a category's score between two assessments.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

const (
	weakAreaThreshold   = 70
	strongAreaThreshold = 85
)

// CategoryTrend is the per-category delta between two assessments.
type CategoryTrend struct {
	Category models.Category `json:"category"`
	Change   int             `json:"change"`
	Trend    Trend           `json:"trend"`
}

// TrendReport diffs a current assessment against the previous one.
type TrendReport struct {
	TotalScoreChange int             `json:"totalScoreChange"`
	Categories       []CategoryTrend `json:"categories"`
}

// CompareTrend produces the trend report for current vs previous. A nil
// previous result (first-ever assessment) yields a nil report, which is a
// valid, expected condition rather than an error.
func CompareTrend(current AssessmentResult, previous *AssessmentResult) *TrendReport {
	if previous == nil {
		return nil
	}

	report := &TrendReport{
		TotalScoreChange: current.TotalScore - previous.TotalScore,
	}
	for _, c := range models.Categories() {
		change := current.CategoryScore(c).Score - previous.CategoryScore(c).Score
		trend := TrendStable
		switch {
		case change > 0:
			trend = TrendUp
		case change < 0:
			trend = TrendDown
		}
		report.Categories = append(report.Categories, CategoryTrend{
			Category: c,
			Change:   change,
			Trend:    trend,
		})
	}
	return report
}

// WeakAreas returns the categories scoring below 70%.
func WeakAreas(result AssessmentResult) []CategoryScore {
	var out []CategoryScore
	for _, cs := range result.CategoryScores {
		if cs.Percentage < weakAreaThreshold {
			out = append(out, cs)
		}
	}
	return out
}

// StrongAreas returns the categories scoring at or above 85%.
func StrongAreas(result AssessmentResult) []CategoryScore {
	var out []CategoryScore
	for _, cs := range result.CategoryScores {
		if cs.Percentage >= strongAreaThreshold {
			out = append(out, cs)
		}
	}
	return out
}
