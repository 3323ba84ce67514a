package scoring

import (
	"math"
	"time"

	"cogscreen-go/internal/models"
)

// totalMaxScore is the sum of the per-category maxima, fixed at 100 so the
// total score doubles as a percentage scale.
const totalMaxScore = 100

// AssessmentResult is the finalized outcome of one session. Created once at
// completion and immutable afterwards.
type AssessmentResult struct {
	TotalScore     int             `json:"totalScore"`
	Percentage     int             `json:"percentage"`
	Risk           RiskAssessment  `json:"risk"`
	CategoryScores []CategoryScore `json:"categoryScores"`
	Responses      []Response      `json:"responses"`
	CompletedAt    time.Time       `json:"completedAt"`
	Duration       time.Duration   `json:"duration"`
}

// BuildResult aggregates every category once, sums the total, and classifies
// the risk level. Categories with no responses still appear with zero scores.
func BuildResult(responses []Response, completedAt time.Time, duration time.Duration) AssessmentResult {
	result := AssessmentResult{
		Responses:   responses,
		CompletedAt: completedAt,
		Duration:    duration,
	}

	for _, c := range models.Categories() {
		cs := AggregateCategory(c, responses)
		result.CategoryScores = append(result.CategoryScores, cs)
		result.TotalScore += cs.Score
	}

	result.Percentage = int(math.Round(float64(result.TotalScore) / float64(totalMaxScore) * 100))
	result.Risk = ClassifyRisk(result.Percentage)
	return result
}

// CategoryScore returns the roll-up for one category, or a zero score if the
// result predates that category (should not happen with a validated catalog).
func (r AssessmentResult) CategoryScore(c models.Category) CategoryScore {
	for _, cs := range r.CategoryScores {
		if cs.Category == c {
			return cs
		}
	}
	return CategoryScore{Category: c, MaxScore: c.MaxScore()}
}
