package scoring

import (
	"math"
	"time"

	"cogscreen-go/internal/models"
)

// CategoryScore is the per-category roll-up of a response list. It is always
// derivable from the responses and never stored as a source of truth.
type CategoryScore struct {
	Category            models.Category `json:"category"`
	Score               int             `json:"score"`
	MaxScore            int             `json:"maxScore"`
	Percentage          int             `json:"percentage"`
	QuestionsCorrect    int             `json:"questionsCorrect"`
	QuestionsTotal      int             `json:"questionsTotal"`
	AverageResponseTime time.Duration   `json:"averageResponseTime"`
}

// AggregateCategory computes the CategoryScore for one category over the
// full response list. MaxScore is the fixed category constant rather than a
// sum over questions seen, so partial assessments still report a percentage
// against the full scale. A category with no responses yields zeros.
func AggregateCategory(c models.Category, responses []Response) CategoryScore {
	score := CategoryScore{
		Category: c,
		MaxScore: c.MaxScore(),
	}

	var totalTime time.Duration
	for _, r := range responses {
		if r.Category != c {
			continue
		}
		score.Score += r.Points
		score.QuestionsTotal++
		if r.IsCorrect {
			score.QuestionsCorrect++
		}
		totalTime += r.ResponseTime
	}

	// The session rejects duplicate submits, but the roll-up holds the
	// invariant on its own for any response list it is handed.
	if score.Score > score.MaxScore {
		score.Score = score.MaxScore
	}
	if score.MaxScore > 0 {
		score.Percentage = int(math.Round(float64(score.Score) / float64(score.MaxScore) * 100))
	}
	if score.QuestionsTotal > 0 {
		avg := float64(totalTime) / float64(score.QuestionsTotal)
		score.AverageResponseTime = time.Duration(math.Round(avg))
	}
	return score
}
