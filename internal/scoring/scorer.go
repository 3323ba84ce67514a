package scoring

import (
	"math"
	"time"

	"cogscreen-go/internal/models"
)

// ScoreResponse converts a correctness verdict plus elapsed response time
// into earned points.
//
// Incorrect answers earn 0 unconditionally. Correct answers earn the
// question's base points, with a 10% bonus when answered within half the
// time limit and a 50% penalty when answered after the limit (the UI may
// still accept late answers). The award never exceeds the question's points,
// which guards the bonus branch against rounding past the cap.
func ScoreResponse(q models.Question, correct bool, responseTime time.Duration) int {
	if !correct {
		return 0
	}

	limit := q.TimeLimitDuration()
	points := q.Points
	switch {
	case responseTime <= limit/2:
		points = int(math.Round(float64(q.Points) * 1.1))
	case responseTime > limit:
		points = int(math.Round(float64(q.Points) * 0.5))
	}

	if points > q.Points {
		points = q.Points
	}
	return points
}

// Response records one answered question. Created when the answer is
// submitted and never mutated afterwards.
type Response struct {
	QuestionID   string          `json:"questionId"`
	Category     models.Category `json:"category"`
	Answer       Answer          `json:"answer"`
	IsCorrect    bool            `json:"isCorrect"`
	ResponseTime time.Duration   `json:"responseTime"`
	Points       int             `json:"points"`
	MaxPoints    int             `json:"maxPoints"`
}

// NewResponse runs the checker and scorer for one submitted answer.
func NewResponse(q models.Question, a Answer, responseTime time.Duration) Response {
	correct := CheckAnswer(q, a)
	return Response{
		QuestionID:   q.ID,
		Category:     q.Category,
		Answer:       a,
		IsCorrect:    correct,
		ResponseTime: responseTime,
		Points:       ScoreResponse(q, correct, responseTime),
		MaxPoints:    q.Points,
	}
}
