package scoring

import (
	"testing"
	"time"

	"cogscreen-go/internal/models"
)

func TestScoreResponse_TimeBands(t *testing.T) {
	// 10 points, 30 second limit.
	q := models.Question{
		ID:        "q-timed",
		Category:  models.CategoryAttention,
		Type:      models.TypeMultipleChoice,
		Answer:    models.AnswerKey{Kind: models.KeyScalar, Value: "a"},
		TimeLimit: 30,
		Points:    10,
	}

	tests := []struct {
		name         string
		responseTime time.Duration
		want         int
	}{
		{"instant gets bonus capped", 0, 10},
		{"well within half limit", 5 * time.Second, 10},
		{"exactly half limit still bonus branch", 15 * time.Second, 10},
		{"just past half limit unmodified", 15*time.Second + time.Millisecond, 10},
		{"exactly at limit unmodified", 30 * time.Second, 10},
		{"just past limit penalized", 30*time.Second + time.Millisecond, 5},
		{"long overtime penalized", 2 * time.Minute, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScoreResponse(q, true, tc.responseTime); got != tc.want {
				t.Errorf("ScoreResponse(correct, %v) = %d, want %d", tc.responseTime, got, tc.want)
			}
		})
	}
}

func TestScoreResponse_BonusVisibleOnOddPoints(t *testing.T) {
	// round(9 * 1.1) = 10 would exceed the cap, so the clamp applies.
	q := models.Question{TimeLimit: 30, Points: 9}
	if got := ScoreResponse(q, true, time.Second); got != 9 {
		t.Errorf("bonus must be clamped to question points, got %d", got)
	}

	// round(10 * 0.5) = 5 for a late answer.
	q.Points = 10
	if got := ScoreResponse(q, true, 31*time.Second); got != 5 {
		t.Errorf("late penalty = %d, want 5", got)
	}
}

func TestScoreResponse_IncorrectAlwaysZero(t *testing.T) {
	q := models.Question{TimeLimit: 30, Points: 10}

	for _, rt := range []time.Duration{0, time.Second, 15 * time.Second, time.Hour} {
		if got := ScoreResponse(q, false, rt); got != 0 {
			t.Errorf("ScoreResponse(incorrect, %v) = %d, want 0", rt, got)
		}
	}
}
