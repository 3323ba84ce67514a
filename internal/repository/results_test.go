package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogscreen-go/internal/models"
	"cogscreen-go/internal/scoring"
	"cogscreen-go/internal/session"
)

func TestResultFromRecord_RoundTrip(t *testing.T) {
	responses := []scoring.Response{
		{QuestionID: "m1", Category: models.CategoryMemory, Answer: scoring.ScalarAnswer("93"), IsCorrect: true, ResponseTime: 1500 * time.Millisecond, Points: 5, MaxPoints: 5},
		{QuestionID: "l1", Category: models.CategoryLanguage, Answer: scoring.ListAnswer("boil", "pour"), IsCorrect: true, ResponseTime: 2 * time.Second, Points: 5, MaxPoints: 5},
	}
	result := scoring.BuildResult(responses, time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC), 90*time.Second)

	record := NewAssessmentRecord(5, "8c2f1a9e-0000-0000-0000-000000000001", result, session.BehaviorData{
		ResponseTimes:   []time.Duration{1500 * time.Millisecond, 2 * time.Second},
		HesitationCount: 1,
	})

	back, err := ResultFromRecord(record)
	require.NoError(t, err)
	assert.Equal(t, result, back)
}

func TestResultFromRecord_MalformedAnswer(t *testing.T) {
	record := &models.AssessmentRecord{
		ID: 9,
		Responses: []models.ResponseRecord{
			{QuestionID: "m1", Category: string(models.CategoryMemory), Answer: "{not json"},
		},
	}

	_, err := ResultFromRecord(record)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "m1")
}
