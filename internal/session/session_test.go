package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogscreen-go/internal/models"
	"cogscreen-go/internal/scoring"
)

// perfectRunQuestions has one question per category worth that category's
// full maximum, so answering everything correctly and quickly must produce
// a total of exactly 100.
func perfectRunQuestions() []models.Question {
	var questions []models.Question
	for _, c := range models.Categories() {
		questions = append(questions, models.Question{
			ID:        "q-" + string(c),
			Category:  c,
			Type:      models.TypeText,
			Answer:    models.AnswerKey{Kind: models.KeyScalar, Value: "yes"},
			TimeLimit: 30,
			Points:    c.MaxScore(),
		})
	}
	return questions
}

// fakeClock pins a session to a controllable time source.
func fakeClock(s *Session, start time.Time) *time.Time {
	now := start
	s.now = func() time.Time { return now }
	return &now
}

func TestSession_PerfectRun(t *testing.T) {
	questions := perfectRunQuestions()
	s := NewSession(1)
	now := fakeClock(s, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	require.NoError(t, s.Start(questions))
	require.Equal(t, StateInProgress, s.State())

	for i := range questions {
		*now = now.Add(2 * time.Second) // well within half of every limit

		response, err := s.SubmitResponse(scoring.ScalarAnswer("yes"))
		require.NoError(t, err)
		assert.True(t, response.IsCorrect)
		// Bonus rounds above the cap and is clamped back to the maximum.
		assert.Equal(t, questions[i].Points, response.Points)

		done, err := s.Advance()
		require.NoError(t, err)
		assert.Equal(t, i == len(questions)-1, done)
	}

	require.Equal(t, StateCompleted, s.State())

	result, err := s.Complete()
	require.NoError(t, err)
	assert.Equal(t, 100, result.TotalScore)
	assert.Equal(t, 100, result.Percentage)
	assert.Equal(t, scoring.RiskExcellent, result.Risk.Level)
	assert.Len(t, result.Responses, len(questions))
	assert.Len(t, result.CategoryScores, 6)

	total := 0
	for _, cs := range result.CategoryScores {
		assert.LessOrEqual(t, cs.Score, cs.MaxScore)
		total += cs.Score
	}
	assert.Equal(t, result.TotalScore, total)
}

func TestSession_InvalidTransitions(t *testing.T) {
	s := NewSession(1)

	_, err := s.SubmitResponse(scoring.ScalarAnswer("yes"))
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = s.Advance()
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = s.Complete()
	assert.ErrorIs(t, err, ErrInvalidState)

	require.NoError(t, s.Start(perfectRunQuestions()))
	assert.ErrorIs(t, s.Start(perfectRunQuestions()), ErrInvalidState)

	// A rejected transition must not have touched any accumulator.
	index, total := s.Progress()
	assert.Equal(t, 0, index)
	assert.Equal(t, 6, total)
	assert.Empty(t, s.Behavior().ResponseTimes)
}

func TestSession_DuplicateSubmitRejected(t *testing.T) {
	questions := perfectRunQuestions()
	s := NewSession(1)
	now := fakeClock(s, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	require.NoError(t, s.Start(questions))
	*now = now.Add(2 * time.Second)

	_, err := s.SubmitResponse(scoring.ScalarAnswer("yes"))
	require.NoError(t, err)

	// A second submit for the same question must be rejected, not scored
	// again; otherwise a category could exceed its fixed maximum.
	_, err = s.SubmitResponse(scoring.ScalarAnswer("yes"))
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Len(t, s.Behavior().ResponseTimes, 1)

	// Advance opens the next question for exactly one submit again.
	_, err = s.Advance()
	require.NoError(t, err)
	_, err = s.SubmitResponse(scoring.ScalarAnswer("yes"))
	require.NoError(t, err)

	result, err := s.Complete()
	require.NoError(t, err)
	assert.Len(t, result.Responses, 2)
	memory := result.CategoryScore(models.CategoryMemory)
	assert.Equal(t, memory.MaxScore, memory.Score)
	assert.Equal(t, 1, memory.QuestionsTotal)
	for _, cs := range result.CategoryScores {
		assert.LessOrEqual(t, cs.Score, cs.MaxScore)
	}
}

func TestSession_ResponseTiming(t *testing.T) {
	questions := perfectRunQuestions()
	s := NewSession(1)
	now := fakeClock(s, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	require.NoError(t, s.Start(questions))

	*now = now.Add(12 * time.Second)
	response, err := s.SubmitResponse(scoring.ScalarAnswer("no"))
	require.NoError(t, err)
	assert.False(t, response.IsCorrect)
	assert.Equal(t, 12*time.Second, response.ResponseTime)
	assert.Equal(t, 0, response.Points)

	// The question window restarts on advance, not on submit.
	_, err = s.Advance()
	require.NoError(t, err)
	*now = now.Add(3 * time.Second)
	response, err = s.SubmitResponse(scoring.ScalarAnswer("yes"))
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, response.ResponseTime)

	behavior := s.Behavior()
	assert.Equal(t, []time.Duration{12 * time.Second, 3 * time.Second}, behavior.ResponseTimes)
}

func TestSession_TimeoutComplete(t *testing.T) {
	questions := perfectRunQuestions()
	s := NewSession(1)
	now := fakeClock(s, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	require.NoError(t, s.Start(questions))
	*now = now.Add(5 * time.Second)
	_, err := s.SubmitResponse(scoring.ScalarAnswer("yes"))
	require.NoError(t, err)
	_, err = s.Advance()
	require.NoError(t, err)

	// External timeout finalizes mid-run; untouched categories score zero.
	result, err := s.Complete()
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, s.State())
	assert.Equal(t, 20, result.TotalScore)
	assert.Len(t, result.CategoryScores, 6)

	executive := result.CategoryScore(models.CategoryExecutive)
	assert.Equal(t, 0, executive.Score)
	assert.Equal(t, 0, executive.Percentage)
	assert.Equal(t, 0, executive.QuestionsTotal)
	assert.Equal(t, time.Duration(0), executive.AverageResponseTime)

	// Complete is computed once; a second call returns the same result.
	again, err := s.Complete()
	require.NoError(t, err)
	assert.Equal(t, result, again)
}

func TestSession_BehaviorRecording(t *testing.T) {
	s := NewSession(1)

	// Recorders outside in_progress are silently dropped.
	s.RecordHesitation()
	s.RecordEmotion("neutral", 0.9)
	assert.Equal(t, 0, s.Behavior().HesitationCount)
	assert.Empty(t, s.Behavior().EmotionTimeline)

	require.NoError(t, s.Start(perfectRunQuestions()))
	s.RecordHesitation()
	s.RecordHesitation()
	s.RecordCorrection()
	s.RecordEmotion("confused", 0.7)

	_, err := s.Advance()
	require.NoError(t, err)
	s.RecordEmotion("happy", 0.8)

	behavior := s.Behavior()
	assert.Equal(t, 2, behavior.HesitationCount)
	assert.Equal(t, 1, behavior.CorrectionCount)
	require.Len(t, behavior.EmotionTimeline, 2)
	assert.Equal(t, 0, behavior.EmotionTimeline[0].QuestionIndex)
	assert.Equal(t, 1, behavior.EmotionTimeline[1].QuestionIndex)

	// Behavior never leaks into scoring accumulators.
	index, _ := s.Progress()
	assert.Equal(t, 1, index)
}

func TestSession_Reset(t *testing.T) {
	s := NewSession(1)
	require.NoError(t, s.Start(perfectRunQuestions()))
	_, err := s.SubmitResponse(scoring.ScalarAnswer("yes"))
	require.NoError(t, err)

	s.Reset()
	assert.Equal(t, StateIdle, s.State())
	assert.Empty(t, s.Behavior().ResponseTimes)

	// A reset session can start fresh.
	require.NoError(t, s.Start(perfectRunQuestions()))
	assert.Equal(t, StateInProgress, s.State())
}

func TestManager_OneSessionPerSubject(t *testing.T) {
	m := NewManager()

	first, err := m.StartSession(7, perfectRunQuestions())
	require.NoError(t, err)

	got, ok := m.Get(7)
	require.True(t, ok)
	assert.Same(t, first, got)

	// Starting again discards the previous session.
	second, err := m.StartSession(7, perfectRunQuestions())
	require.NoError(t, err)
	got, ok = m.Get(7)
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.NotEqual(t, first.ID(), second.ID())

	m.Remove(7)
	_, ok = m.Get(7)
	assert.False(t, ok)
}
