// session.go
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"cogscreen-go/internal/models"
	"cogscreen-go/internal/scoring"
)

// State is the session lifecycle phase.
type State string

const (
	StateIdle       State = "idle"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
)

// ErrInvalidState is returned when a transition is attempted outside the
// state it is valid in. The session's accumulators are never touched by a
// rejected transition.
var ErrInvalidState = errors.New("transition not allowed in current state")

// Session drives question progression for one subject and accumulates
// responses and behavioral side-signals. Behavioral producers may push
// events concurrently with answer submission, so all transitions are
// guarded by a mutex.
type Session struct {
	mu sync.Mutex

	id     string
	userID uint

	state     State
	questions []models.Question
	index     int
	answered  bool
	responses []scoring.Response
	behavior  BehaviorData

	startTime     time.Time
	questionStart time.Time

	result *scoring.AssessmentResult
	now    func() time.Time
}

// NewSession creates an idle session for the given subject.
func NewSession(userID uint) *Session {
	return &Session{
		id:     uuid.NewString(),
		userID: userID,
		state:  StateIdle,
		now:    time.Now,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// UserID returns the owning subject.
func (s *Session) UserID() uint { return s.userID }

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start transitions idle -> in_progress, resetting every accumulator and
// recording the start of the first question window.
func (s *Session) Start(questions []models.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return fmt.Errorf("start: %w", ErrInvalidState)
	}
	if len(questions) == 0 {
		return errors.New("start: no questions")
	}

	s.questions = questions
	s.index = 0
	s.answered = false
	s.responses = nil
	s.behavior = BehaviorData{}
	s.result = nil
	s.startTime = s.now()
	s.questionStart = s.startTime
	s.state = StateInProgress
	return nil
}

// CurrentQuestion returns the active question.
func (s *Session) CurrentQuestion() (models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return models.Question{}, fmt.Errorf("current question: %w", ErrInvalidState)
	}
	return s.questions[s.index], nil
}

// Progress returns the zero-based question index and the total count.
func (s *Session) Progress() (index, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index, len(s.questions)
}

// SubmitResponse checks and scores a candidate answer against the active
// question, appends the resulting Response, and records the response time
// into behavior data. Each question accepts exactly one response: a second
// submit before Advance is rejected, so a category can never accumulate more
// points than its fixed maximum. The question index is not advanced here;
// Advance is a separate transition.
func (s *Session) SubmitResponse(answer scoring.Answer) (scoring.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return scoring.Response{}, fmt.Errorf("submit response: %w", ErrInvalidState)
	}
	if s.answered {
		return scoring.Response{}, fmt.Errorf("submit response: question already answered: %w", ErrInvalidState)
	}

	responseTime := s.now().Sub(s.questionStart)
	response := scoring.NewResponse(s.questions[s.index], answer, responseTime)
	s.answered = true
	s.responses = append(s.responses, response)
	s.behavior.ResponseTimes = append(s.behavior.ResponseTimes, responseTime)
	return response, nil
}

// Advance moves to the next question, or transitions to completed when the
// last question has been passed. Returns true once the session is complete.
func (s *Session) Advance() (done bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return false, fmt.Errorf("advance: %w", ErrInvalidState)
	}

	s.index++
	s.answered = false
	if s.index >= len(s.questions) {
		s.state = StateCompleted
		return true, nil
	}
	s.questionStart = s.now()
	return false, nil
}

// Complete finalizes the session and returns the assessment result. It is
// valid after the last Advance, and also directly from in_progress for an
// externally imposed timeout. The result is computed exactly once; repeated
// calls return the same value. Responses and behavior data are immutable
// history from this point on.
func (s *Session) Complete() (scoring.AssessmentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateInProgress:
		s.state = StateCompleted
	case StateCompleted:
		if s.result != nil {
			return *s.result, nil
		}
	default:
		return scoring.AssessmentResult{}, fmt.Errorf("complete: %w", ErrInvalidState)
	}

	completedAt := s.now()
	result := scoring.BuildResult(s.responses, completedAt, completedAt.Sub(s.startTime))
	s.result = &result
	return result, nil
}

// Behavior returns a copy of the accumulated behavior data.
func (s *Session) Behavior() BehaviorData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.behavior.clone()
}

// Reset discards all in-progress state and returns to idle. Externally
// persisted results are untouched.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateIdle
	s.questions = nil
	s.index = 0
	s.answered = false
	s.responses = nil
	s.behavior = BehaviorData{}
	s.result = nil
}

// RecordEmotion appends an emotion sample tagged with the active question
// index. Recorder calls are purely additive: outside in_progress they are
// silently dropped rather than rejected, since behavioral producers push
// opportunistically.
func (s *Session) RecordEmotion(emotion string, confidence float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return
	}
	s.behavior.EmotionTimeline = append(s.behavior.EmotionTimeline, EmotionSample{
		Emotion:       emotion,
		Confidence:    confidence,
		Timestamp:     s.now(),
		QuestionIndex: s.index,
	})
}

// RecordHesitation increments the hesitation counter.
func (s *Session) RecordHesitation() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return
	}
	s.behavior.HesitationCount++
}

// RecordCorrection increments the correction counter.
func (s *Session) RecordCorrection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return
	}
	s.behavior.CorrectionCount++
}
