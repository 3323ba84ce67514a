package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cogscreen-go/internal/behavior"
	"cogscreen-go/internal/models"
	"cogscreen-go/internal/repository"
	"cogscreen-go/internal/scoring"
	"cogscreen-go/internal/session"
)

type AssessmentHandler struct {
	log      *zap.Logger
	bank     *models.QuestionBank
	sessions *session.Manager
}

func NewAssessmentHandler(log *zap.Logger, bank *models.QuestionBank, sessions *session.Manager) *AssessmentHandler {
	return &AssessmentHandler{log: log, bank: bank, sessions: sessions}
}

func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// Start opens a fresh session for the subject, discarding any session that
// was already in flight.
func (h *AssessmentHandler) Start(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sess, err := h.sessions.StartSession(user.ID, h.bank.SessionQuestions())
	if err != nil {
		h.log.Error("Failed to start assessment session", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start assessment"})
		return
	}

	question, _ := sess.CurrentQuestion()
	index, total := sess.Progress()
	c.JSON(http.StatusOK, gin.H{
		"sessionId":      sess.ID(),
		"totalQuestions": total,
		"question":       newQuestionView(question, index, total),
	})
}

// Question returns the active question for the subject's session.
func (h *AssessmentHandler) Question(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sess, ok := h.sessions.Get(user.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active assessment"})
		return
	}

	question, err := sess.CurrentQuestion()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Assessment is not in progress"})
		return
	}
	index, total := sess.Progress()
	c.JSON(http.StatusOK, newQuestionView(question, index, total))
}

type answerRequest struct {
	Answer scoring.Answer `json:"answer"`
}

// Answer submits the candidate answer for the active question and advances.
// On the final question the session is finalized and persisted; a failed
// save is reported but the result stays retryable.
func (h *AssessmentHandler) Answer(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sess, ok := h.sessions.Get(user.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active assessment"})
		return
	}

	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answer payload"})
		return
	}

	response, err := sess.SubmitResponse(req.Answer)
	if err != nil {
		if errors.Is(err, session.ErrInvalidState) {
			c.JSON(http.StatusConflict, gin.H{"error": "Assessment is not in progress"})
			return
		}
		h.log.Error("Failed to submit response", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not record answer"})
		return
	}

	done, err := sess.Advance()
	if err != nil {
		h.log.Error("Failed to advance assessment", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not advance assessment"})
		return
	}

	if done {
		h.finalize(c, user.ID, sess)
		return
	}

	question, _ := sess.CurrentQuestion()
	index, total := sess.Progress()
	c.JSON(http.StatusOK, gin.H{
		"isCorrect": response.IsCorrect,
		"points":    response.Points,
		"question":  newQuestionView(question, index, total),
	})
}

func (h *AssessmentHandler) finalize(c *gin.Context, userID uint, sess *session.Session) {
	result, err := sess.Complete()
	if err != nil {
		h.log.Error("Failed to finalize assessment", zap.Uint("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not finalize assessment"})
		return
	}

	record := repository.NewAssessmentRecord(userID, sess.ID(), result, sess.Behavior())
	saved := true
	if err := repository.SaveResultTx(c.Request.Context(), record); err != nil {
		// The computed result is still valid; the client can retry the save.
		h.log.Error("Failed to save assessment result", zap.Uint("userID", userID), zap.Error(err))
		saved = false
	} else {
		// A saved session leaves the registry so a stray save-retry cannot
		// insert the same assessment twice.
		h.sessions.Remove(userID)
	}

	c.JSON(http.StatusOK, gin.H{
		"completed": true,
		"saved":     saved,
		"result":    newResultView(result),
	})
}

// RetrySave re-persists the finalized result of a completed session after a
// failed save. The result is not recomputed.
func (h *AssessmentHandler) RetrySave(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sess, ok := h.sessions.Get(user.ID)
	if !ok || sess.State() != session.StateCompleted {
		c.JSON(http.StatusConflict, gin.H{"error": "No completed assessment to save"})
		return
	}

	result, err := sess.Complete()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "No completed assessment to save"})
		return
	}

	record := repository.NewAssessmentRecord(user.ID, sess.ID(), result, sess.Behavior())
	if err := repository.SaveResultTx(c.Request.Context(), record); err != nil {
		h.log.Error("Retry save failed", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not save result, try again"})
		return
	}

	h.sessions.Remove(user.ID)
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// Events ingests a behavioral-signal batch into the active session. Signals
// are accepted opportunistically; outside in_progress they are dropped.
func (h *AssessmentHandler) Events(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sess, ok := h.sessions.Get(user.ID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active assessment"})
		return
	}

	var batch behavior.Batch
	if err := c.ShouldBindJSON(&batch); err != nil {
		h.log.Warn("Failed to bind behavior batch", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event data"})
		return
	}

	behavior.Apply(batch, sess)
	c.Status(http.StatusNoContent)
}

// Reset discards the subject's in-memory session.
func (h *AssessmentHandler) Reset(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if sess, ok := h.sessions.Get(user.ID); ok {
		sess.Reset()
		h.sessions.Remove(user.ID)
	}
	c.Status(http.StatusNoContent)
}
