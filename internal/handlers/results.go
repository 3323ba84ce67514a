// results.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cogscreen-go/internal/config"
	"cogscreen-go/internal/models"
	"cogscreen-go/internal/repository"
	"cogscreen-go/internal/scoring"
)

type ResultsHandler struct {
	log *zap.Logger
}

func NewResultsHandler(log *zap.Logger) *ResultsHandler {
	return &ResultsHandler{log: log}
}

// Latest returns the subject's most recent finalized assessment.
func (h *ResultsHandler) Latest(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := repository.GetLatestResult(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No assessments yet"})
			return
		}
		h.log.Error("Failed to load latest result", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load results"})
		return
	}

	result, err := repository.ResultFromRecord(record)
	if err != nil {
		h.log.Error("Failed to decode stored result", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load results"})
		return
	}
	c.JSON(http.StatusOK, newResultView(result))
}

// History returns recent assessment summaries, newest first.
func (h *ResultsHandler) History(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit := config.Conf.Assessment.HistoryLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= limit {
			limit = n
		}
	}

	records, err := repository.GetRecentResults(c.Request.Context(), user.ID, limit)
	if err != nil {
		h.log.Error("Failed to load result history", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load results"})
		return
	}

	summaries := make([]resultSummaryView, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, newResultSummaryView(record))
	}
	c.JSON(http.StatusOK, gin.H{"results": summaries})
}

// Trend diffs the two most recent assessments. With a single assessment the
// trend is null, which is the expected first-run shape rather than an error.
func (h *ResultsHandler) Trend(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	records, err := repository.GetRecentResults(c.Request.Context(), user.ID, 2)
	if err != nil {
		h.log.Error("Failed to load results for trend", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load results"})
		return
	}
	if len(records) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No assessments yet"})
		return
	}

	current, err := repository.ResultFromRecord(&records[0])
	if err != nil {
		h.log.Error("Failed to decode stored result", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load results"})
		return
	}
	var previous *scoring.AssessmentResult
	if len(records) > 1 {
		prev, err := repository.ResultFromRecord(&records[1])
		if err != nil {
			h.log.Error("Failed to decode stored result", zap.Uint("userID", user.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load results"})
			return
		}
		previous = &prev
	}

	c.JSON(http.StatusOK, gin.H{
		"currentScore": current.TotalScore,
		"trend":        scoring.CompareTrend(current, previous),
	})
}

// trainingSuggestions maps each category to the training advice surfaced
// when it shows up as a weak area.
var trainingSuggestions = map[models.Category]string{
	models.CategoryMemory:       "Practice word-list recall and photo reminiscence exercises daily.",
	models.CategoryLanguage:     "Try naming drills and category fluency games (animals, foods, cities).",
	models.CategoryCalculation:  "Work through everyday arithmetic like shopping totals and change counting.",
	models.CategoryAttention:    "Use short focus drills such as target tapping and odd-one-out searches.",
	models.CategoryExecutive:    "Practice sequencing tasks: planning a meal, sorting steps of a routine.",
	models.CategoryVisuospatial: "Try shape matching, simple mazes, and clock-drawing practice.",
}

// Recommendations derives weak and strong areas from the latest assessment.
func (h *ResultsHandler) Recommendations(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record, err := repository.GetLatestResult(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No assessments yet"})
			return
		}
		h.log.Error("Failed to load latest result", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load results"})
		return
	}

	result, err := repository.ResultFromRecord(record)
	if err != nil {
		h.log.Error("Failed to decode stored result", zap.Uint("userID", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load results"})
		return
	}

	type recommendation struct {
		Category   string `json:"category"`
		Percentage int    `json:"percentage"`
		Suggestion string `json:"suggestion"`
	}

	weak := make([]recommendation, 0)
	for _, cs := range scoring.WeakAreas(result) {
		weak = append(weak, recommendation{
			Category:   string(cs.Category),
			Percentage: cs.Percentage,
			Suggestion: trainingSuggestions[cs.Category],
		})
	}

	strong := make([]string, 0)
	for _, cs := range scoring.StrongAreas(result) {
		strong = append(strong, string(cs.Category))
	}

	c.JSON(http.StatusOK, gin.H{
		"riskLevel":   record.RiskLevel,
		"weakAreas":   weak,
		"strongAreas": strong,
	})
}
