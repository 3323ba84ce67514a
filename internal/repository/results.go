// results.go
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"cogscreen-go/internal/database"
	"cogscreen-go/internal/models"
	"cogscreen-go/internal/scoring"
	"cogscreen-go/internal/session"
)

// NewAssessmentRecord flattens a finalized result plus its behavior data
// into the persisted shape. Durations are stored as milliseconds.
func NewAssessmentRecord(userID uint, sessionID string, result scoring.AssessmentResult, behavior session.BehaviorData) *models.AssessmentRecord {
	record := &models.AssessmentRecord{
		UserID:      userID,
		SessionID:   sessionID,
		TotalScore:  result.TotalScore,
		Percentage:  result.Percentage,
		RiskLevel:   string(result.Risk.Level),
		RiskLabel:   result.Risk.Label,
		Duration:    result.Duration.Milliseconds(),
		CompletedAt: result.CompletedAt,
	}

	for _, cs := range result.CategoryScores {
		record.CategoryScores = append(record.CategoryScores, models.CategoryScoreRecord{
			Category:            string(cs.Category),
			Score:               cs.Score,
			MaxScore:            cs.MaxScore,
			Percentage:          cs.Percentage,
			QuestionsCorrect:    cs.QuestionsCorrect,
			QuestionsTotal:      cs.QuestionsTotal,
			AverageResponseTime: cs.AverageResponseTime.Milliseconds(),
		})
	}

	for _, r := range result.Responses {
		answer, _ := json.Marshal(r.Answer)
		record.Responses = append(record.Responses, models.ResponseRecord{
			QuestionID:   r.QuestionID,
			Category:     string(r.Category),
			Answer:       string(answer),
			IsCorrect:    r.IsCorrect,
			ResponseTime: r.ResponseTime.Milliseconds(),
			Points:       r.Points,
			MaxPoints:    r.MaxPoints,
		})
	}

	behaviorRecord := &models.BehaviorRecord{
		HesitationCount: behavior.HesitationCount,
		CorrectionCount: behavior.CorrectionCount,
	}
	for _, rt := range behavior.ResponseTimes {
		behaviorRecord.ResponseTimes = append(behaviorRecord.ResponseTimes, rt.Milliseconds())
	}
	for _, sample := range behavior.EmotionTimeline {
		behaviorRecord.EmotionSamples = append(behaviorRecord.EmotionSamples, models.EmotionSampleRecord{
			Emotion:       sample.Emotion,
			Confidence:    sample.Confidence,
			QuestionIndex: sample.QuestionIndex,
			SampledAt:     sample.Timestamp,
		})
	}
	record.Behavior = behaviorRecord

	return record
}

// ResultFromRecord rebuilds the scoring-layer result from its persisted
// shape, for trend comparison against a fresh assessment. A stored answer
// that no longer parses is reported rather than silently zeroed.
func ResultFromRecord(record *models.AssessmentRecord) (scoring.AssessmentResult, error) {
	result := scoring.AssessmentResult{
		TotalScore:  record.TotalScore,
		Percentage:  record.Percentage,
		Risk:        scoring.ClassifyRisk(record.Percentage),
		CompletedAt: record.CompletedAt,
		Duration:    time.Duration(record.Duration) * time.Millisecond,
	}

	for _, cs := range record.CategoryScores {
		result.CategoryScores = append(result.CategoryScores, scoring.CategoryScore{
			Category:            models.Category(cs.Category),
			Score:               cs.Score,
			MaxScore:            cs.MaxScore,
			Percentage:          cs.Percentage,
			QuestionsCorrect:    cs.QuestionsCorrect,
			QuestionsTotal:      cs.QuestionsTotal,
			AverageResponseTime: time.Duration(cs.AverageResponseTime) * time.Millisecond,
		})
	}

	for _, rr := range record.Responses {
		var answer scoring.Answer
		if err := json.Unmarshal([]byte(rr.Answer), &answer); err != nil {
			return scoring.AssessmentResult{}, fmt.Errorf("assessment %d question %s: decode stored answer: %w", record.ID, rr.QuestionID, err)
		}
		result.Responses = append(result.Responses, scoring.Response{
			QuestionID:   rr.QuestionID,
			Category:     models.Category(rr.Category),
			Answer:       answer,
			IsCorrect:    rr.IsCorrect,
			ResponseTime: time.Duration(rr.ResponseTime) * time.Millisecond,
			Points:       rr.Points,
			MaxPoints:    rr.MaxPoints,
		})
	}

	return result, nil
}

// SaveResultTx saves the assessment summary and all of its child rows in a
// single transaction. A failure leaves nothing behind, and the caller's
// in-memory result stays valid for a retry.
func SaveResultTx(ctx context.Context, record *models.AssessmentRecord) error {
	return database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(record).Error
	})
}

// GetRecentResults returns the subject's most recent assessments, newest
// first, with all child rows loaded.
func GetRecentResults(ctx context.Context, userID uint, limit int) ([]models.AssessmentRecord, error) {
	var records []models.AssessmentRecord
	err := database.DB.WithContext(ctx).
		Preload("CategoryScores").
		Preload("Responses").
		Preload("Behavior").
		Preload("Behavior.EmotionSamples").
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// GetLatestResult returns the subject's most recent assessment, or
// gorm.ErrRecordNotFound if none exists yet.
func GetLatestResult(ctx context.Context, userID uint) (*models.AssessmentRecord, error) {
	var record models.AssessmentRecord
	err := database.DB.WithContext(ctx).
		Preload("CategoryScores").
		Preload("Responses").
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// HasCompletedAssessmentToday reports whether the subject finished an
// assessment since UTC midnight.
func HasCompletedAssessmentToday(userID uint) (bool, error) {
	midnight := time.Now().UTC().Truncate(24 * time.Hour)
	var count int64
	err := database.DB.Model(&models.AssessmentRecord{}).
		Where("user_id = ? AND completed_at >= ?", userID, midnight).
		Count(&count).Error
	return count > 0, err
}
