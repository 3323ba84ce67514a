package models

import (
	"time"

	"github.com/lib/pq"
)

// AssessmentRecord is the persisted form of a finalized assessment. Written
// once at session completion, read back for history and trend comparison.
type AssessmentRecord struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index"`
	User        User   `gorm:"foreignKey:UserID"`
	SessionID   string `gorm:"size:36;uniqueIndex"`
	TotalScore  int
	Percentage  int
	RiskLevel   string
	RiskLabel   string
	Duration    int64 // ms
	CompletedAt time.Time
	CreatedAt   time.Time

	CategoryScores []CategoryScoreRecord `gorm:"foreignKey:AssessmentID"`
	Responses      []ResponseRecord      `gorm:"foreignKey:AssessmentID"`
	Behavior       *BehaviorRecord       `gorm:"foreignKey:AssessmentID"`
}

// CategoryScoreRecord is one category roll-up row of a persisted assessment.
type CategoryScoreRecord struct {
	ID                  uint `gorm:"primaryKey"`
	AssessmentID        uint `gorm:"index"`
	Category            string
	Score               int
	MaxScore            int
	Percentage          int
	QuestionsCorrect    int
	QuestionsTotal      int
	AverageResponseTime int64 // ms
}

// ResponseRecord is one answered question of a persisted assessment. The
// answer is stored in its JSON wire shape.
type ResponseRecord struct {
	ID           uint `gorm:"primaryKey"`
	AssessmentID uint `gorm:"index"`
	QuestionID   string
	Category     string
	Answer       string
	IsCorrect    bool
	ResponseTime int64 // ms
	Points       int
	MaxPoints    int
}

// BehaviorRecord stores the session's side-channel signals for analytics.
type BehaviorRecord struct {
	ID              uint          `gorm:"primaryKey"`
	AssessmentID    uint          `gorm:"index"`
	ResponseTimes   pq.Int64Array `gorm:"type:bigint[]"` // ms
	HesitationCount int
	CorrectionCount int

	EmotionSamples []EmotionSampleRecord `gorm:"foreignKey:BehaviorID"`
}

// EmotionSampleRecord is one emotion observation of a persisted session.
type EmotionSampleRecord struct {
	ID            uint `gorm:"primaryKey"`
	BehaviorID    uint `gorm:"index"`
	Emotion       string
	Confidence    float64
	QuestionIndex int
	SampledAt     time.Time
}
