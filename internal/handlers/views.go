// views.go holds the JSON shapes the API returns. Durations are exposed in
// milliseconds; answer keys never leave the server.
package handlers

import (
	"time"

	"cogscreen-go/internal/models"
	"cogscreen-go/internal/scoring"
)

type questionView struct {
	ID        string   `json:"id"`
	Category  string   `json:"category"`
	Type      string   `json:"type"`
	Question  string   `json:"question"`
	Options   []string `json:"options,omitempty"`
	TimeLimit int      `json:"timeLimit"` // seconds
	Points    int      `json:"points"`
	Hint      string   `json:"hint,omitempty"`
	Index     int      `json:"index"`
	Total     int      `json:"total"`
}

func newQuestionView(q models.Question, index, total int) questionView {
	return questionView{
		ID:        q.ID,
		Category:  string(q.Category),
		Type:      string(q.Type),
		Question:  q.Text,
		Options:   q.Options,
		TimeLimit: q.TimeLimit,
		Points:    q.Points,
		Hint:      q.Hint,
		Index:     index,
		Total:     total,
	}
}

type categoryScoreView struct {
	Category              string `json:"category"`
	Score                 int    `json:"score"`
	MaxScore              int    `json:"maxScore"`
	Percentage            int    `json:"percentage"`
	QuestionsCorrect      int    `json:"questionsCorrect"`
	QuestionsTotal        int    `json:"questionsTotal"`
	AverageResponseTimeMs int64  `json:"averageResponseTimeMs"`
}

func newCategoryScoreView(cs scoring.CategoryScore) categoryScoreView {
	return categoryScoreView{
		Category:              string(cs.Category),
		Score:                 cs.Score,
		MaxScore:              cs.MaxScore,
		Percentage:            cs.Percentage,
		QuestionsCorrect:      cs.QuestionsCorrect,
		QuestionsTotal:        cs.QuestionsTotal,
		AverageResponseTimeMs: cs.AverageResponseTime.Milliseconds(),
	}
}

type responseView struct {
	QuestionID     string         `json:"questionId"`
	Category       string         `json:"category"`
	Answer         scoring.Answer `json:"answer"`
	IsCorrect      bool           `json:"isCorrect"`
	ResponseTimeMs int64          `json:"responseTimeMs"`
	Points         int            `json:"points"`
	MaxPoints      int            `json:"maxPoints"`
}

type resultView struct {
	TotalScore     int                    `json:"totalScore"`
	Percentage     int                    `json:"percentage"`
	Risk           scoring.RiskAssessment `json:"risk"`
	CategoryScores []categoryScoreView    `json:"categoryScores"`
	Responses      []responseView         `json:"responses"`
	CompletedAt    time.Time              `json:"completedAt"`
	DurationMs     int64                  `json:"durationMs"`
}

func newResultView(result scoring.AssessmentResult) resultView {
	view := resultView{
		TotalScore:  result.TotalScore,
		Percentage:  result.Percentage,
		Risk:        result.Risk,
		CompletedAt: result.CompletedAt,
		DurationMs:  result.Duration.Milliseconds(),
	}
	for _, cs := range result.CategoryScores {
		view.CategoryScores = append(view.CategoryScores, newCategoryScoreView(cs))
	}
	for _, r := range result.Responses {
		view.Responses = append(view.Responses, responseView{
			QuestionID:     r.QuestionID,
			Category:       string(r.Category),
			Answer:         r.Answer,
			IsCorrect:      r.IsCorrect,
			ResponseTimeMs: r.ResponseTime.Milliseconds(),
			Points:         r.Points,
			MaxPoints:      r.MaxPoints,
		})
	}
	return view
}

type resultSummaryView struct {
	ID          uint      `json:"id"`
	TotalScore  int       `json:"totalScore"`
	Percentage  int       `json:"percentage"`
	RiskLevel   string    `json:"riskLevel"`
	CompletedAt time.Time `json:"completedAt"`
	DurationMs  int64     `json:"durationMs"`
}

func newResultSummaryView(record models.AssessmentRecord) resultSummaryView {
	return resultSummaryView{
		ID:          record.ID,
		TotalScore:  record.TotalScore,
		Percentage:  record.Percentage,
		RiskLevel:   record.RiskLevel,
		CompletedAt: record.CompletedAt,
		DurationMs:  record.Duration,
	}
}
