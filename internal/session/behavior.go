package session

import "time"

// EmotionSample is one timestamped emotion observation from a behavioral
// producer, tagged with the question that was active when it arrived.
type EmotionSample struct {
	Emotion       string    `json:"emotion"`
	Confidence    float64   `json:"confidence"`
	Timestamp     time.Time `json:"timestamp"`
	QuestionIndex int       `json:"questionIndex"`
}

// BehaviorData holds the side-channel signals collected during a session.
// It never influences scoring; it is stored alongside the result for
// downstream analytics.
type BehaviorData struct {
	ResponseTimes   []time.Duration `json:"responseTimes"`
	HesitationCount int             `json:"hesitationCount"`
	CorrectionCount int             `json:"correctionCount"`
	EmotionTimeline []EmotionSample `json:"emotionTimeline"`
}

func (b BehaviorData) clone() BehaviorData {
	out := b
	out.ResponseTimes = append([]time.Duration(nil), b.ResponseTimes...)
	out.EmotionTimeline = append([]EmotionSample(nil), b.EmotionTimeline...)
	return out
}
