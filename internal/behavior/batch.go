package behavior

// EmotionEvent is one emotion observation pushed by a face or speech
// analyzer. Confidence is the analyzer's own 0-1 estimate; it is stored,
// never validated.
type EmotionEvent struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

// Batch is one behavioral-signal upload from the client: pre-counted events
// from producers that track their own state, plus raw interaction events the
// server derives hesitations and corrections from.
type Batch struct {
	Emotions       []EmotionEvent  `json:"emotions"`
	Hesitations    int             `json:"hesitations"`
	Corrections    int             `json:"corrections"`
	KeyboardEvents []KeyboardEvent `json:"keyboardEvents"`
	PointerSamples []PointerSample `json:"pointerSamples"`
}

// Recorder is the narrow surface a batch is applied through. The active
// session implements it; analyzers can only accumulate behavior data and can
// never reach scoring state.
type Recorder interface {
	RecordEmotion(emotion string, confidence float64)
	RecordHesitation()
	RecordCorrection()
}

// Apply feeds a batch into a recorder: explicit counts pass through
// unchanged, raw events go through the keyboard and pointer analyzers first.
func Apply(batch Batch, rec Recorder) {
	for _, e := range batch.Emotions {
		rec.RecordEmotion(e.Emotion, e.Confidence)
	}

	hesitations := batch.Hesitations +
		CountHesitations(batch.KeyboardEvents) +
		CountPointerStalls(batch.PointerSamples)
	for i := 0; i < hesitations; i++ {
		rec.RecordHesitation()
	}

	corrections := batch.Corrections + CountCorrections(batch.KeyboardEvents)
	for i := 0; i < corrections; i++ {
		rec.RecordCorrection()
	}
}
