package behavior

import "testing"

func keydown(key string, at float64) KeyboardEvent {
	return KeyboardEvent{Type: "keydown", Key: key, Timestamp: at}
}

func TestCountCorrections(t *testing.T) {
	events := []KeyboardEvent{
		keydown("h", 0),
		keydown("i", 120),
		keydown("Backspace", 300),
		{Type: "keyup", Key: "Backspace", Timestamp: 360},
		keydown("Delete", 500),
		keydown("o", 700),
	}

	if got := CountCorrections(events); got != 2 {
		t.Errorf("CountCorrections = %d, want 2", got)
	}
	if got := CountCorrections(nil); got != 0 {
		t.Errorf("CountCorrections(nil) = %d, want 0", got)
	}
}

func TestCountHesitations(t *testing.T) {
	tests := []struct {
		name   string
		events []KeyboardEvent
		want   int
	}{
		{
			name: "steady typing has no hesitations",
			events: []KeyboardEvent{
				keydown("a", 0), keydown("b", 150), keydown("c", 300),
				keydown("d", 450), keydown("e", 600), keydown("f", 750),
			},
			want: 0,
		},
		{
			name: "one long pause over the floor",
			events: []KeyboardEvent{
				keydown("a", 0), keydown("b", 150), keydown("c", 300),
				keydown("d", 450), keydown("e", 4000), keydown("f", 4150),
			},
			want: 1,
		},
		{
			name: "slow but even rhythm is not flagged",
			events: []KeyboardEvent{
				keydown("a", 0), keydown("b", 900), keydown("c", 1800),
				keydown("d", 2700), keydown("e", 3600), keydown("f", 4500),
			},
			want: 0,
		},
		{
			name:   "too few events to establish a rhythm",
			events: []KeyboardEvent{keydown("a", 0), keydown("b", 9000)},
			want:   0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountHesitations(tc.events); got != tc.want {
				t.Errorf("CountHesitations = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCountPointerStalls(t *testing.T) {
	samples := []PointerSample{
		{X: 0, Y: 0, Timestamp: 0},
		{X: 5, Y: 2, Timestamp: 100},
		{X: 8, Y: 4, Timestamp: 2600}, // 2.5s gap
		{X: 9, Y: 5, Timestamp: 2700},
	}
	if got := CountPointerStalls(samples); got != 1 {
		t.Errorf("CountPointerStalls = %d, want 1", got)
	}
	if got := CountPointerStalls(samples[:1]); got != 0 {
		t.Errorf("single sample should yield 0, got %d", got)
	}
}

type countingRecorder struct {
	emotions    int
	hesitations int
	corrections int
}

func (r *countingRecorder) RecordEmotion(string, float64) { r.emotions++ }
func (r *countingRecorder) RecordHesitation()             { r.hesitations++ }
func (r *countingRecorder) RecordCorrection()             { r.corrections++ }

func TestApply(t *testing.T) {
	batch := Batch{
		Emotions:    []EmotionEvent{{Emotion: "neutral", Confidence: 0.9}, {Emotion: "confused", Confidence: 0.6}},
		Hesitations: 1,
		Corrections: 2,
		KeyboardEvents: []KeyboardEvent{
			keydown("a", 0), keydown("b", 150), keydown("Backspace", 300),
			keydown("c", 450), keydown("d", 5000), keydown("e", 5150),
		},
	}

	rec := &countingRecorder{}
	Apply(batch, rec)

	if rec.emotions != 2 {
		t.Errorf("emotions = %d, want 2", rec.emotions)
	}
	// 1 explicit + 1 derived from the 4550ms inter-key pause.
	if rec.hesitations != 2 {
		t.Errorf("hesitations = %d, want 2", rec.hesitations)
	}
	// 2 explicit + 1 Backspace.
	if rec.corrections != 3 {
		t.Errorf("corrections = %d, want 3", rec.corrections)
	}
}
