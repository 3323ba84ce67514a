// keyboard.go
package behavior

import "sort"

// KeyboardEvent is a raw key event captured by the client during a question.
type KeyboardEvent struct {
	Type          string  `json:"type"` // "keydown" or "keyup"
	Key           string  `json:"key"`
	Timestamp     float64 `json:"timestamp"` // client-relative ms
	QuestionIndex int     `json:"questionIndex"`
}

const (
	// A gap between keydowns counts as a hesitation when it exceeds both
	// three times the average inter-key interval and this floor.
	hesitationFloorMs = 1000.0
	minKeydownSample  = 5
)

// CountCorrections counts Backspace and Delete presses in a keyboard event
// batch. Each press is one correction.
func CountCorrections(events []KeyboardEvent) int {
	count := 0
	for _, e := range events {
		if e.Type != "keydown" {
			continue
		}
		if e.Key == "Backspace" || e.Key == "Delete" {
			count++
		}
	}
	return count
}

// CountHesitations counts unusually long pauses between consecutive
// keydowns. The threshold adapts to the subject's own typing rhythm so slow
// but steady typists are not flagged. Batches too small to establish a
// rhythm yield zero.
func CountHesitations(events []KeyboardEvent) int {
	keydowns := make([]KeyboardEvent, 0, len(events))
	for _, e := range events {
		if e.Type == "keydown" {
			keydowns = append(keydowns, e)
		}
	}
	if len(keydowns) < minKeydownSample {
		return 0
	}

	sort.Slice(keydowns, func(i, j int) bool {
		return keydowns[i].Timestamp < keydowns[j].Timestamp
	})

	intervals := make([]float64, 0, len(keydowns)-1)
	var sum float64
	for i := 1; i < len(keydowns); i++ {
		interval := keydowns[i].Timestamp - keydowns[i-1].Timestamp
		intervals = append(intervals, interval)
		sum += interval
	}

	threshold := sum / float64(len(intervals)) * 3.0
	if threshold < hesitationFloorMs {
		threshold = hesitationFloorMs
	}

	count := 0
	for _, interval := range intervals {
		if interval > threshold {
			count++
		}
	}
	return count
}
