package behavior

import "sort"

// PointerSample is one raw pointer position captured by the client.
type PointerSample struct {
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Timestamp     float64 `json:"timestamp"` // client-relative ms
	QuestionIndex int     `json:"questionIndex"`
}

// A pointer stall this long while a question is open counts as a hesitation.
const pointerStallMs = 2000.0

// CountPointerStalls counts gaps in pointer movement longer than the stall
// threshold. Fewer than two samples cannot show a gap.
func CountPointerStalls(samples []PointerSample) int {
	if len(samples) < 2 {
		return 0
	}

	sorted := make([]PointerSample, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	count := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Timestamp-sorted[i-1].Timestamp > pointerStallMs {
			count++
		}
	}
	return count
}
