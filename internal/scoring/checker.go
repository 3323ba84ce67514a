package scoring

import (
	"strings"

	"cogscreen-go/internal/models"
)

// listSeparator joins normalized list elements for equality comparison. It
// cannot appear in a normalized value because all whitespace is stripped.
const listSeparator = "\x1f"

// normalize prepares a value for comparison: trimmed, lower-cased, and with
// all internal whitespace removed.
func normalize(v string) string {
	return strings.ToLower(strings.Join(strings.Fields(v), ""))
}

func normalizeJoin(values []string) string {
	normalized := make([]string, len(values))
	for i, v := range values {
		normalized[i] = normalize(v)
	}
	return strings.Join(normalized, listSeparator)
}

// CheckAnswer returns the boolean correctness verdict for a candidate answer
// against a question's answer key. There is no partial credit here, and a
// candidate whose shape does not match the key is simply incorrect.
func CheckAnswer(q models.Question, a Answer) bool {
	switch q.Answer.Kind {
	case models.KeyScalar:
		if a.IsList {
			return false
		}
		return normalize(a.Scalar) == normalize(q.Answer.Value)

	case models.KeyOrdered:
		if !a.IsList || len(a.List) != len(q.Answer.Values) {
			return false
		}
		return normalizeJoin(a.List) == normalizeJoin(q.Answer.Values)

	case models.KeyAnyOf:
		if a.IsList {
			// Every key element must appear somewhere in the candidate;
			// extras in the candidate are allowed.
			given := make(map[string]bool, len(a.List))
			for _, v := range a.List {
				given[normalize(v)] = true
			}
			for _, want := range q.Answer.Values {
				if !given[normalize(want)] {
					return false
				}
			}
			return true
		}
		candidate := normalize(a.Scalar)
		for _, want := range q.Answer.Values {
			if candidate == normalize(want) {
				return true
			}
		}
		return false
	}
	return false
}
