package scoring

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Answer is a candidate answer as submitted by the client: either a single
// scalar value or a list of values. Numbers and booleans are folded into the
// scalar form so the checker only ever branches on the two shapes.
type Answer struct {
	Scalar string
	List   []string
	IsList bool
}

// ScalarAnswer wraps a single value.
func ScalarAnswer(v string) Answer {
	return Answer{Scalar: v}
}

// ListAnswer wraps an ordered list of values.
func ListAnswer(values ...string) Answer {
	return Answer{List: values, IsList: true}
}

// UnmarshalJSON accepts a JSON string, number, boolean, or array of strings.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = ScalarAnswer(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = ListAnswer(list...)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*a = ScalarAnswer(n.String())
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*a = ScalarAnswer(strconv.FormatBool(b))
		return nil
	}

	return fmt.Errorf("answer must be a string, number, boolean, or string array")
}

// MarshalJSON emits the original shape.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.IsList {
		return json.Marshal(a.List)
	}
	return json.Marshal(a.Scalar)
}
