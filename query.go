package selftrack

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression (e.g. "$.achievements[*].title")
// against the JSON form of s. The result is made of plain JSON values:
// map[string]any, []any, string, float64, bool or nil.
func Query(s AppState, expr string) (any, error) {
	data, err := MarshalState(s)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, err
	}
	v, err := jsonpath.Get(expr, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", expr, err)
	}
	return v, nil
}
