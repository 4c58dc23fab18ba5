package llm

import "github.com/kyletan/ippt-tracker/internal/extract"

// BuildScoresheetJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to OpenAI as a structured output constraint and
// also use it locally to validate the response.
func BuildScoresheetJSONSchema(maxSoldiers int, bounds CountBounds) map[string]any {
	if maxSoldiers <= 0 {
		maxSoldiers = 10
	}
	bounds = bounds.orDefault()
	row := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":         map[string]any{"type": "string", "minLength": 2},
			"sit_up_reps":  countProp(bounds.SitUp),
			"push_up_reps": countProp(bounds.PushUp),
			"run_time":     map[string]any{"type": "string", "pattern": `^\d{1,2}:\d{2}$`},
			"confidence":   map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"name"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"soldiers": map[string]any{
				"type":     "array",
				"maxItems": maxSoldiers,
				"items":    row,
			},
		},
		"required": []string{"soldiers"},
	}
}

func countProp(r extract.IntRange) map[string]any {
	return map[string]any{"type": "integer", "minimum": r.Min, "maximum": r.Max}
}
