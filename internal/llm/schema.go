package llm

// BuildCourseListJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the model as a structured output constraint and
// also use it locally to validate what comes back.
func BuildCourseListJSONSchema() map[string]any {
	course := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"code":         map[string]any{"type": "string"},
			"name":         map[string]any{"type": "string"},
			"grade":        map[string]any{"type": "string"},
			"credit_hours": map[string]any{"type": "number", "minimum": 0.0},
		},
		"required": []string{"code", "name", "grade", "credit_hours"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"courses": map[string]any{
				"type":  "array",
				"items": course,
			},
		},
		"required": []string{"courses"},
	}
}
