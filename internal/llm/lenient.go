package llm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SanitizeCourseDocument repairs a course document that failed strict schema
// validation, so the run can still use it: unknown keys are dropped, string
// credit hours are parsed, missing fields are filled with their zero values.
// Returns the cleaned document and a list of what was dropped or coerced.
func SanitizeCourseDocument(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var notes []string

	rawCourses, ok := m["courses"].([]any)
	if !ok {
		// some models emit the array at the top level or under a synonym
		for _, k := range []string{"course_list", "records", "items"} {
			if v, found := m[k].([]any); found {
				rawCourses = v
				notes = append(notes, k+"->courses")
				break
			}
		}
	}

	cleaned := make([]any, 0, len(rawCourses))
	for i, rc := range rawCourses {
		cm, ok := rc.(map[string]any)
		if !ok {
			notes = append(notes, fmt.Sprintf("courses[%d](type)", i))
			continue
		}
		out := map[string]any{
			"code":         coerceString(cm["code"]),
			"name":         coerceString(cm["name"]),
			"grade":        coerceString(cm["grade"]),
			"credit_hours": coerceNumber(cm["credit_hours"], &notes, i),
		}
		for k := range cm {
			switch k {
			case "code", "name", "grade", "credit_hours":
			default:
				notes = append(notes, fmt.Sprintf("courses[%d].%s(unknown)", i, k))
			}
		}
		cleaned = append(cleaned, out)
	}

	b, err := json.Marshal(map[string]any{"courses": cleaned})
	if err != nil {
		return nil, notes, err
	}
	return b, notes, nil
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

func coerceNumber(v any, notes *[]string, i int) float64 {
	switch t := v.(type) {
	case float64:
		if t < 0 {
			return 0
		}
		return t
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 0 {
			*notes = append(*notes, fmt.Sprintf("courses[%d].credit_hours(string)", i))
			return f
		}
		*notes = append(*notes, fmt.Sprintf("courses[%d].credit_hours(unparsable)", i))
		return 0
	case nil:
		return 0
	default:
		*notes = append(*notes, fmt.Sprintf("courses[%d].credit_hours(type)", i))
		return 0
	}
}
