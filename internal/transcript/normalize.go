package transcript

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// verbose grade tokens the model tends to emit instead of the short forms
var gradeSynonyms = map[string]string{
	"PASS":       "P",
	"NO PASS":    "NP",
	"WITHDRAW":   "W",
	"INCOMPLETE": "I",
}

// NormalizeCourse cleans one raw record from the model into a Course. The
// second return is false when the record is noise (headers, term summaries)
// rather than a real course: both identifiers empty, or a name shorter than 3
// characters.
func NormalizeCourse(raw RawCourse) (Course, bool) {
	code := collapseSpace(raw.Code)
	name := collapseSpace(raw.Name)
	if code == "" && name == "" {
		return Course{}, false
	}
	if utf8.RuneCountInString(name) < 3 {
		return Course{}, false
	}

	return Course{
		Code:        code,
		Name:        name,
		Grade:       NormalizeGrade(raw.Grade),
		CreditHours: normalizeCredits(raw.CreditHours, name),
		Included:    true,
	}, true
}

// NormalizeGrade uppercases a grade token and maps verbose forms (PASS,
// NO PASS, WITHDRAW, INCOMPLETE) to their short equivalents. Numeric grade
// strings pass through unchanged.
func NormalizeGrade(grade string) string {
	g := strings.ToUpper(collapseSpace(grade))
	if short, ok := gradeSynonyms[g]; ok {
		return short
	}
	// "WITHDRAWN", "WITHDRAWAL" etc.
	if strings.HasPrefix(g, "WITHDRAW") {
		return "W"
	}
	return g
}

func normalizeCredits(hours float64, name string) float64 {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours < 0 {
		hours = 0
	}
	hours = math.Round(hours*100) / 100
	if hours > 0 {
		return hours
	}
	return InferCreditHours(name)
}

// InferCreditHours guesses credit hours from a course name when the
// transcript omits them. This is a best-effort heuristic, not a guarantee:
// labs, seminars and workshops are usually 1 credit; research, independent
// study, capstone and thesis courses usually 3; everything else defaults to 3.
func InferCreditHours(name string) float64 {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "laboratory"), strings.Contains(n, "lab"):
		return 1
	case strings.Contains(n, "seminar"), strings.Contains(n, "workshop"):
		return 1
	case strings.Contains(n, "independent study"), strings.Contains(n, "research"):
		return 3
	case strings.Contains(n, "capstone"), strings.Contains(n, "thesis"):
		return 3
	default:
		return 3
	}
}

func collapseSpace(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}
