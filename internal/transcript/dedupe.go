package transcript

import (
	"strings"
	"unicode/utf8"
)

// courseKey is the similarity key used to collapse the same course re-emitted
// by separate chunk calls. It is intentionally heuristic, not exact equality:
// two distinct courses sharing code, grade and credit hours will merge. That
// false positive is accepted; the identifier falls back to a name prefix so
// code-less records still collapse.
type courseKey struct {
	ident   string
	grade   string
	credits float64
}

const nameKeyLen = 20

func keyFor(c Course) courseKey {
	ident := strings.ToUpper(strings.Join(strings.Fields(c.Code), ""))
	if ident == "" {
		n := strings.ToLower(c.Name)
		if len(n) > nameKeyLen {
			n = n[:nameKeyLen]
		}
		ident = n
	}
	return courseKey{ident: ident, grade: c.Grade, credits: c.CreditHours}
}

// merge fills the gaps of c from other, never blindly overwriting: a
// non-empty code beats an empty one, the longer name wins, a non-empty grade
// wins, a non-zero credit value wins.
func (c Course) merge(other Course) Course {
	if c.Code == "" {
		c.Code = other.Code
	}
	if len(other.Name) > len(c.Name) {
		c.Name = other.Name
	}
	if c.Grade == "" {
		c.Grade = other.Grade
	}
	if c.CreditHours == 0 {
		c.CreditHours = other.CreditHours
	}
	c.Included = c.Included || other.Included
	return c
}

// Dedupe collapses likely duplicates across chunk boundaries (and across
// repeated save operations), preserving first-seen order, then drops any
// merged record that still lacks both a usable code and a name longer than 3
// characters.
func Dedupe(courses []Course) []Course {
	index := make(map[courseKey]int, len(courses))
	merged := make([]Course, 0, len(courses))
	for _, c := range courses {
		k := keyFor(c)
		if i, ok := index[k]; ok {
			merged[i] = merged[i].merge(c)
			continue
		}
		index[k] = len(merged)
		merged = append(merged, c)
	}

	out := merged[:0]
	for _, c := range merged {
		if c.Code == "" && utf8.RuneCountInString(c.Name) <= 3 {
			continue
		}
		out = append(out, c)
	}
	return out
}
