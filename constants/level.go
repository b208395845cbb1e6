package constants

import "strings"

// Level is the degree level an evaluation is scoped to.
type Level string

const (
	LevelBachelors Level = "BACHELORS"
	LevelMasters   Level = "MASTERS"
	LevelPhD       Level = "PHD"
)

var allLevels = []Level{LevelBachelors, LevelMasters, LevelPhD}

func LevelsAsStringSlice() []string {
	result := make([]string, len(allLevels))
	for i, l := range allLevels {
		result[i] = string(l)
	}
	return result
}

// CanonicalizeLevel maps free-form level labels onto the enum.
func CanonicalizeLevel(input string) (Level, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	synonyms := map[string]Level{
		"bs":            LevelBachelors,
		"ba":            LevelBachelors,
		"bsc":           LevelBachelors,
		"undergraduate": LevelBachelors,
		"undergrad":     LevelBachelors,
		"ms":            LevelMasters,
		"msc":           LevelMasters,
		"ma":            LevelMasters,
		"graduate":      LevelMasters,
		"phd":           LevelPhD,
		"doctoral":      LevelPhD,
		"doctorate":     LevelPhD,
	}
	if l, ok := synonyms[normalized]; ok {
		return l, true
	}
	for _, l := range allLevels {
		if normalized == strings.ToLower(string(l)) {
			return l, true
		}
	}
	return "", false
}
