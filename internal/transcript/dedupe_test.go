package transcript_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Salam-35/PhdTrack-sub000/internal/transcript"
)

func TestDedupe_CollapsesIdenticalKeys(t *testing.T) {
	in := []transcript.Course{
		{Code: "CSE101", Name: "Intro to Programming", Grade: "A", CreditHours: 3, Included: true},
		{Code: "CSE 101", Name: "Intro to Programming", Grade: "A", CreditHours: 3, Included: true},
	}
	out := transcript.Dedupe(in)
	require.Len(t, out, 1)
	assert.Equal(t, "CSE101", out[0].Code)
}

func TestDedupe_MergeFillsGaps(t *testing.T) {
	in := []transcript.Course{
		{Code: "", Name: "Intro to Programming", Grade: "A", CreditHours: 3, Included: true},
		{Code: "CSE101", Name: "Intro to Programming", Grade: "A", CreditHours: 3, Included: true},
		{Code: "", Name: "Intro to Programming I and II", Grade: "A", CreditHours: 3, Included: true},
	}
	// first and third share the 20-char name-prefix key with the same grade
	// and credits; the second keeps its own code-based key
	out := transcript.Dedupe(in)
	require.Len(t, out, 2)
	assert.Equal(t, "Intro to Programming I and II", out[0].Name)
	assert.Equal(t, "CSE101", out[1].Code)
}

func TestDedupe_PrefersNonEmptyFields(t *testing.T) {
	in := []transcript.Course{
		{Code: "MAT201", Name: "Calc", Grade: "", CreditHours: 0, Included: true},
		{Code: "MAT201", Name: "Calculus II", Grade: "", CreditHours: 0, Included: true},
	}
	out := transcript.Dedupe(in)
	require.Len(t, out, 1)
	assert.Equal(t, "MAT201", out[0].Code)
	assert.Equal(t, "Calculus II", out[0].Name)
}

func TestDedupe_FinalFilterDropsUnusableRecords(t *testing.T) {
	in := []transcript.Course{
		{Code: "", Name: "GPA", Grade: "A", CreditHours: 3, Included: true},
		{Code: "CSE101", Name: "Intro to Programming", Grade: "A", CreditHours: 3, Included: true},
	}
	out := transcript.Dedupe(in)
	require.Len(t, out, 1)
	assert.Equal(t, "CSE101", out[0].Code)
}

func TestDedupe_PreservesFirstSeenOrder(t *testing.T) {
	in := []transcript.Course{
		{Code: "B200", Name: "Second Course", Grade: "B", CreditHours: 3, Included: true},
		{Code: "A100", Name: "First Course", Grade: "A", CreditHours: 3, Included: true},
		{Code: "B200", Name: "Second Course", Grade: "B", CreditHours: 3, Included: true},
	}
	out := transcript.Dedupe(in)
	require.Len(t, out, 2)
	assert.Equal(t, "B200", out[0].Code)
	assert.Equal(t, "A100", out[1].Code)
}
