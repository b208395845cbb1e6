package transcript_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Salam-35/PhdTrack-sub000/internal/transcript"
)

func TestNormalizeCourse(t *testing.T) {
	tests := []struct {
		name string
		in   transcript.RawCourse
		want transcript.Course
		ok   bool
	}{
		{
			name: "whitespace collapsed in code and name",
			in:   transcript.RawCourse{Code: " CSE  101 ", Name: "Intro   to\tProgramming", Grade: "A", CreditHours: 3},
			want: transcript.Course{Code: "CSE 101", Name: "Intro to Programming", Grade: "A", CreditHours: 3, Included: true},
			ok:   true,
		},
		{
			name: "verbose pass grade normalized",
			in:   transcript.RawCourse{Code: "PE100", Name: "Swimming", Grade: "pass", CreditHours: 1},
			want: transcript.Course{Code: "PE100", Name: "Swimming", Grade: "P", CreditHours: 1, Included: true},
			ok:   true,
		},
		{
			name: "no pass grade normalized",
			in:   transcript.RawCourse{Code: "PE101", Name: "Archery", Grade: "No Pass", CreditHours: 1},
			want: transcript.Course{Code: "PE101", Name: "Archery", Grade: "NP", CreditHours: 1, Included: true},
			ok:   true,
		},
		{
			name: "withdrawn grade normalized",
			in:   transcript.RawCourse{Code: "HIS210", Name: "World History", Grade: "Withdrawn", CreditHours: 3},
			want: transcript.Course{Code: "HIS210", Name: "World History", Grade: "W", CreditHours: 3, Included: true},
			ok:   true,
		},
		{
			name: "lab infers one credit",
			in:   transcript.RawCourse{Code: "PHY110L", Name: "Physics Lab I", Grade: "A-", CreditHours: 0},
			want: transcript.Course{Code: "PHY110L", Name: "Physics Lab I", Grade: "A-", CreditHours: 1, Included: true},
			ok:   true,
		},
		{
			name: "regular course infers three credits",
			in:   transcript.RawCourse{Code: "PHY530", Name: "Quantum Field Theory", Grade: "A", CreditHours: 0},
			want: transcript.Course{Code: "PHY530", Name: "Quantum Field Theory", Grade: "A", CreditHours: 3, Included: true},
			ok:   true,
		},
		{
			name: "thesis infers three credits",
			in:   transcript.RawCourse{Code: "CSE699", Name: "Masters Thesis", Grade: "P", CreditHours: 0},
			want: transcript.Course{Code: "CSE699", Name: "Masters Thesis", Grade: "P", CreditHours: 3, Included: true},
			ok:   true,
		},
		{
			name: "seminar infers one credit",
			in:   transcript.RawCourse{Code: "CSE590", Name: "Graduate Seminar", Grade: "P", CreditHours: 0},
			want: transcript.Course{Code: "CSE590", Name: "Graduate Seminar", Grade: "P", CreditHours: 1, Included: true},
			ok:   true,
		},
		{
			name: "negative credits treated as missing",
			in:   transcript.RawCourse{Code: "MAT201", Name: "Calculus II", Grade: "B", CreditHours: -4},
			want: transcript.Course{Code: "MAT201", Name: "Calculus II", Grade: "B", CreditHours: 3, Included: true},
			ok:   true,
		},
		{
			name: "credits rounded to two decimals",
			in:   transcript.RawCourse{Code: "MAT201", Name: "Calculus II", Grade: "B", CreditHours: 3.333333},
			want: transcript.Course{Code: "MAT201", Name: "Calculus II", Grade: "B", CreditHours: 3.33, Included: true},
			ok:   true,
		},
		{
			name: "both identifiers empty is noise",
			in:   transcript.RawCourse{Grade: "A", CreditHours: 3},
			ok:   false,
		},
		{
			name: "short name is noise",
			in:   transcript.RawCourse{Code: "X", Name: "GP", Grade: "A", CreditHours: 3},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := transcript.NormalizeCourse(tt.in)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalizeGrade_NumericPassthrough(t *testing.T) {
	assert.Equal(t, "3.75", transcript.NormalizeGrade(" 3.75 "))
}
