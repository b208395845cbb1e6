package transcript_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Salam-35/PhdTrack-sub000/internal/transcript"
)

func TestComputeGPA(t *testing.T) {
	tests := []struct {
		name    string
		courses []transcript.Course
		grades  transcript.GradeMap
		want    float64
	}{
		{
			name: "single included course",
			courses: []transcript.Course{
				{Grade: "A", CreditHours: 3, Included: true},
			},
			grades: transcript.GradeMap{"A": 4.0},
			want:   4.0,
		},
		{
			name: "weighted average rounded to three decimals",
			courses: []transcript.Course{
				{Grade: "A", CreditHours: 3, Included: true},
				{Grade: "B+", CreditHours: 4, Included: true},
			},
			grades: transcript.DefaultGradeMap(),
			want:   3.571,
		},
		{
			name: "unknown grade excluded from numerator and denominator",
			courses: []transcript.Course{
				{Grade: "A", CreditHours: 3, Included: true},
				{Grade: "P", CreditHours: 10, Included: true},
			},
			grades: transcript.DefaultGradeMap(),
			want:   4.0,
		},
		{
			name: "excluded course skipped",
			courses: []transcript.Course{
				{Grade: "A", CreditHours: 3, Included: true},
				{Grade: "F", CreditHours: 3, Included: false},
			},
			grades: transcript.DefaultGradeMap(),
			want:   4.0,
		},
		{
			name: "all excluded yields zero",
			courses: []transcript.Course{
				{Grade: "A", CreditHours: 3, Included: false},
			},
			grades: transcript.DefaultGradeMap(),
			want:   0,
		},
		{
			name:    "empty course list yields zero",
			courses: nil,
			grades:  transcript.DefaultGradeMap(),
			want:    0,
		},
		{
			name: "lowercase grade tokens still resolve",
			courses: []transcript.Course{
				{Grade: "b+", CreditHours: 4, Included: true},
			},
			grades: transcript.DefaultGradeMap(),
			want:   3.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, transcript.ComputeGPA(tt.courses, tt.grades), 1e-9)
		})
	}
}

func TestComputeGPA_OrderInvariant(t *testing.T) {
	a := []transcript.Course{
		{Grade: "A", CreditHours: 3, Included: true},
		{Grade: "B+", CreditHours: 4, Included: true},
		{Grade: "C", CreditHours: 2, Included: true},
	}
	b := []transcript.Course{a[2], a[0], a[1]}
	assert.Equal(t, transcript.ComputeGPA(a, transcript.DefaultGradeMap()), transcript.ComputeGPA(b, transcript.DefaultGradeMap()))
}
