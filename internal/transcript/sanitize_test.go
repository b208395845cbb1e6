package transcript_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Salam-35/PhdTrack-sub000/internal/transcript"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "crlf becomes lf",
			in:   "line one\r\nline two\rline three",
			want: "line one\nline two\nline three",
		},
		{
			name: "non-breaking space becomes plain space",
			in:   "CSE 101 Intro",
			want: "CSE 101 Intro",
		},
		{
			name: "trailing whitespace stripped before newlines",
			in:   "a   \nb\t\nc",
			want: "a\nb\nc",
		},
		{
			name: "three plus newlines collapse to two",
			in:   "a\n\n\n\n\nb",
			want: "a\n\nb",
		},
		{
			name: "control characters removed, tabs and spaces collapsed",
			in:   "a\x00\x08b\t\tc   d",
			want: "ab c d",
		},
		{
			name: "empty input stays empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transcript.Sanitize(tt.in))
		})
	}
}

func TestSanitize_Invariants(t *testing.T) {
	in := "GPA Report\r\n\r\n\r\n\r\nCSE101\tIntro   to CS\x01\x02  \nMATH201 "
	out := transcript.Sanitize(in)

	assert.NotContains(t, out, "\r")
	assert.NotContains(t, out, " ")
	assert.NotContains(t, out, "\n\n\n")
	assert.NotContains(t, out, "\t")

	// idempotent
	assert.Equal(t, out, transcript.Sanitize(out))
}

func TestSanitize_KeepsBlankLineStructure(t *testing.T) {
	in := "Fall 2023\n\nCSE101 Intro A 3\nMATH201 Calc B+ 4"
	out := transcript.Sanitize(in)
	assert.Equal(t, 2, len(strings.Split(out, "\n\n")))
}
