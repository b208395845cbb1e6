package transcript_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Salam-35/PhdTrack-sub000/internal/transcript"
)

func TestChunk_SmallInputSingleChunk(t *testing.T) {
	text := "CSE101 Intro to Programming A 3\nMATH201 Calculus B+ 4"
	chunks := transcript.Chunk(text, 12000)
	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0])
}

func TestChunk_EmptyInput(t *testing.T) {
	assert.Nil(t, transcript.Chunk("", 100))
	assert.Nil(t, transcript.Chunk("   \n  ", 100))
}

func TestChunk_PrefersBlankLineBoundary(t *testing.T) {
	// two terms separated by a blank line just past 40% of the window
	term1 := strings.Repeat("CSE101 Intro A 3\n", 10)
	term2 := strings.Repeat("MATH201 Calc B 4\n", 10)
	text := term1 + "\n" + term2
	budget := len(term1) + 20

	chunks := transcript.Chunk(text, budget)
	require.Len(t, chunks, 2)
	assert.Equal(t, strings.TrimSpace(term1), chunks[0])
	assert.Equal(t, strings.TrimSpace(term2), chunks[1])
}

func TestChunk_CoversFullInput(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 400; i++ {
		b.WriteString("COURSE line with a grade and credits\n")
	}
	text := b.String()
	budget := 500

	chunks := transcript.Chunk(text, budget)
	require.Greater(t, len(chunks), 1)

	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), budget)
		assert.NotEmpty(t, strings.TrimSpace(c))
	}

	// concatenation reconstructs the content modulo boundary whitespace
	joined := strings.Join(chunks, "\n")
	assert.Equal(t,
		strings.Join(strings.Fields(text), " "),
		strings.Join(strings.Fields(joined), " "),
	)
}

func TestChunk_TerminatesWithoutNewlines(t *testing.T) {
	text := strings.Repeat("x", 5000)
	chunks := transcript.Chunk(text, 1000)
	require.Len(t, chunks, 5)
	for _, c := range chunks {
		assert.Equal(t, 1000, len(c))
	}
}

func TestChunk_DefaultBudget(t *testing.T) {
	text := strings.Repeat("y", transcript.DefaultChunkBudget+1)
	chunks := transcript.Chunk(text, 0)
	assert.Len(t, chunks, 2)
}
