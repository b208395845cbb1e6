package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Salam-35/PhdTrack-sub000/internal/llm"
	"github.com/Salam-35/PhdTrack-sub000/internal/pipeline"
	"github.com/Salam-35/PhdTrack-sub000/internal/transcript"
)

// lineExtractor parses "CODE Name... GRADE CREDITS" lines, standing in for the
// model so runs are deterministic.
type lineExtractor struct {
	calls []llm.ExtractRequest
	fail  map[int]error // 1-based chunk index -> error
}

func (f *lineExtractor) ExtractCourses(_ context.Context, req llm.ExtractRequest) ([]transcript.RawCourse, []byte, error) {
	f.calls = append(f.calls, req)
	if err, ok := f.fail[req.ChunkIndex]; ok {
		return nil, nil, err
	}
	var out []transcript.RawCourse
	for _, line := range strings.Split(req.ChunkText, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		var credits float64
		switch fields[len(fields)-1] {
		case "3":
			credits = 3
		case "4":
			credits = 4
		}
		out = append(out, transcript.RawCourse{
			Code:        fields[0],
			Name:        strings.Join(fields[1:len(fields)-2], " "),
			Grade:       fields[len(fields)-2],
			CreditHours: credits,
		})
	}
	return out, nil, nil
}

func TestRun_TextEndToEnd(t *testing.T) {
	fake := &lineExtractor{}
	r := pipeline.NewRunner(nil, pipeline.Config{}, fake)

	res, err := r.Run(context.Background(), pipeline.Input{
		Text: "CSE101 Intro to Programming A 3\nMATH201 Calculus B+ 4",
	})
	require.NoError(t, err)

	require.Len(t, res.Courses, 2)
	assert.Equal(t, pipeline.SourceText, res.Source)
	assert.False(t, res.UsedFileUpload)
	assert.Equal(t, 1, res.Chunks)
	assert.Empty(t, res.Warnings)
	// (4.0*3 + 3.25*4) / 7
	assert.Equal(t, 3.571, res.GPA)
}

func TestRun_EmptyTextProducesEmptyResult(t *testing.T) {
	fake := &lineExtractor{}
	r := pipeline.NewRunner(nil, pipeline.Config{}, fake)

	res, err := r.Run(context.Background(), pipeline.Input{Text: "   \n\n  "})
	require.NoError(t, err)
	assert.Empty(t, res.Courses)
	assert.Zero(t, res.GPA)
	assert.Zero(t, res.Chunks)
	assert.Empty(t, fake.calls)
}

func TestRun_ChunkFailureBecomesWarning(t *testing.T) {
	// two chunks: the first fails, the second still contributes courses
	text := "CSE101 Intro to Programming A 3\n\nMATH201 Calculus B+ 4"
	fake := &lineExtractor{fail: map[int]error{1: errors.New("openai status 500: upstream")}}
	r := pipeline.NewRunner(nil, pipeline.Config{ChunkBudget: 35}, fake)

	res, err := r.Run(context.Background(), pipeline.Input{Text: text})
	require.NoError(t, err)

	require.Equal(t, 2, res.Chunks)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, 1, res.Warnings[0].Chunk)
	assert.Contains(t, res.Warnings[0].Msg, "status 500")
	require.Len(t, res.Courses, 1)
	assert.Equal(t, "MATH201", res.Courses[0].Code)
}

func TestRun_MissingAPIKeyAborts(t *testing.T) {
	fake := &lineExtractor{fail: map[int]error{1: llm.ErrMissingAPIKey}}
	r := pipeline.NewRunner(nil, pipeline.Config{}, fake)

	_, err := r.Run(context.Background(), pipeline.Input{Text: "CSE101 Intro to Programming A 3"})
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)
}

func TestRun_PDFRejected(t *testing.T) {
	fake := &lineExtractor{}
	r := pipeline.NewRunner(nil, pipeline.Config{}, fake)

	_, err := r.Run(context.Background(), pipeline.Input{FilePath: "/tmp/transcript.pdf"})
	assert.ErrorIs(t, err, llm.ErrPDFUnsupported)
	assert.Empty(t, fake.calls)
}

func TestRun_MalformedImageResponseBecomesWarning(t *testing.T) {
	fake := &lineExtractor{fail: map[int]error{1: llm.ErrMalformedResponse}}
	r := pipeline.NewRunner(nil, pipeline.Config{}, fake)

	res, err := r.Run(context.Background(), pipeline.Input{FilePath: "/tmp/transcript.png"})
	require.NoError(t, err)

	assert.Empty(t, res.Courses)
	assert.Zero(t, res.GPA)
	assert.True(t, res.UsedFileUpload)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, 1, res.Warnings[0].Chunk)
}

func TestRun_ImageTransportErrorStaysFatal(t *testing.T) {
	fake := &lineExtractor{fail: map[int]error{1: errors.New("openai status 500: upstream")}}
	r := pipeline.NewRunner(nil, pipeline.Config{}, fake)

	_, err := r.Run(context.Background(), pipeline.Input{FilePath: "/tmp/transcript.png"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extract from image")
}

func TestRun_ChunkIndexesArePassedThrough(t *testing.T) {
	text := "CSE101 Intro to Programming A 3\n\nMATH201 Calculus B+ 4"
	fake := &lineExtractor{}
	r := pipeline.NewRunner(nil, pipeline.Config{ChunkBudget: 35}, fake)

	_, err := r.Run(context.Background(), pipeline.Input{Text: text, Institution: "MIT", Level: "PHD"})
	require.NoError(t, err)

	require.Len(t, fake.calls, 2)
	assert.Equal(t, 1, fake.calls[0].ChunkIndex)
	assert.Equal(t, 2, fake.calls[0].ChunkCount)
	assert.Equal(t, 2, fake.calls[1].ChunkIndex)
	assert.Equal(t, "MIT", fake.calls[1].Institution)
}

func TestRun_CustomGradeMap(t *testing.T) {
	fake := &lineExtractor{}
	r := pipeline.NewRunner(nil, pipeline.Config{
		GradeMap: transcript.GradeMap{"A": 5.0},
	}, fake)

	res, err := r.Run(context.Background(), pipeline.Input{
		Text: "CSE101 Intro to Programming A 3\nMATH201 Calculus B+ 4",
	})
	require.NoError(t, err)
	// B+ is unknown under the custom map and is skipped entirely
	assert.Equal(t, 5.0, res.GPA)
}
