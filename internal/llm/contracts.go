package llm

import (
	"context"
	"errors"

	"github.com/Salam-35/PhdTrack-sub000/internal/transcript"
)

// CourseList is the schema-constrained shape we require from the model: an
// object holding a courses array.
type CourseList struct {
	Courses []transcript.RawCourse `json:"courses"`
}

// ExtractRequest describes one extraction call: either a text chunk with its
// position inside the full transcript, or an image file path for the vision
// path. Exactly one of ChunkText/ImagePath is set.
type ExtractRequest struct {
	ChunkText  string
	ChunkIndex int // 1-based
	ChunkCount int

	ImagePath string

	// optional prompt context
	Institution string
	Level       string
}

// CourseExtractor is the interface the extraction pipeline depends on.
type CourseExtractor interface {
	ExtractCourses(ctx context.Context, req ExtractRequest) ([]transcript.RawCourse, []byte /*rawJSON*/, error)
}

var (
	// ErrMissingAPIKey is fatal: the pipeline refuses to start without a key.
	ErrMissingAPIKey = errors.New("llm: API key is not configured")

	// ErrMalformedResponse marks a response that could not be decoded into a
	// course list. Callers treat it as zero courses for that call.
	ErrMalformedResponse = errors.New("llm: malformed model response")

	// ErrPDFUnsupported rejects PDF file input with a user-facing message.
	// PDF text extraction is a deliberate scope limitation, not a bug.
	ErrPDFUnsupported = errors.New("PDF transcripts are not supported: convert the PDF to an image or paste the transcript text instead")
)
