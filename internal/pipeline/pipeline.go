package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Salam-35/PhdTrack-sub000/constants"
	"github.com/Salam-35/PhdTrack-sub000/internal/llm"
	"github.com/Salam-35/PhdTrack-sub000/internal/transcript"
)

// Source records where the transcript text came from.
type Source string

const (
	SourceText Source = "text" // pasted or file-read text
	SourceFile Source = "file" // image sent to the vision model
)

// Warning is a non-fatal problem recorded during a run. Chunk is 1-based and
// zero when the warning is not tied to a specific chunk.
type Warning struct {
	Chunk int    `json:"chunk,omitempty"`
	Msg   string `json:"msg"`
}

// Result is the outcome of one extraction run.
type Result struct {
	Courses        []transcript.Course
	GPA            float64
	Source         Source
	UsedFileUpload bool
	Chunks         int
	Warnings       []Warning
}

// Input describes one extraction run. Exactly one of Text/FilePath is set.
type Input struct {
	Text     string
	FilePath string

	// optional prompt context
	Institution string
	Level       string
}

// Config holds behavior knobs for the extraction runner.
type Config struct {
	ChunkBudget int                 // default transcript.DefaultChunkBudget
	GradeMap    transcript.GradeMap // default transcript.DefaultGradeMap
}

// Runner drives a transcript through sanitize, chunk, per-chunk extraction,
// normalization, dedupe, and GPA aggregation.
type Runner struct {
	Logger    *slog.Logger
	Cfg       Config
	Extractor llm.CourseExtractor
}

func NewRunner(logger *slog.Logger, cfg Config, extractor llm.CourseExtractor) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ChunkBudget <= 0 {
		cfg.ChunkBudget = transcript.DefaultChunkBudget
	}
	if cfg.GradeMap == nil {
		cfg.GradeMap = transcript.DefaultGradeMap()
	}
	return &Runner{Logger: logger, Cfg: cfg, Extractor: extractor}
}

// Run executes one extraction. Per-chunk extraction failures are recorded as
// warnings and the run continues; a missing API key or a PDF input aborts the
// whole run.
func (r *Runner) Run(ctx context.Context, in Input) (*Result, error) {
	if in.FilePath != "" {
		return r.runFile(ctx, in)
	}
	return r.runText(ctx, in, in.Text, nil)
}

func (r *Runner) runFile(ctx context.Context, in Input) (*Result, error) {
	ext := constants.NormalizeExt(filepath.Ext(in.FilePath))
	switch constants.MapExtToFormat(ext) {
	case constants.TEXT:
		b, err := os.ReadFile(in.FilePath)
		if err != nil {
			return nil, fmt.Errorf("read transcript file: %w", err)
		}
		return r.runText(ctx, in, string(b), nil)
	case constants.IMAGE:
		return r.runImage(ctx, in)
	case constants.PDF:
		return nil, llm.ErrPDFUnsupported
	default:
		return nil, fmt.Errorf("unsupported transcript file format: %q", ext)
	}
}

func (r *Runner) runImage(ctx context.Context, in Input) (*Result, error) {
	r.Logger.Info("pipeline.image.start", "path", filepath.Base(in.FilePath))
	raw, _, err := r.Extractor.ExtractCourses(ctx, llm.ExtractRequest{
		ImagePath:   in.FilePath,
		ChunkIndex:  1,
		ChunkCount:  1,
		Institution: in.Institution,
		Level:       in.Level,
	})
	res := &Result{Source: SourceFile, UsedFileUpload: true, Chunks: 1}
	if err != nil {
		if !errors.Is(err, llm.ErrMalformedResponse) {
			return nil, fmt.Errorf("extract from image: %w", err)
		}
		// an unparseable vision response means no courses, not a dead run
		r.Logger.Warn("pipeline.image.malformed", "err", err)
		res.Warnings = append(res.Warnings, Warning{Chunk: 1, Msg: err.Error()})
		r.finish(res, nil)
		return res, nil
	}
	r.finish(res, raw)
	return res, nil
}

func (r *Runner) runText(ctx context.Context, in Input, text string, warnings []Warning) (*Result, error) {
	clean := transcript.Sanitize(text)
	chunks := transcript.Chunk(clean, r.Cfg.ChunkBudget)

	res := &Result{Source: SourceText, Chunks: len(chunks), Warnings: warnings}
	if len(chunks) == 0 {
		r.Logger.Info("pipeline.text.empty")
		r.finish(res, nil)
		return res, nil
	}

	r.Logger.Info("pipeline.text.start", "bytes", len(clean), "chunks", len(chunks))

	var raw []transcript.RawCourse
	for i, chunk := range chunks {
		courses, _, err := r.Extractor.ExtractCourses(ctx, llm.ExtractRequest{
			ChunkText:   chunk,
			ChunkIndex:  i + 1,
			ChunkCount:  len(chunks),
			Institution: in.Institution,
			Level:       in.Level,
		})
		if err != nil {
			if errors.Is(err, llm.ErrMissingAPIKey) {
				return nil, err
			}
			r.Logger.Warn("pipeline.chunk.failed", "chunk", i+1, "chunks", len(chunks), "err", err)
			res.Warnings = append(res.Warnings, Warning{Chunk: i + 1, Msg: err.Error()})
			continue
		}
		raw = append(raw, courses...)
	}
	r.finish(res, raw)
	return res, nil
}

// finish normalizes, dedupes, and aggregates the raw rows into the result.
func (r *Runner) finish(res *Result, raw []transcript.RawCourse) {
	courses := make([]transcript.Course, 0, len(raw))
	for _, rc := range raw {
		c, ok := transcript.NormalizeCourse(rc)
		if !ok {
			continue
		}
		courses = append(courses, c)
	}
	res.Courses = transcript.Dedupe(courses)
	res.GPA = transcript.ComputeGPA(res.Courses, r.Cfg.GradeMap)
	r.Logger.Info("pipeline.done",
		"raw", len(raw), "courses", len(res.Courses),
		"gpa", res.GPA, "warnings", len(res.Warnings),
	)
}
