package evaluations_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Salam-35/PhdTrack-sub000/constants"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent"
	"github.com/Salam-35/PhdTrack-sub000/internal/evaluations"
	"github.com/Salam-35/PhdTrack-sub000/internal/llm"
	"github.com/Salam-35/PhdTrack-sub000/internal/pipeline"
	"github.com/Salam-35/PhdTrack-sub000/internal/repository"
	"github.com/Salam-35/PhdTrack-sub000/internal/transcript"
)

// lineExtractor parses "CODE Name... GRADE CREDITS" lines so runs are
// deterministic without a model.
type lineExtractor struct{}

func (lineExtractor) ExtractCourses(_ context.Context, req llm.ExtractRequest) ([]transcript.RawCourse, []byte, error) {
	var out []transcript.RawCourse
	for _, line := range strings.Split(req.ChunkText, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		credits := 3.0
		if fields[len(fields)-1] == "4" {
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

type fakeEvalRepo struct {
	eval    *ent.Evaluation
	courses []*ent.EvaluationCourse
	err     error
}

func (f *fakeEvalRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.Evaluation, error) {
	if f.eval == nil {
		return nil, errors.New("not found")
	}
	return f.eval, f.err
}

func (f *fakeEvalRepo) GetByInstitutionAndLevel(context.Context, uuid.UUID, string, string) (*ent.Evaluation, error) {
	return nil, errors.New("not found")
}

func (f *fakeEvalRepo) UpsertEvaluation(_ context.Context, applicantID uuid.UUID, institution, level string) (*ent.Evaluation, error) {
	if f.eval == nil {
		f.eval = &ent.Evaluation{
			ID:          uuid.New(),
			ApplicantID: applicantID,
			Institution: institution,
			Level:       level,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
	}
	return f.eval, f.err
}

func (f *fakeEvalRepo) ListByApplicant(context.Context, uuid.UUID) ([]*ent.Evaluation, error) {
	if f.eval == nil {
		return nil, nil
	}
	return []*ent.Evaluation{f.eval}, nil
}

func (f *fakeEvalRepo) ListCourses(context.Context, uuid.UUID) ([]*ent.EvaluationCourse, error) {
	return f.courses, f.err
}

func (f *fakeEvalRepo) ReplaceCourses(_ context.Context, evaluationID uuid.UUID, courses []transcript.Course, gpa float64) error {
	f.courses = f.courses[:0]
	for i, c := range courses {
		f.courses = append(f.courses, &ent.EvaluationCourse{
			ID:           uuid.New(),
			EvaluationID: evaluationID,
			Code:         c.Code,
			Name:         c.Name,
			Grade:        c.Grade,
			CreditHours:  c.CreditHours,
			Included:     c.Included,
			Position:     i,
		})
	}
	f.eval.Gpa = gpa
	return f.err
}

func (f *fakeEvalRepo) SetCourseIncluded(_ context.Context, courseID uuid.UUID, included bool) (*ent.EvaluationCourse, error) {
	for _, c := range f.courses {
		if c.ID == courseID {
			c.Included = included
			return c, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeEvalRepo) UpdateCourse(_ context.Context, courseID uuid.UUID, grade string, creditHours float64) (*ent.EvaluationCourse, error) {
	for _, c := range f.courses {
		if c.ID == courseID {
			c.Grade = grade
			c.CreditHours = creditHours
			return c, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeEvalRepo) SetGPA(_ context.Context, _ uuid.UUID, gpa float64) error {
	f.eval.Gpa = gpa
	return f.err
}

func (f *fakeEvalRepo) Delete(context.Context, uuid.UUID) error { return f.err }

type fakeJobRepo struct {
	jobID    uuid.UUID
	statuses []string
}

func (f *fakeJobRepo) Start(context.Context, uuid.UUID, *uuid.UUID, string) (*ent.ExtractJob, error) {
	f.jobID = uuid.New()
	f.statuses = append(f.statuses, string(constants.JobStatusQueued))
	return &ent.ExtractJob{ID: f.jobID, StartedAt: time.Now()}, nil
}

func (f *fakeJobRepo) MarkRunning(context.Context, uuid.UUID) error {
	f.statuses = append(f.statuses, string(constants.JobStatusRunning))
	return nil
}

func (f *fakeJobRepo) FinishSuccess(_ context.Context, _, _ uuid.UUID, status constants.JobStatus, _ int, _, _ json.RawMessage, _ string) error {
	f.statuses = append(f.statuses, string(status))
	return nil
}

func (f *fakeJobRepo) FinishFailure(context.Context, uuid.UUID, string) error {
	f.statuses = append(f.statuses, string(constants.JobStatusFailed))
	return nil
}

func (f *fakeJobRepo) GetByID(context.Context, uuid.UUID) (*ent.ExtractJob, error) {
	return &ent.ExtractJob{ID: f.jobID}, nil
}

func (f *fakeJobRepo) ListByApplicant(context.Context, uuid.UUID) ([]*ent.ExtractJob, error) {
	return nil, nil
}

type fakeFileRepo struct{}

func (fakeFileRepo) GetByID(context.Context, uuid.UUID) (*ent.TranscriptFile, error) {
	return nil, errors.New("not found")
}
func (fakeFileRepo) GetByApplicantAndHash(context.Context, uuid.UUID, []byte) (*ent.TranscriptFile, error) {
	return nil, errors.New("not found")
}
func (fakeFileRepo) Create(context.Context, uuid.UUID, string, string, string, int, []byte, time.Time) (*ent.TranscriptFile, error) {
	return nil, errors.New("unexpected")
}
func (fakeFileRepo) UpsertByHash(_ context.Context, applicantID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.TranscriptFile, bool, error) {
	return &ent.TranscriptFile{
		ID:          uuid.New(),
		ApplicantID: applicantID,
		SourcePath:  sourcePath,
		Filename:    filename,
		FileExt:     ext,
		FileSize:    size,
		ContentHash: hash,
		UploadedAt:  uploadedAt,
	}, false, nil
}

type fakeExistsRepo struct {
	exists bool
	err    error
}

func (f *fakeExistsRepo) GetByID(context.Context, uuid.UUID) (*ent.Applicant, error) {
	return nil, errors.New("not found")
}
func (f *fakeExistsRepo) CreateApplicant(context.Context, *repository.Applicant) (*ent.Applicant, error) {
	return nil, errors.New("unexpected")
}
func (f *fakeExistsRepo) ListApplicants(context.Context) ([]*ent.Applicant, error) {
	return nil, nil
}
func (f *fakeExistsRepo) Exists(context.Context, uuid.UUID) (bool, error) {
	return f.exists, f.err
}

func newTestService(evalRepo *fakeEvalRepo, jobRepo *fakeJobRepo, applicant *fakeExistsRepo) *evaluations.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := pipeline.NewRunner(logger, pipeline.Config{}, lineExtractor{})
	return evaluations.NewService(runner, evalRepo, fakeFileRepo{}, jobRepo, applicant, nil, "test-model", logger)
}

func TestRunExtraction_ApplicantCheckErrorIsInternal(t *testing.T) {
	svc := newTestService(&fakeEvalRepo{}, &fakeJobRepo{}, &fakeExistsRepo{err: errors.New("connection refused")})

	_, err := svc.RunExtraction(context.Background(), evaluations.RunExtractionRequest{
		ApplicantID: uuid.NewString(),
		Institution: "MIT",
		Level:       "phd",
		Text:        "CSE101 Intro to Programming A 3",
	})
	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.Internal, st.Code())
}

func TestRunExtraction_JobMovesQueuedToRunning(t *testing.T) {
	evalRepo := &fakeEvalRepo{}
	jobRepo := &fakeJobRepo{}
	svc := newTestService(evalRepo, jobRepo, &fakeExistsRepo{exists: true})

	res, err := svc.RunExtraction(context.Background(), evaluations.RunExtractionRequest{
		ApplicantID: uuid.NewString(),
		Institution: "MIT",
		Level:       "phd",
		Text:        "CSE101 Intro to Programming A 3\nMATH201 Calculus B+ 4",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"QUEUED", "RUNNING", "EXTRACT_OK"}, jobRepo.statuses)
	require.Len(t, res.Courses, 2)
	assert.Equal(t, 3.571, res.Evaluation.GPA)
	assert.Equal(t, jobRepo.jobID, res.JobID)
}

func TestUpdateCourse_BadGradeRejected(t *testing.T) {
	evalRepo := &fakeEvalRepo{
		eval:    &ent.Evaluation{ID: uuid.New()},
		courses: []*ent.EvaluationCourse{{ID: uuid.New(), Name: "Calculus", Grade: "B+", CreditHours: 4, Included: true}},
	}
	svc := newTestService(evalRepo, &fakeJobRepo{}, &fakeExistsRepo{exists: true})

	_, _, err := svc.UpdateCourse(context.Background(), evalRepo.eval.ID.String(), evalRepo.courses[0].ID.String(), "4.0 GPA", 4)
	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Contains(t, st.Message(), "grade")
}

func TestUpdateCourse_RecomputesGPA(t *testing.T) {
	evalRepo := &fakeEvalRepo{
		eval: &ent.Evaluation{ID: uuid.New(), Gpa: 3.25},
		courses: []*ent.EvaluationCourse{
			{ID: uuid.New(), Name: "Calculus", Grade: "B+", CreditHours: 4, Included: true},
		},
	}
	svc := newTestService(evalRepo, &fakeJobRepo{}, &fakeExistsRepo{exists: true})

	eval, course, err := svc.UpdateCourse(context.Background(), evalRepo.eval.ID.String(), evalRepo.courses[0].ID.String(), "a", 4)
	require.NoError(t, err)

	assert.Equal(t, "A", course.Grade)
	assert.Equal(t, 4.0, eval.GPA)
}
