package evaluations

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Salam-35/PhdTrack-sub000/constants"
	"github.com/Salam-35/PhdTrack-sub000/internal/common"
	"github.com/Salam-35/PhdTrack-sub000/internal/entity"
	"github.com/Salam-35/PhdTrack-sub000/internal/pipeline"
	"github.com/Salam-35/PhdTrack-sub000/internal/repository"
	"github.com/Salam-35/PhdTrack-sub000/internal/transcript"
	"github.com/Salam-35/PhdTrack-sub000/internal/utils"
)

// Service owns transcript evaluations: it runs extractions, stores the
// resulting course rows, and keeps each evaluation's GPA current.
type Service struct {
	runner    *pipeline.Runner
	evalRepo  repository.EvaluationRepository
	fileRepo  repository.TranscriptFileRepository
	jobRepo   repository.ExtractJobRepository
	applicant repository.ApplicantRepository
	gradeMap  transcript.GradeMap
	modelName string
	logger    *slog.Logger
}

func NewService(
	runner *pipeline.Runner,
	evalRepo repository.EvaluationRepository,
	fileRepo repository.TranscriptFileRepository,
	jobRepo repository.ExtractJobRepository,
	applicant repository.ApplicantRepository,
	gradeMap transcript.GradeMap,
	modelName string,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if gradeMap == nil {
		gradeMap = transcript.DefaultGradeMap()
	}
	return &Service{
		runner:    runner,
		evalRepo:  evalRepo,
		fileRepo:  fileRepo,
		jobRepo:   jobRepo,
		applicant: applicant,
		gradeMap:  gradeMap,
		modelName: modelName,
		logger:    logger,
	}
}

// RunExtractionRequest represents one transcript extraction request. Exactly
// one of Text/FilePath is set.
type RunExtractionRequest struct {
	ApplicantID string
	Institution string
	Level       string
	Text        string
	FilePath    string
}

// RunExtractionResult pairs the stored evaluation with the run's outcome.
type RunExtractionResult struct {
	Evaluation *entity.Evaluation
	Courses    []*entity.EvaluationCourse
	JobID      uuid.UUID
	Warnings   []pipeline.Warning
}

// RunExtraction extracts courses from a transcript, replaces the evaluation's
// course rows, recomputes its GPA, and records the run in extract_jobs.
func (s *Service) RunExtraction(ctx context.Context, req RunExtractionRequest) (*RunExtractionResult, error) {
	applicantID, err := uuid.Parse(strings.TrimSpace(req.ApplicantID))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "applicant_id must be a UUID")
	}
	institution := strings.TrimSpace(req.Institution)
	if institution == "" {
		return nil, status.Error(codes.InvalidArgument, "institution is required")
	}
	level, ok := constants.CanonicalizeLevel(req.Level)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown degree level %q", req.Level)
	}
	if (req.Text == "") == (req.FilePath == "") {
		return nil, status.Error(codes.InvalidArgument, "provide either transcript text or a file path")
	}
	exists, err := s.applicant.Exists(ctx, applicantID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "check applicant: %v", err)
	}
	if !exists {
		return nil, status.Errorf(codes.NotFound, "applicant %s not found", applicantID)
	}

	var fileID *uuid.UUID
	source := string(pipeline.SourceText)
	if req.FilePath != "" {
		source = string(pipeline.SourceFile)
		file, err := s.registerFile(ctx, applicantID, req.FilePath)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "register transcript file: %v", err)
		}
		fileID = &file.ID
	}

	job, err := s.jobRepo.Start(ctx, applicantID, fileID, source)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "start extract job: %v", err)
	}
	if err := s.jobRepo.MarkRunning(ctx, job.ID); err != nil {
		s.logger.Warn("failed to mark job running", "job_id", job.ID, "error", err)
	}

	res, err := s.runner.Run(ctx, pipeline.Input{
		Text:        req.Text,
		FilePath:    req.FilePath,
		Institution: institution,
		Level:       string(level),
	})
	if err != nil {
		_ = s.jobRepo.FinishFailure(ctx, job.ID, err.Error())
		return nil, status.Errorf(codes.FailedPrecondition, "extraction failed: %v", err)
	}

	eval, err := s.evalRepo.UpsertEvaluation(ctx, applicantID, institution, string(level))
	if err != nil {
		_ = s.jobRepo.FinishFailure(ctx, job.ID, err.Error())
		return nil, status.Errorf(codes.Internal, "upsert evaluation: %v", err)
	}
	if err := s.evalRepo.ReplaceCourses(ctx, eval.ID, res.Courses, res.GPA); err != nil {
		_ = s.jobRepo.FinishFailure(ctx, job.ID, err.Error())
		return nil, status.Errorf(codes.Internal, "store courses: %v", err)
	}

	s.finishJob(ctx, job.ID, eval.ID, res)

	rows, err := s.evalRepo.ListCourses(ctx, eval.ID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "load courses: %v", err)
	}
	eval, err = s.evalRepo.GetByID(ctx, eval.ID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "load evaluation: %v", err)
	}

	courses := make([]*entity.EvaluationCourse, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, utils.ToCourse(row))
	}

	s.logger.Info("extraction run complete",
		"applicant_id", applicantID, "evaluation_id", eval.ID,
		"courses", len(courses), "gpa", eval.Gpa, "warnings", len(res.Warnings),
	)
	return &RunExtractionResult{
		Evaluation: utils.ToEvaluation(eval),
		Courses:    courses,
		JobID:      job.ID,
		Warnings:   res.Warnings,
	}, nil
}

func (s *Service) registerFile(ctx context.Context, applicantID uuid.UUID, path string) (*entity.TranscriptFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	hash := sha256.Sum256(b)
	row, existed, err := s.fileRepo.UpsertByHash(
		ctx, applicantID, path,
		filepath.Base(path), constants.NormalizeExt(filepath.Ext(path)),
		len(b), hash[:], time.Now(),
	)
	if err != nil {
		return nil, err
	}
	if existed {
		s.logger.Info("transcript file already registered", "file_id", row.ID, "path", path)
	}
	return utils.ToTranscriptFile(row), nil
}

func (s *Service) finishJob(ctx context.Context, jobID, evalID uuid.UUID, res *pipeline.Result) {
	st := constants.JobStatusExtractOK
	if len(res.Courses) == 0 {
		st = constants.JobStatusEmpty
	}
	var warnings json.RawMessage
	if len(res.Warnings) > 0 {
		warnings, _ = json.Marshal(res.Warnings)
	}
	extracted, _ := json.Marshal(res.Courses)
	if err := s.jobRepo.FinishSuccess(ctx, jobID, evalID, st, res.Chunks, warnings, extracted, s.modelName); err != nil {
		s.logger.Error("failed to finish extract job", "job_id", jobID, "error", err)
	}
}

// GetEvaluation returns an evaluation with its course rows.
func (s *Service) GetEvaluation(ctx context.Context, id string) (*entity.Evaluation, []*entity.EvaluationCourse, error) {
	evalID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, nil, status.Error(codes.InvalidArgument, "evaluation_id must be a UUID")
	}
	eval, err := s.evalRepo.GetByID(ctx, evalID)
	if err != nil {
		return nil, nil, status.Errorf(codes.NotFound, "evaluation %s: %v", evalID, err)
	}
	rows, err := s.evalRepo.ListCourses(ctx, evalID)
	if err != nil {
		return nil, nil, status.Errorf(codes.Internal, "load courses: %v", err)
	}
	courses := make([]*entity.EvaluationCourse, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, utils.ToCourse(row))
	}
	return utils.ToEvaluation(eval), courses, nil
}

// ListEvaluations returns all evaluations for an applicant.
func (s *Service) ListEvaluations(ctx context.Context, applicantID string) ([]*entity.Evaluation, error) {
	id, err := uuid.Parse(strings.TrimSpace(applicantID))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "applicant_id must be a UUID")
	}
	rows, err := s.evalRepo.ListByApplicant(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list evaluations: %v", err)
	}
	out := make([]*entity.Evaluation, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToEvaluation(row))
	}
	return out, nil
}

// ListExtractionJobs returns an applicant's extraction runs, oldest first.
func (s *Service) ListExtractionJobs(ctx context.Context, applicantID string) ([]*entity.ExtractJob, error) {
	id, err := uuid.Parse(strings.TrimSpace(applicantID))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "applicant_id must be a UUID")
	}
	rows, err := s.jobRepo.ListByApplicant(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list extract jobs: %v", err)
	}
	out := make([]*entity.ExtractJob, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToExtractJob(row))
	}
	return out, nil
}

// SetCourseIncluded toggles one course row in or out of the GPA and
// recomputes the stored value.
func (s *Service) SetCourseIncluded(ctx context.Context, evaluationID, courseID string, included bool) (*entity.Evaluation, error) {
	evalID, err := uuid.Parse(strings.TrimSpace(evaluationID))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "evaluation_id must be a UUID")
	}
	cID, err := uuid.Parse(strings.TrimSpace(courseID))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "course_id must be a UUID")
	}
	if _, err := s.evalRepo.SetCourseIncluded(ctx, cID, included); err != nil {
		return nil, status.Errorf(codes.Internal, "toggle course: %v", err)
	}
	return s.recompute(ctx, evalID)
}

// UpdateCourse edits one course row's grade and credit hours, then recomputes
// the evaluation's GPA.
func (s *Service) UpdateCourse(ctx context.Context, evaluationID, courseID, grade string, creditHours float64) (*entity.Evaluation, *entity.EvaluationCourse, error) {
	evalID, err := uuid.Parse(strings.TrimSpace(evaluationID))
	if err != nil {
		return nil, nil, status.Error(codes.InvalidArgument, "evaluation_id must be a UUID")
	}
	cID, err := uuid.Parse(strings.TrimSpace(courseID))
	if err != nil {
		return nil, nil, status.Error(codes.InvalidArgument, "course_id must be a UUID")
	}
	v := common.NewValidator()
	v.Field("grade", strings.ToUpper(strings.TrimSpace(grade)), common.GradeLabel)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, nil, err
	}
	if creditHours < 0 {
		return nil, nil, status.Error(codes.InvalidArgument, "credit_hours must not be negative")
	}

	row, err := s.evalRepo.UpdateCourse(ctx, cID, strings.ToUpper(strings.TrimSpace(grade)), creditHours)
	if err != nil {
		return nil, nil, status.Errorf(codes.Internal, "update course: %v", err)
	}
	eval, err := s.recompute(ctx, evalID)
	if err != nil {
		return nil, nil, err
	}
	return eval, utils.ToCourse(row), nil
}

// Recompute recomputes the evaluation's GPA from its stored course rows.
func (s *Service) Recompute(ctx context.Context, evaluationID string) (*entity.Evaluation, error) {
	evalID, err := uuid.Parse(strings.TrimSpace(evaluationID))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "evaluation_id must be a UUID")
	}
	return s.recompute(ctx, evalID)
}

func (s *Service) recompute(ctx context.Context, evalID uuid.UUID) (*entity.Evaluation, error) {
	rows, err := s.evalRepo.ListCourses(ctx, evalID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "load courses: %v", err)
	}
	courses := make([]transcript.Course, len(rows))
	for i, row := range rows {
		courses[i] = transcript.Course{
			Code:        row.Code,
			Name:        row.Name,
			Grade:       row.Grade,
			CreditHours: row.CreditHours,
			Included:    row.Included,
		}
	}
	gpa := transcript.ComputeGPA(courses, s.gradeMap)
	if err := s.evalRepo.SetGPA(ctx, evalID, gpa); err != nil {
		return nil, status.Errorf(codes.Internal, "store gpa: %v", err)
	}
	eval, err := s.evalRepo.GetByID(ctx, evalID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "load evaluation: %v", err)
	}
	s.logger.Info("evaluation gpa recomputed", "evaluation_id", evalID, "gpa", gpa)
	return utils.ToEvaluation(eval), nil
}
