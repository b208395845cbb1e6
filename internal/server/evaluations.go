package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	trackerpb "github.com/Salam-35/PhdTrack-sub000/gen/proto/tracker/v1"
	"github.com/Salam-35/PhdTrack-sub000/internal/async"
	"github.com/Salam-35/PhdTrack-sub000/internal/evaluations"
	"github.com/Salam-35/PhdTrack-sub000/internal/utils"
)

type EvaluationServer struct {
	trackerpb.UnimplementedEvaluationsServiceServer
	svc    *evaluations.Service
	queue  async.Queue
	logger *slog.Logger
}

func NewEvaluationServer(svc *evaluations.Service, queue async.Queue, logger *slog.Logger) *EvaluationServer {
	return &EvaluationServer{
		svc:    svc,
		queue:  queue,
		logger: logger,
	}
}

// RunExtraction parses a transcript and stores the resulting evaluation.
// With async set, the run is handed to the worker queue and only a trace
// id is returned.
func (s *EvaluationServer) RunExtraction(ctx context.Context, req *trackerpb.RunExtractionRequest) (*trackerpb.RunExtractionResponse, error) {
	svcReq := evaluations.RunExtractionRequest{
		ApplicantID: req.GetApplicantId(),
		Institution: req.GetInstitution(),
		Level:       req.GetLevel(),
		Text:        req.GetText(),
		FilePath:    req.GetFilePath(),
	}

	if req.GetAsync() {
		traceID := uuid.NewString()
		if err := s.queue.Enqueue(ctx, async.Job{
			Request:     svcReq,
			SubmittedAt: time.Now().UTC(),
			TraceID:     traceID,
		}); err != nil {
			return nil, err
		}
		return &trackerpb.RunExtractionResponse{
			Accepted: true,
			TraceId:  traceID,
		}, nil
	}

	res, err := s.svc.RunExtraction(ctx, svcReq)
	if err != nil {
		return nil, err
	}

	courses := make([]*trackerpb.Course, 0, len(res.Courses))
	for _, c := range res.Courses {
		courses = append(courses, utils.ToPBCourse(c))
	}
	warnings := make([]*trackerpb.ExtractionWarning, 0, len(res.Warnings))
	for _, w := range res.Warnings {
		warnings = append(warnings, &trackerpb.ExtractionWarning{
			Chunk: int32(w.Chunk),
			Msg:   w.Msg,
		})
	}
	return &trackerpb.RunExtractionResponse{
		Evaluation: utils.ToPBEvaluation(res.Evaluation),
		Courses:    courses,
		JobId:      res.JobID.String(),
		Warnings:   warnings,
		Accepted:   true,
	}, nil
}

// GetEvaluation returns an evaluation with its courses.
func (s *EvaluationServer) GetEvaluation(ctx context.Context, req *trackerpb.GetEvaluationRequest) (*trackerpb.GetEvaluationResponse, error) {
	eval, rows, err := s.svc.GetEvaluation(ctx, req.GetEvaluationId())
	if err != nil {
		return nil, err
	}
	courses := make([]*trackerpb.Course, 0, len(rows))
	for _, c := range rows {
		courses = append(courses, utils.ToPBCourse(c))
	}
	return &trackerpb.GetEvaluationResponse{
		Evaluation: utils.ToPBEvaluation(eval),
		Courses:    courses,
	}, nil
}

// ListEvaluations lists an applicant's evaluations.
func (s *EvaluationServer) ListEvaluations(ctx context.Context, req *trackerpb.ListEvaluationsRequest) (*trackerpb.ListEvaluationsResponse, error) {
	evals, err := s.svc.ListEvaluations(ctx, req.GetApplicantId())
	if err != nil {
		return nil, err
	}
	out := make([]*trackerpb.Evaluation, 0, len(evals))
	for _, e := range evals {
		out = append(out, utils.ToPBEvaluation(e))
	}
	return &trackerpb.ListEvaluationsResponse{Evaluations: out}, nil
}

// SetCourseIncluded toggles one course in or out of the GPA.
func (s *EvaluationServer) SetCourseIncluded(ctx context.Context, req *trackerpb.SetCourseIncludedRequest) (*trackerpb.SetCourseIncludedResponse, error) {
	eval, err := s.svc.SetCourseIncluded(ctx, req.GetEvaluationId(), req.GetCourseId(), req.GetIncluded())
	if err != nil {
		return nil, err
	}
	return &trackerpb.SetCourseIncludedResponse{
		Evaluation: utils.ToPBEvaluation(eval),
	}, nil
}

// UpdateCourse edits a course row's grade and credit hours.
func (s *EvaluationServer) UpdateCourse(ctx context.Context, req *trackerpb.UpdateCourseRequest) (*trackerpb.UpdateCourseResponse, error) {
	eval, course, err := s.svc.UpdateCourse(ctx, req.GetEvaluationId(), req.GetCourseId(), req.GetGrade(), req.GetCreditHours())
	if err != nil {
		return nil, err
	}
	return &trackerpb.UpdateCourseResponse{
		Evaluation: utils.ToPBEvaluation(eval),
		Course:     utils.ToPBCourse(course),
	}, nil
}

// ListExtractionJobs lists an applicant's extraction runs.
func (s *EvaluationServer) ListExtractionJobs(ctx context.Context, req *trackerpb.ListExtractionJobsRequest) (*trackerpb.ListExtractionJobsResponse, error) {
	jobs, err := s.svc.ListExtractionJobs(ctx, req.GetApplicantId())
	if err != nil {
		return nil, err
	}
	out := make([]*trackerpb.ExtractJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, utils.ToPBExtractJob(j))
	}
	return &trackerpb.ListExtractionJobsResponse{Jobs: out}, nil
}

// RecomputeGPA recomputes an evaluation's GPA from its stored rows.
func (s *EvaluationServer) RecomputeGPA(ctx context.Context, req *trackerpb.RecomputeGPARequest) (*trackerpb.RecomputeGPAResponse, error) {
	eval, err := s.svc.Recompute(ctx, req.GetEvaluationId())
	if err != nil {
		return nil, err
	}
	return &trackerpb.RecomputeGPAResponse{
		Evaluation: utils.ToPBEvaluation(eval),
	}, nil
}
