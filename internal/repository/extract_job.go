package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Salam-35/PhdTrack-sub000/constants"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/extractjob"
)

type ExtractJobRepository interface {
	// Start records the job as QUEUED; MarkRunning flips it to RUNNING once a
	// worker picks it up.
	Start(ctx context.Context, applicantID uuid.UUID, fileID *uuid.UUID, source string) (*ent.ExtractJob, error)
	MarkRunning(ctx context.Context, jobID uuid.UUID) error
	FinishSuccess(ctx context.Context, jobID, evaluationID uuid.UUID, status constants.JobStatus, chunkCount int, warnings, extracted json.RawMessage, modelName string) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*ent.ExtractJob, error)
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, applicantID uuid.UUID, fileID *uuid.UUID, source string) (*ent.ExtractJob, error) {
	create := r.ent.ExtractJob.
		Create().
		SetApplicantID(applicantID).
		SetSource(source).
		SetStatus(string(constants.JobStatusQueued))
	if fileID != nil {
		create = create.SetFileID(*fileID)
	}
	job, err := create.Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "applicant_id", applicantID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job queued", "job_id", job.ID, "applicant_id", applicantID, "source", source)
	return job, nil
}

func (r *extractJobRepo) MarkRunning(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job mark running failed", "job_id", jobID, "err", err)
	}
	return err
}

func (r *extractJobRepo) FinishSuccess(ctx context.Context, jobID, evaluationID uuid.UUID, status constants.JobStatus, chunkCount int, warnings, extracted json.RawMessage, modelName string) error {
	warningCount := 0
	if len(warnings) > 0 {
		var ws []json.RawMessage
		if err := json.Unmarshal(warnings, &ws); err == nil {
			warningCount = len(ws)
		}
	}
	update := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetEvaluationID(evaluationID).
		SetChunkCount(chunkCount).
		SetWarningCount(warningCount).
		SetFinishedAt(time.Now()).
		SetStatus(string(status))
	if len(warnings) > 0 {
		update = update.SetWarnings(warnings)
	}
	if len(extracted) > 0 {
		update = update.SetExtractedJSON(extracted)
	}
	if modelName != "" {
		update = update.SetModelName(modelName)
	}
	if _, err := update.Save(ctx); err != nil {
		r.log.Error("extract_job finish(OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished", "job_id", jobID, "status", status, "chunks", chunkCount, "warnings", warningCount)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *extractJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, error) {
	return r.ent.ExtractJob.Get(ctx, jobID)
}

func (r *extractJobRepo) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*ent.ExtractJob, error) {
	rows, err := r.ent.ExtractJob.Query().
		Where(extractjob.ApplicantID(applicantID)).
		Order(extractjob.ByStartedAt()).
		All(ctx)
	if err != nil {
		r.log.Error("failed to list extract jobs", "applicant_id", applicantID, "err", err)
		return nil, err
	}
	return rows, nil
}
