package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Salam-35/PhdTrack-sub000/gen/ent"
	entfile "github.com/Salam-35/PhdTrack-sub000/gen/ent/transcriptfile"
)

type TranscriptFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.TranscriptFile, error)
	GetByApplicantAndHash(ctx context.Context, applicantID uuid.UUID, hash []byte) (*ent.TranscriptFile, error)
	Create(ctx context.Context, applicantID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.TranscriptFile, error)
	UpsertByHash(ctx context.Context, applicantID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.TranscriptFile, bool, error)
}

type transcriptFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewTranscriptFileRepository(entc *ent.Client, logger *slog.Logger) TranscriptFileRepository {
	return &transcriptFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *transcriptFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.TranscriptFile, error) {
	return r.ent.TranscriptFile.Get(ctx, id)
}

func (r *transcriptFileRepo) GetByApplicantAndHash(ctx context.Context, applicantID uuid.UUID, hash []byte) (*ent.TranscriptFile, error) {
	row, err := r.ent.TranscriptFile.Query().
		Where(
			entfile.ApplicantID(applicantID),
			entfile.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *transcriptFileRepo) Create(ctx context.Context, applicantID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.TranscriptFile, error) {
	row, err := r.ent.TranscriptFile.Create().
		SetApplicantID(applicantID).
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create transcript file", "applicant_id", applicantID, "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *transcriptFileRepo) UpsertByHash(ctx context.Context, applicantID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.TranscriptFile, bool, error) {
	if existing, err := r.GetByApplicantAndHash(ctx, applicantID, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, applicantID, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert transcript file by hash", "applicant_id", applicantID, "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}
