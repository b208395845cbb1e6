package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Salam-35/PhdTrack-sub000/gen/ent"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/applicant"
)

type Applicant struct {
	Name          string
	Email         string
	TargetLevel   string
	ResearchAreas string
}

type ApplicantRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Applicant, error)
	CreateApplicant(ctx context.Context, a *Applicant) (*ent.Applicant, error)
	ListApplicants(ctx context.Context) ([]*ent.Applicant, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type applicantRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewApplicantRepository(client *ent.Client, logger *slog.Logger) ApplicantRepository {
	return &applicantRepository{
		client: client,
		logger: logger,
	}
}

func (r *applicantRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Applicant, error) {
	return r.client.Applicant.
		Query().
		Where(applicant.ID(id)).
		Only(ctx)
}

func (r *applicantRepository) CreateApplicant(ctx context.Context, a *Applicant) (*ent.Applicant, error) {
	create := r.client.Applicant.Create().
		SetName(a.Name).
		SetEmail(a.Email).
		SetTargetLevel(a.TargetLevel)
	if a.ResearchAreas != "" {
		create = create.SetResearchAreas(a.ResearchAreas)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create applicant", "name", a.Name, "level", a.TargetLevel, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *applicantRepository) ListApplicants(ctx context.Context) ([]*ent.Applicant, error) {
	rows, err := r.client.Applicant.Query().Order(applicant.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list applicants", "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *applicantRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Applicant.Query().Where(applicant.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check applicant existence", "applicant_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
