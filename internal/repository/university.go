package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Salam-35/PhdTrack-sub000/gen/ent"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/university"
)

type University struct {
	ApplicantID uuid.UUID
	Name        string
	Program     string
	Semester    string
	Deadline    *time.Time
	Timezone    string
	Status      string
	Notes       string
}

type UniversityRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.University, error)
	CreateUniversity(ctx context.Context, u *University) (*ent.University, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*ent.University, error)
	// ListUpcoming returns universities with a deadline at or after now,
	// soonest first.
	ListUpcoming(ctx context.Context, applicantID uuid.UUID, now time.Time) ([]*ent.University, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*ent.University, error)
	SetDeadline(ctx context.Context, id uuid.UUID, deadline time.Time, timezone string) (*ent.University, error)
}

type universityRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUniversityRepository(client *ent.Client, logger *slog.Logger) UniversityRepository {
	return &universityRepository{client: client, logger: logger}
}

func (r *universityRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.University, error) {
	return r.client.University.
		Query().
		Where(university.ID(id)).
		Only(ctx)
}

func (r *universityRepository) CreateUniversity(ctx context.Context, u *University) (*ent.University, error) {
	create := r.client.University.Create().
		SetApplicantID(u.ApplicantID).
		SetName(u.Name).
		SetProgram(u.Program).
		SetSemester(u.Semester).
		SetStatus(u.Status)
	if u.Deadline != nil {
		create = create.SetDeadline(*u.Deadline)
	}
	if u.Timezone != "" {
		create = create.SetTimezone(u.Timezone)
	}
	if u.Notes != "" {
		create = create.SetNotes(u.Notes)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create university", "applicant_id", u.ApplicantID, "name", u.Name, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *universityRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*ent.University, error) {
	rows, err := r.client.University.Query().
		Where(university.ApplicantID(applicantID)).
		Order(university.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list universities", "applicant_id", applicantID, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *universityRepository) ListUpcoming(ctx context.Context, applicantID uuid.UUID, now time.Time) ([]*ent.University, error) {
	rows, err := r.client.University.Query().
		Where(
			university.ApplicantID(applicantID),
			university.DeadlineGTE(now),
		).
		Order(university.ByDeadline()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list upcoming deadlines", "applicant_id", applicantID, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *universityRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*ent.University, error) {
	row, err := r.client.University.UpdateOneID(id).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update university status", "university_id", id, "status", status, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *universityRepository) SetDeadline(ctx context.Context, id uuid.UUID, deadline time.Time, timezone string) (*ent.University, error) {
	update := r.client.University.UpdateOneID(id).
		SetDeadline(deadline)
	if timezone != "" {
		update = update.SetTimezone(timezone)
	}
	row, err := update.Save(ctx)
	if err != nil {
		r.logger.Error("failed to set university deadline", "university_id", id, "error", err)
		return nil, err
	}
	return row, nil
}
