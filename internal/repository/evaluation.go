package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Salam-35/PhdTrack-sub000/gen/ent"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluation"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluationcourse"
	"github.com/Salam-35/PhdTrack-sub000/internal/transcript"
)

type EvaluationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Evaluation, error)
	GetByInstitutionAndLevel(ctx context.Context, applicantID uuid.UUID, institution, level string) (*ent.Evaluation, error)
	UpsertEvaluation(ctx context.Context, applicantID uuid.UUID, institution, level string) (*ent.Evaluation, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*ent.Evaluation, error)
	ListCourses(ctx context.Context, evaluationID uuid.UUID) ([]*ent.EvaluationCourse, error)
	// ReplaceCourses deletes the evaluation's course rows and inserts the
	// given ones in order, then stores the new GPA. Runs in a transaction.
	ReplaceCourses(ctx context.Context, evaluationID uuid.UUID, courses []transcript.Course, gpa float64) error
	SetCourseIncluded(ctx context.Context, courseID uuid.UUID, included bool) (*ent.EvaluationCourse, error)
	UpdateCourse(ctx context.Context, courseID uuid.UUID, grade string, creditHours float64) (*ent.EvaluationCourse, error)
	SetGPA(ctx context.Context, evaluationID uuid.UUID, gpa float64) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type evaluationRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewEvaluationRepository(client *ent.Client, logger *slog.Logger) EvaluationRepository {
	return &evaluationRepository{client: client, logger: logger}
}

func (r *evaluationRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Evaluation, error) {
	return r.client.Evaluation.
		Query().
		Where(evaluation.ID(id)).
		Only(ctx)
}

func (r *evaluationRepository) GetByInstitutionAndLevel(ctx context.Context, applicantID uuid.UUID, institution, level string) (*ent.Evaluation, error) {
	return r.client.Evaluation.Query().
		Where(
			evaluation.ApplicantID(applicantID),
			evaluation.Institution(institution),
			evaluation.Level(level),
		).
		Only(ctx)
}

func (r *evaluationRepository) UpsertEvaluation(ctx context.Context, applicantID uuid.UUID, institution, level string) (*ent.Evaluation, error) {
	if existing, err := r.GetByInstitutionAndLevel(ctx, applicantID, institution, level); err == nil {
		return existing, nil
	}
	row, err := r.client.Evaluation.Create().
		SetApplicantID(applicantID).
		SetInstitution(institution).
		SetLevel(level).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create evaluation", "applicant_id", applicantID, "institution", institution, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *evaluationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]*ent.Evaluation, error) {
	rows, err := r.client.Evaluation.Query().
		Where(evaluation.ApplicantID(applicantID)).
		Order(evaluation.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list evaluations", "applicant_id", applicantID, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *evaluationRepository) ListCourses(ctx context.Context, evaluationID uuid.UUID) ([]*ent.EvaluationCourse, error) {
	rows, err := r.client.EvaluationCourse.Query().
		Where(evaluationcourse.EvaluationID(evaluationID)).
		Order(evaluationcourse.ByPosition()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list evaluation courses", "evaluation_id", evaluationID, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *evaluationRepository) ReplaceCourses(ctx context.Context, evaluationID uuid.UUID, courses []transcript.Course, gpa float64) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.EvaluationCourse.Delete().
		Where(evaluationcourse.EvaluationID(evaluationID)).
		Exec(ctx); err != nil {
		r.logger.Error("failed to clear evaluation courses", "evaluation_id", evaluationID, "error", err)
		return err
	}

	builders := make([]*ent.EvaluationCourseCreate, len(courses))
	for i, c := range courses {
		builders[i] = tx.EvaluationCourse.Create().
			SetEvaluationID(evaluationID).
			SetCode(c.Code).
			SetName(c.Name).
			SetGrade(c.Grade).
			SetCreditHours(c.CreditHours).
			SetIncluded(c.Included).
			SetPosition(i)
	}
	if _, err = tx.EvaluationCourse.CreateBulk(builders...).Save(ctx); err != nil {
		r.logger.Error("failed to insert evaluation courses", "evaluation_id", evaluationID, "count", len(courses), "error", err)
		return err
	}

	if _, err = tx.Evaluation.UpdateOneID(evaluationID).
		SetGpa(gpa).
		Save(ctx); err != nil {
		r.logger.Error("failed to store evaluation gpa", "evaluation_id", evaluationID, "error", err)
		return err
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	r.logger.Info("evaluation courses replaced", "evaluation_id", evaluationID, "count", len(courses), "gpa", gpa)
	return nil
}

func (r *evaluationRepository) SetCourseIncluded(ctx context.Context, courseID uuid.UUID, included bool) (*ent.EvaluationCourse, error) {
	row, err := r.client.EvaluationCourse.UpdateOneID(courseID).
		SetIncluded(included).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to toggle course inclusion", "course_id", courseID, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *evaluationRepository) UpdateCourse(ctx context.Context, courseID uuid.UUID, grade string, creditHours float64) (*ent.EvaluationCourse, error) {
	row, err := r.client.EvaluationCourse.UpdateOneID(courseID).
		SetGrade(grade).
		SetCreditHours(creditHours).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update course", "course_id", courseID, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *evaluationRepository) SetGPA(ctx context.Context, evaluationID uuid.UUID, gpa float64) error {
	_, err := r.client.Evaluation.UpdateOneID(evaluationID).
		SetGpa(gpa).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to store evaluation gpa", "evaluation_id", evaluationID, "error", err)
	}
	return err
}

func (r *evaluationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.client.EvaluationCourse.Delete().
		Where(evaluationcourse.EvaluationID(id)).
		Exec(ctx); err != nil {
		r.logger.Error("failed to delete evaluation courses", "evaluation_id", id, "error", err)
		return err
	}
	if err := r.client.Evaluation.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete evaluation", "evaluation_id", id, "error", err)
		return err
	}
	return nil
}
