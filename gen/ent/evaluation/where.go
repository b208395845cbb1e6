// Code generated by ent, DO NOT EDIT.

package evaluation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldID, id))
}

// ApplicantID applies equality check predicate on the "applicant_id" field. It's identical to ApplicantIDEQ.
func ApplicantID(v uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldApplicantID, v))
}

// Institution applies equality check predicate on the "institution" field. It's identical to InstitutionEQ.
func Institution(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldInstitution, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldLevel, v))
}

// Gpa applies equality check predicate on the "gpa" field. It's identical to GpaEQ.
func Gpa(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldGpa, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldUpdatedAt, v))
}

// ApplicantIDEQ applies the EQ predicate on the "applicant_id" field.
func ApplicantIDEQ(v uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldApplicantID, v))
}

// ApplicantIDNEQ applies the NEQ predicate on the "applicant_id" field.
func ApplicantIDNEQ(v uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldApplicantID, v))
}

// ApplicantIDIn applies the In predicate on the "applicant_id" field.
func ApplicantIDIn(vs ...uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldApplicantID, vs...))
}

// ApplicantIDNotIn applies the NotIn predicate on the "applicant_id" field.
func ApplicantIDNotIn(vs ...uuid.UUID) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldApplicantID, vs...))
}

// InstitutionEQ applies the EQ predicate on the "institution" field.
func InstitutionEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldInstitution, v))
}

// InstitutionNEQ applies the NEQ predicate on the "institution" field.
func InstitutionNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldInstitution, v))
}

// InstitutionIn applies the In predicate on the "institution" field.
func InstitutionIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldInstitution, vs...))
}

// InstitutionNotIn applies the NotIn predicate on the "institution" field.
func InstitutionNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldInstitution, vs...))
}

// InstitutionGT applies the GT predicate on the "institution" field.
func InstitutionGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldInstitution, v))
}

// InstitutionGTE applies the GTE predicate on the "institution" field.
func InstitutionGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldInstitution, v))
}

// InstitutionLT applies the LT predicate on the "institution" field.
func InstitutionLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldInstitution, v))
}

// InstitutionLTE applies the LTE predicate on the "institution" field.
func InstitutionLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldInstitution, v))
}

// InstitutionContains applies the Contains predicate on the "institution" field.
func InstitutionContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldInstitution, v))
}

// InstitutionHasPrefix applies the HasPrefix predicate on the "institution" field.
func InstitutionHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldInstitution, v))
}

// InstitutionHasSuffix applies the HasSuffix predicate on the "institution" field.
func InstitutionHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldInstitution, v))
}

// InstitutionEqualFold applies the EqualFold predicate on the "institution" field.
func InstitutionEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldInstitution, v))
}

// InstitutionContainsFold applies the ContainsFold predicate on the "institution" field.
func InstitutionContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldInstitution, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldLevel, v))
}

// GpaEQ applies the EQ predicate on the "gpa" field.
func GpaEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldGpa, v))
}

// GpaNEQ applies the NEQ predicate on the "gpa" field.
func GpaNEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldGpa, v))
}

// GpaIn applies the In predicate on the "gpa" field.
func GpaIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldGpa, vs...))
}

// GpaNotIn applies the NotIn predicate on the "gpa" field.
func GpaNotIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldGpa, vs...))
}

// GpaGT applies the GT predicate on the "gpa" field.
func GpaGT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldGpa, v))
}

// GpaGTE applies the GTE predicate on the "gpa" field.
func GpaGTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldGpa, v))
}

// GpaLT applies the LT predicate on the "gpa" field.
func GpaLT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldGpa, v))
}

// GpaLTE applies the LTE predicate on the "gpa" field.
func GpaLTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldGpa, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasApplicant applies the HasEdge predicate on the "applicant" edge.
func HasApplicant() predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ApplicantTable, ApplicantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApplicantWith applies the HasEdge predicate on the "applicant" edge with a given conditions (other predicates).
func HasApplicantWith(preds ...predicate.Applicant) predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := newApplicantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCourses applies the HasEdge predicate on the "courses" edge.
func HasCourses() predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CoursesTable, CoursesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCoursesWith applies the HasEdge predicate on the "courses" edge with a given conditions (other predicates).
func HasCoursesWith(preds ...predicate.EvaluationCourse) predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := newCoursesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Evaluation) predicate.Evaluation {
	return predicate.Evaluation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Evaluation) predicate.Evaluation {
	return predicate.Evaluation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Evaluation) predicate.Evaluation {
	return predicate.Evaluation(sql.NotPredicates(p))
}
