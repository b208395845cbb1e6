// Code generated by ent, DO NOT EDIT.

package applicant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Applicant {
	return predicate.Applicant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Applicant {
	return predicate.Applicant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Applicant {
	return predicate.Applicant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Applicant {
	return predicate.Applicant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Applicant {
	return predicate.Applicant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Applicant {
	return predicate.Applicant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Applicant {
	return predicate.Applicant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Applicant {
	return predicate.Applicant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Applicant {
	return predicate.Applicant(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldEQ(FieldEmail, v))
}

// TargetLevel applies equality check predicate on the "target_level" field. It's identical to TargetLevelEQ.
func TargetLevel(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldEQ(FieldTargetLevel, v))
}

// ResearchAreas applies equality check predicate on the "research_areas" field. It's identical to ResearchAreasEQ.
func ResearchAreas(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldEQ(FieldResearchAreas, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Applicant {
	return predicate.Applicant(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Applicant {
	return predicate.Applicant(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Applicant {
	return predicate.Applicant(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Applicant {
	return predicate.Applicant(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Applicant {
	return predicate.Applicant(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Applicant {
	return predicate.Applicant(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldContainsFold(FieldEmail, v))
}

// TargetLevelEQ applies the EQ predicate on the "target_level" field.
func TargetLevelEQ(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldEQ(FieldTargetLevel, v))
}

// TargetLevelNEQ applies the NEQ predicate on the "target_level" field.
func TargetLevelNEQ(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldNEQ(FieldTargetLevel, v))
}

// TargetLevelIn applies the In predicate on the "target_level" field.
func TargetLevelIn(vs ...string) predicate.Applicant {
	return predicate.Applicant(sql.FieldIn(FieldTargetLevel, vs...))
}

// TargetLevelNotIn applies the NotIn predicate on the "target_level" field.
func TargetLevelNotIn(vs ...string) predicate.Applicant {
	return predicate.Applicant(sql.FieldNotIn(FieldTargetLevel, vs...))
}

// TargetLevelGT applies the GT predicate on the "target_level" field.
func TargetLevelGT(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldGT(FieldTargetLevel, v))
}

// TargetLevelGTE applies the GTE predicate on the "target_level" field.
func TargetLevelGTE(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldGTE(FieldTargetLevel, v))
}

// TargetLevelLT applies the LT predicate on the "target_level" field.
func TargetLevelLT(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldLT(FieldTargetLevel, v))
}

// TargetLevelLTE applies the LTE predicate on the "target_level" field.
func TargetLevelLTE(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldLTE(FieldTargetLevel, v))
}

// TargetLevelContains applies the Contains predicate on the "target_level" field.
func TargetLevelContains(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldContains(FieldTargetLevel, v))
}

// TargetLevelHasPrefix applies the HasPrefix predicate on the "target_level" field.
func TargetLevelHasPrefix(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldHasPrefix(FieldTargetLevel, v))
}

// TargetLevelHasSuffix applies the HasSuffix predicate on the "target_level" field.
func TargetLevelHasSuffix(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldHasSuffix(FieldTargetLevel, v))
}

// TargetLevelEqualFold applies the EqualFold predicate on the "target_level" field.
func TargetLevelEqualFold(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldEqualFold(FieldTargetLevel, v))
}

// TargetLevelContainsFold applies the ContainsFold predicate on the "target_level" field.
func TargetLevelContainsFold(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldContainsFold(FieldTargetLevel, v))
}

// ResearchAreasEQ applies the EQ predicate on the "research_areas" field.
func ResearchAreasEQ(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldEQ(FieldResearchAreas, v))
}

// ResearchAreasNEQ applies the NEQ predicate on the "research_areas" field.
func ResearchAreasNEQ(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldNEQ(FieldResearchAreas, v))
}

// ResearchAreasIn applies the In predicate on the "research_areas" field.
func ResearchAreasIn(vs ...string) predicate.Applicant {
	return predicate.Applicant(sql.FieldIn(FieldResearchAreas, vs...))
}

// ResearchAreasNotIn applies the NotIn predicate on the "research_areas" field.
func ResearchAreasNotIn(vs ...string) predicate.Applicant {
	return predicate.Applicant(sql.FieldNotIn(FieldResearchAreas, vs...))
}

// ResearchAreasGT applies the GT predicate on the "research_areas" field.
func ResearchAreasGT(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldGT(FieldResearchAreas, v))
}

// ResearchAreasGTE applies the GTE predicate on the "research_areas" field.
func ResearchAreasGTE(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldGTE(FieldResearchAreas, v))
}

// ResearchAreasLT applies the LT predicate on the "research_areas" field.
func ResearchAreasLT(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldLT(FieldResearchAreas, v))
}

// ResearchAreasLTE applies the LTE predicate on the "research_areas" field.
func ResearchAreasLTE(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldLTE(FieldResearchAreas, v))
}

// ResearchAreasContains applies the Contains predicate on the "research_areas" field.
func ResearchAreasContains(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldContains(FieldResearchAreas, v))
}

// ResearchAreasHasPrefix applies the HasPrefix predicate on the "research_areas" field.
func ResearchAreasHasPrefix(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldHasPrefix(FieldResearchAreas, v))
}

// ResearchAreasHasSuffix applies the HasSuffix predicate on the "research_areas" field.
func ResearchAreasHasSuffix(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldHasSuffix(FieldResearchAreas, v))
}

// ResearchAreasIsNil applies the IsNil predicate on the "research_areas" field.
func ResearchAreasIsNil() predicate.Applicant {
	return predicate.Applicant(sql.FieldIsNull(FieldResearchAreas))
}

// ResearchAreasNotNil applies the NotNil predicate on the "research_areas" field.
func ResearchAreasNotNil() predicate.Applicant {
	return predicate.Applicant(sql.FieldNotNull(FieldResearchAreas))
}

// ResearchAreasEqualFold applies the EqualFold predicate on the "research_areas" field.
func ResearchAreasEqualFold(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldEqualFold(FieldResearchAreas, v))
}

// ResearchAreasContainsFold applies the ContainsFold predicate on the "research_areas" field.
func ResearchAreasContainsFold(v string) predicate.Applicant {
	return predicate.Applicant(sql.FieldContainsFold(FieldResearchAreas, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Applicant {
	return predicate.Applicant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Applicant {
	return predicate.Applicant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Applicant {
	return predicate.Applicant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Applicant {
	return predicate.Applicant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Applicant {
	return predicate.Applicant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Applicant {
	return predicate.Applicant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Applicant {
	return predicate.Applicant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Applicant {
	return predicate.Applicant(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Applicant {
	return predicate.Applicant(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Applicant {
	return predicate.Applicant(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Applicant {
	return predicate.Applicant(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Applicant {
	return predicate.Applicant(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Applicant {
	return predicate.Applicant(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Applicant {
	return predicate.Applicant(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Applicant {
	return predicate.Applicant(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Applicant {
	return predicate.Applicant(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUniversities applies the HasEdge predicate on the "universities" edge.
func HasUniversities() predicate.Applicant {
	return predicate.Applicant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, UniversitiesTable, UniversitiesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUniversitiesWith applies the HasEdge predicate on the "universities" edge with a given conditions (other predicates).
func HasUniversitiesWith(preds ...predicate.University) predicate.Applicant {
	return predicate.Applicant(func(s *sql.Selector) {
		step := newUniversitiesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvaluations applies the HasEdge predicate on the "evaluations" edge.
func HasEvaluations() predicate.Applicant {
	return predicate.Applicant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvaluationsTable, EvaluationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvaluationsWith applies the HasEdge predicate on the "evaluations" edge with a given conditions (other predicates).
func HasEvaluationsWith(preds ...predicate.Evaluation) predicate.Applicant {
	return predicate.Applicant(func(s *sql.Selector) {
		step := newEvaluationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFiles applies the HasEdge predicate on the "files" edge.
func HasFiles() predicate.Applicant {
	return predicate.Applicant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFilesWith applies the HasEdge predicate on the "files" edge with a given conditions (other predicates).
func HasFilesWith(preds ...predicate.TranscriptFile) predicate.Applicant {
	return predicate.Applicant(func(s *sql.Selector) {
		step := newFilesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Applicant {
	return predicate.Applicant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.Applicant {
	return predicate.Applicant(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Applicant) predicate.Applicant {
	return predicate.Applicant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Applicant) predicate.Applicant {
	return predicate.Applicant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Applicant) predicate.Applicant {
	return predicate.Applicant(sql.NotPredicates(p))
}
