// Code generated by ent, DO NOT EDIT.

package evaluationcourse

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldLTE(FieldID, id))
}

// EvaluationID applies equality check predicate on the "evaluation_id" field. It's identical to EvaluationIDEQ.
func EvaluationID(v uuid.UUID) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldEQ(FieldEvaluationID, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldEQ(FieldCode, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldEQ(FieldName, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldEQ(FieldGrade, v))
}

// CreditHours applies equality check predicate on the "credit_hours" field. It's identical to CreditHoursEQ.
func CreditHours(v float64) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldEQ(FieldCreditHours, v))
}

// Included applies equality check predicate on the "included" field. It's identical to IncludedEQ.
func Included(v bool) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldEQ(FieldIncluded, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldEQ(FieldPosition, v))
}

// EvaluationIDEQ applies the EQ predicate on the "evaluation_id" field.
func EvaluationIDEQ(v uuid.UUID) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldEQ(FieldEvaluationID, v))
}

// EvaluationIDNEQ applies the NEQ predicate on the "evaluation_id" field.
func EvaluationIDNEQ(v uuid.UUID) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldNEQ(FieldEvaluationID, v))
}

// EvaluationIDIn applies the In predicate on the "evaluation_id" field.
func EvaluationIDIn(vs ...uuid.UUID) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldIn(FieldEvaluationID, vs...))
}

// EvaluationIDNotIn applies the NotIn predicate on the "evaluation_id" field.
func EvaluationIDNotIn(vs ...uuid.UUID) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldNotIn(FieldEvaluationID, vs...))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldHasSuffix(FieldCode, v))
}

// CodeIsNil applies the IsNil predicate on the "code" field.
func CodeIsNil() predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldIsNull(FieldCode))
}

// CodeNotNil applies the NotNil predicate on the "code" field.
func CodeNotNil() predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldNotNull(FieldCode))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldContainsFold(FieldCode, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldContainsFold(FieldName, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeIsNil applies the IsNil predicate on the "grade" field.
func GradeIsNil() predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldIsNull(FieldGrade))
}

// GradeNotNil applies the NotNil predicate on the "grade" field.
func GradeNotNil() predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldNotNull(FieldGrade))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldContainsFold(FieldGrade, v))
}

// CreditHoursEQ applies the EQ predicate on the "credit_hours" field.
func CreditHoursEQ(v float64) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldEQ(FieldCreditHours, v))
}

// CreditHoursNEQ applies the NEQ predicate on the "credit_hours" field.
func CreditHoursNEQ(v float64) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldNEQ(FieldCreditHours, v))
}

// CreditHoursIn applies the In predicate on the "credit_hours" field.
func CreditHoursIn(vs ...float64) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldIn(FieldCreditHours, vs...))
}

// CreditHoursNotIn applies the NotIn predicate on the "credit_hours" field.
func CreditHoursNotIn(vs ...float64) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldNotIn(FieldCreditHours, vs...))
}

// CreditHoursGT applies the GT predicate on the "credit_hours" field.
func CreditHoursGT(v float64) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldGT(FieldCreditHours, v))
}

// CreditHoursGTE applies the GTE predicate on the "credit_hours" field.
func CreditHoursGTE(v float64) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldGTE(FieldCreditHours, v))
}

// CreditHoursLT applies the LT predicate on the "credit_hours" field.
func CreditHoursLT(v float64) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldLT(FieldCreditHours, v))
}

// CreditHoursLTE applies the LTE predicate on the "credit_hours" field.
func CreditHoursLTE(v float64) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldLTE(FieldCreditHours, v))
}

// IncludedEQ applies the EQ predicate on the "included" field.
func IncludedEQ(v bool) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldEQ(FieldIncluded, v))
}

// IncludedNEQ applies the NEQ predicate on the "included" field.
func IncludedNEQ(v bool) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldNEQ(FieldIncluded, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.FieldLTE(FieldPosition, v))
}

// HasEvaluation applies the HasEdge predicate on the "evaluation" edge.
func HasEvaluation() predicate.EvaluationCourse {
	return predicate.EvaluationCourse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EvaluationTable, EvaluationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvaluationWith applies the HasEdge predicate on the "evaluation" edge with a given conditions (other predicates).
func HasEvaluationWith(preds ...predicate.Evaluation) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(func(s *sql.Selector) {
		step := newEvaluationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvaluationCourse) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvaluationCourse) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvaluationCourse) predicate.EvaluationCourse {
	return predicate.EvaluationCourse(sql.NotPredicates(p))
}
