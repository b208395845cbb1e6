// Code generated by ent, DO NOT EDIT.

package evaluationcourse

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the evaluationcourse type in the database.
	Label = "evaluation_course"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEvaluationID holds the string denoting the evaluation_id field in the database.
	FieldEvaluationID = "evaluation_id"
	// FieldCode holds the string denoting the code field in the database.
	FieldCode = "code"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldCreditHours holds the string denoting the credit_hours field in the database.
	FieldCreditHours = "credit_hours"
	// FieldIncluded holds the string denoting the included field in the database.
	FieldIncluded = "included"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// EdgeEvaluation holds the string denoting the evaluation edge name in mutations.
	EdgeEvaluation = "evaluation"
	// Table holds the table name of the evaluationcourse in the database.
	Table = "evaluation_courses"
	// EvaluationTable is the table that holds the evaluation relation/edge.
	EvaluationTable = "evaluation_courses"
	// EvaluationInverseTable is the table name for the Evaluation entity.
	// It exists in this package in order to avoid circular dependency with the "evaluation" package.
	EvaluationInverseTable = "evaluations"
	// EvaluationColumn is the table column denoting the evaluation relation/edge.
	EvaluationColumn = "evaluation_id"
)

// Columns holds all SQL columns for evaluationcourse fields.
var Columns = []string{
	FieldID,
	FieldEvaluationID,
	FieldCode,
	FieldName,
	FieldGrade,
	FieldCreditHours,
	FieldIncluded,
	FieldPosition,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// CreditHoursValidator is a validator for the "credit_hours" field. It is called by the builders before save.
	CreditHoursValidator func(float64) error
	// DefaultIncluded holds the default value on creation for the "included" field.
	DefaultIncluded bool
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the EvaluationCourse queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEvaluationID orders the results by the evaluation_id field.
func ByEvaluationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluationID, opts...).ToFunc()
}

// ByCode orders the results by the code field.
func ByCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCode, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByCreditHours orders the results by the credit_hours field.
func ByCreditHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditHours, opts...).ToFunc()
}

// ByIncluded orders the results by the included field.
func ByIncluded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncluded, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByEvaluationField orders the results by evaluation field.
func ByEvaluationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvaluationStep(), sql.OrderByField(field, opts...))
	}
}
func newEvaluationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvaluationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EvaluationTable, EvaluationColumn),
	)
}
