// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluation"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluationcourse"
	"github.com/google/uuid"
)

// EvaluationCourse is the model entity for the EvaluationCourse schema.
type EvaluationCourse struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EvaluationID holds the value of the "evaluation_id" field.
	EvaluationID uuid.UUID `json:"evaluation_id,omitempty"`
	// Code holds the value of the "code" field.
	Code string `json:"code,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Grade holds the value of the "grade" field.
	Grade string `json:"grade,omitempty"`
	// CreditHours holds the value of the "credit_hours" field.
	CreditHours float64 `json:"credit_hours,omitempty"`
	// Included holds the value of the "included" field.
	Included bool `json:"included,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvaluationCourseQuery when eager-loading is set.
	Edges        EvaluationCourseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvaluationCourseEdges holds the relations/edges for other nodes in the graph.
type EvaluationCourseEdges struct {
	// Evaluation holds the value of the evaluation edge.
	Evaluation *Evaluation `json:"evaluation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EvaluationOrErr returns the Evaluation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvaluationCourseEdges) EvaluationOrErr() (*Evaluation, error) {
	if e.Evaluation != nil {
		return e.Evaluation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: evaluation.Label}
	}
	return nil, &NotLoadedError{edge: "evaluation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvaluationCourse) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluationcourse.FieldIncluded:
			values[i] = new(sql.NullBool)
		case evaluationcourse.FieldCreditHours:
			values[i] = new(sql.NullFloat64)
		case evaluationcourse.FieldPosition:
			values[i] = new(sql.NullInt64)
		case evaluationcourse.FieldCode, evaluationcourse.FieldName, evaluationcourse.FieldGrade:
			values[i] = new(sql.NullString)
		case evaluationcourse.FieldID, evaluationcourse.FieldEvaluationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvaluationCourse fields.
func (_m *EvaluationCourse) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluationcourse.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case evaluationcourse.FieldEvaluationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field evaluation_id", values[i])
			} else if value != nil {
				_m.EvaluationID = *value
			}
		case evaluationcourse.FieldCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field code", values[i])
			} else if value.Valid {
				_m.Code = value.String
			}
		case evaluationcourse.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case evaluationcourse.FieldGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = value.String
			}
		case evaluationcourse.FieldCreditHours:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field credit_hours", values[i])
			} else if value.Valid {
				_m.CreditHours = value.Float64
			}
		case evaluationcourse.FieldIncluded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field included", values[i])
			} else if value.Valid {
				_m.Included = value.Bool
			}
		case evaluationcourse.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvaluationCourse.
// This includes values selected through modifiers, order, etc.
func (_m *EvaluationCourse) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvaluation queries the "evaluation" edge of the EvaluationCourse entity.
func (_m *EvaluationCourse) QueryEvaluation() *EvaluationQuery {
	return NewEvaluationCourseClient(_m.config).QueryEvaluation(_m)
}

// Update returns a builder for updating this EvaluationCourse.
// Note that you need to call EvaluationCourse.Unwrap() before calling this method if this EvaluationCourse
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvaluationCourse) Update() *EvaluationCourseUpdateOne {
	return NewEvaluationCourseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvaluationCourse entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvaluationCourse) Unwrap() *EvaluationCourse {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvaluationCourse is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvaluationCourse) String() string {
	var builder strings.Builder
	builder.WriteString("EvaluationCourse(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("evaluation_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.EvaluationID))
	builder.WriteString(", ")
	builder.WriteString("code=")
	builder.WriteString(_m.Code)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(_m.Grade)
	builder.WriteString(", ")
	builder.WriteString("credit_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreditHours))
	builder.WriteString(", ")
	builder.WriteString("included=")
	builder.WriteString(fmt.Sprintf("%v", _m.Included))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteByte(')')
	return builder.String()
}

// EvaluationCourses is a parsable slice of EvaluationCourse.
type EvaluationCourses []*EvaluationCourse
