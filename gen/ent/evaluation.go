// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/applicant"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluation"
	"github.com/google/uuid"
)

// Evaluation is the model entity for the Evaluation schema.
type Evaluation struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ApplicantID holds the value of the "applicant_id" field.
	ApplicantID uuid.UUID `json:"applicant_id,omitempty"`
	// Institution holds the value of the "institution" field.
	Institution string `json:"institution,omitempty"`
	// Level holds the value of the "level" field.
	Level string `json:"level,omitempty"`
	// Gpa holds the value of the "gpa" field.
	Gpa float64 `json:"gpa,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvaluationQuery when eager-loading is set.
	Edges        EvaluationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvaluationEdges holds the relations/edges for other nodes in the graph.
type EvaluationEdges struct {
	// Applicant holds the value of the applicant edge.
	Applicant *Applicant `json:"applicant,omitempty"`
	// Courses holds the value of the courses edge.
	Courses []*EvaluationCourse `json:"courses,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ApplicantOrErr returns the Applicant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvaluationEdges) ApplicantOrErr() (*Applicant, error) {
	if e.Applicant != nil {
		return e.Applicant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: applicant.Label}
	}
	return nil, &NotLoadedError{edge: "applicant"}
}

// CoursesOrErr returns the Courses value or an error if the edge
// was not loaded in eager-loading.
func (e EvaluationEdges) CoursesOrErr() ([]*EvaluationCourse, error) {
	if e.loadedTypes[1] {
		return e.Courses, nil
	}
	return nil, &NotLoadedError{edge: "courses"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e EvaluationEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[2] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Evaluation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluation.FieldGpa:
			values[i] = new(sql.NullFloat64)
		case evaluation.FieldInstitution, evaluation.FieldLevel:
			values[i] = new(sql.NullString)
		case evaluation.FieldCreatedAt, evaluation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case evaluation.FieldID, evaluation.FieldApplicantID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Evaluation fields.
func (_m *Evaluation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluation.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case evaluation.FieldApplicantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field applicant_id", values[i])
			} else if value != nil {
				_m.ApplicantID = *value
			}
		case evaluation.FieldInstitution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field institution", values[i])
			} else if value.Valid {
				_m.Institution = value.String
			}
		case evaluation.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case evaluation.FieldGpa:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field gpa", values[i])
			} else if value.Valid {
				_m.Gpa = value.Float64
			}
		case evaluation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case evaluation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Evaluation.
// This includes values selected through modifiers, order, etc.
func (_m *Evaluation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApplicant queries the "applicant" edge of the Evaluation entity.
func (_m *Evaluation) QueryApplicant() *ApplicantQuery {
	return NewEvaluationClient(_m.config).QueryApplicant(_m)
}

// QueryCourses queries the "courses" edge of the Evaluation entity.
func (_m *Evaluation) QueryCourses() *EvaluationCourseQuery {
	return NewEvaluationClient(_m.config).QueryCourses(_m)
}

// QueryJobs queries the "jobs" edge of the Evaluation entity.
func (_m *Evaluation) QueryJobs() *ExtractJobQuery {
	return NewEvaluationClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Evaluation.
// Note that you need to call Evaluation.Unwrap() before calling this method if this Evaluation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Evaluation) Update() *EvaluationUpdateOne {
	return NewEvaluationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Evaluation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Evaluation) Unwrap() *Evaluation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Evaluation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Evaluation) String() string {
	var builder strings.Builder
	builder.WriteString("Evaluation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("applicant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApplicantID))
	builder.WriteString(", ")
	builder.WriteString("institution=")
	builder.WriteString(_m.Institution)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("gpa=")
	builder.WriteString(fmt.Sprintf("%v", _m.Gpa))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Evaluations is a parsable slice of Evaluation.
type Evaluations []*Evaluation
