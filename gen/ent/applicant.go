// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/applicant"
	"github.com/google/uuid"
)

// Applicant is the model entity for the Applicant schema.
type Applicant struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// TargetLevel holds the value of the "target_level" field.
	TargetLevel string `json:"target_level,omitempty"`
	// ResearchAreas holds the value of the "research_areas" field.
	ResearchAreas *string `json:"research_areas,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApplicantQuery when eager-loading is set.
	Edges        ApplicantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApplicantEdges holds the relations/edges for other nodes in the graph.
type ApplicantEdges struct {
	// Universities holds the value of the universities edge.
	Universities []*University `json:"universities,omitempty"`
	// Evaluations holds the value of the evaluations edge.
	Evaluations []*Evaluation `json:"evaluations,omitempty"`
	// Files holds the value of the files edge.
	Files []*TranscriptFile `json:"files,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// UniversitiesOrErr returns the Universities value or an error if the edge
// was not loaded in eager-loading.
func (e ApplicantEdges) UniversitiesOrErr() ([]*University, error) {
	if e.loadedTypes[0] {
		return e.Universities, nil
	}
	return nil, &NotLoadedError{edge: "universities"}
}

// EvaluationsOrErr returns the Evaluations value or an error if the edge
// was not loaded in eager-loading.
func (e ApplicantEdges) EvaluationsOrErr() ([]*Evaluation, error) {
	if e.loadedTypes[1] {
		return e.Evaluations, nil
	}
	return nil, &NotLoadedError{edge: "evaluations"}
}

// FilesOrErr returns the Files value or an error if the edge
// was not loaded in eager-loading.
func (e ApplicantEdges) FilesOrErr() ([]*TranscriptFile, error) {
	if e.loadedTypes[2] {
		return e.Files, nil
	}
	return nil, &NotLoadedError{edge: "files"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e ApplicantEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[3] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Applicant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case applicant.FieldName, applicant.FieldEmail, applicant.FieldTargetLevel, applicant.FieldResearchAreas:
			values[i] = new(sql.NullString)
		case applicant.FieldCreatedAt, applicant.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case applicant.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Applicant fields.
func (_m *Applicant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case applicant.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case applicant.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case applicant.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case applicant.FieldTargetLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_level", values[i])
			} else if value.Valid {
				_m.TargetLevel = value.String
			}
		case applicant.FieldResearchAreas:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field research_areas", values[i])
			} else if value.Valid {
				_m.ResearchAreas = new(string)
				*_m.ResearchAreas = value.String
			}
		case applicant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case applicant.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Applicant.
// This includes values selected through modifiers, order, etc.
func (_m *Applicant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUniversities queries the "universities" edge of the Applicant entity.
func (_m *Applicant) QueryUniversities() *UniversityQuery {
	return NewApplicantClient(_m.config).QueryUniversities(_m)
}

// QueryEvaluations queries the "evaluations" edge of the Applicant entity.
func (_m *Applicant) QueryEvaluations() *EvaluationQuery {
	return NewApplicantClient(_m.config).QueryEvaluations(_m)
}

// QueryFiles queries the "files" edge of the Applicant entity.
func (_m *Applicant) QueryFiles() *TranscriptFileQuery {
	return NewApplicantClient(_m.config).QueryFiles(_m)
}

// QueryJobs queries the "jobs" edge of the Applicant entity.
func (_m *Applicant) QueryJobs() *ExtractJobQuery {
	return NewApplicantClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Applicant.
// Note that you need to call Applicant.Unwrap() before calling this method if this Applicant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Applicant) Update() *ApplicantUpdateOne {
	return NewApplicantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Applicant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Applicant) Unwrap() *Applicant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Applicant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Applicant) String() string {
	var builder strings.Builder
	builder.WriteString("Applicant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("target_level=")
	builder.WriteString(_m.TargetLevel)
	builder.WriteString(", ")
	if v := _m.ResearchAreas; v != nil {
		builder.WriteString("research_areas=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Applicants is a parsable slice of Applicant.
type Applicants []*Applicant
