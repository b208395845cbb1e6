// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/applicant"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/university"
	"github.com/google/uuid"
)

// University is the model entity for the University schema.
type University struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ApplicantID holds the value of the "applicant_id" field.
	ApplicantID uuid.UUID `json:"applicant_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Program holds the value of the "program" field.
	Program string `json:"program,omitempty"`
	// Semester holds the value of the "semester" field.
	Semester string `json:"semester,omitempty"`
	// Deadline holds the value of the "deadline" field.
	Deadline *time.Time `json:"deadline,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone *string `json:"timezone,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UniversityQuery when eager-loading is set.
	Edges        UniversityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UniversityEdges holds the relations/edges for other nodes in the graph.
type UniversityEdges struct {
	// Applicant holds the value of the applicant edge.
	Applicant *Applicant `json:"applicant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ApplicantOrErr returns the Applicant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UniversityEdges) ApplicantOrErr() (*Applicant, error) {
	if e.Applicant != nil {
		return e.Applicant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: applicant.Label}
	}
	return nil, &NotLoadedError{edge: "applicant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*University) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case university.FieldName, university.FieldProgram, university.FieldSemester, university.FieldTimezone, university.FieldStatus, university.FieldNotes:
			values[i] = new(sql.NullString)
		case university.FieldDeadline, university.FieldCreatedAt, university.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case university.FieldID, university.FieldApplicantID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the University fields.
func (_m *University) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case university.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case university.FieldApplicantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field applicant_id", values[i])
			} else if value != nil {
				_m.ApplicantID = *value
			}
		case university.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case university.FieldProgram:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field program", values[i])
			} else if value.Valid {
				_m.Program = value.String
			}
		case university.FieldSemester:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field semester", values[i])
			} else if value.Valid {
				_m.Semester = value.String
			}
		case university.FieldDeadline:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deadline", values[i])
			} else if value.Valid {
				_m.Deadline = new(time.Time)
				*_m.Deadline = value.Time
			}
		case university.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = new(string)
				*_m.Timezone = value.String
			}
		case university.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case university.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case university.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case university.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the University.
// This includes values selected through modifiers, order, etc.
func (_m *University) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApplicant queries the "applicant" edge of the University entity.
func (_m *University) QueryApplicant() *ApplicantQuery {
	return NewUniversityClient(_m.config).QueryApplicant(_m)
}

// Update returns a builder for updating this University.
// Note that you need to call University.Unwrap() before calling this method if this University
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *University) Update() *UniversityUpdateOne {
	return NewUniversityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the University entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *University) Unwrap() *University {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: University is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *University) String() string {
	var builder strings.Builder
	builder.WriteString("University(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("applicant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApplicantID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("program=")
	builder.WriteString(_m.Program)
	builder.WriteString(", ")
	builder.WriteString("semester=")
	builder.WriteString(_m.Semester)
	builder.WriteString(", ")
	if v := _m.Deadline; v != nil {
		builder.WriteString("deadline=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Timezone; v != nil {
		builder.WriteString("timezone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
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

// Universities is a parsable slice of University.
type Universities []*University
