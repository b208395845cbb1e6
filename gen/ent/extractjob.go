// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/applicant"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluation"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/extractjob"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/transcriptfile"
	"github.com/google/uuid"
)

// ExtractJob is the model entity for the ExtractJob schema.
type ExtractJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ApplicantID holds the value of the "applicant_id" field.
	ApplicantID uuid.UUID `json:"applicant_id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID *uuid.UUID `json:"file_id,omitempty"`
	// EvaluationID holds the value of the "evaluation_id" field.
	EvaluationID *uuid.UUID `json:"evaluation_id,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Status holds the value of the "status" field.
	Status *string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ChunkCount holds the value of the "chunk_count" field.
	ChunkCount int `json:"chunk_count,omitempty"`
	// WarningCount holds the value of the "warning_count" field.
	WarningCount int `json:"warning_count,omitempty"`
	// Warnings holds the value of the "warnings" field.
	Warnings json.RawMessage `json:"warnings,omitempty"`
	// ExtractedJSON holds the value of the "extracted_json" field.
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName *string `json:"model_name,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractJobQuery when eager-loading is set.
	Edges        ExtractJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractJobEdges holds the relations/edges for other nodes in the graph.
type ExtractJobEdges struct {
	// Applicant holds the value of the applicant edge.
	Applicant *Applicant `json:"applicant,omitempty"`
	// File holds the value of the file edge.
	File *TranscriptFile `json:"file,omitempty"`
	// Evaluation holds the value of the evaluation edge.
	Evaluation *Evaluation `json:"evaluation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ApplicantOrErr returns the Applicant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractJobEdges) ApplicantOrErr() (*Applicant, error) {
	if e.Applicant != nil {
		return e.Applicant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: applicant.Label}
	}
	return nil, &NotLoadedError{edge: "applicant"}
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractJobEdges) FileOrErr() (*TranscriptFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: transcriptfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// EvaluationOrErr returns the Evaluation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractJobEdges) EvaluationOrErr() (*Evaluation, error) {
	if e.Evaluation != nil {
		return e.Evaluation, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: evaluation.Label}
	}
	return nil, &NotLoadedError{edge: "evaluation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractjob.FieldFileID, extractjob.FieldEvaluationID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case extractjob.FieldWarnings, extractjob.FieldExtractedJSON:
			values[i] = new([]byte)
		case extractjob.FieldChunkCount, extractjob.FieldWarningCount:
			values[i] = new(sql.NullInt64)
		case extractjob.FieldSource, extractjob.FieldStatus, extractjob.FieldErrorMessage, extractjob.FieldModelName:
			values[i] = new(sql.NullString)
		case extractjob.FieldStartedAt, extractjob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case extractjob.FieldID, extractjob.FieldApplicantID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractJob fields.
func (_m *ExtractJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractjob.FieldApplicantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field applicant_id", values[i])
			} else if value != nil {
				_m.ApplicantID = *value
			}
		case extractjob.FieldFileID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value.Valid {
				_m.FileID = new(uuid.UUID)
				*_m.FileID = *value.S.(*uuid.UUID)
			}
		case extractjob.FieldEvaluationID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field evaluation_id", values[i])
			} else if value.Valid {
				_m.EvaluationID = new(uuid.UUID)
				*_m.EvaluationID = *value.S.(*uuid.UUID)
			}
		case extractjob.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case extractjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case extractjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case extractjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = new(string)
				*_m.Status = value.String
			}
		case extractjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case extractjob.FieldChunkCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_count", values[i])
			} else if value.Valid {
				_m.ChunkCount = int(value.Int64)
			}
		case extractjob.FieldWarningCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field warning_count", values[i])
			} else if value.Valid {
				_m.WarningCount = int(value.Int64)
			}
		case extractjob.FieldWarnings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field warnings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Warnings); err != nil {
					return fmt.Errorf("unmarshal field warnings: %w", err)
				}
			}
		case extractjob.FieldExtractedJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedJSON); err != nil {
					return fmt.Errorf("unmarshal field extracted_json: %w", err)
				}
			}
		case extractjob.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = new(string)
				*_m.ModelName = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractJob.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApplicant queries the "applicant" edge of the ExtractJob entity.
func (_m *ExtractJob) QueryApplicant() *ApplicantQuery {
	return NewExtractJobClient(_m.config).QueryApplicant(_m)
}

// QueryFile queries the "file" edge of the ExtractJob entity.
func (_m *ExtractJob) QueryFile() *TranscriptFileQuery {
	return NewExtractJobClient(_m.config).QueryFile(_m)
}

// QueryEvaluation queries the "evaluation" edge of the ExtractJob entity.
func (_m *ExtractJob) QueryEvaluation() *EvaluationQuery {
	return NewExtractJobClient(_m.config).QueryEvaluation(_m)
}

// Update returns a builder for updating this ExtractJob.
// Note that you need to call ExtractJob.Unwrap() before calling this method if this ExtractJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractJob) Update() *ExtractJobUpdateOne {
	return NewExtractJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractJob) Unwrap() *ExtractJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractJob) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("applicant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApplicantID))
	builder.WriteString(", ")
	if v := _m.FileID; v != nil {
		builder.WriteString("file_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.EvaluationID; v != nil {
		builder.WriteString("evaluation_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Status; v != nil {
		builder.WriteString("status=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("chunk_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunkCount))
	builder.WriteString(", ")
	builder.WriteString("warning_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WarningCount))
	builder.WriteString(", ")
	builder.WriteString("warnings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Warnings))
	builder.WriteString(", ")
	builder.WriteString("extracted_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedJSON))
	builder.WriteString(", ")
	if v := _m.ModelName; v != nil {
		builder.WriteString("model_name=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ExtractJobs is a parsable slice of ExtractJob.
type ExtractJobs []*ExtractJob
