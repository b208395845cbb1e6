// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/applicant"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/transcriptfile"
	"github.com/google/uuid"
)

// TranscriptFile is the model entity for the TranscriptFile schema.
type TranscriptFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ApplicantID holds the value of the "applicant_id" field.
	ApplicantID uuid.UUID `json:"applicant_id,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TranscriptFileQuery when eager-loading is set.
	Edges        TranscriptFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TranscriptFileEdges holds the relations/edges for other nodes in the graph.
type TranscriptFileEdges struct {
	// Applicant holds the value of the applicant edge.
	Applicant *Applicant `json:"applicant,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ApplicantOrErr returns the Applicant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TranscriptFileEdges) ApplicantOrErr() (*Applicant, error) {
	if e.Applicant != nil {
		return e.Applicant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: applicant.Label}
	}
	return nil, &NotLoadedError{edge: "applicant"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e TranscriptFileEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TranscriptFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transcriptfile.FieldContentHash:
			values[i] = new([]byte)
		case transcriptfile.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case transcriptfile.FieldSourcePath, transcriptfile.FieldFilename, transcriptfile.FieldFileExt:
			values[i] = new(sql.NullString)
		case transcriptfile.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case transcriptfile.FieldID, transcriptfile.FieldApplicantID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TranscriptFile fields.
func (_m *TranscriptFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transcriptfile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case transcriptfile.FieldApplicantID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field applicant_id", values[i])
			} else if value != nil {
				_m.ApplicantID = *value
			}
		case transcriptfile.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case transcriptfile.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case transcriptfile.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case transcriptfile.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case transcriptfile.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case transcriptfile.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TranscriptFile.
// This includes values selected through modifiers, order, etc.
func (_m *TranscriptFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryApplicant queries the "applicant" edge of the TranscriptFile entity.
func (_m *TranscriptFile) QueryApplicant() *ApplicantQuery {
	return NewTranscriptFileClient(_m.config).QueryApplicant(_m)
}

// QueryJobs queries the "jobs" edge of the TranscriptFile entity.
func (_m *TranscriptFile) QueryJobs() *ExtractJobQuery {
	return NewTranscriptFileClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this TranscriptFile.
// Note that you need to call TranscriptFile.Unwrap() before calling this method if this TranscriptFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TranscriptFile) Update() *TranscriptFileUpdateOne {
	return NewTranscriptFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TranscriptFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TranscriptFile) Unwrap() *TranscriptFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TranscriptFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TranscriptFile) String() string {
	var builder strings.Builder
	builder.WriteString("TranscriptFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("applicant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApplicantID))
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TranscriptFiles is a parsable slice of TranscriptFile.
type TranscriptFiles []*TranscriptFile
