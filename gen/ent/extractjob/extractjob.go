// Code generated by ent, DO NOT EDIT.

package extractjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractjob type in the database.
	Label = "extract_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldApplicantID holds the string denoting the applicant_id field in the database.
	FieldApplicantID = "applicant_id"
	// FieldFileID holds the string denoting the file_id field in the database.
	FieldFileID = "file_id"
	// FieldEvaluationID holds the string denoting the evaluation_id field in the database.
	FieldEvaluationID = "evaluation_id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldChunkCount holds the string denoting the chunk_count field in the database.
	FieldChunkCount = "chunk_count"
	// FieldWarningCount holds the string denoting the warning_count field in the database.
	FieldWarningCount = "warning_count"
	// FieldWarnings holds the string denoting the warnings field in the database.
	FieldWarnings = "warnings"
	// FieldExtractedJSON holds the string denoting the extracted_json field in the database.
	FieldExtractedJSON = "extracted_json"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// EdgeApplicant holds the string denoting the applicant edge name in mutations.
	EdgeApplicant = "applicant"
	// EdgeFile holds the string denoting the file edge name in mutations.
	EdgeFile = "file"
	// EdgeEvaluation holds the string denoting the evaluation edge name in mutations.
	EdgeEvaluation = "evaluation"
	// Table holds the table name of the extractjob in the database.
	Table = "extract_jobs"
	// ApplicantTable is the table that holds the applicant relation/edge.
	ApplicantTable = "extract_jobs"
	// ApplicantInverseTable is the table name for the Applicant entity.
	// It exists in this package in order to avoid circular dependency with the "applicant" package.
	ApplicantInverseTable = "applicants"
	// ApplicantColumn is the table column denoting the applicant relation/edge.
	ApplicantColumn = "applicant_id"
	// FileTable is the table that holds the file relation/edge.
	FileTable = "extract_jobs"
	// FileInverseTable is the table name for the TranscriptFile entity.
	// It exists in this package in order to avoid circular dependency with the "transcriptfile" package.
	FileInverseTable = "transcript_files"
	// FileColumn is the table column denoting the file relation/edge.
	FileColumn = "file_id"
	// EvaluationTable is the table that holds the evaluation relation/edge.
	EvaluationTable = "extract_jobs"
	// EvaluationInverseTable is the table name for the Evaluation entity.
	// It exists in this package in order to avoid circular dependency with the "evaluation" package.
	EvaluationInverseTable = "evaluations"
	// EvaluationColumn is the table column denoting the evaluation relation/edge.
	EvaluationColumn = "evaluation_id"
)

// Columns holds all SQL columns for extractjob fields.
var Columns = []string{
	FieldID,
	FieldApplicantID,
	FieldFileID,
	FieldEvaluationID,
	FieldSource,
	FieldStartedAt,
	FieldFinishedAt,
	FieldStatus,
	FieldErrorMessage,
	FieldChunkCount,
	FieldWarningCount,
	FieldWarnings,
	FieldExtractedJSON,
	FieldModelName,
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
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultChunkCount holds the default value on creation for the "chunk_count" field.
	DefaultChunkCount int
	// DefaultWarningCount holds the default value on creation for the "warning_count" field.
	DefaultWarningCount int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByApplicantID orders the results by the applicant_id field.
func ByApplicantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicantID, opts...).ToFunc()
}

// ByFileID orders the results by the file_id field.
func ByFileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileID, opts...).ToFunc()
}

// ByEvaluationID orders the results by the evaluation_id field.
func ByEvaluationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluationID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByChunkCount orders the results by the chunk_count field.
func ByChunkCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkCount, opts...).ToFunc()
}

// ByWarningCount orders the results by the warning_count field.
func ByWarningCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarningCount, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByApplicantField orders the results by applicant field.
func ByApplicantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newApplicantStep(), sql.OrderByField(field, opts...))
	}
}

// ByFileField orders the results by file field.
func ByFileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFileStep(), sql.OrderByField(field, opts...))
	}
}

// ByEvaluationField orders the results by evaluation field.
func ByEvaluationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvaluationStep(), sql.OrderByField(field, opts...))
	}
}
func newApplicantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ApplicantInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ApplicantTable, ApplicantColumn),
	)
}
func newFileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
	)
}
func newEvaluationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvaluationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EvaluationTable, EvaluationColumn),
	)
}
