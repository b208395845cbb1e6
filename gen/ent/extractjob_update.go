// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/applicant"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluation"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/extractjob"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/predicate"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/transcriptfile"
	"github.com/google/uuid"
)

// ExtractJobUpdate is the builder for updating ExtractJob entities.
type ExtractJobUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractJobMutation
}

// Where appends a list predicates to the ExtractJobUpdate builder.
func (_u *ExtractJobUpdate) Where(ps ...predicate.ExtractJob) *ExtractJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetApplicantID sets the "applicant_id" field.
func (_u *ExtractJobUpdate) SetApplicantID(v uuid.UUID) *ExtractJobUpdate {
	_u.mutation.SetApplicantID(v)
	return _u
}

// SetNillableApplicantID sets the "applicant_id" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableApplicantID(v *uuid.UUID) *ExtractJobUpdate {
	if v != nil {
		_u.SetApplicantID(*v)
	}
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *ExtractJobUpdate) SetFileID(v uuid.UUID) *ExtractJobUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableFileID(v *uuid.UUID) *ExtractJobUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// ClearFileID clears the value of the "file_id" field.
func (_u *ExtractJobUpdate) ClearFileID() *ExtractJobUpdate {
	_u.mutation.ClearFileID()
	return _u
}

// SetEvaluationID sets the "evaluation_id" field.
func (_u *ExtractJobUpdate) SetEvaluationID(v uuid.UUID) *ExtractJobUpdate {
	_u.mutation.SetEvaluationID(v)
	return _u
}

// SetNillableEvaluationID sets the "evaluation_id" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableEvaluationID(v *uuid.UUID) *ExtractJobUpdate {
	if v != nil {
		_u.SetEvaluationID(*v)
	}
	return _u
}

// ClearEvaluationID clears the value of the "evaluation_id" field.
func (_u *ExtractJobUpdate) ClearEvaluationID() *ExtractJobUpdate {
	_u.mutation.ClearEvaluationID()
	return _u
}

// SetSource sets the "source" field.
func (_u *ExtractJobUpdate) SetSource(v string) *ExtractJobUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableSource(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractJobUpdate) SetStartedAt(v time.Time) *ExtractJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableStartedAt(v *time.Time) *ExtractJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractJobUpdate) SetFinishedAt(v time.Time) *ExtractJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableFinishedAt(v *time.Time) *ExtractJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractJobUpdate) ClearFinishedAt() *ExtractJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractJobUpdate) SetStatus(v string) *ExtractJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableStatus(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ExtractJobUpdate) ClearStatus() *ExtractJobUpdate {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractJobUpdate) SetErrorMessage(v string) *ExtractJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableErrorMessage(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractJobUpdate) ClearErrorMessage() *ExtractJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetChunkCount sets the "chunk_count" field.
func (_u *ExtractJobUpdate) SetChunkCount(v int) *ExtractJobUpdate {
	_u.mutation.ResetChunkCount()
	_u.mutation.SetChunkCount(v)
	return _u
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableChunkCount(v *int) *ExtractJobUpdate {
	if v != nil {
		_u.SetChunkCount(*v)
	}
	return _u
}

// AddChunkCount adds value to the "chunk_count" field.
func (_u *ExtractJobUpdate) AddChunkCount(v int) *ExtractJobUpdate {
	_u.mutation.AddChunkCount(v)
	return _u
}

// SetWarningCount sets the "warning_count" field.
func (_u *ExtractJobUpdate) SetWarningCount(v int) *ExtractJobUpdate {
	_u.mutation.ResetWarningCount()
	_u.mutation.SetWarningCount(v)
	return _u
}

// SetNillableWarningCount sets the "warning_count" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableWarningCount(v *int) *ExtractJobUpdate {
	if v != nil {
		_u.SetWarningCount(*v)
	}
	return _u
}

// AddWarningCount adds value to the "warning_count" field.
func (_u *ExtractJobUpdate) AddWarningCount(v int) *ExtractJobUpdate {
	_u.mutation.AddWarningCount(v)
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *ExtractJobUpdate) SetWarnings(v json.RawMessage) *ExtractJobUpdate {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *ExtractJobUpdate) AppendWarnings(v json.RawMessage) *ExtractJobUpdate {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *ExtractJobUpdate) ClearWarnings() *ExtractJobUpdate {
	_u.mutation.ClearWarnings()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ExtractJobUpdate) SetExtractedJSON(v json.RawMessage) *ExtractJobUpdate {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *ExtractJobUpdate) AppendExtractedJSON(v json.RawMessage) *ExtractJobUpdate {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ExtractJobUpdate) ClearExtractedJSON() *ExtractJobUpdate {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractJobUpdate) SetModelName(v string) *ExtractJobUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractJobUpdate) SetNillableModelName(v *string) *ExtractJobUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractJobUpdate) ClearModelName() *ExtractJobUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetApplicant sets the "applicant" edge to the Applicant entity.
func (_u *ExtractJobUpdate) SetApplicant(v *Applicant) *ExtractJobUpdate {
	return _u.SetApplicantID(v.ID)
}

// SetFile sets the "file" edge to the TranscriptFile entity.
func (_u *ExtractJobUpdate) SetFile(v *TranscriptFile) *ExtractJobUpdate {
	return _u.SetFileID(v.ID)
}

// SetEvaluation sets the "evaluation" edge to the Evaluation entity.
func (_u *ExtractJobUpdate) SetEvaluation(v *Evaluation) *ExtractJobUpdate {
	return _u.SetEvaluationID(v.ID)
}

// Mutation returns the ExtractJobMutation object of the builder.
func (_u *ExtractJobUpdate) Mutation() *ExtractJobMutation {
	return _u.mutation
}

// ClearApplicant clears the "applicant" edge to the Applicant entity.
func (_u *ExtractJobUpdate) ClearApplicant() *ExtractJobUpdate {
	_u.mutation.ClearApplicant()
	return _u
}

// ClearFile clears the "file" edge to the TranscriptFile entity.
func (_u *ExtractJobUpdate) ClearFile() *ExtractJobUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearEvaluation clears the "evaluation" edge to the Evaluation entity.
func (_u *ExtractJobUpdate) ClearEvaluation() *ExtractJobUpdate {
	_u.mutation.ClearEvaluation()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractJobUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := extractjob.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.source": %w`, err)}
		}
	}
	if _u.mutation.ApplicantCleared() && len(_u.mutation.ApplicantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractJob.applicant"`)
	}
	return nil
}

func (_u *ExtractJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractjob.Table, extractjob.Columns, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(extractjob.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(extractjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ChunkCount(); ok {
		_spec.SetField(extractjob.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkCount(); ok {
		_spec.AddField(extractjob.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WarningCount(); ok {
		_spec.SetField(extractjob.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarningCount(); ok {
		_spec.AddField(extractjob.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(extractjob.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractjob.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(extractjob.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(extractjob.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractjob.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(extractjob.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractjob.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractjob.FieldModelName, field.TypeString)
	}
	if _u.mutation.ApplicantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.ApplicantTable,
			Columns: []string{extractjob.ApplicantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(applicant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.ApplicantTable,
			Columns: []string{extractjob.ApplicantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(applicant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.FileTable,
			Columns: []string{extractjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcriptfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.FileTable,
			Columns: []string{extractjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcriptfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.EvaluationTable,
			Columns: []string{extractjob.EvaluationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.EvaluationTable,
			Columns: []string{extractjob.EvaluationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractJobUpdateOne is the builder for updating a single ExtractJob entity.
type ExtractJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractJobMutation
}

// SetApplicantID sets the "applicant_id" field.
func (_u *ExtractJobUpdateOne) SetApplicantID(v uuid.UUID) *ExtractJobUpdateOne {
	_u.mutation.SetApplicantID(v)
	return _u
}

// SetNillableApplicantID sets the "applicant_id" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableApplicantID(v *uuid.UUID) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetApplicantID(*v)
	}
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *ExtractJobUpdateOne) SetFileID(v uuid.UUID) *ExtractJobUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableFileID(v *uuid.UUID) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// ClearFileID clears the value of the "file_id" field.
func (_u *ExtractJobUpdateOne) ClearFileID() *ExtractJobUpdateOne {
	_u.mutation.ClearFileID()
	return _u
}

// SetEvaluationID sets the "evaluation_id" field.
func (_u *ExtractJobUpdateOne) SetEvaluationID(v uuid.UUID) *ExtractJobUpdateOne {
	_u.mutation.SetEvaluationID(v)
	return _u
}

// SetNillableEvaluationID sets the "evaluation_id" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableEvaluationID(v *uuid.UUID) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetEvaluationID(*v)
	}
	return _u
}

// ClearEvaluationID clears the value of the "evaluation_id" field.
func (_u *ExtractJobUpdateOne) ClearEvaluationID() *ExtractJobUpdateOne {
	_u.mutation.ClearEvaluationID()
	return _u
}

// SetSource sets the "source" field.
func (_u *ExtractJobUpdateOne) SetSource(v string) *ExtractJobUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableSource(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractJobUpdateOne) SetStartedAt(v time.Time) *ExtractJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableStartedAt(v *time.Time) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractJobUpdateOne) SetFinishedAt(v time.Time) *ExtractJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractJobUpdateOne) ClearFinishedAt() *ExtractJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractJobUpdateOne) SetStatus(v string) *ExtractJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableStatus(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// ClearStatus clears the value of the "status" field.
func (_u *ExtractJobUpdateOne) ClearStatus() *ExtractJobUpdateOne {
	_u.mutation.ClearStatus()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractJobUpdateOne) SetErrorMessage(v string) *ExtractJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableErrorMessage(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractJobUpdateOne) ClearErrorMessage() *ExtractJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetChunkCount sets the "chunk_count" field.
func (_u *ExtractJobUpdateOne) SetChunkCount(v int) *ExtractJobUpdateOne {
	_u.mutation.ResetChunkCount()
	_u.mutation.SetChunkCount(v)
	return _u
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableChunkCount(v *int) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetChunkCount(*v)
	}
	return _u
}

// AddChunkCount adds value to the "chunk_count" field.
func (_u *ExtractJobUpdateOne) AddChunkCount(v int) *ExtractJobUpdateOne {
	_u.mutation.AddChunkCount(v)
	return _u
}

// SetWarningCount sets the "warning_count" field.
func (_u *ExtractJobUpdateOne) SetWarningCount(v int) *ExtractJobUpdateOne {
	_u.mutation.ResetWarningCount()
	_u.mutation.SetWarningCount(v)
	return _u
}

// SetNillableWarningCount sets the "warning_count" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableWarningCount(v *int) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetWarningCount(*v)
	}
	return _u
}

// AddWarningCount adds value to the "warning_count" field.
func (_u *ExtractJobUpdateOne) AddWarningCount(v int) *ExtractJobUpdateOne {
	_u.mutation.AddWarningCount(v)
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *ExtractJobUpdateOne) SetWarnings(v json.RawMessage) *ExtractJobUpdateOne {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *ExtractJobUpdateOne) AppendWarnings(v json.RawMessage) *ExtractJobUpdateOne {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *ExtractJobUpdateOne) ClearWarnings() *ExtractJobUpdateOne {
	_u.mutation.ClearWarnings()
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *ExtractJobUpdateOne) SetExtractedJSON(v json.RawMessage) *ExtractJobUpdateOne {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *ExtractJobUpdateOne) AppendExtractedJSON(v json.RawMessage) *ExtractJobUpdateOne {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *ExtractJobUpdateOne) ClearExtractedJSON() *ExtractJobUpdateOne {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractJobUpdateOne) SetModelName(v string) *ExtractJobUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractJobUpdateOne) SetNillableModelName(v *string) *ExtractJobUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractJobUpdateOne) ClearModelName() *ExtractJobUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetApplicant sets the "applicant" edge to the Applicant entity.
func (_u *ExtractJobUpdateOne) SetApplicant(v *Applicant) *ExtractJobUpdateOne {
	return _u.SetApplicantID(v.ID)
}

// SetFile sets the "file" edge to the TranscriptFile entity.
func (_u *ExtractJobUpdateOne) SetFile(v *TranscriptFile) *ExtractJobUpdateOne {
	return _u.SetFileID(v.ID)
}

// SetEvaluation sets the "evaluation" edge to the Evaluation entity.
func (_u *ExtractJobUpdateOne) SetEvaluation(v *Evaluation) *ExtractJobUpdateOne {
	return _u.SetEvaluationID(v.ID)
}

// Mutation returns the ExtractJobMutation object of the builder.
func (_u *ExtractJobUpdateOne) Mutation() *ExtractJobMutation {
	return _u.mutation
}

// ClearApplicant clears the "applicant" edge to the Applicant entity.
func (_u *ExtractJobUpdateOne) ClearApplicant() *ExtractJobUpdateOne {
	_u.mutation.ClearApplicant()
	return _u
}

// ClearFile clears the "file" edge to the TranscriptFile entity.
func (_u *ExtractJobUpdateOne) ClearFile() *ExtractJobUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearEvaluation clears the "evaluation" edge to the Evaluation entity.
func (_u *ExtractJobUpdateOne) ClearEvaluation() *ExtractJobUpdateOne {
	_u.mutation.ClearEvaluation()
	return _u
}

// Where appends a list predicates to the ExtractJobUpdate builder.
func (_u *ExtractJobUpdateOne) Where(ps ...predicate.ExtractJob) *ExtractJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractJobUpdateOne) Select(field string, fields ...string) *ExtractJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractJob entity.
func (_u *ExtractJobUpdateOne) Save(ctx context.Context) (*ExtractJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractJobUpdateOne) SaveX(ctx context.Context) *ExtractJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractJobUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := extractjob.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.source": %w`, err)}
		}
	}
	if _u.mutation.ApplicantCleared() && len(_u.mutation.ApplicantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractJob.applicant"`)
	}
	return nil
}

func (_u *ExtractJobUpdateOne) sqlSave(ctx context.Context) (_node *ExtractJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractjob.Table, extractjob.Columns, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractjob.FieldID)
		for _, f := range fields {
			if !extractjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(extractjob.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractjob.FieldStatus, field.TypeString, value)
	}
	if _u.mutation.StatusCleared() {
		_spec.ClearField(extractjob.FieldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ChunkCount(); ok {
		_spec.SetField(extractjob.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkCount(); ok {
		_spec.AddField(extractjob.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WarningCount(); ok {
		_spec.SetField(extractjob.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarningCount(); ok {
		_spec.AddField(extractjob.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(extractjob.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractjob.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(extractjob.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(extractjob.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractjob.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(extractjob.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractjob.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractjob.FieldModelName, field.TypeString)
	}
	if _u.mutation.ApplicantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.ApplicantTable,
			Columns: []string{extractjob.ApplicantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(applicant.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.ApplicantTable,
			Columns: []string{extractjob.ApplicantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(applicant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.FileTable,
			Columns: []string{extractjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcriptfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.FileTable,
			Columns: []string{extractjob.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcriptfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.EvaluationTable,
			Columns: []string{extractjob.EvaluationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.EvaluationTable,
			Columns: []string{extractjob.EvaluationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
