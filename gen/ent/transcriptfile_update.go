// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/applicant"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/extractjob"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/predicate"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/transcriptfile"
	"github.com/google/uuid"
)

// TranscriptFileUpdate is the builder for updating TranscriptFile entities.
type TranscriptFileUpdate struct {
	config
	hooks    []Hook
	mutation *TranscriptFileMutation
}

// Where appends a list predicates to the TranscriptFileUpdate builder.
func (_u *TranscriptFileUpdate) Where(ps ...predicate.TranscriptFile) *TranscriptFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetApplicantID sets the "applicant_id" field.
func (_u *TranscriptFileUpdate) SetApplicantID(v uuid.UUID) *TranscriptFileUpdate {
	_u.mutation.SetApplicantID(v)
	return _u
}

// SetNillableApplicantID sets the "applicant_id" field if the given value is not nil.
func (_u *TranscriptFileUpdate) SetNillableApplicantID(v *uuid.UUID) *TranscriptFileUpdate {
	if v != nil {
		_u.SetApplicantID(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *TranscriptFileUpdate) SetSourcePath(v string) *TranscriptFileUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *TranscriptFileUpdate) SetNillableSourcePath(v *string) *TranscriptFileUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *TranscriptFileUpdate) SetContentHash(v []byte) *TranscriptFileUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *TranscriptFileUpdate) SetFilename(v string) *TranscriptFileUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *TranscriptFileUpdate) SetNillableFilename(v *string) *TranscriptFileUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *TranscriptFileUpdate) SetFileExt(v string) *TranscriptFileUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *TranscriptFileUpdate) SetNillableFileExt(v *string) *TranscriptFileUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *TranscriptFileUpdate) SetFileSize(v int) *TranscriptFileUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *TranscriptFileUpdate) SetNillableFileSize(v *int) *TranscriptFileUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *TranscriptFileUpdate) AddFileSize(v int) *TranscriptFileUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *TranscriptFileUpdate) SetUploadedAt(v time.Time) *TranscriptFileUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *TranscriptFileUpdate) SetNillableUploadedAt(v *time.Time) *TranscriptFileUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetApplicant sets the "applicant" edge to the Applicant entity.
func (_u *TranscriptFileUpdate) SetApplicant(v *Applicant) *TranscriptFileUpdate {
	return _u.SetApplicantID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *TranscriptFileUpdate) AddJobIDs(ids ...uuid.UUID) *TranscriptFileUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *TranscriptFileUpdate) AddJobs(v ...*ExtractJob) *TranscriptFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the TranscriptFileMutation object of the builder.
func (_u *TranscriptFileUpdate) Mutation() *TranscriptFileMutation {
	return _u.mutation
}

// ClearApplicant clears the "applicant" edge to the Applicant entity.
func (_u *TranscriptFileUpdate) ClearApplicant() *TranscriptFileUpdate {
	_u.mutation.ClearApplicant()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *TranscriptFileUpdate) ClearJobs() *TranscriptFileUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *TranscriptFileUpdate) RemoveJobIDs(ids ...uuid.UUID) *TranscriptFileUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *TranscriptFileUpdate) RemoveJobs(v ...*ExtractJob) *TranscriptFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranscriptFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranscriptFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptFileUpdate) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := transcriptfile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "TranscriptFile.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := transcriptfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "TranscriptFile.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := transcriptfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "TranscriptFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := transcriptfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "TranscriptFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := transcriptfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "TranscriptFile.file_size": %w`, err)}
		}
	}
	if _u.mutation.ApplicantCleared() && len(_u.mutation.ApplicantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TranscriptFile.applicant"`)
	}
	return nil
}

func (_u *TranscriptFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptfile.Table, transcriptfile.Columns, sqlgraph.NewFieldSpec(transcriptfile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(transcriptfile.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(transcriptfile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(transcriptfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(transcriptfile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(transcriptfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(transcriptfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(transcriptfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transcriptfile.ApplicantTable,
			Columns: []string{transcriptfile.ApplicantColumn},
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
			Table:   transcriptfile.ApplicantTable,
			Columns: []string{transcriptfile.ApplicantColumn},
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
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptfile.JobsTable,
			Columns: []string{transcriptfile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptfile.JobsTable,
			Columns: []string{transcriptfile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptfile.JobsTable,
			Columns: []string{transcriptfile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcriptfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranscriptFileUpdateOne is the builder for updating a single TranscriptFile entity.
type TranscriptFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranscriptFileMutation
}

// SetApplicantID sets the "applicant_id" field.
func (_u *TranscriptFileUpdateOne) SetApplicantID(v uuid.UUID) *TranscriptFileUpdateOne {
	_u.mutation.SetApplicantID(v)
	return _u
}

// SetNillableApplicantID sets the "applicant_id" field if the given value is not nil.
func (_u *TranscriptFileUpdateOne) SetNillableApplicantID(v *uuid.UUID) *TranscriptFileUpdateOne {
	if v != nil {
		_u.SetApplicantID(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *TranscriptFileUpdateOne) SetSourcePath(v string) *TranscriptFileUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *TranscriptFileUpdateOne) SetNillableSourcePath(v *string) *TranscriptFileUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *TranscriptFileUpdateOne) SetContentHash(v []byte) *TranscriptFileUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *TranscriptFileUpdateOne) SetFilename(v string) *TranscriptFileUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *TranscriptFileUpdateOne) SetNillableFilename(v *string) *TranscriptFileUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *TranscriptFileUpdateOne) SetFileExt(v string) *TranscriptFileUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *TranscriptFileUpdateOne) SetNillableFileExt(v *string) *TranscriptFileUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *TranscriptFileUpdateOne) SetFileSize(v int) *TranscriptFileUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *TranscriptFileUpdateOne) SetNillableFileSize(v *int) *TranscriptFileUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *TranscriptFileUpdateOne) AddFileSize(v int) *TranscriptFileUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *TranscriptFileUpdateOne) SetUploadedAt(v time.Time) *TranscriptFileUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *TranscriptFileUpdateOne) SetNillableUploadedAt(v *time.Time) *TranscriptFileUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetApplicant sets the "applicant" edge to the Applicant entity.
func (_u *TranscriptFileUpdateOne) SetApplicant(v *Applicant) *TranscriptFileUpdateOne {
	return _u.SetApplicantID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *TranscriptFileUpdateOne) AddJobIDs(ids ...uuid.UUID) *TranscriptFileUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *TranscriptFileUpdateOne) AddJobs(v ...*ExtractJob) *TranscriptFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the TranscriptFileMutation object of the builder.
func (_u *TranscriptFileUpdateOne) Mutation() *TranscriptFileMutation {
	return _u.mutation
}

// ClearApplicant clears the "applicant" edge to the Applicant entity.
func (_u *TranscriptFileUpdateOne) ClearApplicant() *TranscriptFileUpdateOne {
	_u.mutation.ClearApplicant()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *TranscriptFileUpdateOne) ClearJobs() *TranscriptFileUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *TranscriptFileUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *TranscriptFileUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *TranscriptFileUpdateOne) RemoveJobs(v ...*ExtractJob) *TranscriptFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the TranscriptFileUpdate builder.
func (_u *TranscriptFileUpdateOne) Where(ps ...predicate.TranscriptFile) *TranscriptFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranscriptFileUpdateOne) Select(field string, fields ...string) *TranscriptFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TranscriptFile entity.
func (_u *TranscriptFileUpdateOne) Save(ctx context.Context) (*TranscriptFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptFileUpdateOne) SaveX(ctx context.Context) *TranscriptFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranscriptFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptFileUpdateOne) check() error {
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := transcriptfile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "TranscriptFile.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := transcriptfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "TranscriptFile.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := transcriptfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "TranscriptFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := transcriptfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "TranscriptFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := transcriptfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "TranscriptFile.file_size": %w`, err)}
		}
	}
	if _u.mutation.ApplicantCleared() && len(_u.mutation.ApplicantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TranscriptFile.applicant"`)
	}
	return nil
}

func (_u *TranscriptFileUpdateOne) sqlSave(ctx context.Context) (_node *TranscriptFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptfile.Table, transcriptfile.Columns, sqlgraph.NewFieldSpec(transcriptfile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TranscriptFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcriptfile.FieldID)
		for _, f := range fields {
			if !transcriptfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transcriptfile.FieldID {
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
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(transcriptfile.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(transcriptfile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(transcriptfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(transcriptfile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(transcriptfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(transcriptfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(transcriptfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transcriptfile.ApplicantTable,
			Columns: []string{transcriptfile.ApplicantColumn},
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
			Table:   transcriptfile.ApplicantTable,
			Columns: []string{transcriptfile.ApplicantColumn},
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
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptfile.JobsTable,
			Columns: []string{transcriptfile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptfile.JobsTable,
			Columns: []string{transcriptfile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptfile.JobsTable,
			Columns: []string{transcriptfile.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TranscriptFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcriptfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
