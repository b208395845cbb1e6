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
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluation"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/extractjob"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/predicate"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/transcriptfile"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/university"
	"github.com/google/uuid"
)

// ApplicantUpdate is the builder for updating Applicant entities.
type ApplicantUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicantMutation
}

// Where appends a list predicates to the ApplicantUpdate builder.
func (_u *ApplicantUpdate) Where(ps ...predicate.Applicant) *ApplicantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ApplicantUpdate) SetName(v string) *ApplicantUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ApplicantUpdate) SetNillableName(v *string) *ApplicantUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ApplicantUpdate) SetEmail(v string) *ApplicantUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ApplicantUpdate) SetNillableEmail(v *string) *ApplicantUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetTargetLevel sets the "target_level" field.
func (_u *ApplicantUpdate) SetTargetLevel(v string) *ApplicantUpdate {
	_u.mutation.SetTargetLevel(v)
	return _u
}

// SetNillableTargetLevel sets the "target_level" field if the given value is not nil.
func (_u *ApplicantUpdate) SetNillableTargetLevel(v *string) *ApplicantUpdate {
	if v != nil {
		_u.SetTargetLevel(*v)
	}
	return _u
}

// SetResearchAreas sets the "research_areas" field.
func (_u *ApplicantUpdate) SetResearchAreas(v string) *ApplicantUpdate {
	_u.mutation.SetResearchAreas(v)
	return _u
}

// SetNillableResearchAreas sets the "research_areas" field if the given value is not nil.
func (_u *ApplicantUpdate) SetNillableResearchAreas(v *string) *ApplicantUpdate {
	if v != nil {
		_u.SetResearchAreas(*v)
	}
	return _u
}

// ClearResearchAreas clears the value of the "research_areas" field.
func (_u *ApplicantUpdate) ClearResearchAreas() *ApplicantUpdate {
	_u.mutation.ClearResearchAreas()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ApplicantUpdate) SetCreatedAt(v time.Time) *ApplicantUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ApplicantUpdate) SetNillableCreatedAt(v *time.Time) *ApplicantUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicantUpdate) SetUpdatedAt(v time.Time) *ApplicantUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddUniversityIDs adds the "universities" edge to the University entity by IDs.
func (_u *ApplicantUpdate) AddUniversityIDs(ids ...uuid.UUID) *ApplicantUpdate {
	_u.mutation.AddUniversityIDs(ids...)
	return _u
}

// AddUniversities adds the "universities" edges to the University entity.
func (_u *ApplicantUpdate) AddUniversities(v ...*University) *ApplicantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUniversityIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_u *ApplicantUpdate) AddEvaluationIDs(ids ...uuid.UUID) *ApplicantUpdate {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_u *ApplicantUpdate) AddEvaluations(v ...*Evaluation) *ApplicantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// AddFileIDs adds the "files" edge to the TranscriptFile entity by IDs.
func (_u *ApplicantUpdate) AddFileIDs(ids ...uuid.UUID) *ApplicantUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the TranscriptFile entity.
func (_u *ApplicantUpdate) AddFiles(v ...*TranscriptFile) *ApplicantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *ApplicantUpdate) AddJobIDs(ids ...uuid.UUID) *ApplicantUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *ApplicantUpdate) AddJobs(v ...*ExtractJob) *ApplicantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ApplicantMutation object of the builder.
func (_u *ApplicantUpdate) Mutation() *ApplicantMutation {
	return _u.mutation
}

// ClearUniversities clears all "universities" edges to the University entity.
func (_u *ApplicantUpdate) ClearUniversities() *ApplicantUpdate {
	_u.mutation.ClearUniversities()
	return _u
}

// RemoveUniversityIDs removes the "universities" edge to University entities by IDs.
func (_u *ApplicantUpdate) RemoveUniversityIDs(ids ...uuid.UUID) *ApplicantUpdate {
	_u.mutation.RemoveUniversityIDs(ids...)
	return _u
}

// RemoveUniversities removes "universities" edges to University entities.
func (_u *ApplicantUpdate) RemoveUniversities(v ...*University) *ApplicantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUniversityIDs(ids...)
}

// ClearEvaluations clears all "evaluations" edges to the Evaluation entity.
func (_u *ApplicantUpdate) ClearEvaluations() *ApplicantUpdate {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to Evaluation entities by IDs.
func (_u *ApplicantUpdate) RemoveEvaluationIDs(ids ...uuid.UUID) *ApplicantUpdate {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to Evaluation entities.
func (_u *ApplicantUpdate) RemoveEvaluations(v ...*Evaluation) *ApplicantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// ClearFiles clears all "files" edges to the TranscriptFile entity.
func (_u *ApplicantUpdate) ClearFiles() *ApplicantUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to TranscriptFile entities by IDs.
func (_u *ApplicantUpdate) RemoveFileIDs(ids ...uuid.UUID) *ApplicantUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to TranscriptFile entities.
func (_u *ApplicantUpdate) RemoveFiles(v ...*TranscriptFile) *ApplicantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *ApplicantUpdate) ClearJobs() *ApplicantUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *ApplicantUpdate) RemoveJobIDs(ids ...uuid.UUID) *ApplicantUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *ApplicantUpdate) RemoveJobs(v ...*ExtractJob) *ApplicantUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApplicantUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApplicantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicantUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := applicant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicantUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := applicant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Applicant.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := applicant.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Applicant.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetLevel(); ok {
		if err := applicant.TargetLevelValidator(v); err != nil {
			return &ValidationError{Name: "target_level", err: fmt.Errorf(`ent: validator failed for field "Applicant.target_level": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(applicant.Table, applicant.Columns, sqlgraph.NewFieldSpec(applicant.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(applicant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(applicant.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLevel(); ok {
		_spec.SetField(applicant.FieldTargetLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResearchAreas(); ok {
		_spec.SetField(applicant.FieldResearchAreas, field.TypeString, value)
	}
	if _u.mutation.ResearchAreasCleared() {
		_spec.ClearField(applicant.FieldResearchAreas, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(applicant.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(applicant.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UniversitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.UniversitiesTable,
			Columns: []string{applicant.UniversitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(university.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUniversitiesIDs(); len(nodes) > 0 && !_u.mutation.UniversitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.UniversitiesTable,
			Columns: []string{applicant.UniversitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(university.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UniversitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.UniversitiesTable,
			Columns: []string{applicant.UniversitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(university.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.EvaluationsTable,
			Columns: []string{applicant.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.EvaluationsTable,
			Columns: []string{applicant.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.EvaluationsTable,
			Columns: []string{applicant.EvaluationsColumn},
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
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.FilesTable,
			Columns: []string{applicant.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcriptfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.FilesTable,
			Columns: []string{applicant.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcriptfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.FilesTable,
			Columns: []string{applicant.FilesColumn},
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
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.JobsTable,
			Columns: []string{applicant.JobsColumn},
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
			Table:   applicant.JobsTable,
			Columns: []string{applicant.JobsColumn},
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
			Table:   applicant.JobsTable,
			Columns: []string{applicant.JobsColumn},
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
			err = &NotFoundError{applicant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApplicantUpdateOne is the builder for updating a single Applicant entity.
type ApplicantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicantMutation
}

// SetName sets the "name" field.
func (_u *ApplicantUpdateOne) SetName(v string) *ApplicantUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ApplicantUpdateOne) SetNillableName(v *string) *ApplicantUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ApplicantUpdateOne) SetEmail(v string) *ApplicantUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ApplicantUpdateOne) SetNillableEmail(v *string) *ApplicantUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetTargetLevel sets the "target_level" field.
func (_u *ApplicantUpdateOne) SetTargetLevel(v string) *ApplicantUpdateOne {
	_u.mutation.SetTargetLevel(v)
	return _u
}

// SetNillableTargetLevel sets the "target_level" field if the given value is not nil.
func (_u *ApplicantUpdateOne) SetNillableTargetLevel(v *string) *ApplicantUpdateOne {
	if v != nil {
		_u.SetTargetLevel(*v)
	}
	return _u
}

// SetResearchAreas sets the "research_areas" field.
func (_u *ApplicantUpdateOne) SetResearchAreas(v string) *ApplicantUpdateOne {
	_u.mutation.SetResearchAreas(v)
	return _u
}

// SetNillableResearchAreas sets the "research_areas" field if the given value is not nil.
func (_u *ApplicantUpdateOne) SetNillableResearchAreas(v *string) *ApplicantUpdateOne {
	if v != nil {
		_u.SetResearchAreas(*v)
	}
	return _u
}

// ClearResearchAreas clears the value of the "research_areas" field.
func (_u *ApplicantUpdateOne) ClearResearchAreas() *ApplicantUpdateOne {
	_u.mutation.ClearResearchAreas()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ApplicantUpdateOne) SetCreatedAt(v time.Time) *ApplicantUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ApplicantUpdateOne) SetNillableCreatedAt(v *time.Time) *ApplicantUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApplicantUpdateOne) SetUpdatedAt(v time.Time) *ApplicantUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddUniversityIDs adds the "universities" edge to the University entity by IDs.
func (_u *ApplicantUpdateOne) AddUniversityIDs(ids ...uuid.UUID) *ApplicantUpdateOne {
	_u.mutation.AddUniversityIDs(ids...)
	return _u
}

// AddUniversities adds the "universities" edges to the University entity.
func (_u *ApplicantUpdateOne) AddUniversities(v ...*University) *ApplicantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddUniversityIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_u *ApplicantUpdateOne) AddEvaluationIDs(ids ...uuid.UUID) *ApplicantUpdateOne {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_u *ApplicantUpdateOne) AddEvaluations(v ...*Evaluation) *ApplicantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// AddFileIDs adds the "files" edge to the TranscriptFile entity by IDs.
func (_u *ApplicantUpdateOne) AddFileIDs(ids ...uuid.UUID) *ApplicantUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the TranscriptFile entity.
func (_u *ApplicantUpdateOne) AddFiles(v ...*TranscriptFile) *ApplicantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *ApplicantUpdateOne) AddJobIDs(ids ...uuid.UUID) *ApplicantUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *ApplicantUpdateOne) AddJobs(v ...*ExtractJob) *ApplicantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ApplicantMutation object of the builder.
func (_u *ApplicantUpdateOne) Mutation() *ApplicantMutation {
	return _u.mutation
}

// ClearUniversities clears all "universities" edges to the University entity.
func (_u *ApplicantUpdateOne) ClearUniversities() *ApplicantUpdateOne {
	_u.mutation.ClearUniversities()
	return _u
}

// RemoveUniversityIDs removes the "universities" edge to University entities by IDs.
func (_u *ApplicantUpdateOne) RemoveUniversityIDs(ids ...uuid.UUID) *ApplicantUpdateOne {
	_u.mutation.RemoveUniversityIDs(ids...)
	return _u
}

// RemoveUniversities removes "universities" edges to University entities.
func (_u *ApplicantUpdateOne) RemoveUniversities(v ...*University) *ApplicantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveUniversityIDs(ids...)
}

// ClearEvaluations clears all "evaluations" edges to the Evaluation entity.
func (_u *ApplicantUpdateOne) ClearEvaluations() *ApplicantUpdateOne {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to Evaluation entities by IDs.
func (_u *ApplicantUpdateOne) RemoveEvaluationIDs(ids ...uuid.UUID) *ApplicantUpdateOne {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to Evaluation entities.
func (_u *ApplicantUpdateOne) RemoveEvaluations(v ...*Evaluation) *ApplicantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// ClearFiles clears all "files" edges to the TranscriptFile entity.
func (_u *ApplicantUpdateOne) ClearFiles() *ApplicantUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to TranscriptFile entities by IDs.
func (_u *ApplicantUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *ApplicantUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to TranscriptFile entities.
func (_u *ApplicantUpdateOne) RemoveFiles(v ...*TranscriptFile) *ApplicantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *ApplicantUpdateOne) ClearJobs() *ApplicantUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *ApplicantUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *ApplicantUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *ApplicantUpdateOne) RemoveJobs(v ...*ExtractJob) *ApplicantUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the ApplicantUpdate builder.
func (_u *ApplicantUpdateOne) Where(ps ...predicate.Applicant) *ApplicantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApplicantUpdateOne) Select(field string, fields ...string) *ApplicantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Applicant entity.
func (_u *ApplicantUpdateOne) Save(ctx context.Context) (*Applicant, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApplicantUpdateOne) SaveX(ctx context.Context) *Applicant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApplicantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApplicantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApplicantUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := applicant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApplicantUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := applicant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Applicant.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := applicant.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Applicant.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetLevel(); ok {
		if err := applicant.TargetLevelValidator(v); err != nil {
			return &ValidationError{Name: "target_level", err: fmt.Errorf(`ent: validator failed for field "Applicant.target_level": %w`, err)}
		}
	}
	return nil
}

func (_u *ApplicantUpdateOne) sqlSave(ctx context.Context) (_node *Applicant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(applicant.Table, applicant.Columns, sqlgraph.NewFieldSpec(applicant.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Applicant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, applicant.FieldID)
		for _, f := range fields {
			if !applicant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != applicant.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(applicant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(applicant.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLevel(); ok {
		_spec.SetField(applicant.FieldTargetLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResearchAreas(); ok {
		_spec.SetField(applicant.FieldResearchAreas, field.TypeString, value)
	}
	if _u.mutation.ResearchAreasCleared() {
		_spec.ClearField(applicant.FieldResearchAreas, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(applicant.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(applicant.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UniversitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.UniversitiesTable,
			Columns: []string{applicant.UniversitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(university.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedUniversitiesIDs(); len(nodes) > 0 && !_u.mutation.UniversitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.UniversitiesTable,
			Columns: []string{applicant.UniversitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(university.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UniversitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.UniversitiesTable,
			Columns: []string{applicant.UniversitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(university.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.EvaluationsTable,
			Columns: []string{applicant.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.EvaluationsTable,
			Columns: []string{applicant.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.EvaluationsTable,
			Columns: []string{applicant.EvaluationsColumn},
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
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.FilesTable,
			Columns: []string{applicant.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcriptfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.FilesTable,
			Columns: []string{applicant.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcriptfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.FilesTable,
			Columns: []string{applicant.FilesColumn},
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
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   applicant.JobsTable,
			Columns: []string{applicant.JobsColumn},
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
			Table:   applicant.JobsTable,
			Columns: []string{applicant.JobsColumn},
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
			Table:   applicant.JobsTable,
			Columns: []string{applicant.JobsColumn},
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
	_node = &Applicant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{applicant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
