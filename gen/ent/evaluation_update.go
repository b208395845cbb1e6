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
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluationcourse"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/extractjob"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/predicate"
	"github.com/google/uuid"
)

// EvaluationUpdate is the builder for updating Evaluation entities.
type EvaluationUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationMutation
}

// Where appends a list predicates to the EvaluationUpdate builder.
func (_u *EvaluationUpdate) Where(ps ...predicate.Evaluation) *EvaluationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetApplicantID sets the "applicant_id" field.
func (_u *EvaluationUpdate) SetApplicantID(v uuid.UUID) *EvaluationUpdate {
	_u.mutation.SetApplicantID(v)
	return _u
}

// SetNillableApplicantID sets the "applicant_id" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableApplicantID(v *uuid.UUID) *EvaluationUpdate {
	if v != nil {
		_u.SetApplicantID(*v)
	}
	return _u
}

// SetInstitution sets the "institution" field.
func (_u *EvaluationUpdate) SetInstitution(v string) *EvaluationUpdate {
	_u.mutation.SetInstitution(v)
	return _u
}

// SetNillableInstitution sets the "institution" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableInstitution(v *string) *EvaluationUpdate {
	if v != nil {
		_u.SetInstitution(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *EvaluationUpdate) SetLevel(v string) *EvaluationUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableLevel(v *string) *EvaluationUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetGpa sets the "gpa" field.
func (_u *EvaluationUpdate) SetGpa(v float64) *EvaluationUpdate {
	_u.mutation.ResetGpa()
	_u.mutation.SetGpa(v)
	return _u
}

// SetNillableGpa sets the "gpa" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableGpa(v *float64) *EvaluationUpdate {
	if v != nil {
		_u.SetGpa(*v)
	}
	return _u
}

// AddGpa adds value to the "gpa" field.
func (_u *EvaluationUpdate) AddGpa(v float64) *EvaluationUpdate {
	_u.mutation.AddGpa(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EvaluationUpdate) SetCreatedAt(v time.Time) *EvaluationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableCreatedAt(v *time.Time) *EvaluationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EvaluationUpdate) SetUpdatedAt(v time.Time) *EvaluationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetApplicant sets the "applicant" edge to the Applicant entity.
func (_u *EvaluationUpdate) SetApplicant(v *Applicant) *EvaluationUpdate {
	return _u.SetApplicantID(v.ID)
}

// AddCourseIDs adds the "courses" edge to the EvaluationCourse entity by IDs.
func (_u *EvaluationUpdate) AddCourseIDs(ids ...uuid.UUID) *EvaluationUpdate {
	_u.mutation.AddCourseIDs(ids...)
	return _u
}

// AddCourses adds the "courses" edges to the EvaluationCourse entity.
func (_u *EvaluationUpdate) AddCourses(v ...*EvaluationCourse) *EvaluationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCourseIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *EvaluationUpdate) AddJobIDs(ids ...uuid.UUID) *EvaluationUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *EvaluationUpdate) AddJobs(v ...*ExtractJob) *EvaluationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the EvaluationMutation object of the builder.
func (_u *EvaluationUpdate) Mutation() *EvaluationMutation {
	return _u.mutation
}

// ClearApplicant clears the "applicant" edge to the Applicant entity.
func (_u *EvaluationUpdate) ClearApplicant() *EvaluationUpdate {
	_u.mutation.ClearApplicant()
	return _u
}

// ClearCourses clears all "courses" edges to the EvaluationCourse entity.
func (_u *EvaluationUpdate) ClearCourses() *EvaluationUpdate {
	_u.mutation.ClearCourses()
	return _u
}

// RemoveCourseIDs removes the "courses" edge to EvaluationCourse entities by IDs.
func (_u *EvaluationUpdate) RemoveCourseIDs(ids ...uuid.UUID) *EvaluationUpdate {
	_u.mutation.RemoveCourseIDs(ids...)
	return _u
}

// RemoveCourses removes "courses" edges to EvaluationCourse entities.
func (_u *EvaluationUpdate) RemoveCourses(v ...*EvaluationCourse) *EvaluationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCourseIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *EvaluationUpdate) ClearJobs() *EvaluationUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *EvaluationUpdate) RemoveJobIDs(ids ...uuid.UUID) *EvaluationUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *EvaluationUpdate) RemoveJobs(v ...*ExtractJob) *EvaluationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EvaluationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := evaluation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationUpdate) check() error {
	if v, ok := _u.mutation.Institution(); ok {
		if err := evaluation.InstitutionValidator(v); err != nil {
			return &ValidationError{Name: "institution", err: fmt.Errorf(`ent: validator failed for field "Evaluation.institution": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := evaluation.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Evaluation.level": %w`, err)}
		}
	}
	if _u.mutation.ApplicantCleared() && len(_u.mutation.ApplicantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.applicant"`)
	}
	return nil
}

func (_u *EvaluationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluation.Table, evaluation.Columns, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Institution(); ok {
		_spec.SetField(evaluation.FieldInstitution, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(evaluation.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gpa(); ok {
		_spec.SetField(evaluation.FieldGpa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGpa(); ok {
		_spec.AddField(evaluation.FieldGpa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(evaluation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(evaluation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluation.ApplicantTable,
			Columns: []string{evaluation.ApplicantColumn},
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
			Table:   evaluation.ApplicantTable,
			Columns: []string{evaluation.ApplicantColumn},
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
	if _u.mutation.CoursesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evaluation.CoursesTable,
			Columns: []string{evaluation.CoursesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationcourse.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCoursesIDs(); len(nodes) > 0 && !_u.mutation.CoursesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evaluation.CoursesTable,
			Columns: []string{evaluation.CoursesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationcourse.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CoursesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evaluation.CoursesTable,
			Columns: []string{evaluation.CoursesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationcourse.FieldID, field.TypeUUID),
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
			Table:   evaluation.JobsTable,
			Columns: []string{evaluation.JobsColumn},
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
			Table:   evaluation.JobsTable,
			Columns: []string{evaluation.JobsColumn},
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
			Table:   evaluation.JobsTable,
			Columns: []string{evaluation.JobsColumn},
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
			err = &NotFoundError{evaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationUpdateOne is the builder for updating a single Evaluation entity.
type EvaluationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationMutation
}

// SetApplicantID sets the "applicant_id" field.
func (_u *EvaluationUpdateOne) SetApplicantID(v uuid.UUID) *EvaluationUpdateOne {
	_u.mutation.SetApplicantID(v)
	return _u
}

// SetNillableApplicantID sets the "applicant_id" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableApplicantID(v *uuid.UUID) *EvaluationUpdateOne {
	if v != nil {
		_u.SetApplicantID(*v)
	}
	return _u
}

// SetInstitution sets the "institution" field.
func (_u *EvaluationUpdateOne) SetInstitution(v string) *EvaluationUpdateOne {
	_u.mutation.SetInstitution(v)
	return _u
}

// SetNillableInstitution sets the "institution" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableInstitution(v *string) *EvaluationUpdateOne {
	if v != nil {
		_u.SetInstitution(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *EvaluationUpdateOne) SetLevel(v string) *EvaluationUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableLevel(v *string) *EvaluationUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetGpa sets the "gpa" field.
func (_u *EvaluationUpdateOne) SetGpa(v float64) *EvaluationUpdateOne {
	_u.mutation.ResetGpa()
	_u.mutation.SetGpa(v)
	return _u
}

// SetNillableGpa sets the "gpa" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableGpa(v *float64) *EvaluationUpdateOne {
	if v != nil {
		_u.SetGpa(*v)
	}
	return _u
}

// AddGpa adds value to the "gpa" field.
func (_u *EvaluationUpdateOne) AddGpa(v float64) *EvaluationUpdateOne {
	_u.mutation.AddGpa(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EvaluationUpdateOne) SetCreatedAt(v time.Time) *EvaluationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableCreatedAt(v *time.Time) *EvaluationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EvaluationUpdateOne) SetUpdatedAt(v time.Time) *EvaluationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetApplicant sets the "applicant" edge to the Applicant entity.
func (_u *EvaluationUpdateOne) SetApplicant(v *Applicant) *EvaluationUpdateOne {
	return _u.SetApplicantID(v.ID)
}

// AddCourseIDs adds the "courses" edge to the EvaluationCourse entity by IDs.
func (_u *EvaluationUpdateOne) AddCourseIDs(ids ...uuid.UUID) *EvaluationUpdateOne {
	_u.mutation.AddCourseIDs(ids...)
	return _u
}

// AddCourses adds the "courses" edges to the EvaluationCourse entity.
func (_u *EvaluationUpdateOne) AddCourses(v ...*EvaluationCourse) *EvaluationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCourseIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *EvaluationUpdateOne) AddJobIDs(ids ...uuid.UUID) *EvaluationUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *EvaluationUpdateOne) AddJobs(v ...*ExtractJob) *EvaluationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the EvaluationMutation object of the builder.
func (_u *EvaluationUpdateOne) Mutation() *EvaluationMutation {
	return _u.mutation
}

// ClearApplicant clears the "applicant" edge to the Applicant entity.
func (_u *EvaluationUpdateOne) ClearApplicant() *EvaluationUpdateOne {
	_u.mutation.ClearApplicant()
	return _u
}

// ClearCourses clears all "courses" edges to the EvaluationCourse entity.
func (_u *EvaluationUpdateOne) ClearCourses() *EvaluationUpdateOne {
	_u.mutation.ClearCourses()
	return _u
}

// RemoveCourseIDs removes the "courses" edge to EvaluationCourse entities by IDs.
func (_u *EvaluationUpdateOne) RemoveCourseIDs(ids ...uuid.UUID) *EvaluationUpdateOne {
	_u.mutation.RemoveCourseIDs(ids...)
	return _u
}

// RemoveCourses removes "courses" edges to EvaluationCourse entities.
func (_u *EvaluationUpdateOne) RemoveCourses(v ...*EvaluationCourse) *EvaluationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCourseIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *EvaluationUpdateOne) ClearJobs() *EvaluationUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *EvaluationUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *EvaluationUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *EvaluationUpdateOne) RemoveJobs(v ...*ExtractJob) *EvaluationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the EvaluationUpdate builder.
func (_u *EvaluationUpdateOne) Where(ps ...predicate.Evaluation) *EvaluationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationUpdateOne) Select(field string, fields ...string) *EvaluationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Evaluation entity.
func (_u *EvaluationUpdateOne) Save(ctx context.Context) (*Evaluation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationUpdateOne) SaveX(ctx context.Context) *Evaluation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EvaluationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := evaluation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationUpdateOne) check() error {
	if v, ok := _u.mutation.Institution(); ok {
		if err := evaluation.InstitutionValidator(v); err != nil {
			return &ValidationError{Name: "institution", err: fmt.Errorf(`ent: validator failed for field "Evaluation.institution": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := evaluation.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Evaluation.level": %w`, err)}
		}
	}
	if _u.mutation.ApplicantCleared() && len(_u.mutation.ApplicantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.applicant"`)
	}
	return nil
}

func (_u *EvaluationUpdateOne) sqlSave(ctx context.Context) (_node *Evaluation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluation.Table, evaluation.Columns, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Evaluation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluation.FieldID)
		for _, f := range fields {
			if !evaluation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluation.FieldID {
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
	if value, ok := _u.mutation.Institution(); ok {
		_spec.SetField(evaluation.FieldInstitution, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(evaluation.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gpa(); ok {
		_spec.SetField(evaluation.FieldGpa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGpa(); ok {
		_spec.AddField(evaluation.FieldGpa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(evaluation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(evaluation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicantCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluation.ApplicantTable,
			Columns: []string{evaluation.ApplicantColumn},
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
			Table:   evaluation.ApplicantTable,
			Columns: []string{evaluation.ApplicantColumn},
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
	if _u.mutation.CoursesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evaluation.CoursesTable,
			Columns: []string{evaluation.CoursesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationcourse.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCoursesIDs(); len(nodes) > 0 && !_u.mutation.CoursesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evaluation.CoursesTable,
			Columns: []string{evaluation.CoursesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationcourse.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CoursesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evaluation.CoursesTable,
			Columns: []string{evaluation.CoursesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationcourse.FieldID, field.TypeUUID),
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
			Table:   evaluation.JobsTable,
			Columns: []string{evaluation.JobsColumn},
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
			Table:   evaluation.JobsTable,
			Columns: []string{evaluation.JobsColumn},
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
			Table:   evaluation.JobsTable,
			Columns: []string{evaluation.JobsColumn},
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
	_node = &Evaluation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
