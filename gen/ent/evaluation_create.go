// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/applicant"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluation"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluationcourse"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/extractjob"
	"github.com/google/uuid"
)

// EvaluationCreate is the builder for creating a Evaluation entity.
type EvaluationCreate struct {
	config
	mutation *EvaluationMutation
	hooks    []Hook
}

// SetApplicantID sets the "applicant_id" field.
func (_c *EvaluationCreate) SetApplicantID(v uuid.UUID) *EvaluationCreate {
	_c.mutation.SetApplicantID(v)
	return _c
}

// SetInstitution sets the "institution" field.
func (_c *EvaluationCreate) SetInstitution(v string) *EvaluationCreate {
	_c.mutation.SetInstitution(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *EvaluationCreate) SetLevel(v string) *EvaluationCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetGpa sets the "gpa" field.
func (_c *EvaluationCreate) SetGpa(v float64) *EvaluationCreate {
	_c.mutation.SetGpa(v)
	return _c
}

// SetNillableGpa sets the "gpa" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableGpa(v *float64) *EvaluationCreate {
	if v != nil {
		_c.SetGpa(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvaluationCreate) SetCreatedAt(v time.Time) *EvaluationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableCreatedAt(v *time.Time) *EvaluationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EvaluationCreate) SetUpdatedAt(v time.Time) *EvaluationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableUpdatedAt(v *time.Time) *EvaluationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvaluationCreate) SetID(v uuid.UUID) *EvaluationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableID(v *uuid.UUID) *EvaluationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetApplicant sets the "applicant" edge to the Applicant entity.
func (_c *EvaluationCreate) SetApplicant(v *Applicant) *EvaluationCreate {
	return _c.SetApplicantID(v.ID)
}

// AddCourseIDs adds the "courses" edge to the EvaluationCourse entity by IDs.
func (_c *EvaluationCreate) AddCourseIDs(ids ...uuid.UUID) *EvaluationCreate {
	_c.mutation.AddCourseIDs(ids...)
	return _c
}

// AddCourses adds the "courses" edges to the EvaluationCourse entity.
func (_c *EvaluationCreate) AddCourses(v ...*EvaluationCourse) *EvaluationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCourseIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *EvaluationCreate) AddJobIDs(ids ...uuid.UUID) *EvaluationCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *EvaluationCreate) AddJobs(v ...*ExtractJob) *EvaluationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the EvaluationMutation object of the builder.
func (_c *EvaluationCreate) Mutation() *EvaluationMutation {
	return _c.mutation
}

// Save creates the Evaluation in the database.
func (_c *EvaluationCreate) Save(ctx context.Context) (*Evaluation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationCreate) SaveX(ctx context.Context) *Evaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationCreate) defaults() {
	if _, ok := _c.mutation.Gpa(); !ok {
		v := evaluation.DefaultGpa
		_c.mutation.SetGpa(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evaluation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := evaluation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := evaluation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationCreate) check() error {
	if _, ok := _c.mutation.ApplicantID(); !ok {
		return &ValidationError{Name: "applicant_id", err: errors.New(`ent: missing required field "Evaluation.applicant_id"`)}
	}
	if _, ok := _c.mutation.Institution(); !ok {
		return &ValidationError{Name: "institution", err: errors.New(`ent: missing required field "Evaluation.institution"`)}
	}
	if v, ok := _c.mutation.Institution(); ok {
		if err := evaluation.InstitutionValidator(v); err != nil {
			return &ValidationError{Name: "institution", err: fmt.Errorf(`ent: validator failed for field "Evaluation.institution": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Evaluation.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := evaluation.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Evaluation.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Gpa(); !ok {
		return &ValidationError{Name: "gpa", err: errors.New(`ent: missing required field "Evaluation.gpa"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Evaluation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Evaluation.updated_at"`)}
	}
	if len(_c.mutation.ApplicantIDs()) == 0 {
		return &ValidationError{Name: "applicant", err: errors.New(`ent: missing required edge "Evaluation.applicant"`)}
	}
	return nil
}

func (_c *EvaluationCreate) sqlSave(ctx context.Context) (*Evaluation, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvaluationCreate) createSpec() (*Evaluation, *sqlgraph.CreateSpec) {
	var (
		_node = &Evaluation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluation.Table, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Institution(); ok {
		_spec.SetField(evaluation.FieldInstitution, field.TypeString, value)
		_node.Institution = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(evaluation.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Gpa(); ok {
		_spec.SetField(evaluation.FieldGpa, field.TypeFloat64, value)
		_node.Gpa = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evaluation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(evaluation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ApplicantIDs(); len(nodes) > 0 {
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
		_node.ApplicantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CoursesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EvaluationCreateBulk is the builder for creating many Evaluation entities in bulk.
type EvaluationCreateBulk struct {
	config
	err      error
	builders []*EvaluationCreate
}

// Save creates the Evaluation entities in the database.
func (_c *EvaluationCreateBulk) Save(ctx context.Context) ([]*Evaluation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Evaluation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EvaluationCreateBulk) SaveX(ctx context.Context) []*Evaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
