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
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/university"
	"github.com/google/uuid"
)

// UniversityCreate is the builder for creating a University entity.
type UniversityCreate struct {
	config
	mutation *UniversityMutation
	hooks    []Hook
}

// SetApplicantID sets the "applicant_id" field.
func (_c *UniversityCreate) SetApplicantID(v uuid.UUID) *UniversityCreate {
	_c.mutation.SetApplicantID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *UniversityCreate) SetName(v string) *UniversityCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetProgram sets the "program" field.
func (_c *UniversityCreate) SetProgram(v string) *UniversityCreate {
	_c.mutation.SetProgram(v)
	return _c
}

// SetSemester sets the "semester" field.
func (_c *UniversityCreate) SetSemester(v string) *UniversityCreate {
	_c.mutation.SetSemester(v)
	return _c
}

// SetDeadline sets the "deadline" field.
func (_c *UniversityCreate) SetDeadline(v time.Time) *UniversityCreate {
	_c.mutation.SetDeadline(v)
	return _c
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_c *UniversityCreate) SetNillableDeadline(v *time.Time) *UniversityCreate {
	if v != nil {
		_c.SetDeadline(*v)
	}
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *UniversityCreate) SetTimezone(v string) *UniversityCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *UniversityCreate) SetNillableTimezone(v *string) *UniversityCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *UniversityCreate) SetStatus(v string) *UniversityCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UniversityCreate) SetNillableStatus(v *string) *UniversityCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *UniversityCreate) SetNotes(v string) *UniversityCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *UniversityCreate) SetNillableNotes(v *string) *UniversityCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UniversityCreate) SetCreatedAt(v time.Time) *UniversityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UniversityCreate) SetNillableCreatedAt(v *time.Time) *UniversityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UniversityCreate) SetUpdatedAt(v time.Time) *UniversityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UniversityCreate) SetNillableUpdatedAt(v *time.Time) *UniversityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UniversityCreate) SetID(v uuid.UUID) *UniversityCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UniversityCreate) SetNillableID(v *uuid.UUID) *UniversityCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetApplicant sets the "applicant" edge to the Applicant entity.
func (_c *UniversityCreate) SetApplicant(v *Applicant) *UniversityCreate {
	return _c.SetApplicantID(v.ID)
}

// Mutation returns the UniversityMutation object of the builder.
func (_c *UniversityCreate) Mutation() *UniversityMutation {
	return _c.mutation
}

// Save creates the University in the database.
func (_c *UniversityCreate) Save(ctx context.Context) (*University, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UniversityCreate) SaveX(ctx context.Context) *University {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UniversityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UniversityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UniversityCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := university.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := university.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := university.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := university.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UniversityCreate) check() error {
	if _, ok := _c.mutation.ApplicantID(); !ok {
		return &ValidationError{Name: "applicant_id", err: errors.New(`ent: missing required field "University.applicant_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "University.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := university.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "University.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Program(); !ok {
		return &ValidationError{Name: "program", err: errors.New(`ent: missing required field "University.program"`)}
	}
	if v, ok := _c.mutation.Program(); ok {
		if err := university.ProgramValidator(v); err != nil {
			return &ValidationError{Name: "program", err: fmt.Errorf(`ent: validator failed for field "University.program": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Semester(); !ok {
		return &ValidationError{Name: "semester", err: errors.New(`ent: missing required field "University.semester"`)}
	}
	if v, ok := _c.mutation.Semester(); ok {
		if err := university.SemesterValidator(v); err != nil {
			return &ValidationError{Name: "semester", err: fmt.Errorf(`ent: validator failed for field "University.semester": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "University.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := university.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "University.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "University.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "University.updated_at"`)}
	}
	if len(_c.mutation.ApplicantIDs()) == 0 {
		return &ValidationError{Name: "applicant", err: errors.New(`ent: missing required edge "University.applicant"`)}
	}
	return nil
}

func (_c *UniversityCreate) sqlSave(ctx context.Context) (*University, error) {
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

func (_c *UniversityCreate) createSpec() (*University, *sqlgraph.CreateSpec) {
	var (
		_node = &University{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(university.Table, sqlgraph.NewFieldSpec(university.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(university.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Program(); ok {
		_spec.SetField(university.FieldProgram, field.TypeString, value)
		_node.Program = value
	}
	if value, ok := _c.mutation.Semester(); ok {
		_spec.SetField(university.FieldSemester, field.TypeString, value)
		_node.Semester = value
	}
	if value, ok := _c.mutation.Deadline(); ok {
		_spec.SetField(university.FieldDeadline, field.TypeTime, value)
		_node.Deadline = &value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(university.FieldTimezone, field.TypeString, value)
		_node.Timezone = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(university.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(university.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(university.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(university.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ApplicantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   university.ApplicantTable,
			Columns: []string{university.ApplicantColumn},
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
	return _node, _spec
}

// UniversityCreateBulk is the builder for creating many University entities in bulk.
type UniversityCreateBulk struct {
	config
	err      error
	builders []*UniversityCreate
}

// Save creates the University entities in the database.
func (_c *UniversityCreateBulk) Save(ctx context.Context) ([]*University, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*University, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UniversityMutation)
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
func (_c *UniversityCreateBulk) SaveX(ctx context.Context) []*University {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UniversityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UniversityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
