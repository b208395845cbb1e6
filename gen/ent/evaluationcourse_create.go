// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluation"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluationcourse"
	"github.com/google/uuid"
)

// EvaluationCourseCreate is the builder for creating a EvaluationCourse entity.
type EvaluationCourseCreate struct {
	config
	mutation *EvaluationCourseMutation
	hooks    []Hook
}

// SetEvaluationID sets the "evaluation_id" field.
func (_c *EvaluationCourseCreate) SetEvaluationID(v uuid.UUID) *EvaluationCourseCreate {
	_c.mutation.SetEvaluationID(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *EvaluationCourseCreate) SetCode(v string) *EvaluationCourseCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_c *EvaluationCourseCreate) SetNillableCode(v *string) *EvaluationCourseCreate {
	if v != nil {
		_c.SetCode(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *EvaluationCourseCreate) SetName(v string) *EvaluationCourseCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *EvaluationCourseCreate) SetGrade(v string) *EvaluationCourseCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_c *EvaluationCourseCreate) SetNillableGrade(v *string) *EvaluationCourseCreate {
	if v != nil {
		_c.SetGrade(*v)
	}
	return _c
}

// SetCreditHours sets the "credit_hours" field.
func (_c *EvaluationCourseCreate) SetCreditHours(v float64) *EvaluationCourseCreate {
	_c.mutation.SetCreditHours(v)
	return _c
}

// SetIncluded sets the "included" field.
func (_c *EvaluationCourseCreate) SetIncluded(v bool) *EvaluationCourseCreate {
	_c.mutation.SetIncluded(v)
	return _c
}

// SetNillableIncluded sets the "included" field if the given value is not nil.
func (_c *EvaluationCourseCreate) SetNillableIncluded(v *bool) *EvaluationCourseCreate {
	if v != nil {
		_c.SetIncluded(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *EvaluationCourseCreate) SetPosition(v int) *EvaluationCourseCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetID sets the "id" field.
func (_c *EvaluationCourseCreate) SetID(v uuid.UUID) *EvaluationCourseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EvaluationCourseCreate) SetNillableID(v *uuid.UUID) *EvaluationCourseCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEvaluation sets the "evaluation" edge to the Evaluation entity.
func (_c *EvaluationCourseCreate) SetEvaluation(v *Evaluation) *EvaluationCourseCreate {
	return _c.SetEvaluationID(v.ID)
}

// Mutation returns the EvaluationCourseMutation object of the builder.
func (_c *EvaluationCourseCreate) Mutation() *EvaluationCourseMutation {
	return _c.mutation
}

// Save creates the EvaluationCourse in the database.
func (_c *EvaluationCourseCreate) Save(ctx context.Context) (*EvaluationCourse, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationCourseCreate) SaveX(ctx context.Context) *EvaluationCourse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationCourseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationCourseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationCourseCreate) defaults() {
	if _, ok := _c.mutation.Included(); !ok {
		v := evaluationcourse.DefaultIncluded
		_c.mutation.SetIncluded(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := evaluationcourse.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationCourseCreate) check() error {
	if _, ok := _c.mutation.EvaluationID(); !ok {
		return &ValidationError{Name: "evaluation_id", err: errors.New(`ent: missing required field "EvaluationCourse.evaluation_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "EvaluationCourse.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := evaluationcourse.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EvaluationCourse.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreditHours(); !ok {
		return &ValidationError{Name: "credit_hours", err: errors.New(`ent: missing required field "EvaluationCourse.credit_hours"`)}
	}
	if v, ok := _c.mutation.CreditHours(); ok {
		if err := evaluationcourse.CreditHoursValidator(v); err != nil {
			return &ValidationError{Name: "credit_hours", err: fmt.Errorf(`ent: validator failed for field "EvaluationCourse.credit_hours": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Included(); !ok {
		return &ValidationError{Name: "included", err: errors.New(`ent: missing required field "EvaluationCourse.included"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "EvaluationCourse.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := evaluationcourse.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "EvaluationCourse.position": %w`, err)}
		}
	}
	if len(_c.mutation.EvaluationIDs()) == 0 {
		return &ValidationError{Name: "evaluation", err: errors.New(`ent: missing required edge "EvaluationCourse.evaluation"`)}
	}
	return nil
}

func (_c *EvaluationCourseCreate) sqlSave(ctx context.Context) (*EvaluationCourse, error) {
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

func (_c *EvaluationCourseCreate) createSpec() (*EvaluationCourse, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluationCourse{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluationcourse.Table, sqlgraph.NewFieldSpec(evaluationcourse.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(evaluationcourse.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(evaluationcourse.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(evaluationcourse.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.CreditHours(); ok {
		_spec.SetField(evaluationcourse.FieldCreditHours, field.TypeFloat64, value)
		_node.CreditHours = value
	}
	if value, ok := _c.mutation.Included(); ok {
		_spec.SetField(evaluationcourse.FieldIncluded, field.TypeBool, value)
		_node.Included = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(evaluationcourse.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := _c.mutation.EvaluationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluationcourse.EvaluationTable,
			Columns: []string{evaluationcourse.EvaluationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EvaluationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EvaluationCourseCreateBulk is the builder for creating many EvaluationCourse entities in bulk.
type EvaluationCourseCreateBulk struct {
	config
	err      error
	builders []*EvaluationCourseCreate
}

// Save creates the EvaluationCourse entities in the database.
func (_c *EvaluationCourseCreateBulk) Save(ctx context.Context) ([]*EvaluationCourse, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluationCourse, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationCourseMutation)
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
func (_c *EvaluationCourseCreateBulk) SaveX(ctx context.Context) []*EvaluationCourse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationCourseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationCourseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
