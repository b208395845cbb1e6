// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluation"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluationcourse"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/predicate"
	"github.com/google/uuid"
)

// EvaluationCourseUpdate is the builder for updating EvaluationCourse entities.
type EvaluationCourseUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationCourseMutation
}

// Where appends a list predicates to the EvaluationCourseUpdate builder.
func (_u *EvaluationCourseUpdate) Where(ps ...predicate.EvaluationCourse) *EvaluationCourseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEvaluationID sets the "evaluation_id" field.
func (_u *EvaluationCourseUpdate) SetEvaluationID(v uuid.UUID) *EvaluationCourseUpdate {
	_u.mutation.SetEvaluationID(v)
	return _u
}

// SetNillableEvaluationID sets the "evaluation_id" field if the given value is not nil.
func (_u *EvaluationCourseUpdate) SetNillableEvaluationID(v *uuid.UUID) *EvaluationCourseUpdate {
	if v != nil {
		_u.SetEvaluationID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *EvaluationCourseUpdate) SetCode(v string) *EvaluationCourseUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *EvaluationCourseUpdate) SetNillableCode(v *string) *EvaluationCourseUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// ClearCode clears the value of the "code" field.
func (_u *EvaluationCourseUpdate) ClearCode() *EvaluationCourseUpdate {
	_u.mutation.ClearCode()
	return _u
}

// SetName sets the "name" field.
func (_u *EvaluationCourseUpdate) SetName(v string) *EvaluationCourseUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EvaluationCourseUpdate) SetNillableName(v *string) *EvaluationCourseUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *EvaluationCourseUpdate) SetGrade(v string) *EvaluationCourseUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *EvaluationCourseUpdate) SetNillableGrade(v *string) *EvaluationCourseUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *EvaluationCourseUpdate) ClearGrade() *EvaluationCourseUpdate {
	_u.mutation.ClearGrade()
	return _u
}

// SetCreditHours sets the "credit_hours" field.
func (_u *EvaluationCourseUpdate) SetCreditHours(v float64) *EvaluationCourseUpdate {
	_u.mutation.ResetCreditHours()
	_u.mutation.SetCreditHours(v)
	return _u
}

// SetNillableCreditHours sets the "credit_hours" field if the given value is not nil.
func (_u *EvaluationCourseUpdate) SetNillableCreditHours(v *float64) *EvaluationCourseUpdate {
	if v != nil {
		_u.SetCreditHours(*v)
	}
	return _u
}

// AddCreditHours adds value to the "credit_hours" field.
func (_u *EvaluationCourseUpdate) AddCreditHours(v float64) *EvaluationCourseUpdate {
	_u.mutation.AddCreditHours(v)
	return _u
}

// SetIncluded sets the "included" field.
func (_u *EvaluationCourseUpdate) SetIncluded(v bool) *EvaluationCourseUpdate {
	_u.mutation.SetIncluded(v)
	return _u
}

// SetNillableIncluded sets the "included" field if the given value is not nil.
func (_u *EvaluationCourseUpdate) SetNillableIncluded(v *bool) *EvaluationCourseUpdate {
	if v != nil {
		_u.SetIncluded(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *EvaluationCourseUpdate) SetPosition(v int) *EvaluationCourseUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *EvaluationCourseUpdate) SetNillablePosition(v *int) *EvaluationCourseUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *EvaluationCourseUpdate) AddPosition(v int) *EvaluationCourseUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetEvaluation sets the "evaluation" edge to the Evaluation entity.
func (_u *EvaluationCourseUpdate) SetEvaluation(v *Evaluation) *EvaluationCourseUpdate {
	return _u.SetEvaluationID(v.ID)
}

// Mutation returns the EvaluationCourseMutation object of the builder.
func (_u *EvaluationCourseUpdate) Mutation() *EvaluationCourseMutation {
	return _u.mutation
}

// ClearEvaluation clears the "evaluation" edge to the Evaluation entity.
func (_u *EvaluationCourseUpdate) ClearEvaluation() *EvaluationCourseUpdate {
	_u.mutation.ClearEvaluation()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationCourseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationCourseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationCourseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationCourseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationCourseUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := evaluationcourse.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EvaluationCourse.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreditHours(); ok {
		if err := evaluationcourse.CreditHoursValidator(v); err != nil {
			return &ValidationError{Name: "credit_hours", err: fmt.Errorf(`ent: validator failed for field "EvaluationCourse.credit_hours": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := evaluationcourse.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "EvaluationCourse.position": %w`, err)}
		}
	}
	if _u.mutation.EvaluationCleared() && len(_u.mutation.EvaluationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationCourse.evaluation"`)
	}
	return nil
}

func (_u *EvaluationCourseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationcourse.Table, evaluationcourse.Columns, sqlgraph.NewFieldSpec(evaluationcourse.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(evaluationcourse.FieldCode, field.TypeString, value)
	}
	if _u.mutation.CodeCleared() {
		_spec.ClearField(evaluationcourse.FieldCode, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(evaluationcourse.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(evaluationcourse.FieldGrade, field.TypeString, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(evaluationcourse.FieldGrade, field.TypeString)
	}
	if value, ok := _u.mutation.CreditHours(); ok {
		_spec.SetField(evaluationcourse.FieldCreditHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCreditHours(); ok {
		_spec.AddField(evaluationcourse.FieldCreditHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Included(); ok {
		_spec.SetField(evaluationcourse.FieldIncluded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(evaluationcourse.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(evaluationcourse.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.EvaluationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationcourse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationCourseUpdateOne is the builder for updating a single EvaluationCourse entity.
type EvaluationCourseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationCourseMutation
}

// SetEvaluationID sets the "evaluation_id" field.
func (_u *EvaluationCourseUpdateOne) SetEvaluationID(v uuid.UUID) *EvaluationCourseUpdateOne {
	_u.mutation.SetEvaluationID(v)
	return _u
}

// SetNillableEvaluationID sets the "evaluation_id" field if the given value is not nil.
func (_u *EvaluationCourseUpdateOne) SetNillableEvaluationID(v *uuid.UUID) *EvaluationCourseUpdateOne {
	if v != nil {
		_u.SetEvaluationID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *EvaluationCourseUpdateOne) SetCode(v string) *EvaluationCourseUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *EvaluationCourseUpdateOne) SetNillableCode(v *string) *EvaluationCourseUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// ClearCode clears the value of the "code" field.
func (_u *EvaluationCourseUpdateOne) ClearCode() *EvaluationCourseUpdateOne {
	_u.mutation.ClearCode()
	return _u
}

// SetName sets the "name" field.
func (_u *EvaluationCourseUpdateOne) SetName(v string) *EvaluationCourseUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EvaluationCourseUpdateOne) SetNillableName(v *string) *EvaluationCourseUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *EvaluationCourseUpdateOne) SetGrade(v string) *EvaluationCourseUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *EvaluationCourseUpdateOne) SetNillableGrade(v *string) *EvaluationCourseUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *EvaluationCourseUpdateOne) ClearGrade() *EvaluationCourseUpdateOne {
	_u.mutation.ClearGrade()
	return _u
}

// SetCreditHours sets the "credit_hours" field.
func (_u *EvaluationCourseUpdateOne) SetCreditHours(v float64) *EvaluationCourseUpdateOne {
	_u.mutation.ResetCreditHours()
	_u.mutation.SetCreditHours(v)
	return _u
}

// SetNillableCreditHours sets the "credit_hours" field if the given value is not nil.
func (_u *EvaluationCourseUpdateOne) SetNillableCreditHours(v *float64) *EvaluationCourseUpdateOne {
	if v != nil {
		_u.SetCreditHours(*v)
	}
	return _u
}

// AddCreditHours adds value to the "credit_hours" field.
func (_u *EvaluationCourseUpdateOne) AddCreditHours(v float64) *EvaluationCourseUpdateOne {
	_u.mutation.AddCreditHours(v)
	return _u
}

// SetIncluded sets the "included" field.
func (_u *EvaluationCourseUpdateOne) SetIncluded(v bool) *EvaluationCourseUpdateOne {
	_u.mutation.SetIncluded(v)
	return _u
}

// SetNillableIncluded sets the "included" field if the given value is not nil.
func (_u *EvaluationCourseUpdateOne) SetNillableIncluded(v *bool) *EvaluationCourseUpdateOne {
	if v != nil {
		_u.SetIncluded(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *EvaluationCourseUpdateOne) SetPosition(v int) *EvaluationCourseUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *EvaluationCourseUpdateOne) SetNillablePosition(v *int) *EvaluationCourseUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *EvaluationCourseUpdateOne) AddPosition(v int) *EvaluationCourseUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetEvaluation sets the "evaluation" edge to the Evaluation entity.
func (_u *EvaluationCourseUpdateOne) SetEvaluation(v *Evaluation) *EvaluationCourseUpdateOne {
	return _u.SetEvaluationID(v.ID)
}

// Mutation returns the EvaluationCourseMutation object of the builder.
func (_u *EvaluationCourseUpdateOne) Mutation() *EvaluationCourseMutation {
	return _u.mutation
}

// ClearEvaluation clears the "evaluation" edge to the Evaluation entity.
func (_u *EvaluationCourseUpdateOne) ClearEvaluation() *EvaluationCourseUpdateOne {
	_u.mutation.ClearEvaluation()
	return _u
}

// Where appends a list predicates to the EvaluationCourseUpdate builder.
func (_u *EvaluationCourseUpdateOne) Where(ps ...predicate.EvaluationCourse) *EvaluationCourseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationCourseUpdateOne) Select(field string, fields ...string) *EvaluationCourseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluationCourse entity.
func (_u *EvaluationCourseUpdateOne) Save(ctx context.Context) (*EvaluationCourse, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationCourseUpdateOne) SaveX(ctx context.Context) *EvaluationCourse {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationCourseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationCourseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationCourseUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := evaluationcourse.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EvaluationCourse.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreditHours(); ok {
		if err := evaluationcourse.CreditHoursValidator(v); err != nil {
			return &ValidationError{Name: "credit_hours", err: fmt.Errorf(`ent: validator failed for field "EvaluationCourse.credit_hours": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := evaluationcourse.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "EvaluationCourse.position": %w`, err)}
		}
	}
	if _u.mutation.EvaluationCleared() && len(_u.mutation.EvaluationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationCourse.evaluation"`)
	}
	return nil
}

func (_u *EvaluationCourseUpdateOne) sqlSave(ctx context.Context) (_node *EvaluationCourse, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationcourse.Table, evaluationcourse.Columns, sqlgraph.NewFieldSpec(evaluationcourse.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluationCourse.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationcourse.FieldID)
		for _, f := range fields {
			if !evaluationcourse.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluationcourse.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(evaluationcourse.FieldCode, field.TypeString, value)
	}
	if _u.mutation.CodeCleared() {
		_spec.ClearField(evaluationcourse.FieldCode, field.TypeString)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(evaluationcourse.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(evaluationcourse.FieldGrade, field.TypeString, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(evaluationcourse.FieldGrade, field.TypeString)
	}
	if value, ok := _u.mutation.CreditHours(); ok {
		_spec.SetField(evaluationcourse.FieldCreditHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCreditHours(); ok {
		_spec.AddField(evaluationcourse.FieldCreditHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Included(); ok {
		_spec.SetField(evaluationcourse.FieldIncluded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(evaluationcourse.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(evaluationcourse.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.EvaluationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EvaluationCourse{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationcourse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
