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
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/predicate"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/university"
	"github.com/google/uuid"
)

// UniversityUpdate is the builder for updating University entities.
type UniversityUpdate struct {
	config
	hooks    []Hook
	mutation *UniversityMutation
}

// Where appends a list predicates to the UniversityUpdate builder.
func (_u *UniversityUpdate) Where(ps ...predicate.University) *UniversityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetApplicantID sets the "applicant_id" field.
func (_u *UniversityUpdate) SetApplicantID(v uuid.UUID) *UniversityUpdate {
	_u.mutation.SetApplicantID(v)
	return _u
}

// SetNillableApplicantID sets the "applicant_id" field if the given value is not nil.
func (_u *UniversityUpdate) SetNillableApplicantID(v *uuid.UUID) *UniversityUpdate {
	if v != nil {
		_u.SetApplicantID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *UniversityUpdate) SetName(v string) *UniversityUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UniversityUpdate) SetNillableName(v *string) *UniversityUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProgram sets the "program" field.
func (_u *UniversityUpdate) SetProgram(v string) *UniversityUpdate {
	_u.mutation.SetProgram(v)
	return _u
}

// SetNillableProgram sets the "program" field if the given value is not nil.
func (_u *UniversityUpdate) SetNillableProgram(v *string) *UniversityUpdate {
	if v != nil {
		_u.SetProgram(*v)
	}
	return _u
}

// SetSemester sets the "semester" field.
func (_u *UniversityUpdate) SetSemester(v string) *UniversityUpdate {
	_u.mutation.SetSemester(v)
	return _u
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_u *UniversityUpdate) SetNillableSemester(v *string) *UniversityUpdate {
	if v != nil {
		_u.SetSemester(*v)
	}
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *UniversityUpdate) SetDeadline(v time.Time) *UniversityUpdate {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *UniversityUpdate) SetNillableDeadline(v *time.Time) *UniversityUpdate {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *UniversityUpdate) ClearDeadline() *UniversityUpdate {
	_u.mutation.ClearDeadline()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *UniversityUpdate) SetTimezone(v string) *UniversityUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *UniversityUpdate) SetNillableTimezone(v *string) *UniversityUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// ClearTimezone clears the value of the "timezone" field.
func (_u *UniversityUpdate) ClearTimezone() *UniversityUpdate {
	_u.mutation.ClearTimezone()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UniversityUpdate) SetStatus(v string) *UniversityUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UniversityUpdate) SetNillableStatus(v *string) *UniversityUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *UniversityUpdate) SetNotes(v string) *UniversityUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *UniversityUpdate) SetNillableNotes(v *string) *UniversityUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *UniversityUpdate) ClearNotes() *UniversityUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UniversityUpdate) SetCreatedAt(v time.Time) *UniversityUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UniversityUpdate) SetNillableCreatedAt(v *time.Time) *UniversityUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UniversityUpdate) SetUpdatedAt(v time.Time) *UniversityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetApplicant sets the "applicant" edge to the Applicant entity.
func (_u *UniversityUpdate) SetApplicant(v *Applicant) *UniversityUpdate {
	return _u.SetApplicantID(v.ID)
}

// Mutation returns the UniversityMutation object of the builder.
func (_u *UniversityUpdate) Mutation() *UniversityMutation {
	return _u.mutation
}

// ClearApplicant clears the "applicant" edge to the Applicant entity.
func (_u *UniversityUpdate) ClearApplicant() *UniversityUpdate {
	_u.mutation.ClearApplicant()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UniversityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UniversityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UniversityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UniversityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UniversityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := university.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UniversityUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := university.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "University.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Program(); ok {
		if err := university.ProgramValidator(v); err != nil {
			return &ValidationError{Name: "program", err: fmt.Errorf(`ent: validator failed for field "University.program": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Semester(); ok {
		if err := university.SemesterValidator(v); err != nil {
			return &ValidationError{Name: "semester", err: fmt.Errorf(`ent: validator failed for field "University.semester": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := university.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "University.status": %w`, err)}
		}
	}
	if _u.mutation.ApplicantCleared() && len(_u.mutation.ApplicantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "University.applicant"`)
	}
	return nil
}

func (_u *UniversityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(university.Table, university.Columns, sqlgraph.NewFieldSpec(university.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(university.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Program(); ok {
		_spec.SetField(university.FieldProgram, field.TypeString, value)
	}
	if value, ok := _u.mutation.Semester(); ok {
		_spec.SetField(university.FieldSemester, field.TypeString, value)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(university.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(university.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(university.FieldTimezone, field.TypeString, value)
	}
	if _u.mutation.TimezoneCleared() {
		_spec.ClearField(university.FieldTimezone, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(university.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(university.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(university.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(university.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(university.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{university.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UniversityUpdateOne is the builder for updating a single University entity.
type UniversityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UniversityMutation
}

// SetApplicantID sets the "applicant_id" field.
func (_u *UniversityUpdateOne) SetApplicantID(v uuid.UUID) *UniversityUpdateOne {
	_u.mutation.SetApplicantID(v)
	return _u
}

// SetNillableApplicantID sets the "applicant_id" field if the given value is not nil.
func (_u *UniversityUpdateOne) SetNillableApplicantID(v *uuid.UUID) *UniversityUpdateOne {
	if v != nil {
		_u.SetApplicantID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *UniversityUpdateOne) SetName(v string) *UniversityUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UniversityUpdateOne) SetNillableName(v *string) *UniversityUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProgram sets the "program" field.
func (_u *UniversityUpdateOne) SetProgram(v string) *UniversityUpdateOne {
	_u.mutation.SetProgram(v)
	return _u
}

// SetNillableProgram sets the "program" field if the given value is not nil.
func (_u *UniversityUpdateOne) SetNillableProgram(v *string) *UniversityUpdateOne {
	if v != nil {
		_u.SetProgram(*v)
	}
	return _u
}

// SetSemester sets the "semester" field.
func (_u *UniversityUpdateOne) SetSemester(v string) *UniversityUpdateOne {
	_u.mutation.SetSemester(v)
	return _u
}

// SetNillableSemester sets the "semester" field if the given value is not nil.
func (_u *UniversityUpdateOne) SetNillableSemester(v *string) *UniversityUpdateOne {
	if v != nil {
		_u.SetSemester(*v)
	}
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *UniversityUpdateOne) SetDeadline(v time.Time) *UniversityUpdateOne {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *UniversityUpdateOne) SetNillableDeadline(v *time.Time) *UniversityUpdateOne {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *UniversityUpdateOne) ClearDeadline() *UniversityUpdateOne {
	_u.mutation.ClearDeadline()
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *UniversityUpdateOne) SetTimezone(v string) *UniversityUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *UniversityUpdateOne) SetNillableTimezone(v *string) *UniversityUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// ClearTimezone clears the value of the "timezone" field.
func (_u *UniversityUpdateOne) ClearTimezone() *UniversityUpdateOne {
	_u.mutation.ClearTimezone()
	return _u
}

// SetStatus sets the "status" field.
func (_u *UniversityUpdateOne) SetStatus(v string) *UniversityUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UniversityUpdateOne) SetNillableStatus(v *string) *UniversityUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *UniversityUpdateOne) SetNotes(v string) *UniversityUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *UniversityUpdateOne) SetNillableNotes(v *string) *UniversityUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *UniversityUpdateOne) ClearNotes() *UniversityUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UniversityUpdateOne) SetCreatedAt(v time.Time) *UniversityUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UniversityUpdateOne) SetNillableCreatedAt(v *time.Time) *UniversityUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UniversityUpdateOne) SetUpdatedAt(v time.Time) *UniversityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetApplicant sets the "applicant" edge to the Applicant entity.
func (_u *UniversityUpdateOne) SetApplicant(v *Applicant) *UniversityUpdateOne {
	return _u.SetApplicantID(v.ID)
}

// Mutation returns the UniversityMutation object of the builder.
func (_u *UniversityUpdateOne) Mutation() *UniversityMutation {
	return _u.mutation
}

// ClearApplicant clears the "applicant" edge to the Applicant entity.
func (_u *UniversityUpdateOne) ClearApplicant() *UniversityUpdateOne {
	_u.mutation.ClearApplicant()
	return _u
}

// Where appends a list predicates to the UniversityUpdate builder.
func (_u *UniversityUpdateOne) Where(ps ...predicate.University) *UniversityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UniversityUpdateOne) Select(field string, fields ...string) *UniversityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated University entity.
func (_u *UniversityUpdateOne) Save(ctx context.Context) (*University, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UniversityUpdateOne) SaveX(ctx context.Context) *University {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UniversityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UniversityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UniversityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := university.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UniversityUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := university.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "University.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Program(); ok {
		if err := university.ProgramValidator(v); err != nil {
			return &ValidationError{Name: "program", err: fmt.Errorf(`ent: validator failed for field "University.program": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Semester(); ok {
		if err := university.SemesterValidator(v); err != nil {
			return &ValidationError{Name: "semester", err: fmt.Errorf(`ent: validator failed for field "University.semester": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := university.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "University.status": %w`, err)}
		}
	}
	if _u.mutation.ApplicantCleared() && len(_u.mutation.ApplicantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "University.applicant"`)
	}
	return nil
}

func (_u *UniversityUpdateOne) sqlSave(ctx context.Context) (_node *University, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(university.Table, university.Columns, sqlgraph.NewFieldSpec(university.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "University.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, university.FieldID)
		for _, f := range fields {
			if !university.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != university.FieldID {
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
		_spec.SetField(university.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Program(); ok {
		_spec.SetField(university.FieldProgram, field.TypeString, value)
	}
	if value, ok := _u.mutation.Semester(); ok {
		_spec.SetField(university.FieldSemester, field.TypeString, value)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(university.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(university.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(university.FieldTimezone, field.TypeString, value)
	}
	if _u.mutation.TimezoneCleared() {
		_spec.ClearField(university.FieldTimezone, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(university.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(university.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(university.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(university.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(university.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &University{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{university.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
