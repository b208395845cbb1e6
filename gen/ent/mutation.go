// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/applicant"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluation"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluationcourse"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/extractjob"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/predicate"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/transcriptfile"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/university"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApplicant        = "Applicant"
	TypeEvaluation       = "Evaluation"
	TypeEvaluationCourse = "EvaluationCourse"
	TypeExtractJob       = "ExtractJob"
	TypeTranscriptFile   = "TranscriptFile"
	TypeUniversity       = "University"
)

// ApplicantMutation represents an operation that mutates the Applicant nodes in the graph.
type ApplicantMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	name                *string
	email               *string
	target_level        *string
	research_areas      *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	universities        map[uuid.UUID]struct{}
	removeduniversities map[uuid.UUID]struct{}
	cleareduniversities bool
	evaluations         map[uuid.UUID]struct{}
	removedevaluations  map[uuid.UUID]struct{}
	clearedevaluations  bool
	files               map[uuid.UUID]struct{}
	removedfiles        map[uuid.UUID]struct{}
	clearedfiles        bool
	jobs                map[uuid.UUID]struct{}
	removedjobs         map[uuid.UUID]struct{}
	clearedjobs         bool
	done                bool
	oldValue            func(context.Context) (*Applicant, error)
	predicates          []predicate.Applicant
}

var _ ent.Mutation = (*ApplicantMutation)(nil)

// applicantOption allows management of the mutation configuration using functional options.
type applicantOption func(*ApplicantMutation)

// newApplicantMutation creates new mutation for the Applicant entity.
func newApplicantMutation(c config, op Op, opts ...applicantOption) *ApplicantMutation {
	m := &ApplicantMutation{
		config:        c,
		op:            op,
		typ:           TypeApplicant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApplicantID sets the ID field of the mutation.
func withApplicantID(id uuid.UUID) applicantOption {
	return func(m *ApplicantMutation) {
		var (
			err   error
			once  sync.Once
			value *Applicant
		)
		m.oldValue = func(ctx context.Context) (*Applicant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Applicant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApplicant sets the old Applicant of the mutation.
func withApplicant(node *Applicant) applicantOption {
	return func(m *ApplicantMutation) {
		m.oldValue = func(context.Context) (*Applicant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApplicantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApplicantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Applicant entities.
func (m *ApplicantMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApplicantMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApplicantMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Applicant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ApplicantMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ApplicantMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Applicant entity.
// If the Applicant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ApplicantMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *ApplicantMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ApplicantMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Applicant entity.
// If the Applicant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *ApplicantMutation) ResetEmail() {
	m.email = nil
}

// SetTargetLevel sets the "target_level" field.
func (m *ApplicantMutation) SetTargetLevel(s string) {
	m.target_level = &s
}

// TargetLevel returns the value of the "target_level" field in the mutation.
func (m *ApplicantMutation) TargetLevel() (r string, exists bool) {
	v := m.target_level
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetLevel returns the old "target_level" field's value of the Applicant entity.
// If the Applicant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantMutation) OldTargetLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetLevel: %w", err)
	}
	return oldValue.TargetLevel, nil
}

// ResetTargetLevel resets all changes to the "target_level" field.
func (m *ApplicantMutation) ResetTargetLevel() {
	m.target_level = nil
}

// SetResearchAreas sets the "research_areas" field.
func (m *ApplicantMutation) SetResearchAreas(s string) {
	m.research_areas = &s
}

// ResearchAreas returns the value of the "research_areas" field in the mutation.
func (m *ApplicantMutation) ResearchAreas() (r string, exists bool) {
	v := m.research_areas
	if v == nil {
		return
	}
	return *v, true
}

// OldResearchAreas returns the old "research_areas" field's value of the Applicant entity.
// If the Applicant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantMutation) OldResearchAreas(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResearchAreas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResearchAreas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResearchAreas: %w", err)
	}
	return oldValue.ResearchAreas, nil
}

// ClearResearchAreas clears the value of the "research_areas" field.
func (m *ApplicantMutation) ClearResearchAreas() {
	m.research_areas = nil
	m.clearedFields[applicant.FieldResearchAreas] = struct{}{}
}

// ResearchAreasCleared returns if the "research_areas" field was cleared in this mutation.
func (m *ApplicantMutation) ResearchAreasCleared() bool {
	_, ok := m.clearedFields[applicant.FieldResearchAreas]
	return ok
}

// ResetResearchAreas resets all changes to the "research_areas" field.
func (m *ApplicantMutation) ResetResearchAreas() {
	m.research_areas = nil
	delete(m.clearedFields, applicant.FieldResearchAreas)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApplicantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApplicantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Applicant entity.
// If the Applicant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApplicantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ApplicantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ApplicantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Applicant entity.
// If the Applicant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ApplicantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddUniversityIDs adds the "universities" edge to the University entity by ids.
func (m *ApplicantMutation) AddUniversityIDs(ids ...uuid.UUID) {
	if m.universities == nil {
		m.universities = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.universities[ids[i]] = struct{}{}
	}
}

// ClearUniversities clears the "universities" edge to the University entity.
func (m *ApplicantMutation) ClearUniversities() {
	m.cleareduniversities = true
}

// UniversitiesCleared reports if the "universities" edge to the University entity was cleared.
func (m *ApplicantMutation) UniversitiesCleared() bool {
	return m.cleareduniversities
}

// RemoveUniversityIDs removes the "universities" edge to the University entity by IDs.
func (m *ApplicantMutation) RemoveUniversityIDs(ids ...uuid.UUID) {
	if m.removeduniversities == nil {
		m.removeduniversities = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.universities, ids[i])
		m.removeduniversities[ids[i]] = struct{}{}
	}
}

// RemovedUniversities returns the removed IDs of the "universities" edge to the University entity.
func (m *ApplicantMutation) RemovedUniversitiesIDs() (ids []uuid.UUID) {
	for id := range m.removeduniversities {
		ids = append(ids, id)
	}
	return
}

// UniversitiesIDs returns the "universities" edge IDs in the mutation.
func (m *ApplicantMutation) UniversitiesIDs() (ids []uuid.UUID) {
	for id := range m.universities {
		ids = append(ids, id)
	}
	return
}

// ResetUniversities resets all changes to the "universities" edge.
func (m *ApplicantMutation) ResetUniversities() {
	m.universities = nil
	m.cleareduniversities = false
	m.removeduniversities = nil
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by ids.
func (m *ApplicantMutation) AddEvaluationIDs(ids ...uuid.UUID) {
	if m.evaluations == nil {
		m.evaluations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.evaluations[ids[i]] = struct{}{}
	}
}

// ClearEvaluations clears the "evaluations" edge to the Evaluation entity.
func (m *ApplicantMutation) ClearEvaluations() {
	m.clearedevaluations = true
}

// EvaluationsCleared reports if the "evaluations" edge to the Evaluation entity was cleared.
func (m *ApplicantMutation) EvaluationsCleared() bool {
	return m.clearedevaluations
}

// RemoveEvaluationIDs removes the "evaluations" edge to the Evaluation entity by IDs.
func (m *ApplicantMutation) RemoveEvaluationIDs(ids ...uuid.UUID) {
	if m.removedevaluations == nil {
		m.removedevaluations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.evaluations, ids[i])
		m.removedevaluations[ids[i]] = struct{}{}
	}
}

// RemovedEvaluations returns the removed IDs of the "evaluations" edge to the Evaluation entity.
func (m *ApplicantMutation) RemovedEvaluationsIDs() (ids []uuid.UUID) {
	for id := range m.removedevaluations {
		ids = append(ids, id)
	}
	return
}

// EvaluationsIDs returns the "evaluations" edge IDs in the mutation.
func (m *ApplicantMutation) EvaluationsIDs() (ids []uuid.UUID) {
	for id := range m.evaluations {
		ids = append(ids, id)
	}
	return
}

// ResetEvaluations resets all changes to the "evaluations" edge.
func (m *ApplicantMutation) ResetEvaluations() {
	m.evaluations = nil
	m.clearedevaluations = false
	m.removedevaluations = nil
}

// AddFileIDs adds the "files" edge to the TranscriptFile entity by ids.
func (m *ApplicantMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the TranscriptFile entity.
func (m *ApplicantMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the TranscriptFile entity was cleared.
func (m *ApplicantMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the TranscriptFile entity by IDs.
func (m *ApplicantMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the TranscriptFile entity.
func (m *ApplicantMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *ApplicantMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *ApplicantMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *ApplicantMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *ApplicantMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *ApplicantMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *ApplicantMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *ApplicantMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ApplicantMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ApplicantMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the ApplicantMutation builder.
func (m *ApplicantMutation) Where(ps ...predicate.Applicant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApplicantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApplicantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Applicant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApplicantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApplicantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Applicant).
func (m *ApplicantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApplicantMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, applicant.FieldName)
	}
	if m.email != nil {
		fields = append(fields, applicant.FieldEmail)
	}
	if m.target_level != nil {
		fields = append(fields, applicant.FieldTargetLevel)
	}
	if m.research_areas != nil {
		fields = append(fields, applicant.FieldResearchAreas)
	}
	if m.created_at != nil {
		fields = append(fields, applicant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, applicant.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApplicantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case applicant.FieldName:
		return m.Name()
	case applicant.FieldEmail:
		return m.Email()
	case applicant.FieldTargetLevel:
		return m.TargetLevel()
	case applicant.FieldResearchAreas:
		return m.ResearchAreas()
	case applicant.FieldCreatedAt:
		return m.CreatedAt()
	case applicant.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApplicantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case applicant.FieldName:
		return m.OldName(ctx)
	case applicant.FieldEmail:
		return m.OldEmail(ctx)
	case applicant.FieldTargetLevel:
		return m.OldTargetLevel(ctx)
	case applicant.FieldResearchAreas:
		return m.OldResearchAreas(ctx)
	case applicant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case applicant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Applicant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case applicant.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case applicant.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case applicant.FieldTargetLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetLevel(v)
		return nil
	case applicant.FieldResearchAreas:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResearchAreas(v)
		return nil
	case applicant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case applicant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Applicant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApplicantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApplicantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Applicant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApplicantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(applicant.FieldResearchAreas) {
		fields = append(fields, applicant.FieldResearchAreas)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApplicantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApplicantMutation) ClearField(name string) error {
	switch name {
	case applicant.FieldResearchAreas:
		m.ClearResearchAreas()
		return nil
	}
	return fmt.Errorf("unknown Applicant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApplicantMutation) ResetField(name string) error {
	switch name {
	case applicant.FieldName:
		m.ResetName()
		return nil
	case applicant.FieldEmail:
		m.ResetEmail()
		return nil
	case applicant.FieldTargetLevel:
		m.ResetTargetLevel()
		return nil
	case applicant.FieldResearchAreas:
		m.ResetResearchAreas()
		return nil
	case applicant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case applicant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Applicant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApplicantMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.universities != nil {
		edges = append(edges, applicant.EdgeUniversities)
	}
	if m.evaluations != nil {
		edges = append(edges, applicant.EdgeEvaluations)
	}
	if m.files != nil {
		edges = append(edges, applicant.EdgeFiles)
	}
	if m.jobs != nil {
		edges = append(edges, applicant.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApplicantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case applicant.EdgeUniversities:
		ids := make([]ent.Value, 0, len(m.universities))
		for id := range m.universities {
			ids = append(ids, id)
		}
		return ids
	case applicant.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.evaluations))
		for id := range m.evaluations {
			ids = append(ids, id)
		}
		return ids
	case applicant.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	case applicant.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApplicantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removeduniversities != nil {
		edges = append(edges, applicant.EdgeUniversities)
	}
	if m.removedevaluations != nil {
		edges = append(edges, applicant.EdgeEvaluations)
	}
	if m.removedfiles != nil {
		edges = append(edges, applicant.EdgeFiles)
	}
	if m.removedjobs != nil {
		edges = append(edges, applicant.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApplicantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case applicant.EdgeUniversities:
		ids := make([]ent.Value, 0, len(m.removeduniversities))
		for id := range m.removeduniversities {
			ids = append(ids, id)
		}
		return ids
	case applicant.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.removedevaluations))
		for id := range m.removedevaluations {
			ids = append(ids, id)
		}
		return ids
	case applicant.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	case applicant.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApplicantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.cleareduniversities {
		edges = append(edges, applicant.EdgeUniversities)
	}
	if m.clearedevaluations {
		edges = append(edges, applicant.EdgeEvaluations)
	}
	if m.clearedfiles {
		edges = append(edges, applicant.EdgeFiles)
	}
	if m.clearedjobs {
		edges = append(edges, applicant.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApplicantMutation) EdgeCleared(name string) bool {
	switch name {
	case applicant.EdgeUniversities:
		return m.cleareduniversities
	case applicant.EdgeEvaluations:
		return m.clearedevaluations
	case applicant.EdgeFiles:
		return m.clearedfiles
	case applicant.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApplicantMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Applicant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApplicantMutation) ResetEdge(name string) error {
	switch name {
	case applicant.EdgeUniversities:
		m.ResetUniversities()
		return nil
	case applicant.EdgeEvaluations:
		m.ResetEvaluations()
		return nil
	case applicant.EdgeFiles:
		m.ResetFiles()
		return nil
	case applicant.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Applicant edge %s", name)
}

// EvaluationMutation represents an operation that mutates the Evaluation nodes in the graph.
type EvaluationMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	institution      *string
	level            *string
	gpa              *float64
	addgpa           *float64
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	applicant        *uuid.UUID
	clearedapplicant bool
	courses          map[uuid.UUID]struct{}
	removedcourses   map[uuid.UUID]struct{}
	clearedcourses   bool
	jobs             map[uuid.UUID]struct{}
	removedjobs      map[uuid.UUID]struct{}
	clearedjobs      bool
	done             bool
	oldValue         func(context.Context) (*Evaluation, error)
	predicates       []predicate.Evaluation
}

var _ ent.Mutation = (*EvaluationMutation)(nil)

// evaluationOption allows management of the mutation configuration using functional options.
type evaluationOption func(*EvaluationMutation)

// newEvaluationMutation creates new mutation for the Evaluation entity.
func newEvaluationMutation(c config, op Op, opts ...evaluationOption) *EvaluationMutation {
	m := &EvaluationMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationID sets the ID field of the mutation.
func withEvaluationID(id uuid.UUID) evaluationOption {
	return func(m *EvaluationMutation) {
		var (
			err   error
			once  sync.Once
			value *Evaluation
		)
		m.oldValue = func(ctx context.Context) (*Evaluation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Evaluation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluation sets the old Evaluation of the mutation.
func withEvaluation(node *Evaluation) evaluationOption {
	return func(m *EvaluationMutation) {
		m.oldValue = func(context.Context) (*Evaluation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Evaluation entities.
func (m *EvaluationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Evaluation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetApplicantID sets the "applicant_id" field.
func (m *EvaluationMutation) SetApplicantID(u uuid.UUID) {
	m.applicant = &u
}

// ApplicantID returns the value of the "applicant_id" field in the mutation.
func (m *EvaluationMutation) ApplicantID() (r uuid.UUID, exists bool) {
	v := m.applicant
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicantID returns the old "applicant_id" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldApplicantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicantID: %w", err)
	}
	return oldValue.ApplicantID, nil
}

// ResetApplicantID resets all changes to the "applicant_id" field.
func (m *EvaluationMutation) ResetApplicantID() {
	m.applicant = nil
}

// SetInstitution sets the "institution" field.
func (m *EvaluationMutation) SetInstitution(s string) {
	m.institution = &s
}

// Institution returns the value of the "institution" field in the mutation.
func (m *EvaluationMutation) Institution() (r string, exists bool) {
	v := m.institution
	if v == nil {
		return
	}
	return *v, true
}

// OldInstitution returns the old "institution" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldInstitution(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstitution is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstitution requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstitution: %w", err)
	}
	return oldValue.Institution, nil
}

// ResetInstitution resets all changes to the "institution" field.
func (m *EvaluationMutation) ResetInstitution() {
	m.institution = nil
}

// SetLevel sets the "level" field.
func (m *EvaluationMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *EvaluationMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *EvaluationMutation) ResetLevel() {
	m.level = nil
}

// SetGpa sets the "gpa" field.
func (m *EvaluationMutation) SetGpa(f float64) {
	m.gpa = &f
	m.addgpa = nil
}

// Gpa returns the value of the "gpa" field in the mutation.
func (m *EvaluationMutation) Gpa() (r float64, exists bool) {
	v := m.gpa
	if v == nil {
		return
	}
	return *v, true
}

// OldGpa returns the old "gpa" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldGpa(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGpa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGpa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGpa: %w", err)
	}
	return oldValue.Gpa, nil
}

// AddGpa adds f to the "gpa" field.
func (m *EvaluationMutation) AddGpa(f float64) {
	if m.addgpa != nil {
		*m.addgpa += f
	} else {
		m.addgpa = &f
	}
}

// AddedGpa returns the value that was added to the "gpa" field in this mutation.
func (m *EvaluationMutation) AddedGpa() (r float64, exists bool) {
	v := m.addgpa
	if v == nil {
		return
	}
	return *v, true
}

// ResetGpa resets all changes to the "gpa" field.
func (m *EvaluationMutation) ResetGpa() {
	m.gpa = nil
	m.addgpa = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EvaluationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvaluationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvaluationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EvaluationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EvaluationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EvaluationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearApplicant clears the "applicant" edge to the Applicant entity.
func (m *EvaluationMutation) ClearApplicant() {
	m.clearedapplicant = true
	m.clearedFields[evaluation.FieldApplicantID] = struct{}{}
}

// ApplicantCleared reports if the "applicant" edge to the Applicant entity was cleared.
func (m *EvaluationMutation) ApplicantCleared() bool {
	return m.clearedapplicant
}

// ApplicantIDs returns the "applicant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicantID instead. It exists only for internal usage by the builders.
func (m *EvaluationMutation) ApplicantIDs() (ids []uuid.UUID) {
	if id := m.applicant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplicant resets all changes to the "applicant" edge.
func (m *EvaluationMutation) ResetApplicant() {
	m.applicant = nil
	m.clearedapplicant = false
}

// AddCourseIDs adds the "courses" edge to the EvaluationCourse entity by ids.
func (m *EvaluationMutation) AddCourseIDs(ids ...uuid.UUID) {
	if m.courses == nil {
		m.courses = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.courses[ids[i]] = struct{}{}
	}
}

// ClearCourses clears the "courses" edge to the EvaluationCourse entity.
func (m *EvaluationMutation) ClearCourses() {
	m.clearedcourses = true
}

// CoursesCleared reports if the "courses" edge to the EvaluationCourse entity was cleared.
func (m *EvaluationMutation) CoursesCleared() bool {
	return m.clearedcourses
}

// RemoveCourseIDs removes the "courses" edge to the EvaluationCourse entity by IDs.
func (m *EvaluationMutation) RemoveCourseIDs(ids ...uuid.UUID) {
	if m.removedcourses == nil {
		m.removedcourses = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.courses, ids[i])
		m.removedcourses[ids[i]] = struct{}{}
	}
}

// RemovedCourses returns the removed IDs of the "courses" edge to the EvaluationCourse entity.
func (m *EvaluationMutation) RemovedCoursesIDs() (ids []uuid.UUID) {
	for id := range m.removedcourses {
		ids = append(ids, id)
	}
	return
}

// CoursesIDs returns the "courses" edge IDs in the mutation.
func (m *EvaluationMutation) CoursesIDs() (ids []uuid.UUID) {
	for id := range m.courses {
		ids = append(ids, id)
	}
	return
}

// ResetCourses resets all changes to the "courses" edge.
func (m *EvaluationMutation) ResetCourses() {
	m.courses = nil
	m.clearedcourses = false
	m.removedcourses = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *EvaluationMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *EvaluationMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *EvaluationMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *EvaluationMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *EvaluationMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *EvaluationMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *EvaluationMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the EvaluationMutation builder.
func (m *EvaluationMutation) Where(ps ...predicate.Evaluation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Evaluation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Evaluation).
func (m *EvaluationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.applicant != nil {
		fields = append(fields, evaluation.FieldApplicantID)
	}
	if m.institution != nil {
		fields = append(fields, evaluation.FieldInstitution)
	}
	if m.level != nil {
		fields = append(fields, evaluation.FieldLevel)
	}
	if m.gpa != nil {
		fields = append(fields, evaluation.FieldGpa)
	}
	if m.created_at != nil {
		fields = append(fields, evaluation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, evaluation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluation.FieldApplicantID:
		return m.ApplicantID()
	case evaluation.FieldInstitution:
		return m.Institution()
	case evaluation.FieldLevel:
		return m.Level()
	case evaluation.FieldGpa:
		return m.Gpa()
	case evaluation.FieldCreatedAt:
		return m.CreatedAt()
	case evaluation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluation.FieldApplicantID:
		return m.OldApplicantID(ctx)
	case evaluation.FieldInstitution:
		return m.OldInstitution(ctx)
	case evaluation.FieldLevel:
		return m.OldLevel(ctx)
	case evaluation.FieldGpa:
		return m.OldGpa(ctx)
	case evaluation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case evaluation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Evaluation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluation.FieldApplicantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicantID(v)
		return nil
	case evaluation.FieldInstitution:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstitution(v)
		return nil
	case evaluation.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case evaluation.FieldGpa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGpa(v)
		return nil
	case evaluation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case evaluation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Evaluation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationMutation) AddedFields() []string {
	var fields []string
	if m.addgpa != nil {
		fields = append(fields, evaluation.FieldGpa)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evaluation.FieldGpa:
		return m.AddedGpa()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evaluation.FieldGpa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGpa(v)
		return nil
	}
	return fmt.Errorf("unknown Evaluation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Evaluation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationMutation) ResetField(name string) error {
	switch name {
	case evaluation.FieldApplicantID:
		m.ResetApplicantID()
		return nil
	case evaluation.FieldInstitution:
		m.ResetInstitution()
		return nil
	case evaluation.FieldLevel:
		m.ResetLevel()
		return nil
	case evaluation.FieldGpa:
		m.ResetGpa()
		return nil
	case evaluation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case evaluation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Evaluation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.applicant != nil {
		edges = append(edges, evaluation.EdgeApplicant)
	}
	if m.courses != nil {
		edges = append(edges, evaluation.EdgeCourses)
	}
	if m.jobs != nil {
		edges = append(edges, evaluation.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evaluation.EdgeApplicant:
		if id := m.applicant; id != nil {
			return []ent.Value{*id}
		}
	case evaluation.EdgeCourses:
		ids := make([]ent.Value, 0, len(m.courses))
		for id := range m.courses {
			ids = append(ids, id)
		}
		return ids
	case evaluation.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedcourses != nil {
		edges = append(edges, evaluation.EdgeCourses)
	}
	if m.removedjobs != nil {
		edges = append(edges, evaluation.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case evaluation.EdgeCourses:
		ids := make([]ent.Value, 0, len(m.removedcourses))
		for id := range m.removedcourses {
			ids = append(ids, id)
		}
		return ids
	case evaluation.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedapplicant {
		edges = append(edges, evaluation.EdgeApplicant)
	}
	if m.clearedcourses {
		edges = append(edges, evaluation.EdgeCourses)
	}
	if m.clearedjobs {
		edges = append(edges, evaluation.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationMutation) EdgeCleared(name string) bool {
	switch name {
	case evaluation.EdgeApplicant:
		return m.clearedapplicant
	case evaluation.EdgeCourses:
		return m.clearedcourses
	case evaluation.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationMutation) ClearEdge(name string) error {
	switch name {
	case evaluation.EdgeApplicant:
		m.ClearApplicant()
		return nil
	}
	return fmt.Errorf("unknown Evaluation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationMutation) ResetEdge(name string) error {
	switch name {
	case evaluation.EdgeApplicant:
		m.ResetApplicant()
		return nil
	case evaluation.EdgeCourses:
		m.ResetCourses()
		return nil
	case evaluation.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Evaluation edge %s", name)
}

// EvaluationCourseMutation represents an operation that mutates the EvaluationCourse nodes in the graph.
type EvaluationCourseMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	code              *string
	name              *string
	grade             *string
	credit_hours      *float64
	addcredit_hours   *float64
	included          *bool
	position          *int
	addposition       *int
	clearedFields     map[string]struct{}
	evaluation        *uuid.UUID
	clearedevaluation bool
	done              bool
	oldValue          func(context.Context) (*EvaluationCourse, error)
	predicates        []predicate.EvaluationCourse
}

var _ ent.Mutation = (*EvaluationCourseMutation)(nil)

// evaluationcourseOption allows management of the mutation configuration using functional options.
type evaluationcourseOption func(*EvaluationCourseMutation)

// newEvaluationCourseMutation creates new mutation for the EvaluationCourse entity.
func newEvaluationCourseMutation(c config, op Op, opts ...evaluationcourseOption) *EvaluationCourseMutation {
	m := &EvaluationCourseMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluationCourse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationCourseID sets the ID field of the mutation.
func withEvaluationCourseID(id uuid.UUID) evaluationcourseOption {
	return func(m *EvaluationCourseMutation) {
		var (
			err   error
			once  sync.Once
			value *EvaluationCourse
		)
		m.oldValue = func(ctx context.Context) (*EvaluationCourse, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvaluationCourse.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluationCourse sets the old EvaluationCourse of the mutation.
func withEvaluationCourse(node *EvaluationCourse) evaluationcourseOption {
	return func(m *EvaluationCourseMutation) {
		m.oldValue = func(context.Context) (*EvaluationCourse, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationCourseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationCourseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EvaluationCourse entities.
func (m *EvaluationCourseMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationCourseMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationCourseMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvaluationCourse.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEvaluationID sets the "evaluation_id" field.
func (m *EvaluationCourseMutation) SetEvaluationID(u uuid.UUID) {
	m.evaluation = &u
}

// EvaluationID returns the value of the "evaluation_id" field in the mutation.
func (m *EvaluationCourseMutation) EvaluationID() (r uuid.UUID, exists bool) {
	v := m.evaluation
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluationID returns the old "evaluation_id" field's value of the EvaluationCourse entity.
// If the EvaluationCourse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationCourseMutation) OldEvaluationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluationID: %w", err)
	}
	return oldValue.EvaluationID, nil
}

// ResetEvaluationID resets all changes to the "evaluation_id" field.
func (m *EvaluationCourseMutation) ResetEvaluationID() {
	m.evaluation = nil
}

// SetCode sets the "code" field.
func (m *EvaluationCourseMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *EvaluationCourseMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the EvaluationCourse entity.
// If the EvaluationCourse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationCourseMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ClearCode clears the value of the "code" field.
func (m *EvaluationCourseMutation) ClearCode() {
	m.code = nil
	m.clearedFields[evaluationcourse.FieldCode] = struct{}{}
}

// CodeCleared returns if the "code" field was cleared in this mutation.
func (m *EvaluationCourseMutation) CodeCleared() bool {
	_, ok := m.clearedFields[evaluationcourse.FieldCode]
	return ok
}

// ResetCode resets all changes to the "code" field.
func (m *EvaluationCourseMutation) ResetCode() {
	m.code = nil
	delete(m.clearedFields, evaluationcourse.FieldCode)
}

// SetName sets the "name" field.
func (m *EvaluationCourseMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EvaluationCourseMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the EvaluationCourse entity.
// If the EvaluationCourse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationCourseMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EvaluationCourseMutation) ResetName() {
	m.name = nil
}

// SetGrade sets the "grade" field.
func (m *EvaluationCourseMutation) SetGrade(s string) {
	m.grade = &s
}

// Grade returns the value of the "grade" field in the mutation.
func (m *EvaluationCourseMutation) Grade() (r string, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the EvaluationCourse entity.
// If the EvaluationCourse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationCourseMutation) OldGrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// ClearGrade clears the value of the "grade" field.
func (m *EvaluationCourseMutation) ClearGrade() {
	m.grade = nil
	m.clearedFields[evaluationcourse.FieldGrade] = struct{}{}
}

// GradeCleared returns if the "grade" field was cleared in this mutation.
func (m *EvaluationCourseMutation) GradeCleared() bool {
	_, ok := m.clearedFields[evaluationcourse.FieldGrade]
	return ok
}

// ResetGrade resets all changes to the "grade" field.
func (m *EvaluationCourseMutation) ResetGrade() {
	m.grade = nil
	delete(m.clearedFields, evaluationcourse.FieldGrade)
}

// SetCreditHours sets the "credit_hours" field.
func (m *EvaluationCourseMutation) SetCreditHours(f float64) {
	m.credit_hours = &f
	m.addcredit_hours = nil
}

// CreditHours returns the value of the "credit_hours" field in the mutation.
func (m *EvaluationCourseMutation) CreditHours() (r float64, exists bool) {
	v := m.credit_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditHours returns the old "credit_hours" field's value of the EvaluationCourse entity.
// If the EvaluationCourse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationCourseMutation) OldCreditHours(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditHours: %w", err)
	}
	return oldValue.CreditHours, nil
}

// AddCreditHours adds f to the "credit_hours" field.
func (m *EvaluationCourseMutation) AddCreditHours(f float64) {
	if m.addcredit_hours != nil {
		*m.addcredit_hours += f
	} else {
		m.addcredit_hours = &f
	}
}

// AddedCreditHours returns the value that was added to the "credit_hours" field in this mutation.
func (m *EvaluationCourseMutation) AddedCreditHours() (r float64, exists bool) {
	v := m.addcredit_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreditHours resets all changes to the "credit_hours" field.
func (m *EvaluationCourseMutation) ResetCreditHours() {
	m.credit_hours = nil
	m.addcredit_hours = nil
}

// SetIncluded sets the "included" field.
func (m *EvaluationCourseMutation) SetIncluded(b bool) {
	m.included = &b
}

// Included returns the value of the "included" field in the mutation.
func (m *EvaluationCourseMutation) Included() (r bool, exists bool) {
	v := m.included
	if v == nil {
		return
	}
	return *v, true
}

// OldIncluded returns the old "included" field's value of the EvaluationCourse entity.
// If the EvaluationCourse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationCourseMutation) OldIncluded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncluded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncluded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncluded: %w", err)
	}
	return oldValue.Included, nil
}

// ResetIncluded resets all changes to the "included" field.
func (m *EvaluationCourseMutation) ResetIncluded() {
	m.included = nil
}

// SetPosition sets the "position" field.
func (m *EvaluationCourseMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *EvaluationCourseMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the EvaluationCourse entity.
// If the EvaluationCourse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationCourseMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *EvaluationCourseMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *EvaluationCourseMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *EvaluationCourseMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// ClearEvaluation clears the "evaluation" edge to the Evaluation entity.
func (m *EvaluationCourseMutation) ClearEvaluation() {
	m.clearedevaluation = true
	m.clearedFields[evaluationcourse.FieldEvaluationID] = struct{}{}
}

// EvaluationCleared reports if the "evaluation" edge to the Evaluation entity was cleared.
func (m *EvaluationCourseMutation) EvaluationCleared() bool {
	return m.clearedevaluation
}

// EvaluationIDs returns the "evaluation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EvaluationID instead. It exists only for internal usage by the builders.
func (m *EvaluationCourseMutation) EvaluationIDs() (ids []uuid.UUID) {
	if id := m.evaluation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvaluation resets all changes to the "evaluation" edge.
func (m *EvaluationCourseMutation) ResetEvaluation() {
	m.evaluation = nil
	m.clearedevaluation = false
}

// Where appends a list predicates to the EvaluationCourseMutation builder.
func (m *EvaluationCourseMutation) Where(ps ...predicate.EvaluationCourse) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationCourseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationCourseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvaluationCourse, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationCourseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationCourseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvaluationCourse).
func (m *EvaluationCourseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationCourseMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.evaluation != nil {
		fields = append(fields, evaluationcourse.FieldEvaluationID)
	}
	if m.code != nil {
		fields = append(fields, evaluationcourse.FieldCode)
	}
	if m.name != nil {
		fields = append(fields, evaluationcourse.FieldName)
	}
	if m.grade != nil {
		fields = append(fields, evaluationcourse.FieldGrade)
	}
	if m.credit_hours != nil {
		fields = append(fields, evaluationcourse.FieldCreditHours)
	}
	if m.included != nil {
		fields = append(fields, evaluationcourse.FieldIncluded)
	}
	if m.position != nil {
		fields = append(fields, evaluationcourse.FieldPosition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationCourseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluationcourse.FieldEvaluationID:
		return m.EvaluationID()
	case evaluationcourse.FieldCode:
		return m.Code()
	case evaluationcourse.FieldName:
		return m.Name()
	case evaluationcourse.FieldGrade:
		return m.Grade()
	case evaluationcourse.FieldCreditHours:
		return m.CreditHours()
	case evaluationcourse.FieldIncluded:
		return m.Included()
	case evaluationcourse.FieldPosition:
		return m.Position()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationCourseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluationcourse.FieldEvaluationID:
		return m.OldEvaluationID(ctx)
	case evaluationcourse.FieldCode:
		return m.OldCode(ctx)
	case evaluationcourse.FieldName:
		return m.OldName(ctx)
	case evaluationcourse.FieldGrade:
		return m.OldGrade(ctx)
	case evaluationcourse.FieldCreditHours:
		return m.OldCreditHours(ctx)
	case evaluationcourse.FieldIncluded:
		return m.OldIncluded(ctx)
	case evaluationcourse.FieldPosition:
		return m.OldPosition(ctx)
	}
	return nil, fmt.Errorf("unknown EvaluationCourse field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationCourseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluationcourse.FieldEvaluationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluationID(v)
		return nil
	case evaluationcourse.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case evaluationcourse.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case evaluationcourse.FieldGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case evaluationcourse.FieldCreditHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditHours(v)
		return nil
	case evaluationcourse.FieldIncluded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncluded(v)
		return nil
	case evaluationcourse.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationCourse field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationCourseMutation) AddedFields() []string {
	var fields []string
	if m.addcredit_hours != nil {
		fields = append(fields, evaluationcourse.FieldCreditHours)
	}
	if m.addposition != nil {
		fields = append(fields, evaluationcourse.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationCourseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evaluationcourse.FieldCreditHours:
		return m.AddedCreditHours()
	case evaluationcourse.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationCourseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evaluationcourse.FieldCreditHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreditHours(v)
		return nil
	case evaluationcourse.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationCourse numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationCourseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evaluationcourse.FieldCode) {
		fields = append(fields, evaluationcourse.FieldCode)
	}
	if m.FieldCleared(evaluationcourse.FieldGrade) {
		fields = append(fields, evaluationcourse.FieldGrade)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationCourseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationCourseMutation) ClearField(name string) error {
	switch name {
	case evaluationcourse.FieldCode:
		m.ClearCode()
		return nil
	case evaluationcourse.FieldGrade:
		m.ClearGrade()
		return nil
	}
	return fmt.Errorf("unknown EvaluationCourse nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationCourseMutation) ResetField(name string) error {
	switch name {
	case evaluationcourse.FieldEvaluationID:
		m.ResetEvaluationID()
		return nil
	case evaluationcourse.FieldCode:
		m.ResetCode()
		return nil
	case evaluationcourse.FieldName:
		m.ResetName()
		return nil
	case evaluationcourse.FieldGrade:
		m.ResetGrade()
		return nil
	case evaluationcourse.FieldCreditHours:
		m.ResetCreditHours()
		return nil
	case evaluationcourse.FieldIncluded:
		m.ResetIncluded()
		return nil
	case evaluationcourse.FieldPosition:
		m.ResetPosition()
		return nil
	}
	return fmt.Errorf("unknown EvaluationCourse field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationCourseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.evaluation != nil {
		edges = append(edges, evaluationcourse.EdgeEvaluation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationCourseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evaluationcourse.EdgeEvaluation:
		if id := m.evaluation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationCourseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationCourseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationCourseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevaluation {
		edges = append(edges, evaluationcourse.EdgeEvaluation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationCourseMutation) EdgeCleared(name string) bool {
	switch name {
	case evaluationcourse.EdgeEvaluation:
		return m.clearedevaluation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationCourseMutation) ClearEdge(name string) error {
	switch name {
	case evaluationcourse.EdgeEvaluation:
		m.ClearEvaluation()
		return nil
	}
	return fmt.Errorf("unknown EvaluationCourse unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationCourseMutation) ResetEdge(name string) error {
	switch name {
	case evaluationcourse.EdgeEvaluation:
		m.ResetEvaluation()
		return nil
	}
	return fmt.Errorf("unknown EvaluationCourse edge %s", name)
}

// ExtractJobMutation represents an operation that mutates the ExtractJob nodes in the graph.
type ExtractJobMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	source               *string
	started_at           *time.Time
	finished_at          *time.Time
	status               *string
	error_message        *string
	chunk_count          *int
	addchunk_count       *int
	warning_count        *int
	addwarning_count     *int
	warnings             *json.RawMessage
	appendwarnings       json.RawMessage
	extracted_json       *json.RawMessage
	appendextracted_json json.RawMessage
	model_name           *string
	clearedFields        map[string]struct{}
	applicant            *uuid.UUID
	clearedapplicant     bool
	file                 *uuid.UUID
	clearedfile          bool
	evaluation           *uuid.UUID
	clearedevaluation    bool
	done                 bool
	oldValue             func(context.Context) (*ExtractJob, error)
	predicates           []predicate.ExtractJob
}

var _ ent.Mutation = (*ExtractJobMutation)(nil)

// extractjobOption allows management of the mutation configuration using functional options.
type extractjobOption func(*ExtractJobMutation)

// newExtractJobMutation creates new mutation for the ExtractJob entity.
func newExtractJobMutation(c config, op Op, opts ...extractjobOption) *ExtractJobMutation {
	m := &ExtractJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractJobID sets the ID field of the mutation.
func withExtractJobID(id uuid.UUID) extractjobOption {
	return func(m *ExtractJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractJob sets the old ExtractJob of the mutation.
func withExtractJob(node *ExtractJob) extractjobOption {
	return func(m *ExtractJobMutation) {
		m.oldValue = func(context.Context) (*ExtractJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractJob entities.
func (m *ExtractJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetApplicantID sets the "applicant_id" field.
func (m *ExtractJobMutation) SetApplicantID(u uuid.UUID) {
	m.applicant = &u
}

// ApplicantID returns the value of the "applicant_id" field in the mutation.
func (m *ExtractJobMutation) ApplicantID() (r uuid.UUID, exists bool) {
	v := m.applicant
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicantID returns the old "applicant_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldApplicantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicantID: %w", err)
	}
	return oldValue.ApplicantID, nil
}

// ResetApplicantID resets all changes to the "applicant_id" field.
func (m *ExtractJobMutation) ResetApplicantID() {
	m.applicant = nil
}

// SetFileID sets the "file_id" field.
func (m *ExtractJobMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ExtractJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFileID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ClearFileID clears the value of the "file_id" field.
func (m *ExtractJobMutation) ClearFileID() {
	m.file = nil
	m.clearedFields[extractjob.FieldFileID] = struct{}{}
}

// FileIDCleared returns if the "file_id" field was cleared in this mutation.
func (m *ExtractJobMutation) FileIDCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldFileID]
	return ok
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ExtractJobMutation) ResetFileID() {
	m.file = nil
	delete(m.clearedFields, extractjob.FieldFileID)
}

// SetEvaluationID sets the "evaluation_id" field.
func (m *ExtractJobMutation) SetEvaluationID(u uuid.UUID) {
	m.evaluation = &u
}

// EvaluationID returns the value of the "evaluation_id" field in the mutation.
func (m *ExtractJobMutation) EvaluationID() (r uuid.UUID, exists bool) {
	v := m.evaluation
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluationID returns the old "evaluation_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldEvaluationID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluationID: %w", err)
	}
	return oldValue.EvaluationID, nil
}

// ClearEvaluationID clears the value of the "evaluation_id" field.
func (m *ExtractJobMutation) ClearEvaluationID() {
	m.evaluation = nil
	m.clearedFields[extractjob.FieldEvaluationID] = struct{}{}
}

// EvaluationIDCleared returns if the "evaluation_id" field was cleared in this mutation.
func (m *ExtractJobMutation) EvaluationIDCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldEvaluationID]
	return ok
}

// ResetEvaluationID resets all changes to the "evaluation_id" field.
func (m *ExtractJobMutation) ResetEvaluationID() {
	m.evaluation = nil
	delete(m.clearedFields, extractjob.FieldEvaluationID)
}

// SetSource sets the "source" field.
func (m *ExtractJobMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ExtractJobMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ExtractJobMutation) ResetSource() {
	m.source = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractjob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ExtractJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ExtractJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[extractjob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ExtractJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, extractjob.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractjob.FieldErrorMessage)
}

// SetChunkCount sets the "chunk_count" field.
func (m *ExtractJobMutation) SetChunkCount(i int) {
	m.chunk_count = &i
	m.addchunk_count = nil
}

// ChunkCount returns the value of the "chunk_count" field in the mutation.
func (m *ExtractJobMutation) ChunkCount() (r int, exists bool) {
	v := m.chunk_count
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkCount returns the old "chunk_count" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldChunkCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkCount: %w", err)
	}
	return oldValue.ChunkCount, nil
}

// AddChunkCount adds i to the "chunk_count" field.
func (m *ExtractJobMutation) AddChunkCount(i int) {
	if m.addchunk_count != nil {
		*m.addchunk_count += i
	} else {
		m.addchunk_count = &i
	}
}

// AddedChunkCount returns the value that was added to the "chunk_count" field in this mutation.
func (m *ExtractJobMutation) AddedChunkCount() (r int, exists bool) {
	v := m.addchunk_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkCount resets all changes to the "chunk_count" field.
func (m *ExtractJobMutation) ResetChunkCount() {
	m.chunk_count = nil
	m.addchunk_count = nil
}

// SetWarningCount sets the "warning_count" field.
func (m *ExtractJobMutation) SetWarningCount(i int) {
	m.warning_count = &i
	m.addwarning_count = nil
}

// WarningCount returns the value of the "warning_count" field in the mutation.
func (m *ExtractJobMutation) WarningCount() (r int, exists bool) {
	v := m.warning_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWarningCount returns the old "warning_count" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldWarningCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarningCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarningCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarningCount: %w", err)
	}
	return oldValue.WarningCount, nil
}

// AddWarningCount adds i to the "warning_count" field.
func (m *ExtractJobMutation) AddWarningCount(i int) {
	if m.addwarning_count != nil {
		*m.addwarning_count += i
	} else {
		m.addwarning_count = &i
	}
}

// AddedWarningCount returns the value that was added to the "warning_count" field in this mutation.
func (m *ExtractJobMutation) AddedWarningCount() (r int, exists bool) {
	v := m.addwarning_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWarningCount resets all changes to the "warning_count" field.
func (m *ExtractJobMutation) ResetWarningCount() {
	m.warning_count = nil
	m.addwarning_count = nil
}

// SetWarnings sets the "warnings" field.
func (m *ExtractJobMutation) SetWarnings(jm json.RawMessage) {
	m.warnings = &jm
	m.appendwarnings = nil
}

// Warnings returns the value of the "warnings" field in the mutation.
func (m *ExtractJobMutation) Warnings() (r json.RawMessage, exists bool) {
	v := m.warnings
	if v == nil {
		return
	}
	return *v, true
}

// OldWarnings returns the old "warnings" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldWarnings(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarnings: %w", err)
	}
	return oldValue.Warnings, nil
}

// AppendWarnings adds jm to the "warnings" field.
func (m *ExtractJobMutation) AppendWarnings(jm json.RawMessage) {
	m.appendwarnings = append(m.appendwarnings, jm...)
}

// AppendedWarnings returns the list of values that were appended to the "warnings" field in this mutation.
func (m *ExtractJobMutation) AppendedWarnings() (json.RawMessage, bool) {
	if len(m.appendwarnings) == 0 {
		return nil, false
	}
	return m.appendwarnings, true
}

// ClearWarnings clears the value of the "warnings" field.
func (m *ExtractJobMutation) ClearWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	m.clearedFields[extractjob.FieldWarnings] = struct{}{}
}

// WarningsCleared returns if the "warnings" field was cleared in this mutation.
func (m *ExtractJobMutation) WarningsCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldWarnings]
	return ok
}

// ResetWarnings resets all changes to the "warnings" field.
func (m *ExtractJobMutation) ResetWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	delete(m.clearedFields, extractjob.FieldWarnings)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *ExtractJobMutation) SetExtractedJSON(jm json.RawMessage) {
	m.extracted_json = &jm
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *ExtractJobMutation) ExtractedJSON() (r json.RawMessage, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldExtractedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds jm to the "extracted_json" field.
func (m *ExtractJobMutation) AppendExtractedJSON(jm json.RawMessage) {
	m.appendextracted_json = append(m.appendextracted_json, jm...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *ExtractJobMutation) AppendedExtractedJSON() (json.RawMessage, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *ExtractJobMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[extractjob.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *ExtractJobMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *ExtractJobMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, extractjob.FieldExtractedJSON)
}

// SetModelName sets the "model_name" field.
func (m *ExtractJobMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ExtractJobMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *ExtractJobMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[extractjob.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *ExtractJobMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ExtractJobMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, extractjob.FieldModelName)
}

// ClearApplicant clears the "applicant" edge to the Applicant entity.
func (m *ExtractJobMutation) ClearApplicant() {
	m.clearedapplicant = true
	m.clearedFields[extractjob.FieldApplicantID] = struct{}{}
}

// ApplicantCleared reports if the "applicant" edge to the Applicant entity was cleared.
func (m *ExtractJobMutation) ApplicantCleared() bool {
	return m.clearedapplicant
}

// ApplicantIDs returns the "applicant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicantID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) ApplicantIDs() (ids []uuid.UUID) {
	if id := m.applicant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplicant resets all changes to the "applicant" edge.
func (m *ExtractJobMutation) ResetApplicant() {
	m.applicant = nil
	m.clearedapplicant = false
}

// ClearFile clears the "file" edge to the TranscriptFile entity.
func (m *ExtractJobMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[extractjob.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the TranscriptFile entity was cleared.
func (m *ExtractJobMutation) FileCleared() bool {
	return m.FileIDCleared() || m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ExtractJobMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// ClearEvaluation clears the "evaluation" edge to the Evaluation entity.
func (m *ExtractJobMutation) ClearEvaluation() {
	m.clearedevaluation = true
	m.clearedFields[extractjob.FieldEvaluationID] = struct{}{}
}

// EvaluationCleared reports if the "evaluation" edge to the Evaluation entity was cleared.
func (m *ExtractJobMutation) EvaluationCleared() bool {
	return m.EvaluationIDCleared() || m.clearedevaluation
}

// EvaluationIDs returns the "evaluation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EvaluationID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) EvaluationIDs() (ids []uuid.UUID) {
	if id := m.evaluation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvaluation resets all changes to the "evaluation" edge.
func (m *ExtractJobMutation) ResetEvaluation() {
	m.evaluation = nil
	m.clearedevaluation = false
}

// Where appends a list predicates to the ExtractJobMutation builder.
func (m *ExtractJobMutation) Where(ps ...predicate.ExtractJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractJob).
func (m *ExtractJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractJobMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.applicant != nil {
		fields = append(fields, extractjob.FieldApplicantID)
	}
	if m.file != nil {
		fields = append(fields, extractjob.FieldFileID)
	}
	if m.evaluation != nil {
		fields = append(fields, extractjob.FieldEvaluationID)
	}
	if m.source != nil {
		fields = append(fields, extractjob.FieldSource)
	}
	if m.started_at != nil {
		fields = append(fields, extractjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.chunk_count != nil {
		fields = append(fields, extractjob.FieldChunkCount)
	}
	if m.warning_count != nil {
		fields = append(fields, extractjob.FieldWarningCount)
	}
	if m.warnings != nil {
		fields = append(fields, extractjob.FieldWarnings)
	}
	if m.extracted_json != nil {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	if m.model_name != nil {
		fields = append(fields, extractjob.FieldModelName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldApplicantID:
		return m.ApplicantID()
	case extractjob.FieldFileID:
		return m.FileID()
	case extractjob.FieldEvaluationID:
		return m.EvaluationID()
	case extractjob.FieldSource:
		return m.Source()
	case extractjob.FieldStartedAt:
		return m.StartedAt()
	case extractjob.FieldFinishedAt:
		return m.FinishedAt()
	case extractjob.FieldStatus:
		return m.Status()
	case extractjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractjob.FieldChunkCount:
		return m.ChunkCount()
	case extractjob.FieldWarningCount:
		return m.WarningCount()
	case extractjob.FieldWarnings:
		return m.Warnings()
	case extractjob.FieldExtractedJSON:
		return m.ExtractedJSON()
	case extractjob.FieldModelName:
		return m.ModelName()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractjob.FieldApplicantID:
		return m.OldApplicantID(ctx)
	case extractjob.FieldFileID:
		return m.OldFileID(ctx)
	case extractjob.FieldEvaluationID:
		return m.OldEvaluationID(ctx)
	case extractjob.FieldSource:
		return m.OldSource(ctx)
	case extractjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case extractjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractjob.FieldChunkCount:
		return m.OldChunkCount(ctx)
	case extractjob.FieldWarningCount:
		return m.OldWarningCount(ctx)
	case extractjob.FieldWarnings:
		return m.OldWarnings(ctx)
	case extractjob.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case extractjob.FieldModelName:
		return m.OldModelName(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldApplicantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicantID(v)
		return nil
	case extractjob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case extractjob.FieldEvaluationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluationID(v)
		return nil
	case extractjob.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case extractjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case extractjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractjob.FieldChunkCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkCount(v)
		return nil
	case extractjob.FieldWarningCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarningCount(v)
		return nil
	case extractjob.FieldWarnings:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarnings(v)
		return nil
	case extractjob.FieldExtractedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case extractjob.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractJobMutation) AddedFields() []string {
	var fields []string
	if m.addchunk_count != nil {
		fields = append(fields, extractjob.FieldChunkCount)
	}
	if m.addwarning_count != nil {
		fields = append(fields, extractjob.FieldWarningCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldChunkCount:
		return m.AddedChunkCount()
	case extractjob.FieldWarningCount:
		return m.AddedWarningCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldChunkCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkCount(v)
		return nil
	case extractjob.FieldWarningCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWarningCount(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractjob.FieldFileID) {
		fields = append(fields, extractjob.FieldFileID)
	}
	if m.FieldCleared(extractjob.FieldEvaluationID) {
		fields = append(fields, extractjob.FieldEvaluationID)
	}
	if m.FieldCleared(extractjob.FieldFinishedAt) {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.FieldCleared(extractjob.FieldStatus) {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.FieldCleared(extractjob.FieldErrorMessage) {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractjob.FieldWarnings) {
		fields = append(fields, extractjob.FieldWarnings)
	}
	if m.FieldCleared(extractjob.FieldExtractedJSON) {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	if m.FieldCleared(extractjob.FieldModelName) {
		fields = append(fields, extractjob.FieldModelName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractJobMutation) ClearField(name string) error {
	switch name {
	case extractjob.FieldFileID:
		m.ClearFileID()
		return nil
	case extractjob.FieldEvaluationID:
		m.ClearEvaluationID()
		return nil
	case extractjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ClearStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractjob.FieldWarnings:
		m.ClearWarnings()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	case extractjob.FieldModelName:
		m.ClearModelName()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractJobMutation) ResetField(name string) error {
	switch name {
	case extractjob.FieldApplicantID:
		m.ResetApplicantID()
		return nil
	case extractjob.FieldFileID:
		m.ResetFileID()
		return nil
	case extractjob.FieldEvaluationID:
		m.ResetEvaluationID()
		return nil
	case extractjob.FieldSource:
		m.ResetSource()
		return nil
	case extractjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractjob.FieldChunkCount:
		m.ResetChunkCount()
		return nil
	case extractjob.FieldWarningCount:
		m.ResetWarningCount()
		return nil
	case extractjob.FieldWarnings:
		m.ResetWarnings()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case extractjob.FieldModelName:
		m.ResetModelName()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.applicant != nil {
		edges = append(edges, extractjob.EdgeApplicant)
	}
	if m.file != nil {
		edges = append(edges, extractjob.EdgeFile)
	}
	if m.evaluation != nil {
		edges = append(edges, extractjob.EdgeEvaluation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractjob.EdgeApplicant:
		if id := m.applicant; id != nil {
			return []ent.Value{*id}
		}
	case extractjob.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case extractjob.EdgeEvaluation:
		if id := m.evaluation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedapplicant {
		edges = append(edges, extractjob.EdgeApplicant)
	}
	if m.clearedfile {
		edges = append(edges, extractjob.EdgeFile)
	}
	if m.clearedevaluation {
		edges = append(edges, extractjob.EdgeEvaluation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractjob.EdgeApplicant:
		return m.clearedapplicant
	case extractjob.EdgeFile:
		return m.clearedfile
	case extractjob.EdgeEvaluation:
		return m.clearedevaluation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractJobMutation) ClearEdge(name string) error {
	switch name {
	case extractjob.EdgeApplicant:
		m.ClearApplicant()
		return nil
	case extractjob.EdgeFile:
		m.ClearFile()
		return nil
	case extractjob.EdgeEvaluation:
		m.ClearEvaluation()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractJobMutation) ResetEdge(name string) error {
	switch name {
	case extractjob.EdgeApplicant:
		m.ResetApplicant()
		return nil
	case extractjob.EdgeFile:
		m.ResetFile()
		return nil
	case extractjob.EdgeEvaluation:
		m.ResetEvaluation()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob edge %s", name)
}

// TranscriptFileMutation represents an operation that mutates the TranscriptFile nodes in the graph.
type TranscriptFileMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	source_path      *string
	content_hash     *[]byte
	filename         *string
	file_ext         *string
	file_size        *int
	addfile_size     *int
	uploaded_at      *time.Time
	clearedFields    map[string]struct{}
	applicant        *uuid.UUID
	clearedapplicant bool
	jobs             map[uuid.UUID]struct{}
	removedjobs      map[uuid.UUID]struct{}
	clearedjobs      bool
	done             bool
	oldValue         func(context.Context) (*TranscriptFile, error)
	predicates       []predicate.TranscriptFile
}

var _ ent.Mutation = (*TranscriptFileMutation)(nil)

// transcriptfileOption allows management of the mutation configuration using functional options.
type transcriptfileOption func(*TranscriptFileMutation)

// newTranscriptFileMutation creates new mutation for the TranscriptFile entity.
func newTranscriptFileMutation(c config, op Op, opts ...transcriptfileOption) *TranscriptFileMutation {
	m := &TranscriptFileMutation{
		config:        c,
		op:            op,
		typ:           TypeTranscriptFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranscriptFileID sets the ID field of the mutation.
func withTranscriptFileID(id uuid.UUID) transcriptfileOption {
	return func(m *TranscriptFileMutation) {
		var (
			err   error
			once  sync.Once
			value *TranscriptFile
		)
		m.oldValue = func(ctx context.Context) (*TranscriptFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TranscriptFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranscriptFile sets the old TranscriptFile of the mutation.
func withTranscriptFile(node *TranscriptFile) transcriptfileOption {
	return func(m *TranscriptFileMutation) {
		m.oldValue = func(context.Context) (*TranscriptFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranscriptFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranscriptFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TranscriptFile entities.
func (m *TranscriptFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranscriptFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranscriptFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TranscriptFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetApplicantID sets the "applicant_id" field.
func (m *TranscriptFileMutation) SetApplicantID(u uuid.UUID) {
	m.applicant = &u
}

// ApplicantID returns the value of the "applicant_id" field in the mutation.
func (m *TranscriptFileMutation) ApplicantID() (r uuid.UUID, exists bool) {
	v := m.applicant
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicantID returns the old "applicant_id" field's value of the TranscriptFile entity.
// If the TranscriptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptFileMutation) OldApplicantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicantID: %w", err)
	}
	return oldValue.ApplicantID, nil
}

// ResetApplicantID resets all changes to the "applicant_id" field.
func (m *TranscriptFileMutation) ResetApplicantID() {
	m.applicant = nil
}

// SetSourcePath sets the "source_path" field.
func (m *TranscriptFileMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *TranscriptFileMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the TranscriptFile entity.
// If the TranscriptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptFileMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *TranscriptFileMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *TranscriptFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *TranscriptFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the TranscriptFile entity.
// If the TranscriptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *TranscriptFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *TranscriptFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *TranscriptFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the TranscriptFile entity.
// If the TranscriptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *TranscriptFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *TranscriptFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *TranscriptFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the TranscriptFile entity.
// If the TranscriptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *TranscriptFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *TranscriptFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *TranscriptFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the TranscriptFile entity.
// If the TranscriptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *TranscriptFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *TranscriptFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *TranscriptFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *TranscriptFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *TranscriptFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the TranscriptFile entity.
// If the TranscriptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *TranscriptFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearApplicant clears the "applicant" edge to the Applicant entity.
func (m *TranscriptFileMutation) ClearApplicant() {
	m.clearedapplicant = true
	m.clearedFields[transcriptfile.FieldApplicantID] = struct{}{}
}

// ApplicantCleared reports if the "applicant" edge to the Applicant entity was cleared.
func (m *TranscriptFileMutation) ApplicantCleared() bool {
	return m.clearedapplicant
}

// ApplicantIDs returns the "applicant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicantID instead. It exists only for internal usage by the builders.
func (m *TranscriptFileMutation) ApplicantIDs() (ids []uuid.UUID) {
	if id := m.applicant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplicant resets all changes to the "applicant" edge.
func (m *TranscriptFileMutation) ResetApplicant() {
	m.applicant = nil
	m.clearedapplicant = false
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *TranscriptFileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *TranscriptFileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *TranscriptFileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *TranscriptFileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *TranscriptFileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *TranscriptFileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *TranscriptFileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the TranscriptFileMutation builder.
func (m *TranscriptFileMutation) Where(ps ...predicate.TranscriptFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranscriptFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranscriptFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TranscriptFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranscriptFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranscriptFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TranscriptFile).
func (m *TranscriptFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranscriptFileMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.applicant != nil {
		fields = append(fields, transcriptfile.FieldApplicantID)
	}
	if m.source_path != nil {
		fields = append(fields, transcriptfile.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, transcriptfile.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, transcriptfile.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, transcriptfile.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, transcriptfile.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, transcriptfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranscriptFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transcriptfile.FieldApplicantID:
		return m.ApplicantID()
	case transcriptfile.FieldSourcePath:
		return m.SourcePath()
	case transcriptfile.FieldContentHash:
		return m.ContentHash()
	case transcriptfile.FieldFilename:
		return m.Filename()
	case transcriptfile.FieldFileExt:
		return m.FileExt()
	case transcriptfile.FieldFileSize:
		return m.FileSize()
	case transcriptfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranscriptFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transcriptfile.FieldApplicantID:
		return m.OldApplicantID(ctx)
	case transcriptfile.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case transcriptfile.FieldContentHash:
		return m.OldContentHash(ctx)
	case transcriptfile.FieldFilename:
		return m.OldFilename(ctx)
	case transcriptfile.FieldFileExt:
		return m.OldFileExt(ctx)
	case transcriptfile.FieldFileSize:
		return m.OldFileSize(ctx)
	case transcriptfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TranscriptFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transcriptfile.FieldApplicantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicantID(v)
		return nil
	case transcriptfile.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case transcriptfile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case transcriptfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case transcriptfile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case transcriptfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case transcriptfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TranscriptFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranscriptFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, transcriptfile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranscriptFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transcriptfile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transcriptfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown TranscriptFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranscriptFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranscriptFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranscriptFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TranscriptFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranscriptFileMutation) ResetField(name string) error {
	switch name {
	case transcriptfile.FieldApplicantID:
		m.ResetApplicantID()
		return nil
	case transcriptfile.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case transcriptfile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case transcriptfile.FieldFilename:
		m.ResetFilename()
		return nil
	case transcriptfile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case transcriptfile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case transcriptfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown TranscriptFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranscriptFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.applicant != nil {
		edges = append(edges, transcriptfile.EdgeApplicant)
	}
	if m.jobs != nil {
		edges = append(edges, transcriptfile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranscriptFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transcriptfile.EdgeApplicant:
		if id := m.applicant; id != nil {
			return []ent.Value{*id}
		}
	case transcriptfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranscriptFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedjobs != nil {
		edges = append(edges, transcriptfile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranscriptFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case transcriptfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranscriptFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedapplicant {
		edges = append(edges, transcriptfile.EdgeApplicant)
	}
	if m.clearedjobs {
		edges = append(edges, transcriptfile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranscriptFileMutation) EdgeCleared(name string) bool {
	switch name {
	case transcriptfile.EdgeApplicant:
		return m.clearedapplicant
	case transcriptfile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranscriptFileMutation) ClearEdge(name string) error {
	switch name {
	case transcriptfile.EdgeApplicant:
		m.ClearApplicant()
		return nil
	}
	return fmt.Errorf("unknown TranscriptFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranscriptFileMutation) ResetEdge(name string) error {
	switch name {
	case transcriptfile.EdgeApplicant:
		m.ResetApplicant()
		return nil
	case transcriptfile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown TranscriptFile edge %s", name)
}

// UniversityMutation represents an operation that mutates the University nodes in the graph.
type UniversityMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	program          *string
	semester         *string
	deadline         *time.Time
	timezone         *string
	status           *string
	notes            *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	applicant        *uuid.UUID
	clearedapplicant bool
	done             bool
	oldValue         func(context.Context) (*University, error)
	predicates       []predicate.University
}

var _ ent.Mutation = (*UniversityMutation)(nil)

// universityOption allows management of the mutation configuration using functional options.
type universityOption func(*UniversityMutation)

// newUniversityMutation creates new mutation for the University entity.
func newUniversityMutation(c config, op Op, opts ...universityOption) *UniversityMutation {
	m := &UniversityMutation{
		config:        c,
		op:            op,
		typ:           TypeUniversity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUniversityID sets the ID field of the mutation.
func withUniversityID(id uuid.UUID) universityOption {
	return func(m *UniversityMutation) {
		var (
			err   error
			once  sync.Once
			value *University
		)
		m.oldValue = func(ctx context.Context) (*University, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().University.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUniversity sets the old University of the mutation.
func withUniversity(node *University) universityOption {
	return func(m *UniversityMutation) {
		m.oldValue = func(context.Context) (*University, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UniversityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UniversityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of University entities.
func (m *UniversityMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UniversityMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UniversityMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().University.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetApplicantID sets the "applicant_id" field.
func (m *UniversityMutation) SetApplicantID(u uuid.UUID) {
	m.applicant = &u
}

// ApplicantID returns the value of the "applicant_id" field in the mutation.
func (m *UniversityMutation) ApplicantID() (r uuid.UUID, exists bool) {
	v := m.applicant
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicantID returns the old "applicant_id" field's value of the University entity.
// If the University object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniversityMutation) OldApplicantID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicantID: %w", err)
	}
	return oldValue.ApplicantID, nil
}

// ResetApplicantID resets all changes to the "applicant_id" field.
func (m *UniversityMutation) ResetApplicantID() {
	m.applicant = nil
}

// SetName sets the "name" field.
func (m *UniversityMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UniversityMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the University entity.
// If the University object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniversityMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UniversityMutation) ResetName() {
	m.name = nil
}

// SetProgram sets the "program" field.
func (m *UniversityMutation) SetProgram(s string) {
	m.program = &s
}

// Program returns the value of the "program" field in the mutation.
func (m *UniversityMutation) Program() (r string, exists bool) {
	v := m.program
	if v == nil {
		return
	}
	return *v, true
}

// OldProgram returns the old "program" field's value of the University entity.
// If the University object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniversityMutation) OldProgram(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgram is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgram requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgram: %w", err)
	}
	return oldValue.Program, nil
}

// ResetProgram resets all changes to the "program" field.
func (m *UniversityMutation) ResetProgram() {
	m.program = nil
}

// SetSemester sets the "semester" field.
func (m *UniversityMutation) SetSemester(s string) {
	m.semester = &s
}

// Semester returns the value of the "semester" field in the mutation.
func (m *UniversityMutation) Semester() (r string, exists bool) {
	v := m.semester
	if v == nil {
		return
	}
	return *v, true
}

// OldSemester returns the old "semester" field's value of the University entity.
// If the University object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniversityMutation) OldSemester(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSemester is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSemester requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSemester: %w", err)
	}
	return oldValue.Semester, nil
}

// ResetSemester resets all changes to the "semester" field.
func (m *UniversityMutation) ResetSemester() {
	m.semester = nil
}

// SetDeadline sets the "deadline" field.
func (m *UniversityMutation) SetDeadline(t time.Time) {
	m.deadline = &t
}

// Deadline returns the value of the "deadline" field in the mutation.
func (m *UniversityMutation) Deadline() (r time.Time, exists bool) {
	v := m.deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadline returns the old "deadline" field's value of the University entity.
// If the University object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniversityMutation) OldDeadline(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadline: %w", err)
	}
	return oldValue.Deadline, nil
}

// ClearDeadline clears the value of the "deadline" field.
func (m *UniversityMutation) ClearDeadline() {
	m.deadline = nil
	m.clearedFields[university.FieldDeadline] = struct{}{}
}

// DeadlineCleared returns if the "deadline" field was cleared in this mutation.
func (m *UniversityMutation) DeadlineCleared() bool {
	_, ok := m.clearedFields[university.FieldDeadline]
	return ok
}

// ResetDeadline resets all changes to the "deadline" field.
func (m *UniversityMutation) ResetDeadline() {
	m.deadline = nil
	delete(m.clearedFields, university.FieldDeadline)
}

// SetTimezone sets the "timezone" field.
func (m *UniversityMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *UniversityMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the University entity.
// If the University object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniversityMutation) OldTimezone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ClearTimezone clears the value of the "timezone" field.
func (m *UniversityMutation) ClearTimezone() {
	m.timezone = nil
	m.clearedFields[university.FieldTimezone] = struct{}{}
}

// TimezoneCleared returns if the "timezone" field was cleared in this mutation.
func (m *UniversityMutation) TimezoneCleared() bool {
	_, ok := m.clearedFields[university.FieldTimezone]
	return ok
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *UniversityMutation) ResetTimezone() {
	m.timezone = nil
	delete(m.clearedFields, university.FieldTimezone)
}

// SetStatus sets the "status" field.
func (m *UniversityMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *UniversityMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the University entity.
// If the University object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniversityMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *UniversityMutation) ResetStatus() {
	m.status = nil
}

// SetNotes sets the "notes" field.
func (m *UniversityMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *UniversityMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the University entity.
// If the University object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniversityMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *UniversityMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[university.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *UniversityMutation) NotesCleared() bool {
	_, ok := m.clearedFields[university.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *UniversityMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, university.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *UniversityMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UniversityMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the University entity.
// If the University object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniversityMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UniversityMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UniversityMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UniversityMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the University entity.
// If the University object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniversityMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UniversityMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearApplicant clears the "applicant" edge to the Applicant entity.
func (m *UniversityMutation) ClearApplicant() {
	m.clearedapplicant = true
	m.clearedFields[university.FieldApplicantID] = struct{}{}
}

// ApplicantCleared reports if the "applicant" edge to the Applicant entity was cleared.
func (m *UniversityMutation) ApplicantCleared() bool {
	return m.clearedapplicant
}

// ApplicantIDs returns the "applicant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicantID instead. It exists only for internal usage by the builders.
func (m *UniversityMutation) ApplicantIDs() (ids []uuid.UUID) {
	if id := m.applicant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplicant resets all changes to the "applicant" edge.
func (m *UniversityMutation) ResetApplicant() {
	m.applicant = nil
	m.clearedapplicant = false
}

// Where appends a list predicates to the UniversityMutation builder.
func (m *UniversityMutation) Where(ps ...predicate.University) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UniversityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UniversityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.University, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UniversityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UniversityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (University).
func (m *UniversityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UniversityMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.applicant != nil {
		fields = append(fields, university.FieldApplicantID)
	}
	if m.name != nil {
		fields = append(fields, university.FieldName)
	}
	if m.program != nil {
		fields = append(fields, university.FieldProgram)
	}
	if m.semester != nil {
		fields = append(fields, university.FieldSemester)
	}
	if m.deadline != nil {
		fields = append(fields, university.FieldDeadline)
	}
	if m.timezone != nil {
		fields = append(fields, university.FieldTimezone)
	}
	if m.status != nil {
		fields = append(fields, university.FieldStatus)
	}
	if m.notes != nil {
		fields = append(fields, university.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, university.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, university.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UniversityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case university.FieldApplicantID:
		return m.ApplicantID()
	case university.FieldName:
		return m.Name()
	case university.FieldProgram:
		return m.Program()
	case university.FieldSemester:
		return m.Semester()
	case university.FieldDeadline:
		return m.Deadline()
	case university.FieldTimezone:
		return m.Timezone()
	case university.FieldStatus:
		return m.Status()
	case university.FieldNotes:
		return m.Notes()
	case university.FieldCreatedAt:
		return m.CreatedAt()
	case university.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UniversityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case university.FieldApplicantID:
		return m.OldApplicantID(ctx)
	case university.FieldName:
		return m.OldName(ctx)
	case university.FieldProgram:
		return m.OldProgram(ctx)
	case university.FieldSemester:
		return m.OldSemester(ctx)
	case university.FieldDeadline:
		return m.OldDeadline(ctx)
	case university.FieldTimezone:
		return m.OldTimezone(ctx)
	case university.FieldStatus:
		return m.OldStatus(ctx)
	case university.FieldNotes:
		return m.OldNotes(ctx)
	case university.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case university.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown University field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UniversityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case university.FieldApplicantID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicantID(v)
		return nil
	case university.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case university.FieldProgram:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgram(v)
		return nil
	case university.FieldSemester:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSemester(v)
		return nil
	case university.FieldDeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadline(v)
		return nil
	case university.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case university.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case university.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case university.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case university.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown University field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UniversityMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UniversityMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UniversityMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown University numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UniversityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(university.FieldDeadline) {
		fields = append(fields, university.FieldDeadline)
	}
	if m.FieldCleared(university.FieldTimezone) {
		fields = append(fields, university.FieldTimezone)
	}
	if m.FieldCleared(university.FieldNotes) {
		fields = append(fields, university.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UniversityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UniversityMutation) ClearField(name string) error {
	switch name {
	case university.FieldDeadline:
		m.ClearDeadline()
		return nil
	case university.FieldTimezone:
		m.ClearTimezone()
		return nil
	case university.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown University nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UniversityMutation) ResetField(name string) error {
	switch name {
	case university.FieldApplicantID:
		m.ResetApplicantID()
		return nil
	case university.FieldName:
		m.ResetName()
		return nil
	case university.FieldProgram:
		m.ResetProgram()
		return nil
	case university.FieldSemester:
		m.ResetSemester()
		return nil
	case university.FieldDeadline:
		m.ResetDeadline()
		return nil
	case university.FieldTimezone:
		m.ResetTimezone()
		return nil
	case university.FieldStatus:
		m.ResetStatus()
		return nil
	case university.FieldNotes:
		m.ResetNotes()
		return nil
	case university.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case university.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown University field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UniversityMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.applicant != nil {
		edges = append(edges, university.EdgeApplicant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UniversityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case university.EdgeApplicant:
		if id := m.applicant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UniversityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UniversityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UniversityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapplicant {
		edges = append(edges, university.EdgeApplicant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UniversityMutation) EdgeCleared(name string) bool {
	switch name {
	case university.EdgeApplicant:
		return m.clearedapplicant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UniversityMutation) ClearEdge(name string) error {
	switch name {
	case university.EdgeApplicant:
		m.ClearApplicant()
		return nil
	}
	return fmt.Errorf("unknown University unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UniversityMutation) ResetEdge(name string) error {
	switch name {
	case university.EdgeApplicant:
		m.ResetApplicant()
		return nil
	}
	return fmt.Errorf("unknown University edge %s", name)
}
