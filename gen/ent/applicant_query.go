// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
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

// ApplicantQuery is the builder for querying Applicant entities.
type ApplicantQuery struct {
	config
	ctx              *QueryContext
	order            []applicant.OrderOption
	inters           []Interceptor
	predicates       []predicate.Applicant
	withUniversities *UniversityQuery
	withEvaluations  *EvaluationQuery
	withFiles        *TranscriptFileQuery
	withJobs         *ExtractJobQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ApplicantQuery builder.
func (_q *ApplicantQuery) Where(ps ...predicate.Applicant) *ApplicantQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ApplicantQuery) Limit(limit int) *ApplicantQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ApplicantQuery) Offset(offset int) *ApplicantQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ApplicantQuery) Unique(unique bool) *ApplicantQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ApplicantQuery) Order(o ...applicant.OrderOption) *ApplicantQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryUniversities chains the current query on the "universities" edge.
func (_q *ApplicantQuery) QueryUniversities() *UniversityQuery {
	query := (&UniversityClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(applicant.Table, applicant.FieldID, selector),
			sqlgraph.To(university.Table, university.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, applicant.UniversitiesTable, applicant.UniversitiesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvaluations chains the current query on the "evaluations" edge.
func (_q *ApplicantQuery) QueryEvaluations() *EvaluationQuery {
	query := (&EvaluationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(applicant.Table, applicant.FieldID, selector),
			sqlgraph.To(evaluation.Table, evaluation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, applicant.EvaluationsTable, applicant.EvaluationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFiles chains the current query on the "files" edge.
func (_q *ApplicantQuery) QueryFiles() *TranscriptFileQuery {
	query := (&TranscriptFileClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(applicant.Table, applicant.FieldID, selector),
			sqlgraph.To(transcriptfile.Table, transcriptfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, applicant.FilesTable, applicant.FilesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryJobs chains the current query on the "jobs" edge.
func (_q *ApplicantQuery) QueryJobs() *ExtractJobQuery {
	query := (&ExtractJobClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(applicant.Table, applicant.FieldID, selector),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, applicant.JobsTable, applicant.JobsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Applicant entity from the query.
// Returns a *NotFoundError when no Applicant was found.
func (_q *ApplicantQuery) First(ctx context.Context) (*Applicant, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{applicant.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ApplicantQuery) FirstX(ctx context.Context) *Applicant {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Applicant ID from the query.
// Returns a *NotFoundError when no Applicant ID was found.
func (_q *ApplicantQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{applicant.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ApplicantQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Applicant entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Applicant entity is found.
// Returns a *NotFoundError when no Applicant entities are found.
func (_q *ApplicantQuery) Only(ctx context.Context) (*Applicant, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{applicant.Label}
	default:
		return nil, &NotSingularError{applicant.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ApplicantQuery) OnlyX(ctx context.Context) *Applicant {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Applicant ID in the query.
// Returns a *NotSingularError when more than one Applicant ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ApplicantQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{applicant.Label}
	default:
		err = &NotSingularError{applicant.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ApplicantQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Applicants.
func (_q *ApplicantQuery) All(ctx context.Context) ([]*Applicant, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Applicant, *ApplicantQuery]()
	return withInterceptors[[]*Applicant](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ApplicantQuery) AllX(ctx context.Context) []*Applicant {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Applicant IDs.
func (_q *ApplicantQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(applicant.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ApplicantQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ApplicantQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ApplicantQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ApplicantQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ApplicantQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ApplicantQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ApplicantQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ApplicantQuery) Clone() *ApplicantQuery {
	if _q == nil {
		return nil
	}
	return &ApplicantQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]applicant.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.Applicant{}, _q.predicates...),
		withUniversities: _q.withUniversities.Clone(),
		withEvaluations:  _q.withEvaluations.Clone(),
		withFiles:        _q.withFiles.Clone(),
		withJobs:         _q.withJobs.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithUniversities tells the query-builder to eager-load the nodes that are connected to
// the "universities" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ApplicantQuery) WithUniversities(opts ...func(*UniversityQuery)) *ApplicantQuery {
	query := (&UniversityClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUniversities = query
	return _q
}

// WithEvaluations tells the query-builder to eager-load the nodes that are connected to
// the "evaluations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ApplicantQuery) WithEvaluations(opts ...func(*EvaluationQuery)) *ApplicantQuery {
	query := (&EvaluationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvaluations = query
	return _q
}

// WithFiles tells the query-builder to eager-load the nodes that are connected to
// the "files" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ApplicantQuery) WithFiles(opts ...func(*TranscriptFileQuery)) *ApplicantQuery {
	query := (&TranscriptFileClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFiles = query
	return _q
}

// WithJobs tells the query-builder to eager-load the nodes that are connected to
// the "jobs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ApplicantQuery) WithJobs(opts ...func(*ExtractJobQuery)) *ApplicantQuery {
	query := (&ExtractJobClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withJobs = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Applicant.Query().
//		GroupBy(applicant.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ApplicantQuery) GroupBy(field string, fields ...string) *ApplicantGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ApplicantGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = applicant.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Applicant.Query().
//		Select(applicant.FieldName).
//		Scan(ctx, &v)
func (_q *ApplicantQuery) Select(fields ...string) *ApplicantSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ApplicantSelect{ApplicantQuery: _q}
	sbuild.label = applicant.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ApplicantSelect configured with the given aggregations.
func (_q *ApplicantQuery) Aggregate(fns ...AggregateFunc) *ApplicantSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ApplicantQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !applicant.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ApplicantQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Applicant, error) {
	var (
		nodes       = []*Applicant{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withUniversities != nil,
			_q.withEvaluations != nil,
			_q.withFiles != nil,
			_q.withJobs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Applicant).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Applicant{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withUniversities; query != nil {
		if err := _q.loadUniversities(ctx, query, nodes,
			func(n *Applicant) { n.Edges.Universities = []*University{} },
			func(n *Applicant, e *University) { n.Edges.Universities = append(n.Edges.Universities, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvaluations; query != nil {
		if err := _q.loadEvaluations(ctx, query, nodes,
			func(n *Applicant) { n.Edges.Evaluations = []*Evaluation{} },
			func(n *Applicant, e *Evaluation) { n.Edges.Evaluations = append(n.Edges.Evaluations, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withFiles; query != nil {
		if err := _q.loadFiles(ctx, query, nodes,
			func(n *Applicant) { n.Edges.Files = []*TranscriptFile{} },
			func(n *Applicant, e *TranscriptFile) { n.Edges.Files = append(n.Edges.Files, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withJobs; query != nil {
		if err := _q.loadJobs(ctx, query, nodes,
			func(n *Applicant) { n.Edges.Jobs = []*ExtractJob{} },
			func(n *Applicant, e *ExtractJob) { n.Edges.Jobs = append(n.Edges.Jobs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ApplicantQuery) loadUniversities(ctx context.Context, query *UniversityQuery, nodes []*Applicant, init func(*Applicant), assign func(*Applicant, *University)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Applicant)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(university.FieldApplicantID)
	}
	query.Where(predicate.University(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(applicant.UniversitiesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ApplicantID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "applicant_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ApplicantQuery) loadEvaluations(ctx context.Context, query *EvaluationQuery, nodes []*Applicant, init func(*Applicant), assign func(*Applicant, *Evaluation)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Applicant)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(evaluation.FieldApplicantID)
	}
	query.Where(predicate.Evaluation(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(applicant.EvaluationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ApplicantID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "applicant_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ApplicantQuery) loadFiles(ctx context.Context, query *TranscriptFileQuery, nodes []*Applicant, init func(*Applicant), assign func(*Applicant, *TranscriptFile)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Applicant)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(transcriptfile.FieldApplicantID)
	}
	query.Where(predicate.TranscriptFile(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(applicant.FilesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ApplicantID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "applicant_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ApplicantQuery) loadJobs(ctx context.Context, query *ExtractJobQuery, nodes []*Applicant, init func(*Applicant), assign func(*Applicant, *ExtractJob)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Applicant)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(extractjob.FieldApplicantID)
	}
	query.Where(predicate.ExtractJob(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(applicant.JobsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ApplicantID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "applicant_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ApplicantQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ApplicantQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(applicant.Table, applicant.Columns, sqlgraph.NewFieldSpec(applicant.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, applicant.FieldID)
		for i := range fields {
			if fields[i] != applicant.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ApplicantQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(applicant.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = applicant.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ApplicantGroupBy is the group-by builder for Applicant entities.
type ApplicantGroupBy struct {
	selector
	build *ApplicantQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ApplicantGroupBy) Aggregate(fns ...AggregateFunc) *ApplicantGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ApplicantGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ApplicantQuery, *ApplicantGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ApplicantGroupBy) sqlScan(ctx context.Context, root *ApplicantQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ApplicantSelect is the builder for selecting fields of Applicant entities.
type ApplicantSelect struct {
	*ApplicantQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ApplicantSelect) Aggregate(fns ...AggregateFunc) *ApplicantSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ApplicantSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ApplicantQuery, *ApplicantSelect](ctx, _s.ApplicantQuery, _s, _s.inters, v)
}

func (_s *ApplicantSelect) sqlScan(ctx context.Context, root *ApplicantQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
