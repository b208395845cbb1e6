// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/Salam-35/PhdTrack-sub000/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/applicant"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluation"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/evaluationcourse"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/extractjob"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/transcriptfile"
	"github.com/Salam-35/PhdTrack-sub000/gen/ent/university"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Applicant is the client for interacting with the Applicant builders.
	Applicant *ApplicantClient
	// Evaluation is the client for interacting with the Evaluation builders.
	Evaluation *EvaluationClient
	// EvaluationCourse is the client for interacting with the EvaluationCourse builders.
	EvaluationCourse *EvaluationCourseClient
	// ExtractJob is the client for interacting with the ExtractJob builders.
	ExtractJob *ExtractJobClient
	// TranscriptFile is the client for interacting with the TranscriptFile builders.
	TranscriptFile *TranscriptFileClient
	// University is the client for interacting with the University builders.
	University *UniversityClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Applicant = NewApplicantClient(c.config)
	c.Evaluation = NewEvaluationClient(c.config)
	c.EvaluationCourse = NewEvaluationCourseClient(c.config)
	c.ExtractJob = NewExtractJobClient(c.config)
	c.TranscriptFile = NewTranscriptFileClient(c.config)
	c.University = NewUniversityClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Applicant:        NewApplicantClient(cfg),
		Evaluation:       NewEvaluationClient(cfg),
		EvaluationCourse: NewEvaluationCourseClient(cfg),
		ExtractJob:       NewExtractJobClient(cfg),
		TranscriptFile:   NewTranscriptFileClient(cfg),
		University:       NewUniversityClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Applicant:        NewApplicantClient(cfg),
		Evaluation:       NewEvaluationClient(cfg),
		EvaluationCourse: NewEvaluationCourseClient(cfg),
		ExtractJob:       NewExtractJobClient(cfg),
		TranscriptFile:   NewTranscriptFileClient(cfg),
		University:       NewUniversityClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Applicant.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Applicant, c.Evaluation, c.EvaluationCourse, c.ExtractJob, c.TranscriptFile,
		c.University,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Applicant, c.Evaluation, c.EvaluationCourse, c.ExtractJob, c.TranscriptFile,
		c.University,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ApplicantMutation:
		return c.Applicant.mutate(ctx, m)
	case *EvaluationMutation:
		return c.Evaluation.mutate(ctx, m)
	case *EvaluationCourseMutation:
		return c.EvaluationCourse.mutate(ctx, m)
	case *ExtractJobMutation:
		return c.ExtractJob.mutate(ctx, m)
	case *TranscriptFileMutation:
		return c.TranscriptFile.mutate(ctx, m)
	case *UniversityMutation:
		return c.University.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ApplicantClient is a client for the Applicant schema.
type ApplicantClient struct {
	config
}

// NewApplicantClient returns a client for the Applicant from the given config.
func NewApplicantClient(c config) *ApplicantClient {
	return &ApplicantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `applicant.Hooks(f(g(h())))`.
func (c *ApplicantClient) Use(hooks ...Hook) {
	c.hooks.Applicant = append(c.hooks.Applicant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `applicant.Intercept(f(g(h())))`.
func (c *ApplicantClient) Intercept(interceptors ...Interceptor) {
	c.inters.Applicant = append(c.inters.Applicant, interceptors...)
}

// Create returns a builder for creating a Applicant entity.
func (c *ApplicantClient) Create() *ApplicantCreate {
	mutation := newApplicantMutation(c.config, OpCreate)
	return &ApplicantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Applicant entities.
func (c *ApplicantClient) CreateBulk(builders ...*ApplicantCreate) *ApplicantCreateBulk {
	return &ApplicantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApplicantClient) MapCreateBulk(slice any, setFunc func(*ApplicantCreate, int)) *ApplicantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApplicantCreateBulk{err: fmt.Errorf("calling to ApplicantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApplicantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApplicantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Applicant.
func (c *ApplicantClient) Update() *ApplicantUpdate {
	mutation := newApplicantMutation(c.config, OpUpdate)
	return &ApplicantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApplicantClient) UpdateOne(_m *Applicant) *ApplicantUpdateOne {
	mutation := newApplicantMutation(c.config, OpUpdateOne, withApplicant(_m))
	return &ApplicantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApplicantClient) UpdateOneID(id uuid.UUID) *ApplicantUpdateOne {
	mutation := newApplicantMutation(c.config, OpUpdateOne, withApplicantID(id))
	return &ApplicantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Applicant.
func (c *ApplicantClient) Delete() *ApplicantDelete {
	mutation := newApplicantMutation(c.config, OpDelete)
	return &ApplicantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApplicantClient) DeleteOne(_m *Applicant) *ApplicantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApplicantClient) DeleteOneID(id uuid.UUID) *ApplicantDeleteOne {
	builder := c.Delete().Where(applicant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApplicantDeleteOne{builder}
}

// Query returns a query builder for Applicant.
func (c *ApplicantClient) Query() *ApplicantQuery {
	return &ApplicantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApplicant},
		inters: c.Interceptors(),
	}
}

// Get returns a Applicant entity by its id.
func (c *ApplicantClient) Get(ctx context.Context, id uuid.UUID) (*Applicant, error) {
	return c.Query().Where(applicant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApplicantClient) GetX(ctx context.Context, id uuid.UUID) *Applicant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUniversities queries the universities edge of a Applicant.
func (c *ApplicantClient) QueryUniversities(_m *Applicant) *UniversityQuery {
	query := (&UniversityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(applicant.Table, applicant.FieldID, id),
			sqlgraph.To(university.Table, university.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, applicant.UniversitiesTable, applicant.UniversitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvaluations queries the evaluations edge of a Applicant.
func (c *ApplicantClient) QueryEvaluations(_m *Applicant) *EvaluationQuery {
	query := (&EvaluationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(applicant.Table, applicant.FieldID, id),
			sqlgraph.To(evaluation.Table, evaluation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, applicant.EvaluationsTable, applicant.EvaluationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFiles queries the files edge of a Applicant.
func (c *ApplicantClient) QueryFiles(_m *Applicant) *TranscriptFileQuery {
	query := (&TranscriptFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(applicant.Table, applicant.FieldID, id),
			sqlgraph.To(transcriptfile.Table, transcriptfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, applicant.FilesTable, applicant.FilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Applicant.
func (c *ApplicantClient) QueryJobs(_m *Applicant) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(applicant.Table, applicant.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, applicant.JobsTable, applicant.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ApplicantClient) Hooks() []Hook {
	return c.hooks.Applicant
}

// Interceptors returns the client interceptors.
func (c *ApplicantClient) Interceptors() []Interceptor {
	return c.inters.Applicant
}

func (c *ApplicantClient) mutate(ctx context.Context, m *ApplicantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApplicantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApplicantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApplicantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApplicantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Applicant mutation op: %q", m.Op())
	}
}

// EvaluationClient is a client for the Evaluation schema.
type EvaluationClient struct {
	config
}

// NewEvaluationClient returns a client for the Evaluation from the given config.
func NewEvaluationClient(c config) *EvaluationClient {
	return &EvaluationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluation.Hooks(f(g(h())))`.
func (c *EvaluationClient) Use(hooks ...Hook) {
	c.hooks.Evaluation = append(c.hooks.Evaluation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluation.Intercept(f(g(h())))`.
func (c *EvaluationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Evaluation = append(c.inters.Evaluation, interceptors...)
}

// Create returns a builder for creating a Evaluation entity.
func (c *EvaluationClient) Create() *EvaluationCreate {
	mutation := newEvaluationMutation(c.config, OpCreate)
	return &EvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Evaluation entities.
func (c *EvaluationClient) CreateBulk(builders ...*EvaluationCreate) *EvaluationCreateBulk {
	return &EvaluationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluationClient) MapCreateBulk(slice any, setFunc func(*EvaluationCreate, int)) *EvaluationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluationCreateBulk{err: fmt.Errorf("calling to EvaluationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Evaluation.
func (c *EvaluationClient) Update() *EvaluationUpdate {
	mutation := newEvaluationMutation(c.config, OpUpdate)
	return &EvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluationClient) UpdateOne(_m *Evaluation) *EvaluationUpdateOne {
	mutation := newEvaluationMutation(c.config, OpUpdateOne, withEvaluation(_m))
	return &EvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluationClient) UpdateOneID(id uuid.UUID) *EvaluationUpdateOne {
	mutation := newEvaluationMutation(c.config, OpUpdateOne, withEvaluationID(id))
	return &EvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Evaluation.
func (c *EvaluationClient) Delete() *EvaluationDelete {
	mutation := newEvaluationMutation(c.config, OpDelete)
	return &EvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluationClient) DeleteOne(_m *Evaluation) *EvaluationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluationClient) DeleteOneID(id uuid.UUID) *EvaluationDeleteOne {
	builder := c.Delete().Where(evaluation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluationDeleteOne{builder}
}

// Query returns a query builder for Evaluation.
func (c *EvaluationClient) Query() *EvaluationQuery {
	return &EvaluationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluation},
		inters: c.Interceptors(),
	}
}

// Get returns a Evaluation entity by its id.
func (c *EvaluationClient) Get(ctx context.Context, id uuid.UUID) (*Evaluation, error) {
	return c.Query().Where(evaluation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluationClient) GetX(ctx context.Context, id uuid.UUID) *Evaluation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplicant queries the applicant edge of a Evaluation.
func (c *EvaluationClient) QueryApplicant(_m *Evaluation) *ApplicantQuery {
	query := (&ApplicantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluation.Table, evaluation.FieldID, id),
			sqlgraph.To(applicant.Table, applicant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evaluation.ApplicantTable, evaluation.ApplicantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCourses queries the courses edge of a Evaluation.
func (c *EvaluationClient) QueryCourses(_m *Evaluation) *EvaluationCourseQuery {
	query := (&EvaluationCourseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluation.Table, evaluation.FieldID, id),
			sqlgraph.To(evaluationcourse.Table, evaluationcourse.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, evaluation.CoursesTable, evaluation.CoursesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Evaluation.
func (c *EvaluationClient) QueryJobs(_m *Evaluation) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluation.Table, evaluation.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, evaluation.JobsTable, evaluation.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvaluationClient) Hooks() []Hook {
	return c.hooks.Evaluation
}

// Interceptors returns the client interceptors.
func (c *EvaluationClient) Interceptors() []Interceptor {
	return c.inters.Evaluation
}

func (c *EvaluationClient) mutate(ctx context.Context, m *EvaluationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Evaluation mutation op: %q", m.Op())
	}
}

// EvaluationCourseClient is a client for the EvaluationCourse schema.
type EvaluationCourseClient struct {
	config
}

// NewEvaluationCourseClient returns a client for the EvaluationCourse from the given config.
func NewEvaluationCourseClient(c config) *EvaluationCourseClient {
	return &EvaluationCourseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluationcourse.Hooks(f(g(h())))`.
func (c *EvaluationCourseClient) Use(hooks ...Hook) {
	c.hooks.EvaluationCourse = append(c.hooks.EvaluationCourse, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluationcourse.Intercept(f(g(h())))`.
func (c *EvaluationCourseClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvaluationCourse = append(c.inters.EvaluationCourse, interceptors...)
}

// Create returns a builder for creating a EvaluationCourse entity.
func (c *EvaluationCourseClient) Create() *EvaluationCourseCreate {
	mutation := newEvaluationCourseMutation(c.config, OpCreate)
	return &EvaluationCourseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvaluationCourse entities.
func (c *EvaluationCourseClient) CreateBulk(builders ...*EvaluationCourseCreate) *EvaluationCourseCreateBulk {
	return &EvaluationCourseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluationCourseClient) MapCreateBulk(slice any, setFunc func(*EvaluationCourseCreate, int)) *EvaluationCourseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluationCourseCreateBulk{err: fmt.Errorf("calling to EvaluationCourseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluationCourseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluationCourseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvaluationCourse.
func (c *EvaluationCourseClient) Update() *EvaluationCourseUpdate {
	mutation := newEvaluationCourseMutation(c.config, OpUpdate)
	return &EvaluationCourseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluationCourseClient) UpdateOne(_m *EvaluationCourse) *EvaluationCourseUpdateOne {
	mutation := newEvaluationCourseMutation(c.config, OpUpdateOne, withEvaluationCourse(_m))
	return &EvaluationCourseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluationCourseClient) UpdateOneID(id uuid.UUID) *EvaluationCourseUpdateOne {
	mutation := newEvaluationCourseMutation(c.config, OpUpdateOne, withEvaluationCourseID(id))
	return &EvaluationCourseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvaluationCourse.
func (c *EvaluationCourseClient) Delete() *EvaluationCourseDelete {
	mutation := newEvaluationCourseMutation(c.config, OpDelete)
	return &EvaluationCourseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluationCourseClient) DeleteOne(_m *EvaluationCourse) *EvaluationCourseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluationCourseClient) DeleteOneID(id uuid.UUID) *EvaluationCourseDeleteOne {
	builder := c.Delete().Where(evaluationcourse.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluationCourseDeleteOne{builder}
}

// Query returns a query builder for EvaluationCourse.
func (c *EvaluationCourseClient) Query() *EvaluationCourseQuery {
	return &EvaluationCourseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluationCourse},
		inters: c.Interceptors(),
	}
}

// Get returns a EvaluationCourse entity by its id.
func (c *EvaluationCourseClient) Get(ctx context.Context, id uuid.UUID) (*EvaluationCourse, error) {
	return c.Query().Where(evaluationcourse.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluationCourseClient) GetX(ctx context.Context, id uuid.UUID) *EvaluationCourse {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvaluation queries the evaluation edge of a EvaluationCourse.
func (c *EvaluationCourseClient) QueryEvaluation(_m *EvaluationCourse) *EvaluationQuery {
	query := (&EvaluationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluationcourse.Table, evaluationcourse.FieldID, id),
			sqlgraph.To(evaluation.Table, evaluation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evaluationcourse.EvaluationTable, evaluationcourse.EvaluationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvaluationCourseClient) Hooks() []Hook {
	return c.hooks.EvaluationCourse
}

// Interceptors returns the client interceptors.
func (c *EvaluationCourseClient) Interceptors() []Interceptor {
	return c.inters.EvaluationCourse
}

func (c *EvaluationCourseClient) mutate(ctx context.Context, m *EvaluationCourseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluationCourseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluationCourseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluationCourseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluationCourseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvaluationCourse mutation op: %q", m.Op())
	}
}

// ExtractJobClient is a client for the ExtractJob schema.
type ExtractJobClient struct {
	config
}

// NewExtractJobClient returns a client for the ExtractJob from the given config.
func NewExtractJobClient(c config) *ExtractJobClient {
	return &ExtractJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractjob.Hooks(f(g(h())))`.
func (c *ExtractJobClient) Use(hooks ...Hook) {
	c.hooks.ExtractJob = append(c.hooks.ExtractJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractjob.Intercept(f(g(h())))`.
func (c *ExtractJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractJob = append(c.inters.ExtractJob, interceptors...)
}

// Create returns a builder for creating a ExtractJob entity.
func (c *ExtractJobClient) Create() *ExtractJobCreate {
	mutation := newExtractJobMutation(c.config, OpCreate)
	return &ExtractJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractJob entities.
func (c *ExtractJobClient) CreateBulk(builders ...*ExtractJobCreate) *ExtractJobCreateBulk {
	return &ExtractJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractJobClient) MapCreateBulk(slice any, setFunc func(*ExtractJobCreate, int)) *ExtractJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractJobCreateBulk{err: fmt.Errorf("calling to ExtractJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractJob.
func (c *ExtractJobClient) Update() *ExtractJobUpdate {
	mutation := newExtractJobMutation(c.config, OpUpdate)
	return &ExtractJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractJobClient) UpdateOne(_m *ExtractJob) *ExtractJobUpdateOne {
	mutation := newExtractJobMutation(c.config, OpUpdateOne, withExtractJob(_m))
	return &ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractJobClient) UpdateOneID(id uuid.UUID) *ExtractJobUpdateOne {
	mutation := newExtractJobMutation(c.config, OpUpdateOne, withExtractJobID(id))
	return &ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractJob.
func (c *ExtractJobClient) Delete() *ExtractJobDelete {
	mutation := newExtractJobMutation(c.config, OpDelete)
	return &ExtractJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractJobClient) DeleteOne(_m *ExtractJob) *ExtractJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractJobClient) DeleteOneID(id uuid.UUID) *ExtractJobDeleteOne {
	builder := c.Delete().Where(extractjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractJobDeleteOne{builder}
}

// Query returns a query builder for ExtractJob.
func (c *ExtractJobClient) Query() *ExtractJobQuery {
	return &ExtractJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractJob entity by its id.
func (c *ExtractJobClient) Get(ctx context.Context, id uuid.UUID) (*ExtractJob, error) {
	return c.Query().Where(extractjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractJobClient) GetX(ctx context.Context, id uuid.UUID) *ExtractJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplicant queries the applicant edge of a ExtractJob.
func (c *ExtractJobClient) QueryApplicant(_m *ExtractJob) *ApplicantQuery {
	query := (&ApplicantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(applicant.Table, applicant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.ApplicantTable, extractjob.ApplicantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFile queries the file edge of a ExtractJob.
func (c *ExtractJobClient) QueryFile(_m *ExtractJob) *TranscriptFileQuery {
	query := (&TranscriptFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(transcriptfile.Table, transcriptfile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.FileTable, extractjob.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvaluation queries the evaluation edge of a ExtractJob.
func (c *ExtractJobClient) QueryEvaluation(_m *ExtractJob) *EvaluationQuery {
	query := (&EvaluationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(evaluation.Table, evaluation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.EvaluationTable, extractjob.EvaluationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractJobClient) Hooks() []Hook {
	return c.hooks.ExtractJob
}

// Interceptors returns the client interceptors.
func (c *ExtractJobClient) Interceptors() []Interceptor {
	return c.inters.ExtractJob
}

func (c *ExtractJobClient) mutate(ctx context.Context, m *ExtractJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractJob mutation op: %q", m.Op())
	}
}

// TranscriptFileClient is a client for the TranscriptFile schema.
type TranscriptFileClient struct {
	config
}

// NewTranscriptFileClient returns a client for the TranscriptFile from the given config.
func NewTranscriptFileClient(c config) *TranscriptFileClient {
	return &TranscriptFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transcriptfile.Hooks(f(g(h())))`.
func (c *TranscriptFileClient) Use(hooks ...Hook) {
	c.hooks.TranscriptFile = append(c.hooks.TranscriptFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transcriptfile.Intercept(f(g(h())))`.
func (c *TranscriptFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.TranscriptFile = append(c.inters.TranscriptFile, interceptors...)
}

// Create returns a builder for creating a TranscriptFile entity.
func (c *TranscriptFileClient) Create() *TranscriptFileCreate {
	mutation := newTranscriptFileMutation(c.config, OpCreate)
	return &TranscriptFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TranscriptFile entities.
func (c *TranscriptFileClient) CreateBulk(builders ...*TranscriptFileCreate) *TranscriptFileCreateBulk {
	return &TranscriptFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TranscriptFileClient) MapCreateBulk(slice any, setFunc func(*TranscriptFileCreate, int)) *TranscriptFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TranscriptFileCreateBulk{err: fmt.Errorf("calling to TranscriptFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TranscriptFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TranscriptFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TranscriptFile.
func (c *TranscriptFileClient) Update() *TranscriptFileUpdate {
	mutation := newTranscriptFileMutation(c.config, OpUpdate)
	return &TranscriptFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TranscriptFileClient) UpdateOne(_m *TranscriptFile) *TranscriptFileUpdateOne {
	mutation := newTranscriptFileMutation(c.config, OpUpdateOne, withTranscriptFile(_m))
	return &TranscriptFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TranscriptFileClient) UpdateOneID(id uuid.UUID) *TranscriptFileUpdateOne {
	mutation := newTranscriptFileMutation(c.config, OpUpdateOne, withTranscriptFileID(id))
	return &TranscriptFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TranscriptFile.
func (c *TranscriptFileClient) Delete() *TranscriptFileDelete {
	mutation := newTranscriptFileMutation(c.config, OpDelete)
	return &TranscriptFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TranscriptFileClient) DeleteOne(_m *TranscriptFile) *TranscriptFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TranscriptFileClient) DeleteOneID(id uuid.UUID) *TranscriptFileDeleteOne {
	builder := c.Delete().Where(transcriptfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TranscriptFileDeleteOne{builder}
}

// Query returns a query builder for TranscriptFile.
func (c *TranscriptFileClient) Query() *TranscriptFileQuery {
	return &TranscriptFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTranscriptFile},
		inters: c.Interceptors(),
	}
}

// Get returns a TranscriptFile entity by its id.
func (c *TranscriptFileClient) Get(ctx context.Context, id uuid.UUID) (*TranscriptFile, error) {
	return c.Query().Where(transcriptfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TranscriptFileClient) GetX(ctx context.Context, id uuid.UUID) *TranscriptFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplicant queries the applicant edge of a TranscriptFile.
func (c *TranscriptFileClient) QueryApplicant(_m *TranscriptFile) *ApplicantQuery {
	query := (&ApplicantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transcriptfile.Table, transcriptfile.FieldID, id),
			sqlgraph.To(applicant.Table, applicant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, transcriptfile.ApplicantTable, transcriptfile.ApplicantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a TranscriptFile.
func (c *TranscriptFileClient) QueryJobs(_m *TranscriptFile) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transcriptfile.Table, transcriptfile.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, transcriptfile.JobsTable, transcriptfile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TranscriptFileClient) Hooks() []Hook {
	return c.hooks.TranscriptFile
}

// Interceptors returns the client interceptors.
func (c *TranscriptFileClient) Interceptors() []Interceptor {
	return c.inters.TranscriptFile
}

func (c *TranscriptFileClient) mutate(ctx context.Context, m *TranscriptFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TranscriptFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TranscriptFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TranscriptFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TranscriptFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TranscriptFile mutation op: %q", m.Op())
	}
}

// UniversityClient is a client for the University schema.
type UniversityClient struct {
	config
}

// NewUniversityClient returns a client for the University from the given config.
func NewUniversityClient(c config) *UniversityClient {
	return &UniversityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `university.Hooks(f(g(h())))`.
func (c *UniversityClient) Use(hooks ...Hook) {
	c.hooks.University = append(c.hooks.University, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `university.Intercept(f(g(h())))`.
func (c *UniversityClient) Intercept(interceptors ...Interceptor) {
	c.inters.University = append(c.inters.University, interceptors...)
}

// Create returns a builder for creating a University entity.
func (c *UniversityClient) Create() *UniversityCreate {
	mutation := newUniversityMutation(c.config, OpCreate)
	return &UniversityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of University entities.
func (c *UniversityClient) CreateBulk(builders ...*UniversityCreate) *UniversityCreateBulk {
	return &UniversityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UniversityClient) MapCreateBulk(slice any, setFunc func(*UniversityCreate, int)) *UniversityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UniversityCreateBulk{err: fmt.Errorf("calling to UniversityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UniversityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UniversityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for University.
func (c *UniversityClient) Update() *UniversityUpdate {
	mutation := newUniversityMutation(c.config, OpUpdate)
	return &UniversityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UniversityClient) UpdateOne(_m *University) *UniversityUpdateOne {
	mutation := newUniversityMutation(c.config, OpUpdateOne, withUniversity(_m))
	return &UniversityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UniversityClient) UpdateOneID(id uuid.UUID) *UniversityUpdateOne {
	mutation := newUniversityMutation(c.config, OpUpdateOne, withUniversityID(id))
	return &UniversityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for University.
func (c *UniversityClient) Delete() *UniversityDelete {
	mutation := newUniversityMutation(c.config, OpDelete)
	return &UniversityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UniversityClient) DeleteOne(_m *University) *UniversityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UniversityClient) DeleteOneID(id uuid.UUID) *UniversityDeleteOne {
	builder := c.Delete().Where(university.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UniversityDeleteOne{builder}
}

// Query returns a query builder for University.
func (c *UniversityClient) Query() *UniversityQuery {
	return &UniversityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUniversity},
		inters: c.Interceptors(),
	}
}

// Get returns a University entity by its id.
func (c *UniversityClient) Get(ctx context.Context, id uuid.UUID) (*University, error) {
	return c.Query().Where(university.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UniversityClient) GetX(ctx context.Context, id uuid.UUID) *University {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplicant queries the applicant edge of a University.
func (c *UniversityClient) QueryApplicant(_m *University) *ApplicantQuery {
	query := (&ApplicantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(university.Table, university.FieldID, id),
			sqlgraph.To(applicant.Table, applicant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, university.ApplicantTable, university.ApplicantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UniversityClient) Hooks() []Hook {
	return c.hooks.University
}

// Interceptors returns the client interceptors.
func (c *UniversityClient) Interceptors() []Interceptor {
	return c.inters.University
}

func (c *UniversityClient) mutate(ctx context.Context, m *UniversityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UniversityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UniversityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UniversityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UniversityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown University mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Applicant, Evaluation, EvaluationCourse, ExtractJob, TranscriptFile,
		University []ent.Hook
	}
	inters struct {
		Applicant, Evaluation, EvaluationCourse, ExtractJob, TranscriptFile,
		University []ent.Interceptor
	}
)
