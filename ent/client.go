// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/funnel-ops/funnel/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/funnel-ops/funnel/ent/capturedstep"
	"github.com/funnel-ops/funnel/ent/runevent"
	"github.com/funnel-ops/funnel/ent/taskrun"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CapturedStep is the client for interacting with the CapturedStep builders.
	CapturedStep *CapturedStepClient
	// RunEvent is the client for interacting with the RunEvent builders.
	RunEvent *RunEventClient
	// TaskRun is the client for interacting with the TaskRun builders.
	TaskRun *TaskRunClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CapturedStep = NewCapturedStepClient(c.config)
	c.RunEvent = NewRunEventClient(c.config)
	c.TaskRun = NewTaskRunClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		CapturedStep: NewCapturedStepClient(cfg),
		RunEvent:     NewRunEventClient(cfg),
		TaskRun:      NewTaskRunClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		CapturedStep: NewCapturedStepClient(cfg),
		RunEvent:     NewRunEventClient(cfg),
		TaskRun:      NewTaskRunClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CapturedStep.
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
	c.CapturedStep.Use(hooks...)
	c.RunEvent.Use(hooks...)
	c.TaskRun.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CapturedStep.Intercept(interceptors...)
	c.RunEvent.Intercept(interceptors...)
	c.TaskRun.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CapturedStepMutation:
		return c.CapturedStep.mutate(ctx, m)
	case *RunEventMutation:
		return c.RunEvent.mutate(ctx, m)
	case *TaskRunMutation:
		return c.TaskRun.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CapturedStepClient is a client for the CapturedStep schema.
type CapturedStepClient struct {
	config
}

// NewCapturedStepClient returns a client for the CapturedStep from the given config.
func NewCapturedStepClient(c config) *CapturedStepClient {
	return &CapturedStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `capturedstep.Hooks(f(g(h())))`.
func (c *CapturedStepClient) Use(hooks ...Hook) {
	c.hooks.CapturedStep = append(c.hooks.CapturedStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `capturedstep.Intercept(f(g(h())))`.
func (c *CapturedStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.CapturedStep = append(c.inters.CapturedStep, interceptors...)
}

// Create returns a builder for creating a CapturedStep entity.
func (c *CapturedStepClient) Create() *CapturedStepCreate {
	mutation := newCapturedStepMutation(c.config, OpCreate)
	return &CapturedStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CapturedStep entities.
func (c *CapturedStepClient) CreateBulk(builders ...*CapturedStepCreate) *CapturedStepCreateBulk {
	return &CapturedStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CapturedStepClient) MapCreateBulk(slice any, setFunc func(*CapturedStepCreate, int)) *CapturedStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CapturedStepCreateBulk{err: fmt.Errorf("calling to CapturedStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CapturedStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CapturedStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CapturedStep.
func (c *CapturedStepClient) Update() *CapturedStepUpdate {
	mutation := newCapturedStepMutation(c.config, OpUpdate)
	return &CapturedStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CapturedStepClient) UpdateOne(_m *CapturedStep) *CapturedStepUpdateOne {
	mutation := newCapturedStepMutation(c.config, OpUpdateOne, withCapturedStep(_m))
	return &CapturedStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CapturedStepClient) UpdateOneID(id string) *CapturedStepUpdateOne {
	mutation := newCapturedStepMutation(c.config, OpUpdateOne, withCapturedStepID(id))
	return &CapturedStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CapturedStep.
func (c *CapturedStepClient) Delete() *CapturedStepDelete {
	mutation := newCapturedStepMutation(c.config, OpDelete)
	return &CapturedStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CapturedStepClient) DeleteOne(_m *CapturedStep) *CapturedStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CapturedStepClient) DeleteOneID(id string) *CapturedStepDeleteOne {
	builder := c.Delete().Where(capturedstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CapturedStepDeleteOne{builder}
}

// Query returns a query builder for CapturedStep.
func (c *CapturedStepClient) Query() *CapturedStepQuery {
	return &CapturedStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCapturedStep},
		inters: c.Interceptors(),
	}
}

// Get returns a CapturedStep entity by its id.
func (c *CapturedStepClient) Get(ctx context.Context, id string) (*CapturedStep, error) {
	return c.Query().Where(capturedstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CapturedStepClient) GetX(ctx context.Context, id string) *CapturedStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a CapturedStep.
func (c *CapturedStepClient) QueryRun(_m *CapturedStep) *TaskRunQuery {
	query := (&TaskRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(capturedstep.Table, capturedstep.FieldID, id),
			sqlgraph.To(taskrun.Table, taskrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, capturedstep.RunTable, capturedstep.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CapturedStepClient) Hooks() []Hook {
	return c.hooks.CapturedStep
}

// Interceptors returns the client interceptors.
func (c *CapturedStepClient) Interceptors() []Interceptor {
	return c.inters.CapturedStep
}

func (c *CapturedStepClient) mutate(ctx context.Context, m *CapturedStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CapturedStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CapturedStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CapturedStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CapturedStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CapturedStep mutation op: %q", m.Op())
	}
}

// RunEventClient is a client for the RunEvent schema.
type RunEventClient struct {
	config
}

// NewRunEventClient returns a client for the RunEvent from the given config.
func NewRunEventClient(c config) *RunEventClient {
	return &RunEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `runevent.Hooks(f(g(h())))`.
func (c *RunEventClient) Use(hooks ...Hook) {
	c.hooks.RunEvent = append(c.hooks.RunEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `runevent.Intercept(f(g(h())))`.
func (c *RunEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RunEvent = append(c.inters.RunEvent, interceptors...)
}

// Create returns a builder for creating a RunEvent entity.
func (c *RunEventClient) Create() *RunEventCreate {
	mutation := newRunEventMutation(c.config, OpCreate)
	return &RunEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RunEvent entities.
func (c *RunEventClient) CreateBulk(builders ...*RunEventCreate) *RunEventCreateBulk {
	return &RunEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunEventClient) MapCreateBulk(slice any, setFunc func(*RunEventCreate, int)) *RunEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunEventCreateBulk{err: fmt.Errorf("calling to RunEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RunEvent.
func (c *RunEventClient) Update() *RunEventUpdate {
	mutation := newRunEventMutation(c.config, OpUpdate)
	return &RunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunEventClient) UpdateOne(_m *RunEvent) *RunEventUpdateOne {
	mutation := newRunEventMutation(c.config, OpUpdateOne, withRunEvent(_m))
	return &RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunEventClient) UpdateOneID(id string) *RunEventUpdateOne {
	mutation := newRunEventMutation(c.config, OpUpdateOne, withRunEventID(id))
	return &RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RunEvent.
func (c *RunEventClient) Delete() *RunEventDelete {
	mutation := newRunEventMutation(c.config, OpDelete)
	return &RunEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunEventClient) DeleteOne(_m *RunEvent) *RunEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunEventClient) DeleteOneID(id string) *RunEventDeleteOne {
	builder := c.Delete().Where(runevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunEventDeleteOne{builder}
}

// Query returns a query builder for RunEvent.
func (c *RunEventClient) Query() *RunEventQuery {
	return &RunEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRunEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RunEvent entity by its id.
func (c *RunEventClient) Get(ctx context.Context, id string) (*RunEvent, error) {
	return c.Query().Where(runevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunEventClient) GetX(ctx context.Context, id string) *RunEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a RunEvent.
func (c *RunEventClient) QueryRun(_m *RunEvent) *TaskRunQuery {
	query := (&TaskRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(runevent.Table, runevent.FieldID, id),
			sqlgraph.To(taskrun.Table, taskrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, runevent.RunTable, runevent.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunEventClient) Hooks() []Hook {
	return c.hooks.RunEvent
}

// Interceptors returns the client interceptors.
func (c *RunEventClient) Interceptors() []Interceptor {
	return c.inters.RunEvent
}

func (c *RunEventClient) mutate(ctx context.Context, m *RunEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RunEvent mutation op: %q", m.Op())
	}
}

// TaskRunClient is a client for the TaskRun schema.
type TaskRunClient struct {
	config
}

// NewTaskRunClient returns a client for the TaskRun from the given config.
func NewTaskRunClient(c config) *TaskRunClient {
	return &TaskRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskrun.Hooks(f(g(h())))`.
func (c *TaskRunClient) Use(hooks ...Hook) {
	c.hooks.TaskRun = append(c.hooks.TaskRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskrun.Intercept(f(g(h())))`.
func (c *TaskRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskRun = append(c.inters.TaskRun, interceptors...)
}

// Create returns a builder for creating a TaskRun entity.
func (c *TaskRunClient) Create() *TaskRunCreate {
	mutation := newTaskRunMutation(c.config, OpCreate)
	return &TaskRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskRun entities.
func (c *TaskRunClient) CreateBulk(builders ...*TaskRunCreate) *TaskRunCreateBulk {
	return &TaskRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskRunClient) MapCreateBulk(slice any, setFunc func(*TaskRunCreate, int)) *TaskRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskRunCreateBulk{err: fmt.Errorf("calling to TaskRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskRun.
func (c *TaskRunClient) Update() *TaskRunUpdate {
	mutation := newTaskRunMutation(c.config, OpUpdate)
	return &TaskRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskRunClient) UpdateOne(_m *TaskRun) *TaskRunUpdateOne {
	mutation := newTaskRunMutation(c.config, OpUpdateOne, withTaskRun(_m))
	return &TaskRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskRunClient) UpdateOneID(id string) *TaskRunUpdateOne {
	mutation := newTaskRunMutation(c.config, OpUpdateOne, withTaskRunID(id))
	return &TaskRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskRun.
func (c *TaskRunClient) Delete() *TaskRunDelete {
	mutation := newTaskRunMutation(c.config, OpDelete)
	return &TaskRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskRunClient) DeleteOne(_m *TaskRun) *TaskRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskRunClient) DeleteOneID(id string) *TaskRunDeleteOne {
	builder := c.Delete().Where(taskrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskRunDeleteOne{builder}
}

// Query returns a query builder for TaskRun.
func (c *TaskRunClient) Query() *TaskRunQuery {
	return &TaskRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskRun},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskRun entity by its id.
func (c *TaskRunClient) Get(ctx context.Context, id string) (*TaskRun, error) {
	return c.Query().Where(taskrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskRunClient) GetX(ctx context.Context, id string) *TaskRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySteps queries the steps edge of a TaskRun.
func (c *TaskRunClient) QuerySteps(_m *TaskRun) *CapturedStepQuery {
	query := (&CapturedStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskrun.Table, taskrun.FieldID, id),
			sqlgraph.To(capturedstep.Table, capturedstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, taskrun.StepsTable, taskrun.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a TaskRun.
func (c *TaskRunClient) QueryEvents(_m *TaskRun) *RunEventQuery {
	query := (&RunEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskrun.Table, taskrun.FieldID, id),
			sqlgraph.To(runevent.Table, runevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, taskrun.EventsTable, taskrun.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskRunClient) Hooks() []Hook {
	return c.hooks.TaskRun
}

// Interceptors returns the client interceptors.
func (c *TaskRunClient) Interceptors() []Interceptor {
	return c.inters.TaskRun
}

func (c *TaskRunClient) mutate(ctx context.Context, m *TaskRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskRun mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CapturedStep, RunEvent, TaskRun []ent.Hook
	}
	inters struct {
		CapturedStep, RunEvent, TaskRun []ent.Interceptor
	}
)
