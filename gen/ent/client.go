// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/kyletan/ippt-tracker/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/kyletan/ippt-tracker/gen/ent/extractjob"
	"github.com/kyletan/ippt-tracker/gen/ent/scoresheet"
	"github.com/kyletan/ippt-tracker/gen/ent/soldierresult"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExtractJob is the client for interacting with the ExtractJob builders.
	ExtractJob *ExtractJobClient
	// Scoresheet is the client for interacting with the Scoresheet builders.
	Scoresheet *ScoresheetClient
	// SoldierResult is the client for interacting with the SoldierResult builders.
	SoldierResult *SoldierResultClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExtractJob = NewExtractJobClient(c.config)
	c.Scoresheet = NewScoresheetClient(c.config)
	c.SoldierResult = NewSoldierResultClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		ExtractJob:    NewExtractJobClient(cfg),
		Scoresheet:    NewScoresheetClient(cfg),
		SoldierResult: NewSoldierResultClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		ExtractJob:    NewExtractJobClient(cfg),
		Scoresheet:    NewScoresheetClient(cfg),
		SoldierResult: NewSoldierResultClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExtractJob.
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
	c.ExtractJob.Use(hooks...)
	c.Scoresheet.Use(hooks...)
	c.SoldierResult.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ExtractJob.Intercept(interceptors...)
	c.Scoresheet.Intercept(interceptors...)
	c.SoldierResult.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExtractJobMutation:
		return c.ExtractJob.mutate(ctx, m)
	case *ScoresheetMutation:
		return c.Scoresheet.mutate(ctx, m)
	case *SoldierResultMutation:
		return c.SoldierResult.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
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

// QueryScoresheet queries the scoresheet edge of a ExtractJob.
func (c *ExtractJobClient) QueryScoresheet(_m *ExtractJob) *ScoresheetQuery {
	query := (&ScoresheetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(scoresheet.Table, scoresheet.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractjob.ScoresheetTable, extractjob.ScoresheetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySoldiers queries the soldiers edge of a ExtractJob.
func (c *ExtractJobClient) QuerySoldiers(_m *ExtractJob) *SoldierResultQuery {
	query := (&SoldierResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractjob.Table, extractjob.FieldID, id),
			sqlgraph.To(soldierresult.Table, soldierresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, extractjob.SoldiersTable, extractjob.SoldiersColumn),
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

// ScoresheetClient is a client for the Scoresheet schema.
type ScoresheetClient struct {
	config
}

// NewScoresheetClient returns a client for the Scoresheet from the given config.
func NewScoresheetClient(c config) *ScoresheetClient {
	return &ScoresheetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scoresheet.Hooks(f(g(h())))`.
func (c *ScoresheetClient) Use(hooks ...Hook) {
	c.hooks.Scoresheet = append(c.hooks.Scoresheet, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scoresheet.Intercept(f(g(h())))`.
func (c *ScoresheetClient) Intercept(interceptors ...Interceptor) {
	c.inters.Scoresheet = append(c.inters.Scoresheet, interceptors...)
}

// Create returns a builder for creating a Scoresheet entity.
func (c *ScoresheetClient) Create() *ScoresheetCreate {
	mutation := newScoresheetMutation(c.config, OpCreate)
	return &ScoresheetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Scoresheet entities.
func (c *ScoresheetClient) CreateBulk(builders ...*ScoresheetCreate) *ScoresheetCreateBulk {
	return &ScoresheetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScoresheetClient) MapCreateBulk(slice any, setFunc func(*ScoresheetCreate, int)) *ScoresheetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScoresheetCreateBulk{err: fmt.Errorf("calling to ScoresheetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScoresheetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScoresheetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Scoresheet.
func (c *ScoresheetClient) Update() *ScoresheetUpdate {
	mutation := newScoresheetMutation(c.config, OpUpdate)
	return &ScoresheetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScoresheetClient) UpdateOne(_m *Scoresheet) *ScoresheetUpdateOne {
	mutation := newScoresheetMutation(c.config, OpUpdateOne, withScoresheet(_m))
	return &ScoresheetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScoresheetClient) UpdateOneID(id uuid.UUID) *ScoresheetUpdateOne {
	mutation := newScoresheetMutation(c.config, OpUpdateOne, withScoresheetID(id))
	return &ScoresheetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Scoresheet.
func (c *ScoresheetClient) Delete() *ScoresheetDelete {
	mutation := newScoresheetMutation(c.config, OpDelete)
	return &ScoresheetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScoresheetClient) DeleteOne(_m *Scoresheet) *ScoresheetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScoresheetClient) DeleteOneID(id uuid.UUID) *ScoresheetDeleteOne {
	builder := c.Delete().Where(scoresheet.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScoresheetDeleteOne{builder}
}

// Query returns a query builder for Scoresheet.
func (c *ScoresheetClient) Query() *ScoresheetQuery {
	return &ScoresheetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScoresheet},
		inters: c.Interceptors(),
	}
}

// Get returns a Scoresheet entity by its id.
func (c *ScoresheetClient) Get(ctx context.Context, id uuid.UUID) (*Scoresheet, error) {
	return c.Query().Where(scoresheet.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScoresheetClient) GetX(ctx context.Context, id uuid.UUID) *Scoresheet {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a Scoresheet.
func (c *ScoresheetClient) QueryJobs(_m *Scoresheet) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scoresheet.Table, scoresheet.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scoresheet.JobsTable, scoresheet.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySoldiers queries the soldiers edge of a Scoresheet.
func (c *ScoresheetClient) QuerySoldiers(_m *Scoresheet) *SoldierResultQuery {
	query := (&SoldierResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scoresheet.Table, scoresheet.FieldID, id),
			sqlgraph.To(soldierresult.Table, soldierresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scoresheet.SoldiersTable, scoresheet.SoldiersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScoresheetClient) Hooks() []Hook {
	return c.hooks.Scoresheet
}

// Interceptors returns the client interceptors.
func (c *ScoresheetClient) Interceptors() []Interceptor {
	return c.inters.Scoresheet
}

func (c *ScoresheetClient) mutate(ctx context.Context, m *ScoresheetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScoresheetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScoresheetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScoresheetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScoresheetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Scoresheet mutation op: %q", m.Op())
	}
}

// SoldierResultClient is a client for the SoldierResult schema.
type SoldierResultClient struct {
	config
}

// NewSoldierResultClient returns a client for the SoldierResult from the given config.
func NewSoldierResultClient(c config) *SoldierResultClient {
	return &SoldierResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `soldierresult.Hooks(f(g(h())))`.
func (c *SoldierResultClient) Use(hooks ...Hook) {
	c.hooks.SoldierResult = append(c.hooks.SoldierResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `soldierresult.Intercept(f(g(h())))`.
func (c *SoldierResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.SoldierResult = append(c.inters.SoldierResult, interceptors...)
}

// Create returns a builder for creating a SoldierResult entity.
func (c *SoldierResultClient) Create() *SoldierResultCreate {
	mutation := newSoldierResultMutation(c.config, OpCreate)
	return &SoldierResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SoldierResult entities.
func (c *SoldierResultClient) CreateBulk(builders ...*SoldierResultCreate) *SoldierResultCreateBulk {
	return &SoldierResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SoldierResultClient) MapCreateBulk(slice any, setFunc func(*SoldierResultCreate, int)) *SoldierResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SoldierResultCreateBulk{err: fmt.Errorf("calling to SoldierResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SoldierResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SoldierResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SoldierResult.
func (c *SoldierResultClient) Update() *SoldierResultUpdate {
	mutation := newSoldierResultMutation(c.config, OpUpdate)
	return &SoldierResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SoldierResultClient) UpdateOne(_m *SoldierResult) *SoldierResultUpdateOne {
	mutation := newSoldierResultMutation(c.config, OpUpdateOne, withSoldierResult(_m))
	return &SoldierResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SoldierResultClient) UpdateOneID(id uuid.UUID) *SoldierResultUpdateOne {
	mutation := newSoldierResultMutation(c.config, OpUpdateOne, withSoldierResultID(id))
	return &SoldierResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SoldierResult.
func (c *SoldierResultClient) Delete() *SoldierResultDelete {
	mutation := newSoldierResultMutation(c.config, OpDelete)
	return &SoldierResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SoldierResultClient) DeleteOne(_m *SoldierResult) *SoldierResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SoldierResultClient) DeleteOneID(id uuid.UUID) *SoldierResultDeleteOne {
	builder := c.Delete().Where(soldierresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SoldierResultDeleteOne{builder}
}

// Query returns a query builder for SoldierResult.
func (c *SoldierResultClient) Query() *SoldierResultQuery {
	return &SoldierResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSoldierResult},
		inters: c.Interceptors(),
	}
}

// Get returns a SoldierResult entity by its id.
func (c *SoldierResultClient) Get(ctx context.Context, id uuid.UUID) (*SoldierResult, error) {
	return c.Query().Where(soldierresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SoldierResultClient) GetX(ctx context.Context, id uuid.UUID) *SoldierResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryScoresheet queries the scoresheet edge of a SoldierResult.
func (c *SoldierResultClient) QueryScoresheet(_m *SoldierResult) *ScoresheetQuery {
	query := (&ScoresheetClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(soldierresult.Table, soldierresult.FieldID, id),
			sqlgraph.To(scoresheet.Table, scoresheet.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, soldierresult.ScoresheetTable, soldierresult.ScoresheetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJob queries the job edge of a SoldierResult.
func (c *SoldierResultClient) QueryJob(_m *SoldierResult) *ExtractJobQuery {
	query := (&ExtractJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(soldierresult.Table, soldierresult.FieldID, id),
			sqlgraph.To(extractjob.Table, extractjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, soldierresult.JobTable, soldierresult.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SoldierResultClient) Hooks() []Hook {
	return c.hooks.SoldierResult
}

// Interceptors returns the client interceptors.
func (c *SoldierResultClient) Interceptors() []Interceptor {
	return c.inters.SoldierResult
}

func (c *SoldierResultClient) mutate(ctx context.Context, m *SoldierResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SoldierResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SoldierResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SoldierResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SoldierResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SoldierResult mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExtractJob, Scoresheet, SoldierResult []ent.Hook
	}
	inters struct {
		ExtractJob, Scoresheet, SoldierResult []ent.Interceptor
	}
)
