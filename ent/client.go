// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/tjwaterman99/quicksplit-api/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tjwaterman99/quicksplit-api/ent/account"
	"github.com/tjwaterman99/quicksplit-api/ent/cohort"
	"github.com/tjwaterman99/quicksplit-api/ent/conversion"
	"github.com/tjwaterman99/quicksplit-api/ent/experiment"
	"github.com/tjwaterman99/quicksplit-api/ent/experimentresult"
	"github.com/tjwaterman99/quicksplit-api/ent/exposure"
	"github.com/tjwaterman99/quicksplit-api/ent/exposurerollup"
	"github.com/tjwaterman99/quicksplit-api/ent/plan"
	"github.com/tjwaterman99/quicksplit-api/ent/subject"
	"github.com/tjwaterman99/quicksplit-api/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Account is the client for interacting with the Account builders.
	Account *AccountClient
	// Cohort is the client for interacting with the Cohort builders.
	Cohort *CohortClient
	// Conversion is the client for interacting with the Conversion builders.
	Conversion *ConversionClient
	// Experiment is the client for interacting with the Experiment builders.
	Experiment *ExperimentClient
	// ExperimentResult is the client for interacting with the ExperimentResult builders.
	ExperimentResult *ExperimentResultClient
	// Exposure is the client for interacting with the Exposure builders.
	Exposure *ExposureClient
	// ExposureRollup is the client for interacting with the ExposureRollup builders.
	ExposureRollup *ExposureRollupClient
	// Plan is the client for interacting with the Plan builders.
	Plan *PlanClient
	// Subject is the client for interacting with the Subject builders.
	Subject *SubjectClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Account = NewAccountClient(c.config)
	c.Cohort = NewCohortClient(c.config)
	c.Conversion = NewConversionClient(c.config)
	c.Experiment = NewExperimentClient(c.config)
	c.ExperimentResult = NewExperimentResultClient(c.config)
	c.Exposure = NewExposureClient(c.config)
	c.ExposureRollup = NewExposureRollupClient(c.config)
	c.Plan = NewPlanClient(c.config)
	c.Subject = NewSubjectClient(c.config)
	c.User = NewUserClient(c.config)
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
		Account:          NewAccountClient(cfg),
		Cohort:           NewCohortClient(cfg),
		Conversion:       NewConversionClient(cfg),
		Experiment:       NewExperimentClient(cfg),
		ExperimentResult: NewExperimentResultClient(cfg),
		Exposure:         NewExposureClient(cfg),
		ExposureRollup:   NewExposureRollupClient(cfg),
		Plan:             NewPlanClient(cfg),
		Subject:          NewSubjectClient(cfg),
		User:             NewUserClient(cfg),
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
		Account:          NewAccountClient(cfg),
		Cohort:           NewCohortClient(cfg),
		Conversion:       NewConversionClient(cfg),
		Experiment:       NewExperimentClient(cfg),
		ExperimentResult: NewExperimentResultClient(cfg),
		Exposure:         NewExposureClient(cfg),
		ExposureRollup:   NewExposureRollupClient(cfg),
		Plan:             NewPlanClient(cfg),
		Subject:          NewSubjectClient(cfg),
		User:             NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Account.
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
		c.Account, c.Cohort, c.Conversion, c.Experiment, c.ExperimentResult, c.Exposure,
		c.ExposureRollup, c.Plan, c.Subject, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Account, c.Cohort, c.Conversion, c.Experiment, c.ExperimentResult, c.Exposure,
		c.ExposureRollup, c.Plan, c.Subject, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AccountMutation:
		return c.Account.mutate(ctx, m)
	case *CohortMutation:
		return c.Cohort.mutate(ctx, m)
	case *ConversionMutation:
		return c.Conversion.mutate(ctx, m)
	case *ExperimentMutation:
		return c.Experiment.mutate(ctx, m)
	case *ExperimentResultMutation:
		return c.ExperimentResult.mutate(ctx, m)
	case *ExposureMutation:
		return c.Exposure.mutate(ctx, m)
	case *ExposureRollupMutation:
		return c.ExposureRollup.mutate(ctx, m)
	case *PlanMutation:
		return c.Plan.mutate(ctx, m)
	case *SubjectMutation:
		return c.Subject.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AccountClient is a client for the Account schema.
type AccountClient struct {
	config
}

// NewAccountClient returns a client for the Account from the given config.
func NewAccountClient(c config) *AccountClient {
	return &AccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `account.Hooks(f(g(h())))`.
func (c *AccountClient) Use(hooks ...Hook) {
	c.hooks.Account = append(c.hooks.Account, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `account.Intercept(f(g(h())))`.
func (c *AccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.Account = append(c.inters.Account, interceptors...)
}

// Create returns a builder for creating a Account entity.
func (c *AccountClient) Create() *AccountCreate {
	mutation := newAccountMutation(c.config, OpCreate)
	return &AccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Account entities.
func (c *AccountClient) CreateBulk(builders ...*AccountCreate) *AccountCreateBulk {
	return &AccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AccountClient) MapCreateBulk(slice any, setFunc func(*AccountCreate, int)) *AccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AccountCreateBulk{err: fmt.Errorf("calling to AccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Account.
func (c *AccountClient) Update() *AccountUpdate {
	mutation := newAccountMutation(c.config, OpUpdate)
	return &AccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AccountClient) UpdateOne(_m *Account) *AccountUpdateOne {
	mutation := newAccountMutation(c.config, OpUpdateOne, withAccount(_m))
	return &AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AccountClient) UpdateOneID(id int) *AccountUpdateOne {
	mutation := newAccountMutation(c.config, OpUpdateOne, withAccountID(id))
	return &AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Account.
func (c *AccountClient) Delete() *AccountDelete {
	mutation := newAccountMutation(c.config, OpDelete)
	return &AccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AccountClient) DeleteOne(_m *Account) *AccountDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AccountClient) DeleteOneID(id int) *AccountDeleteOne {
	builder := c.Delete().Where(account.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AccountDeleteOne{builder}
}

// Query returns a query builder for Account.
func (c *AccountClient) Query() *AccountQuery {
	return &AccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a Account entity by its id.
func (c *AccountClient) Get(ctx context.Context, id int) (*Account, error) {
	return c.Query().Where(account.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AccountClient) GetX(ctx context.Context, id int) *Account {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPlan queries the plan edge of a Account.
func (c *AccountClient) QueryPlan(_m *Account) *PlanQuery {
	query := (&PlanClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(account.Table, account.FieldID, id),
			sqlgraph.To(plan.Table, plan.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, account.PlanTable, account.PlanColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUsers queries the users edge of a Account.
func (c *AccountClient) QueryUsers(_m *Account) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(account.Table, account.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, account.UsersTable, account.UsersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubjects queries the subjects edge of a Account.
func (c *AccountClient) QuerySubjects(_m *Account) *SubjectQuery {
	query := (&SubjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(account.Table, account.FieldID, id),
			sqlgraph.To(subject.Table, subject.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, account.SubjectsTable, account.SubjectsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AccountClient) Hooks() []Hook {
	return c.hooks.Account
}

// Interceptors returns the client interceptors.
func (c *AccountClient) Interceptors() []Interceptor {
	return c.inters.Account
}

func (c *AccountClient) mutate(ctx context.Context, m *AccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Account mutation op: %q", m.Op())
	}
}

// CohortClient is a client for the Cohort schema.
type CohortClient struct {
	config
}

// NewCohortClient returns a client for the Cohort from the given config.
func NewCohortClient(c config) *CohortClient {
	return &CohortClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cohort.Hooks(f(g(h())))`.
func (c *CohortClient) Use(hooks ...Hook) {
	c.hooks.Cohort = append(c.hooks.Cohort, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cohort.Intercept(f(g(h())))`.
func (c *CohortClient) Intercept(interceptors ...Interceptor) {
	c.inters.Cohort = append(c.inters.Cohort, interceptors...)
}

// Create returns a builder for creating a Cohort entity.
func (c *CohortClient) Create() *CohortCreate {
	mutation := newCohortMutation(c.config, OpCreate)
	return &CohortCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Cohort entities.
func (c *CohortClient) CreateBulk(builders ...*CohortCreate) *CohortCreateBulk {
	return &CohortCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CohortClient) MapCreateBulk(slice any, setFunc func(*CohortCreate, int)) *CohortCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CohortCreateBulk{err: fmt.Errorf("calling to CohortClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CohortCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CohortCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Cohort.
func (c *CohortClient) Update() *CohortUpdate {
	mutation := newCohortMutation(c.config, OpUpdate)
	return &CohortUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CohortClient) UpdateOne(_m *Cohort) *CohortUpdateOne {
	mutation := newCohortMutation(c.config, OpUpdateOne, withCohort(_m))
	return &CohortUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CohortClient) UpdateOneID(id int) *CohortUpdateOne {
	mutation := newCohortMutation(c.config, OpUpdateOne, withCohortID(id))
	return &CohortUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Cohort.
func (c *CohortClient) Delete() *CohortDelete {
	mutation := newCohortMutation(c.config, OpDelete)
	return &CohortDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CohortClient) DeleteOne(_m *Cohort) *CohortDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CohortClient) DeleteOneID(id int) *CohortDeleteOne {
	builder := c.Delete().Where(cohort.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CohortDeleteOne{builder}
}

// Query returns a query builder for Cohort.
func (c *CohortClient) Query() *CohortQuery {
	return &CohortQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCohort},
		inters: c.Interceptors(),
	}
}

// Get returns a Cohort entity by its id.
func (c *CohortClient) Get(ctx context.Context, id int) (*Cohort, error) {
	return c.Query().Where(cohort.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CohortClient) GetX(ctx context.Context, id int) *Cohort {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExperiment queries the experiment edge of a Cohort.
func (c *CohortClient) QueryExperiment(_m *Cohort) *ExperimentQuery {
	query := (&ExperimentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cohort.Table, cohort.FieldID, id),
			sqlgraph.To(experiment.Table, experiment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, cohort.ExperimentTable, cohort.ExperimentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExposures queries the exposures edge of a Cohort.
func (c *CohortClient) QueryExposures(_m *Cohort) *ExposureQuery {
	query := (&ExposureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cohort.Table, cohort.FieldID, id),
			sqlgraph.To(exposure.Table, exposure.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cohort.ExposuresTable, cohort.ExposuresColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CohortClient) Hooks() []Hook {
	return c.hooks.Cohort
}

// Interceptors returns the client interceptors.
func (c *CohortClient) Interceptors() []Interceptor {
	return c.inters.Cohort
}

func (c *CohortClient) mutate(ctx context.Context, m *CohortMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CohortCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CohortUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CohortUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CohortDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Cohort mutation op: %q", m.Op())
	}
}

// ConversionClient is a client for the Conversion schema.
type ConversionClient struct {
	config
}

// NewConversionClient returns a client for the Conversion from the given config.
func NewConversionClient(c config) *ConversionClient {
	return &ConversionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversion.Hooks(f(g(h())))`.
func (c *ConversionClient) Use(hooks ...Hook) {
	c.hooks.Conversion = append(c.hooks.Conversion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversion.Intercept(f(g(h())))`.
func (c *ConversionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Conversion = append(c.inters.Conversion, interceptors...)
}

// Create returns a builder for creating a Conversion entity.
func (c *ConversionClient) Create() *ConversionCreate {
	mutation := newConversionMutation(c.config, OpCreate)
	return &ConversionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Conversion entities.
func (c *ConversionClient) CreateBulk(builders ...*ConversionCreate) *ConversionCreateBulk {
	return &ConversionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversionClient) MapCreateBulk(slice any, setFunc func(*ConversionCreate, int)) *ConversionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversionCreateBulk{err: fmt.Errorf("calling to ConversionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Conversion.
func (c *ConversionClient) Update() *ConversionUpdate {
	mutation := newConversionMutation(c.config, OpUpdate)
	return &ConversionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversionClient) UpdateOne(_m *Conversion) *ConversionUpdateOne {
	mutation := newConversionMutation(c.config, OpUpdateOne, withConversion(_m))
	return &ConversionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversionClient) UpdateOneID(id int) *ConversionUpdateOne {
	mutation := newConversionMutation(c.config, OpUpdateOne, withConversionID(id))
	return &ConversionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Conversion.
func (c *ConversionClient) Delete() *ConversionDelete {
	mutation := newConversionMutation(c.config, OpDelete)
	return &ConversionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversionClient) DeleteOne(_m *Conversion) *ConversionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversionClient) DeleteOneID(id int) *ConversionDeleteOne {
	builder := c.Delete().Where(conversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversionDeleteOne{builder}
}

// Query returns a query builder for Conversion.
func (c *ConversionClient) Query() *ConversionQuery {
	return &ConversionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversion},
		inters: c.Interceptors(),
	}
}

// Get returns a Conversion entity by its id.
func (c *ConversionClient) Get(ctx context.Context, id int) (*Conversion, error) {
	return c.Query().Where(conversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversionClient) GetX(ctx context.Context, id int) *Conversion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExposure queries the exposure edge of a Conversion.
func (c *ConversionClient) QueryExposure(_m *Conversion) *ExposureQuery {
	query := (&ExposureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversion.Table, conversion.FieldID, id),
			sqlgraph.To(exposure.Table, exposure.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conversion.ExposureTable, conversion.ExposureColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversionClient) Hooks() []Hook {
	return c.hooks.Conversion
}

// Interceptors returns the client interceptors.
func (c *ConversionClient) Interceptors() []Interceptor {
	return c.inters.Conversion
}

func (c *ConversionClient) mutate(ctx context.Context, m *ConversionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Conversion mutation op: %q", m.Op())
	}
}

// ExperimentClient is a client for the Experiment schema.
type ExperimentClient struct {
	config
}

// NewExperimentClient returns a client for the Experiment from the given config.
func NewExperimentClient(c config) *ExperimentClient {
	return &ExperimentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `experiment.Hooks(f(g(h())))`.
func (c *ExperimentClient) Use(hooks ...Hook) {
	c.hooks.Experiment = append(c.hooks.Experiment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `experiment.Intercept(f(g(h())))`.
func (c *ExperimentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Experiment = append(c.inters.Experiment, interceptors...)
}

// Create returns a builder for creating a Experiment entity.
func (c *ExperimentClient) Create() *ExperimentCreate {
	mutation := newExperimentMutation(c.config, OpCreate)
	return &ExperimentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Experiment entities.
func (c *ExperimentClient) CreateBulk(builders ...*ExperimentCreate) *ExperimentCreateBulk {
	return &ExperimentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExperimentClient) MapCreateBulk(slice any, setFunc func(*ExperimentCreate, int)) *ExperimentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExperimentCreateBulk{err: fmt.Errorf("calling to ExperimentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExperimentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExperimentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Experiment.
func (c *ExperimentClient) Update() *ExperimentUpdate {
	mutation := newExperimentMutation(c.config, OpUpdate)
	return &ExperimentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExperimentClient) UpdateOne(_m *Experiment) *ExperimentUpdateOne {
	mutation := newExperimentMutation(c.config, OpUpdateOne, withExperiment(_m))
	return &ExperimentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExperimentClient) UpdateOneID(id int) *ExperimentUpdateOne {
	mutation := newExperimentMutation(c.config, OpUpdateOne, withExperimentID(id))
	return &ExperimentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Experiment.
func (c *ExperimentClient) Delete() *ExperimentDelete {
	mutation := newExperimentMutation(c.config, OpDelete)
	return &ExperimentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExperimentClient) DeleteOne(_m *Experiment) *ExperimentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExperimentClient) DeleteOneID(id int) *ExperimentDeleteOne {
	builder := c.Delete().Where(experiment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExperimentDeleteOne{builder}
}

// Query returns a query builder for Experiment.
func (c *ExperimentClient) Query() *ExperimentQuery {
	return &ExperimentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExperiment},
		inters: c.Interceptors(),
	}
}

// Get returns a Experiment entity by its id.
func (c *ExperimentClient) Get(ctx context.Context, id int) (*Experiment, error) {
	return c.Query().Where(experiment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExperimentClient) GetX(ctx context.Context, id int) *Experiment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Experiment.
func (c *ExperimentClient) QueryUser(_m *Experiment) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(experiment.Table, experiment.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, experiment.UserTable, experiment.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCohorts queries the cohorts edge of a Experiment.
func (c *ExperimentClient) QueryCohorts(_m *Experiment) *CohortQuery {
	query := (&CohortClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(experiment.Table, experiment.FieldID, id),
			sqlgraph.To(cohort.Table, cohort.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, experiment.CohortsTable, experiment.CohortsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExposures queries the exposures edge of a Experiment.
func (c *ExperimentClient) QueryExposures(_m *Experiment) *ExposureQuery {
	query := (&ExposureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(experiment.Table, experiment.FieldID, id),
			sqlgraph.To(exposure.Table, exposure.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, experiment.ExposuresTable, experiment.ExposuresColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExperimentClient) Hooks() []Hook {
	return c.hooks.Experiment
}

// Interceptors returns the client interceptors.
func (c *ExperimentClient) Interceptors() []Interceptor {
	return c.inters.Experiment
}

func (c *ExperimentClient) mutate(ctx context.Context, m *ExperimentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExperimentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExperimentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExperimentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExperimentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Experiment mutation op: %q", m.Op())
	}
}

// ExperimentResultClient is a client for the ExperimentResult schema.
type ExperimentResultClient struct {
	config
}

// NewExperimentResultClient returns a client for the ExperimentResult from the given config.
func NewExperimentResultClient(c config) *ExperimentResultClient {
	return &ExperimentResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `experimentresult.Hooks(f(g(h())))`.
func (c *ExperimentResultClient) Use(hooks ...Hook) {
	c.hooks.ExperimentResult = append(c.hooks.ExperimentResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `experimentresult.Intercept(f(g(h())))`.
func (c *ExperimentResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExperimentResult = append(c.inters.ExperimentResult, interceptors...)
}

// Create returns a builder for creating a ExperimentResult entity.
func (c *ExperimentResultClient) Create() *ExperimentResultCreate {
	mutation := newExperimentResultMutation(c.config, OpCreate)
	return &ExperimentResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExperimentResult entities.
func (c *ExperimentResultClient) CreateBulk(builders ...*ExperimentResultCreate) *ExperimentResultCreateBulk {
	return &ExperimentResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExperimentResultClient) MapCreateBulk(slice any, setFunc func(*ExperimentResultCreate, int)) *ExperimentResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExperimentResultCreateBulk{err: fmt.Errorf("calling to ExperimentResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExperimentResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExperimentResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExperimentResult.
func (c *ExperimentResultClient) Update() *ExperimentResultUpdate {
	mutation := newExperimentResultMutation(c.config, OpUpdate)
	return &ExperimentResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExperimentResultClient) UpdateOne(_m *ExperimentResult) *ExperimentResultUpdateOne {
	mutation := newExperimentResultMutation(c.config, OpUpdateOne, withExperimentResult(_m))
	return &ExperimentResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExperimentResultClient) UpdateOneID(id int) *ExperimentResultUpdateOne {
	mutation := newExperimentResultMutation(c.config, OpUpdateOne, withExperimentResultID(id))
	return &ExperimentResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExperimentResult.
func (c *ExperimentResultClient) Delete() *ExperimentResultDelete {
	mutation := newExperimentResultMutation(c.config, OpDelete)
	return &ExperimentResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExperimentResultClient) DeleteOne(_m *ExperimentResult) *ExperimentResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExperimentResultClient) DeleteOneID(id int) *ExperimentResultDeleteOne {
	builder := c.Delete().Where(experimentresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExperimentResultDeleteOne{builder}
}

// Query returns a query builder for ExperimentResult.
func (c *ExperimentResultClient) Query() *ExperimentResultQuery {
	return &ExperimentResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExperimentResult},
		inters: c.Interceptors(),
	}
}

// Get returns a ExperimentResult entity by its id.
func (c *ExperimentResultClient) Get(ctx context.Context, id int) (*ExperimentResult, error) {
	return c.Query().Where(experimentresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExperimentResultClient) GetX(ctx context.Context, id int) *ExperimentResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExperimentResultClient) Hooks() []Hook {
	return c.hooks.ExperimentResult
}

// Interceptors returns the client interceptors.
func (c *ExperimentResultClient) Interceptors() []Interceptor {
	return c.inters.ExperimentResult
}

func (c *ExperimentResultClient) mutate(ctx context.Context, m *ExperimentResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExperimentResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExperimentResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExperimentResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExperimentResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExperimentResult mutation op: %q", m.Op())
	}
}

// ExposureClient is a client for the Exposure schema.
type ExposureClient struct {
	config
}

// NewExposureClient returns a client for the Exposure from the given config.
func NewExposureClient(c config) *ExposureClient {
	return &ExposureClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exposure.Hooks(f(g(h())))`.
func (c *ExposureClient) Use(hooks ...Hook) {
	c.hooks.Exposure = append(c.hooks.Exposure, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exposure.Intercept(f(g(h())))`.
func (c *ExposureClient) Intercept(interceptors ...Interceptor) {
	c.inters.Exposure = append(c.inters.Exposure, interceptors...)
}

// Create returns a builder for creating a Exposure entity.
func (c *ExposureClient) Create() *ExposureCreate {
	mutation := newExposureMutation(c.config, OpCreate)
	return &ExposureCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Exposure entities.
func (c *ExposureClient) CreateBulk(builders ...*ExposureCreate) *ExposureCreateBulk {
	return &ExposureCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExposureClient) MapCreateBulk(slice any, setFunc func(*ExposureCreate, int)) *ExposureCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExposureCreateBulk{err: fmt.Errorf("calling to ExposureClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExposureCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExposureCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Exposure.
func (c *ExposureClient) Update() *ExposureUpdate {
	mutation := newExposureMutation(c.config, OpUpdate)
	return &ExposureUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExposureClient) UpdateOne(_m *Exposure) *ExposureUpdateOne {
	mutation := newExposureMutation(c.config, OpUpdateOne, withExposure(_m))
	return &ExposureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExposureClient) UpdateOneID(id int) *ExposureUpdateOne {
	mutation := newExposureMutation(c.config, OpUpdateOne, withExposureID(id))
	return &ExposureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Exposure.
func (c *ExposureClient) Delete() *ExposureDelete {
	mutation := newExposureMutation(c.config, OpDelete)
	return &ExposureDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExposureClient) DeleteOne(_m *Exposure) *ExposureDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExposureClient) DeleteOneID(id int) *ExposureDeleteOne {
	builder := c.Delete().Where(exposure.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExposureDeleteOne{builder}
}

// Query returns a query builder for Exposure.
func (c *ExposureClient) Query() *ExposureQuery {
	return &ExposureQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExposure},
		inters: c.Interceptors(),
	}
}

// Get returns a Exposure entity by its id.
func (c *ExposureClient) Get(ctx context.Context, id int) (*Exposure, error) {
	return c.Query().Where(exposure.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExposureClient) GetX(ctx context.Context, id int) *Exposure {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubject queries the subject edge of a Exposure.
func (c *ExposureClient) QuerySubject(_m *Exposure) *SubjectQuery {
	query := (&SubjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(exposure.Table, exposure.FieldID, id),
			sqlgraph.To(subject.Table, subject.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, exposure.SubjectTable, exposure.SubjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExperiment queries the experiment edge of a Exposure.
func (c *ExposureClient) QueryExperiment(_m *Exposure) *ExperimentQuery {
	query := (&ExperimentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(exposure.Table, exposure.FieldID, id),
			sqlgraph.To(experiment.Table, experiment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, exposure.ExperimentTable, exposure.ExperimentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCohort queries the cohort edge of a Exposure.
func (c *ExposureClient) QueryCohort(_m *Exposure) *CohortQuery {
	query := (&CohortClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(exposure.Table, exposure.FieldID, id),
			sqlgraph.To(cohort.Table, cohort.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, exposure.CohortTable, exposure.CohortColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryConversions queries the conversions edge of a Exposure.
func (c *ExposureClient) QueryConversions(_m *Exposure) *ConversionQuery {
	query := (&ConversionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(exposure.Table, exposure.FieldID, id),
			sqlgraph.To(conversion.Table, conversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, exposure.ConversionsTable, exposure.ConversionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExposureClient) Hooks() []Hook {
	return c.hooks.Exposure
}

// Interceptors returns the client interceptors.
func (c *ExposureClient) Interceptors() []Interceptor {
	return c.inters.Exposure
}

func (c *ExposureClient) mutate(ctx context.Context, m *ExposureMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExposureCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExposureUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExposureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExposureDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Exposure mutation op: %q", m.Op())
	}
}

// ExposureRollupClient is a client for the ExposureRollup schema.
type ExposureRollupClient struct {
	config
}

// NewExposureRollupClient returns a client for the ExposureRollup from the given config.
func NewExposureRollupClient(c config) *ExposureRollupClient {
	return &ExposureRollupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exposurerollup.Hooks(f(g(h())))`.
func (c *ExposureRollupClient) Use(hooks ...Hook) {
	c.hooks.ExposureRollup = append(c.hooks.ExposureRollup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exposurerollup.Intercept(f(g(h())))`.
func (c *ExposureRollupClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExposureRollup = append(c.inters.ExposureRollup, interceptors...)
}

// Create returns a builder for creating a ExposureRollup entity.
func (c *ExposureRollupClient) Create() *ExposureRollupCreate {
	mutation := newExposureRollupMutation(c.config, OpCreate)
	return &ExposureRollupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExposureRollup entities.
func (c *ExposureRollupClient) CreateBulk(builders ...*ExposureRollupCreate) *ExposureRollupCreateBulk {
	return &ExposureRollupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExposureRollupClient) MapCreateBulk(slice any, setFunc func(*ExposureRollupCreate, int)) *ExposureRollupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExposureRollupCreateBulk{err: fmt.Errorf("calling to ExposureRollupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExposureRollupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExposureRollupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExposureRollup.
func (c *ExposureRollupClient) Update() *ExposureRollupUpdate {
	mutation := newExposureRollupMutation(c.config, OpUpdate)
	return &ExposureRollupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExposureRollupClient) UpdateOne(_m *ExposureRollup) *ExposureRollupUpdateOne {
	mutation := newExposureRollupMutation(c.config, OpUpdateOne, withExposureRollup(_m))
	return &ExposureRollupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExposureRollupClient) UpdateOneID(id int) *ExposureRollupUpdateOne {
	mutation := newExposureRollupMutation(c.config, OpUpdateOne, withExposureRollupID(id))
	return &ExposureRollupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExposureRollup.
func (c *ExposureRollupClient) Delete() *ExposureRollupDelete {
	mutation := newExposureRollupMutation(c.config, OpDelete)
	return &ExposureRollupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExposureRollupClient) DeleteOne(_m *ExposureRollup) *ExposureRollupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExposureRollupClient) DeleteOneID(id int) *ExposureRollupDeleteOne {
	builder := c.Delete().Where(exposurerollup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExposureRollupDeleteOne{builder}
}

// Query returns a query builder for ExposureRollup.
func (c *ExposureRollupClient) Query() *ExposureRollupQuery {
	return &ExposureRollupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExposureRollup},
		inters: c.Interceptors(),
	}
}

// Get returns a ExposureRollup entity by its id.
func (c *ExposureRollupClient) Get(ctx context.Context, id int) (*ExposureRollup, error) {
	return c.Query().Where(exposurerollup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExposureRollupClient) GetX(ctx context.Context, id int) *ExposureRollup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExposureRollupClient) Hooks() []Hook {
	return c.hooks.ExposureRollup
}

// Interceptors returns the client interceptors.
func (c *ExposureRollupClient) Interceptors() []Interceptor {
	return c.inters.ExposureRollup
}

func (c *ExposureRollupClient) mutate(ctx context.Context, m *ExposureRollupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExposureRollupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExposureRollupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExposureRollupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExposureRollupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExposureRollup mutation op: %q", m.Op())
	}
}

// PlanClient is a client for the Plan schema.
type PlanClient struct {
	config
}

// NewPlanClient returns a client for the Plan from the given config.
func NewPlanClient(c config) *PlanClient {
	return &PlanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `plan.Hooks(f(g(h())))`.
func (c *PlanClient) Use(hooks ...Hook) {
	c.hooks.Plan = append(c.hooks.Plan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `plan.Intercept(f(g(h())))`.
func (c *PlanClient) Intercept(interceptors ...Interceptor) {
	c.inters.Plan = append(c.inters.Plan, interceptors...)
}

// Create returns a builder for creating a Plan entity.
func (c *PlanClient) Create() *PlanCreate {
	mutation := newPlanMutation(c.config, OpCreate)
	return &PlanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Plan entities.
func (c *PlanClient) CreateBulk(builders ...*PlanCreate) *PlanCreateBulk {
	return &PlanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlanClient) MapCreateBulk(slice any, setFunc func(*PlanCreate, int)) *PlanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlanCreateBulk{err: fmt.Errorf("calling to PlanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Plan.
func (c *PlanClient) Update() *PlanUpdate {
	mutation := newPlanMutation(c.config, OpUpdate)
	return &PlanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlanClient) UpdateOne(_m *Plan) *PlanUpdateOne {
	mutation := newPlanMutation(c.config, OpUpdateOne, withPlan(_m))
	return &PlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlanClient) UpdateOneID(id int) *PlanUpdateOne {
	mutation := newPlanMutation(c.config, OpUpdateOne, withPlanID(id))
	return &PlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Plan.
func (c *PlanClient) Delete() *PlanDelete {
	mutation := newPlanMutation(c.config, OpDelete)
	return &PlanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlanClient) DeleteOne(_m *Plan) *PlanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlanClient) DeleteOneID(id int) *PlanDeleteOne {
	builder := c.Delete().Where(plan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlanDeleteOne{builder}
}

// Query returns a query builder for Plan.
func (c *PlanClient) Query() *PlanQuery {
	return &PlanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlan},
		inters: c.Interceptors(),
	}
}

// Get returns a Plan entity by its id.
func (c *PlanClient) Get(ctx context.Context, id int) (*Plan, error) {
	return c.Query().Where(plan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlanClient) GetX(ctx context.Context, id int) *Plan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAccounts queries the accounts edge of a Plan.
func (c *PlanClient) QueryAccounts(_m *Plan) *AccountQuery {
	query := (&AccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(plan.Table, plan.FieldID, id),
			sqlgraph.To(account.Table, account.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, plan.AccountsTable, plan.AccountsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PlanClient) Hooks() []Hook {
	return c.hooks.Plan
}

// Interceptors returns the client interceptors.
func (c *PlanClient) Interceptors() []Interceptor {
	return c.inters.Plan
}

func (c *PlanClient) mutate(ctx context.Context, m *PlanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Plan mutation op: %q", m.Op())
	}
}

// SubjectClient is a client for the Subject schema.
type SubjectClient struct {
	config
}

// NewSubjectClient returns a client for the Subject from the given config.
func NewSubjectClient(c config) *SubjectClient {
	return &SubjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subject.Hooks(f(g(h())))`.
func (c *SubjectClient) Use(hooks ...Hook) {
	c.hooks.Subject = append(c.hooks.Subject, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subject.Intercept(f(g(h())))`.
func (c *SubjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subject = append(c.inters.Subject, interceptors...)
}

// Create returns a builder for creating a Subject entity.
func (c *SubjectClient) Create() *SubjectCreate {
	mutation := newSubjectMutation(c.config, OpCreate)
	return &SubjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subject entities.
func (c *SubjectClient) CreateBulk(builders ...*SubjectCreate) *SubjectCreateBulk {
	return &SubjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubjectClient) MapCreateBulk(slice any, setFunc func(*SubjectCreate, int)) *SubjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubjectCreateBulk{err: fmt.Errorf("calling to SubjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subject.
func (c *SubjectClient) Update() *SubjectUpdate {
	mutation := newSubjectMutation(c.config, OpUpdate)
	return &SubjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubjectClient) UpdateOne(_m *Subject) *SubjectUpdateOne {
	mutation := newSubjectMutation(c.config, OpUpdateOne, withSubject(_m))
	return &SubjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubjectClient) UpdateOneID(id int) *SubjectUpdateOne {
	mutation := newSubjectMutation(c.config, OpUpdateOne, withSubjectID(id))
	return &SubjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subject.
func (c *SubjectClient) Delete() *SubjectDelete {
	mutation := newSubjectMutation(c.config, OpDelete)
	return &SubjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubjectClient) DeleteOne(_m *Subject) *SubjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubjectClient) DeleteOneID(id int) *SubjectDeleteOne {
	builder := c.Delete().Where(subject.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubjectDeleteOne{builder}
}

// Query returns a query builder for Subject.
func (c *SubjectClient) Query() *SubjectQuery {
	return &SubjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubject},
		inters: c.Interceptors(),
	}
}

// Get returns a Subject entity by its id.
func (c *SubjectClient) Get(ctx context.Context, id int) (*Subject, error) {
	return c.Query().Where(subject.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubjectClient) GetX(ctx context.Context, id int) *Subject {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAccount queries the account edge of a Subject.
func (c *SubjectClient) QueryAccount(_m *Subject) *AccountQuery {
	query := (&AccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subject.Table, subject.FieldID, id),
			sqlgraph.To(account.Table, account.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subject.AccountTable, subject.AccountColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExposures queries the exposures edge of a Subject.
func (c *SubjectClient) QueryExposures(_m *Subject) *ExposureQuery {
	query := (&ExposureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subject.Table, subject.FieldID, id),
			sqlgraph.To(exposure.Table, exposure.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, subject.ExposuresTable, subject.ExposuresColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubjectClient) Hooks() []Hook {
	return c.hooks.Subject
}

// Interceptors returns the client interceptors.
func (c *SubjectClient) Interceptors() []Interceptor {
	return c.inters.Subject
}

func (c *SubjectClient) mutate(ctx context.Context, m *SubjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subject mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAccount queries the account edge of a User.
func (c *UserClient) QueryAccount(_m *User) *AccountQuery {
	query := (&AccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(account.Table, account.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, user.AccountTable, user.AccountColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExperiments queries the experiments edge of a User.
func (c *UserClient) QueryExperiments(_m *User) *ExperimentQuery {
	query := (&ExperimentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(experiment.Table, experiment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.ExperimentsTable, user.ExperimentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Account, Cohort, Conversion, Experiment, ExperimentResult, Exposure,
		ExposureRollup, Plan, Subject, User []ent.Hook
	}
	inters struct {
		Account, Cohort, Conversion, Experiment, ExperimentResult, Exposure,
		ExposureRollup, Plan, Subject, User []ent.Interceptor
	}
)
