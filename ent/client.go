// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/wesboland/bolandindex/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/wesboland/bolandindex/ent/sessionslot"
	"github.com/wesboland/bolandindex/ent/userrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// SessionSlot is the client for interacting with the SessionSlot builders.
	SessionSlot *SessionSlotClient
	// UserRecord is the client for interacting with the UserRecord builders.
	UserRecord *UserRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.SessionSlot = NewSessionSlotClient(c.config)
	c.UserRecord = NewUserRecordClient(c.config)
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
		ctx:         ctx,
		config:      cfg,
		SessionSlot: NewSessionSlotClient(cfg),
		UserRecord:  NewUserRecordClient(cfg),
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
		ctx:         ctx,
		config:      cfg,
		SessionSlot: NewSessionSlotClient(cfg),
		UserRecord:  NewUserRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		SessionSlot.
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
	c.SessionSlot.Use(hooks...)
	c.UserRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.SessionSlot.Intercept(interceptors...)
	c.UserRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *SessionSlotMutation:
		return c.SessionSlot.mutate(ctx, m)
	case *UserRecordMutation:
		return c.UserRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// SessionSlotClient is a client for the SessionSlot schema.
type SessionSlotClient struct {
	config
}

// NewSessionSlotClient returns a client for the SessionSlot from the given config.
func NewSessionSlotClient(c config) *SessionSlotClient {
	return &SessionSlotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionslot.Hooks(f(g(h())))`.
func (c *SessionSlotClient) Use(hooks ...Hook) {
	c.hooks.SessionSlot = append(c.hooks.SessionSlot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionslot.Intercept(f(g(h())))`.
func (c *SessionSlotClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionSlot = append(c.inters.SessionSlot, interceptors...)
}

// Create returns a builder for creating a SessionSlot entity.
func (c *SessionSlotClient) Create() *SessionSlotCreate {
	mutation := newSessionSlotMutation(c.config, OpCreate)
	return &SessionSlotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionSlot entities.
func (c *SessionSlotClient) CreateBulk(builders ...*SessionSlotCreate) *SessionSlotCreateBulk {
	return &SessionSlotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionSlotClient) MapCreateBulk(slice any, setFunc func(*SessionSlotCreate, int)) *SessionSlotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionSlotCreateBulk{err: fmt.Errorf("calling to SessionSlotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionSlotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionSlotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionSlot.
func (c *SessionSlotClient) Update() *SessionSlotUpdate {
	mutation := newSessionSlotMutation(c.config, OpUpdate)
	return &SessionSlotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionSlotClient) UpdateOne(_m *SessionSlot) *SessionSlotUpdateOne {
	mutation := newSessionSlotMutation(c.config, OpUpdateOne, withSessionSlot(_m))
	return &SessionSlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionSlotClient) UpdateOneID(id int) *SessionSlotUpdateOne {
	mutation := newSessionSlotMutation(c.config, OpUpdateOne, withSessionSlotID(id))
	return &SessionSlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionSlot.
func (c *SessionSlotClient) Delete() *SessionSlotDelete {
	mutation := newSessionSlotMutation(c.config, OpDelete)
	return &SessionSlotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionSlotClient) DeleteOne(_m *SessionSlot) *SessionSlotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionSlotClient) DeleteOneID(id int) *SessionSlotDeleteOne {
	builder := c.Delete().Where(sessionslot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionSlotDeleteOne{builder}
}

// Query returns a query builder for SessionSlot.
func (c *SessionSlotClient) Query() *SessionSlotQuery {
	return &SessionSlotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionSlot},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionSlot entity by its id.
func (c *SessionSlotClient) Get(ctx context.Context, id int) (*SessionSlot, error) {
	return c.Query().Where(sessionslot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionSlotClient) GetX(ctx context.Context, id int) *SessionSlot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionSlotClient) Hooks() []Hook {
	return c.hooks.SessionSlot
}

// Interceptors returns the client interceptors.
func (c *SessionSlotClient) Interceptors() []Interceptor {
	return c.inters.SessionSlot
}

func (c *SessionSlotClient) mutate(ctx context.Context, m *SessionSlotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionSlotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionSlotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionSlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionSlotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionSlot mutation op: %q", m.Op())
	}
}

// UserRecordClient is a client for the UserRecord schema.
type UserRecordClient struct {
	config
}

// NewUserRecordClient returns a client for the UserRecord from the given config.
func NewUserRecordClient(c config) *UserRecordClient {
	return &UserRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userrecord.Hooks(f(g(h())))`.
func (c *UserRecordClient) Use(hooks ...Hook) {
	c.hooks.UserRecord = append(c.hooks.UserRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userrecord.Intercept(f(g(h())))`.
func (c *UserRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserRecord = append(c.inters.UserRecord, interceptors...)
}

// Create returns a builder for creating a UserRecord entity.
func (c *UserRecordClient) Create() *UserRecordCreate {
	mutation := newUserRecordMutation(c.config, OpCreate)
	return &UserRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserRecord entities.
func (c *UserRecordClient) CreateBulk(builders ...*UserRecordCreate) *UserRecordCreateBulk {
	return &UserRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserRecordClient) MapCreateBulk(slice any, setFunc func(*UserRecordCreate, int)) *UserRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserRecordCreateBulk{err: fmt.Errorf("calling to UserRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserRecord.
func (c *UserRecordClient) Update() *UserRecordUpdate {
	mutation := newUserRecordMutation(c.config, OpUpdate)
	return &UserRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserRecordClient) UpdateOne(_m *UserRecord) *UserRecordUpdateOne {
	mutation := newUserRecordMutation(c.config, OpUpdateOne, withUserRecord(_m))
	return &UserRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserRecordClient) UpdateOneID(id int) *UserRecordUpdateOne {
	mutation := newUserRecordMutation(c.config, OpUpdateOne, withUserRecordID(id))
	return &UserRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserRecord.
func (c *UserRecordClient) Delete() *UserRecordDelete {
	mutation := newUserRecordMutation(c.config, OpDelete)
	return &UserRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserRecordClient) DeleteOne(_m *UserRecord) *UserRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserRecordClient) DeleteOneID(id int) *UserRecordDeleteOne {
	builder := c.Delete().Where(userrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserRecordDeleteOne{builder}
}

// Query returns a query builder for UserRecord.
func (c *UserRecordClient) Query() *UserRecordQuery {
	return &UserRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a UserRecord entity by its id.
func (c *UserRecordClient) Get(ctx context.Context, id int) (*UserRecord, error) {
	return c.Query().Where(userrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserRecordClient) GetX(ctx context.Context, id int) *UserRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserRecordClient) Hooks() []Hook {
	return c.hooks.UserRecord
}

// Interceptors returns the client interceptors.
func (c *UserRecordClient) Interceptors() []Interceptor {
	return c.inters.UserRecord
}

func (c *UserRecordClient) mutate(ctx context.Context, m *UserRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		SessionSlot, UserRecord []ent.Hook
	}
	inters struct {
		SessionSlot, UserRecord []ent.Interceptor
	}
)
