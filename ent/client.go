// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/fika/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/fika/ent/badge"
	"github.com/abhisek/fika/ent/devicerecord"
	"github.com/abhisek/fika/ent/profile"
	"github.com/abhisek/fika/ent/topic"
	"github.com/abhisek/fika/ent/topicscore"
	"github.com/abhisek/fika/ent/userbadge"
	"github.com/abhisek/fika/ent/weeklygoal"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Badge is the client for interacting with the Badge builders.
	Badge *BadgeClient
	// DeviceRecord is the client for interacting with the DeviceRecord builders.
	DeviceRecord *DeviceRecordClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
	// Topic is the client for interacting with the Topic builders.
	Topic *TopicClient
	// TopicScore is the client for interacting with the TopicScore builders.
	TopicScore *TopicScoreClient
	// UserBadge is the client for interacting with the UserBadge builders.
	UserBadge *UserBadgeClient
	// WeeklyGoal is the client for interacting with the WeeklyGoal builders.
	WeeklyGoal *WeeklyGoalClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Badge = NewBadgeClient(c.config)
	c.DeviceRecord = NewDeviceRecordClient(c.config)
	c.Profile = NewProfileClient(c.config)
	c.Topic = NewTopicClient(c.config)
	c.TopicScore = NewTopicScoreClient(c.config)
	c.UserBadge = NewUserBadgeClient(c.config)
	c.WeeklyGoal = NewWeeklyGoalClient(c.config)
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
		Badge:        NewBadgeClient(cfg),
		DeviceRecord: NewDeviceRecordClient(cfg),
		Profile:      NewProfileClient(cfg),
		Topic:        NewTopicClient(cfg),
		TopicScore:   NewTopicScoreClient(cfg),
		UserBadge:    NewUserBadgeClient(cfg),
		WeeklyGoal:   NewWeeklyGoalClient(cfg),
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
		Badge:        NewBadgeClient(cfg),
		DeviceRecord: NewDeviceRecordClient(cfg),
		Profile:      NewProfileClient(cfg),
		Topic:        NewTopicClient(cfg),
		TopicScore:   NewTopicScoreClient(cfg),
		UserBadge:    NewUserBadgeClient(cfg),
		WeeklyGoal:   NewWeeklyGoalClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Badge.
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
		c.Badge, c.DeviceRecord, c.Profile, c.Topic, c.TopicScore, c.UserBadge,
		c.WeeklyGoal,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Badge, c.DeviceRecord, c.Profile, c.Topic, c.TopicScore, c.UserBadge,
		c.WeeklyGoal,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BadgeMutation:
		return c.Badge.mutate(ctx, m)
	case *DeviceRecordMutation:
		return c.DeviceRecord.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	case *TopicMutation:
		return c.Topic.mutate(ctx, m)
	case *TopicScoreMutation:
		return c.TopicScore.mutate(ctx, m)
	case *UserBadgeMutation:
		return c.UserBadge.mutate(ctx, m)
	case *WeeklyGoalMutation:
		return c.WeeklyGoal.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BadgeClient is a client for the Badge schema.
type BadgeClient struct {
	config
}

// NewBadgeClient returns a client for the Badge from the given config.
func NewBadgeClient(c config) *BadgeClient {
	return &BadgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `badge.Hooks(f(g(h())))`.
func (c *BadgeClient) Use(hooks ...Hook) {
	c.hooks.Badge = append(c.hooks.Badge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `badge.Intercept(f(g(h())))`.
func (c *BadgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Badge = append(c.inters.Badge, interceptors...)
}

// Create returns a builder for creating a Badge entity.
func (c *BadgeClient) Create() *BadgeCreate {
	mutation := newBadgeMutation(c.config, OpCreate)
	return &BadgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Badge entities.
func (c *BadgeClient) CreateBulk(builders ...*BadgeCreate) *BadgeCreateBulk {
	return &BadgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BadgeClient) MapCreateBulk(slice any, setFunc func(*BadgeCreate, int)) *BadgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BadgeCreateBulk{err: fmt.Errorf("calling to BadgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BadgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BadgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Badge.
func (c *BadgeClient) Update() *BadgeUpdate {
	mutation := newBadgeMutation(c.config, OpUpdate)
	return &BadgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BadgeClient) UpdateOne(_m *Badge) *BadgeUpdateOne {
	mutation := newBadgeMutation(c.config, OpUpdateOne, withBadge(_m))
	return &BadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BadgeClient) UpdateOneID(id int) *BadgeUpdateOne {
	mutation := newBadgeMutation(c.config, OpUpdateOne, withBadgeID(id))
	return &BadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Badge.
func (c *BadgeClient) Delete() *BadgeDelete {
	mutation := newBadgeMutation(c.config, OpDelete)
	return &BadgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BadgeClient) DeleteOne(_m *Badge) *BadgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BadgeClient) DeleteOneID(id int) *BadgeDeleteOne {
	builder := c.Delete().Where(badge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BadgeDeleteOne{builder}
}

// Query returns a query builder for Badge.
func (c *BadgeClient) Query() *BadgeQuery {
	return &BadgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBadge},
		inters: c.Interceptors(),
	}
}

// Get returns a Badge entity by its id.
func (c *BadgeClient) Get(ctx context.Context, id int) (*Badge, error) {
	return c.Query().Where(badge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BadgeClient) GetX(ctx context.Context, id int) *Badge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BadgeClient) Hooks() []Hook {
	return c.hooks.Badge
}

// Interceptors returns the client interceptors.
func (c *BadgeClient) Interceptors() []Interceptor {
	return c.inters.Badge
}

func (c *BadgeClient) mutate(ctx context.Context, m *BadgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BadgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BadgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BadgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Badge mutation op: %q", m.Op())
	}
}

// DeviceRecordClient is a client for the DeviceRecord schema.
type DeviceRecordClient struct {
	config
}

// NewDeviceRecordClient returns a client for the DeviceRecord from the given config.
func NewDeviceRecordClient(c config) *DeviceRecordClient {
	return &DeviceRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `devicerecord.Hooks(f(g(h())))`.
func (c *DeviceRecordClient) Use(hooks ...Hook) {
	c.hooks.DeviceRecord = append(c.hooks.DeviceRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `devicerecord.Intercept(f(g(h())))`.
func (c *DeviceRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeviceRecord = append(c.inters.DeviceRecord, interceptors...)
}

// Create returns a builder for creating a DeviceRecord entity.
func (c *DeviceRecordClient) Create() *DeviceRecordCreate {
	mutation := newDeviceRecordMutation(c.config, OpCreate)
	return &DeviceRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeviceRecord entities.
func (c *DeviceRecordClient) CreateBulk(builders ...*DeviceRecordCreate) *DeviceRecordCreateBulk {
	return &DeviceRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeviceRecordClient) MapCreateBulk(slice any, setFunc func(*DeviceRecordCreate, int)) *DeviceRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeviceRecordCreateBulk{err: fmt.Errorf("calling to DeviceRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeviceRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeviceRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeviceRecord.
func (c *DeviceRecordClient) Update() *DeviceRecordUpdate {
	mutation := newDeviceRecordMutation(c.config, OpUpdate)
	return &DeviceRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeviceRecordClient) UpdateOne(_m *DeviceRecord) *DeviceRecordUpdateOne {
	mutation := newDeviceRecordMutation(c.config, OpUpdateOne, withDeviceRecord(_m))
	return &DeviceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeviceRecordClient) UpdateOneID(id int) *DeviceRecordUpdateOne {
	mutation := newDeviceRecordMutation(c.config, OpUpdateOne, withDeviceRecordID(id))
	return &DeviceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeviceRecord.
func (c *DeviceRecordClient) Delete() *DeviceRecordDelete {
	mutation := newDeviceRecordMutation(c.config, OpDelete)
	return &DeviceRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeviceRecordClient) DeleteOne(_m *DeviceRecord) *DeviceRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeviceRecordClient) DeleteOneID(id int) *DeviceRecordDeleteOne {
	builder := c.Delete().Where(devicerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeviceRecordDeleteOne{builder}
}

// Query returns a query builder for DeviceRecord.
func (c *DeviceRecordClient) Query() *DeviceRecordQuery {
	return &DeviceRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeviceRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a DeviceRecord entity by its id.
func (c *DeviceRecordClient) Get(ctx context.Context, id int) (*DeviceRecord, error) {
	return c.Query().Where(devicerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeviceRecordClient) GetX(ctx context.Context, id int) *DeviceRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DeviceRecordClient) Hooks() []Hook {
	return c.hooks.DeviceRecord
}

// Interceptors returns the client interceptors.
func (c *DeviceRecordClient) Interceptors() []Interceptor {
	return c.inters.DeviceRecord
}

func (c *DeviceRecordClient) mutate(ctx context.Context, m *DeviceRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeviceRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeviceRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeviceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeviceRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeviceRecord mutation op: %q", m.Op())
	}
}

// ProfileClient is a client for the Profile schema.
type ProfileClient struct {
	config
}

// NewProfileClient returns a client for the Profile from the given config.
func NewProfileClient(c config) *ProfileClient {
	return &ProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `profile.Hooks(f(g(h())))`.
func (c *ProfileClient) Use(hooks ...Hook) {
	c.hooks.Profile = append(c.hooks.Profile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `profile.Intercept(f(g(h())))`.
func (c *ProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.Profile = append(c.inters.Profile, interceptors...)
}

// Create returns a builder for creating a Profile entity.
func (c *ProfileClient) Create() *ProfileCreate {
	mutation := newProfileMutation(c.config, OpCreate)
	return &ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Profile entities.
func (c *ProfileClient) CreateBulk(builders ...*ProfileCreate) *ProfileCreateBulk {
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProfileClient) MapCreateBulk(slice any, setFunc func(*ProfileCreate, int)) *ProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProfileCreateBulk{err: fmt.Errorf("calling to ProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Profile.
func (c *ProfileClient) Update() *ProfileUpdate {
	mutation := newProfileMutation(c.config, OpUpdate)
	return &ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProfileClient) UpdateOne(_m *Profile) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfile(_m))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProfileClient) UpdateOneID(id int) *ProfileUpdateOne {
	mutation := newProfileMutation(c.config, OpUpdateOne, withProfileID(id))
	return &ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Profile.
func (c *ProfileClient) Delete() *ProfileDelete {
	mutation := newProfileMutation(c.config, OpDelete)
	return &ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProfileClient) DeleteOne(_m *Profile) *ProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProfileClient) DeleteOneID(id int) *ProfileDeleteOne {
	builder := c.Delete().Where(profile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProfileDeleteOne{builder}
}

// Query returns a query builder for Profile.
func (c *ProfileClient) Query() *ProfileQuery {
	return &ProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a Profile entity by its id.
func (c *ProfileClient) Get(ctx context.Context, id int) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id int) *Profile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProfileClient) Hooks() []Hook {
	return c.hooks.Profile
}

// Interceptors returns the client interceptors.
func (c *ProfileClient) Interceptors() []Interceptor {
	return c.inters.Profile
}

func (c *ProfileClient) mutate(ctx context.Context, m *ProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Profile mutation op: %q", m.Op())
	}
}

// TopicClient is a client for the Topic schema.
type TopicClient struct {
	config
}

// NewTopicClient returns a client for the Topic from the given config.
func NewTopicClient(c config) *TopicClient {
	return &TopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topic.Hooks(f(g(h())))`.
func (c *TopicClient) Use(hooks ...Hook) {
	c.hooks.Topic = append(c.hooks.Topic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topic.Intercept(f(g(h())))`.
func (c *TopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Topic = append(c.inters.Topic, interceptors...)
}

// Create returns a builder for creating a Topic entity.
func (c *TopicClient) Create() *TopicCreate {
	mutation := newTopicMutation(c.config, OpCreate)
	return &TopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Topic entities.
func (c *TopicClient) CreateBulk(builders ...*TopicCreate) *TopicCreateBulk {
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicClient) MapCreateBulk(slice any, setFunc func(*TopicCreate, int)) *TopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicCreateBulk{err: fmt.Errorf("calling to TopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Topic.
func (c *TopicClient) Update() *TopicUpdate {
	mutation := newTopicMutation(c.config, OpUpdate)
	return &TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicClient) UpdateOne(_m *Topic) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopic(_m))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicClient) UpdateOneID(id int) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopicID(id))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Topic.
func (c *TopicClient) Delete() *TopicDelete {
	mutation := newTopicMutation(c.config, OpDelete)
	return &TopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicClient) DeleteOne(_m *Topic) *TopicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicClient) DeleteOneID(id int) *TopicDeleteOne {
	builder := c.Delete().Where(topic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicDeleteOne{builder}
}

// Query returns a query builder for Topic.
func (c *TopicClient) Query() *TopicQuery {
	return &TopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopic},
		inters: c.Interceptors(),
	}
}

// Get returns a Topic entity by its id.
func (c *TopicClient) Get(ctx context.Context, id int) (*Topic, error) {
	return c.Query().Where(topic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicClient) GetX(ctx context.Context, id int) *Topic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicClient) Hooks() []Hook {
	return c.hooks.Topic
}

// Interceptors returns the client interceptors.
func (c *TopicClient) Interceptors() []Interceptor {
	return c.inters.Topic
}

func (c *TopicClient) mutate(ctx context.Context, m *TopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Topic mutation op: %q", m.Op())
	}
}

// TopicScoreClient is a client for the TopicScore schema.
type TopicScoreClient struct {
	config
}

// NewTopicScoreClient returns a client for the TopicScore from the given config.
func NewTopicScoreClient(c config) *TopicScoreClient {
	return &TopicScoreClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topicscore.Hooks(f(g(h())))`.
func (c *TopicScoreClient) Use(hooks ...Hook) {
	c.hooks.TopicScore = append(c.hooks.TopicScore, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topicscore.Intercept(f(g(h())))`.
func (c *TopicScoreClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicScore = append(c.inters.TopicScore, interceptors...)
}

// Create returns a builder for creating a TopicScore entity.
func (c *TopicScoreClient) Create() *TopicScoreCreate {
	mutation := newTopicScoreMutation(c.config, OpCreate)
	return &TopicScoreCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicScore entities.
func (c *TopicScoreClient) CreateBulk(builders ...*TopicScoreCreate) *TopicScoreCreateBulk {
	return &TopicScoreCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicScoreClient) MapCreateBulk(slice any, setFunc func(*TopicScoreCreate, int)) *TopicScoreCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicScoreCreateBulk{err: fmt.Errorf("calling to TopicScoreClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicScoreCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicScoreCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicScore.
func (c *TopicScoreClient) Update() *TopicScoreUpdate {
	mutation := newTopicScoreMutation(c.config, OpUpdate)
	return &TopicScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicScoreClient) UpdateOne(_m *TopicScore) *TopicScoreUpdateOne {
	mutation := newTopicScoreMutation(c.config, OpUpdateOne, withTopicScore(_m))
	return &TopicScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicScoreClient) UpdateOneID(id int) *TopicScoreUpdateOne {
	mutation := newTopicScoreMutation(c.config, OpUpdateOne, withTopicScoreID(id))
	return &TopicScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicScore.
func (c *TopicScoreClient) Delete() *TopicScoreDelete {
	mutation := newTopicScoreMutation(c.config, OpDelete)
	return &TopicScoreDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicScoreClient) DeleteOne(_m *TopicScore) *TopicScoreDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicScoreClient) DeleteOneID(id int) *TopicScoreDeleteOne {
	builder := c.Delete().Where(topicscore.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicScoreDeleteOne{builder}
}

// Query returns a query builder for TopicScore.
func (c *TopicScoreClient) Query() *TopicScoreQuery {
	return &TopicScoreQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicScore},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicScore entity by its id.
func (c *TopicScoreClient) Get(ctx context.Context, id int) (*TopicScore, error) {
	return c.Query().Where(topicscore.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicScoreClient) GetX(ctx context.Context, id int) *TopicScore {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicScoreClient) Hooks() []Hook {
	return c.hooks.TopicScore
}

// Interceptors returns the client interceptors.
func (c *TopicScoreClient) Interceptors() []Interceptor {
	return c.inters.TopicScore
}

func (c *TopicScoreClient) mutate(ctx context.Context, m *TopicScoreMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicScoreCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicScoreUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicScoreUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicScoreDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicScore mutation op: %q", m.Op())
	}
}

// UserBadgeClient is a client for the UserBadge schema.
type UserBadgeClient struct {
	config
}

// NewUserBadgeClient returns a client for the UserBadge from the given config.
func NewUserBadgeClient(c config) *UserBadgeClient {
	return &UserBadgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userbadge.Hooks(f(g(h())))`.
func (c *UserBadgeClient) Use(hooks ...Hook) {
	c.hooks.UserBadge = append(c.hooks.UserBadge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userbadge.Intercept(f(g(h())))`.
func (c *UserBadgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserBadge = append(c.inters.UserBadge, interceptors...)
}

// Create returns a builder for creating a UserBadge entity.
func (c *UserBadgeClient) Create() *UserBadgeCreate {
	mutation := newUserBadgeMutation(c.config, OpCreate)
	return &UserBadgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserBadge entities.
func (c *UserBadgeClient) CreateBulk(builders ...*UserBadgeCreate) *UserBadgeCreateBulk {
	return &UserBadgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserBadgeClient) MapCreateBulk(slice any, setFunc func(*UserBadgeCreate, int)) *UserBadgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserBadgeCreateBulk{err: fmt.Errorf("calling to UserBadgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserBadgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserBadgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserBadge.
func (c *UserBadgeClient) Update() *UserBadgeUpdate {
	mutation := newUserBadgeMutation(c.config, OpUpdate)
	return &UserBadgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserBadgeClient) UpdateOne(_m *UserBadge) *UserBadgeUpdateOne {
	mutation := newUserBadgeMutation(c.config, OpUpdateOne, withUserBadge(_m))
	return &UserBadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserBadgeClient) UpdateOneID(id int) *UserBadgeUpdateOne {
	mutation := newUserBadgeMutation(c.config, OpUpdateOne, withUserBadgeID(id))
	return &UserBadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserBadge.
func (c *UserBadgeClient) Delete() *UserBadgeDelete {
	mutation := newUserBadgeMutation(c.config, OpDelete)
	return &UserBadgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserBadgeClient) DeleteOne(_m *UserBadge) *UserBadgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserBadgeClient) DeleteOneID(id int) *UserBadgeDeleteOne {
	builder := c.Delete().Where(userbadge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserBadgeDeleteOne{builder}
}

// Query returns a query builder for UserBadge.
func (c *UserBadgeClient) Query() *UserBadgeQuery {
	return &UserBadgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserBadge},
		inters: c.Interceptors(),
	}
}

// Get returns a UserBadge entity by its id.
func (c *UserBadgeClient) Get(ctx context.Context, id int) (*UserBadge, error) {
	return c.Query().Where(userbadge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserBadgeClient) GetX(ctx context.Context, id int) *UserBadge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserBadgeClient) Hooks() []Hook {
	return c.hooks.UserBadge
}

// Interceptors returns the client interceptors.
func (c *UserBadgeClient) Interceptors() []Interceptor {
	return c.inters.UserBadge
}

func (c *UserBadgeClient) mutate(ctx context.Context, m *UserBadgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserBadgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserBadgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserBadgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserBadgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserBadge mutation op: %q", m.Op())
	}
}

// WeeklyGoalClient is a client for the WeeklyGoal schema.
type WeeklyGoalClient struct {
	config
}

// NewWeeklyGoalClient returns a client for the WeeklyGoal from the given config.
func NewWeeklyGoalClient(c config) *WeeklyGoalClient {
	return &WeeklyGoalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `weeklygoal.Hooks(f(g(h())))`.
func (c *WeeklyGoalClient) Use(hooks ...Hook) {
	c.hooks.WeeklyGoal = append(c.hooks.WeeklyGoal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `weeklygoal.Intercept(f(g(h())))`.
func (c *WeeklyGoalClient) Intercept(interceptors ...Interceptor) {
	c.inters.WeeklyGoal = append(c.inters.WeeklyGoal, interceptors...)
}

// Create returns a builder for creating a WeeklyGoal entity.
func (c *WeeklyGoalClient) Create() *WeeklyGoalCreate {
	mutation := newWeeklyGoalMutation(c.config, OpCreate)
	return &WeeklyGoalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WeeklyGoal entities.
func (c *WeeklyGoalClient) CreateBulk(builders ...*WeeklyGoalCreate) *WeeklyGoalCreateBulk {
	return &WeeklyGoalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WeeklyGoalClient) MapCreateBulk(slice any, setFunc func(*WeeklyGoalCreate, int)) *WeeklyGoalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WeeklyGoalCreateBulk{err: fmt.Errorf("calling to WeeklyGoalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WeeklyGoalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WeeklyGoalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WeeklyGoal.
func (c *WeeklyGoalClient) Update() *WeeklyGoalUpdate {
	mutation := newWeeklyGoalMutation(c.config, OpUpdate)
	return &WeeklyGoalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WeeklyGoalClient) UpdateOne(_m *WeeklyGoal) *WeeklyGoalUpdateOne {
	mutation := newWeeklyGoalMutation(c.config, OpUpdateOne, withWeeklyGoal(_m))
	return &WeeklyGoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WeeklyGoalClient) UpdateOneID(id int) *WeeklyGoalUpdateOne {
	mutation := newWeeklyGoalMutation(c.config, OpUpdateOne, withWeeklyGoalID(id))
	return &WeeklyGoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WeeklyGoal.
func (c *WeeklyGoalClient) Delete() *WeeklyGoalDelete {
	mutation := newWeeklyGoalMutation(c.config, OpDelete)
	return &WeeklyGoalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WeeklyGoalClient) DeleteOne(_m *WeeklyGoal) *WeeklyGoalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WeeklyGoalClient) DeleteOneID(id int) *WeeklyGoalDeleteOne {
	builder := c.Delete().Where(weeklygoal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WeeklyGoalDeleteOne{builder}
}

// Query returns a query builder for WeeklyGoal.
func (c *WeeklyGoalClient) Query() *WeeklyGoalQuery {
	return &WeeklyGoalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWeeklyGoal},
		inters: c.Interceptors(),
	}
}

// Get returns a WeeklyGoal entity by its id.
func (c *WeeklyGoalClient) Get(ctx context.Context, id int) (*WeeklyGoal, error) {
	return c.Query().Where(weeklygoal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WeeklyGoalClient) GetX(ctx context.Context, id int) *WeeklyGoal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WeeklyGoalClient) Hooks() []Hook {
	return c.hooks.WeeklyGoal
}

// Interceptors returns the client interceptors.
func (c *WeeklyGoalClient) Interceptors() []Interceptor {
	return c.inters.WeeklyGoal
}

func (c *WeeklyGoalClient) mutate(ctx context.Context, m *WeeklyGoalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WeeklyGoalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WeeklyGoalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WeeklyGoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WeeklyGoalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WeeklyGoal mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Badge, DeviceRecord, Profile, Topic, TopicScore, UserBadge,
		WeeklyGoal []ent.Hook
	}
	inters struct {
		Badge, DeviceRecord, Profile, Topic, TopicScore, UserBadge,
		WeeklyGoal []ent.Interceptor
	}
)
