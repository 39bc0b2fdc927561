// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/medreach/hospital_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/medreach/hospital_backend/internal/repo/appointment"
	"github.com/medreach/hospital_backend/internal/repo/blogpost"
	"github.com/medreach/hospital_backend/internal/repo/labresult"
	"github.com/medreach/hospital_backend/internal/repo/medicalreport"
	"github.com/medreach/hospital_backend/internal/repo/profile"
	"github.com/medreach/hospital_backend/internal/repo/testrequest"
	"github.com/medreach/hospital_backend/internal/repo/user"
	"github.com/medreach/hospital_backend/internal/repo/vitalrequest"
	"github.com/medreach/hospital_backend/internal/repo/vitals"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Appointment is the client for interacting with the Appointment builders.
	Appointment *AppointmentClient
	// BlogPost is the client for interacting with the BlogPost builders.
	BlogPost *BlogPostClient
	// LabResult is the client for interacting with the LabResult builders.
	LabResult *LabResultClient
	// MedicalReport is the client for interacting with the MedicalReport builders.
	MedicalReport *MedicalReportClient
	// Profile is the client for interacting with the Profile builders.
	Profile *ProfileClient
	// TestRequest is the client for interacting with the TestRequest builders.
	TestRequest *TestRequestClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// VitalRequest is the client for interacting with the VitalRequest builders.
	VitalRequest *VitalRequestClient
	// Vitals is the client for interacting with the Vitals builders.
	Vitals *VitalsClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Appointment = NewAppointmentClient(c.config)
	c.BlogPost = NewBlogPostClient(c.config)
	c.LabResult = NewLabResultClient(c.config)
	c.MedicalReport = NewMedicalReportClient(c.config)
	c.Profile = NewProfileClient(c.config)
	c.TestRequest = NewTestRequestClient(c.config)
	c.User = NewUserClient(c.config)
	c.VitalRequest = NewVitalRequestClient(c.config)
	c.Vitals = NewVitalsClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		Appointment:   NewAppointmentClient(cfg),
		BlogPost:      NewBlogPostClient(cfg),
		LabResult:     NewLabResultClient(cfg),
		MedicalReport: NewMedicalReportClient(cfg),
		Profile:       NewProfileClient(cfg),
		TestRequest:   NewTestRequestClient(cfg),
		User:          NewUserClient(cfg),
		VitalRequest:  NewVitalRequestClient(cfg),
		Vitals:        NewVitalsClient(cfg),
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
		Appointment:   NewAppointmentClient(cfg),
		BlogPost:      NewBlogPostClient(cfg),
		LabResult:     NewLabResultClient(cfg),
		MedicalReport: NewMedicalReportClient(cfg),
		Profile:       NewProfileClient(cfg),
		TestRequest:   NewTestRequestClient(cfg),
		User:          NewUserClient(cfg),
		VitalRequest:  NewVitalRequestClient(cfg),
		Vitals:        NewVitalsClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Appointment.
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
		c.Appointment, c.BlogPost, c.LabResult, c.MedicalReport, c.Profile,
		c.TestRequest, c.User, c.VitalRequest, c.Vitals,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Appointment, c.BlogPost, c.LabResult, c.MedicalReport, c.Profile,
		c.TestRequest, c.User, c.VitalRequest, c.Vitals,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AppointmentMutation:
		return c.Appointment.mutate(ctx, m)
	case *BlogPostMutation:
		return c.BlogPost.mutate(ctx, m)
	case *LabResultMutation:
		return c.LabResult.mutate(ctx, m)
	case *MedicalReportMutation:
		return c.MedicalReport.mutate(ctx, m)
	case *ProfileMutation:
		return c.Profile.mutate(ctx, m)
	case *TestRequestMutation:
		return c.TestRequest.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *VitalRequestMutation:
		return c.VitalRequest.mutate(ctx, m)
	case *VitalsMutation:
		return c.Vitals.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AppointmentClient is a client for the Appointment schema.
type AppointmentClient struct {
	config
}

// NewAppointmentClient returns a client for the Appointment from the given config.
func NewAppointmentClient(c config) *AppointmentClient {
	return &AppointmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointment.Hooks(f(g(h())))`.
func (c *AppointmentClient) Use(hooks ...Hook) {
	c.hooks.Appointment = append(c.hooks.Appointment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointment.Intercept(f(g(h())))`.
func (c *AppointmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Appointment = append(c.inters.Appointment, interceptors...)
}

// Create returns a builder for creating a Appointment entity.
func (c *AppointmentClient) Create() *AppointmentCreate {
	mutation := newAppointmentMutation(c.config, OpCreate)
	return &AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Appointment entities.
func (c *AppointmentClient) CreateBulk(builders ...*AppointmentCreate) *AppointmentCreateBulk {
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentClient) MapCreateBulk(slice any, setFunc func(*AppointmentCreate, int)) *AppointmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentCreateBulk{err: fmt.Errorf("calling to AppointmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Appointment.
func (c *AppointmentClient) Update() *AppointmentUpdate {
	mutation := newAppointmentMutation(c.config, OpUpdate)
	return &AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentClient) UpdateOne(_m *Appointment) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointment(_m))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentClient) UpdateOneID(id uuid.UUID) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointmentID(id))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Appointment.
func (c *AppointmentClient) Delete() *AppointmentDelete {
	mutation := newAppointmentMutation(c.config, OpDelete)
	return &AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentClient) DeleteOne(_m *Appointment) *AppointmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentClient) DeleteOneID(id uuid.UUID) *AppointmentDeleteOne {
	builder := c.Delete().Where(appointment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentDeleteOne{builder}
}

// Query returns a query builder for Appointment.
func (c *AppointmentClient) Query() *AppointmentQuery {
	return &AppointmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointment},
		inters: c.Interceptors(),
	}
}

// Get returns a Appointment entity by its id.
func (c *AppointmentClient) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return c.Query().Where(appointment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentClient) GetX(ctx context.Context, id uuid.UUID) *Appointment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AppointmentClient) Hooks() []Hook {
	return c.hooks.Appointment
}

// Interceptors returns the client interceptors.
func (c *AppointmentClient) Interceptors() []Interceptor {
	return c.inters.Appointment
}

func (c *AppointmentClient) mutate(ctx context.Context, m *AppointmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Appointment mutation op: %q", m.Op())
	}
}

// BlogPostClient is a client for the BlogPost schema.
type BlogPostClient struct {
	config
}

// NewBlogPostClient returns a client for the BlogPost from the given config.
func NewBlogPostClient(c config) *BlogPostClient {
	return &BlogPostClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `blogpost.Hooks(f(g(h())))`.
func (c *BlogPostClient) Use(hooks ...Hook) {
	c.hooks.BlogPost = append(c.hooks.BlogPost, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `blogpost.Intercept(f(g(h())))`.
func (c *BlogPostClient) Intercept(interceptors ...Interceptor) {
	c.inters.BlogPost = append(c.inters.BlogPost, interceptors...)
}

// Create returns a builder for creating a BlogPost entity.
func (c *BlogPostClient) Create() *BlogPostCreate {
	mutation := newBlogPostMutation(c.config, OpCreate)
	return &BlogPostCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BlogPost entities.
func (c *BlogPostClient) CreateBulk(builders ...*BlogPostCreate) *BlogPostCreateBulk {
	return &BlogPostCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BlogPostClient) MapCreateBulk(slice any, setFunc func(*BlogPostCreate, int)) *BlogPostCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BlogPostCreateBulk{err: fmt.Errorf("calling to BlogPostClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BlogPostCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BlogPostCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BlogPost.
func (c *BlogPostClient) Update() *BlogPostUpdate {
	mutation := newBlogPostMutation(c.config, OpUpdate)
	return &BlogPostUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BlogPostClient) UpdateOne(_m *BlogPost) *BlogPostUpdateOne {
	mutation := newBlogPostMutation(c.config, OpUpdateOne, withBlogPost(_m))
	return &BlogPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BlogPostClient) UpdateOneID(id uuid.UUID) *BlogPostUpdateOne {
	mutation := newBlogPostMutation(c.config, OpUpdateOne, withBlogPostID(id))
	return &BlogPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BlogPost.
func (c *BlogPostClient) Delete() *BlogPostDelete {
	mutation := newBlogPostMutation(c.config, OpDelete)
	return &BlogPostDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BlogPostClient) DeleteOne(_m *BlogPost) *BlogPostDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BlogPostClient) DeleteOneID(id uuid.UUID) *BlogPostDeleteOne {
	builder := c.Delete().Where(blogpost.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BlogPostDeleteOne{builder}
}

// Query returns a query builder for BlogPost.
func (c *BlogPostClient) Query() *BlogPostQuery {
	return &BlogPostQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBlogPost},
		inters: c.Interceptors(),
	}
}

// Get returns a BlogPost entity by its id.
func (c *BlogPostClient) Get(ctx context.Context, id uuid.UUID) (*BlogPost, error) {
	return c.Query().Where(blogpost.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BlogPostClient) GetX(ctx context.Context, id uuid.UUID) *BlogPost {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BlogPostClient) Hooks() []Hook {
	return c.hooks.BlogPost
}

// Interceptors returns the client interceptors.
func (c *BlogPostClient) Interceptors() []Interceptor {
	return c.inters.BlogPost
}

func (c *BlogPostClient) mutate(ctx context.Context, m *BlogPostMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BlogPostCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BlogPostUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BlogPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BlogPostDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown BlogPost mutation op: %q", m.Op())
	}
}

// LabResultClient is a client for the LabResult schema.
type LabResultClient struct {
	config
}

// NewLabResultClient returns a client for the LabResult from the given config.
func NewLabResultClient(c config) *LabResultClient {
	return &LabResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `labresult.Hooks(f(g(h())))`.
func (c *LabResultClient) Use(hooks ...Hook) {
	c.hooks.LabResult = append(c.hooks.LabResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `labresult.Intercept(f(g(h())))`.
func (c *LabResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.LabResult = append(c.inters.LabResult, interceptors...)
}

// Create returns a builder for creating a LabResult entity.
func (c *LabResultClient) Create() *LabResultCreate {
	mutation := newLabResultMutation(c.config, OpCreate)
	return &LabResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LabResult entities.
func (c *LabResultClient) CreateBulk(builders ...*LabResultCreate) *LabResultCreateBulk {
	return &LabResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LabResultClient) MapCreateBulk(slice any, setFunc func(*LabResultCreate, int)) *LabResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LabResultCreateBulk{err: fmt.Errorf("calling to LabResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LabResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LabResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LabResult.
func (c *LabResultClient) Update() *LabResultUpdate {
	mutation := newLabResultMutation(c.config, OpUpdate)
	return &LabResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LabResultClient) UpdateOne(_m *LabResult) *LabResultUpdateOne {
	mutation := newLabResultMutation(c.config, OpUpdateOne, withLabResult(_m))
	return &LabResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LabResultClient) UpdateOneID(id uuid.UUID) *LabResultUpdateOne {
	mutation := newLabResultMutation(c.config, OpUpdateOne, withLabResultID(id))
	return &LabResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LabResult.
func (c *LabResultClient) Delete() *LabResultDelete {
	mutation := newLabResultMutation(c.config, OpDelete)
	return &LabResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LabResultClient) DeleteOne(_m *LabResult) *LabResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LabResultClient) DeleteOneID(id uuid.UUID) *LabResultDeleteOne {
	builder := c.Delete().Where(labresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LabResultDeleteOne{builder}
}

// Query returns a query builder for LabResult.
func (c *LabResultClient) Query() *LabResultQuery {
	return &LabResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLabResult},
		inters: c.Interceptors(),
	}
}

// Get returns a LabResult entity by its id.
func (c *LabResultClient) Get(ctx context.Context, id uuid.UUID) (*LabResult, error) {
	return c.Query().Where(labresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LabResultClient) GetX(ctx context.Context, id uuid.UUID) *LabResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LabResultClient) Hooks() []Hook {
	return c.hooks.LabResult
}

// Interceptors returns the client interceptors.
func (c *LabResultClient) Interceptors() []Interceptor {
	return c.inters.LabResult
}

func (c *LabResultClient) mutate(ctx context.Context, m *LabResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LabResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LabResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LabResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LabResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown LabResult mutation op: %q", m.Op())
	}
}

// MedicalReportClient is a client for the MedicalReport schema.
type MedicalReportClient struct {
	config
}

// NewMedicalReportClient returns a client for the MedicalReport from the given config.
func NewMedicalReportClient(c config) *MedicalReportClient {
	return &MedicalReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `medicalreport.Hooks(f(g(h())))`.
func (c *MedicalReportClient) Use(hooks ...Hook) {
	c.hooks.MedicalReport = append(c.hooks.MedicalReport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `medicalreport.Intercept(f(g(h())))`.
func (c *MedicalReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.MedicalReport = append(c.inters.MedicalReport, interceptors...)
}

// Create returns a builder for creating a MedicalReport entity.
func (c *MedicalReportClient) Create() *MedicalReportCreate {
	mutation := newMedicalReportMutation(c.config, OpCreate)
	return &MedicalReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MedicalReport entities.
func (c *MedicalReportClient) CreateBulk(builders ...*MedicalReportCreate) *MedicalReportCreateBulk {
	return &MedicalReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MedicalReportClient) MapCreateBulk(slice any, setFunc func(*MedicalReportCreate, int)) *MedicalReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MedicalReportCreateBulk{err: fmt.Errorf("calling to MedicalReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MedicalReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MedicalReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MedicalReport.
func (c *MedicalReportClient) Update() *MedicalReportUpdate {
	mutation := newMedicalReportMutation(c.config, OpUpdate)
	return &MedicalReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MedicalReportClient) UpdateOne(_m *MedicalReport) *MedicalReportUpdateOne {
	mutation := newMedicalReportMutation(c.config, OpUpdateOne, withMedicalReport(_m))
	return &MedicalReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MedicalReportClient) UpdateOneID(id uuid.UUID) *MedicalReportUpdateOne {
	mutation := newMedicalReportMutation(c.config, OpUpdateOne, withMedicalReportID(id))
	return &MedicalReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MedicalReport.
func (c *MedicalReportClient) Delete() *MedicalReportDelete {
	mutation := newMedicalReportMutation(c.config, OpDelete)
	return &MedicalReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MedicalReportClient) DeleteOne(_m *MedicalReport) *MedicalReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MedicalReportClient) DeleteOneID(id uuid.UUID) *MedicalReportDeleteOne {
	builder := c.Delete().Where(medicalreport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MedicalReportDeleteOne{builder}
}

// Query returns a query builder for MedicalReport.
func (c *MedicalReportClient) Query() *MedicalReportQuery {
	return &MedicalReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMedicalReport},
		inters: c.Interceptors(),
	}
}

// Get returns a MedicalReport entity by its id.
func (c *MedicalReportClient) Get(ctx context.Context, id uuid.UUID) (*MedicalReport, error) {
	return c.Query().Where(medicalreport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MedicalReportClient) GetX(ctx context.Context, id uuid.UUID) *MedicalReport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MedicalReportClient) Hooks() []Hook {
	return c.hooks.MedicalReport
}

// Interceptors returns the client interceptors.
func (c *MedicalReportClient) Interceptors() []Interceptor {
	return c.inters.MedicalReport
}

func (c *MedicalReportClient) mutate(ctx context.Context, m *MedicalReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MedicalReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MedicalReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MedicalReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MedicalReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown MedicalReport mutation op: %q", m.Op())
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
func (c *ProfileClient) UpdateOneID(id uuid.UUID) *ProfileUpdateOne {
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
func (c *ProfileClient) DeleteOneID(id uuid.UUID) *ProfileDeleteOne {
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
func (c *ProfileClient) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return c.Query().Where(profile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProfileClient) GetX(ctx context.Context, id uuid.UUID) *Profile {
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
		return nil, fmt.Errorf("repo: unknown Profile mutation op: %q", m.Op())
	}
}

// TestRequestClient is a client for the TestRequest schema.
type TestRequestClient struct {
	config
}

// NewTestRequestClient returns a client for the TestRequest from the given config.
func NewTestRequestClient(c config) *TestRequestClient {
	return &TestRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `testrequest.Hooks(f(g(h())))`.
func (c *TestRequestClient) Use(hooks ...Hook) {
	c.hooks.TestRequest = append(c.hooks.TestRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `testrequest.Intercept(f(g(h())))`.
func (c *TestRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.TestRequest = append(c.inters.TestRequest, interceptors...)
}

// Create returns a builder for creating a TestRequest entity.
func (c *TestRequestClient) Create() *TestRequestCreate {
	mutation := newTestRequestMutation(c.config, OpCreate)
	return &TestRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TestRequest entities.
func (c *TestRequestClient) CreateBulk(builders ...*TestRequestCreate) *TestRequestCreateBulk {
	return &TestRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TestRequestClient) MapCreateBulk(slice any, setFunc func(*TestRequestCreate, int)) *TestRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TestRequestCreateBulk{err: fmt.Errorf("calling to TestRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TestRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TestRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TestRequest.
func (c *TestRequestClient) Update() *TestRequestUpdate {
	mutation := newTestRequestMutation(c.config, OpUpdate)
	return &TestRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TestRequestClient) UpdateOne(_m *TestRequest) *TestRequestUpdateOne {
	mutation := newTestRequestMutation(c.config, OpUpdateOne, withTestRequest(_m))
	return &TestRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TestRequestClient) UpdateOneID(id uuid.UUID) *TestRequestUpdateOne {
	mutation := newTestRequestMutation(c.config, OpUpdateOne, withTestRequestID(id))
	return &TestRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TestRequest.
func (c *TestRequestClient) Delete() *TestRequestDelete {
	mutation := newTestRequestMutation(c.config, OpDelete)
	return &TestRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TestRequestClient) DeleteOne(_m *TestRequest) *TestRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TestRequestClient) DeleteOneID(id uuid.UUID) *TestRequestDeleteOne {
	builder := c.Delete().Where(testrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TestRequestDeleteOne{builder}
}

// Query returns a query builder for TestRequest.
func (c *TestRequestClient) Query() *TestRequestQuery {
	return &TestRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTestRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a TestRequest entity by its id.
func (c *TestRequestClient) Get(ctx context.Context, id uuid.UUID) (*TestRequest, error) {
	return c.Query().Where(testrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TestRequestClient) GetX(ctx context.Context, id uuid.UUID) *TestRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TestRequestClient) Hooks() []Hook {
	return c.hooks.TestRequest
}

// Interceptors returns the client interceptors.
func (c *TestRequestClient) Interceptors() []Interceptor {
	return c.inters.TestRequest
}

func (c *TestRequestClient) mutate(ctx context.Context, m *TestRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TestRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TestRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TestRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TestRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TestRequest mutation op: %q", m.Op())
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
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
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
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
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
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
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
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// VitalRequestClient is a client for the VitalRequest schema.
type VitalRequestClient struct {
	config
}

// NewVitalRequestClient returns a client for the VitalRequest from the given config.
func NewVitalRequestClient(c config) *VitalRequestClient {
	return &VitalRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vitalrequest.Hooks(f(g(h())))`.
func (c *VitalRequestClient) Use(hooks ...Hook) {
	c.hooks.VitalRequest = append(c.hooks.VitalRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vitalrequest.Intercept(f(g(h())))`.
func (c *VitalRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.VitalRequest = append(c.inters.VitalRequest, interceptors...)
}

// Create returns a builder for creating a VitalRequest entity.
func (c *VitalRequestClient) Create() *VitalRequestCreate {
	mutation := newVitalRequestMutation(c.config, OpCreate)
	return &VitalRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VitalRequest entities.
func (c *VitalRequestClient) CreateBulk(builders ...*VitalRequestCreate) *VitalRequestCreateBulk {
	return &VitalRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VitalRequestClient) MapCreateBulk(slice any, setFunc func(*VitalRequestCreate, int)) *VitalRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VitalRequestCreateBulk{err: fmt.Errorf("calling to VitalRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VitalRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VitalRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VitalRequest.
func (c *VitalRequestClient) Update() *VitalRequestUpdate {
	mutation := newVitalRequestMutation(c.config, OpUpdate)
	return &VitalRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VitalRequestClient) UpdateOne(_m *VitalRequest) *VitalRequestUpdateOne {
	mutation := newVitalRequestMutation(c.config, OpUpdateOne, withVitalRequest(_m))
	return &VitalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VitalRequestClient) UpdateOneID(id uuid.UUID) *VitalRequestUpdateOne {
	mutation := newVitalRequestMutation(c.config, OpUpdateOne, withVitalRequestID(id))
	return &VitalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VitalRequest.
func (c *VitalRequestClient) Delete() *VitalRequestDelete {
	mutation := newVitalRequestMutation(c.config, OpDelete)
	return &VitalRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VitalRequestClient) DeleteOne(_m *VitalRequest) *VitalRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VitalRequestClient) DeleteOneID(id uuid.UUID) *VitalRequestDeleteOne {
	builder := c.Delete().Where(vitalrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VitalRequestDeleteOne{builder}
}

// Query returns a query builder for VitalRequest.
func (c *VitalRequestClient) Query() *VitalRequestQuery {
	return &VitalRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVitalRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a VitalRequest entity by its id.
func (c *VitalRequestClient) Get(ctx context.Context, id uuid.UUID) (*VitalRequest, error) {
	return c.Query().Where(vitalrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VitalRequestClient) GetX(ctx context.Context, id uuid.UUID) *VitalRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VitalRequestClient) Hooks() []Hook {
	return c.hooks.VitalRequest
}

// Interceptors returns the client interceptors.
func (c *VitalRequestClient) Interceptors() []Interceptor {
	return c.inters.VitalRequest
}

func (c *VitalRequestClient) mutate(ctx context.Context, m *VitalRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VitalRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VitalRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VitalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VitalRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown VitalRequest mutation op: %q", m.Op())
	}
}

// VitalsClient is a client for the Vitals schema.
type VitalsClient struct {
	config
}

// NewVitalsClient returns a client for the Vitals from the given config.
func NewVitalsClient(c config) *VitalsClient {
	return &VitalsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vitals.Hooks(f(g(h())))`.
func (c *VitalsClient) Use(hooks ...Hook) {
	c.hooks.Vitals = append(c.hooks.Vitals, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vitals.Intercept(f(g(h())))`.
func (c *VitalsClient) Intercept(interceptors ...Interceptor) {
	c.inters.Vitals = append(c.inters.Vitals, interceptors...)
}

// Create returns a builder for creating a Vitals entity.
func (c *VitalsClient) Create() *VitalsCreate {
	mutation := newVitalsMutation(c.config, OpCreate)
	return &VitalsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Vitals entities.
func (c *VitalsClient) CreateBulk(builders ...*VitalsCreate) *VitalsCreateBulk {
	return &VitalsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VitalsClient) MapCreateBulk(slice any, setFunc func(*VitalsCreate, int)) *VitalsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VitalsCreateBulk{err: fmt.Errorf("calling to VitalsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VitalsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VitalsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Vitals.
func (c *VitalsClient) Update() *VitalsUpdate {
	mutation := newVitalsMutation(c.config, OpUpdate)
	return &VitalsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VitalsClient) UpdateOne(_m *Vitals) *VitalsUpdateOne {
	mutation := newVitalsMutation(c.config, OpUpdateOne, withVitals(_m))
	return &VitalsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VitalsClient) UpdateOneID(id uuid.UUID) *VitalsUpdateOne {
	mutation := newVitalsMutation(c.config, OpUpdateOne, withVitalsID(id))
	return &VitalsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Vitals.
func (c *VitalsClient) Delete() *VitalsDelete {
	mutation := newVitalsMutation(c.config, OpDelete)
	return &VitalsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VitalsClient) DeleteOne(_m *Vitals) *VitalsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VitalsClient) DeleteOneID(id uuid.UUID) *VitalsDeleteOne {
	builder := c.Delete().Where(vitals.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VitalsDeleteOne{builder}
}

// Query returns a query builder for Vitals.
func (c *VitalsClient) Query() *VitalsQuery {
	return &VitalsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVitals},
		inters: c.Interceptors(),
	}
}

// Get returns a Vitals entity by its id.
func (c *VitalsClient) Get(ctx context.Context, id uuid.UUID) (*Vitals, error) {
	return c.Query().Where(vitals.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VitalsClient) GetX(ctx context.Context, id uuid.UUID) *Vitals {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VitalsClient) Hooks() []Hook {
	return c.hooks.Vitals
}

// Interceptors returns the client interceptors.
func (c *VitalsClient) Interceptors() []Interceptor {
	return c.inters.Vitals
}

func (c *VitalsClient) mutate(ctx context.Context, m *VitalsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VitalsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VitalsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VitalsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VitalsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Vitals mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Appointment, BlogPost, LabResult, MedicalReport, Profile, TestRequest, User,
		VitalRequest, Vitals []ent.Hook
	}
	inters struct {
		Appointment, BlogPost, LabResult, MedicalReport, Profile, TestRequest, User,
		VitalRequest, Vitals []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
