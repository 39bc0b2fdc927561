// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medreach/hospital_backend/internal/repo/testrequest"
)

// TestRequestCreate is the builder for creating a TestRequest entity.
type TestRequestCreate struct {
	config
	mutation *TestRequestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestRequestCreate) SetCreatedAt(v time.Time) *TestRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestRequestCreate) SetNillableCreatedAt(v *time.Time) *TestRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TestRequestCreate) SetUpdatedAt(v time.Time) *TestRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TestRequestCreate) SetNillableUpdatedAt(v *time.Time) *TestRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *TestRequestCreate) SetAppointmentID(v uuid.UUID) *TestRequestCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetRequestedBy sets the "requested_by" field.
func (_c *TestRequestCreate) SetRequestedBy(v uuid.UUID) *TestRequestCreate {
	_c.mutation.SetRequestedBy(v)
	return _c
}

// SetAssignedTo sets the "assigned_to" field.
func (_c *TestRequestCreate) SetAssignedTo(v uuid.UUID) *TestRequestCreate {
	_c.mutation.SetAssignedTo(v)
	return _c
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_c *TestRequestCreate) SetNillableAssignedTo(v *uuid.UUID) *TestRequestCreate {
	if v != nil {
		_c.SetAssignedTo(*v)
	}
	return _c
}

// SetTests sets the "tests" field.
func (_c *TestRequestCreate) SetTests(v []string) *TestRequestCreate {
	_c.mutation.SetTests(v)
	return _c
}

// SetNote sets the "note" field.
func (_c *TestRequestCreate) SetNote(v string) *TestRequestCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *TestRequestCreate) SetNillableNote(v *string) *TestRequestCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TestRequestCreate) SetStatus(v testrequest.Status) *TestRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TestRequestCreate) SetNillableStatus(v *testrequest.Status) *TestRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TestRequestCreate) SetID(v uuid.UUID) *TestRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TestRequestCreate) SetNillableID(v *uuid.UUID) *TestRequestCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TestRequestMutation object of the builder.
func (_c *TestRequestCreate) Mutation() *TestRequestMutation {
	return _c.mutation
}

// Save creates the TestRequest in the database.
func (_c *TestRequestCreate) Save(ctx context.Context) (*TestRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestRequestCreate) SaveX(ctx context.Context) *TestRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestRequestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := testrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := testrequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := testrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := testrequest.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestRequestCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TestRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "TestRequest.updated_at"`)}
	}
	if _, ok := _c.mutation.AppointmentID(); !ok {
		return &ValidationError{Name: "appointment_id", err: errors.New(`repo: missing required field "TestRequest.appointment_id"`)}
	}
	if _, ok := _c.mutation.RequestedBy(); !ok {
		return &ValidationError{Name: "requested_by", err: errors.New(`repo: missing required field "TestRequest.requested_by"`)}
	}
	if _, ok := _c.mutation.Tests(); !ok {
		return &ValidationError{Name: "tests", err: errors.New(`repo: missing required field "TestRequest.tests"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "TestRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := testrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TestRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_c *TestRequestCreate) sqlSave(ctx context.Context) (*TestRequest, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TestRequestCreate) createSpec() (*TestRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &TestRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testrequest.Table, sqlgraph.NewFieldSpec(testrequest.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(testrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(testrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(testrequest.FieldAppointmentID, field.TypeUUID, value)
		_node.AppointmentID = value
	}
	if value, ok := _c.mutation.RequestedBy(); ok {
		_spec.SetField(testrequest.FieldRequestedBy, field.TypeUUID, value)
		_node.RequestedBy = value
	}
	if value, ok := _c.mutation.AssignedTo(); ok {
		_spec.SetField(testrequest.FieldAssignedTo, field.TypeUUID, value)
		_node.AssignedTo = &value
	}
	if value, ok := _c.mutation.Tests(); ok {
		_spec.SetField(testrequest.FieldTests, field.TypeJSON, value)
		_node.Tests = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(testrequest.FieldNote, field.TypeString, value)
		_node.Note = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(testrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TestRequest.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TestRequestUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TestRequestCreate) OnConflict(opts ...sql.ConflictOption) *TestRequestUpsertOne {
	_c.conflict = opts
	return &TestRequestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TestRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TestRequestCreate) OnConflictColumns(columns ...string) *TestRequestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TestRequestUpsertOne{
		create: _c,
	}
}

type (
	// TestRequestUpsertOne is the builder for "upsert"-ing
	//  one TestRequest node.
	TestRequestUpsertOne struct {
		create *TestRequestCreate
	}

	// TestRequestUpsert is the "OnConflict" setter.
	TestRequestUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *TestRequestUpsert) SetUpdatedAt(v time.Time) *TestRequestUpsert {
	u.Set(testrequest.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TestRequestUpsert) UpdateUpdatedAt() *TestRequestUpsert {
	u.SetExcluded(testrequest.FieldUpdatedAt)
	return u
}

// SetAppointmentID sets the "appointment_id" field.
func (u *TestRequestUpsert) SetAppointmentID(v uuid.UUID) *TestRequestUpsert {
	u.Set(testrequest.FieldAppointmentID, v)
	return u
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *TestRequestUpsert) UpdateAppointmentID() *TestRequestUpsert {
	u.SetExcluded(testrequest.FieldAppointmentID)
	return u
}

// SetRequestedBy sets the "requested_by" field.
func (u *TestRequestUpsert) SetRequestedBy(v uuid.UUID) *TestRequestUpsert {
	u.Set(testrequest.FieldRequestedBy, v)
	return u
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *TestRequestUpsert) UpdateRequestedBy() *TestRequestUpsert {
	u.SetExcluded(testrequest.FieldRequestedBy)
	return u
}

// SetAssignedTo sets the "assigned_to" field.
func (u *TestRequestUpsert) SetAssignedTo(v uuid.UUID) *TestRequestUpsert {
	u.Set(testrequest.FieldAssignedTo, v)
	return u
}

// UpdateAssignedTo sets the "assigned_to" field to the value that was provided on create.
func (u *TestRequestUpsert) UpdateAssignedTo() *TestRequestUpsert {
	u.SetExcluded(testrequest.FieldAssignedTo)
	return u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (u *TestRequestUpsert) ClearAssignedTo() *TestRequestUpsert {
	u.SetNull(testrequest.FieldAssignedTo)
	return u
}

// SetTests sets the "tests" field.
func (u *TestRequestUpsert) SetTests(v []string) *TestRequestUpsert {
	u.Set(testrequest.FieldTests, v)
	return u
}

// UpdateTests sets the "tests" field to the value that was provided on create.
func (u *TestRequestUpsert) UpdateTests() *TestRequestUpsert {
	u.SetExcluded(testrequest.FieldTests)
	return u
}

// SetNote sets the "note" field.
func (u *TestRequestUpsert) SetNote(v string) *TestRequestUpsert {
	u.Set(testrequest.FieldNote, v)
	return u
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *TestRequestUpsert) UpdateNote() *TestRequestUpsert {
	u.SetExcluded(testrequest.FieldNote)
	return u
}

// ClearNote clears the value of the "note" field.
func (u *TestRequestUpsert) ClearNote() *TestRequestUpsert {
	u.SetNull(testrequest.FieldNote)
	return u
}

// SetStatus sets the "status" field.
func (u *TestRequestUpsert) SetStatus(v testrequest.Status) *TestRequestUpsert {
	u.Set(testrequest.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TestRequestUpsert) UpdateStatus() *TestRequestUpsert {
	u.SetExcluded(testrequest.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TestRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(testrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TestRequestUpsertOne) UpdateNewValues() *TestRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(testrequest.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(testrequest.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TestRequest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TestRequestUpsertOne) Ignore() *TestRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TestRequestUpsertOne) DoNothing() *TestRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TestRequestCreate.OnConflict
// documentation for more info.
func (u *TestRequestUpsertOne) Update(set func(*TestRequestUpsert)) *TestRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TestRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TestRequestUpsertOne) SetUpdatedAt(v time.Time) *TestRequestUpsertOne {
	return u.Update(func(s *TestRequestUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TestRequestUpsertOne) UpdateUpdatedAt() *TestRequestUpsertOne {
	return u.Update(func(s *TestRequestUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAppointmentID sets the "appointment_id" field.
func (u *TestRequestUpsertOne) SetAppointmentID(v uuid.UUID) *TestRequestUpsertOne {
	return u.Update(func(s *TestRequestUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *TestRequestUpsertOne) UpdateAppointmentID() *TestRequestUpsertOne {
	return u.Update(func(s *TestRequestUpsert) {
		s.UpdateAppointmentID()
	})
}

// SetRequestedBy sets the "requested_by" field.
func (u *TestRequestUpsertOne) SetRequestedBy(v uuid.UUID) *TestRequestUpsertOne {
	return u.Update(func(s *TestRequestUpsert) {
		s.SetRequestedBy(v)
	})
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *TestRequestUpsertOne) UpdateRequestedBy() *TestRequestUpsertOne {
	return u.Update(func(s *TestRequestUpsert) {
		s.UpdateRequestedBy()
	})
}

// SetAssignedTo sets the "assigned_to" field.
func (u *TestRequestUpsertOne) SetAssignedTo(v uuid.UUID) *TestRequestUpsertOne {
	return u.Update(func(s *TestRequestUpsert) {
		s.SetAssignedTo(v)
	})
}

// UpdateAssignedTo sets the "assigned_to" field to the value that was provided on create.
func (u *TestRequestUpsertOne) UpdateAssignedTo() *TestRequestUpsertOne {
	return u.Update(func(s *TestRequestUpsert) {
		s.UpdateAssignedTo()
	})
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (u *TestRequestUpsertOne) ClearAssignedTo() *TestRequestUpsertOne {
	return u.Update(func(s *TestRequestUpsert) {
		s.ClearAssignedTo()
	})
}

// SetTests sets the "tests" field.
func (u *TestRequestUpsertOne) SetTests(v []string) *TestRequestUpsertOne {
	return u.Update(func(s *TestRequestUpsert) {
		s.SetTests(v)
	})
}

// UpdateTests sets the "tests" field to the value that was provided on create.
func (u *TestRequestUpsertOne) UpdateTests() *TestRequestUpsertOne {
	return u.Update(func(s *TestRequestUpsert) {
		s.UpdateTests()
	})
}

// SetNote sets the "note" field.
func (u *TestRequestUpsertOne) SetNote(v string) *TestRequestUpsertOne {
	return u.Update(func(s *TestRequestUpsert) {
		s.SetNote(v)
	})
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *TestRequestUpsertOne) UpdateNote() *TestRequestUpsertOne {
	return u.Update(func(s *TestRequestUpsert) {
		s.UpdateNote()
	})
}

// ClearNote clears the value of the "note" field.
func (u *TestRequestUpsertOne) ClearNote() *TestRequestUpsertOne {
	return u.Update(func(s *TestRequestUpsert) {
		s.ClearNote()
	})
}

// SetStatus sets the "status" field.
func (u *TestRequestUpsertOne) SetStatus(v testrequest.Status) *TestRequestUpsertOne {
	return u.Update(func(s *TestRequestUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TestRequestUpsertOne) UpdateStatus() *TestRequestUpsertOne {
	return u.Update(func(s *TestRequestUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *TestRequestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TestRequestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TestRequestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TestRequestUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: TestRequestUpsertOne.ID is not supported by MySQL driver. Use TestRequestUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TestRequestUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TestRequestCreateBulk is the builder for creating many TestRequest entities in bulk.
type TestRequestCreateBulk struct {
	config
	err      error
	builders []*TestRequestCreate
	conflict []sql.ConflictOption
}

// Save creates the TestRequest entities in the database.
func (_c *TestRequestCreateBulk) Save(ctx context.Context) ([]*TestRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestRequestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TestRequestCreateBulk) SaveX(ctx context.Context) []*TestRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TestRequest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TestRequestUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *TestRequestCreateBulk) OnConflict(opts ...sql.ConflictOption) *TestRequestUpsertBulk {
	_c.conflict = opts
	return &TestRequestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TestRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TestRequestCreateBulk) OnConflictColumns(columns ...string) *TestRequestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TestRequestUpsertBulk{
		create: _c,
	}
}

// TestRequestUpsertBulk is the builder for "upsert"-ing
// a bulk of TestRequest nodes.
type TestRequestUpsertBulk struct {
	create *TestRequestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TestRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(testrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TestRequestUpsertBulk) UpdateNewValues() *TestRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(testrequest.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(testrequest.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TestRequest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TestRequestUpsertBulk) Ignore() *TestRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TestRequestUpsertBulk) DoNothing() *TestRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TestRequestCreateBulk.OnConflict
// documentation for more info.
func (u *TestRequestUpsertBulk) Update(set func(*TestRequestUpsert)) *TestRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TestRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TestRequestUpsertBulk) SetUpdatedAt(v time.Time) *TestRequestUpsertBulk {
	return u.Update(func(s *TestRequestUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TestRequestUpsertBulk) UpdateUpdatedAt() *TestRequestUpsertBulk {
	return u.Update(func(s *TestRequestUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAppointmentID sets the "appointment_id" field.
func (u *TestRequestUpsertBulk) SetAppointmentID(v uuid.UUID) *TestRequestUpsertBulk {
	return u.Update(func(s *TestRequestUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *TestRequestUpsertBulk) UpdateAppointmentID() *TestRequestUpsertBulk {
	return u.Update(func(s *TestRequestUpsert) {
		s.UpdateAppointmentID()
	})
}

// SetRequestedBy sets the "requested_by" field.
func (u *TestRequestUpsertBulk) SetRequestedBy(v uuid.UUID) *TestRequestUpsertBulk {
	return u.Update(func(s *TestRequestUpsert) {
		s.SetRequestedBy(v)
	})
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *TestRequestUpsertBulk) UpdateRequestedBy() *TestRequestUpsertBulk {
	return u.Update(func(s *TestRequestUpsert) {
		s.UpdateRequestedBy()
	})
}

// SetAssignedTo sets the "assigned_to" field.
func (u *TestRequestUpsertBulk) SetAssignedTo(v uuid.UUID) *TestRequestUpsertBulk {
	return u.Update(func(s *TestRequestUpsert) {
		s.SetAssignedTo(v)
	})
}

// UpdateAssignedTo sets the "assigned_to" field to the value that was provided on create.
func (u *TestRequestUpsertBulk) UpdateAssignedTo() *TestRequestUpsertBulk {
	return u.Update(func(s *TestRequestUpsert) {
		s.UpdateAssignedTo()
	})
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (u *TestRequestUpsertBulk) ClearAssignedTo() *TestRequestUpsertBulk {
	return u.Update(func(s *TestRequestUpsert) {
		s.ClearAssignedTo()
	})
}

// SetTests sets the "tests" field.
func (u *TestRequestUpsertBulk) SetTests(v []string) *TestRequestUpsertBulk {
	return u.Update(func(s *TestRequestUpsert) {
		s.SetTests(v)
	})
}

// UpdateTests sets the "tests" field to the value that was provided on create.
func (u *TestRequestUpsertBulk) UpdateTests() *TestRequestUpsertBulk {
	return u.Update(func(s *TestRequestUpsert) {
		s.UpdateTests()
	})
}

// SetNote sets the "note" field.
func (u *TestRequestUpsertBulk) SetNote(v string) *TestRequestUpsertBulk {
	return u.Update(func(s *TestRequestUpsert) {
		s.SetNote(v)
	})
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *TestRequestUpsertBulk) UpdateNote() *TestRequestUpsertBulk {
	return u.Update(func(s *TestRequestUpsert) {
		s.UpdateNote()
	})
}

// ClearNote clears the value of the "note" field.
func (u *TestRequestUpsertBulk) ClearNote() *TestRequestUpsertBulk {
	return u.Update(func(s *TestRequestUpsert) {
		s.ClearNote()
	})
}

// SetStatus sets the "status" field.
func (u *TestRequestUpsertBulk) SetStatus(v testrequest.Status) *TestRequestUpsertBulk {
	return u.Update(func(s *TestRequestUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TestRequestUpsertBulk) UpdateStatus() *TestRequestUpsertBulk {
	return u.Update(func(s *TestRequestUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *TestRequestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the TestRequestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for TestRequestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TestRequestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
