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
	"github.com/medreach/hospital_backend/internal/repo/vitalrequest"
)

// VitalRequestCreate is the builder for creating a VitalRequest entity.
type VitalRequestCreate struct {
	config
	mutation *VitalRequestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *VitalRequestCreate) SetCreatedAt(v time.Time) *VitalRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VitalRequestCreate) SetNillableCreatedAt(v *time.Time) *VitalRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VitalRequestCreate) SetUpdatedAt(v time.Time) *VitalRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VitalRequestCreate) SetNillableUpdatedAt(v *time.Time) *VitalRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *VitalRequestCreate) SetAppointmentID(v uuid.UUID) *VitalRequestCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetRequestedBy sets the "requested_by" field.
func (_c *VitalRequestCreate) SetRequestedBy(v uuid.UUID) *VitalRequestCreate {
	_c.mutation.SetRequestedBy(v)
	return _c
}

// SetAssignedTo sets the "assigned_to" field.
func (_c *VitalRequestCreate) SetAssignedTo(v uuid.UUID) *VitalRequestCreate {
	_c.mutation.SetAssignedTo(v)
	return _c
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_c *VitalRequestCreate) SetNillableAssignedTo(v *uuid.UUID) *VitalRequestCreate {
	if v != nil {
		_c.SetAssignedTo(*v)
	}
	return _c
}

// SetNote sets the "note" field.
func (_c *VitalRequestCreate) SetNote(v string) *VitalRequestCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *VitalRequestCreate) SetNillableNote(v *string) *VitalRequestCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *VitalRequestCreate) SetStatus(v vitalrequest.Status) *VitalRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *VitalRequestCreate) SetNillableStatus(v *vitalrequest.Status) *VitalRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VitalRequestCreate) SetID(v uuid.UUID) *VitalRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VitalRequestCreate) SetNillableID(v *uuid.UUID) *VitalRequestCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the VitalRequestMutation object of the builder.
func (_c *VitalRequestCreate) Mutation() *VitalRequestMutation {
	return _c.mutation
}

// Save creates the VitalRequest in the database.
func (_c *VitalRequestCreate) Save(ctx context.Context) (*VitalRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VitalRequestCreate) SaveX(ctx context.Context) *VitalRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VitalRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VitalRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VitalRequestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vitalrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := vitalrequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := vitalrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := vitalrequest.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VitalRequestCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "VitalRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "VitalRequest.updated_at"`)}
	}
	if _, ok := _c.mutation.AppointmentID(); !ok {
		return &ValidationError{Name: "appointment_id", err: errors.New(`repo: missing required field "VitalRequest.appointment_id"`)}
	}
	if _, ok := _c.mutation.RequestedBy(); !ok {
		return &ValidationError{Name: "requested_by", err: errors.New(`repo: missing required field "VitalRequest.requested_by"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "VitalRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := vitalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "VitalRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_c *VitalRequestCreate) sqlSave(ctx context.Context) (*VitalRequest, error) {
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

func (_c *VitalRequestCreate) createSpec() (*VitalRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &VitalRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vitalrequest.Table, sqlgraph.NewFieldSpec(vitalrequest.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vitalrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(vitalrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(vitalrequest.FieldAppointmentID, field.TypeUUID, value)
		_node.AppointmentID = value
	}
	if value, ok := _c.mutation.RequestedBy(); ok {
		_spec.SetField(vitalrequest.FieldRequestedBy, field.TypeUUID, value)
		_node.RequestedBy = value
	}
	if value, ok := _c.mutation.AssignedTo(); ok {
		_spec.SetField(vitalrequest.FieldAssignedTo, field.TypeUUID, value)
		_node.AssignedTo = &value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(vitalrequest.FieldNote, field.TypeString, value)
		_node.Note = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(vitalrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VitalRequest.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VitalRequestUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *VitalRequestCreate) OnConflict(opts ...sql.ConflictOption) *VitalRequestUpsertOne {
	_c.conflict = opts
	return &VitalRequestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VitalRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VitalRequestCreate) OnConflictColumns(columns ...string) *VitalRequestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VitalRequestUpsertOne{
		create: _c,
	}
}

type (
	// VitalRequestUpsertOne is the builder for "upsert"-ing
	//  one VitalRequest node.
	VitalRequestUpsertOne struct {
		create *VitalRequestCreate
	}

	// VitalRequestUpsert is the "OnConflict" setter.
	VitalRequestUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *VitalRequestUpsert) SetUpdatedAt(v time.Time) *VitalRequestUpsert {
	u.Set(vitalrequest.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VitalRequestUpsert) UpdateUpdatedAt() *VitalRequestUpsert {
	u.SetExcluded(vitalrequest.FieldUpdatedAt)
	return u
}

// SetAppointmentID sets the "appointment_id" field.
func (u *VitalRequestUpsert) SetAppointmentID(v uuid.UUID) *VitalRequestUpsert {
	u.Set(vitalrequest.FieldAppointmentID, v)
	return u
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *VitalRequestUpsert) UpdateAppointmentID() *VitalRequestUpsert {
	u.SetExcluded(vitalrequest.FieldAppointmentID)
	return u
}

// SetRequestedBy sets the "requested_by" field.
func (u *VitalRequestUpsert) SetRequestedBy(v uuid.UUID) *VitalRequestUpsert {
	u.Set(vitalrequest.FieldRequestedBy, v)
	return u
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *VitalRequestUpsert) UpdateRequestedBy() *VitalRequestUpsert {
	u.SetExcluded(vitalrequest.FieldRequestedBy)
	return u
}

// SetAssignedTo sets the "assigned_to" field.
func (u *VitalRequestUpsert) SetAssignedTo(v uuid.UUID) *VitalRequestUpsert {
	u.Set(vitalrequest.FieldAssignedTo, v)
	return u
}

// UpdateAssignedTo sets the "assigned_to" field to the value that was provided on create.
func (u *VitalRequestUpsert) UpdateAssignedTo() *VitalRequestUpsert {
	u.SetExcluded(vitalrequest.FieldAssignedTo)
	return u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (u *VitalRequestUpsert) ClearAssignedTo() *VitalRequestUpsert {
	u.SetNull(vitalrequest.FieldAssignedTo)
	return u
}

// SetNote sets the "note" field.
func (u *VitalRequestUpsert) SetNote(v string) *VitalRequestUpsert {
	u.Set(vitalrequest.FieldNote, v)
	return u
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *VitalRequestUpsert) UpdateNote() *VitalRequestUpsert {
	u.SetExcluded(vitalrequest.FieldNote)
	return u
}

// ClearNote clears the value of the "note" field.
func (u *VitalRequestUpsert) ClearNote() *VitalRequestUpsert {
	u.SetNull(vitalrequest.FieldNote)
	return u
}

// SetStatus sets the "status" field.
func (u *VitalRequestUpsert) SetStatus(v vitalrequest.Status) *VitalRequestUpsert {
	u.Set(vitalrequest.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *VitalRequestUpsert) UpdateStatus() *VitalRequestUpsert {
	u.SetExcluded(vitalrequest.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.VitalRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(vitalrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VitalRequestUpsertOne) UpdateNewValues() *VitalRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(vitalrequest.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(vitalrequest.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VitalRequest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VitalRequestUpsertOne) Ignore() *VitalRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VitalRequestUpsertOne) DoNothing() *VitalRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VitalRequestCreate.OnConflict
// documentation for more info.
func (u *VitalRequestUpsertOne) Update(set func(*VitalRequestUpsert)) *VitalRequestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VitalRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VitalRequestUpsertOne) SetUpdatedAt(v time.Time) *VitalRequestUpsertOne {
	return u.Update(func(s *VitalRequestUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VitalRequestUpsertOne) UpdateUpdatedAt() *VitalRequestUpsertOne {
	return u.Update(func(s *VitalRequestUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAppointmentID sets the "appointment_id" field.
func (u *VitalRequestUpsertOne) SetAppointmentID(v uuid.UUID) *VitalRequestUpsertOne {
	return u.Update(func(s *VitalRequestUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *VitalRequestUpsertOne) UpdateAppointmentID() *VitalRequestUpsertOne {
	return u.Update(func(s *VitalRequestUpsert) {
		s.UpdateAppointmentID()
	})
}

// SetRequestedBy sets the "requested_by" field.
func (u *VitalRequestUpsertOne) SetRequestedBy(v uuid.UUID) *VitalRequestUpsertOne {
	return u.Update(func(s *VitalRequestUpsert) {
		s.SetRequestedBy(v)
	})
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *VitalRequestUpsertOne) UpdateRequestedBy() *VitalRequestUpsertOne {
	return u.Update(func(s *VitalRequestUpsert) {
		s.UpdateRequestedBy()
	})
}

// SetAssignedTo sets the "assigned_to" field.
func (u *VitalRequestUpsertOne) SetAssignedTo(v uuid.UUID) *VitalRequestUpsertOne {
	return u.Update(func(s *VitalRequestUpsert) {
		s.SetAssignedTo(v)
	})
}

// UpdateAssignedTo sets the "assigned_to" field to the value that was provided on create.
func (u *VitalRequestUpsertOne) UpdateAssignedTo() *VitalRequestUpsertOne {
	return u.Update(func(s *VitalRequestUpsert) {
		s.UpdateAssignedTo()
	})
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (u *VitalRequestUpsertOne) ClearAssignedTo() *VitalRequestUpsertOne {
	return u.Update(func(s *VitalRequestUpsert) {
		s.ClearAssignedTo()
	})
}

// SetNote sets the "note" field.
func (u *VitalRequestUpsertOne) SetNote(v string) *VitalRequestUpsertOne {
	return u.Update(func(s *VitalRequestUpsert) {
		s.SetNote(v)
	})
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *VitalRequestUpsertOne) UpdateNote() *VitalRequestUpsertOne {
	return u.Update(func(s *VitalRequestUpsert) {
		s.UpdateNote()
	})
}

// ClearNote clears the value of the "note" field.
func (u *VitalRequestUpsertOne) ClearNote() *VitalRequestUpsertOne {
	return u.Update(func(s *VitalRequestUpsert) {
		s.ClearNote()
	})
}

// SetStatus sets the "status" field.
func (u *VitalRequestUpsertOne) SetStatus(v vitalrequest.Status) *VitalRequestUpsertOne {
	return u.Update(func(s *VitalRequestUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *VitalRequestUpsertOne) UpdateStatus() *VitalRequestUpsertOne {
	return u.Update(func(s *VitalRequestUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *VitalRequestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for VitalRequestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VitalRequestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VitalRequestUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: VitalRequestUpsertOne.ID is not supported by MySQL driver. Use VitalRequestUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VitalRequestUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VitalRequestCreateBulk is the builder for creating many VitalRequest entities in bulk.
type VitalRequestCreateBulk struct {
	config
	err      error
	builders []*VitalRequestCreate
	conflict []sql.ConflictOption
}

// Save creates the VitalRequest entities in the database.
func (_c *VitalRequestCreateBulk) Save(ctx context.Context) ([]*VitalRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VitalRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VitalRequestMutation)
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
func (_c *VitalRequestCreateBulk) SaveX(ctx context.Context) []*VitalRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VitalRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VitalRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.VitalRequest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VitalRequestUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *VitalRequestCreateBulk) OnConflict(opts ...sql.ConflictOption) *VitalRequestUpsertBulk {
	_c.conflict = opts
	return &VitalRequestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.VitalRequest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VitalRequestCreateBulk) OnConflictColumns(columns ...string) *VitalRequestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VitalRequestUpsertBulk{
		create: _c,
	}
}

// VitalRequestUpsertBulk is the builder for "upsert"-ing
// a bulk of VitalRequest nodes.
type VitalRequestUpsertBulk struct {
	create *VitalRequestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.VitalRequest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(vitalrequest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VitalRequestUpsertBulk) UpdateNewValues() *VitalRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(vitalrequest.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(vitalrequest.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.VitalRequest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VitalRequestUpsertBulk) Ignore() *VitalRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VitalRequestUpsertBulk) DoNothing() *VitalRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VitalRequestCreateBulk.OnConflict
// documentation for more info.
func (u *VitalRequestUpsertBulk) Update(set func(*VitalRequestUpsert)) *VitalRequestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VitalRequestUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *VitalRequestUpsertBulk) SetUpdatedAt(v time.Time) *VitalRequestUpsertBulk {
	return u.Update(func(s *VitalRequestUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *VitalRequestUpsertBulk) UpdateUpdatedAt() *VitalRequestUpsertBulk {
	return u.Update(func(s *VitalRequestUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAppointmentID sets the "appointment_id" field.
func (u *VitalRequestUpsertBulk) SetAppointmentID(v uuid.UUID) *VitalRequestUpsertBulk {
	return u.Update(func(s *VitalRequestUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *VitalRequestUpsertBulk) UpdateAppointmentID() *VitalRequestUpsertBulk {
	return u.Update(func(s *VitalRequestUpsert) {
		s.UpdateAppointmentID()
	})
}

// SetRequestedBy sets the "requested_by" field.
func (u *VitalRequestUpsertBulk) SetRequestedBy(v uuid.UUID) *VitalRequestUpsertBulk {
	return u.Update(func(s *VitalRequestUpsert) {
		s.SetRequestedBy(v)
	})
}

// UpdateRequestedBy sets the "requested_by" field to the value that was provided on create.
func (u *VitalRequestUpsertBulk) UpdateRequestedBy() *VitalRequestUpsertBulk {
	return u.Update(func(s *VitalRequestUpsert) {
		s.UpdateRequestedBy()
	})
}

// SetAssignedTo sets the "assigned_to" field.
func (u *VitalRequestUpsertBulk) SetAssignedTo(v uuid.UUID) *VitalRequestUpsertBulk {
	return u.Update(func(s *VitalRequestUpsert) {
		s.SetAssignedTo(v)
	})
}

// UpdateAssignedTo sets the "assigned_to" field to the value that was provided on create.
func (u *VitalRequestUpsertBulk) UpdateAssignedTo() *VitalRequestUpsertBulk {
	return u.Update(func(s *VitalRequestUpsert) {
		s.UpdateAssignedTo()
	})
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (u *VitalRequestUpsertBulk) ClearAssignedTo() *VitalRequestUpsertBulk {
	return u.Update(func(s *VitalRequestUpsert) {
		s.ClearAssignedTo()
	})
}

// SetNote sets the "note" field.
func (u *VitalRequestUpsertBulk) SetNote(v string) *VitalRequestUpsertBulk {
	return u.Update(func(s *VitalRequestUpsert) {
		s.SetNote(v)
	})
}

// UpdateNote sets the "note" field to the value that was provided on create.
func (u *VitalRequestUpsertBulk) UpdateNote() *VitalRequestUpsertBulk {
	return u.Update(func(s *VitalRequestUpsert) {
		s.UpdateNote()
	})
}

// ClearNote clears the value of the "note" field.
func (u *VitalRequestUpsertBulk) ClearNote() *VitalRequestUpsertBulk {
	return u.Update(func(s *VitalRequestUpsert) {
		s.ClearNote()
	})
}

// SetStatus sets the "status" field.
func (u *VitalRequestUpsertBulk) SetStatus(v vitalrequest.Status) *VitalRequestUpsertBulk {
	return u.Update(func(s *VitalRequestUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *VitalRequestUpsertBulk) UpdateStatus() *VitalRequestUpsertBulk {
	return u.Update(func(s *VitalRequestUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *VitalRequestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the VitalRequestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for VitalRequestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VitalRequestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
