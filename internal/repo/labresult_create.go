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
	"github.com/medreach/hospital_backend/internal/repo/labresult"
)

// LabResultCreate is the builder for creating a LabResult entity.
type LabResultCreate struct {
	config
	mutation *LabResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *LabResultCreate) SetCreatedAt(v time.Time) *LabResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableCreatedAt(v *time.Time) *LabResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTestRequestID sets the "test_request_id" field.
func (_c *LabResultCreate) SetTestRequestID(v uuid.UUID) *LabResultCreate {
	_c.mutation.SetTestRequestID(v)
	return _c
}

// SetLabScientistID sets the "lab_scientist_id" field.
func (_c *LabResultCreate) SetLabScientistID(v uuid.UUID) *LabResultCreate {
	_c.mutation.SetLabScientistID(v)
	return _c
}

// SetTestName sets the "test_name" field.
func (_c *LabResultCreate) SetTestName(v string) *LabResultCreate {
	_c.mutation.SetTestName(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *LabResultCreate) SetResult(v string) *LabResultCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetUnits sets the "units" field.
func (_c *LabResultCreate) SetUnits(v string) *LabResultCreate {
	_c.mutation.SetUnits(v)
	return _c
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableUnits(v *string) *LabResultCreate {
	if v != nil {
		_c.SetUnits(*v)
	}
	return _c
}

// SetReferenceRange sets the "reference_range" field.
func (_c *LabResultCreate) SetReferenceRange(v string) *LabResultCreate {
	_c.mutation.SetReferenceRange(v)
	return _c
}

// SetNillableReferenceRange sets the "reference_range" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableReferenceRange(v *string) *LabResultCreate {
	if v != nil {
		_c.SetReferenceRange(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LabResultCreate) SetID(v uuid.UUID) *LabResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LabResultCreate) SetNillableID(v *uuid.UUID) *LabResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LabResultMutation object of the builder.
func (_c *LabResultCreate) Mutation() *LabResultMutation {
	return _c.mutation
}

// Save creates the LabResult in the database.
func (_c *LabResultCreate) Save(ctx context.Context) (*LabResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LabResultCreate) SaveX(ctx context.Context) *LabResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LabResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := labresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := labresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LabResultCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "LabResult.created_at"`)}
	}
	if _, ok := _c.mutation.TestRequestID(); !ok {
		return &ValidationError{Name: "test_request_id", err: errors.New(`repo: missing required field "LabResult.test_request_id"`)}
	}
	if _, ok := _c.mutation.LabScientistID(); !ok {
		return &ValidationError{Name: "lab_scientist_id", err: errors.New(`repo: missing required field "LabResult.lab_scientist_id"`)}
	}
	if _, ok := _c.mutation.TestName(); !ok {
		return &ValidationError{Name: "test_name", err: errors.New(`repo: missing required field "LabResult.test_name"`)}
	}
	if v, ok := _c.mutation.TestName(); ok {
		if err := labresult.TestNameValidator(v); err != nil {
			return &ValidationError{Name: "test_name", err: fmt.Errorf(`repo: validator failed for field "LabResult.test_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Result(); !ok {
		return &ValidationError{Name: "result", err: errors.New(`repo: missing required field "LabResult.result"`)}
	}
	if v, ok := _c.mutation.Units(); ok {
		if err := labresult.UnitsValidator(v); err != nil {
			return &ValidationError{Name: "units", err: fmt.Errorf(`repo: validator failed for field "LabResult.units": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ReferenceRange(); ok {
		if err := labresult.ReferenceRangeValidator(v); err != nil {
			return &ValidationError{Name: "reference_range", err: fmt.Errorf(`repo: validator failed for field "LabResult.reference_range": %w`, err)}
		}
	}
	return nil
}

func (_c *LabResultCreate) sqlSave(ctx context.Context) (*LabResult, error) {
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

func (_c *LabResultCreate) createSpec() (*LabResult, *sqlgraph.CreateSpec) {
	var (
		_node = &LabResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(labresult.Table, sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(labresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.TestRequestID(); ok {
		_spec.SetField(labresult.FieldTestRequestID, field.TypeUUID, value)
		_node.TestRequestID = value
	}
	if value, ok := _c.mutation.LabScientistID(); ok {
		_spec.SetField(labresult.FieldLabScientistID, field.TypeUUID, value)
		_node.LabScientistID = value
	}
	if value, ok := _c.mutation.TestName(); ok {
		_spec.SetField(labresult.FieldTestName, field.TypeString, value)
		_node.TestName = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(labresult.FieldResult, field.TypeString, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Units(); ok {
		_spec.SetField(labresult.FieldUnits, field.TypeString, value)
		_node.Units = &value
	}
	if value, ok := _c.mutation.ReferenceRange(); ok {
		_spec.SetField(labresult.FieldReferenceRange, field.TypeString, value)
		_node.ReferenceRange = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LabResult.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LabResultUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *LabResultCreate) OnConflict(opts ...sql.ConflictOption) *LabResultUpsertOne {
	_c.conflict = opts
	return &LabResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LabResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LabResultCreate) OnConflictColumns(columns ...string) *LabResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LabResultUpsertOne{
		create: _c,
	}
}

type (
	// LabResultUpsertOne is the builder for "upsert"-ing
	//  one LabResult node.
	LabResultUpsertOne struct {
		create *LabResultCreate
	}

	// LabResultUpsert is the "OnConflict" setter.
	LabResultUpsert struct {
		*sql.UpdateSet
	}
)

// SetTestRequestID sets the "test_request_id" field.
func (u *LabResultUpsert) SetTestRequestID(v uuid.UUID) *LabResultUpsert {
	u.Set(labresult.FieldTestRequestID, v)
	return u
}

// UpdateTestRequestID sets the "test_request_id" field to the value that was provided on create.
func (u *LabResultUpsert) UpdateTestRequestID() *LabResultUpsert {
	u.SetExcluded(labresult.FieldTestRequestID)
	return u
}

// SetLabScientistID sets the "lab_scientist_id" field.
func (u *LabResultUpsert) SetLabScientistID(v uuid.UUID) *LabResultUpsert {
	u.Set(labresult.FieldLabScientistID, v)
	return u
}

// UpdateLabScientistID sets the "lab_scientist_id" field to the value that was provided on create.
func (u *LabResultUpsert) UpdateLabScientistID() *LabResultUpsert {
	u.SetExcluded(labresult.FieldLabScientistID)
	return u
}

// SetTestName sets the "test_name" field.
func (u *LabResultUpsert) SetTestName(v string) *LabResultUpsert {
	u.Set(labresult.FieldTestName, v)
	return u
}

// UpdateTestName sets the "test_name" field to the value that was provided on create.
func (u *LabResultUpsert) UpdateTestName() *LabResultUpsert {
	u.SetExcluded(labresult.FieldTestName)
	return u
}

// SetResult sets the "result" field.
func (u *LabResultUpsert) SetResult(v string) *LabResultUpsert {
	u.Set(labresult.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *LabResultUpsert) UpdateResult() *LabResultUpsert {
	u.SetExcluded(labresult.FieldResult)
	return u
}

// SetUnits sets the "units" field.
func (u *LabResultUpsert) SetUnits(v string) *LabResultUpsert {
	u.Set(labresult.FieldUnits, v)
	return u
}

// UpdateUnits sets the "units" field to the value that was provided on create.
func (u *LabResultUpsert) UpdateUnits() *LabResultUpsert {
	u.SetExcluded(labresult.FieldUnits)
	return u
}

// ClearUnits clears the value of the "units" field.
func (u *LabResultUpsert) ClearUnits() *LabResultUpsert {
	u.SetNull(labresult.FieldUnits)
	return u
}

// SetReferenceRange sets the "reference_range" field.
func (u *LabResultUpsert) SetReferenceRange(v string) *LabResultUpsert {
	u.Set(labresult.FieldReferenceRange, v)
	return u
}

// UpdateReferenceRange sets the "reference_range" field to the value that was provided on create.
func (u *LabResultUpsert) UpdateReferenceRange() *LabResultUpsert {
	u.SetExcluded(labresult.FieldReferenceRange)
	return u
}

// ClearReferenceRange clears the value of the "reference_range" field.
func (u *LabResultUpsert) ClearReferenceRange() *LabResultUpsert {
	u.SetNull(labresult.FieldReferenceRange)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LabResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(labresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LabResultUpsertOne) UpdateNewValues() *LabResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(labresult.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(labresult.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LabResult.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LabResultUpsertOne) Ignore() *LabResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LabResultUpsertOne) DoNothing() *LabResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LabResultCreate.OnConflict
// documentation for more info.
func (u *LabResultUpsertOne) Update(set func(*LabResultUpsert)) *LabResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LabResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetTestRequestID sets the "test_request_id" field.
func (u *LabResultUpsertOne) SetTestRequestID(v uuid.UUID) *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.SetTestRequestID(v)
	})
}

// UpdateTestRequestID sets the "test_request_id" field to the value that was provided on create.
func (u *LabResultUpsertOne) UpdateTestRequestID() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateTestRequestID()
	})
}

// SetLabScientistID sets the "lab_scientist_id" field.
func (u *LabResultUpsertOne) SetLabScientistID(v uuid.UUID) *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.SetLabScientistID(v)
	})
}

// UpdateLabScientistID sets the "lab_scientist_id" field to the value that was provided on create.
func (u *LabResultUpsertOne) UpdateLabScientistID() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateLabScientistID()
	})
}

// SetTestName sets the "test_name" field.
func (u *LabResultUpsertOne) SetTestName(v string) *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.SetTestName(v)
	})
}

// UpdateTestName sets the "test_name" field to the value that was provided on create.
func (u *LabResultUpsertOne) UpdateTestName() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateTestName()
	})
}

// SetResult sets the "result" field.
func (u *LabResultUpsertOne) SetResult(v string) *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *LabResultUpsertOne) UpdateResult() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateResult()
	})
}

// SetUnits sets the "units" field.
func (u *LabResultUpsertOne) SetUnits(v string) *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.SetUnits(v)
	})
}

// UpdateUnits sets the "units" field to the value that was provided on create.
func (u *LabResultUpsertOne) UpdateUnits() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateUnits()
	})
}

// ClearUnits clears the value of the "units" field.
func (u *LabResultUpsertOne) ClearUnits() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.ClearUnits()
	})
}

// SetReferenceRange sets the "reference_range" field.
func (u *LabResultUpsertOne) SetReferenceRange(v string) *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.SetReferenceRange(v)
	})
}

// UpdateReferenceRange sets the "reference_range" field to the value that was provided on create.
func (u *LabResultUpsertOne) UpdateReferenceRange() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateReferenceRange()
	})
}

// ClearReferenceRange clears the value of the "reference_range" field.
func (u *LabResultUpsertOne) ClearReferenceRange() *LabResultUpsertOne {
	return u.Update(func(s *LabResultUpsert) {
		s.ClearReferenceRange()
	})
}

// Exec executes the query.
func (u *LabResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for LabResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LabResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LabResultUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: LabResultUpsertOne.ID is not supported by MySQL driver. Use LabResultUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LabResultUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LabResultCreateBulk is the builder for creating many LabResult entities in bulk.
type LabResultCreateBulk struct {
	config
	err      error
	builders []*LabResultCreate
	conflict []sql.ConflictOption
}

// Save creates the LabResult entities in the database.
func (_c *LabResultCreateBulk) Save(ctx context.Context) ([]*LabResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LabResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LabResultMutation)
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
func (_c *LabResultCreateBulk) SaveX(ctx context.Context) []*LabResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LabResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LabResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LabResult.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LabResultUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *LabResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *LabResultUpsertBulk {
	_c.conflict = opts
	return &LabResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LabResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LabResultCreateBulk) OnConflictColumns(columns ...string) *LabResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LabResultUpsertBulk{
		create: _c,
	}
}

// LabResultUpsertBulk is the builder for "upsert"-ing
// a bulk of LabResult nodes.
type LabResultUpsertBulk struct {
	create *LabResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LabResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(labresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LabResultUpsertBulk) UpdateNewValues() *LabResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(labresult.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(labresult.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LabResult.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LabResultUpsertBulk) Ignore() *LabResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LabResultUpsertBulk) DoNothing() *LabResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LabResultCreateBulk.OnConflict
// documentation for more info.
func (u *LabResultUpsertBulk) Update(set func(*LabResultUpsert)) *LabResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LabResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetTestRequestID sets the "test_request_id" field.
func (u *LabResultUpsertBulk) SetTestRequestID(v uuid.UUID) *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.SetTestRequestID(v)
	})
}

// UpdateTestRequestID sets the "test_request_id" field to the value that was provided on create.
func (u *LabResultUpsertBulk) UpdateTestRequestID() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateTestRequestID()
	})
}

// SetLabScientistID sets the "lab_scientist_id" field.
func (u *LabResultUpsertBulk) SetLabScientistID(v uuid.UUID) *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.SetLabScientistID(v)
	})
}

// UpdateLabScientistID sets the "lab_scientist_id" field to the value that was provided on create.
func (u *LabResultUpsertBulk) UpdateLabScientistID() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateLabScientistID()
	})
}

// SetTestName sets the "test_name" field.
func (u *LabResultUpsertBulk) SetTestName(v string) *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.SetTestName(v)
	})
}

// UpdateTestName sets the "test_name" field to the value that was provided on create.
func (u *LabResultUpsertBulk) UpdateTestName() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateTestName()
	})
}

// SetResult sets the "result" field.
func (u *LabResultUpsertBulk) SetResult(v string) *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *LabResultUpsertBulk) UpdateResult() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateResult()
	})
}

// SetUnits sets the "units" field.
func (u *LabResultUpsertBulk) SetUnits(v string) *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.SetUnits(v)
	})
}

// UpdateUnits sets the "units" field to the value that was provided on create.
func (u *LabResultUpsertBulk) UpdateUnits() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateUnits()
	})
}

// ClearUnits clears the value of the "units" field.
func (u *LabResultUpsertBulk) ClearUnits() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.ClearUnits()
	})
}

// SetReferenceRange sets the "reference_range" field.
func (u *LabResultUpsertBulk) SetReferenceRange(v string) *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.SetReferenceRange(v)
	})
}

// UpdateReferenceRange sets the "reference_range" field to the value that was provided on create.
func (u *LabResultUpsertBulk) UpdateReferenceRange() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.UpdateReferenceRange()
	})
}

// ClearReferenceRange clears the value of the "reference_range" field.
func (u *LabResultUpsertBulk) ClearReferenceRange() *LabResultUpsertBulk {
	return u.Update(func(s *LabResultUpsert) {
		s.ClearReferenceRange()
	})
}

// Exec executes the query.
func (u *LabResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the LabResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for LabResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LabResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
