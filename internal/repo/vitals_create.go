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
	"github.com/medreach/hospital_backend/internal/repo/vitals"
)

// VitalsCreate is the builder for creating a Vitals entity.
type VitalsCreate struct {
	config
	mutation *VitalsMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *VitalsCreate) SetCreatedAt(v time.Time) *VitalsCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VitalsCreate) SetNillableCreatedAt(v *time.Time) *VitalsCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetVitalRequestID sets the "vital_request_id" field.
func (_c *VitalsCreate) SetVitalRequestID(v uuid.UUID) *VitalsCreate {
	_c.mutation.SetVitalRequestID(v)
	return _c
}

// SetNurseID sets the "nurse_id" field.
func (_c *VitalsCreate) SetNurseID(v uuid.UUID) *VitalsCreate {
	_c.mutation.SetNurseID(v)
	return _c
}

// SetBloodPressure sets the "blood_pressure" field.
func (_c *VitalsCreate) SetBloodPressure(v string) *VitalsCreate {
	_c.mutation.SetBloodPressure(v)
	return _c
}

// SetRespirationRate sets the "respiration_rate" field.
func (_c *VitalsCreate) SetRespirationRate(v float64) *VitalsCreate {
	_c.mutation.SetRespirationRate(v)
	return _c
}

// SetPulseRate sets the "pulse_rate" field.
func (_c *VitalsCreate) SetPulseRate(v float64) *VitalsCreate {
	_c.mutation.SetPulseRate(v)
	return _c
}

// SetBodyTemperature sets the "body_temperature" field.
func (_c *VitalsCreate) SetBodyTemperature(v float64) *VitalsCreate {
	_c.mutation.SetBodyTemperature(v)
	return _c
}

// SetHeightCm sets the "height_cm" field.
func (_c *VitalsCreate) SetHeightCm(v float64) *VitalsCreate {
	_c.mutation.SetHeightCm(v)
	return _c
}

// SetNillableHeightCm sets the "height_cm" field if the given value is not nil.
func (_c *VitalsCreate) SetNillableHeightCm(v *float64) *VitalsCreate {
	if v != nil {
		_c.SetHeightCm(*v)
	}
	return _c
}

// SetWeightKg sets the "weight_kg" field.
func (_c *VitalsCreate) SetWeightKg(v float64) *VitalsCreate {
	_c.mutation.SetWeightKg(v)
	return _c
}

// SetNillableWeightKg sets the "weight_kg" field if the given value is not nil.
func (_c *VitalsCreate) SetNillableWeightKg(v *float64) *VitalsCreate {
	if v != nil {
		_c.SetWeightKg(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VitalsCreate) SetID(v uuid.UUID) *VitalsCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VitalsCreate) SetNillableID(v *uuid.UUID) *VitalsCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the VitalsMutation object of the builder.
func (_c *VitalsCreate) Mutation() *VitalsMutation {
	return _c.mutation
}

// Save creates the Vitals in the database.
func (_c *VitalsCreate) Save(ctx context.Context) (*Vitals, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VitalsCreate) SaveX(ctx context.Context) *Vitals {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VitalsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VitalsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VitalsCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vitals.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := vitals.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VitalsCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Vitals.created_at"`)}
	}
	if _, ok := _c.mutation.VitalRequestID(); !ok {
		return &ValidationError{Name: "vital_request_id", err: errors.New(`repo: missing required field "Vitals.vital_request_id"`)}
	}
	if _, ok := _c.mutation.NurseID(); !ok {
		return &ValidationError{Name: "nurse_id", err: errors.New(`repo: missing required field "Vitals.nurse_id"`)}
	}
	if _, ok := _c.mutation.BloodPressure(); !ok {
		return &ValidationError{Name: "blood_pressure", err: errors.New(`repo: missing required field "Vitals.blood_pressure"`)}
	}
	if v, ok := _c.mutation.BloodPressure(); ok {
		if err := vitals.BloodPressureValidator(v); err != nil {
			return &ValidationError{Name: "blood_pressure", err: fmt.Errorf(`repo: validator failed for field "Vitals.blood_pressure": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RespirationRate(); !ok {
		return &ValidationError{Name: "respiration_rate", err: errors.New(`repo: missing required field "Vitals.respiration_rate"`)}
	}
	if _, ok := _c.mutation.PulseRate(); !ok {
		return &ValidationError{Name: "pulse_rate", err: errors.New(`repo: missing required field "Vitals.pulse_rate"`)}
	}
	if _, ok := _c.mutation.BodyTemperature(); !ok {
		return &ValidationError{Name: "body_temperature", err: errors.New(`repo: missing required field "Vitals.body_temperature"`)}
	}
	return nil
}

func (_c *VitalsCreate) sqlSave(ctx context.Context) (*Vitals, error) {
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

func (_c *VitalsCreate) createSpec() (*Vitals, *sqlgraph.CreateSpec) {
	var (
		_node = &Vitals{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vitals.Table, sqlgraph.NewFieldSpec(vitals.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vitals.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.VitalRequestID(); ok {
		_spec.SetField(vitals.FieldVitalRequestID, field.TypeUUID, value)
		_node.VitalRequestID = value
	}
	if value, ok := _c.mutation.NurseID(); ok {
		_spec.SetField(vitals.FieldNurseID, field.TypeUUID, value)
		_node.NurseID = value
	}
	if value, ok := _c.mutation.BloodPressure(); ok {
		_spec.SetField(vitals.FieldBloodPressure, field.TypeString, value)
		_node.BloodPressure = value
	}
	if value, ok := _c.mutation.RespirationRate(); ok {
		_spec.SetField(vitals.FieldRespirationRate, field.TypeFloat64, value)
		_node.RespirationRate = value
	}
	if value, ok := _c.mutation.PulseRate(); ok {
		_spec.SetField(vitals.FieldPulseRate, field.TypeFloat64, value)
		_node.PulseRate = value
	}
	if value, ok := _c.mutation.BodyTemperature(); ok {
		_spec.SetField(vitals.FieldBodyTemperature, field.TypeFloat64, value)
		_node.BodyTemperature = value
	}
	if value, ok := _c.mutation.HeightCm(); ok {
		_spec.SetField(vitals.FieldHeightCm, field.TypeFloat64, value)
		_node.HeightCm = &value
	}
	if value, ok := _c.mutation.WeightKg(); ok {
		_spec.SetField(vitals.FieldWeightKg, field.TypeFloat64, value)
		_node.WeightKg = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Vitals.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VitalsUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *VitalsCreate) OnConflict(opts ...sql.ConflictOption) *VitalsUpsertOne {
	_c.conflict = opts
	return &VitalsUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Vitals.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VitalsCreate) OnConflictColumns(columns ...string) *VitalsUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VitalsUpsertOne{
		create: _c,
	}
}

type (
	// VitalsUpsertOne is the builder for "upsert"-ing
	//  one Vitals node.
	VitalsUpsertOne struct {
		create *VitalsCreate
	}

	// VitalsUpsert is the "OnConflict" setter.
	VitalsUpsert struct {
		*sql.UpdateSet
	}
)

// SetVitalRequestID sets the "vital_request_id" field.
func (u *VitalsUpsert) SetVitalRequestID(v uuid.UUID) *VitalsUpsert {
	u.Set(vitals.FieldVitalRequestID, v)
	return u
}

// UpdateVitalRequestID sets the "vital_request_id" field to the value that was provided on create.
func (u *VitalsUpsert) UpdateVitalRequestID() *VitalsUpsert {
	u.SetExcluded(vitals.FieldVitalRequestID)
	return u
}

// SetNurseID sets the "nurse_id" field.
func (u *VitalsUpsert) SetNurseID(v uuid.UUID) *VitalsUpsert {
	u.Set(vitals.FieldNurseID, v)
	return u
}

// UpdateNurseID sets the "nurse_id" field to the value that was provided on create.
func (u *VitalsUpsert) UpdateNurseID() *VitalsUpsert {
	u.SetExcluded(vitals.FieldNurseID)
	return u
}

// SetBloodPressure sets the "blood_pressure" field.
func (u *VitalsUpsert) SetBloodPressure(v string) *VitalsUpsert {
	u.Set(vitals.FieldBloodPressure, v)
	return u
}

// UpdateBloodPressure sets the "blood_pressure" field to the value that was provided on create.
func (u *VitalsUpsert) UpdateBloodPressure() *VitalsUpsert {
	u.SetExcluded(vitals.FieldBloodPressure)
	return u
}

// SetRespirationRate sets the "respiration_rate" field.
func (u *VitalsUpsert) SetRespirationRate(v float64) *VitalsUpsert {
	u.Set(vitals.FieldRespirationRate, v)
	return u
}

// UpdateRespirationRate sets the "respiration_rate" field to the value that was provided on create.
func (u *VitalsUpsert) UpdateRespirationRate() *VitalsUpsert {
	u.SetExcluded(vitals.FieldRespirationRate)
	return u
}

// AddRespirationRate adds v to the "respiration_rate" field.
func (u *VitalsUpsert) AddRespirationRate(v float64) *VitalsUpsert {
	u.Add(vitals.FieldRespirationRate, v)
	return u
}

// SetPulseRate sets the "pulse_rate" field.
func (u *VitalsUpsert) SetPulseRate(v float64) *VitalsUpsert {
	u.Set(vitals.FieldPulseRate, v)
	return u
}

// UpdatePulseRate sets the "pulse_rate" field to the value that was provided on create.
func (u *VitalsUpsert) UpdatePulseRate() *VitalsUpsert {
	u.SetExcluded(vitals.FieldPulseRate)
	return u
}

// AddPulseRate adds v to the "pulse_rate" field.
func (u *VitalsUpsert) AddPulseRate(v float64) *VitalsUpsert {
	u.Add(vitals.FieldPulseRate, v)
	return u
}

// SetBodyTemperature sets the "body_temperature" field.
func (u *VitalsUpsert) SetBodyTemperature(v float64) *VitalsUpsert {
	u.Set(vitals.FieldBodyTemperature, v)
	return u
}

// UpdateBodyTemperature sets the "body_temperature" field to the value that was provided on create.
func (u *VitalsUpsert) UpdateBodyTemperature() *VitalsUpsert {
	u.SetExcluded(vitals.FieldBodyTemperature)
	return u
}

// AddBodyTemperature adds v to the "body_temperature" field.
func (u *VitalsUpsert) AddBodyTemperature(v float64) *VitalsUpsert {
	u.Add(vitals.FieldBodyTemperature, v)
	return u
}

// SetHeightCm sets the "height_cm" field.
func (u *VitalsUpsert) SetHeightCm(v float64) *VitalsUpsert {
	u.Set(vitals.FieldHeightCm, v)
	return u
}

// UpdateHeightCm sets the "height_cm" field to the value that was provided on create.
func (u *VitalsUpsert) UpdateHeightCm() *VitalsUpsert {
	u.SetExcluded(vitals.FieldHeightCm)
	return u
}

// AddHeightCm adds v to the "height_cm" field.
func (u *VitalsUpsert) AddHeightCm(v float64) *VitalsUpsert {
	u.Add(vitals.FieldHeightCm, v)
	return u
}

// ClearHeightCm clears the value of the "height_cm" field.
func (u *VitalsUpsert) ClearHeightCm() *VitalsUpsert {
	u.SetNull(vitals.FieldHeightCm)
	return u
}

// SetWeightKg sets the "weight_kg" field.
func (u *VitalsUpsert) SetWeightKg(v float64) *VitalsUpsert {
	u.Set(vitals.FieldWeightKg, v)
	return u
}

// UpdateWeightKg sets the "weight_kg" field to the value that was provided on create.
func (u *VitalsUpsert) UpdateWeightKg() *VitalsUpsert {
	u.SetExcluded(vitals.FieldWeightKg)
	return u
}

// AddWeightKg adds v to the "weight_kg" field.
func (u *VitalsUpsert) AddWeightKg(v float64) *VitalsUpsert {
	u.Add(vitals.FieldWeightKg, v)
	return u
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (u *VitalsUpsert) ClearWeightKg() *VitalsUpsert {
	u.SetNull(vitals.FieldWeightKg)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Vitals.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(vitals.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VitalsUpsertOne) UpdateNewValues() *VitalsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(vitals.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(vitals.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Vitals.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *VitalsUpsertOne) Ignore() *VitalsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VitalsUpsertOne) DoNothing() *VitalsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VitalsCreate.OnConflict
// documentation for more info.
func (u *VitalsUpsertOne) Update(set func(*VitalsUpsert)) *VitalsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VitalsUpsert{UpdateSet: update})
	}))
	return u
}

// SetVitalRequestID sets the "vital_request_id" field.
func (u *VitalsUpsertOne) SetVitalRequestID(v uuid.UUID) *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.SetVitalRequestID(v)
	})
}

// UpdateVitalRequestID sets the "vital_request_id" field to the value that was provided on create.
func (u *VitalsUpsertOne) UpdateVitalRequestID() *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.UpdateVitalRequestID()
	})
}

// SetNurseID sets the "nurse_id" field.
func (u *VitalsUpsertOne) SetNurseID(v uuid.UUID) *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.SetNurseID(v)
	})
}

// UpdateNurseID sets the "nurse_id" field to the value that was provided on create.
func (u *VitalsUpsertOne) UpdateNurseID() *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.UpdateNurseID()
	})
}

// SetBloodPressure sets the "blood_pressure" field.
func (u *VitalsUpsertOne) SetBloodPressure(v string) *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.SetBloodPressure(v)
	})
}

// UpdateBloodPressure sets the "blood_pressure" field to the value that was provided on create.
func (u *VitalsUpsertOne) UpdateBloodPressure() *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.UpdateBloodPressure()
	})
}

// SetRespirationRate sets the "respiration_rate" field.
func (u *VitalsUpsertOne) SetRespirationRate(v float64) *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.SetRespirationRate(v)
	})
}

// AddRespirationRate adds v to the "respiration_rate" field.
func (u *VitalsUpsertOne) AddRespirationRate(v float64) *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.AddRespirationRate(v)
	})
}

// UpdateRespirationRate sets the "respiration_rate" field to the value that was provided on create.
func (u *VitalsUpsertOne) UpdateRespirationRate() *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.UpdateRespirationRate()
	})
}

// SetPulseRate sets the "pulse_rate" field.
func (u *VitalsUpsertOne) SetPulseRate(v float64) *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.SetPulseRate(v)
	})
}

// AddPulseRate adds v to the "pulse_rate" field.
func (u *VitalsUpsertOne) AddPulseRate(v float64) *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.AddPulseRate(v)
	})
}

// UpdatePulseRate sets the "pulse_rate" field to the value that was provided on create.
func (u *VitalsUpsertOne) UpdatePulseRate() *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.UpdatePulseRate()
	})
}

// SetBodyTemperature sets the "body_temperature" field.
func (u *VitalsUpsertOne) SetBodyTemperature(v float64) *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.SetBodyTemperature(v)
	})
}

// AddBodyTemperature adds v to the "body_temperature" field.
func (u *VitalsUpsertOne) AddBodyTemperature(v float64) *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.AddBodyTemperature(v)
	})
}

// UpdateBodyTemperature sets the "body_temperature" field to the value that was provided on create.
func (u *VitalsUpsertOne) UpdateBodyTemperature() *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.UpdateBodyTemperature()
	})
}

// SetHeightCm sets the "height_cm" field.
func (u *VitalsUpsertOne) SetHeightCm(v float64) *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.SetHeightCm(v)
	})
}

// AddHeightCm adds v to the "height_cm" field.
func (u *VitalsUpsertOne) AddHeightCm(v float64) *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.AddHeightCm(v)
	})
}

// UpdateHeightCm sets the "height_cm" field to the value that was provided on create.
func (u *VitalsUpsertOne) UpdateHeightCm() *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.UpdateHeightCm()
	})
}

// ClearHeightCm clears the value of the "height_cm" field.
func (u *VitalsUpsertOne) ClearHeightCm() *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.ClearHeightCm()
	})
}

// SetWeightKg sets the "weight_kg" field.
func (u *VitalsUpsertOne) SetWeightKg(v float64) *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.SetWeightKg(v)
	})
}

// AddWeightKg adds v to the "weight_kg" field.
func (u *VitalsUpsertOne) AddWeightKg(v float64) *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.AddWeightKg(v)
	})
}

// UpdateWeightKg sets the "weight_kg" field to the value that was provided on create.
func (u *VitalsUpsertOne) UpdateWeightKg() *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.UpdateWeightKg()
	})
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (u *VitalsUpsertOne) ClearWeightKg() *VitalsUpsertOne {
	return u.Update(func(s *VitalsUpsert) {
		s.ClearWeightKg()
	})
}

// Exec executes the query.
func (u *VitalsUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for VitalsCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VitalsUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *VitalsUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: VitalsUpsertOne.ID is not supported by MySQL driver. Use VitalsUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *VitalsUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// VitalsCreateBulk is the builder for creating many Vitals entities in bulk.
type VitalsCreateBulk struct {
	config
	err      error
	builders []*VitalsCreate
	conflict []sql.ConflictOption
}

// Save creates the Vitals entities in the database.
func (_c *VitalsCreateBulk) Save(ctx context.Context) ([]*Vitals, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Vitals, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VitalsMutation)
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
func (_c *VitalsCreateBulk) SaveX(ctx context.Context) []*Vitals {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VitalsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VitalsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Vitals.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.VitalsUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *VitalsCreateBulk) OnConflict(opts ...sql.ConflictOption) *VitalsUpsertBulk {
	_c.conflict = opts
	return &VitalsUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Vitals.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *VitalsCreateBulk) OnConflictColumns(columns ...string) *VitalsUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &VitalsUpsertBulk{
		create: _c,
	}
}

// VitalsUpsertBulk is the builder for "upsert"-ing
// a bulk of Vitals nodes.
type VitalsUpsertBulk struct {
	create *VitalsCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Vitals.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(vitals.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *VitalsUpsertBulk) UpdateNewValues() *VitalsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(vitals.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(vitals.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Vitals.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *VitalsUpsertBulk) Ignore() *VitalsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *VitalsUpsertBulk) DoNothing() *VitalsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the VitalsCreateBulk.OnConflict
// documentation for more info.
func (u *VitalsUpsertBulk) Update(set func(*VitalsUpsert)) *VitalsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&VitalsUpsert{UpdateSet: update})
	}))
	return u
}

// SetVitalRequestID sets the "vital_request_id" field.
func (u *VitalsUpsertBulk) SetVitalRequestID(v uuid.UUID) *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.SetVitalRequestID(v)
	})
}

// UpdateVitalRequestID sets the "vital_request_id" field to the value that was provided on create.
func (u *VitalsUpsertBulk) UpdateVitalRequestID() *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.UpdateVitalRequestID()
	})
}

// SetNurseID sets the "nurse_id" field.
func (u *VitalsUpsertBulk) SetNurseID(v uuid.UUID) *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.SetNurseID(v)
	})
}

// UpdateNurseID sets the "nurse_id" field to the value that was provided on create.
func (u *VitalsUpsertBulk) UpdateNurseID() *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.UpdateNurseID()
	})
}

// SetBloodPressure sets the "blood_pressure" field.
func (u *VitalsUpsertBulk) SetBloodPressure(v string) *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.SetBloodPressure(v)
	})
}

// UpdateBloodPressure sets the "blood_pressure" field to the value that was provided on create.
func (u *VitalsUpsertBulk) UpdateBloodPressure() *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.UpdateBloodPressure()
	})
}

// SetRespirationRate sets the "respiration_rate" field.
func (u *VitalsUpsertBulk) SetRespirationRate(v float64) *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.SetRespirationRate(v)
	})
}

// AddRespirationRate adds v to the "respiration_rate" field.
func (u *VitalsUpsertBulk) AddRespirationRate(v float64) *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.AddRespirationRate(v)
	})
}

// UpdateRespirationRate sets the "respiration_rate" field to the value that was provided on create.
func (u *VitalsUpsertBulk) UpdateRespirationRate() *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.UpdateRespirationRate()
	})
}

// SetPulseRate sets the "pulse_rate" field.
func (u *VitalsUpsertBulk) SetPulseRate(v float64) *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.SetPulseRate(v)
	})
}

// AddPulseRate adds v to the "pulse_rate" field.
func (u *VitalsUpsertBulk) AddPulseRate(v float64) *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.AddPulseRate(v)
	})
}

// UpdatePulseRate sets the "pulse_rate" field to the value that was provided on create.
func (u *VitalsUpsertBulk) UpdatePulseRate() *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.UpdatePulseRate()
	})
}

// SetBodyTemperature sets the "body_temperature" field.
func (u *VitalsUpsertBulk) SetBodyTemperature(v float64) *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.SetBodyTemperature(v)
	})
}

// AddBodyTemperature adds v to the "body_temperature" field.
func (u *VitalsUpsertBulk) AddBodyTemperature(v float64) *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.AddBodyTemperature(v)
	})
}

// UpdateBodyTemperature sets the "body_temperature" field to the value that was provided on create.
func (u *VitalsUpsertBulk) UpdateBodyTemperature() *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.UpdateBodyTemperature()
	})
}

// SetHeightCm sets the "height_cm" field.
func (u *VitalsUpsertBulk) SetHeightCm(v float64) *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.SetHeightCm(v)
	})
}

// AddHeightCm adds v to the "height_cm" field.
func (u *VitalsUpsertBulk) AddHeightCm(v float64) *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.AddHeightCm(v)
	})
}

// UpdateHeightCm sets the "height_cm" field to the value that was provided on create.
func (u *VitalsUpsertBulk) UpdateHeightCm() *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.UpdateHeightCm()
	})
}

// ClearHeightCm clears the value of the "height_cm" field.
func (u *VitalsUpsertBulk) ClearHeightCm() *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.ClearHeightCm()
	})
}

// SetWeightKg sets the "weight_kg" field.
func (u *VitalsUpsertBulk) SetWeightKg(v float64) *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.SetWeightKg(v)
	})
}

// AddWeightKg adds v to the "weight_kg" field.
func (u *VitalsUpsertBulk) AddWeightKg(v float64) *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.AddWeightKg(v)
	})
}

// UpdateWeightKg sets the "weight_kg" field to the value that was provided on create.
func (u *VitalsUpsertBulk) UpdateWeightKg() *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.UpdateWeightKg()
	})
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (u *VitalsUpsertBulk) ClearWeightKg() *VitalsUpsertBulk {
	return u.Update(func(s *VitalsUpsert) {
		s.ClearWeightKg()
	})
}

// Exec executes the query.
func (u *VitalsUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the VitalsCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for VitalsCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *VitalsUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
