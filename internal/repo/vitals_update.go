// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medreach/hospital_backend/internal/repo/predicate"
	"github.com/medreach/hospital_backend/internal/repo/vitals"
)

// VitalsUpdate is the builder for updating Vitals entities.
type VitalsUpdate struct {
	config
	hooks    []Hook
	mutation *VitalsMutation
}

// Where appends a list predicates to the VitalsUpdate builder.
func (_u *VitalsUpdate) Where(ps ...predicate.Vitals) *VitalsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVitalRequestID sets the "vital_request_id" field.
func (_u *VitalsUpdate) SetVitalRequestID(v uuid.UUID) *VitalsUpdate {
	_u.mutation.SetVitalRequestID(v)
	return _u
}

// SetNillableVitalRequestID sets the "vital_request_id" field if the given value is not nil.
func (_u *VitalsUpdate) SetNillableVitalRequestID(v *uuid.UUID) *VitalsUpdate {
	if v != nil {
		_u.SetVitalRequestID(*v)
	}
	return _u
}

// SetNurseID sets the "nurse_id" field.
func (_u *VitalsUpdate) SetNurseID(v uuid.UUID) *VitalsUpdate {
	_u.mutation.SetNurseID(v)
	return _u
}

// SetNillableNurseID sets the "nurse_id" field if the given value is not nil.
func (_u *VitalsUpdate) SetNillableNurseID(v *uuid.UUID) *VitalsUpdate {
	if v != nil {
		_u.SetNurseID(*v)
	}
	return _u
}

// SetBloodPressure sets the "blood_pressure" field.
func (_u *VitalsUpdate) SetBloodPressure(v string) *VitalsUpdate {
	_u.mutation.SetBloodPressure(v)
	return _u
}

// SetNillableBloodPressure sets the "blood_pressure" field if the given value is not nil.
func (_u *VitalsUpdate) SetNillableBloodPressure(v *string) *VitalsUpdate {
	if v != nil {
		_u.SetBloodPressure(*v)
	}
	return _u
}

// SetRespirationRate sets the "respiration_rate" field.
func (_u *VitalsUpdate) SetRespirationRate(v float64) *VitalsUpdate {
	_u.mutation.ResetRespirationRate()
	_u.mutation.SetRespirationRate(v)
	return _u
}

// SetNillableRespirationRate sets the "respiration_rate" field if the given value is not nil.
func (_u *VitalsUpdate) SetNillableRespirationRate(v *float64) *VitalsUpdate {
	if v != nil {
		_u.SetRespirationRate(*v)
	}
	return _u
}

// AddRespirationRate adds value to the "respiration_rate" field.
func (_u *VitalsUpdate) AddRespirationRate(v float64) *VitalsUpdate {
	_u.mutation.AddRespirationRate(v)
	return _u
}

// SetPulseRate sets the "pulse_rate" field.
func (_u *VitalsUpdate) SetPulseRate(v float64) *VitalsUpdate {
	_u.mutation.ResetPulseRate()
	_u.mutation.SetPulseRate(v)
	return _u
}

// SetNillablePulseRate sets the "pulse_rate" field if the given value is not nil.
func (_u *VitalsUpdate) SetNillablePulseRate(v *float64) *VitalsUpdate {
	if v != nil {
		_u.SetPulseRate(*v)
	}
	return _u
}

// AddPulseRate adds value to the "pulse_rate" field.
func (_u *VitalsUpdate) AddPulseRate(v float64) *VitalsUpdate {
	_u.mutation.AddPulseRate(v)
	return _u
}

// SetBodyTemperature sets the "body_temperature" field.
func (_u *VitalsUpdate) SetBodyTemperature(v float64) *VitalsUpdate {
	_u.mutation.ResetBodyTemperature()
	_u.mutation.SetBodyTemperature(v)
	return _u
}

// SetNillableBodyTemperature sets the "body_temperature" field if the given value is not nil.
func (_u *VitalsUpdate) SetNillableBodyTemperature(v *float64) *VitalsUpdate {
	if v != nil {
		_u.SetBodyTemperature(*v)
	}
	return _u
}

// AddBodyTemperature adds value to the "body_temperature" field.
func (_u *VitalsUpdate) AddBodyTemperature(v float64) *VitalsUpdate {
	_u.mutation.AddBodyTemperature(v)
	return _u
}

// SetHeightCm sets the "height_cm" field.
func (_u *VitalsUpdate) SetHeightCm(v float64) *VitalsUpdate {
	_u.mutation.ResetHeightCm()
	_u.mutation.SetHeightCm(v)
	return _u
}

// SetNillableHeightCm sets the "height_cm" field if the given value is not nil.
func (_u *VitalsUpdate) SetNillableHeightCm(v *float64) *VitalsUpdate {
	if v != nil {
		_u.SetHeightCm(*v)
	}
	return _u
}

// AddHeightCm adds value to the "height_cm" field.
func (_u *VitalsUpdate) AddHeightCm(v float64) *VitalsUpdate {
	_u.mutation.AddHeightCm(v)
	return _u
}

// ClearHeightCm clears the value of the "height_cm" field.
func (_u *VitalsUpdate) ClearHeightCm() *VitalsUpdate {
	_u.mutation.ClearHeightCm()
	return _u
}

// SetWeightKg sets the "weight_kg" field.
func (_u *VitalsUpdate) SetWeightKg(v float64) *VitalsUpdate {
	_u.mutation.ResetWeightKg()
	_u.mutation.SetWeightKg(v)
	return _u
}

// SetNillableWeightKg sets the "weight_kg" field if the given value is not nil.
func (_u *VitalsUpdate) SetNillableWeightKg(v *float64) *VitalsUpdate {
	if v != nil {
		_u.SetWeightKg(*v)
	}
	return _u
}

// AddWeightKg adds value to the "weight_kg" field.
func (_u *VitalsUpdate) AddWeightKg(v float64) *VitalsUpdate {
	_u.mutation.AddWeightKg(v)
	return _u
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (_u *VitalsUpdate) ClearWeightKg() *VitalsUpdate {
	_u.mutation.ClearWeightKg()
	return _u
}

// Mutation returns the VitalsMutation object of the builder.
func (_u *VitalsUpdate) Mutation() *VitalsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VitalsUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VitalsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VitalsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VitalsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VitalsUpdate) check() error {
	if v, ok := _u.mutation.BloodPressure(); ok {
		if err := vitals.BloodPressureValidator(v); err != nil {
			return &ValidationError{Name: "blood_pressure", err: fmt.Errorf(`repo: validator failed for field "Vitals.blood_pressure": %w`, err)}
		}
	}
	return nil
}

func (_u *VitalsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vitals.Table, vitals.Columns, sqlgraph.NewFieldSpec(vitals.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VitalRequestID(); ok {
		_spec.SetField(vitals.FieldVitalRequestID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.NurseID(); ok {
		_spec.SetField(vitals.FieldNurseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BloodPressure(); ok {
		_spec.SetField(vitals.FieldBloodPressure, field.TypeString, value)
	}
	if value, ok := _u.mutation.RespirationRate(); ok {
		_spec.SetField(vitals.FieldRespirationRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRespirationRate(); ok {
		_spec.AddField(vitals.FieldRespirationRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PulseRate(); ok {
		_spec.SetField(vitals.FieldPulseRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPulseRate(); ok {
		_spec.AddField(vitals.FieldPulseRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BodyTemperature(); ok {
		_spec.SetField(vitals.FieldBodyTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBodyTemperature(); ok {
		_spec.AddField(vitals.FieldBodyTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HeightCm(); ok {
		_spec.SetField(vitals.FieldHeightCm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeightCm(); ok {
		_spec.AddField(vitals.FieldHeightCm, field.TypeFloat64, value)
	}
	if _u.mutation.HeightCmCleared() {
		_spec.ClearField(vitals.FieldHeightCm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WeightKg(); ok {
		_spec.SetField(vitals.FieldWeightKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightKg(); ok {
		_spec.AddField(vitals.FieldWeightKg, field.TypeFloat64, value)
	}
	if _u.mutation.WeightKgCleared() {
		_spec.ClearField(vitals.FieldWeightKg, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vitals.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VitalsUpdateOne is the builder for updating a single Vitals entity.
type VitalsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VitalsMutation
}

// SetVitalRequestID sets the "vital_request_id" field.
func (_u *VitalsUpdateOne) SetVitalRequestID(v uuid.UUID) *VitalsUpdateOne {
	_u.mutation.SetVitalRequestID(v)
	return _u
}

// SetNillableVitalRequestID sets the "vital_request_id" field if the given value is not nil.
func (_u *VitalsUpdateOne) SetNillableVitalRequestID(v *uuid.UUID) *VitalsUpdateOne {
	if v != nil {
		_u.SetVitalRequestID(*v)
	}
	return _u
}

// SetNurseID sets the "nurse_id" field.
func (_u *VitalsUpdateOne) SetNurseID(v uuid.UUID) *VitalsUpdateOne {
	_u.mutation.SetNurseID(v)
	return _u
}

// SetNillableNurseID sets the "nurse_id" field if the given value is not nil.
func (_u *VitalsUpdateOne) SetNillableNurseID(v *uuid.UUID) *VitalsUpdateOne {
	if v != nil {
		_u.SetNurseID(*v)
	}
	return _u
}

// SetBloodPressure sets the "blood_pressure" field.
func (_u *VitalsUpdateOne) SetBloodPressure(v string) *VitalsUpdateOne {
	_u.mutation.SetBloodPressure(v)
	return _u
}

// SetNillableBloodPressure sets the "blood_pressure" field if the given value is not nil.
func (_u *VitalsUpdateOne) SetNillableBloodPressure(v *string) *VitalsUpdateOne {
	if v != nil {
		_u.SetBloodPressure(*v)
	}
	return _u
}

// SetRespirationRate sets the "respiration_rate" field.
func (_u *VitalsUpdateOne) SetRespirationRate(v float64) *VitalsUpdateOne {
	_u.mutation.ResetRespirationRate()
	_u.mutation.SetRespirationRate(v)
	return _u
}

// SetNillableRespirationRate sets the "respiration_rate" field if the given value is not nil.
func (_u *VitalsUpdateOne) SetNillableRespirationRate(v *float64) *VitalsUpdateOne {
	if v != nil {
		_u.SetRespirationRate(*v)
	}
	return _u
}

// AddRespirationRate adds value to the "respiration_rate" field.
func (_u *VitalsUpdateOne) AddRespirationRate(v float64) *VitalsUpdateOne {
	_u.mutation.AddRespirationRate(v)
	return _u
}

// SetPulseRate sets the "pulse_rate" field.
func (_u *VitalsUpdateOne) SetPulseRate(v float64) *VitalsUpdateOne {
	_u.mutation.ResetPulseRate()
	_u.mutation.SetPulseRate(v)
	return _u
}

// SetNillablePulseRate sets the "pulse_rate" field if the given value is not nil.
func (_u *VitalsUpdateOne) SetNillablePulseRate(v *float64) *VitalsUpdateOne {
	if v != nil {
		_u.SetPulseRate(*v)
	}
	return _u
}

// AddPulseRate adds value to the "pulse_rate" field.
func (_u *VitalsUpdateOne) AddPulseRate(v float64) *VitalsUpdateOne {
	_u.mutation.AddPulseRate(v)
	return _u
}

// SetBodyTemperature sets the "body_temperature" field.
func (_u *VitalsUpdateOne) SetBodyTemperature(v float64) *VitalsUpdateOne {
	_u.mutation.ResetBodyTemperature()
	_u.mutation.SetBodyTemperature(v)
	return _u
}

// SetNillableBodyTemperature sets the "body_temperature" field if the given value is not nil.
func (_u *VitalsUpdateOne) SetNillableBodyTemperature(v *float64) *VitalsUpdateOne {
	if v != nil {
		_u.SetBodyTemperature(*v)
	}
	return _u
}

// AddBodyTemperature adds value to the "body_temperature" field.
func (_u *VitalsUpdateOne) AddBodyTemperature(v float64) *VitalsUpdateOne {
	_u.mutation.AddBodyTemperature(v)
	return _u
}

// SetHeightCm sets the "height_cm" field.
func (_u *VitalsUpdateOne) SetHeightCm(v float64) *VitalsUpdateOne {
	_u.mutation.ResetHeightCm()
	_u.mutation.SetHeightCm(v)
	return _u
}

// SetNillableHeightCm sets the "height_cm" field if the given value is not nil.
func (_u *VitalsUpdateOne) SetNillableHeightCm(v *float64) *VitalsUpdateOne {
	if v != nil {
		_u.SetHeightCm(*v)
	}
	return _u
}

// AddHeightCm adds value to the "height_cm" field.
func (_u *VitalsUpdateOne) AddHeightCm(v float64) *VitalsUpdateOne {
	_u.mutation.AddHeightCm(v)
	return _u
}

// ClearHeightCm clears the value of the "height_cm" field.
func (_u *VitalsUpdateOne) ClearHeightCm() *VitalsUpdateOne {
	_u.mutation.ClearHeightCm()
	return _u
}

// SetWeightKg sets the "weight_kg" field.
func (_u *VitalsUpdateOne) SetWeightKg(v float64) *VitalsUpdateOne {
	_u.mutation.ResetWeightKg()
	_u.mutation.SetWeightKg(v)
	return _u
}

// SetNillableWeightKg sets the "weight_kg" field if the given value is not nil.
func (_u *VitalsUpdateOne) SetNillableWeightKg(v *float64) *VitalsUpdateOne {
	if v != nil {
		_u.SetWeightKg(*v)
	}
	return _u
}

// AddWeightKg adds value to the "weight_kg" field.
func (_u *VitalsUpdateOne) AddWeightKg(v float64) *VitalsUpdateOne {
	_u.mutation.AddWeightKg(v)
	return _u
}

// ClearWeightKg clears the value of the "weight_kg" field.
func (_u *VitalsUpdateOne) ClearWeightKg() *VitalsUpdateOne {
	_u.mutation.ClearWeightKg()
	return _u
}

// Mutation returns the VitalsMutation object of the builder.
func (_u *VitalsUpdateOne) Mutation() *VitalsMutation {
	return _u.mutation
}

// Where appends a list predicates to the VitalsUpdate builder.
func (_u *VitalsUpdateOne) Where(ps ...predicate.Vitals) *VitalsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VitalsUpdateOne) Select(field string, fields ...string) *VitalsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vitals entity.
func (_u *VitalsUpdateOne) Save(ctx context.Context) (*Vitals, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VitalsUpdateOne) SaveX(ctx context.Context) *Vitals {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VitalsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VitalsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VitalsUpdateOne) check() error {
	if v, ok := _u.mutation.BloodPressure(); ok {
		if err := vitals.BloodPressureValidator(v); err != nil {
			return &ValidationError{Name: "blood_pressure", err: fmt.Errorf(`repo: validator failed for field "Vitals.blood_pressure": %w`, err)}
		}
	}
	return nil
}

func (_u *VitalsUpdateOne) sqlSave(ctx context.Context) (_node *Vitals, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vitals.Table, vitals.Columns, sqlgraph.NewFieldSpec(vitals.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Vitals.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vitals.FieldID)
		for _, f := range fields {
			if !vitals.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != vitals.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VitalRequestID(); ok {
		_spec.SetField(vitals.FieldVitalRequestID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.NurseID(); ok {
		_spec.SetField(vitals.FieldNurseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.BloodPressure(); ok {
		_spec.SetField(vitals.FieldBloodPressure, field.TypeString, value)
	}
	if value, ok := _u.mutation.RespirationRate(); ok {
		_spec.SetField(vitals.FieldRespirationRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRespirationRate(); ok {
		_spec.AddField(vitals.FieldRespirationRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PulseRate(); ok {
		_spec.SetField(vitals.FieldPulseRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPulseRate(); ok {
		_spec.AddField(vitals.FieldPulseRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BodyTemperature(); ok {
		_spec.SetField(vitals.FieldBodyTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBodyTemperature(); ok {
		_spec.AddField(vitals.FieldBodyTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HeightCm(); ok {
		_spec.SetField(vitals.FieldHeightCm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeightCm(); ok {
		_spec.AddField(vitals.FieldHeightCm, field.TypeFloat64, value)
	}
	if _u.mutation.HeightCmCleared() {
		_spec.ClearField(vitals.FieldHeightCm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.WeightKg(); ok {
		_spec.SetField(vitals.FieldWeightKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightKg(); ok {
		_spec.AddField(vitals.FieldWeightKg, field.TypeFloat64, value)
	}
	if _u.mutation.WeightKgCleared() {
		_spec.ClearField(vitals.FieldWeightKg, field.TypeFloat64)
	}
	_node = &Vitals{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vitals.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
