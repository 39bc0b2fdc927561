// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medreach/hospital_backend/internal/repo/predicate"
	"github.com/medreach/hospital_backend/internal/repo/vitalrequest"
)

// VitalRequestUpdate is the builder for updating VitalRequest entities.
type VitalRequestUpdate struct {
	config
	hooks    []Hook
	mutation *VitalRequestMutation
}

// Where appends a list predicates to the VitalRequestUpdate builder.
func (_u *VitalRequestUpdate) Where(ps ...predicate.VitalRequest) *VitalRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VitalRequestUpdate) SetUpdatedAt(v time.Time) *VitalRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *VitalRequestUpdate) SetAppointmentID(v uuid.UUID) *VitalRequestUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *VitalRequestUpdate) SetNillableAppointmentID(v *uuid.UUID) *VitalRequestUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *VitalRequestUpdate) SetRequestedBy(v uuid.UUID) *VitalRequestUpdate {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *VitalRequestUpdate) SetNillableRequestedBy(v *uuid.UUID) *VitalRequestUpdate {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *VitalRequestUpdate) SetAssignedTo(v uuid.UUID) *VitalRequestUpdate {
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *VitalRequestUpdate) SetNillableAssignedTo(v *uuid.UUID) *VitalRequestUpdate {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *VitalRequestUpdate) ClearAssignedTo() *VitalRequestUpdate {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetNote sets the "note" field.
func (_u *VitalRequestUpdate) SetNote(v string) *VitalRequestUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *VitalRequestUpdate) SetNillableNote(v *string) *VitalRequestUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *VitalRequestUpdate) ClearNote() *VitalRequestUpdate {
	_u.mutation.ClearNote()
	return _u
}

// SetStatus sets the "status" field.
func (_u *VitalRequestUpdate) SetStatus(v vitalrequest.Status) *VitalRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VitalRequestUpdate) SetNillableStatus(v *vitalrequest.Status) *VitalRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the VitalRequestMutation object of the builder.
func (_u *VitalRequestUpdate) Mutation() *VitalRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VitalRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VitalRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VitalRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VitalRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VitalRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vitalrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VitalRequestUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := vitalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "VitalRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *VitalRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vitalrequest.Table, vitalrequest.Columns, sqlgraph.NewFieldSpec(vitalrequest.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vitalrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(vitalrequest.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(vitalrequest.FieldRequestedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(vitalrequest.FieldAssignedTo, field.TypeUUID, value)
	}
	if _u.mutation.AssignedToCleared() {
		_spec.ClearField(vitalrequest.FieldAssignedTo, field.TypeUUID)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(vitalrequest.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(vitalrequest.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(vitalrequest.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vitalrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VitalRequestUpdateOne is the builder for updating a single VitalRequest entity.
type VitalRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VitalRequestMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VitalRequestUpdateOne) SetUpdatedAt(v time.Time) *VitalRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *VitalRequestUpdateOne) SetAppointmentID(v uuid.UUID) *VitalRequestUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *VitalRequestUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *VitalRequestUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *VitalRequestUpdateOne) SetRequestedBy(v uuid.UUID) *VitalRequestUpdateOne {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *VitalRequestUpdateOne) SetNillableRequestedBy(v *uuid.UUID) *VitalRequestUpdateOne {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *VitalRequestUpdateOne) SetAssignedTo(v uuid.UUID) *VitalRequestUpdateOne {
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *VitalRequestUpdateOne) SetNillableAssignedTo(v *uuid.UUID) *VitalRequestUpdateOne {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *VitalRequestUpdateOne) ClearAssignedTo() *VitalRequestUpdateOne {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetNote sets the "note" field.
func (_u *VitalRequestUpdateOne) SetNote(v string) *VitalRequestUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *VitalRequestUpdateOne) SetNillableNote(v *string) *VitalRequestUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *VitalRequestUpdateOne) ClearNote() *VitalRequestUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// SetStatus sets the "status" field.
func (_u *VitalRequestUpdateOne) SetStatus(v vitalrequest.Status) *VitalRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VitalRequestUpdateOne) SetNillableStatus(v *vitalrequest.Status) *VitalRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the VitalRequestMutation object of the builder.
func (_u *VitalRequestUpdateOne) Mutation() *VitalRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the VitalRequestUpdate builder.
func (_u *VitalRequestUpdateOne) Where(ps ...predicate.VitalRequest) *VitalRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VitalRequestUpdateOne) Select(field string, fields ...string) *VitalRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VitalRequest entity.
func (_u *VitalRequestUpdateOne) Save(ctx context.Context) (*VitalRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VitalRequestUpdateOne) SaveX(ctx context.Context) *VitalRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VitalRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VitalRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VitalRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vitalrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VitalRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := vitalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "VitalRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *VitalRequestUpdateOne) sqlSave(ctx context.Context) (_node *VitalRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vitalrequest.Table, vitalrequest.Columns, sqlgraph.NewFieldSpec(vitalrequest.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "VitalRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vitalrequest.FieldID)
		for _, f := range fields {
			if !vitalrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != vitalrequest.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vitalrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(vitalrequest.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(vitalrequest.FieldRequestedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(vitalrequest.FieldAssignedTo, field.TypeUUID, value)
	}
	if _u.mutation.AssignedToCleared() {
		_spec.ClearField(vitalrequest.FieldAssignedTo, field.TypeUUID)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(vitalrequest.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(vitalrequest.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(vitalrequest.FieldStatus, field.TypeEnum, value)
	}
	_node = &VitalRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vitalrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
