// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medreach/hospital_backend/internal/repo/predicate"
	"github.com/medreach/hospital_backend/internal/repo/testrequest"
)

// TestRequestUpdate is the builder for updating TestRequest entities.
type TestRequestUpdate struct {
	config
	hooks    []Hook
	mutation *TestRequestMutation
}

// Where appends a list predicates to the TestRequestUpdate builder.
func (_u *TestRequestUpdate) Where(ps ...predicate.TestRequest) *TestRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TestRequestUpdate) SetUpdatedAt(v time.Time) *TestRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *TestRequestUpdate) SetAppointmentID(v uuid.UUID) *TestRequestUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *TestRequestUpdate) SetNillableAppointmentID(v *uuid.UUID) *TestRequestUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *TestRequestUpdate) SetRequestedBy(v uuid.UUID) *TestRequestUpdate {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *TestRequestUpdate) SetNillableRequestedBy(v *uuid.UUID) *TestRequestUpdate {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *TestRequestUpdate) SetAssignedTo(v uuid.UUID) *TestRequestUpdate {
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *TestRequestUpdate) SetNillableAssignedTo(v *uuid.UUID) *TestRequestUpdate {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *TestRequestUpdate) ClearAssignedTo() *TestRequestUpdate {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetTests sets the "tests" field.
func (_u *TestRequestUpdate) SetTests(v []string) *TestRequestUpdate {
	_u.mutation.SetTests(v)
	return _u
}

// AppendTests appends value to the "tests" field.
func (_u *TestRequestUpdate) AppendTests(v []string) *TestRequestUpdate {
	_u.mutation.AppendTests(v)
	return _u
}

// SetNote sets the "note" field.
func (_u *TestRequestUpdate) SetNote(v string) *TestRequestUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *TestRequestUpdate) SetNillableNote(v *string) *TestRequestUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *TestRequestUpdate) ClearNote() *TestRequestUpdate {
	_u.mutation.ClearNote()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TestRequestUpdate) SetStatus(v testrequest.Status) *TestRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TestRequestUpdate) SetNillableStatus(v *testrequest.Status) *TestRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the TestRequestMutation object of the builder.
func (_u *TestRequestUpdate) Mutation() *TestRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TestRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := testrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestRequestUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := testrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TestRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TestRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testrequest.Table, testrequest.Columns, sqlgraph.NewFieldSpec(testrequest.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(testrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(testrequest.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(testrequest.FieldRequestedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(testrequest.FieldAssignedTo, field.TypeUUID, value)
	}
	if _u.mutation.AssignedToCleared() {
		_spec.ClearField(testrequest.FieldAssignedTo, field.TypeUUID)
	}
	if value, ok := _u.mutation.Tests(); ok {
		_spec.SetField(testrequest.FieldTests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testrequest.FieldTests, value)
		})
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(testrequest.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(testrequest.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(testrequest.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestRequestUpdateOne is the builder for updating a single TestRequest entity.
type TestRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestRequestMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TestRequestUpdateOne) SetUpdatedAt(v time.Time) *TestRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *TestRequestUpdateOne) SetAppointmentID(v uuid.UUID) *TestRequestUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *TestRequestUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *TestRequestUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *TestRequestUpdateOne) SetRequestedBy(v uuid.UUID) *TestRequestUpdateOne {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *TestRequestUpdateOne) SetNillableRequestedBy(v *uuid.UUID) *TestRequestUpdateOne {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *TestRequestUpdateOne) SetAssignedTo(v uuid.UUID) *TestRequestUpdateOne {
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *TestRequestUpdateOne) SetNillableAssignedTo(v *uuid.UUID) *TestRequestUpdateOne {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *TestRequestUpdateOne) ClearAssignedTo() *TestRequestUpdateOne {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetTests sets the "tests" field.
func (_u *TestRequestUpdateOne) SetTests(v []string) *TestRequestUpdateOne {
	_u.mutation.SetTests(v)
	return _u
}

// AppendTests appends value to the "tests" field.
func (_u *TestRequestUpdateOne) AppendTests(v []string) *TestRequestUpdateOne {
	_u.mutation.AppendTests(v)
	return _u
}

// SetNote sets the "note" field.
func (_u *TestRequestUpdateOne) SetNote(v string) *TestRequestUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *TestRequestUpdateOne) SetNillableNote(v *string) *TestRequestUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *TestRequestUpdateOne) ClearNote() *TestRequestUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TestRequestUpdateOne) SetStatus(v testrequest.Status) *TestRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TestRequestUpdateOne) SetNillableStatus(v *testrequest.Status) *TestRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the TestRequestMutation object of the builder.
func (_u *TestRequestUpdateOne) Mutation() *TestRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestRequestUpdate builder.
func (_u *TestRequestUpdateOne) Where(ps ...predicate.TestRequest) *TestRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestRequestUpdateOne) Select(field string, fields ...string) *TestRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestRequest entity.
func (_u *TestRequestUpdateOne) Save(ctx context.Context) (*TestRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestRequestUpdateOne) SaveX(ctx context.Context) *TestRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TestRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := testrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := testrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TestRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TestRequestUpdateOne) sqlSave(ctx context.Context) (_node *TestRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testrequest.Table, testrequest.Columns, sqlgraph.NewFieldSpec(testrequest.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TestRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testrequest.FieldID)
		for _, f := range fields {
			if !testrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != testrequest.FieldID {
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
		_spec.SetField(testrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(testrequest.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(testrequest.FieldRequestedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(testrequest.FieldAssignedTo, field.TypeUUID, value)
	}
	if _u.mutation.AssignedToCleared() {
		_spec.ClearField(testrequest.FieldAssignedTo, field.TypeUUID)
	}
	if value, ok := _u.mutation.Tests(); ok {
		_spec.SetField(testrequest.FieldTests, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTests(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, testrequest.FieldTests, value)
		})
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(testrequest.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(testrequest.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(testrequest.FieldStatus, field.TypeEnum, value)
	}
	_node = &TestRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
