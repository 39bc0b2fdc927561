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
	"github.com/medreach/hospital_backend/internal/repo/labresult"
	"github.com/medreach/hospital_backend/internal/repo/predicate"
)

// LabResultUpdate is the builder for updating LabResult entities.
type LabResultUpdate struct {
	config
	hooks    []Hook
	mutation *LabResultMutation
}

// Where appends a list predicates to the LabResultUpdate builder.
func (_u *LabResultUpdate) Where(ps ...predicate.LabResult) *LabResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTestRequestID sets the "test_request_id" field.
func (_u *LabResultUpdate) SetTestRequestID(v uuid.UUID) *LabResultUpdate {
	_u.mutation.SetTestRequestID(v)
	return _u
}

// SetNillableTestRequestID sets the "test_request_id" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableTestRequestID(v *uuid.UUID) *LabResultUpdate {
	if v != nil {
		_u.SetTestRequestID(*v)
	}
	return _u
}

// SetLabScientistID sets the "lab_scientist_id" field.
func (_u *LabResultUpdate) SetLabScientistID(v uuid.UUID) *LabResultUpdate {
	_u.mutation.SetLabScientistID(v)
	return _u
}

// SetNillableLabScientistID sets the "lab_scientist_id" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableLabScientistID(v *uuid.UUID) *LabResultUpdate {
	if v != nil {
		_u.SetLabScientistID(*v)
	}
	return _u
}

// SetTestName sets the "test_name" field.
func (_u *LabResultUpdate) SetTestName(v string) *LabResultUpdate {
	_u.mutation.SetTestName(v)
	return _u
}

// SetNillableTestName sets the "test_name" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableTestName(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetTestName(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *LabResultUpdate) SetResult(v string) *LabResultUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableResult(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetUnits sets the "units" field.
func (_u *LabResultUpdate) SetUnits(v string) *LabResultUpdate {
	_u.mutation.SetUnits(v)
	return _u
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableUnits(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetUnits(*v)
	}
	return _u
}

// ClearUnits clears the value of the "units" field.
func (_u *LabResultUpdate) ClearUnits() *LabResultUpdate {
	_u.mutation.ClearUnits()
	return _u
}

// SetReferenceRange sets the "reference_range" field.
func (_u *LabResultUpdate) SetReferenceRange(v string) *LabResultUpdate {
	_u.mutation.SetReferenceRange(v)
	return _u
}

// SetNillableReferenceRange sets the "reference_range" field if the given value is not nil.
func (_u *LabResultUpdate) SetNillableReferenceRange(v *string) *LabResultUpdate {
	if v != nil {
		_u.SetReferenceRange(*v)
	}
	return _u
}

// ClearReferenceRange clears the value of the "reference_range" field.
func (_u *LabResultUpdate) ClearReferenceRange() *LabResultUpdate {
	_u.mutation.ClearReferenceRange()
	return _u
}

// Mutation returns the LabResultMutation object of the builder.
func (_u *LabResultUpdate) Mutation() *LabResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LabResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LabResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabResultUpdate) check() error {
	if v, ok := _u.mutation.TestName(); ok {
		if err := labresult.TestNameValidator(v); err != nil {
			return &ValidationError{Name: "test_name", err: fmt.Errorf(`repo: validator failed for field "LabResult.test_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Units(); ok {
		if err := labresult.UnitsValidator(v); err != nil {
			return &ValidationError{Name: "units", err: fmt.Errorf(`repo: validator failed for field "LabResult.units": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReferenceRange(); ok {
		if err := labresult.ReferenceRangeValidator(v); err != nil {
			return &ValidationError{Name: "reference_range", err: fmt.Errorf(`repo: validator failed for field "LabResult.reference_range": %w`, err)}
		}
	}
	return nil
}

func (_u *LabResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labresult.Table, labresult.Columns, sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TestRequestID(); ok {
		_spec.SetField(labresult.FieldTestRequestID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.LabScientistID(); ok {
		_spec.SetField(labresult.FieldLabScientistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TestName(); ok {
		_spec.SetField(labresult.FieldTestName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(labresult.FieldResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.Units(); ok {
		_spec.SetField(labresult.FieldUnits, field.TypeString, value)
	}
	if _u.mutation.UnitsCleared() {
		_spec.ClearField(labresult.FieldUnits, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceRange(); ok {
		_spec.SetField(labresult.FieldReferenceRange, field.TypeString, value)
	}
	if _u.mutation.ReferenceRangeCleared() {
		_spec.ClearField(labresult.FieldReferenceRange, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LabResultUpdateOne is the builder for updating a single LabResult entity.
type LabResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LabResultMutation
}

// SetTestRequestID sets the "test_request_id" field.
func (_u *LabResultUpdateOne) SetTestRequestID(v uuid.UUID) *LabResultUpdateOne {
	_u.mutation.SetTestRequestID(v)
	return _u
}

// SetNillableTestRequestID sets the "test_request_id" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableTestRequestID(v *uuid.UUID) *LabResultUpdateOne {
	if v != nil {
		_u.SetTestRequestID(*v)
	}
	return _u
}

// SetLabScientistID sets the "lab_scientist_id" field.
func (_u *LabResultUpdateOne) SetLabScientistID(v uuid.UUID) *LabResultUpdateOne {
	_u.mutation.SetLabScientistID(v)
	return _u
}

// SetNillableLabScientistID sets the "lab_scientist_id" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableLabScientistID(v *uuid.UUID) *LabResultUpdateOne {
	if v != nil {
		_u.SetLabScientistID(*v)
	}
	return _u
}

// SetTestName sets the "test_name" field.
func (_u *LabResultUpdateOne) SetTestName(v string) *LabResultUpdateOne {
	_u.mutation.SetTestName(v)
	return _u
}

// SetNillableTestName sets the "test_name" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableTestName(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetTestName(*v)
	}
	return _u
}

// SetResult sets the "result" field.
func (_u *LabResultUpdateOne) SetResult(v string) *LabResultUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableResult(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// SetUnits sets the "units" field.
func (_u *LabResultUpdateOne) SetUnits(v string) *LabResultUpdateOne {
	_u.mutation.SetUnits(v)
	return _u
}

// SetNillableUnits sets the "units" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableUnits(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetUnits(*v)
	}
	return _u
}

// ClearUnits clears the value of the "units" field.
func (_u *LabResultUpdateOne) ClearUnits() *LabResultUpdateOne {
	_u.mutation.ClearUnits()
	return _u
}

// SetReferenceRange sets the "reference_range" field.
func (_u *LabResultUpdateOne) SetReferenceRange(v string) *LabResultUpdateOne {
	_u.mutation.SetReferenceRange(v)
	return _u
}

// SetNillableReferenceRange sets the "reference_range" field if the given value is not nil.
func (_u *LabResultUpdateOne) SetNillableReferenceRange(v *string) *LabResultUpdateOne {
	if v != nil {
		_u.SetReferenceRange(*v)
	}
	return _u
}

// ClearReferenceRange clears the value of the "reference_range" field.
func (_u *LabResultUpdateOne) ClearReferenceRange() *LabResultUpdateOne {
	_u.mutation.ClearReferenceRange()
	return _u
}

// Mutation returns the LabResultMutation object of the builder.
func (_u *LabResultUpdateOne) Mutation() *LabResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the LabResultUpdate builder.
func (_u *LabResultUpdateOne) Where(ps ...predicate.LabResult) *LabResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LabResultUpdateOne) Select(field string, fields ...string) *LabResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LabResult entity.
func (_u *LabResultUpdateOne) Save(ctx context.Context) (*LabResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabResultUpdateOne) SaveX(ctx context.Context) *LabResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LabResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabResultUpdateOne) check() error {
	if v, ok := _u.mutation.TestName(); ok {
		if err := labresult.TestNameValidator(v); err != nil {
			return &ValidationError{Name: "test_name", err: fmt.Errorf(`repo: validator failed for field "LabResult.test_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Units(); ok {
		if err := labresult.UnitsValidator(v); err != nil {
			return &ValidationError{Name: "units", err: fmt.Errorf(`repo: validator failed for field "LabResult.units": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReferenceRange(); ok {
		if err := labresult.ReferenceRangeValidator(v); err != nil {
			return &ValidationError{Name: "reference_range", err: fmt.Errorf(`repo: validator failed for field "LabResult.reference_range": %w`, err)}
		}
	}
	return nil
}

func (_u *LabResultUpdateOne) sqlSave(ctx context.Context) (_node *LabResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(labresult.Table, labresult.Columns, sqlgraph.NewFieldSpec(labresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "LabResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, labresult.FieldID)
		for _, f := range fields {
			if !labresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != labresult.FieldID {
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
	if value, ok := _u.mutation.TestRequestID(); ok {
		_spec.SetField(labresult.FieldTestRequestID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.LabScientistID(); ok {
		_spec.SetField(labresult.FieldLabScientistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TestName(); ok {
		_spec.SetField(labresult.FieldTestName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(labresult.FieldResult, field.TypeString, value)
	}
	if value, ok := _u.mutation.Units(); ok {
		_spec.SetField(labresult.FieldUnits, field.TypeString, value)
	}
	if _u.mutation.UnitsCleared() {
		_spec.ClearField(labresult.FieldUnits, field.TypeString)
	}
	if value, ok := _u.mutation.ReferenceRange(); ok {
		_spec.SetField(labresult.FieldReferenceRange, field.TypeString, value)
	}
	if _u.mutation.ReferenceRangeCleared() {
		_spec.ClearField(labresult.FieldReferenceRange, field.TypeString)
	}
	_node = &LabResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{labresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
