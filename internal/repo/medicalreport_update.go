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
	"github.com/medreach/hospital_backend/internal/repo/medicalreport"
	"github.com/medreach/hospital_backend/internal/repo/predicate"
)

// MedicalReportUpdate is the builder for updating MedicalReport entities.
type MedicalReportUpdate struct {
	config
	hooks    []Hook
	mutation *MedicalReportMutation
}

// Where appends a list predicates to the MedicalReportUpdate builder.
func (_u *MedicalReportUpdate) Where(ps ...predicate.MedicalReport) *MedicalReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *MedicalReportUpdate) SetAppointmentID(v uuid.UUID) *MedicalReportUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *MedicalReportUpdate) SetNillableAppointmentID(v *uuid.UUID) *MedicalReportUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *MedicalReportUpdate) SetDoctorID(v uuid.UUID) *MedicalReportUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *MedicalReportUpdate) SetNillableDoctorID(v *uuid.UUID) *MedicalReportUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetMedicalCondition sets the "medical_condition" field.
func (_u *MedicalReportUpdate) SetMedicalCondition(v string) *MedicalReportUpdate {
	_u.mutation.SetMedicalCondition(v)
	return _u
}

// SetNillableMedicalCondition sets the "medical_condition" field if the given value is not nil.
func (_u *MedicalReportUpdate) SetNillableMedicalCondition(v *string) *MedicalReportUpdate {
	if v != nil {
		_u.SetMedicalCondition(*v)
	}
	return _u
}

// SetDrugPrescription sets the "drug_prescription" field.
func (_u *MedicalReportUpdate) SetDrugPrescription(v string) *MedicalReportUpdate {
	_u.mutation.SetDrugPrescription(v)
	return _u
}

// SetNillableDrugPrescription sets the "drug_prescription" field if the given value is not nil.
func (_u *MedicalReportUpdate) SetNillableDrugPrescription(v *string) *MedicalReportUpdate {
	if v != nil {
		_u.SetDrugPrescription(*v)
	}
	return _u
}

// ClearDrugPrescription clears the value of the "drug_prescription" field.
func (_u *MedicalReportUpdate) ClearDrugPrescription() *MedicalReportUpdate {
	_u.mutation.ClearDrugPrescription()
	return _u
}

// SetAdvice sets the "advice" field.
func (_u *MedicalReportUpdate) SetAdvice(v string) *MedicalReportUpdate {
	_u.mutation.SetAdvice(v)
	return _u
}

// SetNillableAdvice sets the "advice" field if the given value is not nil.
func (_u *MedicalReportUpdate) SetNillableAdvice(v *string) *MedicalReportUpdate {
	if v != nil {
		_u.SetAdvice(*v)
	}
	return _u
}

// ClearAdvice clears the value of the "advice" field.
func (_u *MedicalReportUpdate) ClearAdvice() *MedicalReportUpdate {
	_u.mutation.ClearAdvice()
	return _u
}

// SetNextAppointment sets the "next_appointment" field.
func (_u *MedicalReportUpdate) SetNextAppointment(v time.Time) *MedicalReportUpdate {
	_u.mutation.SetNextAppointment(v)
	return _u
}

// SetNillableNextAppointment sets the "next_appointment" field if the given value is not nil.
func (_u *MedicalReportUpdate) SetNillableNextAppointment(v *time.Time) *MedicalReportUpdate {
	if v != nil {
		_u.SetNextAppointment(*v)
	}
	return _u
}

// ClearNextAppointment clears the value of the "next_appointment" field.
func (_u *MedicalReportUpdate) ClearNextAppointment() *MedicalReportUpdate {
	_u.mutation.ClearNextAppointment()
	return _u
}

// Mutation returns the MedicalReportMutation object of the builder.
func (_u *MedicalReportUpdate) Mutation() *MedicalReportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MedicalReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicalReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MedicalReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicalReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MedicalReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(medicalreport.Table, medicalreport.Columns, sqlgraph.NewFieldSpec(medicalreport.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(medicalreport.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(medicalreport.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MedicalCondition(); ok {
		_spec.SetField(medicalreport.FieldMedicalCondition, field.TypeString, value)
	}
	if value, ok := _u.mutation.DrugPrescription(); ok {
		_spec.SetField(medicalreport.FieldDrugPrescription, field.TypeString, value)
	}
	if _u.mutation.DrugPrescriptionCleared() {
		_spec.ClearField(medicalreport.FieldDrugPrescription, field.TypeString)
	}
	if value, ok := _u.mutation.Advice(); ok {
		_spec.SetField(medicalreport.FieldAdvice, field.TypeString, value)
	}
	if _u.mutation.AdviceCleared() {
		_spec.ClearField(medicalreport.FieldAdvice, field.TypeString)
	}
	if value, ok := _u.mutation.NextAppointment(); ok {
		_spec.SetField(medicalreport.FieldNextAppointment, field.TypeTime, value)
	}
	if _u.mutation.NextAppointmentCleared() {
		_spec.ClearField(medicalreport.FieldNextAppointment, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicalreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MedicalReportUpdateOne is the builder for updating a single MedicalReport entity.
type MedicalReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MedicalReportMutation
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *MedicalReportUpdateOne) SetAppointmentID(v uuid.UUID) *MedicalReportUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *MedicalReportUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *MedicalReportUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *MedicalReportUpdateOne) SetDoctorID(v uuid.UUID) *MedicalReportUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *MedicalReportUpdateOne) SetNillableDoctorID(v *uuid.UUID) *MedicalReportUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetMedicalCondition sets the "medical_condition" field.
func (_u *MedicalReportUpdateOne) SetMedicalCondition(v string) *MedicalReportUpdateOne {
	_u.mutation.SetMedicalCondition(v)
	return _u
}

// SetNillableMedicalCondition sets the "medical_condition" field if the given value is not nil.
func (_u *MedicalReportUpdateOne) SetNillableMedicalCondition(v *string) *MedicalReportUpdateOne {
	if v != nil {
		_u.SetMedicalCondition(*v)
	}
	return _u
}

// SetDrugPrescription sets the "drug_prescription" field.
func (_u *MedicalReportUpdateOne) SetDrugPrescription(v string) *MedicalReportUpdateOne {
	_u.mutation.SetDrugPrescription(v)
	return _u
}

// SetNillableDrugPrescription sets the "drug_prescription" field if the given value is not nil.
func (_u *MedicalReportUpdateOne) SetNillableDrugPrescription(v *string) *MedicalReportUpdateOne {
	if v != nil {
		_u.SetDrugPrescription(*v)
	}
	return _u
}

// ClearDrugPrescription clears the value of the "drug_prescription" field.
func (_u *MedicalReportUpdateOne) ClearDrugPrescription() *MedicalReportUpdateOne {
	_u.mutation.ClearDrugPrescription()
	return _u
}

// SetAdvice sets the "advice" field.
func (_u *MedicalReportUpdateOne) SetAdvice(v string) *MedicalReportUpdateOne {
	_u.mutation.SetAdvice(v)
	return _u
}

// SetNillableAdvice sets the "advice" field if the given value is not nil.
func (_u *MedicalReportUpdateOne) SetNillableAdvice(v *string) *MedicalReportUpdateOne {
	if v != nil {
		_u.SetAdvice(*v)
	}
	return _u
}

// ClearAdvice clears the value of the "advice" field.
func (_u *MedicalReportUpdateOne) ClearAdvice() *MedicalReportUpdateOne {
	_u.mutation.ClearAdvice()
	return _u
}

// SetNextAppointment sets the "next_appointment" field.
func (_u *MedicalReportUpdateOne) SetNextAppointment(v time.Time) *MedicalReportUpdateOne {
	_u.mutation.SetNextAppointment(v)
	return _u
}

// SetNillableNextAppointment sets the "next_appointment" field if the given value is not nil.
func (_u *MedicalReportUpdateOne) SetNillableNextAppointment(v *time.Time) *MedicalReportUpdateOne {
	if v != nil {
		_u.SetNextAppointment(*v)
	}
	return _u
}

// ClearNextAppointment clears the value of the "next_appointment" field.
func (_u *MedicalReportUpdateOne) ClearNextAppointment() *MedicalReportUpdateOne {
	_u.mutation.ClearNextAppointment()
	return _u
}

// Mutation returns the MedicalReportMutation object of the builder.
func (_u *MedicalReportUpdateOne) Mutation() *MedicalReportMutation {
	return _u.mutation
}

// Where appends a list predicates to the MedicalReportUpdate builder.
func (_u *MedicalReportUpdateOne) Where(ps ...predicate.MedicalReport) *MedicalReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MedicalReportUpdateOne) Select(field string, fields ...string) *MedicalReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MedicalReport entity.
func (_u *MedicalReportUpdateOne) Save(ctx context.Context) (*MedicalReport, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicalReportUpdateOne) SaveX(ctx context.Context) *MedicalReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MedicalReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicalReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MedicalReportUpdateOne) sqlSave(ctx context.Context) (_node *MedicalReport, err error) {
	_spec := sqlgraph.NewUpdateSpec(medicalreport.Table, medicalreport.Columns, sqlgraph.NewFieldSpec(medicalreport.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MedicalReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, medicalreport.FieldID)
		for _, f := range fields {
			if !medicalreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != medicalreport.FieldID {
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
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(medicalreport.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(medicalreport.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MedicalCondition(); ok {
		_spec.SetField(medicalreport.FieldMedicalCondition, field.TypeString, value)
	}
	if value, ok := _u.mutation.DrugPrescription(); ok {
		_spec.SetField(medicalreport.FieldDrugPrescription, field.TypeString, value)
	}
	if _u.mutation.DrugPrescriptionCleared() {
		_spec.ClearField(medicalreport.FieldDrugPrescription, field.TypeString)
	}
	if value, ok := _u.mutation.Advice(); ok {
		_spec.SetField(medicalreport.FieldAdvice, field.TypeString, value)
	}
	if _u.mutation.AdviceCleared() {
		_spec.ClearField(medicalreport.FieldAdvice, field.TypeString)
	}
	if value, ok := _u.mutation.NextAppointment(); ok {
		_spec.SetField(medicalreport.FieldNextAppointment, field.TypeTime, value)
	}
	if _u.mutation.NextAppointmentCleared() {
		_spec.ClearField(medicalreport.FieldNextAppointment, field.TypeTime)
	}
	_node = &MedicalReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medicalreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
