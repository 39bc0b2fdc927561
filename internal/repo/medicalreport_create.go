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
	"github.com/medreach/hospital_backend/internal/repo/medicalreport"
)

// MedicalReportCreate is the builder for creating a MedicalReport entity.
type MedicalReportCreate struct {
	config
	mutation *MedicalReportMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *MedicalReportCreate) SetCreatedAt(v time.Time) *MedicalReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MedicalReportCreate) SetNillableCreatedAt(v *time.Time) *MedicalReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *MedicalReportCreate) SetAppointmentID(v uuid.UUID) *MedicalReportCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *MedicalReportCreate) SetDoctorID(v uuid.UUID) *MedicalReportCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetMedicalCondition sets the "medical_condition" field.
func (_c *MedicalReportCreate) SetMedicalCondition(v string) *MedicalReportCreate {
	_c.mutation.SetMedicalCondition(v)
	return _c
}

// SetDrugPrescription sets the "drug_prescription" field.
func (_c *MedicalReportCreate) SetDrugPrescription(v string) *MedicalReportCreate {
	_c.mutation.SetDrugPrescription(v)
	return _c
}

// SetNillableDrugPrescription sets the "drug_prescription" field if the given value is not nil.
func (_c *MedicalReportCreate) SetNillableDrugPrescription(v *string) *MedicalReportCreate {
	if v != nil {
		_c.SetDrugPrescription(*v)
	}
	return _c
}

// SetAdvice sets the "advice" field.
func (_c *MedicalReportCreate) SetAdvice(v string) *MedicalReportCreate {
	_c.mutation.SetAdvice(v)
	return _c
}

// SetNillableAdvice sets the "advice" field if the given value is not nil.
func (_c *MedicalReportCreate) SetNillableAdvice(v *string) *MedicalReportCreate {
	if v != nil {
		_c.SetAdvice(*v)
	}
	return _c
}

// SetNextAppointment sets the "next_appointment" field.
func (_c *MedicalReportCreate) SetNextAppointment(v time.Time) *MedicalReportCreate {
	_c.mutation.SetNextAppointment(v)
	return _c
}

// SetNillableNextAppointment sets the "next_appointment" field if the given value is not nil.
func (_c *MedicalReportCreate) SetNillableNextAppointment(v *time.Time) *MedicalReportCreate {
	if v != nil {
		_c.SetNextAppointment(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MedicalReportCreate) SetID(v uuid.UUID) *MedicalReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MedicalReportCreate) SetNillableID(v *uuid.UUID) *MedicalReportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MedicalReportMutation object of the builder.
func (_c *MedicalReportCreate) Mutation() *MedicalReportMutation {
	return _c.mutation
}

// Save creates the MedicalReport in the database.
func (_c *MedicalReportCreate) Save(ctx context.Context) (*MedicalReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MedicalReportCreate) SaveX(ctx context.Context) *MedicalReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MedicalReportCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := medicalreport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := medicalreport.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MedicalReportCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MedicalReport.created_at"`)}
	}
	if _, ok := _c.mutation.AppointmentID(); !ok {
		return &ValidationError{Name: "appointment_id", err: errors.New(`repo: missing required field "MedicalReport.appointment_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "MedicalReport.doctor_id"`)}
	}
	if _, ok := _c.mutation.MedicalCondition(); !ok {
		return &ValidationError{Name: "medical_condition", err: errors.New(`repo: missing required field "MedicalReport.medical_condition"`)}
	}
	return nil
}

func (_c *MedicalReportCreate) sqlSave(ctx context.Context) (*MedicalReport, error) {
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

func (_c *MedicalReportCreate) createSpec() (*MedicalReport, *sqlgraph.CreateSpec) {
	var (
		_node = &MedicalReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(medicalreport.Table, sqlgraph.NewFieldSpec(medicalreport.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(medicalreport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(medicalreport.FieldAppointmentID, field.TypeUUID, value)
		_node.AppointmentID = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(medicalreport.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.MedicalCondition(); ok {
		_spec.SetField(medicalreport.FieldMedicalCondition, field.TypeString, value)
		_node.MedicalCondition = value
	}
	if value, ok := _c.mutation.DrugPrescription(); ok {
		_spec.SetField(medicalreport.FieldDrugPrescription, field.TypeString, value)
		_node.DrugPrescription = &value
	}
	if value, ok := _c.mutation.Advice(); ok {
		_spec.SetField(medicalreport.FieldAdvice, field.TypeString, value)
		_node.Advice = &value
	}
	if value, ok := _c.mutation.NextAppointment(); ok {
		_spec.SetField(medicalreport.FieldNextAppointment, field.TypeTime, value)
		_node.NextAppointment = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MedicalReport.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicalReportUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicalReportCreate) OnConflict(opts ...sql.ConflictOption) *MedicalReportUpsertOne {
	_c.conflict = opts
	return &MedicalReportUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MedicalReport.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicalReportCreate) OnConflictColumns(columns ...string) *MedicalReportUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicalReportUpsertOne{
		create: _c,
	}
}

type (
	// MedicalReportUpsertOne is the builder for "upsert"-ing
	//  one MedicalReport node.
	MedicalReportUpsertOne struct {
		create *MedicalReportCreate
	}

	// MedicalReportUpsert is the "OnConflict" setter.
	MedicalReportUpsert struct {
		*sql.UpdateSet
	}
)

// SetAppointmentID sets the "appointment_id" field.
func (u *MedicalReportUpsert) SetAppointmentID(v uuid.UUID) *MedicalReportUpsert {
	u.Set(medicalreport.FieldAppointmentID, v)
	return u
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *MedicalReportUpsert) UpdateAppointmentID() *MedicalReportUpsert {
	u.SetExcluded(medicalreport.FieldAppointmentID)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *MedicalReportUpsert) SetDoctorID(v uuid.UUID) *MedicalReportUpsert {
	u.Set(medicalreport.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *MedicalReportUpsert) UpdateDoctorID() *MedicalReportUpsert {
	u.SetExcluded(medicalreport.FieldDoctorID)
	return u
}

// SetMedicalCondition sets the "medical_condition" field.
func (u *MedicalReportUpsert) SetMedicalCondition(v string) *MedicalReportUpsert {
	u.Set(medicalreport.FieldMedicalCondition, v)
	return u
}

// UpdateMedicalCondition sets the "medical_condition" field to the value that was provided on create.
func (u *MedicalReportUpsert) UpdateMedicalCondition() *MedicalReportUpsert {
	u.SetExcluded(medicalreport.FieldMedicalCondition)
	return u
}

// SetDrugPrescription sets the "drug_prescription" field.
func (u *MedicalReportUpsert) SetDrugPrescription(v string) *MedicalReportUpsert {
	u.Set(medicalreport.FieldDrugPrescription, v)
	return u
}

// UpdateDrugPrescription sets the "drug_prescription" field to the value that was provided on create.
func (u *MedicalReportUpsert) UpdateDrugPrescription() *MedicalReportUpsert {
	u.SetExcluded(medicalreport.FieldDrugPrescription)
	return u
}

// ClearDrugPrescription clears the value of the "drug_prescription" field.
func (u *MedicalReportUpsert) ClearDrugPrescription() *MedicalReportUpsert {
	u.SetNull(medicalreport.FieldDrugPrescription)
	return u
}

// SetAdvice sets the "advice" field.
func (u *MedicalReportUpsert) SetAdvice(v string) *MedicalReportUpsert {
	u.Set(medicalreport.FieldAdvice, v)
	return u
}

// UpdateAdvice sets the "advice" field to the value that was provided on create.
func (u *MedicalReportUpsert) UpdateAdvice() *MedicalReportUpsert {
	u.SetExcluded(medicalreport.FieldAdvice)
	return u
}

// ClearAdvice clears the value of the "advice" field.
func (u *MedicalReportUpsert) ClearAdvice() *MedicalReportUpsert {
	u.SetNull(medicalreport.FieldAdvice)
	return u
}

// SetNextAppointment sets the "next_appointment" field.
func (u *MedicalReportUpsert) SetNextAppointment(v time.Time) *MedicalReportUpsert {
	u.Set(medicalreport.FieldNextAppointment, v)
	return u
}

// UpdateNextAppointment sets the "next_appointment" field to the value that was provided on create.
func (u *MedicalReportUpsert) UpdateNextAppointment() *MedicalReportUpsert {
	u.SetExcluded(medicalreport.FieldNextAppointment)
	return u
}

// ClearNextAppointment clears the value of the "next_appointment" field.
func (u *MedicalReportUpsert) ClearNextAppointment() *MedicalReportUpsert {
	u.SetNull(medicalreport.FieldNextAppointment)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MedicalReport.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(medicalreport.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MedicalReportUpsertOne) UpdateNewValues() *MedicalReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(medicalreport.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(medicalreport.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MedicalReport.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MedicalReportUpsertOne) Ignore() *MedicalReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicalReportUpsertOne) DoNothing() *MedicalReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicalReportCreate.OnConflict
// documentation for more info.
func (u *MedicalReportUpsertOne) Update(set func(*MedicalReportUpsert)) *MedicalReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicalReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetAppointmentID sets the "appointment_id" field.
func (u *MedicalReportUpsertOne) SetAppointmentID(v uuid.UUID) *MedicalReportUpsertOne {
	return u.Update(func(s *MedicalReportUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *MedicalReportUpsertOne) UpdateAppointmentID() *MedicalReportUpsertOne {
	return u.Update(func(s *MedicalReportUpsert) {
		s.UpdateAppointmentID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *MedicalReportUpsertOne) SetDoctorID(v uuid.UUID) *MedicalReportUpsertOne {
	return u.Update(func(s *MedicalReportUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *MedicalReportUpsertOne) UpdateDoctorID() *MedicalReportUpsertOne {
	return u.Update(func(s *MedicalReportUpsert) {
		s.UpdateDoctorID()
	})
}

// SetMedicalCondition sets the "medical_condition" field.
func (u *MedicalReportUpsertOne) SetMedicalCondition(v string) *MedicalReportUpsertOne {
	return u.Update(func(s *MedicalReportUpsert) {
		s.SetMedicalCondition(v)
	})
}

// UpdateMedicalCondition sets the "medical_condition" field to the value that was provided on create.
func (u *MedicalReportUpsertOne) UpdateMedicalCondition() *MedicalReportUpsertOne {
	return u.Update(func(s *MedicalReportUpsert) {
		s.UpdateMedicalCondition()
	})
}

// SetDrugPrescription sets the "drug_prescription" field.
func (u *MedicalReportUpsertOne) SetDrugPrescription(v string) *MedicalReportUpsertOne {
	return u.Update(func(s *MedicalReportUpsert) {
		s.SetDrugPrescription(v)
	})
}

// UpdateDrugPrescription sets the "drug_prescription" field to the value that was provided on create.
func (u *MedicalReportUpsertOne) UpdateDrugPrescription() *MedicalReportUpsertOne {
	return u.Update(func(s *MedicalReportUpsert) {
		s.UpdateDrugPrescription()
	})
}

// ClearDrugPrescription clears the value of the "drug_prescription" field.
func (u *MedicalReportUpsertOne) ClearDrugPrescription() *MedicalReportUpsertOne {
	return u.Update(func(s *MedicalReportUpsert) {
		s.ClearDrugPrescription()
	})
}

// SetAdvice sets the "advice" field.
func (u *MedicalReportUpsertOne) SetAdvice(v string) *MedicalReportUpsertOne {
	return u.Update(func(s *MedicalReportUpsert) {
		s.SetAdvice(v)
	})
}

// UpdateAdvice sets the "advice" field to the value that was provided on create.
func (u *MedicalReportUpsertOne) UpdateAdvice() *MedicalReportUpsertOne {
	return u.Update(func(s *MedicalReportUpsert) {
		s.UpdateAdvice()
	})
}

// ClearAdvice clears the value of the "advice" field.
func (u *MedicalReportUpsertOne) ClearAdvice() *MedicalReportUpsertOne {
	return u.Update(func(s *MedicalReportUpsert) {
		s.ClearAdvice()
	})
}

// SetNextAppointment sets the "next_appointment" field.
func (u *MedicalReportUpsertOne) SetNextAppointment(v time.Time) *MedicalReportUpsertOne {
	return u.Update(func(s *MedicalReportUpsert) {
		s.SetNextAppointment(v)
	})
}

// UpdateNextAppointment sets the "next_appointment" field to the value that was provided on create.
func (u *MedicalReportUpsertOne) UpdateNextAppointment() *MedicalReportUpsertOne {
	return u.Update(func(s *MedicalReportUpsert) {
		s.UpdateNextAppointment()
	})
}

// ClearNextAppointment clears the value of the "next_appointment" field.
func (u *MedicalReportUpsertOne) ClearNextAppointment() *MedicalReportUpsertOne {
	return u.Update(func(s *MedicalReportUpsert) {
		s.ClearNextAppointment()
	})
}

// Exec executes the query.
func (u *MedicalReportUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MedicalReportCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicalReportUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MedicalReportUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: MedicalReportUpsertOne.ID is not supported by MySQL driver. Use MedicalReportUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MedicalReportUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MedicalReportCreateBulk is the builder for creating many MedicalReport entities in bulk.
type MedicalReportCreateBulk struct {
	config
	err      error
	builders []*MedicalReportCreate
	conflict []sql.ConflictOption
}

// Save creates the MedicalReport entities in the database.
func (_c *MedicalReportCreateBulk) Save(ctx context.Context) ([]*MedicalReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MedicalReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MedicalReportMutation)
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
func (_c *MedicalReportCreateBulk) SaveX(ctx context.Context) []*MedicalReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicalReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicalReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MedicalReport.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicalReportUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicalReportCreateBulk) OnConflict(opts ...sql.ConflictOption) *MedicalReportUpsertBulk {
	_c.conflict = opts
	return &MedicalReportUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MedicalReport.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicalReportCreateBulk) OnConflictColumns(columns ...string) *MedicalReportUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicalReportUpsertBulk{
		create: _c,
	}
}

// MedicalReportUpsertBulk is the builder for "upsert"-ing
// a bulk of MedicalReport nodes.
type MedicalReportUpsertBulk struct {
	create *MedicalReportCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MedicalReport.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(medicalreport.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MedicalReportUpsertBulk) UpdateNewValues() *MedicalReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(medicalreport.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(medicalreport.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MedicalReport.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MedicalReportUpsertBulk) Ignore() *MedicalReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicalReportUpsertBulk) DoNothing() *MedicalReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicalReportCreateBulk.OnConflict
// documentation for more info.
func (u *MedicalReportUpsertBulk) Update(set func(*MedicalReportUpsert)) *MedicalReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicalReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetAppointmentID sets the "appointment_id" field.
func (u *MedicalReportUpsertBulk) SetAppointmentID(v uuid.UUID) *MedicalReportUpsertBulk {
	return u.Update(func(s *MedicalReportUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *MedicalReportUpsertBulk) UpdateAppointmentID() *MedicalReportUpsertBulk {
	return u.Update(func(s *MedicalReportUpsert) {
		s.UpdateAppointmentID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *MedicalReportUpsertBulk) SetDoctorID(v uuid.UUID) *MedicalReportUpsertBulk {
	return u.Update(func(s *MedicalReportUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *MedicalReportUpsertBulk) UpdateDoctorID() *MedicalReportUpsertBulk {
	return u.Update(func(s *MedicalReportUpsert) {
		s.UpdateDoctorID()
	})
}

// SetMedicalCondition sets the "medical_condition" field.
func (u *MedicalReportUpsertBulk) SetMedicalCondition(v string) *MedicalReportUpsertBulk {
	return u.Update(func(s *MedicalReportUpsert) {
		s.SetMedicalCondition(v)
	})
}

// UpdateMedicalCondition sets the "medical_condition" field to the value that was provided on create.
func (u *MedicalReportUpsertBulk) UpdateMedicalCondition() *MedicalReportUpsertBulk {
	return u.Update(func(s *MedicalReportUpsert) {
		s.UpdateMedicalCondition()
	})
}

// SetDrugPrescription sets the "drug_prescription" field.
func (u *MedicalReportUpsertBulk) SetDrugPrescription(v string) *MedicalReportUpsertBulk {
	return u.Update(func(s *MedicalReportUpsert) {
		s.SetDrugPrescription(v)
	})
}

// UpdateDrugPrescription sets the "drug_prescription" field to the value that was provided on create.
func (u *MedicalReportUpsertBulk) UpdateDrugPrescription() *MedicalReportUpsertBulk {
	return u.Update(func(s *MedicalReportUpsert) {
		s.UpdateDrugPrescription()
	})
}

// ClearDrugPrescription clears the value of the "drug_prescription" field.
func (u *MedicalReportUpsertBulk) ClearDrugPrescription() *MedicalReportUpsertBulk {
	return u.Update(func(s *MedicalReportUpsert) {
		s.ClearDrugPrescription()
	})
}

// SetAdvice sets the "advice" field.
func (u *MedicalReportUpsertBulk) SetAdvice(v string) *MedicalReportUpsertBulk {
	return u.Update(func(s *MedicalReportUpsert) {
		s.SetAdvice(v)
	})
}

// UpdateAdvice sets the "advice" field to the value that was provided on create.
func (u *MedicalReportUpsertBulk) UpdateAdvice() *MedicalReportUpsertBulk {
	return u.Update(func(s *MedicalReportUpsert) {
		s.UpdateAdvice()
	})
}

// ClearAdvice clears the value of the "advice" field.
func (u *MedicalReportUpsertBulk) ClearAdvice() *MedicalReportUpsertBulk {
	return u.Update(func(s *MedicalReportUpsert) {
		s.ClearAdvice()
	})
}

// SetNextAppointment sets the "next_appointment" field.
func (u *MedicalReportUpsertBulk) SetNextAppointment(v time.Time) *MedicalReportUpsertBulk {
	return u.Update(func(s *MedicalReportUpsert) {
		s.SetNextAppointment(v)
	})
}

// UpdateNextAppointment sets the "next_appointment" field to the value that was provided on create.
func (u *MedicalReportUpsertBulk) UpdateNextAppointment() *MedicalReportUpsertBulk {
	return u.Update(func(s *MedicalReportUpsert) {
		s.UpdateNextAppointment()
	})
}

// ClearNextAppointment clears the value of the "next_appointment" field.
func (u *MedicalReportUpsertBulk) ClearNextAppointment() *MedicalReportUpsertBulk {
	return u.Update(func(s *MedicalReportUpsert) {
		s.ClearNextAppointment()
	})
}

// Exec executes the query.
func (u *MedicalReportUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the MedicalReportCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MedicalReportCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicalReportUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
