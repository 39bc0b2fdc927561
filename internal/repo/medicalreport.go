// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medreach/hospital_backend/internal/repo/medicalreport"
)

// MedicalReport is the model entity for the MedicalReport schema.
type MedicalReport struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → appointments.id, uniqueness enforces one report per appointment
	AppointmentID uuid.UUID `json:"appointment_id,omitempty"`
	// FK → profiles.id (role DOCTOR)
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// MedicalCondition holds the value of the "medical_condition" field.
	MedicalCondition string `json:"medical_condition,omitempty"`
	// DrugPrescription holds the value of the "drug_prescription" field.
	DrugPrescription *string `json:"drug_prescription,omitempty"`
	// Advice holds the value of the "advice" field.
	Advice *string `json:"advice,omitempty"`
	// NextAppointment holds the value of the "next_appointment" field.
	NextAppointment *time.Time `json:"next_appointment,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MedicalReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case medicalreport.FieldMedicalCondition, medicalreport.FieldDrugPrescription, medicalreport.FieldAdvice:
			values[i] = new(sql.NullString)
		case medicalreport.FieldCreatedAt, medicalreport.FieldNextAppointment:
			values[i] = new(sql.NullTime)
		case medicalreport.FieldID, medicalreport.FieldAppointmentID, medicalreport.FieldDoctorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MedicalReport fields.
func (_m *MedicalReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case medicalreport.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case medicalreport.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case medicalreport.FieldAppointmentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_id", values[i])
			} else if value != nil {
				_m.AppointmentID = *value
			}
		case medicalreport.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case medicalreport.FieldMedicalCondition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field medical_condition", values[i])
			} else if value.Valid {
				_m.MedicalCondition = value.String
			}
		case medicalreport.FieldDrugPrescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field drug_prescription", values[i])
			} else if value.Valid {
				_m.DrugPrescription = new(string)
				*_m.DrugPrescription = value.String
			}
		case medicalreport.FieldAdvice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field advice", values[i])
			} else if value.Valid {
				_m.Advice = new(string)
				*_m.Advice = value.String
			}
		case medicalreport.FieldNextAppointment:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_appointment", values[i])
			} else if value.Valid {
				_m.NextAppointment = new(time.Time)
				*_m.NextAppointment = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MedicalReport.
// This includes values selected through modifiers, order, etc.
func (_m *MedicalReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MedicalReport.
// Note that you need to call MedicalReport.Unwrap() before calling this method if this MedicalReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MedicalReport) Update() *MedicalReportUpdateOne {
	return NewMedicalReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MedicalReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MedicalReport) Unwrap() *MedicalReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: MedicalReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MedicalReport) String() string {
	var builder strings.Builder
	builder.WriteString("MedicalReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("appointment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentID))
	builder.WriteString(", ")
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	builder.WriteString("medical_condition=")
	builder.WriteString(_m.MedicalCondition)
	builder.WriteString(", ")
	if v := _m.DrugPrescription; v != nil {
		builder.WriteString("drug_prescription=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Advice; v != nil {
		builder.WriteString("advice=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NextAppointment; v != nil {
		builder.WriteString("next_appointment=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// MedicalReports is a parsable slice of MedicalReport.
type MedicalReports []*MedicalReport
