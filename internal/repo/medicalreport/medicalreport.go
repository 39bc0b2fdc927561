// Code generated by ent, DO NOT EDIT.

package medicalreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the medicalreport type in the database.
	Label = "medical_report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldAppointmentID holds the string denoting the appointment_id field in the database.
	FieldAppointmentID = "appointment_id"
	// FieldDoctorID holds the string denoting the doctor_id field in the database.
	FieldDoctorID = "doctor_id"
	// FieldMedicalCondition holds the string denoting the medical_condition field in the database.
	FieldMedicalCondition = "medical_condition"
	// FieldDrugPrescription holds the string denoting the drug_prescription field in the database.
	FieldDrugPrescription = "drug_prescription"
	// FieldAdvice holds the string denoting the advice field in the database.
	FieldAdvice = "advice"
	// FieldNextAppointment holds the string denoting the next_appointment field in the database.
	FieldNextAppointment = "next_appointment"
	// Table holds the table name of the medicalreport in the database.
	Table = "medical_reports"
)

// Columns holds all SQL columns for medicalreport fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldAppointmentID,
	FieldDoctorID,
	FieldMedicalCondition,
	FieldDrugPrescription,
	FieldAdvice,
	FieldNextAppointment,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the MedicalReport queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAppointmentID orders the results by the appointment_id field.
func ByAppointmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentID, opts...).ToFunc()
}

// ByDoctorID orders the results by the doctor_id field.
func ByDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorID, opts...).ToFunc()
}

// ByMedicalCondition orders the results by the medical_condition field.
func ByMedicalCondition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedicalCondition, opts...).ToFunc()
}

// ByDrugPrescription orders the results by the drug_prescription field.
func ByDrugPrescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrugPrescription, opts...).ToFunc()
}

// ByAdvice orders the results by the advice field.
func ByAdvice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdvice, opts...).ToFunc()
}

// ByNextAppointment orders the results by the next_appointment field.
func ByNextAppointment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextAppointment, opts...).ToFunc()
}
