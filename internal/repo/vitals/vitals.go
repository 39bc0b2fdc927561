// Code generated by ent, DO NOT EDIT.

package vitals

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the vitals type in the database.
	Label = "vitals"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldVitalRequestID holds the string denoting the vital_request_id field in the database.
	FieldVitalRequestID = "vital_request_id"
	// FieldNurseID holds the string denoting the nurse_id field in the database.
	FieldNurseID = "nurse_id"
	// FieldBloodPressure holds the string denoting the blood_pressure field in the database.
	FieldBloodPressure = "blood_pressure"
	// FieldRespirationRate holds the string denoting the respiration_rate field in the database.
	FieldRespirationRate = "respiration_rate"
	// FieldPulseRate holds the string denoting the pulse_rate field in the database.
	FieldPulseRate = "pulse_rate"
	// FieldBodyTemperature holds the string denoting the body_temperature field in the database.
	FieldBodyTemperature = "body_temperature"
	// FieldHeightCm holds the string denoting the height_cm field in the database.
	FieldHeightCm = "height_cm"
	// FieldWeightKg holds the string denoting the weight_kg field in the database.
	FieldWeightKg = "weight_kg"
	// Table holds the table name of the vitals in the database.
	Table = "vitals"
)

// Columns holds all SQL columns for vitals fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldVitalRequestID,
	FieldNurseID,
	FieldBloodPressure,
	FieldRespirationRate,
	FieldPulseRate,
	FieldBodyTemperature,
	FieldHeightCm,
	FieldWeightKg,
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
	// BloodPressureValidator is a validator for the "blood_pressure" field. It is called by the builders before save.
	BloodPressureValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Vitals queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByVitalRequestID orders the results by the vital_request_id field.
func ByVitalRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVitalRequestID, opts...).ToFunc()
}

// ByNurseID orders the results by the nurse_id field.
func ByNurseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNurseID, opts...).ToFunc()
}

// ByBloodPressure orders the results by the blood_pressure field.
func ByBloodPressure(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBloodPressure, opts...).ToFunc()
}

// ByRespirationRate orders the results by the respiration_rate field.
func ByRespirationRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRespirationRate, opts...).ToFunc()
}

// ByPulseRate orders the results by the pulse_rate field.
func ByPulseRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPulseRate, opts...).ToFunc()
}

// ByBodyTemperature orders the results by the body_temperature field.
func ByBodyTemperature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBodyTemperature, opts...).ToFunc()
}

// ByHeightCm orders the results by the height_cm field.
func ByHeightCm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeightCm, opts...).ToFunc()
}

// ByWeightKg orders the results by the weight_kg field.
func ByWeightKg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeightKg, opts...).ToFunc()
}
