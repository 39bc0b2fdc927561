// Code generated by ent, DO NOT EDIT.

package labresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the labresult type in the database.
	Label = "lab_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldTestRequestID holds the string denoting the test_request_id field in the database.
	FieldTestRequestID = "test_request_id"
	// FieldLabScientistID holds the string denoting the lab_scientist_id field in the database.
	FieldLabScientistID = "lab_scientist_id"
	// FieldTestName holds the string denoting the test_name field in the database.
	FieldTestName = "test_name"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldUnits holds the string denoting the units field in the database.
	FieldUnits = "units"
	// FieldReferenceRange holds the string denoting the reference_range field in the database.
	FieldReferenceRange = "reference_range"
	// Table holds the table name of the labresult in the database.
	Table = "lab_results"
)

// Columns holds all SQL columns for labresult fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldTestRequestID,
	FieldLabScientistID,
	FieldTestName,
	FieldResult,
	FieldUnits,
	FieldReferenceRange,
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
	// TestNameValidator is a validator for the "test_name" field. It is called by the builders before save.
	TestNameValidator func(string) error
	// UnitsValidator is a validator for the "units" field. It is called by the builders before save.
	UnitsValidator func(string) error
	// ReferenceRangeValidator is a validator for the "reference_range" field. It is called by the builders before save.
	ReferenceRangeValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the LabResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTestRequestID orders the results by the test_request_id field.
func ByTestRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestRequestID, opts...).ToFunc()
}

// ByLabScientistID orders the results by the lab_scientist_id field.
func ByLabScientistID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabScientistID, opts...).ToFunc()
}

// ByTestName orders the results by the test_name field.
func ByTestName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestName, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
}

// ByUnits orders the results by the units field.
func ByUnits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnits, opts...).ToFunc()
}

// ByReferenceRange orders the results by the reference_range field.
func ByReferenceRange(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferenceRange, opts...).ToFunc()
}
