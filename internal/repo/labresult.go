// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medreach/hospital_backend/internal/repo/labresult"
)

// LabResult is the model entity for the LabResult schema.
type LabResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → test_requests.id
	TestRequestID uuid.UUID `json:"test_request_id,omitempty"`
	// FK → profiles.id (role LAB)
	LabScientistID uuid.UUID `json:"lab_scientist_id,omitempty"`
	// Normalized test name
	TestName string `json:"test_name,omitempty"`
	// Result holds the value of the "result" field.
	Result string `json:"result,omitempty"`
	// Units holds the value of the "units" field.
	Units *string `json:"units,omitempty"`
	// ReferenceRange holds the value of the "reference_range" field.
	ReferenceRange *string `json:"reference_range,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LabResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case labresult.FieldTestName, labresult.FieldResult, labresult.FieldUnits, labresult.FieldReferenceRange:
			values[i] = new(sql.NullString)
		case labresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case labresult.FieldID, labresult.FieldTestRequestID, labresult.FieldLabScientistID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LabResult fields.
func (_m *LabResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case labresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case labresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case labresult.FieldTestRequestID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field test_request_id", values[i])
			} else if value != nil {
				_m.TestRequestID = *value
			}
		case labresult.FieldLabScientistID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field lab_scientist_id", values[i])
			} else if value != nil {
				_m.LabScientistID = *value
			}
		case labresult.FieldTestName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_name", values[i])
			} else if value.Valid {
				_m.TestName = value.String
			}
		case labresult.FieldResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value.Valid {
				_m.Result = value.String
			}
		case labresult.FieldUnits:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field units", values[i])
			} else if value.Valid {
				_m.Units = new(string)
				*_m.Units = value.String
			}
		case labresult.FieldReferenceRange:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference_range", values[i])
			} else if value.Valid {
				_m.ReferenceRange = new(string)
				*_m.ReferenceRange = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LabResult.
// This includes values selected through modifiers, order, etc.
func (_m *LabResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LabResult.
// Note that you need to call LabResult.Unwrap() before calling this method if this LabResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LabResult) Update() *LabResultUpdateOne {
	return NewLabResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LabResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LabResult) Unwrap() *LabResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: LabResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LabResult) String() string {
	var builder strings.Builder
	builder.WriteString("LabResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("test_request_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestRequestID))
	builder.WriteString(", ")
	builder.WriteString("lab_scientist_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LabScientistID))
	builder.WriteString(", ")
	builder.WriteString("test_name=")
	builder.WriteString(_m.TestName)
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(_m.Result)
	builder.WriteString(", ")
	if v := _m.Units; v != nil {
		builder.WriteString("units=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReferenceRange; v != nil {
		builder.WriteString("reference_range=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// LabResults is a parsable slice of LabResult.
type LabResults []*LabResult
