// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medreach/hospital_backend/internal/repo/vitals"
)

// Vitals is the model entity for the Vitals schema.
type Vitals struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → vital_requests.id
	VitalRequestID uuid.UUID `json:"vital_request_id,omitempty"`
	// FK → profiles.id (role NURSE)
	NurseID uuid.UUID `json:"nurse_id,omitempty"`
	// e.g. 120/80
	BloodPressure string `json:"blood_pressure,omitempty"`
	// RespirationRate holds the value of the "respiration_rate" field.
	RespirationRate float64 `json:"respiration_rate,omitempty"`
	// PulseRate holds the value of the "pulse_rate" field.
	PulseRate float64 `json:"pulse_rate,omitempty"`
	// Degrees Celsius
	BodyTemperature float64 `json:"body_temperature,omitempty"`
	// HeightCm holds the value of the "height_cm" field.
	HeightCm *float64 `json:"height_cm,omitempty"`
	// WeightKg holds the value of the "weight_kg" field.
	WeightKg     *float64 `json:"weight_kg,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Vitals) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vitals.FieldRespirationRate, vitals.FieldPulseRate, vitals.FieldBodyTemperature, vitals.FieldHeightCm, vitals.FieldWeightKg:
			values[i] = new(sql.NullFloat64)
		case vitals.FieldBloodPressure:
			values[i] = new(sql.NullString)
		case vitals.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case vitals.FieldID, vitals.FieldVitalRequestID, vitals.FieldNurseID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Vitals fields.
func (_m *Vitals) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vitals.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case vitals.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case vitals.FieldVitalRequestID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field vital_request_id", values[i])
			} else if value != nil {
				_m.VitalRequestID = *value
			}
		case vitals.FieldNurseID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field nurse_id", values[i])
			} else if value != nil {
				_m.NurseID = *value
			}
		case vitals.FieldBloodPressure:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blood_pressure", values[i])
			} else if value.Valid {
				_m.BloodPressure = value.String
			}
		case vitals.FieldRespirationRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field respiration_rate", values[i])
			} else if value.Valid {
				_m.RespirationRate = value.Float64
			}
		case vitals.FieldPulseRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pulse_rate", values[i])
			} else if value.Valid {
				_m.PulseRate = value.Float64
			}
		case vitals.FieldBodyTemperature:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field body_temperature", values[i])
			} else if value.Valid {
				_m.BodyTemperature = value.Float64
			}
		case vitals.FieldHeightCm:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field height_cm", values[i])
			} else if value.Valid {
				_m.HeightCm = new(float64)
				*_m.HeightCm = value.Float64
			}
		case vitals.FieldWeightKg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight_kg", values[i])
			} else if value.Valid {
				_m.WeightKg = new(float64)
				*_m.WeightKg = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Vitals.
// This includes values selected through modifiers, order, etc.
func (_m *Vitals) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Vitals.
// Note that you need to call Vitals.Unwrap() before calling this method if this Vitals
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Vitals) Update() *VitalsUpdateOne {
	return NewVitalsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Vitals entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Vitals) Unwrap() *Vitals {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Vitals is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Vitals) String() string {
	var builder strings.Builder
	builder.WriteString("Vitals(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("vital_request_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.VitalRequestID))
	builder.WriteString(", ")
	builder.WriteString("nurse_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.NurseID))
	builder.WriteString(", ")
	builder.WriteString("blood_pressure=")
	builder.WriteString(_m.BloodPressure)
	builder.WriteString(", ")
	builder.WriteString("respiration_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.RespirationRate))
	builder.WriteString(", ")
	builder.WriteString("pulse_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.PulseRate))
	builder.WriteString(", ")
	builder.WriteString("body_temperature=")
	builder.WriteString(fmt.Sprintf("%v", _m.BodyTemperature))
	builder.WriteString(", ")
	if v := _m.HeightCm; v != nil {
		builder.WriteString("height_cm=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.WeightKg; v != nil {
		builder.WriteString("weight_kg=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// VitalsSlice is a parsable slice of Vitals.
type VitalsSlice []*Vitals
