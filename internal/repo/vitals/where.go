// Code generated by ent, DO NOT EDIT.

package vitals

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medreach/hospital_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldCreatedAt, v))
}

// VitalRequestID applies equality check predicate on the "vital_request_id" field. It's identical to VitalRequestIDEQ.
func VitalRequestID(v uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldVitalRequestID, v))
}

// NurseID applies equality check predicate on the "nurse_id" field. It's identical to NurseIDEQ.
func NurseID(v uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldNurseID, v))
}

// BloodPressure applies equality check predicate on the "blood_pressure" field. It's identical to BloodPressureEQ.
func BloodPressure(v string) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldBloodPressure, v))
}

// RespirationRate applies equality check predicate on the "respiration_rate" field. It's identical to RespirationRateEQ.
func RespirationRate(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldRespirationRate, v))
}

// PulseRate applies equality check predicate on the "pulse_rate" field. It's identical to PulseRateEQ.
func PulseRate(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldPulseRate, v))
}

// BodyTemperature applies equality check predicate on the "body_temperature" field. It's identical to BodyTemperatureEQ.
func BodyTemperature(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldBodyTemperature, v))
}

// HeightCm applies equality check predicate on the "height_cm" field. It's identical to HeightCmEQ.
func HeightCm(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldHeightCm, v))
}

// WeightKg applies equality check predicate on the "weight_kg" field. It's identical to WeightKgEQ.
func WeightKg(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldWeightKg, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Vitals {
	return predicate.Vitals(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Vitals {
	return predicate.Vitals(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Vitals {
	return predicate.Vitals(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Vitals {
	return predicate.Vitals(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Vitals {
	return predicate.Vitals(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Vitals {
	return predicate.Vitals(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Vitals {
	return predicate.Vitals(sql.FieldLTE(FieldCreatedAt, v))
}

// VitalRequestIDEQ applies the EQ predicate on the "vital_request_id" field.
func VitalRequestIDEQ(v uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldVitalRequestID, v))
}

// VitalRequestIDNEQ applies the NEQ predicate on the "vital_request_id" field.
func VitalRequestIDNEQ(v uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldNEQ(FieldVitalRequestID, v))
}

// VitalRequestIDIn applies the In predicate on the "vital_request_id" field.
func VitalRequestIDIn(vs ...uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldIn(FieldVitalRequestID, vs...))
}

// VitalRequestIDNotIn applies the NotIn predicate on the "vital_request_id" field.
func VitalRequestIDNotIn(vs ...uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldNotIn(FieldVitalRequestID, vs...))
}

// VitalRequestIDGT applies the GT predicate on the "vital_request_id" field.
func VitalRequestIDGT(v uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldGT(FieldVitalRequestID, v))
}

// VitalRequestIDGTE applies the GTE predicate on the "vital_request_id" field.
func VitalRequestIDGTE(v uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldGTE(FieldVitalRequestID, v))
}

// VitalRequestIDLT applies the LT predicate on the "vital_request_id" field.
func VitalRequestIDLT(v uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldLT(FieldVitalRequestID, v))
}

// VitalRequestIDLTE applies the LTE predicate on the "vital_request_id" field.
func VitalRequestIDLTE(v uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldLTE(FieldVitalRequestID, v))
}

// NurseIDEQ applies the EQ predicate on the "nurse_id" field.
func NurseIDEQ(v uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldNurseID, v))
}

// NurseIDNEQ applies the NEQ predicate on the "nurse_id" field.
func NurseIDNEQ(v uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldNEQ(FieldNurseID, v))
}

// NurseIDIn applies the In predicate on the "nurse_id" field.
func NurseIDIn(vs ...uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldIn(FieldNurseID, vs...))
}

// NurseIDNotIn applies the NotIn predicate on the "nurse_id" field.
func NurseIDNotIn(vs ...uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldNotIn(FieldNurseID, vs...))
}

// NurseIDGT applies the GT predicate on the "nurse_id" field.
func NurseIDGT(v uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldGT(FieldNurseID, v))
}

// NurseIDGTE applies the GTE predicate on the "nurse_id" field.
func NurseIDGTE(v uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldGTE(FieldNurseID, v))
}

// NurseIDLT applies the LT predicate on the "nurse_id" field.
func NurseIDLT(v uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldLT(FieldNurseID, v))
}

// NurseIDLTE applies the LTE predicate on the "nurse_id" field.
func NurseIDLTE(v uuid.UUID) predicate.Vitals {
	return predicate.Vitals(sql.FieldLTE(FieldNurseID, v))
}

// BloodPressureEQ applies the EQ predicate on the "blood_pressure" field.
func BloodPressureEQ(v string) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldBloodPressure, v))
}

// BloodPressureNEQ applies the NEQ predicate on the "blood_pressure" field.
func BloodPressureNEQ(v string) predicate.Vitals {
	return predicate.Vitals(sql.FieldNEQ(FieldBloodPressure, v))
}

// BloodPressureIn applies the In predicate on the "blood_pressure" field.
func BloodPressureIn(vs ...string) predicate.Vitals {
	return predicate.Vitals(sql.FieldIn(FieldBloodPressure, vs...))
}

// BloodPressureNotIn applies the NotIn predicate on the "blood_pressure" field.
func BloodPressureNotIn(vs ...string) predicate.Vitals {
	return predicate.Vitals(sql.FieldNotIn(FieldBloodPressure, vs...))
}

// BloodPressureGT applies the GT predicate on the "blood_pressure" field.
func BloodPressureGT(v string) predicate.Vitals {
	return predicate.Vitals(sql.FieldGT(FieldBloodPressure, v))
}

// BloodPressureGTE applies the GTE predicate on the "blood_pressure" field.
func BloodPressureGTE(v string) predicate.Vitals {
	return predicate.Vitals(sql.FieldGTE(FieldBloodPressure, v))
}

// BloodPressureLT applies the LT predicate on the "blood_pressure" field.
func BloodPressureLT(v string) predicate.Vitals {
	return predicate.Vitals(sql.FieldLT(FieldBloodPressure, v))
}

// BloodPressureLTE applies the LTE predicate on the "blood_pressure" field.
func BloodPressureLTE(v string) predicate.Vitals {
	return predicate.Vitals(sql.FieldLTE(FieldBloodPressure, v))
}

// BloodPressureContains applies the Contains predicate on the "blood_pressure" field.
func BloodPressureContains(v string) predicate.Vitals {
	return predicate.Vitals(sql.FieldContains(FieldBloodPressure, v))
}

// BloodPressureHasPrefix applies the HasPrefix predicate on the "blood_pressure" field.
func BloodPressureHasPrefix(v string) predicate.Vitals {
	return predicate.Vitals(sql.FieldHasPrefix(FieldBloodPressure, v))
}

// BloodPressureHasSuffix applies the HasSuffix predicate on the "blood_pressure" field.
func BloodPressureHasSuffix(v string) predicate.Vitals {
	return predicate.Vitals(sql.FieldHasSuffix(FieldBloodPressure, v))
}

// BloodPressureEqualFold applies the EqualFold predicate on the "blood_pressure" field.
func BloodPressureEqualFold(v string) predicate.Vitals {
	return predicate.Vitals(sql.FieldEqualFold(FieldBloodPressure, v))
}

// BloodPressureContainsFold applies the ContainsFold predicate on the "blood_pressure" field.
func BloodPressureContainsFold(v string) predicate.Vitals {
	return predicate.Vitals(sql.FieldContainsFold(FieldBloodPressure, v))
}

// RespirationRateEQ applies the EQ predicate on the "respiration_rate" field.
func RespirationRateEQ(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldRespirationRate, v))
}

// RespirationRateNEQ applies the NEQ predicate on the "respiration_rate" field.
func RespirationRateNEQ(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldNEQ(FieldRespirationRate, v))
}

// RespirationRateIn applies the In predicate on the "respiration_rate" field.
func RespirationRateIn(vs ...float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldIn(FieldRespirationRate, vs...))
}

// RespirationRateNotIn applies the NotIn predicate on the "respiration_rate" field.
func RespirationRateNotIn(vs ...float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldNotIn(FieldRespirationRate, vs...))
}

// RespirationRateGT applies the GT predicate on the "respiration_rate" field.
func RespirationRateGT(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldGT(FieldRespirationRate, v))
}

// RespirationRateGTE applies the GTE predicate on the "respiration_rate" field.
func RespirationRateGTE(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldGTE(FieldRespirationRate, v))
}

// RespirationRateLT applies the LT predicate on the "respiration_rate" field.
func RespirationRateLT(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldLT(FieldRespirationRate, v))
}

// RespirationRateLTE applies the LTE predicate on the "respiration_rate" field.
func RespirationRateLTE(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldLTE(FieldRespirationRate, v))
}

// PulseRateEQ applies the EQ predicate on the "pulse_rate" field.
func PulseRateEQ(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldPulseRate, v))
}

// PulseRateNEQ applies the NEQ predicate on the "pulse_rate" field.
func PulseRateNEQ(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldNEQ(FieldPulseRate, v))
}

// PulseRateIn applies the In predicate on the "pulse_rate" field.
func PulseRateIn(vs ...float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldIn(FieldPulseRate, vs...))
}

// PulseRateNotIn applies the NotIn predicate on the "pulse_rate" field.
func PulseRateNotIn(vs ...float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldNotIn(FieldPulseRate, vs...))
}

// PulseRateGT applies the GT predicate on the "pulse_rate" field.
func PulseRateGT(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldGT(FieldPulseRate, v))
}

// PulseRateGTE applies the GTE predicate on the "pulse_rate" field.
func PulseRateGTE(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldGTE(FieldPulseRate, v))
}

// PulseRateLT applies the LT predicate on the "pulse_rate" field.
func PulseRateLT(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldLT(FieldPulseRate, v))
}

// PulseRateLTE applies the LTE predicate on the "pulse_rate" field.
func PulseRateLTE(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldLTE(FieldPulseRate, v))
}

// BodyTemperatureEQ applies the EQ predicate on the "body_temperature" field.
func BodyTemperatureEQ(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldBodyTemperature, v))
}

// BodyTemperatureNEQ applies the NEQ predicate on the "body_temperature" field.
func BodyTemperatureNEQ(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldNEQ(FieldBodyTemperature, v))
}

// BodyTemperatureIn applies the In predicate on the "body_temperature" field.
func BodyTemperatureIn(vs ...float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldIn(FieldBodyTemperature, vs...))
}

// BodyTemperatureNotIn applies the NotIn predicate on the "body_temperature" field.
func BodyTemperatureNotIn(vs ...float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldNotIn(FieldBodyTemperature, vs...))
}

// BodyTemperatureGT applies the GT predicate on the "body_temperature" field.
func BodyTemperatureGT(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldGT(FieldBodyTemperature, v))
}

// BodyTemperatureGTE applies the GTE predicate on the "body_temperature" field.
func BodyTemperatureGTE(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldGTE(FieldBodyTemperature, v))
}

// BodyTemperatureLT applies the LT predicate on the "body_temperature" field.
func BodyTemperatureLT(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldLT(FieldBodyTemperature, v))
}

// BodyTemperatureLTE applies the LTE predicate on the "body_temperature" field.
func BodyTemperatureLTE(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldLTE(FieldBodyTemperature, v))
}

// HeightCmEQ applies the EQ predicate on the "height_cm" field.
func HeightCmEQ(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldHeightCm, v))
}

// HeightCmNEQ applies the NEQ predicate on the "height_cm" field.
func HeightCmNEQ(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldNEQ(FieldHeightCm, v))
}

// HeightCmIn applies the In predicate on the "height_cm" field.
func HeightCmIn(vs ...float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldIn(FieldHeightCm, vs...))
}

// HeightCmNotIn applies the NotIn predicate on the "height_cm" field.
func HeightCmNotIn(vs ...float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldNotIn(FieldHeightCm, vs...))
}

// HeightCmGT applies the GT predicate on the "height_cm" field.
func HeightCmGT(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldGT(FieldHeightCm, v))
}

// HeightCmGTE applies the GTE predicate on the "height_cm" field.
func HeightCmGTE(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldGTE(FieldHeightCm, v))
}

// HeightCmLT applies the LT predicate on the "height_cm" field.
func HeightCmLT(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldLT(FieldHeightCm, v))
}

// HeightCmLTE applies the LTE predicate on the "height_cm" field.
func HeightCmLTE(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldLTE(FieldHeightCm, v))
}

// HeightCmIsNil applies the IsNil predicate on the "height_cm" field.
func HeightCmIsNil() predicate.Vitals {
	return predicate.Vitals(sql.FieldIsNull(FieldHeightCm))
}

// HeightCmNotNil applies the NotNil predicate on the "height_cm" field.
func HeightCmNotNil() predicate.Vitals {
	return predicate.Vitals(sql.FieldNotNull(FieldHeightCm))
}

// WeightKgEQ applies the EQ predicate on the "weight_kg" field.
func WeightKgEQ(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldEQ(FieldWeightKg, v))
}

// WeightKgNEQ applies the NEQ predicate on the "weight_kg" field.
func WeightKgNEQ(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldNEQ(FieldWeightKg, v))
}

// WeightKgIn applies the In predicate on the "weight_kg" field.
func WeightKgIn(vs ...float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldIn(FieldWeightKg, vs...))
}

// WeightKgNotIn applies the NotIn predicate on the "weight_kg" field.
func WeightKgNotIn(vs ...float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldNotIn(FieldWeightKg, vs...))
}

// WeightKgGT applies the GT predicate on the "weight_kg" field.
func WeightKgGT(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldGT(FieldWeightKg, v))
}

// WeightKgGTE applies the GTE predicate on the "weight_kg" field.
func WeightKgGTE(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldGTE(FieldWeightKg, v))
}

// WeightKgLT applies the LT predicate on the "weight_kg" field.
func WeightKgLT(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldLT(FieldWeightKg, v))
}

// WeightKgLTE applies the LTE predicate on the "weight_kg" field.
func WeightKgLTE(v float64) predicate.Vitals {
	return predicate.Vitals(sql.FieldLTE(FieldWeightKg, v))
}

// WeightKgIsNil applies the IsNil predicate on the "weight_kg" field.
func WeightKgIsNil() predicate.Vitals {
	return predicate.Vitals(sql.FieldIsNull(FieldWeightKg))
}

// WeightKgNotNil applies the NotNil predicate on the "weight_kg" field.
func WeightKgNotNil() predicate.Vitals {
	return predicate.Vitals(sql.FieldNotNull(FieldWeightKg))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Vitals) predicate.Vitals {
	return predicate.Vitals(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Vitals) predicate.Vitals {
	return predicate.Vitals(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Vitals) predicate.Vitals {
	return predicate.Vitals(sql.NotPredicates(p))
}
