// Code generated by ent, DO NOT EDIT.

package medicalreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medreach/hospital_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldCreatedAt, v))
}

// AppointmentID applies equality check predicate on the "appointment_id" field. It's identical to AppointmentIDEQ.
func AppointmentID(v uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldAppointmentID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldDoctorID, v))
}

// MedicalCondition applies equality check predicate on the "medical_condition" field. It's identical to MedicalConditionEQ.
func MedicalCondition(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldMedicalCondition, v))
}

// DrugPrescription applies equality check predicate on the "drug_prescription" field. It's identical to DrugPrescriptionEQ.
func DrugPrescription(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldDrugPrescription, v))
}

// Advice applies equality check predicate on the "advice" field. It's identical to AdviceEQ.
func Advice(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldAdvice, v))
}

// NextAppointment applies equality check predicate on the "next_appointment" field. It's identical to NextAppointmentEQ.
func NextAppointment(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldNextAppointment, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLTE(FieldCreatedAt, v))
}

// AppointmentIDEQ applies the EQ predicate on the "appointment_id" field.
func AppointmentIDEQ(v uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldAppointmentID, v))
}

// AppointmentIDNEQ applies the NEQ predicate on the "appointment_id" field.
func AppointmentIDNEQ(v uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNEQ(FieldAppointmentID, v))
}

// AppointmentIDIn applies the In predicate on the "appointment_id" field.
func AppointmentIDIn(vs ...uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIn(FieldAppointmentID, vs...))
}

// AppointmentIDNotIn applies the NotIn predicate on the "appointment_id" field.
func AppointmentIDNotIn(vs ...uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotIn(FieldAppointmentID, vs...))
}

// AppointmentIDGT applies the GT predicate on the "appointment_id" field.
func AppointmentIDGT(v uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGT(FieldAppointmentID, v))
}

// AppointmentIDGTE applies the GTE predicate on the "appointment_id" field.
func AppointmentIDGTE(v uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGTE(FieldAppointmentID, v))
}

// AppointmentIDLT applies the LT predicate on the "appointment_id" field.
func AppointmentIDLT(v uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLT(FieldAppointmentID, v))
}

// AppointmentIDLTE applies the LTE predicate on the "appointment_id" field.
func AppointmentIDLTE(v uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLTE(FieldAppointmentID, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLTE(FieldDoctorID, v))
}

// MedicalConditionEQ applies the EQ predicate on the "medical_condition" field.
func MedicalConditionEQ(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldMedicalCondition, v))
}

// MedicalConditionNEQ applies the NEQ predicate on the "medical_condition" field.
func MedicalConditionNEQ(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNEQ(FieldMedicalCondition, v))
}

// MedicalConditionIn applies the In predicate on the "medical_condition" field.
func MedicalConditionIn(vs ...string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIn(FieldMedicalCondition, vs...))
}

// MedicalConditionNotIn applies the NotIn predicate on the "medical_condition" field.
func MedicalConditionNotIn(vs ...string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotIn(FieldMedicalCondition, vs...))
}

// MedicalConditionGT applies the GT predicate on the "medical_condition" field.
func MedicalConditionGT(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGT(FieldMedicalCondition, v))
}

// MedicalConditionGTE applies the GTE predicate on the "medical_condition" field.
func MedicalConditionGTE(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGTE(FieldMedicalCondition, v))
}

// MedicalConditionLT applies the LT predicate on the "medical_condition" field.
func MedicalConditionLT(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLT(FieldMedicalCondition, v))
}

// MedicalConditionLTE applies the LTE predicate on the "medical_condition" field.
func MedicalConditionLTE(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLTE(FieldMedicalCondition, v))
}

// MedicalConditionContains applies the Contains predicate on the "medical_condition" field.
func MedicalConditionContains(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldContains(FieldMedicalCondition, v))
}

// MedicalConditionHasPrefix applies the HasPrefix predicate on the "medical_condition" field.
func MedicalConditionHasPrefix(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldHasPrefix(FieldMedicalCondition, v))
}

// MedicalConditionHasSuffix applies the HasSuffix predicate on the "medical_condition" field.
func MedicalConditionHasSuffix(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldHasSuffix(FieldMedicalCondition, v))
}

// MedicalConditionEqualFold applies the EqualFold predicate on the "medical_condition" field.
func MedicalConditionEqualFold(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEqualFold(FieldMedicalCondition, v))
}

// MedicalConditionContainsFold applies the ContainsFold predicate on the "medical_condition" field.
func MedicalConditionContainsFold(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldContainsFold(FieldMedicalCondition, v))
}

// DrugPrescriptionEQ applies the EQ predicate on the "drug_prescription" field.
func DrugPrescriptionEQ(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldDrugPrescription, v))
}

// DrugPrescriptionNEQ applies the NEQ predicate on the "drug_prescription" field.
func DrugPrescriptionNEQ(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNEQ(FieldDrugPrescription, v))
}

// DrugPrescriptionIn applies the In predicate on the "drug_prescription" field.
func DrugPrescriptionIn(vs ...string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIn(FieldDrugPrescription, vs...))
}

// DrugPrescriptionNotIn applies the NotIn predicate on the "drug_prescription" field.
func DrugPrescriptionNotIn(vs ...string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotIn(FieldDrugPrescription, vs...))
}

// DrugPrescriptionGT applies the GT predicate on the "drug_prescription" field.
func DrugPrescriptionGT(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGT(FieldDrugPrescription, v))
}

// DrugPrescriptionGTE applies the GTE predicate on the "drug_prescription" field.
func DrugPrescriptionGTE(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGTE(FieldDrugPrescription, v))
}

// DrugPrescriptionLT applies the LT predicate on the "drug_prescription" field.
func DrugPrescriptionLT(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLT(FieldDrugPrescription, v))
}

// DrugPrescriptionLTE applies the LTE predicate on the "drug_prescription" field.
func DrugPrescriptionLTE(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLTE(FieldDrugPrescription, v))
}

// DrugPrescriptionContains applies the Contains predicate on the "drug_prescription" field.
func DrugPrescriptionContains(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldContains(FieldDrugPrescription, v))
}

// DrugPrescriptionHasPrefix applies the HasPrefix predicate on the "drug_prescription" field.
func DrugPrescriptionHasPrefix(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldHasPrefix(FieldDrugPrescription, v))
}

// DrugPrescriptionHasSuffix applies the HasSuffix predicate on the "drug_prescription" field.
func DrugPrescriptionHasSuffix(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldHasSuffix(FieldDrugPrescription, v))
}

// DrugPrescriptionIsNil applies the IsNil predicate on the "drug_prescription" field.
func DrugPrescriptionIsNil() predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIsNull(FieldDrugPrescription))
}

// DrugPrescriptionNotNil applies the NotNil predicate on the "drug_prescription" field.
func DrugPrescriptionNotNil() predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotNull(FieldDrugPrescription))
}

// DrugPrescriptionEqualFold applies the EqualFold predicate on the "drug_prescription" field.
func DrugPrescriptionEqualFold(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEqualFold(FieldDrugPrescription, v))
}

// DrugPrescriptionContainsFold applies the ContainsFold predicate on the "drug_prescription" field.
func DrugPrescriptionContainsFold(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldContainsFold(FieldDrugPrescription, v))
}

// AdviceEQ applies the EQ predicate on the "advice" field.
func AdviceEQ(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldAdvice, v))
}

// AdviceNEQ applies the NEQ predicate on the "advice" field.
func AdviceNEQ(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNEQ(FieldAdvice, v))
}

// AdviceIn applies the In predicate on the "advice" field.
func AdviceIn(vs ...string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIn(FieldAdvice, vs...))
}

// AdviceNotIn applies the NotIn predicate on the "advice" field.
func AdviceNotIn(vs ...string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotIn(FieldAdvice, vs...))
}

// AdviceGT applies the GT predicate on the "advice" field.
func AdviceGT(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGT(FieldAdvice, v))
}

// AdviceGTE applies the GTE predicate on the "advice" field.
func AdviceGTE(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGTE(FieldAdvice, v))
}

// AdviceLT applies the LT predicate on the "advice" field.
func AdviceLT(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLT(FieldAdvice, v))
}

// AdviceLTE applies the LTE predicate on the "advice" field.
func AdviceLTE(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLTE(FieldAdvice, v))
}

// AdviceContains applies the Contains predicate on the "advice" field.
func AdviceContains(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldContains(FieldAdvice, v))
}

// AdviceHasPrefix applies the HasPrefix predicate on the "advice" field.
func AdviceHasPrefix(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldHasPrefix(FieldAdvice, v))
}

// AdviceHasSuffix applies the HasSuffix predicate on the "advice" field.
func AdviceHasSuffix(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldHasSuffix(FieldAdvice, v))
}

// AdviceIsNil applies the IsNil predicate on the "advice" field.
func AdviceIsNil() predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIsNull(FieldAdvice))
}

// AdviceNotNil applies the NotNil predicate on the "advice" field.
func AdviceNotNil() predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotNull(FieldAdvice))
}

// AdviceEqualFold applies the EqualFold predicate on the "advice" field.
func AdviceEqualFold(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEqualFold(FieldAdvice, v))
}

// AdviceContainsFold applies the ContainsFold predicate on the "advice" field.
func AdviceContainsFold(v string) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldContainsFold(FieldAdvice, v))
}

// NextAppointmentEQ applies the EQ predicate on the "next_appointment" field.
func NextAppointmentEQ(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldEQ(FieldNextAppointment, v))
}

// NextAppointmentNEQ applies the NEQ predicate on the "next_appointment" field.
func NextAppointmentNEQ(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNEQ(FieldNextAppointment, v))
}

// NextAppointmentIn applies the In predicate on the "next_appointment" field.
func NextAppointmentIn(vs ...time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIn(FieldNextAppointment, vs...))
}

// NextAppointmentNotIn applies the NotIn predicate on the "next_appointment" field.
func NextAppointmentNotIn(vs ...time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotIn(FieldNextAppointment, vs...))
}

// NextAppointmentGT applies the GT predicate on the "next_appointment" field.
func NextAppointmentGT(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGT(FieldNextAppointment, v))
}

// NextAppointmentGTE applies the GTE predicate on the "next_appointment" field.
func NextAppointmentGTE(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldGTE(FieldNextAppointment, v))
}

// NextAppointmentLT applies the LT predicate on the "next_appointment" field.
func NextAppointmentLT(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLT(FieldNextAppointment, v))
}

// NextAppointmentLTE applies the LTE predicate on the "next_appointment" field.
func NextAppointmentLTE(v time.Time) predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldLTE(FieldNextAppointment, v))
}

// NextAppointmentIsNil applies the IsNil predicate on the "next_appointment" field.
func NextAppointmentIsNil() predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldIsNull(FieldNextAppointment))
}

// NextAppointmentNotNil applies the NotNil predicate on the "next_appointment" field.
func NextAppointmentNotNil() predicate.MedicalReport {
	return predicate.MedicalReport(sql.FieldNotNull(FieldNextAppointment))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MedicalReport) predicate.MedicalReport {
	return predicate.MedicalReport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MedicalReport) predicate.MedicalReport {
	return predicate.MedicalReport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MedicalReport) predicate.MedicalReport {
	return predicate.MedicalReport(sql.NotPredicates(p))
}
