// Code generated by ent, DO NOT EDIT.

package labresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medreach/hospital_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldCreatedAt, v))
}

// TestRequestID applies equality check predicate on the "test_request_id" field. It's identical to TestRequestIDEQ.
func TestRequestID(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldTestRequestID, v))
}

// LabScientistID applies equality check predicate on the "lab_scientist_id" field. It's identical to LabScientistIDEQ.
func LabScientistID(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldLabScientistID, v))
}

// TestName applies equality check predicate on the "test_name" field. It's identical to TestNameEQ.
func TestName(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldTestName, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldResult, v))
}

// Units applies equality check predicate on the "units" field. It's identical to UnitsEQ.
func Units(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldUnits, v))
}

// ReferenceRange applies equality check predicate on the "reference_range" field. It's identical to ReferenceRangeEQ.
func ReferenceRange(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldReferenceRange, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldCreatedAt, v))
}

// TestRequestIDEQ applies the EQ predicate on the "test_request_id" field.
func TestRequestIDEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldTestRequestID, v))
}

// TestRequestIDNEQ applies the NEQ predicate on the "test_request_id" field.
func TestRequestIDNEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldTestRequestID, v))
}

// TestRequestIDIn applies the In predicate on the "test_request_id" field.
func TestRequestIDIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldTestRequestID, vs...))
}

// TestRequestIDNotIn applies the NotIn predicate on the "test_request_id" field.
func TestRequestIDNotIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldTestRequestID, vs...))
}

// TestRequestIDGT applies the GT predicate on the "test_request_id" field.
func TestRequestIDGT(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldTestRequestID, v))
}

// TestRequestIDGTE applies the GTE predicate on the "test_request_id" field.
func TestRequestIDGTE(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldTestRequestID, v))
}

// TestRequestIDLT applies the LT predicate on the "test_request_id" field.
func TestRequestIDLT(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldTestRequestID, v))
}

// TestRequestIDLTE applies the LTE predicate on the "test_request_id" field.
func TestRequestIDLTE(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldTestRequestID, v))
}

// LabScientistIDEQ applies the EQ predicate on the "lab_scientist_id" field.
func LabScientistIDEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldLabScientistID, v))
}

// LabScientistIDNEQ applies the NEQ predicate on the "lab_scientist_id" field.
func LabScientistIDNEQ(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldLabScientistID, v))
}

// LabScientistIDIn applies the In predicate on the "lab_scientist_id" field.
func LabScientistIDIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldLabScientistID, vs...))
}

// LabScientistIDNotIn applies the NotIn predicate on the "lab_scientist_id" field.
func LabScientistIDNotIn(vs ...uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldLabScientistID, vs...))
}

// LabScientistIDGT applies the GT predicate on the "lab_scientist_id" field.
func LabScientistIDGT(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldLabScientistID, v))
}

// LabScientistIDGTE applies the GTE predicate on the "lab_scientist_id" field.
func LabScientistIDGTE(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldLabScientistID, v))
}

// LabScientistIDLT applies the LT predicate on the "lab_scientist_id" field.
func LabScientistIDLT(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldLabScientistID, v))
}

// LabScientistIDLTE applies the LTE predicate on the "lab_scientist_id" field.
func LabScientistIDLTE(v uuid.UUID) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldLabScientistID, v))
}

// TestNameEQ applies the EQ predicate on the "test_name" field.
func TestNameEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldTestName, v))
}

// TestNameNEQ applies the NEQ predicate on the "test_name" field.
func TestNameNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldTestName, v))
}

// TestNameIn applies the In predicate on the "test_name" field.
func TestNameIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldTestName, vs...))
}

// TestNameNotIn applies the NotIn predicate on the "test_name" field.
func TestNameNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldTestName, vs...))
}

// TestNameGT applies the GT predicate on the "test_name" field.
func TestNameGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldTestName, v))
}

// TestNameGTE applies the GTE predicate on the "test_name" field.
func TestNameGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldTestName, v))
}

// TestNameLT applies the LT predicate on the "test_name" field.
func TestNameLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldTestName, v))
}

// TestNameLTE applies the LTE predicate on the "test_name" field.
func TestNameLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldTestName, v))
}

// TestNameContains applies the Contains predicate on the "test_name" field.
func TestNameContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldTestName, v))
}

// TestNameHasPrefix applies the HasPrefix predicate on the "test_name" field.
func TestNameHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldTestName, v))
}

// TestNameHasSuffix applies the HasSuffix predicate on the "test_name" field.
func TestNameHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldTestName, v))
}

// TestNameEqualFold applies the EqualFold predicate on the "test_name" field.
func TestNameEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldTestName, v))
}

// TestNameContainsFold applies the ContainsFold predicate on the "test_name" field.
func TestNameContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldTestName, v))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldResult, v))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldResult, v))
}

// UnitsEQ applies the EQ predicate on the "units" field.
func UnitsEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldUnits, v))
}

// UnitsNEQ applies the NEQ predicate on the "units" field.
func UnitsNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldUnits, v))
}

// UnitsIn applies the In predicate on the "units" field.
func UnitsIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldUnits, vs...))
}

// UnitsNotIn applies the NotIn predicate on the "units" field.
func UnitsNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldUnits, vs...))
}

// UnitsGT applies the GT predicate on the "units" field.
func UnitsGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldUnits, v))
}

// UnitsGTE applies the GTE predicate on the "units" field.
func UnitsGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldUnits, v))
}

// UnitsLT applies the LT predicate on the "units" field.
func UnitsLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldUnits, v))
}

// UnitsLTE applies the LTE predicate on the "units" field.
func UnitsLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldUnits, v))
}

// UnitsContains applies the Contains predicate on the "units" field.
func UnitsContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldUnits, v))
}

// UnitsHasPrefix applies the HasPrefix predicate on the "units" field.
func UnitsHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldUnits, v))
}

// UnitsHasSuffix applies the HasSuffix predicate on the "units" field.
func UnitsHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldUnits, v))
}

// UnitsIsNil applies the IsNil predicate on the "units" field.
func UnitsIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldUnits))
}

// UnitsNotNil applies the NotNil predicate on the "units" field.
func UnitsNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldUnits))
}

// UnitsEqualFold applies the EqualFold predicate on the "units" field.
func UnitsEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldUnits, v))
}

// UnitsContainsFold applies the ContainsFold predicate on the "units" field.
func UnitsContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldUnits, v))
}

// ReferenceRangeEQ applies the EQ predicate on the "reference_range" field.
func ReferenceRangeEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEQ(FieldReferenceRange, v))
}

// ReferenceRangeNEQ applies the NEQ predicate on the "reference_range" field.
func ReferenceRangeNEQ(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNEQ(FieldReferenceRange, v))
}

// ReferenceRangeIn applies the In predicate on the "reference_range" field.
func ReferenceRangeIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldIn(FieldReferenceRange, vs...))
}

// ReferenceRangeNotIn applies the NotIn predicate on the "reference_range" field.
func ReferenceRangeNotIn(vs ...string) predicate.LabResult {
	return predicate.LabResult(sql.FieldNotIn(FieldReferenceRange, vs...))
}

// ReferenceRangeGT applies the GT predicate on the "reference_range" field.
func ReferenceRangeGT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGT(FieldReferenceRange, v))
}

// ReferenceRangeGTE applies the GTE predicate on the "reference_range" field.
func ReferenceRangeGTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldGTE(FieldReferenceRange, v))
}

// ReferenceRangeLT applies the LT predicate on the "reference_range" field.
func ReferenceRangeLT(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLT(FieldReferenceRange, v))
}

// ReferenceRangeLTE applies the LTE predicate on the "reference_range" field.
func ReferenceRangeLTE(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldLTE(FieldReferenceRange, v))
}

// ReferenceRangeContains applies the Contains predicate on the "reference_range" field.
func ReferenceRangeContains(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContains(FieldReferenceRange, v))
}

// ReferenceRangeHasPrefix applies the HasPrefix predicate on the "reference_range" field.
func ReferenceRangeHasPrefix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasPrefix(FieldReferenceRange, v))
}

// ReferenceRangeHasSuffix applies the HasSuffix predicate on the "reference_range" field.
func ReferenceRangeHasSuffix(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldHasSuffix(FieldReferenceRange, v))
}

// ReferenceRangeIsNil applies the IsNil predicate on the "reference_range" field.
func ReferenceRangeIsNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldIsNull(FieldReferenceRange))
}

// ReferenceRangeNotNil applies the NotNil predicate on the "reference_range" field.
func ReferenceRangeNotNil() predicate.LabResult {
	return predicate.LabResult(sql.FieldNotNull(FieldReferenceRange))
}

// ReferenceRangeEqualFold applies the EqualFold predicate on the "reference_range" field.
func ReferenceRangeEqualFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldEqualFold(FieldReferenceRange, v))
}

// ReferenceRangeContainsFold applies the ContainsFold predicate on the "reference_range" field.
func ReferenceRangeContainsFold(v string) predicate.LabResult {
	return predicate.LabResult(sql.FieldContainsFold(FieldReferenceRange, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LabResult) predicate.LabResult {
	return predicate.LabResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LabResult) predicate.LabResult {
	return predicate.LabResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LabResult) predicate.LabResult {
	return predicate.LabResult(sql.NotPredicates(p))
}
