// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// BlogPost is the predicate function for blogpost builders.
type BlogPost func(*sql.Selector)

// LabResult is the predicate function for labresult builders.
type LabResult func(*sql.Selector)

// MedicalReport is the predicate function for medicalreport builders.
type MedicalReport func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// TestRequest is the predicate function for testrequest builders.
type TestRequest func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// VitalRequest is the predicate function for vitalrequest builders.
type VitalRequest func(*sql.Selector)

// Vitals is the predicate function for vitals builders.
type Vitals func(*sql.Selector)
