package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// MedicalReport is the doctor's closing summary. One per appointment,
// creating it completes the appointment.
type MedicalReport struct {
	ent.Schema
}

func (MedicalReport) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (MedicalReport) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("appointment_id", uuid.UUID{}).
			Unique().
			Comment("FK → appointments.id, uniqueness enforces one report per appointment"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → profiles.id (role DOCTOR)"),

		field.Text("medical_condition"),

		field.Text("drug_prescription").
			Optional().
			Nillable(),

		field.Text("advice").
			Optional().
			Nillable(),

		field.Time("next_appointment").
			Optional().
			Nillable(),
	}
}
