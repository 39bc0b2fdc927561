package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is the root of the clinical workflow. Its status is derived
// from child requests and never written outside the workflow service.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → profiles.id (role PATIENT)"),

		field.UUID("doctor_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → profiles.id (role DOCTOR), null when no doctor was available"),

		field.String("name").
			MaxLen(255),

		field.Int("age").
			Positive(),

		field.Enum("sex").
			Values("M", "F", "O"),

		field.String("address").
			MaxLen(500),

		field.Text("message").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("PENDING", "IN_REVIEW", "AWAITING_RESULTS", "COMPLETED", "CANCELLED").
			Default("PENDING"),

		field.Time("booked_at").
			Immutable(),

		field.Text("cancellation_reason").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "status"),
		index.Fields("doctor_id", "status"),
	}
}
