package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// VitalRequest asks nursing staff to record a patient's vital signs.
type VitalRequest struct {
	ent.Schema
}

func (VitalRequest) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (VitalRequest) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("appointment_id", uuid.UUID{}).
			Comment("FK → appointments.id"),

		field.UUID("requested_by", uuid.UUID{}).
			Comment("FK → profiles.id (role DOCTOR)"),

		field.UUID("assigned_to", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → profiles.id (role NURSE), null when no nurse was available"),

		field.Text("note").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("PENDING", "IN_PROGRESS", "DONE", "CANCELLED").
			Default("PENDING"),
	}
}

func (VitalRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("appointment_id", "status"),
		index.Fields("assigned_to", "status"),
	}
}
