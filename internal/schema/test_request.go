package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TestRequest asks the lab for a set of named tests. Test names are stored
// normalized (trimmed, lower-cased, deduplicated).
type TestRequest struct {
	ent.Schema
}

func (TestRequest) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TestRequest) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("appointment_id", uuid.UUID{}).
			Comment("FK → appointments.id"),

		field.UUID("requested_by", uuid.UUID{}).
			Comment("FK → profiles.id (role DOCTOR)"),

		field.UUID("assigned_to", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → profiles.id (role LAB), null when no lab scientist was available"),

		field.Strings("tests").
			Comment("Normalized requested test names"),

		field.Text("note").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("PENDING", "IN_PROGRESS", "DONE", "CANCELLED").
			Default("PENDING"),
	}
}

func (TestRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("appointment_id", "status"),
		index.Fields("assigned_to", "status"),
	}
}
