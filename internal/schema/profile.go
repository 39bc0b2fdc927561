package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Profile carries the person-level attributes of a user and its single
// operational role. Role is fixed at provisioning time.
type Profile struct {
	ent.Schema
}

func (Profile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id (one profile per user)"),

		field.String("full_name").
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20).
			Comment("E.164 formatted"),

		field.Enum("gender").
			Values("M", "F", "O").
			Optional().
			Nillable(),

		field.String("picture_key").
			Optional().
			Nillable().
			Comment("S3 object key of the profile picture"),

		field.Enum("role").
			Values("PATIENT", "DOCTOR", "NURSE", "LAB", "ADMIN").
			Immutable(),

		field.Bool("active").
			Default(true).
			Comment("Inactive staff are excluded from assignment"),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role", "active"),
	}
}
