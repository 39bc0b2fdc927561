package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Vitals is an append-only record of a vital-sign reading. The newest entry
// for a request is the authoritative one.
type Vitals struct {
	ent.Schema
}

func (Vitals) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Vitals) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("vital_request_id", uuid.UUID{}).
			Comment("FK → vital_requests.id"),

		field.UUID("nurse_id", uuid.UUID{}).
			Comment("FK → profiles.id (role NURSE)"),

		field.String("blood_pressure").
			MaxLen(20).
			Comment("e.g. 120/80"),

		field.Float("respiration_rate"),

		field.Float("pulse_rate"),

		field.Float("body_temperature").
			Comment("Degrees Celsius"),

		field.Float("height_cm").
			Optional().
			Nillable(),

		field.Float("weight_kg").
			Optional().
			Nillable(),
	}
}

func (Vitals) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("vital_request_id"),
	}
}
