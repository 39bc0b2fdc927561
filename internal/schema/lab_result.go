package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// LabResult is an append-only record of a single test outcome.
type LabResult struct {
	ent.Schema
}

func (LabResult) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (LabResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("test_request_id", uuid.UUID{}).
			Comment("FK → test_requests.id"),

		field.UUID("lab_scientist_id", uuid.UUID{}).
			Comment("FK → profiles.id (role LAB)"),

		field.String("test_name").
			MaxLen(255).
			Comment("Normalized test name"),

		field.Text("result"),

		field.String("units").
			Optional().
			Nillable().
			MaxLen(50),

		field.String("reference_range").
			Optional().
			Nillable().
			MaxLen(100),
	}
}

func (LabResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("test_request_id"),
	}
}
