package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// BlogPost is a public health article authored by an admin.
type BlogPost struct {
	ent.Schema
}

func (BlogPost) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (BlogPost) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			MaxLen(255),

		field.String("slug").
			Unique().
			MaxLen(280).
			Comment("Derived from title"),

		field.String("description").
			MaxLen(500),

		field.Text("content"),

		field.UUID("author_id", uuid.UUID{}).
			Comment("FK → profiles.id (role ADMIN)"),

		field.String("featured_image_key").
			Optional().
			Nillable().
			Comment("S3 object key"),

		field.Bool("published").
			Default(false),

		field.Time("published_at").
			Optional().
			Nillable().
			Comment("Set on first publish, never cleared"),
	}
}

func (BlogPost) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("published", "published_at"),
		index.Fields("author_id"),
	}
}
