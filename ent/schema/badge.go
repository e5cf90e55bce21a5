package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Badge is one entry of the badge catalog.
type Badge struct {
	ent.Schema
}

func (Badge) Fields() []ent.Field {
	return []ent.Field{
		field.String("badge_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("icon").NotEmpty(),
		field.String("name").NotEmpty().
			Comment("Localized display name"),
		field.String("description").Default(""),
		field.Enum("category").
			Values("beginner", "progress", "mastery", "streak", "special"),
		field.Int("sort_order").Default(0),
	}
}

func (Badge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sort_order"),
	}
}
