package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Topic maps a lesson unit to its course level (A1, A2, B1, ...).
type Topic struct {
	ent.Schema
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("level").NotEmpty(),
		field.String("title").Default(""),
		field.Int("position").Default(0),
	}
}

func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level"),
	}
}
