package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserBadge records that a badge was awarded to a user. Rows are never
// updated; the unique index makes awarding idempotent.
type UserBadge struct {
	ent.Schema
}

func (UserBadge) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty().Immutable(),
		field.String("badge_id").NotEmpty().Immutable(),
		field.Time("unlocked_at").
			Default(time.Now).
			Immutable(),
	}
}

func (UserBadge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "badge_id").Unique(),
		index.Fields("user_id"),
	}
}
