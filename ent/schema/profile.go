package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Profile is the remote per-user progress projection.
type Profile struct {
	ent.Schema
}

func (Profile) Mixin() []ent.Mixin {
	return []ent.Mixin{TimestampsMixin{}}
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Int("xp").
			NonNegative().
			Default(0),
		field.Int("streak").
			NonNegative().
			Default(0),
		field.Time("last_activity").
			Default(time.Now),
	}
}
