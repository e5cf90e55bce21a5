package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WeeklyGoal aggregates a user's study for one week, starting Monday.
type WeeklyGoal struct {
	ent.Schema
}

func (WeeklyGoal) Mixin() []ent.Mixin {
	return []ent.Mixin{TimestampsMixin{}}
}

func (WeeklyGoal) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty().Immutable(),
		field.Time("week_start").
			Immutable().
			Comment("Local midnight of the week's Monday"),
		field.Int("target_xp").Positive(),
		field.Int("xp_earned").NonNegative().Default(0),
		field.Int("topics_completed").NonNegative().Default(0),
	}
}

func (WeeklyGoal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "week_start").Unique(),
	}
}
