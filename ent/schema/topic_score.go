package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicScore holds a user's latest and best result for one topic.
type TopicScore struct {
	ent.Schema
}

func (TopicScore) Mixin() []ent.Mixin {
	return []ent.Mixin{TimestampsMixin{}}
}

func (TopicScore) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty().Immutable(),
		field.String("topic_id").NotEmpty().Immutable(),
		field.Int("score").
			Range(0, 100).
			Comment("Percentage of the most recent attempt"),
		field.Int("best_score").
			Range(0, 100),
		field.Int("attempts").
			Positive(),
		field.Int("xp_earned").
			NonNegative().
			Default(0).
			Comment("XP granted by the most recent attempt"),
		field.Time("last_attempted").
			Optional().
			Nillable(),
	}
}

func (TopicScore) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id").Unique(),
	}
}
