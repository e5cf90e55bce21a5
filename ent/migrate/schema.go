// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BadgesColumns holds the columns for the "badges" table.
	BadgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "badge_id", Type: field.TypeString, Unique: true},
		{Name: "icon", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"beginner", "progress", "mastery", "streak", "special"}},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
	}
	// BadgesTable holds the schema information for the "badges" table.
	BadgesTable = &schema.Table{
		Name:       "badges",
		Columns:    BadgesColumns,
		PrimaryKey: []*schema.Column{BadgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "badge_sort_order",
				Unique:  false,
				Columns: []*schema.Column{BadgesColumns[6]},
			},
		},
	}
	// DeviceRecordsColumns holds the columns for the "device_records" table.
	DeviceRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DeviceRecordsTable holds the schema information for the "device_records" table.
	DeviceRecordsTable = &schema.Table{
		Name:       "device_records",
		Columns:    DeviceRecordsColumns,
		PrimaryKey: []*schema.Column{DeviceRecordsColumns[0]},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "xp", Type: field.TypeInt, Default: 0},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "last_activity", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[2]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic_id", Type: field.TypeString, Unique: true},
		{Name: "level", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "position", Type: field.TypeInt, Default: 0},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topic_level",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[2]},
			},
		},
	}
	// TopicScoresColumns holds the columns for the "topic_scores" table.
	TopicScoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "best_score", Type: field.TypeInt},
		{Name: "attempts", Type: field.TypeInt},
		{Name: "xp_earned", Type: field.TypeInt, Default: 0},
		{Name: "last_attempted", Type: field.TypeTime, Nullable: true},
	}
	// TopicScoresTable holds the schema information for the "topic_scores" table.
	TopicScoresTable = &schema.Table{
		Name:       "topic_scores",
		Columns:    TopicScoresColumns,
		PrimaryKey: []*schema.Column{TopicScoresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topicscore_updated_at",
				Unique:  false,
				Columns: []*schema.Column{TopicScoresColumns[2]},
			},
			{
				Name:    "topicscore_user_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{TopicScoresColumns[3], TopicScoresColumns[4]},
			},
		},
	}
	// UserBadgesColumns holds the columns for the "user_badges" table.
	UserBadgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "badge_id", Type: field.TypeString},
		{Name: "unlocked_at", Type: field.TypeTime},
	}
	// UserBadgesTable holds the schema information for the "user_badges" table.
	UserBadgesTable = &schema.Table{
		Name:       "user_badges",
		Columns:    UserBadgesColumns,
		PrimaryKey: []*schema.Column{UserBadgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userbadge_user_id_badge_id",
				Unique:  true,
				Columns: []*schema.Column{UserBadgesColumns[1], UserBadgesColumns[2]},
			},
			{
				Name:    "userbadge_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserBadgesColumns[1]},
			},
		},
	}
	// WeeklyGoalsColumns holds the columns for the "weekly_goals" table.
	WeeklyGoalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "week_start", Type: field.TypeTime},
		{Name: "target_xp", Type: field.TypeInt},
		{Name: "xp_earned", Type: field.TypeInt, Default: 0},
		{Name: "topics_completed", Type: field.TypeInt, Default: 0},
	}
	// WeeklyGoalsTable holds the schema information for the "weekly_goals" table.
	WeeklyGoalsTable = &schema.Table{
		Name:       "weekly_goals",
		Columns:    WeeklyGoalsColumns,
		PrimaryKey: []*schema.Column{WeeklyGoalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "weeklygoal_updated_at",
				Unique:  false,
				Columns: []*schema.Column{WeeklyGoalsColumns[2]},
			},
			{
				Name:    "weeklygoal_user_id_week_start",
				Unique:  true,
				Columns: []*schema.Column{WeeklyGoalsColumns[3], WeeklyGoalsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BadgesTable,
		DeviceRecordsTable,
		ProfilesTable,
		TopicsTable,
		TopicScoresTable,
		UserBadgesTable,
		WeeklyGoalsTable,
	}
)

func init() {
}
