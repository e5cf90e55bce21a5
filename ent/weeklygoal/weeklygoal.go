// Code generated by ent, DO NOT EDIT.

package weeklygoal

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the weeklygoal type in the database.
	Label = "weekly_goal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldWeekStart holds the string denoting the week_start field in the database.
	FieldWeekStart = "week_start"
	// FieldTargetXp holds the string denoting the target_xp field in the database.
	FieldTargetXp = "target_xp"
	// FieldXpEarned holds the string denoting the xp_earned field in the database.
	FieldXpEarned = "xp_earned"
	// FieldTopicsCompleted holds the string denoting the topics_completed field in the database.
	FieldTopicsCompleted = "topics_completed"
	// Table holds the table name of the weeklygoal in the database.
	Table = "weekly_goals"
)

// Columns holds all SQL columns for weeklygoal fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldWeekStart,
	FieldTargetXp,
	FieldXpEarned,
	FieldTopicsCompleted,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// TargetXpValidator is a validator for the "target_xp" field. It is called by the builders before save.
	TargetXpValidator func(int) error
	// DefaultXpEarned holds the default value on creation for the "xp_earned" field.
	DefaultXpEarned int
	// XpEarnedValidator is a validator for the "xp_earned" field. It is called by the builders before save.
	XpEarnedValidator func(int) error
	// DefaultTopicsCompleted holds the default value on creation for the "topics_completed" field.
	DefaultTopicsCompleted int
	// TopicsCompletedValidator is a validator for the "topics_completed" field. It is called by the builders before save.
	TopicsCompletedValidator func(int) error
)

// OrderOption defines the ordering options for the WeeklyGoal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByWeekStart orders the results by the week_start field.
func ByWeekStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekStart, opts...).ToFunc()
}

// ByTargetXp orders the results by the target_xp field.
func ByTargetXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetXp, opts...).ToFunc()
}

// ByXpEarned orders the results by the xp_earned field.
func ByXpEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpEarned, opts...).ToFunc()
}

// ByTopicsCompleted orders the results by the topics_completed field.
func ByTopicsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicsCompleted, opts...).ToFunc()
}
