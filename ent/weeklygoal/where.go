// Code generated by ent, DO NOT EDIT.

package weeklygoal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/fika/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldEQ(FieldUserID, v))
}

// WeekStart applies equality check predicate on the "week_start" field. It's identical to WeekStartEQ.
func WeekStart(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldEQ(FieldWeekStart, v))
}

// TargetXp applies equality check predicate on the "target_xp" field. It's identical to TargetXpEQ.
func TargetXp(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldEQ(FieldTargetXp, v))
}

// XpEarned applies equality check predicate on the "xp_earned" field. It's identical to XpEarnedEQ.
func XpEarned(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldEQ(FieldXpEarned, v))
}

// TopicsCompleted applies equality check predicate on the "topics_completed" field. It's identical to TopicsCompletedEQ.
func TopicsCompleted(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldEQ(FieldTopicsCompleted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldContainsFold(FieldUserID, v))
}

// WeekStartEQ applies the EQ predicate on the "week_start" field.
func WeekStartEQ(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldEQ(FieldWeekStart, v))
}

// WeekStartNEQ applies the NEQ predicate on the "week_start" field.
func WeekStartNEQ(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldNEQ(FieldWeekStart, v))
}

// WeekStartIn applies the In predicate on the "week_start" field.
func WeekStartIn(vs ...time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldIn(FieldWeekStart, vs...))
}

// WeekStartNotIn applies the NotIn predicate on the "week_start" field.
func WeekStartNotIn(vs ...time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldNotIn(FieldWeekStart, vs...))
}

// WeekStartGT applies the GT predicate on the "week_start" field.
func WeekStartGT(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldGT(FieldWeekStart, v))
}

// WeekStartGTE applies the GTE predicate on the "week_start" field.
func WeekStartGTE(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldGTE(FieldWeekStart, v))
}

// WeekStartLT applies the LT predicate on the "week_start" field.
func WeekStartLT(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldLT(FieldWeekStart, v))
}

// WeekStartLTE applies the LTE predicate on the "week_start" field.
func WeekStartLTE(v time.Time) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldLTE(FieldWeekStart, v))
}

// TargetXpEQ applies the EQ predicate on the "target_xp" field.
func TargetXpEQ(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldEQ(FieldTargetXp, v))
}

// TargetXpNEQ applies the NEQ predicate on the "target_xp" field.
func TargetXpNEQ(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldNEQ(FieldTargetXp, v))
}

// TargetXpIn applies the In predicate on the "target_xp" field.
func TargetXpIn(vs ...int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldIn(FieldTargetXp, vs...))
}

// TargetXpNotIn applies the NotIn predicate on the "target_xp" field.
func TargetXpNotIn(vs ...int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldNotIn(FieldTargetXp, vs...))
}

// TargetXpGT applies the GT predicate on the "target_xp" field.
func TargetXpGT(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldGT(FieldTargetXp, v))
}

// TargetXpGTE applies the GTE predicate on the "target_xp" field.
func TargetXpGTE(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldGTE(FieldTargetXp, v))
}

// TargetXpLT applies the LT predicate on the "target_xp" field.
func TargetXpLT(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldLT(FieldTargetXp, v))
}

// TargetXpLTE applies the LTE predicate on the "target_xp" field.
func TargetXpLTE(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldLTE(FieldTargetXp, v))
}

// XpEarnedEQ applies the EQ predicate on the "xp_earned" field.
func XpEarnedEQ(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldEQ(FieldXpEarned, v))
}

// XpEarnedNEQ applies the NEQ predicate on the "xp_earned" field.
func XpEarnedNEQ(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldNEQ(FieldXpEarned, v))
}

// XpEarnedIn applies the In predicate on the "xp_earned" field.
func XpEarnedIn(vs ...int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldIn(FieldXpEarned, vs...))
}

// XpEarnedNotIn applies the NotIn predicate on the "xp_earned" field.
func XpEarnedNotIn(vs ...int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldNotIn(FieldXpEarned, vs...))
}

// XpEarnedGT applies the GT predicate on the "xp_earned" field.
func XpEarnedGT(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldGT(FieldXpEarned, v))
}

// XpEarnedGTE applies the GTE predicate on the "xp_earned" field.
func XpEarnedGTE(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldGTE(FieldXpEarned, v))
}

// XpEarnedLT applies the LT predicate on the "xp_earned" field.
func XpEarnedLT(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldLT(FieldXpEarned, v))
}

// XpEarnedLTE applies the LTE predicate on the "xp_earned" field.
func XpEarnedLTE(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldLTE(FieldXpEarned, v))
}

// TopicsCompletedEQ applies the EQ predicate on the "topics_completed" field.
func TopicsCompletedEQ(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldEQ(FieldTopicsCompleted, v))
}

// TopicsCompletedNEQ applies the NEQ predicate on the "topics_completed" field.
func TopicsCompletedNEQ(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldNEQ(FieldTopicsCompleted, v))
}

// TopicsCompletedIn applies the In predicate on the "topics_completed" field.
func TopicsCompletedIn(vs ...int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldIn(FieldTopicsCompleted, vs...))
}

// TopicsCompletedNotIn applies the NotIn predicate on the "topics_completed" field.
func TopicsCompletedNotIn(vs ...int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldNotIn(FieldTopicsCompleted, vs...))
}

// TopicsCompletedGT applies the GT predicate on the "topics_completed" field.
func TopicsCompletedGT(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldGT(FieldTopicsCompleted, v))
}

// TopicsCompletedGTE applies the GTE predicate on the "topics_completed" field.
func TopicsCompletedGTE(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldGTE(FieldTopicsCompleted, v))
}

// TopicsCompletedLT applies the LT predicate on the "topics_completed" field.
func TopicsCompletedLT(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldLT(FieldTopicsCompleted, v))
}

// TopicsCompletedLTE applies the LTE predicate on the "topics_completed" field.
func TopicsCompletedLTE(v int) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.FieldLTE(FieldTopicsCompleted, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WeeklyGoal) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WeeklyGoal) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WeeklyGoal) predicate.WeeklyGoal {
	return predicate.WeeklyGoal(sql.NotPredicates(p))
}
