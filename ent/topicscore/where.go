// Code generated by ent, DO NOT EDIT.

package topicscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/fika/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldUserID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldTopicID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldScore, v))
}

// BestScore applies equality check predicate on the "best_score" field. It's identical to BestScoreEQ.
func BestScore(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldBestScore, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldAttempts, v))
}

// XpEarned applies equality check predicate on the "xp_earned" field. It's identical to XpEarnedEQ.
func XpEarned(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldXpEarned, v))
}

// LastAttempted applies equality check predicate on the "last_attempted" field. It's identical to LastAttemptedEQ.
func LastAttempted(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldLastAttempted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldContainsFold(FieldUserID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldContainsFold(FieldTopicID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLTE(FieldScore, v))
}

// BestScoreEQ applies the EQ predicate on the "best_score" field.
func BestScoreEQ(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldBestScore, v))
}

// BestScoreNEQ applies the NEQ predicate on the "best_score" field.
func BestScoreNEQ(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNEQ(FieldBestScore, v))
}

// BestScoreIn applies the In predicate on the "best_score" field.
func BestScoreIn(vs ...int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldIn(FieldBestScore, vs...))
}

// BestScoreNotIn applies the NotIn predicate on the "best_score" field.
func BestScoreNotIn(vs ...int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNotIn(FieldBestScore, vs...))
}

// BestScoreGT applies the GT predicate on the "best_score" field.
func BestScoreGT(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGT(FieldBestScore, v))
}

// BestScoreGTE applies the GTE predicate on the "best_score" field.
func BestScoreGTE(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGTE(FieldBestScore, v))
}

// BestScoreLT applies the LT predicate on the "best_score" field.
func BestScoreLT(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLT(FieldBestScore, v))
}

// BestScoreLTE applies the LTE predicate on the "best_score" field.
func BestScoreLTE(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLTE(FieldBestScore, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLTE(FieldAttempts, v))
}

// XpEarnedEQ applies the EQ predicate on the "xp_earned" field.
func XpEarnedEQ(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldXpEarned, v))
}

// XpEarnedNEQ applies the NEQ predicate on the "xp_earned" field.
func XpEarnedNEQ(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNEQ(FieldXpEarned, v))
}

// XpEarnedIn applies the In predicate on the "xp_earned" field.
func XpEarnedIn(vs ...int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldIn(FieldXpEarned, vs...))
}

// XpEarnedNotIn applies the NotIn predicate on the "xp_earned" field.
func XpEarnedNotIn(vs ...int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNotIn(FieldXpEarned, vs...))
}

// XpEarnedGT applies the GT predicate on the "xp_earned" field.
func XpEarnedGT(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGT(FieldXpEarned, v))
}

// XpEarnedGTE applies the GTE predicate on the "xp_earned" field.
func XpEarnedGTE(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGTE(FieldXpEarned, v))
}

// XpEarnedLT applies the LT predicate on the "xp_earned" field.
func XpEarnedLT(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLT(FieldXpEarned, v))
}

// XpEarnedLTE applies the LTE predicate on the "xp_earned" field.
func XpEarnedLTE(v int) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLTE(FieldXpEarned, v))
}

// LastAttemptedEQ applies the EQ predicate on the "last_attempted" field.
func LastAttemptedEQ(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldEQ(FieldLastAttempted, v))
}

// LastAttemptedNEQ applies the NEQ predicate on the "last_attempted" field.
func LastAttemptedNEQ(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNEQ(FieldLastAttempted, v))
}

// LastAttemptedIn applies the In predicate on the "last_attempted" field.
func LastAttemptedIn(vs ...time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldIn(FieldLastAttempted, vs...))
}

// LastAttemptedNotIn applies the NotIn predicate on the "last_attempted" field.
func LastAttemptedNotIn(vs ...time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNotIn(FieldLastAttempted, vs...))
}

// LastAttemptedGT applies the GT predicate on the "last_attempted" field.
func LastAttemptedGT(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGT(FieldLastAttempted, v))
}

// LastAttemptedGTE applies the GTE predicate on the "last_attempted" field.
func LastAttemptedGTE(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldGTE(FieldLastAttempted, v))
}

// LastAttemptedLT applies the LT predicate on the "last_attempted" field.
func LastAttemptedLT(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLT(FieldLastAttempted, v))
}

// LastAttemptedLTE applies the LTE predicate on the "last_attempted" field.
func LastAttemptedLTE(v time.Time) predicate.TopicScore {
	return predicate.TopicScore(sql.FieldLTE(FieldLastAttempted, v))
}

// LastAttemptedIsNil applies the IsNil predicate on the "last_attempted" field.
func LastAttemptedIsNil() predicate.TopicScore {
	return predicate.TopicScore(sql.FieldIsNull(FieldLastAttempted))
}

// LastAttemptedNotNil applies the NotNil predicate on the "last_attempted" field.
func LastAttemptedNotNil() predicate.TopicScore {
	return predicate.TopicScore(sql.FieldNotNull(FieldLastAttempted))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicScore) predicate.TopicScore {
	return predicate.TopicScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicScore) predicate.TopicScore {
	return predicate.TopicScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicScore) predicate.TopicScore {
	return predicate.TopicScore(sql.NotPredicates(p))
}
