// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/fika/ent/badge"
	"github.com/abhisek/fika/ent/devicerecord"
	"github.com/abhisek/fika/ent/profile"
	"github.com/abhisek/fika/ent/schema"
	"github.com/abhisek/fika/ent/topic"
	"github.com/abhisek/fika/ent/topicscore"
	"github.com/abhisek/fika/ent/userbadge"
	"github.com/abhisek/fika/ent/weeklygoal"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	badgeFields := schema.Badge{}.Fields()
	_ = badgeFields
	// badgeDescBadgeID is the schema descriptor for badge_id field.
	badgeDescBadgeID := badgeFields[0].Descriptor()
	// badge.BadgeIDValidator is a validator for the "badge_id" field. It is called by the builders before save.
	badge.BadgeIDValidator = badgeDescBadgeID.Validators[0].(func(string) error)
	// badgeDescIcon is the schema descriptor for icon field.
	badgeDescIcon := badgeFields[1].Descriptor()
	// badge.IconValidator is a validator for the "icon" field. It is called by the builders before save.
	badge.IconValidator = badgeDescIcon.Validators[0].(func(string) error)
	// badgeDescName is the schema descriptor for name field.
	badgeDescName := badgeFields[2].Descriptor()
	// badge.NameValidator is a validator for the "name" field. It is called by the builders before save.
	badge.NameValidator = badgeDescName.Validators[0].(func(string) error)
	// badgeDescDescription is the schema descriptor for description field.
	badgeDescDescription := badgeFields[3].Descriptor()
	// badge.DefaultDescription holds the default value on creation for the description field.
	badge.DefaultDescription = badgeDescDescription.Default.(string)
	// badgeDescSortOrder is the schema descriptor for sort_order field.
	badgeDescSortOrder := badgeFields[5].Descriptor()
	// badge.DefaultSortOrder holds the default value on creation for the sort_order field.
	badge.DefaultSortOrder = badgeDescSortOrder.Default.(int)
	devicerecordFields := schema.DeviceRecord{}.Fields()
	_ = devicerecordFields
	// devicerecordDescKey is the schema descriptor for key field.
	devicerecordDescKey := devicerecordFields[0].Descriptor()
	// devicerecord.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	devicerecord.KeyValidator = devicerecordDescKey.Validators[0].(func(string) error)
	// devicerecordDescUpdatedAt is the schema descriptor for updated_at field.
	devicerecordDescUpdatedAt := devicerecordFields[2].Descriptor()
	// devicerecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	devicerecord.DefaultUpdatedAt = devicerecordDescUpdatedAt.Default.(func() time.Time)
	// devicerecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	devicerecord.UpdateDefaultUpdatedAt = devicerecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	profileMixin := schema.Profile{}.Mixin()
	profileMixinFields0 := profileMixin[0].Fields()
	_ = profileMixinFields0
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileMixinFields0[0].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileMixinFields0[1].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescUserID is the schema descriptor for user_id field.
	profileDescUserID := profileFields[0].Descriptor()
	// profile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	profile.UserIDValidator = profileDescUserID.Validators[0].(func(string) error)
	// profileDescXp is the schema descriptor for xp field.
	profileDescXp := profileFields[1].Descriptor()
	// profile.DefaultXp holds the default value on creation for the xp field.
	profile.DefaultXp = profileDescXp.Default.(int)
	// profile.XpValidator is a validator for the "xp" field. It is called by the builders before save.
	profile.XpValidator = profileDescXp.Validators[0].(func(int) error)
	// profileDescStreak is the schema descriptor for streak field.
	profileDescStreak := profileFields[2].Descriptor()
	// profile.DefaultStreak holds the default value on creation for the streak field.
	profile.DefaultStreak = profileDescStreak.Default.(int)
	// profile.StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	profile.StreakValidator = profileDescStreak.Validators[0].(func(int) error)
	// profileDescLastActivity is the schema descriptor for last_activity field.
	profileDescLastActivity := profileFields[3].Descriptor()
	// profile.DefaultLastActivity holds the default value on creation for the last_activity field.
	profile.DefaultLastActivity = profileDescLastActivity.Default.(func() time.Time)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescTopicID is the schema descriptor for topic_id field.
	topicDescTopicID := topicFields[0].Descriptor()
	// topic.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	topic.TopicIDValidator = topicDescTopicID.Validators[0].(func(string) error)
	// topicDescLevel is the schema descriptor for level field.
	topicDescLevel := topicFields[1].Descriptor()
	// topic.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	topic.LevelValidator = topicDescLevel.Validators[0].(func(string) error)
	// topicDescTitle is the schema descriptor for title field.
	topicDescTitle := topicFields[2].Descriptor()
	// topic.DefaultTitle holds the default value on creation for the title field.
	topic.DefaultTitle = topicDescTitle.Default.(string)
	// topicDescPosition is the schema descriptor for position field.
	topicDescPosition := topicFields[3].Descriptor()
	// topic.DefaultPosition holds the default value on creation for the position field.
	topic.DefaultPosition = topicDescPosition.Default.(int)
	topicscoreMixin := schema.TopicScore{}.Mixin()
	topicscoreMixinFields0 := topicscoreMixin[0].Fields()
	_ = topicscoreMixinFields0
	topicscoreFields := schema.TopicScore{}.Fields()
	_ = topicscoreFields
	// topicscoreDescCreatedAt is the schema descriptor for created_at field.
	topicscoreDescCreatedAt := topicscoreMixinFields0[0].Descriptor()
	// topicscore.DefaultCreatedAt holds the default value on creation for the created_at field.
	topicscore.DefaultCreatedAt = topicscoreDescCreatedAt.Default.(func() time.Time)
	// topicscoreDescUpdatedAt is the schema descriptor for updated_at field.
	topicscoreDescUpdatedAt := topicscoreMixinFields0[1].Descriptor()
	// topicscore.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	topicscore.DefaultUpdatedAt = topicscoreDescUpdatedAt.Default.(func() time.Time)
	// topicscore.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	topicscore.UpdateDefaultUpdatedAt = topicscoreDescUpdatedAt.UpdateDefault.(func() time.Time)
	// topicscoreDescUserID is the schema descriptor for user_id field.
	topicscoreDescUserID := topicscoreFields[0].Descriptor()
	// topicscore.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	topicscore.UserIDValidator = topicscoreDescUserID.Validators[0].(func(string) error)
	// topicscoreDescTopicID is the schema descriptor for topic_id field.
	topicscoreDescTopicID := topicscoreFields[1].Descriptor()
	// topicscore.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	topicscore.TopicIDValidator = topicscoreDescTopicID.Validators[0].(func(string) error)
	// topicscoreDescScore is the schema descriptor for score field.
	topicscoreDescScore := topicscoreFields[2].Descriptor()
	// topicscore.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	topicscore.ScoreValidator = topicscoreDescScore.Validators[0].(func(int) error)
	// topicscoreDescBestScore is the schema descriptor for best_score field.
	topicscoreDescBestScore := topicscoreFields[3].Descriptor()
	// topicscore.BestScoreValidator is a validator for the "best_score" field. It is called by the builders before save.
	topicscore.BestScoreValidator = topicscoreDescBestScore.Validators[0].(func(int) error)
	// topicscoreDescAttempts is the schema descriptor for attempts field.
	topicscoreDescAttempts := topicscoreFields[4].Descriptor()
	// topicscore.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	topicscore.AttemptsValidator = topicscoreDescAttempts.Validators[0].(func(int) error)
	// topicscoreDescXpEarned is the schema descriptor for xp_earned field.
	topicscoreDescXpEarned := topicscoreFields[5].Descriptor()
	// topicscore.DefaultXpEarned holds the default value on creation for the xp_earned field.
	topicscore.DefaultXpEarned = topicscoreDescXpEarned.Default.(int)
	// topicscore.XpEarnedValidator is a validator for the "xp_earned" field. It is called by the builders before save.
	topicscore.XpEarnedValidator = topicscoreDescXpEarned.Validators[0].(func(int) error)
	userbadgeFields := schema.UserBadge{}.Fields()
	_ = userbadgeFields
	// userbadgeDescUserID is the schema descriptor for user_id field.
	userbadgeDescUserID := userbadgeFields[0].Descriptor()
	// userbadge.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userbadge.UserIDValidator = userbadgeDescUserID.Validators[0].(func(string) error)
	// userbadgeDescBadgeID is the schema descriptor for badge_id field.
	userbadgeDescBadgeID := userbadgeFields[1].Descriptor()
	// userbadge.BadgeIDValidator is a validator for the "badge_id" field. It is called by the builders before save.
	userbadge.BadgeIDValidator = userbadgeDescBadgeID.Validators[0].(func(string) error)
	// userbadgeDescUnlockedAt is the schema descriptor for unlocked_at field.
	userbadgeDescUnlockedAt := userbadgeFields[2].Descriptor()
	// userbadge.DefaultUnlockedAt holds the default value on creation for the unlocked_at field.
	userbadge.DefaultUnlockedAt = userbadgeDescUnlockedAt.Default.(func() time.Time)
	weeklygoalMixin := schema.WeeklyGoal{}.Mixin()
	weeklygoalMixinFields0 := weeklygoalMixin[0].Fields()
	_ = weeklygoalMixinFields0
	weeklygoalFields := schema.WeeklyGoal{}.Fields()
	_ = weeklygoalFields
	// weeklygoalDescCreatedAt is the schema descriptor for created_at field.
	weeklygoalDescCreatedAt := weeklygoalMixinFields0[0].Descriptor()
	// weeklygoal.DefaultCreatedAt holds the default value on creation for the created_at field.
	weeklygoal.DefaultCreatedAt = weeklygoalDescCreatedAt.Default.(func() time.Time)
	// weeklygoalDescUpdatedAt is the schema descriptor for updated_at field.
	weeklygoalDescUpdatedAt := weeklygoalMixinFields0[1].Descriptor()
	// weeklygoal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	weeklygoal.DefaultUpdatedAt = weeklygoalDescUpdatedAt.Default.(func() time.Time)
	// weeklygoal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	weeklygoal.UpdateDefaultUpdatedAt = weeklygoalDescUpdatedAt.UpdateDefault.(func() time.Time)
	// weeklygoalDescUserID is the schema descriptor for user_id field.
	weeklygoalDescUserID := weeklygoalFields[0].Descriptor()
	// weeklygoal.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	weeklygoal.UserIDValidator = weeklygoalDescUserID.Validators[0].(func(string) error)
	// weeklygoalDescTargetXp is the schema descriptor for target_xp field.
	weeklygoalDescTargetXp := weeklygoalFields[2].Descriptor()
	// weeklygoal.TargetXpValidator is a validator for the "target_xp" field. It is called by the builders before save.
	weeklygoal.TargetXpValidator = weeklygoalDescTargetXp.Validators[0].(func(int) error)
	// weeklygoalDescXpEarned is the schema descriptor for xp_earned field.
	weeklygoalDescXpEarned := weeklygoalFields[3].Descriptor()
	// weeklygoal.DefaultXpEarned holds the default value on creation for the xp_earned field.
	weeklygoal.DefaultXpEarned = weeklygoalDescXpEarned.Default.(int)
	// weeklygoal.XpEarnedValidator is a validator for the "xp_earned" field. It is called by the builders before save.
	weeklygoal.XpEarnedValidator = weeklygoalDescXpEarned.Validators[0].(func(int) error)
	// weeklygoalDescTopicsCompleted is the schema descriptor for topics_completed field.
	weeklygoalDescTopicsCompleted := weeklygoalFields[4].Descriptor()
	// weeklygoal.DefaultTopicsCompleted holds the default value on creation for the topics_completed field.
	weeklygoal.DefaultTopicsCompleted = weeklygoalDescTopicsCompleted.Default.(int)
	// weeklygoal.TopicsCompletedValidator is a validator for the "topics_completed" field. It is called by the builders before save.
	weeklygoal.TopicsCompletedValidator = weeklygoalDescTopicsCompleted.Validators[0].(func(int) error)
}
