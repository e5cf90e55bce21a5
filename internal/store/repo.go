package store

import (
	"context"
	"time"
)

// DeviceRepo persists opaque records on the local device, one per key.
type DeviceRepo interface {
	// Load returns the payload stored under key, or nil if none exists.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save overwrites the payload stored under key.
	Save(ctx context.Context, key string, payload []byte) error

	// Delete removes the record stored under key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}

// Profile is the remote projection of a user's scalar progress.
type Profile struct {
	UserID       string
	XP           int
	Streak       int
	LastActivity time.Time
}

// TopicScoreRecord is a remote per-topic result as read back from the store.
type TopicScoreRecord struct {
	TopicID       string
	Score         int
	BestScore     int
	Attempts      int
	LastAttempted *time.Time
}

// TopicScoreData is the write shape for UpsertTopicScore.
type TopicScoreData struct {
	UserID    string
	TopicID   string
	Score     int
	BestScore int
	Attempts  int
	XPEarned  int
}

// BadgeRecord is one badge catalog entry.
type BadgeRecord struct {
	ID          string
	Icon        string
	Name        string
	Description string
	Category    string
	SortOrder   int
}

// UserBadgeRecord is an awarded badge with its award time.
type UserBadgeRecord struct {
	BadgeID    string
	UnlockedAt time.Time
}

// TopicRecord assigns a topic to a course level.
type TopicRecord struct {
	ID       string
	Level    string
	Title    string
	Position int
}

// WeeklyGoalRecord is a user's aggregate for one week.
type WeeklyGoalRecord struct {
	UserID          string
	WeekStart       time.Time
	TargetXP        int
	XPEarned        int
	TopicsCompleted int
}

// ProfileRepo is the remote profile store consumed by the progress and
// badge subsystems.
type ProfileRepo interface {
	// FetchProfile returns the user's profile, or nil if none exists.
	FetchProfile(ctx context.Context, userID string) (*Profile, error)

	// UpsertProfile creates or overwrites the user's profile.
	UpsertProfile(ctx context.Context, p Profile) error

	// FetchTopicScores returns every topic result recorded for the user.
	FetchTopicScores(ctx context.Context, userID string) ([]TopicScoreRecord, error)

	// UpsertTopicScore creates or overwrites one topic result.
	UpsertTopicScore(ctx context.Context, data TopicScoreData) error

	// FetchAllBadges returns the badge catalog ordered by sort order.
	FetchAllBadges(ctx context.Context) ([]BadgeRecord, error)

	// FetchUserBadges returns the badges already awarded to the user.
	FetchUserBadges(ctx context.Context, userID string) ([]UserBadgeRecord, error)

	// AwardBadges persists the given badges for the user and returns the IDs
	// that were newly persisted. Already-awarded IDs are skipped silently.
	AwardBadges(ctx context.Context, userID string, ids []string) ([]string, error)

	// FetchTopicIDsByLevel returns the topic IDs belonging to a course level.
	FetchTopicIDsByLevel(ctx context.Context, level string) ([]string, error)

	// IncrementWeeklyGoal adds to the user's goal for the week starting at
	// weekStart. It is a no-op when no goal exists for that week.
	IncrementWeeklyGoal(ctx context.Context, userID string, weekStart time.Time, xp, topics int) error
}

// ContentRepo manages the course catalog and per-user goals.
type ContentRepo interface {
	// SaveBadges inserts or updates catalog entries by badge ID.
	SaveBadges(ctx context.Context, badges []BadgeRecord) (int, error)

	// SaveTopics inserts or updates topics by topic ID.
	SaveTopics(ctx context.Context, topics []TopicRecord) (int, error)

	// TopicLevels returns the distinct course levels, sorted.
	TopicLevels(ctx context.Context) ([]string, error)

	// SetWeeklyGoal creates or retargets the user's goal for the given week.
	SetWeeklyGoal(ctx context.Context, userID string, weekStart time.Time, targetXP int) error

	// WeeklyGoal returns the user's goal for the given week, or nil.
	WeeklyGoal(ctx context.Context, userID string, weekStart time.Time) (*WeeklyGoalRecord, error)
}

// WeekStart returns local midnight of the Monday on or before t.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}
