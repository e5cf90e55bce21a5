package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/fika/ent"
	"github.com/abhisek/fika/ent/badge"
	"github.com/abhisek/fika/ent/profile"
	"github.com/abhisek/fika/ent/topic"
	"github.com/abhisek/fika/ent/topicscore"
	"github.com/abhisek/fika/ent/userbadge"
	"github.com/abhisek/fika/ent/weeklygoal"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) FetchProfile(ctx context.Context, userID string) (*Profile, error) {
	p, err := r.client.Profile.Query().
		Where(profile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return &Profile{
		UserID:       p.UserID,
		XP:           p.Xp,
		Streak:       p.Streak,
		LastActivity: p.LastActivity,
	}, nil
}

func (r *profileRepo) UpsertProfile(ctx context.Context, p Profile) error {
	n, err := r.client.Profile.Update().
		Where(profile.UserID(p.UserID)).
		SetXp(p.XP).
		SetStreak(p.Streak).
		SetLastActivity(p.LastActivity).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Profile.Create().
		SetUserID(p.UserID).
		SetXp(p.XP).
		SetStreak(p.Streak).
		SetLastActivity(p.LastActivity).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *profileRepo) FetchTopicScores(ctx context.Context, userID string) ([]TopicScoreRecord, error) {
	rows, err := r.client.TopicScore.Query().
		Where(topicscore.UserID(userID)).
		Order(ent.Asc(topicscore.FieldTopicID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topic scores: %w", err)
	}

	records := make([]TopicScoreRecord, len(rows))
	for i, row := range rows {
		records[i] = TopicScoreRecord{
			TopicID:       row.TopicID,
			Score:         row.Score,
			BestScore:     row.BestScore,
			Attempts:      row.Attempts,
			LastAttempted: row.LastAttempted,
		}
	}
	return records, nil
}

func (r *profileRepo) UpsertTopicScore(ctx context.Context, data TopicScoreData) error {
	now := time.Now()
	n, err := r.client.TopicScore.Update().
		Where(
			topicscore.UserID(data.UserID),
			topicscore.TopicID(data.TopicID),
		).
		SetScore(data.Score).
		SetBestScore(data.BestScore).
		SetAttempts(data.Attempts).
		SetXpEarned(data.XPEarned).
		SetLastAttempted(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update topic score: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.TopicScore.Create().
		SetUserID(data.UserID).
		SetTopicID(data.TopicID).
		SetScore(data.Score).
		SetBestScore(data.BestScore).
		SetAttempts(data.Attempts).
		SetXpEarned(data.XPEarned).
		SetLastAttempted(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create topic score: %w", err)
	}
	return nil
}

func (r *profileRepo) FetchAllBadges(ctx context.Context) ([]BadgeRecord, error) {
	rows, err := r.client.Badge.Query().
		Order(ent.Asc(badge.FieldSortOrder), ent.Asc(badge.FieldBadgeID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query badges: %w", err)
	}

	records := make([]BadgeRecord, len(rows))
	for i, row := range rows {
		records[i] = BadgeRecord{
			ID:          row.BadgeID,
			Icon:        row.Icon,
			Name:        row.Name,
			Description: row.Description,
			Category:    string(row.Category),
			SortOrder:   row.SortOrder,
		}
	}
	return records, nil
}

func (r *profileRepo) FetchUserBadges(ctx context.Context, userID string) ([]UserBadgeRecord, error) {
	rows, err := r.client.UserBadge.Query().
		Where(userbadge.UserID(userID)).
		Order(ent.Asc(userbadge.FieldUnlockedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query user badges: %w", err)
	}

	records := make([]UserBadgeRecord, len(rows))
	for i, row := range rows {
		records[i] = UserBadgeRecord{
			BadgeID:    row.BadgeID,
			UnlockedAt: row.UnlockedAt,
		}
	}
	return records, nil
}

// AwardBadges inserts one row per badge. When a later insert fails, the IDs
// persisted so far are returned together with the error.
func (r *profileRepo) AwardBadges(ctx context.Context, userID string, ids []string) ([]string, error) {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	existing, err := r.client.UserBadge.Query().
		Where(
			userbadge.UserID(userID),
			userbadge.BadgeIDIn(ids...),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query awarded badges: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, e := range existing {
		have[e.BadgeID] = true
	}

	var awarded []string
	for _, id := range ids {
		if have[id] {
			continue
		}
		_, err := r.client.UserBadge.Create().
			SetUserID(userID).
			SetBadgeID(id).
			Save(ctx)
		if err != nil {
			// Another writer awarded it first.
			if ent.IsConstraintError(err) {
				continue
			}
			return awarded, fmt.Errorf("award badge %q: %w", id, err)
		}
		awarded = append(awarded, id)
	}
	return awarded, nil
}

func (r *profileRepo) FetchTopicIDsByLevel(ctx context.Context, level string) ([]string, error) {
	ids, err := r.client.Topic.Query().
		Where(topic.Level(level)).
		Order(ent.Asc(topic.FieldPosition), ent.Asc(topic.FieldTopicID)).
		Select(topic.FieldTopicID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topics for level %q: %w", level, err)
	}
	return ids, nil
}

func (r *profileRepo) IncrementWeeklyGoal(ctx context.Context, userID string, weekStart time.Time, xp, topics int) error {
	_, err := r.client.WeeklyGoal.Update().
		Where(
			weeklygoal.UserID(userID),
			weeklygoal.WeekStart(weekStart.UTC()),
		).
		AddXpEarned(xp).
		AddTopicsCompleted(topics).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("increment weekly goal: %w", err)
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
