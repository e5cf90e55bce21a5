package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/fika/ent"
	"github.com/abhisek/fika/ent/badge"
	"github.com/abhisek/fika/ent/topic"
	"github.com/abhisek/fika/ent/weeklygoal"
)

// contentRepo implements ContentRepo using the ent client.
type contentRepo struct {
	client *ent.Client
}

func (r *contentRepo) SaveBadges(ctx context.Context, badges []BadgeRecord) (int, error) {
	saved := 0
	for _, b := range badges {
		category := badge.Category(b.Category)
		if err := badge.CategoryValidator(category); err != nil {
			return saved, fmt.Errorf("badge %q: %w", b.ID, err)
		}

		n, err := r.client.Badge.Update().
			Where(badge.BadgeID(b.ID)).
			SetIcon(b.Icon).
			SetName(b.Name).
			SetDescription(b.Description).
			SetCategory(category).
			SetSortOrder(b.SortOrder).
			Save(ctx)
		if err != nil {
			return saved, fmt.Errorf("update badge %q: %w", b.ID, err)
		}
		if n == 0 {
			_, err = r.client.Badge.Create().
				SetBadgeID(b.ID).
				SetIcon(b.Icon).
				SetName(b.Name).
				SetDescription(b.Description).
				SetCategory(category).
				SetSortOrder(b.SortOrder).
				Save(ctx)
			if err != nil {
				return saved, fmt.Errorf("create badge %q: %w", b.ID, err)
			}
		}
		saved++
	}
	return saved, nil
}

func (r *contentRepo) SaveTopics(ctx context.Context, topics []TopicRecord) (int, error) {
	saved := 0
	for _, t := range topics {
		n, err := r.client.Topic.Update().
			Where(topic.TopicID(t.ID)).
			SetLevel(t.Level).
			SetTitle(t.Title).
			SetPosition(t.Position).
			Save(ctx)
		if err != nil {
			return saved, fmt.Errorf("update topic %q: %w", t.ID, err)
		}
		if n == 0 {
			_, err = r.client.Topic.Create().
				SetTopicID(t.ID).
				SetLevel(t.Level).
				SetTitle(t.Title).
				SetPosition(t.Position).
				Save(ctx)
			if err != nil {
				return saved, fmt.Errorf("create topic %q: %w", t.ID, err)
			}
		}
		saved++
	}
	return saved, nil
}

func (r *contentRepo) TopicLevels(ctx context.Context) ([]string, error) {
	levels, err := r.client.Topic.Query().
		Unique(true).
		Select(topic.FieldLevel).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topic levels: %w", err)
	}
	sort.Strings(levels)
	return levels, nil
}

func (r *contentRepo) SetWeeklyGoal(ctx context.Context, userID string, weekStart time.Time, targetXP int) error {
	ws := weekStart.UTC()
	n, err := r.client.WeeklyGoal.Update().
		Where(
			weeklygoal.UserID(userID),
			weeklygoal.WeekStart(ws),
		).
		SetTargetXp(targetXP).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update weekly goal: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.WeeklyGoal.Create().
		SetUserID(userID).
		SetWeekStart(ws).
		SetTargetXp(targetXP).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create weekly goal: %w", err)
	}
	return nil
}

func (r *contentRepo) WeeklyGoal(ctx context.Context, userID string, weekStart time.Time) (*WeeklyGoalRecord, error) {
	g, err := r.client.WeeklyGoal.Query().
		Where(
			weeklygoal.UserID(userID),
			weeklygoal.WeekStart(weekStart.UTC()),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query weekly goal: %w", err)
	}
	return &WeeklyGoalRecord{
		UserID:          g.UserID,
		WeekStart:       g.WeekStart,
		TargetXP:        g.TargetXp,
		XPEarned:        g.XpEarned,
		TopicsCompleted: g.TopicsCompleted,
	}, nil
}
