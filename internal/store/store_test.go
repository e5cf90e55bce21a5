package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
	if s.Dialect() != "sqlite3" {
		t.Errorf("dialect = %q, want sqlite3", s.Dialect())
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestIsPostgres(t *testing.T) {
	tests := []struct {
		dsn  string
		want bool
	}{
		{"postgres://fika@localhost/fika", true},
		{"postgresql://fika@localhost/fika?sslmode=disable", true},
		{"/home/u/.local/share/fika/fika.db", false},
		{"file::memory:?cache=shared", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isPostgres(tt.dsn), tt.dsn)
	}
}

func TestDeviceRecordRoundTrip(t *testing.T) {
	repo := openTestStore(t).DeviceRepo()
	ctx := context.Background()

	got, err := repo.Load(ctx, "fika-progress")
	require.NoError(t, err)
	assert.Nil(t, got, "missing key loads as nil")

	require.NoError(t, repo.Save(ctx, "fika-progress", []byte(`{"xp":10}`)))
	require.NoError(t, repo.Save(ctx, "fika-progress", []byte(`{"xp":20}`)))

	got, err = repo.Load(ctx, "fika-progress")
	require.NoError(t, err)
	assert.Equal(t, `{"xp":20}`, string(got))

	require.NoError(t, repo.Delete(ctx, "fika-progress"))
	require.NoError(t, repo.Delete(ctx, "fika-progress"))
	got, err = repo.Load(ctx, "fika-progress")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProfileUpsertAndFetch(t *testing.T) {
	repo := openTestStore(t).ProfileRepo()
	ctx := context.Background()

	p, err := repo.FetchProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, p)

	at := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpsertProfile(ctx, Profile{UserID: "u1", XP: 150, Streak: 2, LastActivity: at}))
	require.NoError(t, repo.UpsertProfile(ctx, Profile{UserID: "u1", XP: 300, Streak: 3, LastActivity: at.Add(time.Hour)}))

	p, err = repo.FetchProfile(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 300, p.XP)
	assert.Equal(t, 3, p.Streak)
	assert.True(t, p.LastActivity.Equal(at.Add(time.Hour)))
}

func TestTopicScoreUpsert(t *testing.T) {
	repo := openTestStore(t).ProfileRepo()
	ctx := context.Background()

	require.NoError(t, repo.UpsertTopicScore(ctx, TopicScoreData{
		UserID: "u1", TopicID: "a1-greetings", Score: 80, BestScore: 80, Attempts: 1, XPEarned: 80,
	}))
	require.NoError(t, repo.UpsertTopicScore(ctx, TopicScoreData{
		UserID: "u1", TopicID: "a1-greetings", Score: 60, BestScore: 80, Attempts: 2, XPEarned: 60,
	}))
	require.NoError(t, repo.UpsertTopicScore(ctx, TopicScoreData{
		UserID: "u2", TopicID: "a1-greetings", Score: 100, BestScore: 100, Attempts: 1, XPEarned: 100,
	}))

	scores, err := repo.FetchTopicScores(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "a1-greetings", scores[0].TopicID)
	assert.Equal(t, 60, scores[0].Score)
	assert.Equal(t, 80, scores[0].BestScore)
	assert.Equal(t, 2, scores[0].Attempts)
	assert.NotNil(t, scores[0].LastAttempted)
}

func TestAwardBadgesIsIdempotent(t *testing.T) {
	repo := openTestStore(t).ProfileRepo()
	ctx := context.Background()

	awarded, err := repo.AwardBadges(ctx, "u1", []string{"first-lesson", "word-learner", "first-lesson"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"first-lesson", "word-learner"}, awarded)

	awarded, err = repo.AwardBadges(ctx, "u1", []string{"word-learner", "xp-100"})
	require.NoError(t, err)
	assert.Equal(t, []string{"xp-100"}, awarded)

	owned, err := repo.FetchUserBadges(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, owned, 3)

	awarded, err = repo.AwardBadges(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Empty(t, awarded)
}

func TestCatalogAndTopics(t *testing.T) {
	s := openTestStore(t)
	content := s.ContentRepo()
	profiles := s.ProfileRepo()
	ctx := context.Background()

	n, err := content.SaveBadges(ctx, []BadgeRecord{
		{ID: "xp-100", Icon: "⭐", Name: "Hundra", Category: "progress", SortOrder: 2},
		{ID: "first-lesson", Icon: "🌱", Name: "Första lektionen", Category: "beginner", SortOrder: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = content.SaveBadges(ctx, []BadgeRecord{{ID: "bad", Icon: "x", Name: "x", Category: "legendary"}})
	assert.Error(t, err)

	badges, err := profiles.FetchAllBadges(ctx)
	require.NoError(t, err)
	require.Len(t, badges, 2)
	assert.Equal(t, "first-lesson", badges[0].ID)
	assert.Equal(t, "beginner", badges[0].Category)

	_, err = content.SaveTopics(ctx, []TopicRecord{
		{ID: "a1-food", Level: "A1", Position: 2},
		{ID: "a1-greetings", Level: "A1", Position: 1},
		{ID: "a2-travel", Level: "A2", Position: 1},
	})
	require.NoError(t, err)

	ids, err := profiles.FetchTopicIDsByLevel(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1-greetings", "a1-food"}, ids)

	levels, err := content.TopicLevels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2"}, levels)
}

func TestWeeklyGoalIncrement(t *testing.T) {
	s := openTestStore(t)
	content := s.ContentRepo()
	profiles := s.ProfileRepo()
	ctx := context.Background()

	week := WeekStart(time.Date(2026, 10, 16, 18, 30, 0, 0, time.UTC))

	// No goal yet: increment is a silent no-op.
	require.NoError(t, profiles.IncrementWeeklyGoal(ctx, "u1", week, 80, 1))
	g, err := content.WeeklyGoal(ctx, "u1", week)
	require.NoError(t, err)
	assert.Nil(t, g)

	require.NoError(t, content.SetWeeklyGoal(ctx, "u1", week, 500))
	require.NoError(t, profiles.IncrementWeeklyGoal(ctx, "u1", week, 80, 1))
	require.NoError(t, profiles.IncrementWeeklyGoal(ctx, "u1", week, 90, 1))

	g, err = content.WeeklyGoal(ctx, "u1", week)
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, 500, g.TargetXP)
	assert.Equal(t, 170, g.XPEarned)
	assert.Equal(t, 2, g.TopicsCompleted)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"friday", time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC), time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)},
		{"monday", time.Date(2026, 10, 12, 0, 0, 1, 0, time.UTC), time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)},
		{"sunday", time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC), time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(WeekStart(tt.in)), "WeekStart(%v) = %v", tt.in, WeekStart(tt.in))
		})
	}
}
