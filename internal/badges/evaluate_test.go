package badges

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/fika/internal/progress"
)

func hour(h int) *int { return &h }

func snapWith(fn func(*progress.State)) progress.State {
	s := progress.NewState()
	fn(&s)
	return s
}

func topics(best ...int) map[string]progress.TopicRecord {
	m := make(map[string]progress.TopicRecord, len(best))
	for i, b := range best {
		m[fmt.Sprintf("t%d", i)] = progress.TopicRecord{Score: b, BestScore: b, Attempts: 1}
	}
	return m
}

func TestCheck(t *testing.T) {
	levels := map[string][]string{"A1": {"t0", "t1", "t2", "t3"}}

	tests := []struct {
		name     string
		rule     Rule
		snap     progress.State
		unlocked bool
		frac     float64
	}{
		{"xp below", Threshold{MetricXP, 500}, snapWith(func(s *progress.State) { s.XP = 250 }), false, 0.5},
		{"xp reached", Threshold{MetricXP, 500}, snapWith(func(s *progress.State) { s.XP = 500 }), true, 1},
		{"streak", Threshold{MetricStreak, 7}, snapWith(func(s *progress.State) { s.Streak = 7 }), true, 1},
		{"topics", Threshold{MetricTopics, 5}, snapWith(func(s *progress.State) { s.CompletedTopics = topics(10, 20) }), false, 0.4},
		{"perfect none", PerfectCount{1}, snapWith(func(s *progress.State) { s.CompletedTopics = topics(90) }), false, 0},
		{"perfect one", PerfectCount{1}, snapWith(func(s *progress.State) { s.CompletedTopics = topics(90, 100) }), true, 1},
		{"perfect some", PerfectCount{5}, snapWith(func(s *progress.State) { s.CompletedTopics = topics(100, 100) }), false, 0.4},
		{"all perfect too few", AllPerfect{5}, snapWith(func(s *progress.State) { s.CompletedTopics = topics(100, 100) }), false, 0.4},
		{"all perfect one miss", AllPerfect{2}, snapWith(func(s *progress.State) { s.CompletedTopics = topics(100, 100, 80, 100) }), false, 0.75},
		{"all perfect", AllPerfect{2}, snapWith(func(s *progress.State) { s.CompletedTopics = topics(100, 100, 100) }), true, 1},
		{"all perfect empty", AllPerfect{0}, progress.NewState(), false, 0},
		{"level half", LevelComplete{"A1"}, snapWith(func(s *progress.State) { s.CompletedTopics = topics(50, 60) }), false, 0.5},
		{"level done", LevelComplete{"A1"}, snapWith(func(s *progress.State) { s.CompletedTopics = topics(1, 1, 1, 1, 1) }), true, 1},
		{"level unknown", LevelComplete{"C2"}, snapWith(func(s *progress.State) { s.CompletedTopics = topics(1) }), false, 0},
		{"no study hour", TimeOfDay{5, 9}, progress.NewState(), false, 0},
		{"early start inclusive", TimeOfDay{5, 9}, snapWith(func(s *progress.State) { s.LastStudyHour = hour(5) }), true, 1},
		{"early end exclusive", TimeOfDay{5, 9}, snapWith(func(s *progress.State) { s.LastStudyHour = hour(9) }), false, 0},
		{"night owl", TimeOfDay{22, 24}, snapWith(func(s *progress.State) { s.LastStudyHour = hour(23) }), true, 1},
		{"night owl early", TimeOfDay{22, 24}, snapWith(func(s *progress.State) { s.LastStudyHour = hour(21) }), false, 0},
		{"wrapping band", TimeOfDay{22, 2}, snapWith(func(s *progress.State) { s.LastStudyHour = hour(1) }), true, 1},
		{"nil rule", nil, progress.NewState(), false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unlocked, frac := Check(tt.rule, tt.snap, levels)
			assert.Equal(t, tt.unlocked, unlocked)
			assert.InDelta(t, tt.frac, frac, 1e-9)
		})
	}
}

func TestEvaluateClampsProgress(t *testing.T) {
	catalog := []Metadata{{ID: "xp-500", Category: CategoryProgress}}
	snap := snapWith(func(s *progress.State) { s.XP = 2000 })

	got := Evaluate(catalog, snap, nil)
	require.Len(t, got, 1)
	assert.True(t, got[0].Unlocked)
	assert.Equal(t, 100, got[0].ProgressPct)
}

func TestEvaluateRoundsProgress(t *testing.T) {
	catalog := []Metadata{{ID: "streak-3"}}
	snap := snapWith(func(s *progress.State) { s.Streak = 2 })

	got := Evaluate(catalog, snap, nil)
	assert.Equal(t, 67, got[0].ProgressPct)
	assert.False(t, got[0].Unlocked)
}

func TestEvaluateLockedNeverReportsFull(t *testing.T) {
	catalog := []Metadata{{ID: "xp-500"}, {ID: "xp-100"}}
	snap := snapWith(func(s *progress.State) { s.XP = 498 })

	got := Evaluate(catalog, snap, nil)
	require.Len(t, got, 2)
	assert.False(t, got[0].Unlocked)
	assert.Equal(t, 99, got[0].ProgressPct)
	assert.True(t, got[1].Unlocked)
	assert.Equal(t, 100, got[1].ProgressPct)

	st := BuildStatus(got, nil, 0)
	require.Len(t, st.Next, 1)
	assert.Equal(t, 99, st.Next[0].ProgressPct)
}

func TestEvaluateUnknownBadge(t *testing.T) {
	catalog := []Metadata{
		{ID: "first-lesson"},
		{ID: "moon-landing"},
	}
	snap := snapWith(func(s *progress.State) { s.CompletedTopics = topics(100) })

	got := Evaluate(catalog, snap, nil)
	require.Len(t, got, 2)
	assert.True(t, got[0].Unlocked)
	assert.False(t, got[1].Unlocked)
	assert.Zero(t, got[1].ProgressPct)
	assert.Nil(t, got[1].UnlockedAt)
}

func TestWordLearnerAfterTenWords(t *testing.T) {
	ctx := context.Background()
	cache := progress.NewCache(ctx, progress.Options{})
	catalog := []Metadata{{ID: "word-learner", Category: CategoryBeginner}}

	words := []string{"hej", "tack", "kaffe", "bok", "hus", "katt", "hund", "vatten", "bröd", "sol"}
	for i, w := range words {
		cache.RecordWordAttempt(ctx, w, true)
		got := Evaluate(catalog, cache.Progress(), nil)[0]
		if i < len(words)-1 {
			assert.False(t, got.Unlocked, "after %d words", i+1)
		}
	}

	got := Evaluate(catalog, cache.Progress(), nil)[0]
	assert.True(t, got.Unlocked)
	assert.Equal(t, 100, got.ProgressPct)
}

func TestLevels(t *testing.T) {
	assert.Equal(t, []string{"A1", "A2", "B1"}, Levels(DefaultRules()))
	assert.Empty(t, Levels(Rules{"xp-100": Threshold{MetricXP, 100}}))
}

func TestRulesMissing(t *testing.T) {
	catalog := []Metadata{{ID: "xp-100"}, {ID: "polyglot"}, {ID: "streak-3"}, {ID: "fika-break"}}
	assert.Equal(t, []string{"polyglot", "fika-break"}, DefaultRules().Missing(catalog))
	assert.Empty(t, DefaultRules().Missing(nil))
}

func TestBuildStatus(t *testing.T) {
	awardedAt := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	evaluated := []WithStatus{
		{Metadata: Metadata{ID: "a", SortOrder: 1}, Unlocked: true, ProgressPct: 100},
		{Metadata: Metadata{ID: "b", SortOrder: 2}, ProgressPct: 40},
		{Metadata: Metadata{ID: "c", SortOrder: 3}, ProgressPct: 90},
		{Metadata: Metadata{ID: "d", SortOrder: 4}, ProgressPct: 40},
		{Metadata: Metadata{ID: "e", SortOrder: 5}, ProgressPct: 10},
		{Metadata: Metadata{ID: "f", SortOrder: 6}, ProgressPct: 30},
	}

	st := BuildStatus(evaluated, map[string]time.Time{"f": awardedAt}, 3)

	assert.Len(t, st.All, 6)
	assert.False(t, st.Loading)
	require.Len(t, st.Unlocked, 2)
	assert.Equal(t, "f", st.Unlocked[1].ID)
	assert.Equal(t, 100, st.Unlocked[1].ProgressPct, "awarded badges stay unlocked")
	require.NotNil(t, st.Unlocked[1].UnlockedAt)
	assert.True(t, awardedAt.Equal(*st.Unlocked[1].UnlockedAt))

	ids := func(ws []WithStatus) []string {
		var out []string
		for _, w := range ws {
			out = append(out, w.ID)
		}
		return out
	}
	assert.Equal(t, []string{"b", "c", "d", "e"}, ids(st.Locked))
	assert.Equal(t, []string{"c", "b", "d"}, ids(st.Next))
	assert.Empty(t, st.NewlyUnlocked)
}

func TestCategory(t *testing.T) {
	for _, c := range AllCategories() {
		assert.True(t, c.Valid(), c)
		assert.NotEqual(t, string(c), c.DisplayName())
		assert.NotEqual(t, "✦", c.Icon())
	}
	assert.False(t, Category("legendary").Valid())
	assert.Equal(t, "legendary", Category("legendary").DisplayName())
}
