package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/fika/internal/changes"
	"github.com/abhisek/fika/internal/logger"
)

var day0 = time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)

type harness struct {
	cache   *Cache
	device  *memDevice
	remote  *mockProfileRepo
	mirror  *Mirror
	clock   *clock
	changes *changes.Notifier
	notes   *int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		device:  newMemDevice(),
		remote:  &mockProfileRepo{},
		clock:   newClock(day0),
		changes: changes.New(),
		notes:   new(int),
	}
	h.mirror = NewMirror(context.Background(), 0, logger.Nop())
	t.Cleanup(h.mirror.Close)
	h.changes.Subscribe(func() { *h.notes++ })
	h.cache = h.open()
	return h
}

func (h *harness) open() *Cache {
	return NewCache(context.Background(), Options{
		Device:  h.device,
		Remote:  h.remote,
		Changes: h.changes,
		Mirror:  h.mirror,
		Clock:   h.clock.Now,
		Log:     logger.Nop(),
	})
}

func TestNewCacheStartsEmpty(t *testing.T) {
	h := newHarness(t)
	s := h.cache.Progress()
	assert.Zero(t, s.XP)
	assert.Zero(t, s.Streak)
	assert.Empty(t, s.CompletedTopics)
	assert.NotNil(t, s.WordHistory)
	assert.True(t, s.Anonymous())
}

func TestNewCacheCorruptRecord(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `{xp:`},
		{"wrong version", `{"version":7,"state":{"xp":40}}`},
		{"negative xp", `{"version":1,"state":{"xp":-5}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.device.records[DefaultStateKey] = []byte(tt.payload)
			s := h.open().Progress()
			assert.Zero(t, s.XP)
			assert.NotNil(t, s.CompletedTopics)
		})
	}
}

func TestCachePersistsAcrossLoads(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.cache.AddXP(ctx, 40)
	_, err := h.cache.MarkTopicComplete(ctx, "a1-greetings", 7, 10)
	require.NoError(t, err)
	h.cache.RecordWordAttempt(ctx, "hej", true)

	s := h.open().Progress()
	assert.Equal(t, 110, s.XP)
	assert.Equal(t, 70, s.CompletedTopics["a1-greetings"].BestScore)
	assert.Equal(t, 1, s.WordHistory["hej"].Correct)
	require.NotNil(t, s.LastStudyHour)
	assert.Equal(t, 10, *s.LastStudyHour)
}

func TestAddXP(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	s := h.cache.AddXP(ctx, 25)
	assert.Equal(t, 25, s.XP)
	assert.True(t, s.LastActivity.Equal(day0))
	assert.Equal(t, 1, *h.notes)

	h.cache.AddXP(ctx, 0)
	h.cache.AddXP(ctx, -10)
	assert.Equal(t, 25, h.cache.Progress().XP)
	assert.Equal(t, 1, *h.notes, "non-positive amounts do not notify")
}

func TestIncrementStreak(t *testing.T) {
	tests := []struct {
		name   string
		streak int
		last   time.Time
		want   int
	}{
		{"never active", 0, time.Time{}, 1},
		{"yesterday", 4, day0.AddDate(0, 0, -1), 5},
		{"yesterday late evening", 4, time.Date(2026, 10, 15, 23, 59, 0, 0, time.UTC), 5},
		{"earlier today", 4, day0.Add(-9 * time.Hour), 4},
		{"two days ago", 4, day0.AddDate(0, 0, -2), 1},
		{"last month", 30, day0.AddDate(0, -1, 0), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			ctx := context.Background()
			h.cache.SaveProgress(ctx, Partial{Streak: &tt.streak, LastActivity: &tt.last})

			s := h.cache.IncrementStreak(ctx)
			assert.Equal(t, tt.want, s.Streak)
		})
	}
}

func TestIncrementStreakSameDayIsIdempotent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	first := h.cache.IncrementStreak(ctx)
	notes := *h.notes
	saves := h.device.saves

	h.clock.Advance(3 * time.Hour)
	second := h.cache.IncrementStreak(ctx)

	assert.Equal(t, first, second)
	assert.Equal(t, notes, *h.notes, "same-day increment does not notify")
	assert.Equal(t, saves, h.device.saves, "same-day increment does not persist")

	h.clock.Advance(24 * time.Hour)
	assert.Equal(t, 2, h.cache.IncrementStreak(ctx).Streak)
}

func TestMarkTopicCompleteScenario(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	s, err := h.cache.MarkTopicComplete(ctx, "a1", 8, 10)
	require.NoError(t, err)
	rec := s.CompletedTopics["a1"]
	assert.Equal(t, 80, rec.Score)
	assert.Equal(t, 80, rec.BestScore)
	assert.Equal(t, 1, rec.Attempts)
	assert.Equal(t, 80, s.XP)
	completedAt := rec.CompletedAt

	h.clock.Advance(time.Hour)
	s, err = h.cache.MarkTopicComplete(ctx, "a1", 9, 10)
	require.NoError(t, err)
	rec = s.CompletedTopics["a1"]
	assert.Equal(t, 90, rec.Score)
	assert.Equal(t, 90, rec.BestScore)
	assert.Equal(t, 2, rec.Attempts)
	assert.Equal(t, 170, s.XP)
	assert.True(t, completedAt.Equal(rec.CompletedAt), "first completion time is kept")
	require.NotNil(t, s.LastStudyHour)
	assert.Equal(t, 11, *s.LastStudyHour)
}

func TestBestScoreIsMonotonic(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	best := 0
	for _, score := range []int{5, 9, 3, 10, 0, 7} {
		s, err := h.cache.MarkTopicComplete(ctx, "a2-travel", score, 10)
		require.NoError(t, err)
		rec := s.CompletedTopics["a2-travel"]
		assert.GreaterOrEqual(t, rec.BestScore, best)
		assert.GreaterOrEqual(t, rec.BestScore, rec.Score)
		best = max(best, score*10)
		assert.Equal(t, best, rec.BestScore)
	}
}

func TestMarkTopicCompleteRejectsBadInput(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.cache.MarkTopicComplete(ctx, "a1", 3, 0)
	assert.ErrorIs(t, err, ErrInvalidScore)
	_, err = h.cache.MarkTopicComplete(ctx, "a1", -1, 10)
	assert.ErrorIs(t, err, ErrInvalidScore)
	_, err = h.cache.MarkTopicComplete(ctx, "  ", 3, 10)
	assert.ErrorIs(t, err, ErrInvalidTopic)

	assert.Empty(t, h.cache.Progress().CompletedTopics)
	assert.Zero(t, *h.notes)
}

func TestPercent(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{8, 10, 80},
		{2, 3, 67},
		{1, 3, 33},
		{12, 10, 100},
		{0, 10, 0},
		{5, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percent(tt.score, tt.total), "%d/%d", tt.score, tt.total)
	}
}

func TestMirrorsForAttachedUser(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.cache.SetUserID(ctx, "u1")
	h.cache.AddXP(ctx, 5)
	_, err := h.cache.MarkTopicComplete(ctx, "a1", 8, 10)
	require.NoError(t, err)
	_, err = h.cache.MarkTopicComplete(ctx, "a1", 10, 10)
	require.NoError(t, err)
	h.cache.RecordWordAttempt(ctx, "tack", true)
	h.mirror.Close()

	profiles, topics, goals := h.remote.snapshot()
	require.Len(t, profiles, 3)
	assert.Equal(t, 185, profiles[2].XP)
	assert.Equal(t, "u1", profiles[2].UserID)

	require.Len(t, topics, 2)
	assert.Equal(t, 100, topics[1].BestScore)
	assert.Equal(t, 2, topics[1].Attempts)
	assert.Equal(t, 100, topics[1].XPEarned)

	require.Len(t, goals, 1, "only the first completion counts toward the weekly goal")
	assert.Equal(t, 80, goals[0].xp)
	assert.Equal(t, 1, goals[0].topics)
	assert.Equal(t, time.Monday, goals[0].week.Weekday())
}

func TestAnonymousProgressStaysLocal(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.cache.AddXP(ctx, 5)
	h.cache.IncrementStreak(ctx)
	_, err := h.cache.MarkTopicComplete(ctx, "a1", 8, 10)
	require.NoError(t, err)
	h.mirror.Close()

	profiles, topics, goals := h.remote.snapshot()
	assert.Empty(t, profiles)
	assert.Empty(t, topics)
	assert.Empty(t, goals)
}

func TestRemoteFailureIsNotSurfaced(t *testing.T) {
	h := newHarness(t)
	h.remote.writeErr = errors.New("network down")
	ctx := context.Background()

	h.cache.SetUserID(ctx, "u1")
	s, err := h.cache.MarkTopicComplete(ctx, "a1", 8, 10)
	require.NoError(t, err)
	assert.Equal(t, 80, s.XP)
	h.mirror.Close()
	assert.Equal(t, 80, h.cache.Progress().XP)
}

func TestDeviceFailureIsNotSurfaced(t *testing.T) {
	h := newHarness(t)
	h.device.saveErr = errors.New("disk full")

	s := h.cache.AddXP(context.Background(), 10)
	assert.Equal(t, 10, s.XP)
	assert.Equal(t, 1, *h.notes)
}

func TestRecordWordAttempt(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.cache.RecordWordAttempt(ctx, "hej", true)
	h.clock.Advance(time.Minute)
	h.cache.RecordWordAttempt(ctx, "hej", false)
	h.cache.RecordWordAttempt(ctx, "hej", true)
	h.cache.RecordWordAttempt(ctx, "", true)

	s := h.cache.Progress()
	require.Len(t, s.WordHistory, 1)
	rec := s.WordHistory["hej"]
	assert.Equal(t, 2, rec.Correct)
	assert.Equal(t, 1, rec.Wrong)
	assert.True(t, rec.LastSeen.Equal(day0.Add(time.Minute)))
	assert.Equal(t, 3, *h.notes)
}

func TestSetUserID(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.cache.AddXP(ctx, 50)
	notes := *h.notes

	s := h.cache.SetUserID(ctx, "u1")
	assert.Equal(t, "u1", s.UserID)
	assert.Equal(t, 50, s.XP, "attaching does not merge or reset")
	assert.Equal(t, notes, *h.notes, "attaching does not notify")
	assert.Equal(t, "u1", h.open().UserID(), "attached user is persisted")

	s = h.cache.SetUserID(ctx, "")
	assert.True(t, s.Anonymous())
	assert.Zero(t, s.XP)
	assert.Equal(t, notes+1, *h.notes, "signing out notifies")
	assert.Zero(t, h.open().Progress().XP)
}

func TestSaveProgress(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.cache.RecordWordAttempt(ctx, "kaffe", true)

	xp, hour := 900, 6
	topics := map[string]TopicRecord{"a1": {Score: 50, BestScore: 90, Attempts: 3, CompletedAt: day0}}
	s := h.cache.SaveProgress(ctx, Partial{XP: &xp, CompletedTopics: topics, LastStudyHour: &hour})

	assert.Equal(t, 900, s.XP)
	assert.Equal(t, 90, s.CompletedTopics["a1"].BestScore)
	assert.Contains(t, s.WordHistory, "kaffe", "unset fields are kept")
	assert.Equal(t, 6, *s.LastStudyHour)

	topics["a2"] = TopicRecord{}
	assert.NotContains(t, h.cache.Progress().CompletedTopics, "a2", "input map is copied")
}

func TestProgressReturnsCopy(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, err := h.cache.MarkTopicComplete(ctx, "a1", 8, 10)
	require.NoError(t, err)

	s := h.cache.Progress()
	s.XP = 1_000_000
	s.CompletedTopics["a1"] = TopicRecord{BestScore: 0}
	*s.LastStudyHour = 3

	fresh := h.cache.Progress()
	assert.Equal(t, 80, fresh.XP)
	assert.Equal(t, 80, fresh.CompletedTopics["a1"].BestScore)
	assert.Equal(t, 10, *fresh.LastStudyHour)
}

func TestNotifyRunsAfterPersist(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	var seen []int
	h.changes.Subscribe(func() {
		// Re-entrant read from a listener must not deadlock.
		seen = append(seen, h.cache.Progress().XP)
		assert.Positive(t, h.device.saves)
	})
	h.cache.AddXP(ctx, 10)
	h.cache.AddXP(ctx, 5)
	assert.Equal(t, []int{10, 15}, seen)
}

func TestReset(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.cache.SetUserID(ctx, "u1")
	h.cache.AddXP(ctx, 10)

	s := h.cache.Reset(ctx)
	assert.Zero(t, s.XP)
	assert.Equal(t, "u1", s.UserID)
	assert.NotContains(t, h.device.records, DefaultStateKey)
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Stockholm")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// Clocks go back on 2026-10-25.
	sat := time.Date(2026, 10, 24, 23, 30, 0, 0, loc)
	sun := time.Date(2026, 10, 25, 23, 30, 0, 0, loc)
	assert.Equal(t, 1, daysBetween(sat, sun))
	assert.Equal(t, 0, daysBetween(sun.Add(-20*time.Hour), sun))
}
