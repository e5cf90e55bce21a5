package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/fika/internal/logger"
	"github.com/abhisek/fika/internal/store"
)

func ptrTime(t time.Time) *time.Time { return &t }

func TestLoadCloudProgressScalars(t *testing.T) {
	tests := []struct {
		name     string
		localXP  int
		remoteXP int
		wantXP   int
	}{
		{"local ahead", 300, 150, 300},
		{"remote ahead", 100, 400, 400},
		{"equal", 250, 250, 250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			ctx := context.Background()
			h.cache.AddXP(ctx, tt.localXP)
			h.remote.profile = &store.Profile{UserID: "u1", XP: tt.remoteXP, Streak: 6}

			s, err := NewReconciler(h.cache, h.remote, logger.Nop()).LoadCloudProgress(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantXP, s.XP)
			assert.Equal(t, 6, s.Streak)
			assert.Equal(t, "u1", s.UserID)
		})
	}
}

func TestLoadCloudProgressTopics(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	remoteAt := day0.AddDate(0, 0, -3)

	_, err := h.cache.MarkTopicComplete(ctx, "a1-greetings", 9, 10)
	require.NoError(t, err)
	_, err = h.cache.MarkTopicComplete(ctx, "a1-food", 5, 10)
	require.NoError(t, err)

	h.remote.scores = []store.TopicScoreRecord{
		{TopicID: "a1-greetings", Score: 70, BestScore: 80, Attempts: 4, LastAttempted: ptrTime(remoteAt)},
		{TopicID: "a1-food", Score: 100, BestScore: 100, Attempts: 2, LastAttempted: ptrTime(remoteAt)},
		{TopicID: "a2-travel", Score: 60, BestScore: 60, Attempts: 1},
	}

	s, err := NewReconciler(h.cache, h.remote, nil).LoadCloudProgress(ctx, "u1")
	require.NoError(t, err)

	greet := s.CompletedTopics["a1-greetings"]
	assert.Equal(t, 90, greet.BestScore, "local best is kept when it is higher")
	assert.Equal(t, 1, greet.Attempts)

	food := s.CompletedTopics["a1-food"]
	assert.Equal(t, TopicRecord{Score: 100, BestScore: 100, Attempts: 2, CompletedAt: remoteAt}, food)

	travel := s.CompletedTopics["a2-travel"]
	assert.Equal(t, 60, travel.BestScore)
	assert.True(t, travel.CompletedAt.Equal(day0), "missing completion time falls back to now")
}

func TestLoadCloudProgressIsIdempotent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.cache.AddXP(ctx, 120)
	h.remote.profile = &store.Profile{UserID: "u1", XP: 400, Streak: 3, LastActivity: day0.Add(-time.Hour)}
	h.remote.scores = []store.TopicScoreRecord{
		{TopicID: "a1", Score: 80, BestScore: 90, Attempts: 3},
	}
	r := NewReconciler(h.cache, h.remote, logger.Nop())

	first, err := r.LoadCloudProgress(ctx, "u1")
	require.NoError(t, err)
	h.clock.Advance(time.Minute)
	second, err := r.LoadCloudProgress(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLoadCloudProgressNotifiesOnce(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.remote.profile = &store.Profile{UserID: "u1", XP: 400, Streak: 3}
	h.remote.scores = []store.TopicScoreRecord{
		{TopicID: "a1", BestScore: 90, Score: 90, Attempts: 1},
		{TopicID: "a2", BestScore: 70, Score: 70, Attempts: 1},
	}

	_, err := NewReconciler(h.cache, h.remote, nil).LoadCloudProgress(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, *h.notes)
}

func TestLoadCloudProgressFetchFailure(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.cache.AddXP(ctx, 30)
	notes := *h.notes
	h.remote.fetchErr = errors.New("connection refused")

	s, err := NewReconciler(h.cache, h.remote, nil).LoadCloudProgress(ctx, "u1")
	require.Error(t, err)
	assert.Equal(t, 30, s.XP)
	assert.Equal(t, "u1", h.cache.UserID(), "user stays attached")
	assert.Equal(t, notes, *h.notes)
}

func TestLoadCloudProgressDiscardedAfterSignOut(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.remote.profile = &store.Profile{UserID: "u1", XP: 400, Streak: 3}
	h.remote.scores = []store.TopicScoreRecord{{TopicID: "a1", BestScore: 90, Score: 90, Attempts: 1}}
	h.remote.onFetch = func() { h.cache.SetUserID(ctx, "") }

	s, err := NewReconciler(h.cache, h.remote, nil).LoadCloudProgress(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, s.XP)
	assert.Empty(t, s.CompletedTopics)
	assert.Empty(t, h.cache.UserID(), "user stays signed out")
	assert.Zero(t, h.cache.Progress().XP)
	assert.Equal(t, 1, *h.notes, "only the sign-out notifies")
}

func TestLoadCloudProgressRequiresUser(t *testing.T) {
	h := newHarness(t)
	_, err := NewReconciler(h.cache, h.remote, nil).LoadCloudProgress(context.Background(), " ")
	assert.ErrorIs(t, err, ErrNoUser)
}

func TestLoadCloudProgressNoRemoteProfile(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.cache.AddXP(ctx, 75)

	s, err := NewReconciler(h.cache, h.remote, nil).LoadCloudProgress(ctx, "new-user")
	require.NoError(t, err)
	assert.Equal(t, 75, s.XP, "local progress carries over to a fresh account")
}
