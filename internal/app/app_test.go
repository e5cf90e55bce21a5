package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/fika/internal/config"
	"github.com/abhisek/fika/internal/content"
	"github.com/abhisek/fika/internal/logger"
	"github.com/abhisek/fika/internal/store"
)

func newTestApp(t *testing.T, remote bool) *App {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.DBPath = filepath.Join(dir, "device", "fika.db")
	if remote {
		cfg.RemoteDSN = filepath.Join(dir, "remote.db")
	}
	a, err := New(context.Background(), Options{Config: cfg, Log: logger.Nop()})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestNewOfflineSharesDeviceStore(t *testing.T) {
	a := newTestApp(t, false)
	assert.Same(t, a.Device, a.Remote)
	assert.False(t, a.ownsRemote)
}

func TestNewWithRemote(t *testing.T) {
	a := newTestApp(t, true)
	assert.NotSame(t, a.Device, a.Remote)
	assert.True(t, a.ownsRemote)
}

func TestProgressSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.DBPath = filepath.Join(dir, "fika.db")
	ctx := context.Background()

	a, err := New(ctx, Options{Config: cfg})
	require.NoError(t, err)
	a.Cache.IncrementStreak(ctx)
	a.Cache.AddXP(ctx, 40)
	require.NoError(t, a.Close())

	b, err := New(ctx, Options{Config: cfg})
	require.NoError(t, err)
	defer b.Close()
	got := b.Cache.Progress()
	assert.Equal(t, 40, got.XP)
	assert.Equal(t, 1, got.Streak)
}

func TestBadgesAgainstSeededCatalog(t *testing.T) {
	a := newTestApp(t, false)
	ctx := context.Background()

	_, _, err := content.Seed(ctx, a.Content())
	require.NoError(t, err)

	_, err = a.Cache.MarkTopicComplete(ctx, "a1-greetings", 10, 10)
	require.NoError(t, err)

	st, err := a.Badges.Refresh(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(st.Unlocked))
	for _, b := range st.Unlocked {
		ids = append(ids, b.ID)
	}
	assert.Contains(t, ids, "first-lesson")
	assert.Contains(t, ids, "perfect-score")
	assert.Empty(t, st.NewlyUnlocked, "anonymous users are never awarded")
}

func TestResyncMergesRemoteProgress(t *testing.T) {
	a := newTestApp(t, true)
	ctx := context.Background()

	require.NoError(t, a.Remote.ProfileRepo().UpsertProfile(ctx, store.Profile{
		UserID: "u1", XP: 300, Streak: 4, LastActivity: time.Now().Add(-time.Hour),
	}))

	r := NewResyncer(a.Cache, a.Reconciler, logger.Nop())
	assert.False(t, r.Resync(ctx), "no user attached")

	a.Cache.SetUserID(ctx, "u1")
	assert.True(t, r.Resync(ctx))
	got := a.Cache.Progress()
	assert.Equal(t, 300, got.XP)
	assert.Equal(t, 4, got.Streak)
}

func TestResyncerStartStop(t *testing.T) {
	a := newTestApp(t, false)
	r := NewResyncer(a.Cache, a.Reconciler, logger.Nop())
	require.NoError(t, r.Start(context.Background(), time.Hour))
	r.Stop()
}
