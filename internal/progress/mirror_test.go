package progress

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/fika/internal/logger"
)

func TestMirrorRunsJobsInOrder(t *testing.T) {
	m := NewMirror(context.Background(), 8, logger.Nop())

	var mu sync.Mutex
	var got []int
	for i := range 5 {
		ok := m.Submit("job", func(context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, i)
			return nil
		})
		require.True(t, ok)
	}
	m.Close()

	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestMirrorDropsWhenFull(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	m := NewMirror(context.Background(), 1, logger.Wrap(zap.New(core)))

	release := make(chan struct{})
	started := make(chan struct{})
	require.True(t, m.Submit("blocker", func(context.Context) error {
		close(started)
		<-release
		return nil
	}))
	<-started

	assert.True(t, m.Submit("queued", func(context.Context) error { return nil }))
	assert.False(t, m.Submit("dropped", func(context.Context) error { return nil }))

	close(release)
	m.Close()
	assert.Equal(t, 1, logs.FilterMessage("dropping remote write").Len())
}

func TestMirrorLogsFailures(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	m := NewMirror(context.Background(), 4, logger.Wrap(zap.New(core)))

	m.Submit("upsert profile", func(context.Context) error { return errors.New("timeout") })
	m.Close()

	entries := logs.FilterMessage("remote write failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "upsert profile", entries[0].ContextMap()["job"])
}

func TestMirrorOutlivesCallerContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewMirror(ctx, 4, nil)
	cancel()

	var jobErr error
	m.Submit("job", func(ctx context.Context) error {
		jobErr = ctx.Err()
		return nil
	})
	m.Close()
	assert.NoError(t, jobErr)
}

func TestMirrorRejectsAfterClose(t *testing.T) {
	m := NewMirror(context.Background(), 4, nil)
	m.Close()
	m.Close()
	assert.False(t, m.Submit("late", func(context.Context) error { return nil }))
}
