package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/fika/internal/badges"
	"github.com/abhisek/fika/internal/logger"
	"github.com/abhisek/fika/internal/settle"
)

var t0 = time.Date(2026, 10, 16, 7, 30, 0, 0, time.UTC)

type recordingSink struct {
	mu   sync.Mutex
	sent []Notification
	err  error
}

func (r *recordingSink) Send(_ context.Context, n Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return r.err
}

func (r *recordingSink) ids() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, n := range r.sent {
		out = append(out, n.BadgeID)
	}
	return out
}

type vclock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *vclock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *vclock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func badge(id string) badges.WithStatus {
	return badges.WithStatus{Metadata: badges.Metadata{ID: id, Name: id, Icon: "🏅"}, Unlocked: true, ProgressPct: 100}
}

func newTestAnnouncer(sink Sink, clk *vclock) *Announcer {
	return NewAnnouncer(AnnouncerOptions{
		Sink:   sink,
		Clock:  clk.Now,
		Warmup: settle.DefaultWarmup,
		User:   func() string { return "u1" },
	})
}

func TestAnnouncerDropsBatchesWhileWarming(t *testing.T) {
	sink := &recordingSink{}
	clk := &vclock{now: t0}
	a := newTestAnnouncer(sink, clk)

	a.Changed()
	a.Unlocked([]badges.WithStatus{badge("first-lesson"), badge("xp-100")})
	assert.Zero(t, a.Pending())

	clk.Advance(3 * time.Second)
	assert.Zero(t, a.Settle(context.Background()))
	assert.Empty(t, sink.ids())
}

func TestAnnouncerMergesBurst(t *testing.T) {
	sink := &recordingSink{}
	clk := &vclock{now: t0}
	a := newTestAnnouncer(sink, clk)
	ctx := context.Background()

	clk.Advance(2 * time.Second)
	a.Changed()
	a.Unlocked([]badges.WithStatus{badge("xp-100")})
	clk.Advance(100 * time.Millisecond)
	a.Changed()
	a.Unlocked([]badges.WithStatus{badge("xp-100"), badge("streak-3")})
	assert.Equal(t, 2, a.Pending())

	clk.Advance(299 * time.Millisecond)
	assert.Zero(t, a.Settle(ctx), "burst has not settled")

	clk.Advance(time.Millisecond)
	assert.Equal(t, 2, a.Settle(ctx))
	assert.Equal(t, []string{"xp-100", "streak-3"}, sink.ids())
	assert.Zero(t, a.Settle(ctx), "each badge is sent once")

	sink.mu.Lock()
	assert.Equal(t, "u1", sink.sent[0].UserID)
	first := sink.sent[0].BatchID
	assert.NotEmpty(t, first)
	assert.Equal(t, first, sink.sent[1].BatchID, "one burst shares a batch ID")
	sink.mu.Unlock()

	a.Changed()
	a.Unlocked([]badges.WithStatus{badge("word-learner")})
	clk.Advance(settle.DefaultDebounce)
	assert.Equal(t, 1, a.Settle(ctx))
	sink.mu.Lock()
	assert.NotEqual(t, first, sink.sent[2].BatchID)
	sink.mu.Unlock()
}

func TestAnnouncerWarmupSetting(t *testing.T) {
	tests := []struct {
		name   string
		warmup time.Duration
		want   int
	}{
		{"zero disables warm-up", 0, 1},
		{"negative uses default", -1, 0},
		{"explicit", 500 * time.Millisecond, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			clk := &vclock{now: t0}
			a := NewAnnouncer(AnnouncerOptions{Sink: sink, Clock: clk.Now, Warmup: tt.warmup})

			clk.Advance(time.Second)
			a.Unlocked([]badges.WithStatus{badge("first-lesson")})
			clk.Advance(settle.DefaultDebounce)
			assert.Equal(t, tt.want, a.Settle(context.Background()))
		})
	}
}

func TestAnnouncerLogsSinkFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	sink := &recordingSink{err: errors.New("push gateway down")}
	clk := &vclock{now: t0}
	a := NewAnnouncer(AnnouncerOptions{Sink: sink, Clock: clk.Now, Log: logger.Wrap(zap.New(core))})

	clk.Advance(5 * time.Second)
	a.Unlocked([]badges.WithStatus{badge("night-owl")})
	clk.Advance(time.Second)
	assert.Equal(t, 1, a.Settle(context.Background()))
	assert.Equal(t, 1, logs.FilterMessage("send unlock notification").Len())
}

func TestAnnouncerRun(t *testing.T) {
	sink := &recordingSink{}
	a := NewAnnouncer(AnnouncerOptions{
		Sink:     sink,
		Warmup:   time.Millisecond,
		Debounce: 20 * time.Millisecond,
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go a.Run(ctx)

	time.Sleep(5 * time.Millisecond)
	a.Unlocked([]badges.WithStatus{badge("early-bird")})

	assert.Eventually(t, func() bool { return len(sink.ids()) == 1 }, time.Second, 5*time.Millisecond)
}

func TestFromBadge(t *testing.T) {
	at := t0.Add(-time.Hour)
	b := badge("xp-100")
	assert.True(t, FromBadge("u1", b, t0).UnlockedAt.Equal(t0))
	b.UnlockedAt = &at
	assert.True(t, FromBadge("u1", b, t0).UnlockedAt.Equal(at))
}

func TestLogSink(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := LogSink{Log: logger.Wrap(zap.New(core))}
	require.NoError(t, s.Send(context.Background(), Notification{UserID: "u1", BadgeID: "xp-100"}))

	entries := logs.FilterMessage("badge unlocked").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "xp-100", entries[0].ContextMap()["badge"])
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	s := &WriterSink{W: &buf}
	require.NoError(t, s.Send(context.Background(), Notification{BadgeID: "streak-7", Name: "En vecka", Icon: "🔥"}))
	assert.Contains(t, buf.String(), "En vecka unlocked!")
}

type fakePublisher struct {
	channel string
	payload []byte
	err     error
}

func (f *fakePublisher) Publish(ctx context.Context, channel string, message interface{}) *goredis.IntCmd {
	f.channel = channel
	f.payload, _ = message.([]byte)
	cmd := goredis.NewIntCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
	} else {
		cmd.SetVal(1)
	}
	return cmd
}

func TestRedisSink(t *testing.T) {
	pub := &fakePublisher{}
	s := &RedisSink{rdb: pub, channel: "fika.badges"}

	n := Notification{BatchID: "b-1", UserID: "u1", BadgeID: "level-a1", Name: "A1 klar", UnlockedAt: t0}
	require.NoError(t, s.Send(context.Background(), n))
	assert.Equal(t, "fika.badges", pub.channel)

	var got Notification
	require.NoError(t, json.Unmarshal(pub.payload, &got))
	assert.Equal(t, "level-a1", got.BadgeID)
	assert.Equal(t, "b-1", got.BatchID)
	assert.True(t, got.UnlockedAt.Equal(t0))

	pub.err = errors.New("connection reset")
	assert.ErrorContains(t, s.Send(context.Background(), n), "publish notification")
	assert.NoError(t, s.Close())
}

func TestNewRedisSinkValidates(t *testing.T) {
	_, err := NewRedisSink(context.Background(), "", "fika.badges")
	assert.Error(t, err)
	_, err = NewRedisSink(context.Background(), "localhost:6379", "")
	assert.Error(t, err)
}

func TestMultiSink(t *testing.T) {
	ok := &recordingSink{}
	bad := &recordingSink{err: errors.New("boom")}
	err := MultiSink{bad, ok}.Send(context.Background(), Notification{BadgeID: "xp-100"})
	assert.ErrorContains(t, err, "boom")
	assert.Equal(t, []string{"xp-100"}, ok.ids(), "later sinks still run")
}
