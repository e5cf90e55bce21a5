package progress

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/abhisek/fika/internal/store"
)

type memDevice struct {
	mu      sync.Mutex
	records map[string][]byte
	saves   int
	saveErr error
}

func newMemDevice() *memDevice {
	return &memDevice{records: make(map[string][]byte)}
}

func (d *memDevice) Load(_ context.Context, key string) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.records[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), b...), nil
}

func (d *memDevice) Save(_ context.Context, key string, payload []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.saveErr != nil {
		return d.saveErr
	}
	d.saves++
	d.records[key] = append([]byte(nil), payload...)
	return nil
}

func (d *memDevice) Delete(_ context.Context, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.records, key)
	return nil
}

// mockProfileRepo records remote writes and serves canned reads.
type mockProfileRepo struct {
	mu          sync.Mutex
	profile     *store.Profile
	scores      []store.TopicScoreRecord
	fetchErr    error
	writeErr    error
	profiles    []store.Profile
	topicWrites []store.TopicScoreData
	goalCalls   []goalCall
	// onFetch runs inside FetchProfile before it answers.
	onFetch     func()
}

type goalCall struct {
	userID string
	week   time.Time
	xp     int
	topics int
}

func (m *mockProfileRepo) FetchProfile(context.Context, string) (*store.Profile, error) {
	if m.onFetch != nil {
		m.onFetch()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	if m.profile == nil {
		return nil, nil
	}
	p := *m.profile
	return &p, nil
}

func (m *mockProfileRepo) UpsertProfile(_ context.Context, p store.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.profiles = append(m.profiles, p)
	return nil
}

func (m *mockProfileRepo) FetchTopicScores(context.Context, string) ([]store.TopicScoreRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return append([]store.TopicScoreRecord(nil), m.scores...), nil
}

func (m *mockProfileRepo) UpsertTopicScore(_ context.Context, d store.TopicScoreData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.topicWrites = append(m.topicWrites, d)
	return nil
}

func (m *mockProfileRepo) FetchAllBadges(context.Context) ([]store.BadgeRecord, error) {
	return nil, nil
}

func (m *mockProfileRepo) FetchUserBadges(context.Context, string) ([]store.UserBadgeRecord, error) {
	return nil, nil
}

func (m *mockProfileRepo) AwardBadges(context.Context, string, []string) ([]string, error) {
	return nil, errors.New("not implemented")
}

func (m *mockProfileRepo) FetchTopicIDsByLevel(context.Context, string) ([]string, error) {
	return nil, nil
}

func (m *mockProfileRepo) IncrementWeeklyGoal(_ context.Context, userID string, week time.Time, xp, topics int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.goalCalls = append(m.goalCalls, goalCall{userID: userID, week: week, xp: xp, topics: topics})
	return nil
}

func (m *mockProfileRepo) snapshot() (profiles []store.Profile, topics []store.TopicScoreData, goals []goalCall) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append(profiles, m.profiles...), append(topics, m.topicWrites...), append(goals, m.goalCalls...)
}

// clock is a settable virtual clock.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock(t time.Time) *clock { return &clock{now: t} }

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
