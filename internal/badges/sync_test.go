package badges

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/fika/internal/changes"
	"github.com/abhisek/fika/internal/progress"
	"github.com/abhisek/fika/internal/store"
)

var awardTime = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

// mockBadgeRepo is an in-memory ProfileRepo for synchronizer tests.
type mockBadgeRepo struct {
	mu          sync.Mutex
	catalog     []store.BadgeRecord
	levels      map[string][]string
	owned       map[string]map[string]time.Time
	failAward   map[string]bool
	catalogErr  error
	ownedErr    error
	catalogHits int
	awardCalls  [][]string
}

func newMockBadgeRepo() *mockBadgeRepo {
	return &mockBadgeRepo{
		catalog: []store.BadgeRecord{
			{ID: "first-lesson", Name: "Första lektionen", Category: "beginner", SortOrder: 1},
			{ID: "xp-100", Name: "Hundra", Category: "progress", SortOrder: 2},
			{ID: "word-learner", Name: "Ordförråd", Category: "beginner", SortOrder: 3},
			{ID: "level-a1", Name: "A1 klar", Category: "mastery", SortOrder: 4},
			{ID: "mystery", Name: "?", Category: "special", SortOrder: 5},
		},
		levels:    map[string][]string{"A1": {"a1-greetings", "a1-food"}},
		owned:     make(map[string]map[string]time.Time),
		failAward: make(map[string]bool),
	}
}

func (m *mockBadgeRepo) FetchProfile(context.Context, string) (*store.Profile, error) {
	return nil, nil
}
func (m *mockBadgeRepo) UpsertProfile(context.Context, store.Profile) error { return nil }
func (m *mockBadgeRepo) FetchTopicScores(context.Context, string) ([]store.TopicScoreRecord, error) {
	return nil, nil
}
func (m *mockBadgeRepo) UpsertTopicScore(context.Context, store.TopicScoreData) error { return nil }
func (m *mockBadgeRepo) IncrementWeeklyGoal(context.Context, string, time.Time, int, int) error {
	return nil
}

func (m *mockBadgeRepo) FetchAllBadges(context.Context) ([]store.BadgeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.catalogHits++
	if m.catalogErr != nil {
		return nil, m.catalogErr
	}
	return slices.Clone(m.catalog), nil
}

func (m *mockBadgeRepo) FetchTopicIDsByLevel(_ context.Context, level string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.levels[level]), nil
}

func (m *mockBadgeRepo) FetchUserBadges(_ context.Context, userID string) ([]store.UserBadgeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ownedErr != nil {
		return nil, m.ownedErr
	}
	var out []store.UserBadgeRecord
	for id, at := range m.owned[userID] {
		out = append(out, store.UserBadgeRecord{BadgeID: id, UnlockedAt: at})
	}
	return out, nil
}

func (m *mockBadgeRepo) AwardBadges(_ context.Context, userID string, ids []string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.awardCalls = append(m.awardCalls, slices.Clone(ids))
	if m.owned[userID] == nil {
		m.owned[userID] = make(map[string]time.Time)
	}
	var awarded []string
	var err error
	for _, id := range ids {
		if m.failAward[id] {
			err = errors.New("write timeout")
			continue
		}
		if _, ok := m.owned[userID][id]; ok {
			continue
		}
		m.owned[userID][id] = awardTime
		awarded = append(awarded, id)
	}
	return awarded, err
}

func (m *mockBadgeRepo) calls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.awardCalls)
}

// fixedProgress is a settable Snapshotter.
type fixedProgress struct {
	mu sync.Mutex
	s  progress.State
}

func (f *fixedProgress) Progress() progress.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.s.Clone()
}

func (f *fixedProgress) set(fn func(*progress.State)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(&f.s)
}

func newSync(repo *mockBadgeRepo, p Snapshotter) *Synchronizer {
	return NewSynchronizer(SyncOptions{
		Remote:   repo,
		Progress: p,
		Clock:    func() time.Time { return awardTime },
	})
}

func ids(ws []WithStatus) []string {
	out := []string{}
	for _, w := range ws {
		out = append(out, w.ID)
	}
	return out
}

func signedIn(userID string, xp int, topicIDs ...string) *fixedProgress {
	s := progress.NewState()
	s.UserID = userID
	s.XP = xp
	for _, id := range topicIDs {
		s.CompletedTopics[id] = progress.TopicRecord{Score: 80, BestScore: 80, Attempts: 1}
	}
	return &fixedProgress{s: s}
}

func TestRefreshAwardsNewBadgesOnce(t *testing.T) {
	repo := newMockBadgeRepo()
	p := signedIn("u1", 150, "a1-greetings")
	s := newSync(repo, p)
	ctx := context.Background()

	st, err := s.Refresh(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"first-lesson", "xp-100"}, ids(st.NewlyUnlocked))
	assert.ElementsMatch(t, []string{"first-lesson", "xp-100"}, ids(st.Unlocked))
	assert.False(t, st.Loading)
	require.Len(t, repo.calls(), 1)
	assert.ElementsMatch(t, []string{"first-lesson", "xp-100"}, repo.calls()[0])

	st, err = s.Refresh(ctx)
	require.NoError(t, err)
	assert.Empty(t, st.NewlyUnlocked, "an unchanged unlocked set surfaces nothing")
	assert.Len(t, repo.calls(), 1, "nothing left to award")
	assert.ElementsMatch(t, []string{"first-lesson", "xp-100"}, ids(st.Unlocked))

	p.set(func(s *progress.State) {
		s.CompletedTopics["a1-food"] = progress.TopicRecord{Score: 100, BestScore: 100, Attempts: 1}
	})
	st, err = s.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"level-a1"}, ids(st.NewlyUnlocked))
	assert.ElementsMatch(t, []string{"first-lesson", "xp-100", "level-a1"}, ids(s.SessionUnlocked()))
}

func TestSessionUnlockedResetsOnUserChange(t *testing.T) {
	repo := newMockBadgeRepo()
	p := signedIn("u1", 150, "a1-greetings")
	s := newSync(repo, p)
	ctx := context.Background()

	_, err := s.Refresh(ctx)
	require.NoError(t, err)
	require.Len(t, s.SessionUnlocked(), 2)

	p.set(func(st *progress.State) { st.UserID = "u2" })
	st, err := s.Refresh(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"first-lesson", "xp-100"}, ids(st.NewlyUnlocked))
	assert.ElementsMatch(t, []string{"first-lesson", "xp-100"}, ids(s.SessionUnlocked()))

	p.set(func(st *progress.State) { st.UserID = "" })
	_, err = s.Refresh(ctx)
	require.NoError(t, err)
	assert.Empty(t, s.SessionUnlocked())
}

func TestRefreshPartialAward(t *testing.T) {
	repo := newMockBadgeRepo()
	repo.failAward["xp-100"] = true
	s := newSync(repo, signedIn("u1", 150, "a1-greetings"))
	ctx := context.Background()

	st, err := s.Refresh(ctx)
	require.Error(t, err)
	assert.Equal(t, []string{"first-lesson"}, ids(st.NewlyUnlocked), "only confirmed badges surface")

	delete(repo.failAward, "xp-100")
	st, err = s.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"xp-100"}, ids(st.NewlyUnlocked), "unconfirmed badges are retried")
	assert.Equal(t, []string{"xp-100"}, repo.calls()[1])
}

func TestRefreshKeepsAwardedBadges(t *testing.T) {
	repo := newMockBadgeRepo()
	earlier := awardTime.AddDate(0, -1, 0)
	repo.owned["u1"] = map[string]time.Time{"xp-100": earlier}
	s := newSync(repo, signedIn("u1", 20))

	st, err := s.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"xp-100"}, ids(st.Unlocked))
	assert.Equal(t, 100, st.Unlocked[0].ProgressPct)
	assert.True(t, earlier.Equal(*st.Unlocked[0].UnlockedAt))
	assert.Empty(t, st.NewlyUnlocked)
	assert.Empty(t, repo.calls())
}

func TestRefreshAnonymous(t *testing.T) {
	repo := newMockBadgeRepo()
	s := newSync(repo, signedIn("", 150, "a1-greetings"))

	st, err := s.Refresh(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"first-lesson", "xp-100"}, ids(st.Unlocked))
	assert.Empty(t, st.NewlyUnlocked)
	assert.Empty(t, repo.calls())
}

func TestRefreshFailureKeepsStatus(t *testing.T) {
	repo := newMockBadgeRepo()
	repo.catalogErr = errors.New("offline")
	s := newSync(repo, signedIn("u1", 150))
	ctx := context.Background()

	st, err := s.Refresh(ctx)
	require.Error(t, err)
	assert.True(t, st.Loading)
	assert.True(t, s.Current().Loading)

	repo.catalogErr = nil
	good, err := s.Refresh(ctx)
	require.NoError(t, err)
	assert.False(t, good.Loading)

	repo.ownedErr = errors.New("offline")
	st, err = s.Refresh(ctx)
	require.Error(t, err)
	assert.Equal(t, ids(good.All), ids(st.All))
	assert.Equal(t, ids(good.Unlocked), ids(s.Current().Unlocked))
}

func TestCatalogLoadedOncePerSession(t *testing.T) {
	repo := newMockBadgeRepo()
	s := newSync(repo, signedIn("u1", 0))
	ctx := context.Background()

	for range 3 {
		_, err := s.Refresh(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, repo.catalogHits)
}

func TestUnknownCatalogEntryStaysLocked(t *testing.T) {
	repo := newMockBadgeRepo()
	s := newSync(repo, signedIn("u1", 99999, "a1-greetings", "a1-food"))

	st, err := s.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"word-learner", "mystery"}, ids(st.Locked))
	assert.Equal(t, []string{"word-learner", "mystery"}, ids(st.Next))
}

func TestOnUnlocked(t *testing.T) {
	repo := newMockBadgeRepo()
	s := newSync(repo, signedIn("u1", 150))

	var batches [][]string
	s.OnUnlocked(func(ws []WithStatus) { batches = append(batches, ids(ws)) })

	_, err := s.Refresh(context.Background())
	require.NoError(t, err)
	_, err = s.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"xp-100"}}, batches)
}

func TestWatchRefreshesOnChange(t *testing.T) {
	repo := newMockBadgeRepo()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n := changes.New()
	cache := progress.NewCache(ctx, progress.Options{Changes: n})
	cache.SetUserID(ctx, "u1")

	s := newSync(repo, cache)
	unlocked := make(chan []string, 4)
	s.OnUnlocked(func(ws []WithStatus) { unlocked <- ids(ws) })
	s.Watch(ctx, n)

	assert.Eventually(t, func() bool { return !s.Current().Loading }, time.Second, 5*time.Millisecond)

	cache.AddXP(ctx, 120)
	select {
	case got := <-unlocked:
		assert.Equal(t, []string{"xp-100"}, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no unlock after change")
	}
}
