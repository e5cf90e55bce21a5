package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/fika/internal/badges"
	"github.com/abhisek/fika/internal/changes"
	"github.com/abhisek/fika/internal/content"
	"github.com/abhisek/fika/internal/logger"
	"github.com/abhisek/fika/internal/progress"
	"github.com/abhisek/fika/internal/store"
)

type fixture struct {
	srv     *httptest.Server
	cache   *progress.Cache
	remote  store.ProfileRepo
	mirror  *progress.Mirror
	badges  *badges.Synchronizer
	changes *changes.Notifier
	now     *time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	var records []store.BadgeRecord
	for _, m := range content.DefaultCatalog() {
		records = append(records, m.Record())
	}
	_, err = st.ContentRepo().SaveBadges(ctx, records)
	require.NoError(t, err)
	_, err = st.ContentRepo().SaveTopics(ctx, content.DefaultTopics())
	require.NoError(t, err)

	mirror := progress.NewMirror(ctx, 0, logger.Nop())
	t.Cleanup(mirror.Close)
	n := changes.New()
	// Midday keeps the time-of-day badges out of the way.
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.Local)
	clock := func() time.Time { return now }
	cache := progress.NewCache(ctx, progress.Options{
		Device:  st.DeviceRepo(),
		Remote:  st.ProfileRepo(),
		Changes: n,
		Mirror:  mirror,
		Clock:   clock,
	})
	syncer := badges.NewSynchronizer(badges.SyncOptions{Remote: st.ProfileRepo(), Progress: cache, Clock: clock})
	srv := NewServer(Deps{
		Cache:      cache,
		Reconciler: progress.NewReconciler(cache, st.ProfileRepo(), nil),
		Badges:     syncer,
		Clock:      clock,
		Version:    "test",
	})
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return &fixture{
		srv:     ts,
		cache:   cache,
		remote:  st.ProfileRepo(),
		mirror:  mirror,
		badges:  syncer,
		changes: n,
		now:     &now,
	}
}

func (f *fixture) do(t *testing.T, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, f.srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func progressField(t *testing.T, out map[string]any, key string) any {
	t.Helper()
	p, ok := out["progress"].(map[string]any)
	require.True(t, ok, "response has progress: %v", out)
	return p[key]
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)
	resp, out := f.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", out["status"])
}

func TestProgressFlow(t *testing.T) {
	f := newFixture(t)

	resp, out := f.do(t, http.MethodPost, "/v1/progress/xp", `{"amount": 30}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 30, progressField(t, out, "xp"))

	resp, out = f.do(t, http.MethodPost, "/v1/topics/a1-greetings/complete", `{"score": 8, "total": 10}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 80, out["percent"])
	assert.EqualValues(t, 110, progressField(t, out, "xp"))

	resp, out = f.do(t, http.MethodPost, "/v1/words/hej/attempts", `{"correct": false}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	words := progressField(t, out, "wordHistory").(map[string]any)
	assert.EqualValues(t, 1, words["hej"].(map[string]any)["wrong"])

	resp, out = f.do(t, http.MethodPost, "/v1/progress/streak", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, progressField(t, out, "streak"))

	_, out = f.do(t, http.MethodGet, "/v1/progress", "")
	assert.EqualValues(t, 110, progressField(t, out, "xp"))
}

func TestValidationErrors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name, method, path, body, want string
	}{
		{"zero xp", http.MethodPost, "/v1/progress/xp", `{"amount": 0}`, "amount must be greater than 0"},
		{"bad json", http.MethodPost, "/v1/progress/xp", `{"amount": `, "invalid JSON body"},
		{"unknown field", http.MethodPost, "/v1/progress/xp", `{"amount": 5, "bonus": 1}`, "invalid JSON body"},
		{"zero total", http.MethodPost, "/v1/topics/a1/complete", `{"score": 1, "total": 0}`, "total must be greater than 0"},
		{"negative score", http.MethodPost, "/v1/topics/a1/complete", `{"score": -1, "total": 10}`, "score must be at least 0"},
		{"missing correct", http.MethodPost, "/v1/words/hej/attempts", `{}`, "correct is required"},
		{"missing user", http.MethodPut, "/v1/session", `{"userId": ""}`, "userid is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, out := f.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "bad_request", out["code"])
			assert.Contains(t, out["message"], tt.want)
		})
	}
	assert.Zero(t, f.cache.Progress().XP)
}

func TestSessionLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.remote.UpsertProfile(ctx, store.Profile{UserID: "u1", XP: 400, Streak: 2, LastActivity: time.Now().Add(-time.Hour)}))

	f.do(t, http.MethodPost, "/v1/progress/xp", `{"amount": 100}`)

	resp, out := f.do(t, http.MethodPut, "/v1/session", `{"userId": "u1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, out["synced"])
	assert.EqualValues(t, 400, progressField(t, out, "xp"))
	assert.Equal(t, "u1", progressField(t, out, "userId"))

	resp, out = f.do(t, http.MethodDelete, "/v1/session", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, progressField(t, out, "xp"))
	assert.Nil(t, progressField(t, out, "userId"))
}

func TestBadges(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.do(t, http.MethodPut, "/v1/session", `{"userId": "u1"}`)
	f.do(t, http.MethodPost, "/v1/topics/a1-greetings/complete", `{"score": 10, "total": 10}`)
	f.mirror.Close()

	resp, out := f.do(t, http.MethodGet, "/v1/badges", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, out["loading"])
	assert.Len(t, out["all"], len(content.DefaultCatalog()))

	var newly []string
	for _, b := range out["newlyUnlocked"].([]any) {
		newly = append(newly, b.(map[string]any)["id"].(string))
	}
	assert.ElementsMatch(t, []string{"first-lesson", "xp-100", "perfect-score"}, newly)

	owned, err := f.remote.FetchUserBadges(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, owned, 3)

	_, out = f.do(t, http.MethodGet, "/v1/badges", "")
	assert.Len(t, out["newlyUnlocked"], 3, "unlocks stay listed for the rest of the session")
	assert.Len(t, out["next"], badges.DefaultNextCap)

	f.do(t, http.MethodDelete, "/v1/session", "")
	_, out = f.do(t, http.MethodGet, "/v1/badges", "")
	assert.Empty(t, out["newlyUnlocked"])
}

func TestBadgesAfterBackgroundSync(t *testing.T) {
	f := newFixture(t)

	f.do(t, http.MethodPut, "/v1/session", `{"userId": "u1"}`)
	f.do(t, http.MethodPost, "/v1/topics/a1-greetings/complete", `{"score": 10, "total": 10}`)
	f.mirror.Close()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	f.badges.Watch(ctx, f.changes)
	require.Eventually(t, func() bool {
		return len(f.badges.SessionUnlocked()) == 3
	}, 2*time.Second, 10*time.Millisecond)

	resp, out := f.do(t, http.MethodGet, "/v1/badges", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var newly []string
	for _, b := range out["newlyUnlocked"].([]any) {
		newly = append(newly, b.(map[string]any)["id"].(string))
	}
	assert.ElementsMatch(t, []string{"first-lesson", "xp-100", "perfect-score"}, newly)
}

func TestDueWords(t *testing.T) {
	f := newFixture(t)

	f.do(t, http.MethodPost, "/v1/words/hej/attempts", `{"correct": false}`)
	f.do(t, http.MethodPost, "/v1/words/tack/attempts", `{"correct": true}`)

	resp, out := f.do(t, http.MethodGet, "/v1/words/due", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, out["words"])

	*f.now = f.now.Add(36 * time.Hour)
	_, out = f.do(t, http.MethodGet, "/v1/words/due", "")
	words := out["words"].([]any)
	require.Len(t, words, 1)
	assert.Equal(t, "hej", words[0].(map[string]any)["word"])

	*f.now = f.now.Add(5 * 24 * time.Hour)
	_, out = f.do(t, http.MethodGet, "/v1/words/due?limit=1", "")
	assert.Len(t, out["words"], 1)

	resp, _ = f.do(t, http.MethodGet, "/v1/words/due?limit=x", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
