package progress

import (
	"context"
	"errors"
	"maps"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/abhisek/fika/internal/changes"
	"github.com/abhisek/fika/internal/logger"
	"github.com/abhisek/fika/internal/store"
)

// XPPerPoint is the XP granted per raw point scored on a topic attempt.
const XPPerPoint = 10

var (
	// ErrInvalidScore is returned for a topic result with a non-positive
	// total or a negative score.
	ErrInvalidScore = errors.New("invalid topic score")

	// ErrInvalidTopic is returned for an empty topic ID.
	ErrInvalidTopic = errors.New("invalid topic id")
)

// Options configures a Cache. Device, Remote, Changes and Mirror may be nil.
type Options struct {
	Device  store.DeviceRepo
	Remote  store.ProfileRepo
	Changes *changes.Notifier
	Mirror  *Mirror
	Clock   func() time.Time
	Log     *logger.Logger
	Key     string
}

// Cache owns the learner's progress. Every mutation persists the whole state
// to the device, then notifies subscribers, then queues remote writes when a
// user is attached.
type Cache struct {
	device  store.DeviceRepo
	remote  store.ProfileRepo
	changes *changes.Notifier
	mirror  *Mirror
	clock   func() time.Time
	log     *logger.Logger
	key     string

	mu    sync.Mutex
	state State
}

// NewCache loads the device record under opts.Key. A missing or unreadable
// record starts from zeroed progress.
func NewCache(ctx context.Context, opts Options) *Cache {
	c := &Cache{
		device:  opts.Device,
		remote:  opts.Remote,
		changes: opts.Changes,
		mirror:  opts.Mirror,
		clock:   opts.Clock,
		log:     opts.Log,
		key:     opts.Key,
		state:   NewState(),
	}
	if c.clock == nil {
		c.clock = time.Now
	}
	if c.log == nil {
		c.log = logger.Nop()
	}
	if c.key == "" {
		c.key = DefaultStateKey
	}
	if c.device == nil {
		return c
	}

	payload, err := c.device.Load(ctx, c.key)
	switch {
	case err != nil:
		c.log.Warn("load progress record", "key", c.key, "error", err)
	case payload == nil:
	default:
		s, err := decodeState(payload)
		if err != nil {
			c.log.Warn("discarding corrupt progress record", "key", c.key, "error", err)
		}
		c.state = s
	}
	return c
}

// Progress returns a copy of the current state.
func (c *Cache) Progress() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// UserID returns the attached user, or "" when anonymous.
func (c *Cache) UserID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.UserID
}

// AddXP grants amount XP. Non-positive amounts are ignored.
func (c *Cache) AddXP(ctx context.Context, amount int) State {
	now := c.clock()
	s, changed := c.update(ctx, func(s *State) bool {
		if amount <= 0 {
			return false
		}
		s.XP += amount
		s.LastActivity = now
		return true
	})
	if changed {
		c.mirrorProfile(s)
	}
	return s
}

// IncrementStreak records today's activity against the streak. Calling it
// again on the same day changes nothing and notifies no one.
func (c *Cache) IncrementStreak(ctx context.Context) State {
	now := c.clock()
	s, changed := c.update(ctx, func(s *State) bool {
		next, ok := nextStreak(s.Streak, s.LastActivity, now)
		if !ok {
			return false
		}
		s.Streak = next
		s.LastActivity = now
		return true
	})
	if changed {
		c.mirrorProfile(s)
	}
	return s
}

// MarkTopicComplete records one attempt at topicID with score out of total.
// XP is granted on every attempt; the weekly goal only counts the first.
func (c *Cache) MarkTopicComplete(ctx context.Context, topicID string, score, total int) (State, error) {
	topicID = strings.TrimSpace(topicID)
	if topicID == "" {
		return c.Progress(), ErrInvalidTopic
	}
	if total <= 0 || score < 0 {
		return c.Progress(), ErrInvalidScore
	}
	pct := Percent(score, total)
	earned := score * XPPerPoint
	now := c.clock()

	var first bool
	s, _ := c.update(ctx, func(s *State) bool {
		rec, ok := s.CompletedTopics[topicID]
		first = !ok
		if first {
			rec = TopicRecord{BestScore: pct, CompletedAt: now}
		}
		rec.Score = pct
		rec.BestScore = max(rec.BestScore, pct)
		rec.Attempts++
		s.CompletedTopics[topicID] = rec

		s.XP += earned
		hour := now.Hour()
		s.LastStudyHour = &hour
		s.LastActivity = now
		return true
	})

	if userID := s.UserID; userID != "" && c.remote != nil {
		rec := s.CompletedTopics[topicID]
		data := store.TopicScoreData{
			UserID:    userID,
			TopicID:   topicID,
			Score:     rec.Score,
			BestScore: rec.BestScore,
			Attempts:  rec.Attempts,
			XPEarned:  earned,
		}
		c.submit("upsert topic score", func(ctx context.Context) error {
			return c.remote.UpsertTopicScore(ctx, data)
		})
		c.mirrorProfile(s)
		if first {
			week := store.WeekStart(now)
			c.submit("increment weekly goal", func(ctx context.Context) error {
				return c.remote.IncrementWeeklyGoal(ctx, userID, week, earned, 1)
			})
		}
	}
	return s, nil
}

// RecordWordAttempt counts one review of word. It stays on the device.
func (c *Cache) RecordWordAttempt(ctx context.Context, word string, correct bool) State {
	word = strings.TrimSpace(word)
	now := c.clock()
	s, _ := c.update(ctx, func(s *State) bool {
		if word == "" {
			return false
		}
		rec := s.WordHistory[word]
		if correct {
			rec.Correct++
		} else {
			rec.Wrong++
		}
		rec.LastSeen = now
		s.WordHistory[word] = rec
		s.LastActivity = now
		return true
	})
	return s
}

// SetUserID attaches a user without merging any data. Passing "" signs the
// user out: all progress is reset to defaults and subscribers are notified.
func (c *Cache) SetUserID(ctx context.Context, userID string) State {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		s, _ := c.update(ctx, func(s *State) bool {
			*s = NewState()
			return true
		})
		return s
	}

	c.mu.Lock()
	if c.state.UserID == userID {
		defer c.mu.Unlock()
		return c.state.Clone()
	}
	c.state.UserID = userID
	snap := c.state.Clone()
	c.persistLocked(ctx)
	c.mu.Unlock()
	return snap
}

// SaveProgress overwrites the fields set in p. It is meant for bulk restores.
func (c *Cache) SaveProgress(ctx context.Context, p Partial) State {
	s, _ := c.update(ctx, func(s *State) bool {
		if p.XP != nil {
			s.XP = max(*p.XP, 0)
		}
		if p.Streak != nil {
			s.Streak = max(*p.Streak, 0)
		}
		if p.CompletedTopics != nil {
			s.CompletedTopics = maps.Clone(p.CompletedTopics)
		}
		if p.WordHistory != nil {
			s.WordHistory = maps.Clone(p.WordHistory)
		}
		if p.LastActivity != nil {
			s.LastActivity = *p.LastActivity
		}
		if p.LastStudyHour != nil {
			h := *p.LastStudyHour
			s.LastStudyHour = &h
		}
		return true
	})
	return s
}

// Reset removes the device record and starts over from zeroed progress,
// keeping the attached user.
func (c *Cache) Reset(ctx context.Context) State {
	c.mu.Lock()
	userID := c.state.UserID
	c.state = NewState()
	c.state.UserID = userID
	snap := c.state.Clone()
	if c.device != nil {
		if err := c.device.Delete(ctx, c.key); err != nil {
			c.log.Warn("delete progress record", "key", c.key, "error", err)
		}
	}
	c.mu.Unlock()

	c.changes.Notify()
	return snap
}

// update applies fn under the lock and, when fn reports a change, persists
// the result and notifies subscribers after the lock is released.
func (c *Cache) update(ctx context.Context, fn func(*State) bool) (State, bool) {
	c.mu.Lock()
	changed := fn(&c.state)
	if changed {
		c.persistLocked(ctx)
	}
	snap := c.state.Clone()
	c.mu.Unlock()

	if changed {
		c.changes.Notify()
	}
	return snap, changed
}

func (c *Cache) persistLocked(ctx context.Context) {
	if c.device == nil {
		return
	}
	payload, err := encodeState(c.state)
	if err != nil {
		c.log.Warn("encode progress record", "error", err)
		return
	}
	if err := c.device.Save(ctx, c.key, payload); err != nil {
		c.log.Warn("save progress record", "key", c.key, "error", err)
	}
}

func (c *Cache) mirrorProfile(s State) {
	if s.UserID == "" || c.remote == nil {
		return
	}
	p := store.Profile{
		UserID:       s.UserID,
		XP:           s.XP,
		Streak:       s.Streak,
		LastActivity: s.LastActivity,
	}
	c.submit("upsert profile", func(ctx context.Context) error {
		return c.remote.UpsertProfile(ctx, p)
	})
}

func (c *Cache) submit(name string, fn Job) {
	if c.mirror == nil {
		return
	}
	c.mirror.Submit(name, fn)
}

// Percent converts score out of total into a whole percentage in [0, 100].
func Percent(score, total int) int {
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(float64(score) / float64(total) * 100))
	return min(max(pct, 0), 100)
}
