package progress

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/fika/internal/logger"
	"github.com/abhisek/fika/internal/store"
)

// ErrNoUser is returned when reconciliation is requested without a user.
var ErrNoUser = errors.New("no user id")

// Reconciler merges a user's remote profile into the local cache on sign-in
// or when connectivity returns.
type Reconciler struct {
	cache  *Cache
	remote store.ProfileRepo
	log    *logger.Logger
}

// NewReconciler creates a reconciler for cache backed by remote.
func NewReconciler(cache *Cache, remote store.ProfileRepo, log *logger.Logger) *Reconciler {
	if log == nil {
		log = logger.Nop()
	}
	return &Reconciler{cache: cache, remote: remote, log: log}
}

// LoadCloudProgress attaches userID and merges its remote progress into the
// cache. Counters and topic results only ever move forward, so repeating the
// merge against the same remote data changes nothing. On a fetch failure the
// user stays attached and local progress is left as it was.
func (r *Reconciler) LoadCloudProgress(ctx context.Context, userID string) (State, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return r.cache.Progress(), ErrNoUser
	}
	r.cache.SetUserID(ctx, userID)

	var (
		profile *store.Profile
		scores  []store.TopicScoreRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := r.remote.FetchProfile(gctx, userID)
		if err != nil {
			return fmt.Errorf("fetch profile: %w", err)
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		s, err := r.remote.FetchTopicScores(gctx, userID)
		if err != nil {
			return fmt.Errorf("fetch topic scores: %w", err)
		}
		scores = s
		return nil
	})
	if err := g.Wait(); err != nil {
		return r.cache.Progress(), fmt.Errorf("load cloud progress: %w", err)
	}

	now := r.cache.clock()
	s, changed := r.cache.update(ctx, func(s *State) bool {
		// Signed out or switched while fetching: the result is stale.
		if s.UserID != userID {
			return false
		}
		mergeRemote(s, profile, scores, now)
		return true
	})
	if !changed {
		r.log.Debug("discarding cloud progress for detached user", "user", userID)
	}
	return s, nil
}

func mergeRemote(s *State, profile *store.Profile, scores []store.TopicScoreRecord, now time.Time) {
	if profile != nil {
		s.XP = max(s.XP, profile.XP)
		s.Streak = max(s.Streak, profile.Streak)
		if profile.LastActivity.After(s.LastActivity) {
			s.LastActivity = profile.LastActivity
		}
	}
	for _, rs := range scores {
		if rs.TopicID == "" {
			continue
		}
		local, ok := s.CompletedTopics[rs.TopicID]
		if ok && rs.BestScore <= local.BestScore {
			continue
		}
		completedAt := now
		if rs.LastAttempted != nil {
			completedAt = *rs.LastAttempted
		}
		s.CompletedTopics[rs.TopicID] = TopicRecord{
			Score:       rs.Score,
			BestScore:   max(rs.BestScore, rs.Score),
			Attempts:    max(rs.Attempts, 1),
			CompletedAt: completedAt,
		}
	}
}
