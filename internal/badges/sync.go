package badges

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/fika/internal/changes"
	"github.com/abhisek/fika/internal/logger"
	"github.com/abhisek/fika/internal/progress"
	"github.com/abhisek/fika/internal/store"
)

// Snapshotter supplies the progress a pass evaluates.
type Snapshotter interface {
	Progress() progress.State
}

// SyncOptions configures a Synchronizer.
type SyncOptions struct {
	Remote   store.ProfileRepo
	Progress Snapshotter
	Rules    Rules
	Log      *logger.Logger
	Clock    func() time.Time
	NextCap  int
}

// Synchronizer turns rule results into persisted awards and surfaces each
// newly awarded badge once.
type Synchronizer struct {
	remote   store.ProfileRepo
	progress Snapshotter
	rules    Rules
	log      *logger.Logger
	clock    func() time.Time
	nextCap  int

	// pass serializes Refresh calls.
	pass sync.Mutex

	// Loaded once per session.
	loaded        bool
	catalog       []Metadata
	topicsByLevel map[string][]string

	mu        sync.Mutex
	status    Status
	lastUser  string
	surfaced  map[string]struct{}
	session   []WithStatus
	listeners []func([]WithStatus)
}

// NewSynchronizer creates a synchronizer. Its status reports Loading until
// the first successful Refresh.
func NewSynchronizer(opts SyncOptions) *Synchronizer {
	s := &Synchronizer{
		remote:   opts.Remote,
		progress: opts.Progress,
		rules:    opts.Rules,
		log:      opts.Log,
		clock:    opts.Clock,
		nextCap:  opts.NextCap,
		status:   Status{Loading: true},
		surfaced: make(map[string]struct{}),
	}
	if s.rules == nil {
		s.rules = DefaultRules()
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.nextCap <= 0 {
		s.nextCap = DefaultNextCap
	}
	return s
}

// Current returns the status produced by the last successful pass.
func (s *Synchronizer) Current() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// SessionUnlocked returns every badge surfaced for the current user since
// the synchronizer was created or the user last changed.
func (s *Synchronizer) SessionUnlocked() []WithStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.session)
}

// OnUnlocked registers fn to receive each non-empty NewlyUnlocked batch.
func (s *Synchronizer) OnUnlocked(fn func([]WithStatus)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Refresh evaluates the current progress, awards newly earned badges and
// publishes the resulting Status. On failure the previous Status is kept
// and the error returned; the next pass retries naturally. If the award
// call fails part way, the badges it did confirm are still surfaced.
func (s *Synchronizer) Refresh(ctx context.Context) (Status, error) {
	s.pass.Lock()
	defer s.pass.Unlock()

	if err := s.loadCatalog(ctx); err != nil {
		return s.Current(), err
	}

	snap := s.progress.Progress()
	evaluated := EvaluateWith(s.rules, s.catalog, snap, s.topicsByLevel)
	userID := snap.UserID

	if userID == "" {
		st := BuildStatus(evaluated, nil, s.nextCap)
		s.publish(st, "", nil)
		return st, nil
	}

	owned, err := s.remote.FetchUserBadges(ctx, userID)
	if err != nil {
		return s.Current(), fmt.Errorf("fetch user badges: %w", err)
	}
	awarded := make(map[string]time.Time, len(owned))
	for _, ub := range owned {
		awarded[ub.BadgeID] = ub.UnlockedAt
	}

	var earned []string
	for _, ws := range evaluated {
		if _, ok := awarded[ws.ID]; ws.Unlocked && !ok {
			earned = append(earned, ws.ID)
		}
	}

	var confirmed []string
	var awardErr error
	if len(earned) > 0 {
		passID := uuid.NewString()
		confirmed, awardErr = s.remote.AwardBadges(ctx, userID, earned)
		if awardErr != nil {
			awardErr = fmt.Errorf("award badges: %w", awardErr)
			s.log.Warn("badge award incomplete", "pass", passID, "user", userID,
				"requested", earned, "confirmed", confirmed, "error", awardErr)
		} else {
			s.log.Debug("badges awarded", "pass", passID, "user", userID, "ids", confirmed)
		}
		now := s.clock()
		for _, id := range confirmed {
			if _, ok := awarded[id]; !ok {
				awarded[id] = now
			}
		}
	}
	if awardErr != nil && len(confirmed) == 0 {
		return s.Current(), awardErr
	}

	st := BuildStatus(evaluated, awarded, s.nextCap)
	st = s.publish(st, userID, confirmed)
	return st, awardErr
}

// publish stores st with its NewlyUnlocked batch and notifies listeners.
func (s *Synchronizer) publish(st Status, userID string, confirmed []string) Status {
	s.mu.Lock()
	if userID != s.lastUser {
		s.surfaced = make(map[string]struct{})
		s.session = nil
		s.lastUser = userID
	}
	byID := make(map[string]WithStatus, len(st.All))
	for _, ws := range st.All {
		byID[ws.ID] = ws
	}
	next := make(map[string]struct{}, len(confirmed))
	for _, id := range confirmed {
		next[id] = struct{}{}
		if _, dup := s.surfaced[id]; dup {
			continue
		}
		if ws, ok := byID[id]; ok {
			st.NewlyUnlocked = append(st.NewlyUnlocked, ws)
		}
	}
	s.surfaced = next
	s.session = append(s.session, st.NewlyUnlocked...)
	s.status = st
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	if len(st.NewlyUnlocked) > 0 {
		batch := slices.Clone(st.NewlyUnlocked)
		for _, fn := range listeners {
			fn(batch)
		}
	}
	return st
}

func (s *Synchronizer) loadCatalog(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	records, err := s.remote.FetchAllBadges(ctx)
	if err != nil {
		return fmt.Errorf("fetch badge catalog: %w", err)
	}
	catalog := make([]Metadata, 0, len(records))
	for _, r := range records {
		catalog = append(catalog, FromRecord(r))
	}

	levels := Levels(s.rules)
	byLevel := make(map[string][]string, len(levels))
	var errs []error
	for _, level := range levels {
		ids, err := s.remote.FetchTopicIDsByLevel(ctx, level)
		if err != nil {
			errs = append(errs, fmt.Errorf("fetch topics for level %s: %w", level, err))
			continue
		}
		byLevel[level] = ids
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	s.catalog = catalog
	s.topicsByLevel = byLevel
	s.loaded = true
	return nil
}

// Watch runs a Refresh after every change signal from n until ctx is done.
// Signals that arrive while a pass is running collapse into one follow-up
// pass. One pass runs immediately.
func (s *Synchronizer) Watch(ctx context.Context, n *changes.Notifier) {
	trigger := make(chan struct{}, 1)
	kick := func() {
		select {
		case trigger <- struct{}{}:
		default:
		}
	}
	unsubscribe := n.Subscribe(kick)
	kick()

	go func() {
		defer unsubscribe()
		for {
			select {
			case <-ctx.Done():
				return
			case <-trigger:
				if _, err := s.Refresh(ctx); err != nil {
					s.log.Warn("badge refresh failed", "error", err)
				}
			}
		}
	}()
}
