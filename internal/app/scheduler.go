package app

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/abhisek/fika/internal/logger"
	"github.com/abhisek/fika/internal/progress"
)

// Resyncer periodically merges remote progress for the attached user, the
// way a client catches up when it regains connectivity.
type Resyncer struct {
	scheduler  *gocron.Scheduler
	reconciler *progress.Reconciler
	cache      *progress.Cache
	log        *logger.Logger
}

// NewResyncer creates a Resyncer. It does nothing until Start.
func NewResyncer(cache *progress.Cache, reconciler *progress.Reconciler, log *logger.Logger) *Resyncer {
	return &Resyncer{
		scheduler:  gocron.NewScheduler(time.UTC),
		reconciler: reconciler,
		cache:      cache,
		log:        log,
	}
}

// Start schedules a resync every interval without blocking.
func (r *Resyncer) Start(ctx context.Context, interval time.Duration) error {
	_, err := r.scheduler.Every(interval).WaitForSchedule().SingletonMode().Do(func() {
		r.Resync(ctx)
	})
	if err != nil {
		return err
	}
	r.scheduler.StartAsync()
	return nil
}

// Stop cancels future runs.
func (r *Resyncer) Stop() {
	r.scheduler.Stop()
}

// Resync merges remote progress once. It reports whether a merge ran.
func (r *Resyncer) Resync(ctx context.Context) bool {
	userID := r.cache.UserID()
	if userID == "" {
		return false
	}
	if _, err := r.reconciler.LoadCloudProgress(ctx, userID); err != nil {
		r.log.Warn("periodic resync failed", "user", userID, "error", err)
		return false
	}
	r.log.Debug("periodic resync done", "user", userID)
	return true
}
