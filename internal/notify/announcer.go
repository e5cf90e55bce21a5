package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/fika/internal/badges"
	"github.com/abhisek/fika/internal/changes"
	"github.com/abhisek/fika/internal/logger"
	"github.com/abhisek/fika/internal/settle"
)

// AnnouncerOptions configures an Announcer. Warmup follows settle.New: zero
// arms immediately and a negative value uses settle.DefaultWarmup. A zero
// Debounce uses settle.DefaultDebounce.
type AnnouncerOptions struct {
	Sink     Sink
	Log      *logger.Logger
	Clock    func() time.Time
	Warmup   time.Duration
	Debounce time.Duration
	// User names the recipient of each notification.
	User func() string
}

// Announcer turns unlock batches into notifications. Batches seen during
// the warm-up after start are dropped, since restoring cached state at
// startup is not a new achievement. Later batches are merged until changes
// stop arriving for the debounce interval, then each badge is sent once.
type Announcer struct {
	sink  Sink
	log   *logger.Logger
	clock func() time.Time
	user  func() string
	wake  chan struct{}

	mu      sync.Mutex
	machine *settle.Machine
	pending []Notification
	queued  map[string]bool
}

// NewAnnouncer creates an Announcer whose warm-up starts now.
func NewAnnouncer(opts AnnouncerOptions) *Announcer {
	a := &Announcer{
		sink:   opts.Sink,
		log:    opts.Log,
		clock:  opts.Clock,
		user:   opts.User,
		wake:   make(chan struct{}, 1),
		queued: make(map[string]bool),
	}
	if a.log == nil {
		a.log = logger.Nop()
	}
	if a.clock == nil {
		a.clock = time.Now
	}
	if a.user == nil {
		a.user = func() string { return "" }
	}
	a.machine = settle.New(a.clock(), opts.Warmup, opts.Debounce)
	return a
}

// Attach wires the announcer to change signals and unlock batches. The
// returned function stops listening for change signals.
func (a *Announcer) Attach(n *changes.Notifier, s *badges.Synchronizer) (detach func()) {
	s.OnUnlocked(a.Unlocked)
	return n.Subscribe(a.Changed)
}

// Changed records a progress change.
func (a *Announcer) Changed() {
	a.mu.Lock()
	a.machine.Observe(a.clock())
	a.mu.Unlock()
	a.kick()
}

// Unlocked queues a batch of newly unlocked badges.
func (a *Announcer) Unlocked(batch []badges.WithStatus) {
	now := a.clock()
	userID := a.user()

	a.mu.Lock()
	if !a.machine.Observe(now) {
		a.mu.Unlock()
		a.log.Debug("dropping unlock batch during warm-up", "count", len(batch))
		return
	}
	for _, b := range batch {
		if a.queued[b.ID] {
			continue
		}
		a.queued[b.ID] = true
		a.pending = append(a.pending, FromBadge(userID, b, now))
	}
	a.mu.Unlock()
	a.kick()
}

// Pending returns the number of queued notifications.
func (a *Announcer) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pending)
}

// Settle sends the queued notifications if the current burst has settled
// and reports how many were sent. Each settled burst gets its own batch ID.
func (a *Announcer) Settle(ctx context.Context) int {
	a.mu.Lock()
	if !a.machine.Due(a.clock()) {
		a.mu.Unlock()
		return 0
	}
	batch := a.pending
	a.pending = nil
	a.queued = make(map[string]bool)
	a.mu.Unlock()

	batchID := uuid.NewString()
	for _, n := range batch {
		n.BatchID = batchID
		if err := a.sink.Send(ctx, n); err != nil {
			a.log.Warn("send unlock notification", "badge", n.BadgeID, "error", err)
		}
	}
	return len(batch)
}

// Run drives Settle from a timer until ctx is done.
func (a *Announcer) Run(ctx context.Context) {
	for {
		var fire <-chan time.Time
		var timer *time.Timer
		if wait, ok := a.untilDue(); ok {
			timer = time.NewTimer(wait)
			fire = timer.C
		}
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-a.wake:
		case <-fire:
			a.Settle(ctx)
		}
		if timer != nil {
			timer.Stop()
		}
	}
}

func (a *Announcer) untilDue() (time.Duration, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	now := a.clock()
	if a.machine.State(now) != settle.Pending {
		return 0, false
	}
	deadline, _ := a.machine.Deadline()
	return max(deadline.Sub(now), 0), true
}

func (a *Announcer) kick() {
	select {
	case a.wake <- struct{}{}:
	default:
	}
}
