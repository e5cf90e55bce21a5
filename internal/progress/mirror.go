package progress

import (
	"context"
	"errors"
	"sync"

	"github.com/abhisek/fika/internal/logger"
)

// DefaultMirrorQueue is the number of remote writes that may wait for the
// mirror worker before new ones are dropped.
const DefaultMirrorQueue = 64

// ErrQueueFull is reported to the log when a remote write is dropped.
var ErrQueueFull = errors.New("mirror queue full")

// Job is one remote write. It runs on the mirror worker goroutine.
type Job func(ctx context.Context) error

type mirrorJob struct {
	name string
	fn   Job
}

// Mirror runs remote writes in the background, one at a time, in submission
// order. A failed job is logged and never reported to whoever submitted it.
type Mirror struct {
	log     *logger.Logger
	ctx     context.Context
	pending chan mirrorJob
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewMirror starts the mirror worker. Jobs run with a context derived from
// ctx that is not cancelled when ctx is.
func NewMirror(ctx context.Context, queue int, log *logger.Logger) *Mirror {
	if queue <= 0 {
		queue = DefaultMirrorQueue
	}
	if log == nil {
		log = logger.Nop()
	}
	m := &Mirror{
		log:     log,
		ctx:     context.WithoutCancel(ctx),
		pending: make(chan mirrorJob, queue),
		done:    make(chan struct{}),
	}
	go m.processLoop()
	return m
}

// Submit queues fn without blocking. It reports whether the job was accepted.
func (m *Mirror) Submit(name string, fn Job) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		m.log.Warn("mirror closed, dropping job", "job", name)
		return false
	}
	select {
	case m.pending <- mirrorJob{name: name, fn: fn}:
		return true
	default:
		m.log.Warn("dropping remote write", "job", name, "error", ErrQueueFull)
		return false
	}
}

func (m *Mirror) processLoop() {
	defer close(m.done)
	for job := range m.pending {
		if err := job.fn(m.ctx); err != nil {
			m.log.Warn("remote write failed", "job", job.name, "error", err)
		}
	}
}

// Close stops intake and waits for queued jobs to finish.
func (m *Mirror) Close() {
	m.mu.Lock()
	if !m.closed {
		m.closed = true
		close(m.pending)
	}
	m.mu.Unlock()
	<-m.done
}
