// Package settle decides when a burst of change events has gone quiet long
// enough to act on. Events during the warm-up window after start are
// ignored; after that, each event pushes the firing time out by the
// debounce interval.
//
// The Machine is pure: callers pass the current time in, which keeps it
// testable with a virtual clock.
package settle

import (
	"fmt"
	"time"
)

const (
	DefaultWarmup   = 2 * time.Second
	DefaultDebounce = 300 * time.Millisecond
)

// Phase is the machine's state.
type Phase int

const (
	Warming Phase = iota
	Armed
	Pending
)

func (p Phase) String() string {
	switch p {
	case Warming:
		return "warming"
	case Armed:
		return "armed"
	case Pending:
		return "pending"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Machine moves Warming(until) → Armed → Pending(firesAt) → Armed.
type Machine struct {
	phase    Phase
	until    time.Time
	firesAt  time.Time
	debounce time.Duration
}

// New returns a machine warming until start+warmup. A negative warmup or a
// non-positive debounce falls back to the default.
func New(start time.Time, warmup, debounce time.Duration) *Machine {
	if warmup < 0 {
		warmup = DefaultWarmup
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Machine{phase: Warming, until: start.Add(warmup), debounce: debounce}
}

func (m *Machine) advance(now time.Time) {
	if m.phase == Warming && !now.Before(m.until) {
		m.phase = Armed
	}
}

// State reports the phase as of now.
func (m *Machine) State(now time.Time) Phase {
	m.advance(now)
	return m.phase
}

// Observe records an event at now. It returns false when the event falls
// inside the warm-up window and is ignored.
func (m *Machine) Observe(now time.Time) bool {
	m.advance(now)
	if m.phase == Warming {
		return false
	}
	m.phase = Pending
	m.firesAt = now.Add(m.debounce)
	return true
}

// Due reports whether a pending burst has settled by now. It returns true
// once per burst and re-arms the machine.
func (m *Machine) Due(now time.Time) bool {
	m.advance(now)
	if m.phase != Pending || now.Before(m.firesAt) {
		return false
	}
	m.phase = Armed
	m.firesAt = time.Time{}
	return true
}

// Deadline returns the next time the machine needs attention: the end of
// warm-up while warming, the firing time while pending.
func (m *Machine) Deadline() (time.Time, bool) {
	switch m.phase {
	case Warming:
		return m.until, true
	case Pending:
		return m.firesAt, true
	default:
		return time.Time{}, false
	}
}
