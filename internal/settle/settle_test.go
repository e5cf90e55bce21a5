package settle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

func TestIgnoresEventsWhileWarming(t *testing.T) {
	m := New(t0, DefaultWarmup, DefaultDebounce)

	for _, ms := range []int{0, 10, 500, 1999} {
		assert.False(t, m.Observe(at(ms)), "event at %dms", ms)
	}
	assert.Equal(t, Warming, m.State(at(1999)))
	assert.False(t, m.Due(at(1999)))

	deadline, ok := m.Deadline()
	assert.True(t, ok)
	assert.True(t, deadline.Equal(at(2000)))

	assert.Equal(t, Armed, m.State(at(2000)))
	assert.False(t, m.Due(at(5000)), "nothing observed after warm-up")
}

func TestDebouncesBurst(t *testing.T) {
	m := New(t0, DefaultWarmup, DefaultDebounce)

	assert.True(t, m.Observe(at(2100)))
	assert.True(t, m.Observe(at(2200)))
	assert.True(t, m.Observe(at(2350)))
	assert.Equal(t, Pending, m.State(at(2400)))

	deadline, ok := m.Deadline()
	assert.True(t, ok)
	assert.True(t, deadline.Equal(at(2650)))

	assert.False(t, m.Due(at(2649)))
	assert.True(t, m.Due(at(2650)))
	assert.False(t, m.Due(at(2700)), "fires once per burst")
	assert.Equal(t, Armed, m.State(at(2700)))

	_, ok = m.Deadline()
	assert.False(t, ok)
}

func TestSecondBurst(t *testing.T) {
	m := New(t0, time.Second, 100*time.Millisecond)

	m.Observe(at(1500))
	assert.True(t, m.Due(at(1600)))

	m.Observe(at(3000))
	assert.False(t, m.Due(at(3050)))
	assert.True(t, m.Due(at(3100)))
}

func TestDefaults(t *testing.T) {
	m := New(t0, -1, 0)
	assert.False(t, m.Observe(at(1999)))
	assert.True(t, m.Observe(at(2000)))
	assert.False(t, m.Due(at(2299)))
	assert.True(t, m.Due(at(2300)))

	assert.Equal(t, Armed, New(t0, 0, 0).State(t0), "zero warm-up arms immediately")
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "warming", Warming.String())
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "phase(9)", Phase(9).String())
}
