// Package schedule provides the one-shot timer seam used by the dismiss
// behavior, so expiry can be simulated deterministically in tests.
package schedule

import (
	"sort"
	"sync"
	"time"
)

// Scheduler schedules one-shot callbacks. Timers are fire-and-forget: once
// scheduled they cannot be aborted.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// Timers is the wall-clock Scheduler backed by time.AfterFunc.
type Timers struct{}

func (Timers) AfterFunc(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	time.AfterFunc(d, fn)
}

type entry struct {
	at    time.Duration
	order int
	fn    func()
}

// Manual is a deterministic Scheduler for tests. Callbacks run on the
// goroutine that calls Advance, in expiry order; entries sharing an expiry
// run in scheduling order.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	entries []entry
}

// NewManual constructs a Manual scheduler positioned at time zero.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry{at: m.now + d, order: m.seq, fn: fn})
	m.seq++
}

// Advance moves the clock forward and fires every callback whose expiry has
// been reached. Callbacks may schedule further work; entries added during a
// callback are honoured against the already-advanced clock.
func (m *Manual) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	m.mu.Lock()
	m.now += d
	m.mu.Unlock()

	for {
		fn, ok := m.popDue()
		if !ok {
			return
		}
		fn()
	}
}

// Pending reports how many callbacks are scheduled but not yet fired.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Now reports the current simulated clock offset.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) popDue() (func(), bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) == 0 {
		return nil, false
	}
	sort.SliceStable(m.entries, func(i, j int) bool {
		if m.entries[i].at == m.entries[j].at {
			return m.entries[i].order < m.entries[j].order
		}
		return m.entries[i].at < m.entries[j].at
	})
	if m.entries[0].at > m.now {
		return nil, false
	}
	fn := m.entries[0].fn
	m.entries = m.entries[1:]
	return fn, true
}
