package obs

import "sync"

// Meter is a very small interface for emitting counters.
// Implementations may no-op or bridge to a metrics system.
type Meter interface {
	Counter(name string, value int64)
}

// NopMeter is a Meter that discards all measurements.
type NopMeter struct{}

func (NopMeter) Counter(name string, value int64) {}

// MapMeter accumulates counters in memory. Handy in tests and for
// dumping totals at shutdown.
type MapMeter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func (m *MapMeter) Counter(name string, value int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts == nil {
		m.counts = make(map[string]int64)
	}
	m.counts[name] += value
}

// Get returns the accumulated value for name.
func (m *MapMeter) Get(name string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[name]
}
