package infra

import (
	"sync/atomic"
	"time"
)

// Metrics provides lightweight observability of backend traffic.
// Uses atomic operations for thread-safety: gateway calls record from
// command goroutines while the UI reads snapshots.
type Metrics struct {
	// Counters
	requestsTotal atomic.Uint64
	errorsTotal   atomic.Uint64
	staleDropped  atomic.Uint64
	syncsTotal    atomic.Uint64

	// Latency tracking
	latencySumNs atomic.Int64
	latencyCount atomic.Uint64

	// Gauges
	inFlight atomic.Int32
}

// GlobalMetrics is the singleton metrics instance.
var GlobalMetrics = &Metrics{}

// RecordRequest records a completed backend request with its latency.
func (m *Metrics) RecordRequest(latency time.Duration, failed bool) {
	m.requestsTotal.Add(1)
	m.latencySumNs.Add(latency.Nanoseconds())
	m.latencyCount.Add(1)
	if failed {
		m.errorsTotal.Add(1)
	}
}

// RecordStale records a response discarded because a newer fetch superseded it.
func (m *Metrics) RecordStale() {
	m.staleDropped.Add(1)
}

// RecordSync records a backend sync trigger.
func (m *Metrics) RecordSync() {
	m.syncsTotal.Add(1)
}

// BeginRequest marks a request as in flight; call the returned func when done.
func (m *Metrics) BeginRequest() func() {
	m.inFlight.Add(1)
	return func() { m.inFlight.Add(-1) }
}

// MetricsSnapshot is a point-in-time view of all metrics.
type MetricsSnapshot struct {
	RequestsTotal uint64
	ErrorsTotal   uint64
	StaleDropped  uint64
	SyncsTotal    uint64
	AvgLatency    time.Duration
	InFlight      int32
	Timestamp     time.Time
}

// Snapshot returns current metrics as a snapshot.
func (m *Metrics) Snapshot() MetricsSnapshot {
	var avgLatency int64
	count := m.latencyCount.Load()
	if count > 0 {
		avgLatency = m.latencySumNs.Load() / int64(count)
	}

	return MetricsSnapshot{
		RequestsTotal: m.requestsTotal.Load(),
		ErrorsTotal:   m.errorsTotal.Load(),
		StaleDropped:  m.staleDropped.Load(),
		SyncsTotal:    m.syncsTotal.Load(),
		AvgLatency:    time.Duration(avgLatency),
		InFlight:      m.inFlight.Load(),
		Timestamp:     time.Now(),
	}
}

// Reset clears all metrics (for testing).
func (m *Metrics) Reset() {
	m.requestsTotal.Store(0)
	m.errorsTotal.Store(0)
	m.staleDropped.Store(0)
	m.syncsTotal.Store(0)
	m.latencySumNs.Store(0)
	m.latencyCount.Store(0)
	m.inFlight.Store(0)
}
