package infra

import (
	"testing"
	"time"
)

func TestMetrics_RecordRequest(t *testing.T) {
	m := &Metrics{}

	m.RecordRequest(10*time.Millisecond, false)
	m.RecordRequest(20*time.Millisecond, true)
	m.RecordRequest(30*time.Millisecond, false)

	snap := m.Snapshot()

	if snap.RequestsTotal != 3 {
		t.Errorf("Expected 3 requests, got %d", snap.RequestsTotal)
	}
	if snap.ErrorsTotal != 1 {
		t.Errorf("Expected 1 error, got %d", snap.ErrorsTotal)
	}

	// Average latency: (10 + 20 + 30) / 3 = 20ms
	if snap.AvgLatency != 20*time.Millisecond {
		t.Errorf("Expected avg latency 20ms, got %v", snap.AvgLatency)
	}
}

func TestMetrics_InFlight(t *testing.T) {
	m := &Metrics{}

	done1 := m.BeginRequest()
	done2 := m.BeginRequest()

	if got := m.Snapshot().InFlight; got != 2 {
		t.Errorf("Expected 2 in flight, got %d", got)
	}

	done1()
	done2()
	if got := m.Snapshot().InFlight; got != 0 {
		t.Errorf("Expected 0 in flight, got %d", got)
	}
}

func TestMetrics_Reset(t *testing.T) {
	m := &Metrics{}

	m.RecordRequest(time.Millisecond, true)
	m.RecordStale()
	m.RecordSync()

	m.Reset()
	snap := m.Snapshot()

	if snap.RequestsTotal != 0 {
		t.Error("Expected 0 requests after reset")
	}
	if snap.ErrorsTotal != 0 {
		t.Error("Expected 0 errors after reset")
	}
	if snap.StaleDropped != 0 || snap.SyncsTotal != 0 {
		t.Error("Expected 0 stale/syncs after reset")
	}
}
