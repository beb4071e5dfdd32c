package panel

import (
	"errors"
	"testing"

	"tokendash/internal/domain"
)

func TestFetchState_Lifecycle(t *testing.T) {
	var s FetchState[string]

	if s.Status() != domain.StatusIdle {
		t.Fatalf("Expected idle, got %s", s.Status())
	}

	seq := s.Begin()
	if s.Status() != domain.StatusLoading {
		t.Errorf("Expected loading, got %s", s.Status())
	}
	if _, ok := s.Ready(); ok {
		t.Error("Data must not be ready while loading")
	}

	if !s.Resolve(seq, "first", nil) {
		t.Fatal("Latest result should be applied")
	}
	if got, ok := s.Ready(); !ok || got != "first" {
		t.Errorf("Ready() = %q, %v", got, ok)
	}

	// A failed refresh keeps the last good data
	seq = s.Begin()
	s.Resolve(seq, "", errors.New("boom"))

	if s.Status() != domain.StatusFailed || s.Err() == nil {
		t.Errorf("Expected failed with error, got %s / %v", s.Status(), s.Err())
	}
	if _, ok := s.Ready(); ok {
		t.Error("Ready() must report false after a failure")
	}
	if got, ok := s.Last(); !ok || got != "first" {
		t.Errorf("Last() = %q, %v; want stale data kept", got, ok)
	}

	// A new fetch clears the previous error
	s.Begin()
	if s.Err() != nil {
		t.Error("Begin should clear the previous error")
	}
}

func TestFetchState_DiscardsStaleResults(t *testing.T) {
	var s FetchState[string]

	older := s.Begin()
	newer := s.Begin()

	if !s.Resolve(newer, "newer", nil) {
		t.Fatal("Newer result should be applied")
	}
	if s.Resolve(older, "older", nil) {
		t.Error("Older result must be discarded")
	}
	if got, _ := s.Ready(); got != "newer" {
		t.Errorf("Expected newer data to win, got %q", got)
	}
}

func TestFetchState_DiscardsResultsArrivingOutOfOrder(t *testing.T) {
	var s FetchState[string]

	older := s.Begin()
	newer := s.Begin()

	if s.Resolve(older, "older", nil) {
		t.Error("Older result must be discarded even if it arrives first")
	}
	if s.Status() != domain.StatusLoading {
		t.Errorf("Expected still loading, got %s", s.Status())
	}
	s.Resolve(newer, "newer", nil)
	if got, _ := s.Ready(); got != "newer" {
		t.Errorf("got %q", got)
	}
}

func TestFetchState_Reset(t *testing.T) {
	var s FetchState[string]
	seq := s.Begin()
	s.Resolve(seq, "data", nil)

	pending := s.Begin()
	s.Reset()

	if _, ok := s.Last(); ok {
		t.Error("Reset should drop held data")
	}
	if s.Resolve(pending, "late", nil) {
		t.Error("Reset should invalidate pending fetches")
	}
	if s.Status() != domain.StatusIdle {
		t.Errorf("Expected idle, got %s", s.Status())
	}
}
