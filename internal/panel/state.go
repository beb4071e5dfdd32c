// Package panel holds the dashboard's view-models. Each panel owns its own
// fetch lifecycle and display data and is driven by bubbletea messages, so
// every state change happens on the program's single event loop.
package panel

import (
	"time"

	"tokendash/internal/domain"
)

// FetchState tracks one panel's fetch lifecycle.
//
// Every fetch is tagged with a sequence number from Begin; Resolve ignores
// results whose tag is not the latest issued, so a slow superseded request
// can never overwrite a newer one.
type FetchState[T any] struct {
	status    domain.FetchStatus
	data      T
	hasData   bool
	err       error
	seq       uint64
	updatedAt time.Time
}

// Begin starts a new fetch: status becomes Loading and the previous error is
// cleared. The last good data is kept for display until the result arrives.
func (s *FetchState[T]) Begin() uint64 {
	s.seq++
	s.status = domain.StatusLoading
	s.err = nil
	return s.seq
}

// Reset drops any held data and returns to Idle. Pending results are invalidated.
func (s *FetchState[T]) Reset() {
	var zero T
	s.seq++
	s.status = domain.StatusIdle
	s.data = zero
	s.hasData = false
	s.err = nil
}

// Resolve applies the outcome of fetch seq. It reports false when the result
// is stale and was discarded.
func (s *FetchState[T]) Resolve(seq uint64, data T, err error) bool {
	if seq != s.seq || s.status != domain.StatusLoading {
		return false
	}
	if err != nil {
		s.status = domain.StatusFailed
		s.err = err
		return true
	}
	s.status = domain.StatusReady
	s.data = data
	s.hasData = true
	s.updatedAt = time.Now()
	return true
}

// Status returns the current lifecycle state
func (s *FetchState[T]) Status() domain.FetchStatus { return s.status }

// Err returns the error of the last failed fetch, nil otherwise
func (s *FetchState[T]) Err() error { return s.err }

// Seq returns the tag of the latest issued fetch
func (s *FetchState[T]) Seq() uint64 { return s.seq }

// UpdatedAt returns when data was last replaced by a successful fetch
func (s *FetchState[T]) UpdatedAt() time.Time { return s.updatedAt }

// Ready returns the data only when the latest fetch succeeded.
func (s *FetchState[T]) Ready() (T, bool) {
	if s.status != domain.StatusReady {
		var zero T
		return zero, false
	}
	return s.data, true
}

// Last returns the most recent successful data, even while a newer fetch is
// loading or after it failed.
func (s *FetchState[T]) Last() (T, bool) {
	return s.data, s.hasData
}
