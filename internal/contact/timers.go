package contact

import (
	"sync"
	"time"
)

// timerSet tracks pending callbacks so they can all be cancelled at once.
// Callbacks run with the set's lock released and never after Stop or StopAll
// has removed them.
type timerSet struct {
	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]*time.Timer
	closed  bool
}

func newTimerSet() *timerSet {
	return &timerSet{pending: make(map[uint64]*time.Timer)}
}

// After schedules fn and returns an id usable with Stop. It returns 0 when
// the set is closed.
func (s *timerSet) After(d time.Duration, fn func()) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0
	}
	s.nextID++
	id := s.nextID
	s.pending[id] = time.AfterFunc(d, func() {
		if s.claim(id) {
			fn()
		}
	})
	return id
}

// claim removes id from the set and reports whether it was still pending.
func (s *timerSet) claim(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[id]; !ok {
		return false
	}
	delete(s.pending, id)
	return true
}

// Stop cancels one pending callback.
func (s *timerSet) Stop(id uint64) {
	if id == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.pending[id]; ok {
		t.Stop()
		delete(s.pending, id)
	}
}

// Len reports how many callbacks are pending.
func (s *timerSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// StopAll cancels everything and refuses new callbacks.
func (s *timerSet) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.pending {
		t.Stop()
		delete(s.pending, id)
	}
	s.closed = true
}
