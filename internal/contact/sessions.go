package contact

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cjrsolutions/cjrweb/internal/domain"
)

// DefaultSessionTTL is how long an untouched form is kept.
const DefaultSessionTTL = 30 * time.Minute

// Sessions keeps one Machine per visitor id.
type Sessions struct {
	mu        sync.Mutex
	machines  map[string]*Machine
	submitter domain.ContactSubmitter
	opts      Options
	ttl       time.Duration
	now       func() time.Time

	stop chan struct{}
	done chan struct{}
}

// NewSessions creates an empty set of forms delivering through submitter.
func NewSessions(submitter domain.ContactSubmitter, opts Options, ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Sessions{
		machines:  make(map[string]*Machine),
		submitter: submitter,
		opts:      opts,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Get returns the visitor's machine, creating an idle one on first use.
func (s *Sessions) Get(visitorID string) *Machine {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m, ok := s.machines[visitorID]; ok {
		return m
	}
	m := NewMachine(s.submitter, s.opts)
	m.touched = s.now()
	s.machines[visitorID] = m
	return m
}

// Peek returns the visitor's machine without creating one.
func (s *Sessions) Peek(visitorID string) (*Machine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.machines[visitorID]
	return m, ok
}

// Len reports how many visitors have a form.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.machines)
}

// Sweep closes and forgets machines untouched for longer than the TTL that
// have nothing pending. It returns how many were evicted.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	evicted := 0
	for id, m := range s.machines {
		touched, quiet := m.idleSince()
		if quiet && touched.Before(cutoff) {
			m.Close()
			delete(s.machines, id)
			evicted++
		}
	}
	return evicted
}

// Start sweeps in the background every half TTL until ctx is done or Close
// is called.
func (s *Sessions) Start(ctx context.Context) {
	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	stop, done := s.stop, s.done
	s.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.ttl / 2)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					slog.Debug("Evicted idle contact forms", "count", n)
				}
			}
		}
	}()
}

// Close stops the sweeper and closes every machine.
func (s *Sessions) Close() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop = nil
	for id, m := range s.machines {
		m.Close()
		delete(s.machines, id)
	}
	s.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
}
