package toast

import (
	"sync"
	"time"
)

// Scheduler runs at most one deferred action per id.
type Scheduler struct {
	mu     sync.Mutex
	clock  Clock
	timers map[string]*scheduled
}

type scheduled struct {
	timer Timer
}

// NewScheduler creates a Scheduler on clock. A nil clock uses SystemClock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	return &Scheduler{
		clock:  clock,
		timers: make(map[string]*scheduled),
	}
}

// Schedule arranges for fn to run after d. It returns false and does
// nothing when an action for id is already pending. The entry is cleared
// before fn runs, so fn may schedule id again.
func (s *Scheduler) Schedule(id string, d time.Duration, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.timers[id]; ok {
		return false
	}
	entry := &scheduled{}
	s.timers[id] = entry
	entry.timer = s.clock.AfterFunc(d, func() { s.fire(id, entry, fn) })
	return true
}

func (s *Scheduler) fire(id string, entry *scheduled, fn func()) {
	s.mu.Lock()
	// A cancelled entry may have been replaced by a newer one for the same id.
	if s.timers[id] != entry {
		s.mu.Unlock()
		return
	}
	delete(s.timers, id)
	s.mu.Unlock()
	fn()
}

// Cancel stops the pending action for id. It reports whether one was pending.
func (s *Scheduler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.timers[id]
	if !ok {
		return false
	}
	delete(s.timers, id)
	entry.timer.Stop()
	return true
}

// CancelAll stops every pending action.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.timers {
		entry.timer.Stop()
		delete(s.timers, id)
	}
}

// Pending reports whether an action for id is waiting to run.
func (s *Scheduler) Pending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[id]
	return ok
}

// Len returns the number of pending actions.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
