package toast

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/smsportal/portal-console/internal/logging"
)

// Listener receives a snapshot of the state after every dispatch.
type Listener func(State)

type listenerEntry struct {
	id int
	fn Listener
}

// Store owns the toast list and its timers. Create one per application
// with NewStore and share it; the zero value is not usable.
//
// Dispatches are serialized and listeners run synchronously, in
// registration order, before the dispatching call returns. A listener may
// read State but must not call Toast, Dismiss, Update or Reset; hand the
// work to another goroutine or an event loop instead.
type Store struct {
	dispatchMu sync.Mutex

	stateMu sync.RWMutex
	state   State

	listenersMu  sync.Mutex
	listeners    []listenerEntry
	nextListener int

	count int

	limit           int
	defaultDuration time.Duration
	removeDelay     time.Duration
	clock           Clock
	logger          logging.Logger

	autoDismiss *Scheduler
	removals    *Scheduler
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		state:           State{Toasts: []Toast{}},
		limit:           DefaultLimit,
		defaultDuration: DefaultDuration,
		removeDelay:     DefaultRemoveDelay,
		clock:           SystemClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.With("component", "toast")
	}
	s.autoDismiss = NewScheduler(s.clock)
	s.removals = NewScheduler(s.clock)
	return s
}

// Toast adds a new open toast and returns a handle bound to it.
func (s *Store) Toast(p Props) Handle {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	id := s.genID()
	duration := s.defaultDuration
	if p.Duration != nil {
		duration = *p.Duration
	}
	duration = normalizeDuration(duration)
	variant := p.Variant
	if variant == "" {
		variant = VariantDefault
	}

	if duration > 0 {
		s.autoDismiss.Schedule(id, duration, func() {
			s.logger.Debug("toast auto-dismissed", "toast_id", id)
			s.Dismiss(id)
		})
	}

	s.dispatchLocked(Action{
		Type: ActionAdd,
		Toast: Toast{
			ID:          id,
			Title:       p.Title,
			Description: p.Description,
			Variant:     variant,
			Duration:    duration,
			Open:        true,
			OnOpenChange: func(open bool) {
				if !open {
					s.Dismiss(id)
				}
			},
		},
	})
	s.logger.Debug("toast added", "toast_id", id, "title", p.Title, "duration_ms", duration.Milliseconds())
	return Handle{ID: id, store: s}
}

// Dismiss closes the toast with id, or every held toast when id is empty.
// The toast stays in the list, closed, until the remove delay elapses.
// Dismissing an already dismissed or unknown id changes nothing.
func (s *Store) Dismiss(id string) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	var targets []string
	for _, t := range s.State().Toasts {
		if id == "" || t.ID == id {
			targets = append(targets, t.ID)
		}
	}
	for _, target := range targets {
		s.autoDismiss.Cancel(target)
		s.enqueueRemoval(target)
	}
	s.dispatchLocked(Action{Type: ActionDismiss, ToastID: id})
}

// Update merges p into the toast with id. Open state and timers are unchanged.
func (s *Store) Update(id string, p Partial) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()
	s.dispatchLocked(Action{Type: ActionUpdate, ToastID: id, Patch: p})
}

// Dispatch applies an arbitrary action. Unknown action types leave the
// state unchanged. Timers are not touched; use Toast and Dismiss for the
// full lifecycle.
func (s *Store) Dispatch(a Action) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()
	s.dispatchLocked(a)
}

// Reset drops every toast and cancels all pending timers.
func (s *Store) Reset() {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()
	s.autoDismiss.CancelAll()
	s.removals.CancelAll()
	s.dispatchLocked(Action{Type: ActionRemove})
}

// Close releases the store's timers. It is Reset under a name suited to defer.
func (s *Store) Close() {
	s.Reset()
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state.clone()
}

// Subscribe registers l and returns a function that unregisters it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.nextListener++
	id := s.nextListener
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: l})
	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			defer s.listenersMu.Unlock()
			for i, e := range s.listeners {
				if e.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// PendingTimers returns the number of auto-dismiss and removal timers
// still waiting to fire.
func (s *Store) PendingTimers() (autoDismiss, removals int) {
	return s.autoDismiss.Len(), s.removals.Len()
}

// genID returns the next id. The counter wraps before overflowing.
func (s *Store) genID() string {
	s.count = (s.count + 1) % math.MaxInt
	return strconv.Itoa(s.count)
}

// enqueueRemoval schedules the REMOVE transition for id unless one is
// already pending.
func (s *Store) enqueueRemoval(id string) {
	s.removals.Schedule(id, s.removeDelay, func() {
		s.dispatchMu.Lock()
		defer s.dispatchMu.Unlock()
		s.dispatchLocked(Action{Type: ActionRemove, ToastID: id})
		s.logger.Debug("toast removed", "toast_id", id)
	})
}

// dispatchLocked runs the reducer and notifies listeners. dispatchMu must be held.
func (s *Store) dispatchLocked(a Action) {
	s.stateMu.Lock()
	prev := s.state
	next := reduce(prev, a, s.limit)
	s.state = next
	s.stateMu.Unlock()

	if a.Type == ActionAdd {
		s.logEvictions(prev, next)
	}

	s.listenersMu.Lock()
	listeners := make([]listenerEntry, len(s.listeners))
	copy(listeners, s.listeners)
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l.fn(next.clone())
	}
}

// logEvictions records toasts dropped by the capacity limit. Evicted
// toasts skip the dismissing state; any timers they had expire against a
// missing id and do nothing.
func (s *Store) logEvictions(prev, next State) {
	kept := make(map[string]bool, len(next.Toasts))
	for _, t := range next.Toasts {
		kept[t.ID] = true
	}
	for _, t := range prev.Toasts {
		if !kept[t.ID] {
			s.logger.Debug("toast evicted", "toast_id", t.ID, "open", t.Open)
		}
	}
}
