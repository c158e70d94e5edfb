package ctxtree

import "sync"

// signal is a settle-once cell: pending until resolve is called, settled
// with a cause forever after. Resolution is idempotent at this level, which
// is what makes cancel functions and timer races safe without guarding at
// call sites.
type signal struct {
	mu      sync.Mutex
	done    chan struct{}
	cause   error
	settled bool
	subs    map[*waiter]struct{}
}

// waiter is a registered continuation. It runs at most once.
type waiter struct {
	fn func(cause error)
}

func newSignal() *signal {
	return &signal{done: make(chan struct{})}
}

// resolve settles the signal with cause, closes done, and runs registered
// continuations. It reports whether this call performed the settlement;
// later calls are no-ops.
func (s *signal) resolve(cause error) bool {
	s.mu.Lock()
	if s.settled {
		s.mu.Unlock()
		return false
	}
	s.settled = true
	s.cause = cause
	subs := s.subs
	s.subs = nil
	close(s.done)
	s.mu.Unlock()

	// Continuations run outside the lock. Relative order between waiters is
	// unspecified, matching the independence of sibling observers.
	for w := range subs {
		w.fn(cause)
	}
	return true
}

// subscribe registers fn to run once when the signal settles. If the signal
// has already settled, fn runs before subscribe returns and the handle is
// nil. Handles are passed to unsubscribe to drop a pending registration.
func (s *signal) subscribe(fn func(cause error)) *waiter {
	s.mu.Lock()
	if s.settled {
		cause := s.cause
		s.mu.Unlock()
		fn(cause)
		return nil
	}
	w := &waiter{fn: fn}
	if s.subs == nil {
		s.subs = make(map[*waiter]struct{})
	}
	s.subs[w] = struct{}{}
	s.mu.Unlock()
	return w
}

// unsubscribe removes a pending registration. It reports whether the waiter
// was still registered, i.e. whether this call prevented it from running.
// A nil waiter is accepted and reports false.
func (s *signal) unsubscribe(w *waiter) bool {
	if w == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[w]; !ok {
		return false
	}
	delete(s.subs, w)
	return true
}

func (s *signal) err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cause
}

func (s *signal) alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.settled
}
