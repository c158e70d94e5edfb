// Package ctxtree provides a tree of cooperative cancellation contexts for
// asynchronous call graphs.
//
// Contexts are nodes in a tree. A new tree is started by calling New, which
// returns a root whose cancellation signal never resolves; every other
// context is derived from an existing one. Branch gives a fresh identity
// that shares its source's signal, WithCancel adds a new cancellation
// boundary paired with a cancel function, and WithTimeout adds a boundary
// that expires on its own after a duration.
//
// Cancellation is cooperative and advisory. Cancelling a context never
// interrupts running code; it resolves the context's signal exactly once
// with a cause, and that resolution is forwarded to every context derived
// from it through WithCancel or WithTimeout. Work notices cancellation by
// reaching a suspension point (Sleep), selecting on Done, or registering a
// continuation with OnDone.
//
// Causes delivered through a signal are ordinary errors. The predefined
// Cancelled and TimedOut causes, and anything built with NewCause, carry a
// marker that IsCancellation recognizes, so callers can tell "I was
// cancelled" apart from an unrelated failure without matching message text.
//
// Data is associated with contexts through caller-owned Store values rather
// than fields on the context itself. A Store maps context identities to
// values; lookups walk from a context toward the root and return the
// nearest entry, so unrelated call graphs can use the same Store without
// key collisions. Store keys are weak: an entry is dropped automatically
// once its context becomes unreachable.
package ctxtree
