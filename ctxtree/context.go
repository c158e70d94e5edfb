package ctxtree

import "time"

// A Context is a node in a cancellation tree. It is immutable after
// construction: derivation returns new nodes and never alters existing
// ones. Contexts are safe for concurrent use by multiple goroutines.
type Context struct {
	sig    *signal
	parent *Context
	obs    Observer
}

// CancelFunc resolves its context's cancellation signal with cause.
// A nil cause is normalized to Cancelled. Calls after the signal has
// settled, from whatever source, are no-ops.
type CancelFunc func(cause error)

// New returns the root of a context tree. The root's signal never resolves;
// work rooted here is cancellable only through derived contexts. A process
// normally constructs a single root at startup and threads it explicitly
// through its entry points.
func New(opts ...Option) *Context {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	root := &Context{sig: newSignal(), obs: o.Observer}
	if root.obs != nil {
		root.obs.ContextCreated(root, KindRoot)
	}
	return root
}

// Branch returns a new context that shares the receiver's cancellation
// signal: same outcome, same timing, no new timers, no cancel capability.
// It exists to give scoped storage a fresh identity, so a sub-scope can
// shadow ancestor entries in a Store without adding a cancellation
// boundary.
func (c *Context) Branch() *Context {
	child := &Context{sig: c.sig, parent: c, obs: c.obs}
	if c.obs != nil {
		c.obs.ContextCreated(child, KindBranch)
	}
	return child
}

// WithCancel returns a new child context with its own pending signal,
// paired with the CancelFunc that resolves it. The child also resolves
// when the receiver's signal does, with the receiver's cause forwarded
// verbatim (Cancelled if the receiver settled without one). Cancelling a
// child never affects the receiver or the child's siblings.
//
// The CancelFunc is idempotent and safe to call even if the child is never
// otherwise used; calling it releases the forwarding registration held by
// the receiver's signal.
func (c *Context) WithCancel() (*Context, CancelFunc) {
	return c.withCancel(KindCancel)
}

func (c *Context) withCancel(kind Kind) (*Context, CancelFunc) {
	child := &Context{sig: newSignal(), parent: c, obs: c.obs}
	if c.obs != nil {
		c.obs.ContextCreated(child, kind)
		child.sig.subscribe(func(cause error) {
			child.obs.ContextDone(child, cause)
		})
	}

	// Forwarding is wired here, once, by subscribing the child's resolution
	// to the receiver's signal. The closure deliberately captures only the
	// child's signal cell, so a pending registration does not keep the
	// child node itself reachable.
	csig := child.sig
	fwd := c.sig.subscribe(func(cause error) {
		if cause == nil {
			cause = Cancelled
		}
		csig.resolve(cause)
	})
	if fwd != nil {
		// Once the child settles on its own, the forwarding registration
		// on the receiver is dead weight; drop it so cancelled subtrees can
		// be reclaimed while the receiver lives on.
		psig := c.sig
		child.sig.subscribe(func(error) {
			psig.unsubscribe(fwd)
		})
	}

	cancel := func(cause error) {
		if cause == nil {
			cause = Cancelled
		}
		child.sig.resolve(cause)
	}
	return child, cancel
}

// WithTimeout returns a child context that is cancelled with the TimedOut
// cause once d elapses, unless cancellation is inherited from the receiver
// first, in which case the timer is stopped and the receiver's cause is
// forwarded. Exactly one of the two outcomes occurs, and no timer outlives
// the race in either branch.
func (c *Context) WithTimeout(d time.Duration) *Context {
	child, cancel := c.withCancel(KindTimeout)
	if !child.Alive() {
		return child
	}
	if c.obs != nil {
		c.obs.TimerArmed(child)
	}
	t := time.AfterFunc(d, func() {
		cancel(TimedOut)
	})
	child.sig.subscribe(func(error) {
		fired := !t.Stop()
		if child.obs != nil {
			child.obs.TimerDisarmed(child, fired)
		}
	})
	return child
}

// Done returns a channel that is closed when the context's signal resolves.
// The root's channel is never closed. Done is the bridge into select-based
// code and unrelated cancellation interfaces.
func (c *Context) Done() <-chan struct{} {
	return c.sig.done
}

// Err returns nil while the context's signal is pending, and the cause it
// settled with afterwards. The cause is the terminal error of the scope;
// there is no separate accessor.
func (c *Context) Err() error {
	return c.sig.err()
}

// Alive reports whether the context's signal is still pending.
func (c *Context) Alive() bool {
	return c.sig.alive()
}

// OnDone registers fn to run once the context's signal resolves, receiving
// the cause. fn runs in its own goroutine; if the signal has already
// settled, fn is started immediately. The returned stop function drops the
// registration and reports whether it prevented the run.
func (c *Context) OnDone(fn func(cause error)) (stop func() bool) {
	w := c.sig.subscribe(func(cause error) {
		go fn(cause)
	})
	if w == nil {
		return func() bool { return false }
	}
	sig := c.sig
	return func() bool { return sig.unsubscribe(w) }
}
