package ctxtree

import "time"

// Sleep blocks until d has elapsed and returns nil, unless the context's
// signal resolves first, in which case it returns the cause immediately
// (TimedOut if the signal settled without one). The pending timer is
// stopped on the cancellation path, so no timer survives the call in
// either branch. Sleep is the only operation in this package that blocks;
// it is the natural point for cooperative work to notice cancellation.
func (c *Context) Sleep(d time.Duration) error {
	if !c.Alive() {
		return c.doneCause()
	}

	var start time.Time
	if c.obs != nil {
		start = time.Now()
		c.obs.TimerArmed(c)
	}

	t := time.NewTimer(d)
	select {
	case <-t.C:
		if c.obs != nil {
			c.obs.TimerDisarmed(c, true)
			c.obs.SleepDone(c, time.Since(start), nil)
		}
		return nil
	case <-c.sig.done:
		fired := !t.Stop()
		cause := c.doneCause()
		if c.obs != nil {
			c.obs.TimerDisarmed(c, fired)
			c.obs.SleepDone(c, time.Since(start), cause)
		}
		return cause
	}
}

// doneCause reads the settled cause, falling back to TimedOut for a signal
// resolved without one.
func (c *Context) doneCause() error {
	if cause := c.sig.err(); cause != nil {
		return cause
	}
	return TimedOut
}
