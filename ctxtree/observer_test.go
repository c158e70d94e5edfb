package ctxtree

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countObserver struct {
	created        atomic.Int64
	branches       atomic.Int64
	done           atomic.Int64
	timersArmed    atomic.Int64
	timersDisarmed atomic.Int64
	timersFired    atomic.Int64
	sleeps         atomic.Int64
}

func (o *countObserver) ContextCreated(_ *Context, kind Kind) {
	o.created.Add(1)
	if kind == KindBranch {
		o.branches.Add(1)
	}
}
func (o *countObserver) ContextDone(_ *Context, _ error) { o.done.Add(1) }
func (o *countObserver) TimerArmed(_ *Context)           { o.timersArmed.Add(1) }
func (o *countObserver) TimerDisarmed(_ *Context, fired bool) {
	o.timersDisarmed.Add(1)
	if fired {
		o.timersFired.Add(1)
	}
}
func (o *countObserver) SleepDone(_ *Context, _ time.Duration, _ error) { o.sleeps.Add(1) }

func TestObserverLifecycleCounts(t *testing.T) {
	t.Parallel()
	obs := &countObserver{}
	root := New(WithObserver(obs))

	a, cancelA := root.WithCancel()
	b := a.Branch()
	c, cancelC := b.WithCancel()

	cancelC(nil)
	cancelA(errors.New("stop"))
	<-c.Done()

	// root, a, b, c created; a and c own signals and settle.
	if got := obs.created.Load(); got != 4 {
		t.Fatalf("expected 4 created events, got %d", got)
	}
	if got := obs.branches.Load(); got != 1 {
		t.Fatalf("expected 1 branch event, got %d", got)
	}
	waitFor(t, func() bool { return obs.done.Load() == 2 })
}

func TestObserverDoneFiresOncePerSignal(t *testing.T) {
	t.Parallel()
	obs := &countObserver{}
	root := New(WithObserver(obs))
	ctx, cancel := root.WithCancel()

	cancel(nil)
	cancel(errors.New("again"))
	<-ctx.Done()

	waitFor(t, func() bool { return obs.done.Load() == 1 })
	time.Sleep(10 * time.Millisecond)
	if got := obs.done.Load(); got != 1 {
		t.Fatalf("ContextDone fired %d times for one signal", got)
	}
}

func TestObserverTimerAccounting(t *testing.T) {
	t.Parallel()
	obs := &countObserver{}
	root := New(WithObserver(obs))

	// Expired boundary: its timer fires.
	expired := root.WithTimeout(5 * time.Millisecond)
	<-expired.Done()

	// Cancelled boundary: its timer is stopped unfired.
	parent, cancelParent := root.WithCancel()
	stopped := parent.WithTimeout(time.Hour)
	cancelParent(nil)
	<-stopped.Done()

	// Completed sleep: its timer fires.
	if err := root.Sleep(5 * time.Millisecond); err != nil {
		t.Fatalf("unexpected sleep error: %v", err)
	}

	waitFor(t, func() bool {
		return obs.timersArmed.Load() == 3 && obs.timersDisarmed.Load() == 3
	})
	if got := obs.timersFired.Load(); got != 2 {
		t.Fatalf("expected 2 fired timers (expiry, sleep), got %d", got)
	}
	if got := obs.sleeps.Load(); got != 1 {
		t.Fatalf("expected 1 sleep event, got %d", got)
	}
}
