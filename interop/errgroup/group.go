// Package errgroup provides an adapter that mimics golang.org/x/sync/errgroup
// semantics over ctxtree contexts. It lets code written against errgroup's
// Group run inside a cancellation tree without pulling errgroup into the
// core library.
package errgroup

import (
	"fmt"
	"sync"

	"github.com/NetPo4ki/go-ctxtree/ctxtree"
)

// Group is an errgroup-like wrapper over a WithCancel boundary: the first
// non-nil error cancels the derived context with that error as its cause.
// A panic in a function passed to Go is recovered and reported the same way.
//
// Unlike x/sync's Group, the zero value is not usable; a Group must be
// created by WithContext, which gives it the context it cancels.
type Group struct {
	ctx    *ctxtree.Context
	cancel ctxtree.CancelFunc
	lim    Limiter

	wg sync.WaitGroup

	mu  sync.Mutex
	err error
}

// WithContext creates a Group bound to a child of parent. The returned
// context is cancelled the first time a function passed to Go returns a
// non-nil error, or when Wait returns.
func WithContext(parent *ctxtree.Context) (*Group, *ctxtree.Context) {
	ctx, cancel := parent.WithCancel()
	return &Group{ctx: ctx, cancel: cancel}, ctx
}

// SetLimit bounds the number of functions running at once to n; n <= 0
// removes the bound. It must be called before the first call to Go.
func (g *Group) SetLimit(n int) {
	g.lim = newSemaphoreLimiter(n)
}

// Go starts f in a new goroutine. It should return a non-nil error to
// signal failure. With a limit set, f waits for a free slot first and is
// abandoned with the group's cause if the context settles while waiting.
func (g *Group) Go(f func() error) {
	if f == nil {
		return
	}
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		if g.lim != nil {
			if err := g.lim.Acquire(g.ctx); err != nil {
				g.fail(err)
				return
			}
			defer g.lim.Release()
		}
		defer func() {
			if r := recover(); r != nil {
				g.fail(fmt.Errorf("panic: %v", r))
			}
		}()
		if err := f(); err != nil {
			g.fail(err)
		}
	}()
}

// Wait blocks until all functions started by Go have returned, then cancels
// the group's context and returns the first non-nil error, or nil.
func (g *Group) Wait() error {
	g.wg.Wait()
	g.mu.Lock()
	err := g.err
	g.mu.Unlock()
	g.cancel(err)
	return err
}

func (g *Group) fail(err error) {
	g.mu.Lock()
	if g.err == nil {
		g.err = err
	}
	first := g.err
	g.mu.Unlock()
	g.cancel(first)
}
