package errgroup

import "github.com/NetPo4ki/go-ctxtree/ctxtree"

// Limiter bounds concurrent functions within a Group. Acquire blocks until
// a slot is free or ctx's signal resolves.
type Limiter interface {
	Acquire(ctx *ctxtree.Context) error
	Release()
}

type semLimiter struct {
	ch chan struct{}
}

func newSemaphoreLimiter(n int) Limiter {
	if n <= 0 {
		return nil
	}
	return &semLimiter{ch: make(chan struct{}, n)}
}

func (l *semLimiter) Acquire(ctx *ctxtree.Context) error {
	select {
	case l.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *semLimiter) Release() {
	select {
	case <-l.ch:
	default:
	}
}
