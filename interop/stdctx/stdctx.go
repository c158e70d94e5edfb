// Package stdctx bridges ctxtree contexts and the standard library's
// context.Context, in both directions, preserving cancellation causes.
// It is the glue for mixing a cancellation tree with APIs that speak
// context.Context: HTTP requests, database drivers, errgroup, anything
// select-ing on a Done channel it does not own.
package stdctx

import (
	"context"

	"github.com/NetPo4ki/go-ctxtree/ctxtree"
)

// AsStd returns a context.Context that is cancelled when ctx's signal
// resolves, with the cause carried into context.Cause. The returned release
// function detaches the bridge and cancels the standard context; call it
// once the bridged work is finished.
func AsStd(ctx *ctxtree.Context) (context.Context, context.CancelFunc) {
	std, cancel := context.WithCancelCause(context.Background())
	stop := ctx.OnDone(func(cause error) {
		cancel(cause)
	})
	release := func() {
		stop()
		cancel(nil)
	}
	return std, release
}

// FromStd derives a child of parent whose signal resolves when std ends,
// with context.Cause(std) forwarded as the cause. The returned CancelFunc
// cancels the child directly; either path detaches the bridge.
func FromStd(parent *ctxtree.Context, std context.Context) (*ctxtree.Context, ctxtree.CancelFunc) {
	child, cancel := parent.WithCancel()
	stop := context.AfterFunc(std, func() {
		cancel(context.Cause(std))
	})
	child.OnDone(func(error) { stop() })
	return child, cancel
}
