package ctxtree

import "time"

// Kind identifies how a context was derived.
type Kind int

const (
	KindRoot Kind = iota
	KindBranch
	KindCancel
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindBranch:
		return "branch"
	case KindCancel:
		return "cancel"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Observer receives lifecycle events from a context tree. Implementations
// must be safe for concurrent use and should return quickly; hooks run
// inline with the operations that trigger them.
//
// ContextDone fires once per owned signal, on the context that owns it;
// Branch derivations share their source's signal and do not report their
// own ContextDone. TimerArmed and TimerDisarmed bracket every timer this
// package schedules (WithTimeout boundaries and Sleep calls), with fired
// reporting whether the timer went off before it was stopped. A tree with
// settled outcomes always has matching armed and disarmed counts.
type Observer interface {
	ContextCreated(ctx *Context, kind Kind)
	ContextDone(ctx *Context, cause error)
	TimerArmed(ctx *Context)
	TimerDisarmed(ctx *Context, fired bool)
	SleepDone(ctx *Context, slept time.Duration, err error)
}

type Option func(*Options)

type Options struct {
	Observer Observer
}

func defaultOptions() Options { return Options{} }

// WithObserver attaches obs to the root being constructed. Derived contexts
// inherit the observer; there is no way to detach or replace it later.
func WithObserver(obs Observer) Option { return func(o *Options) { o.Observer = obs } }
