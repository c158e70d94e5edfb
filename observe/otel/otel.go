package otel

import (
	"time"

	"github.com/NetPo4ki/go-ctxtree/ctxtree"
)

// Nop is a no-op implementation of ctxtree.Observer. Embed it to build an
// observer that overrides only some hooks.
type Nop struct{}

var _ ctxtree.Observer = (*Nop)(nil)

// NewNop returns a no-op observer.
func NewNop() *Nop { return &Nop{} }

func (*Nop) ContextCreated(*ctxtree.Context, ctxtree.Kind)    {}
func (*Nop) ContextDone(*ctxtree.Context, error)              {}
func (*Nop) TimerArmed(*ctxtree.Context)                      {}
func (*Nop) TimerDisarmed(*ctxtree.Context, bool)             {}
func (*Nop) SleepDone(*ctxtree.Context, time.Duration, error) {}
