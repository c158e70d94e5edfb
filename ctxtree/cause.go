package ctxtree

import "errors"

// A CancelCause is the reason a cancellation signal resolved. It implements
// error, and the type itself is the marker that separates cancellation from
// ordinary application failures: IsCancellation reports true for any error
// that is, or wraps, a *CancelCause.
type CancelCause struct {
	Reason string
}

func (e *CancelCause) Error() string { return e.Reason }

var (
	// Cancelled is the cause used when a context is cancelled explicitly
	// with no reason supplied, and when a parent's cancellation is forwarded
	// without a cause of its own.
	Cancelled = &CancelCause{Reason: "context cancelled"}
	Canceled  = Cancelled

	// TimedOut is the cause used when a WithTimeout boundary expires.
	TimedOut = &CancelCause{Reason: "context timed out"}
)

// NewCause returns a tagged cancellation cause with the given reason.
// Callers may also pass arbitrary errors as causes; those remain untagged
// unless they wrap a *CancelCause.
func NewCause(reason string) *CancelCause {
	return &CancelCause{Reason: reason}
}

// IsCancellation reports whether err originated from a cancellation signal
// rather than from application code.
func IsCancellation(err error) bool {
	var cc *CancelCause
	return errors.As(err, &cc)
}
