package shutdown

import "context"

// Receiver listens for the shutdown signal.
//
// Receivers are cheap values; commands spawned from different runtime
// iterations each get an independent clone, all resolving on the same firing
// event.
type Receiver struct {
	fired <-chan struct{}
}

// Clone returns an independent receiver bound to the same firing event.
func (r Receiver) Clone() Receiver {
	return r
}

// Wait suspends the calling task until shutdown fires. If the signal already
// fired, Wait returns immediately.
func (r Receiver) Wait() {
	<-r.fired
}

// Done exposes the firing event for use in a select statement.
func (r Receiver) Done() <-chan struct{} {
	return r.fired
}

// Fired reports whether the signal has fired, without blocking.
func (r Receiver) Fired() bool {
	select {
	case <-r.fired:
		return true
	default:
		return false
	}
}

// AttachContext derives a context that is cancelled when shutdown fires, so
// a command can drive context-aware APIs and stop at its next await point.
// The returned CancelFunc releases the attachment early.
func (r Receiver) AttachContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	go func() {
		select {
		case <-r.fired:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
