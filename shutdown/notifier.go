// Package shutdown provides a one-to-many cancellation signal.
//
// A [Notifier] and any number of [Receiver] clones share one firing event:
// calling Shutdown wakes every outstanding receiver exactly once, and
// receivers obtained after the fact resolve immediately. The primitive
// cannot fail; it is a synchronization guarantee, not an I/O operation.
package shutdown

import (
	"runtime"
	"sync"
)

// Notifier fires the shutdown signal for its paired receivers.
type Notifier struct {
	once  *sync.Once
	fired chan struct{}
}

type cleanupState struct {
	once  *sync.Once
	fired chan struct{}
}

// Channel creates a paired notifier and receiver. Clone the receiver freely;
// every clone resolves on the same firing event.
func Channel() (*Notifier, Receiver) {
	once := new(sync.Once)
	fired := make(chan struct{})

	n := &Notifier{once: once, fired: fired}

	// A notifier that becomes unreachable without ever firing must still
	// release its receivers, so an orphaned command can terminate.
	runtime.AddCleanup(n, func(s cleanupState) {
		s.once.Do(func() {
			close(s.fired)
		})
	}, cleanupState{once: once, fired: fired})

	return n, Receiver{fired: fired}
}

// Shutdown wakes every outstanding receiver. Additional calls are no-ops.
func (n *Notifier) Shutdown() {
	n.once.Do(func() {
		close(n.fired)
	})
}
