package karst

import "sync"

// mailboxSize is the capacity of the Input, Output and CommandOutput
// channels. Sends block once a component falls this far behind.
const mailboxSize = 128

// Sender is the enqueue side of a component channel.
//
// Senders are cheap values and are safe to copy and share between tasks: the
// caller, the parent, the loop, and spawned commands may all hold one. A
// sender only enqueues; it never touches component state directly.
type Sender[T any] struct {
	ch     chan<- T
	closed <-chan struct{}
}

// Send enqueues a message for the owning receiver.
//
// Returns false if the receiver has been closed; the message is dropped
// silently in that case. A closed peer is never an error condition.
func (s Sender[T]) Send(message T) bool {
	if s.ch == nil {
		return false
	}

	select {
	case <-s.closed:
		return false
	default:
	}

	select {
	case <-s.closed:
		return false
	case s.ch <- message:
		return true
	}
}

// Receiver is the dequeue side of a component channel. It is singly owned;
// the runtime loop consumes the receivers created by [Build] and [Launch].
type Receiver[T any] struct {
	ch        chan T
	closed    chan struct{}
	closeOnce sync.Once
}

// NewChannel creates a sender/receiver pair for one message type.
func NewChannel[T any]() (Sender[T], *Receiver[T]) {
	return newChannel[T](mailboxSize)
}

func newChannel[T any](capacity int) (Sender[T], *Receiver[T]) {
	r := &Receiver[T]{
		ch:     make(chan T, capacity),
		closed: make(chan struct{}),
	}

	return Sender[T]{ch: r.ch, closed: r.closed}, r
}

// Recv blocks until a message arrives.
//
// After Close, messages that were already enqueued are still delivered;
// once the queue is empty Recv reports false.
func (r *Receiver[T]) Recv() (T, bool) {
	select {
	case message := <-r.ch:
		return message, true
	case <-r.closed:
		select {
		case message := <-r.ch:
			return message, true
		default:
		}

		var zero T
		return zero, false
	}
}

// TryRecv returns an already-enqueued message without blocking.
func (r *Receiver[T]) TryRecv() (T, bool) {
	select {
	case message := <-r.ch:
		return message, true
	default:
		var zero T
		return zero, false
	}
}

// Close makes every current and future Send on the paired senders return
// false. Close is idempotent.
func (r *Receiver[T]) Close() {
	r.closeOnce.Do(func() {
		close(r.closed)
	})
}

// NotifySender requests a re-render of a component whose state was changed
// externally, without going through a logical message.
type NotifySender struct {
	s Sender[struct{}]
}

// Notify performs the rendezvous with the component loop: it blocks until
// the loop picks the wake signal up, and returns false once the loop is
// gone. It carries no payload.
func (n NotifySender) Notify() bool {
	return n.s.Send(struct{}{})
}

// newNotifyChannel creates the zero-capacity wake channel used by Launch.
func newNotifyChannel() (NotifySender, *Receiver[struct{}]) {
	tx, rx := newChannel[struct{}](0)
	return NotifySender{s: tx}, rx
}
