package karst

// Handle controls a launched component.
//
// Handles are the primary public way to interact with a component after
// Launch: send it input, request a re-render after an external mutation, or
// tear it down.
type Handle[M, I any] struct {
	// Model is a shared reference to the component's model. Writing through
	// it is only safe from inside the loop; read it for introspection and
	// use Notify to bring the view up to date after a deliberate external
	// mutation.
	Model M

	// Root is the mounted view root.
	Root Root

	// Returned is the secondary artifact produced by mounting the root into
	// the parent container.
	Returned any

	input    Sender[I]
	notifier NotifySender
	slot     *runtimeSlot
}

// Send enqueues an input message for the component.
func (h *Handle[M, I]) Send(message I) bool {
	return h.input.Send(message)
}

// Input returns the component's input sender, for sharing with other tasks.
func (h *Handle[M, I]) Input() Sender[I] {
	return h.input
}

// Notify asks the component to re-render with its current state. It blocks
// until the loop picks the request up and returns false once the loop is
// gone.
func (h *Handle[M, I]) Notify() bool {
	return h.notifier.Notify()
}

// Cancel tears the component down through the same path natural destruction
// takes. Calling it after the root was already destroyed, or calling it
// twice, is a no-op.
func (h *Handle[M, I]) Cancel() {
	h.slot.take()
}
