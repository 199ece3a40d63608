package karst

import "github.com/karstlib/karst/shutdown"

// Root is the view artifact a component mounts into its parent container.
//
// The runtime treats roots as opaque toolkit objects; the one capability it
// consumes is registering a destruction callback, which binds the component's
// teardown to the lifetime of its widget.
type Root interface {
	// OnDestroy registers a callback invoked when the toolkit destroys the
	// widget this root represents.
	OnDestroy(callback func())
}

// Command is a unit of background work returned by [Component.Update].
//
// The runtime schedules it on the background spawner with a clone of the
// component's shutdown receiver and a sender for reporting results. A command
// is never preempted: it must observe the receiver itself (for example via
// [shutdown.Receiver.AttachContext]) to stop early. Results sent after the
// component terminated are dropped silently.
type Command[C any] func(recipient shutdown.Receiver, out Sender[C])

// Component is the behavior contract for a karst component.
//
// A component pairs a model (the mutable state, type implementing this
// interface) with widgets (the live view binding, W) and three message types:
// I for input, O for output, and C for background-command results.
//
// Every method is invoked from the component's loop task, never concurrently
// with itself or another method on the same model. Initialization failures
// are a model-level concern: embed a failure variant in the model or its
// messages rather than expecting the runtime to abort construction.
type Component[W, I, O, C any] interface {
	// ID returns a stable identifier used in log records.
	ID() string

	// InitRoot produces the root view artifact from the freshly built model.
	InitRoot() Root

	// InitWidgets attaches the model to the live view, producing the widgets
	// value that the update methods mutate incrementally. The returned
	// artifact is the secondary object produced by mounting the root into
	// the parent container; it is opaque to the runtime.
	InitWidgets(index *Index, root Root, returned any, input Sender[I], output Sender[O]) W

	// Update processes one input message, mutating model and widgets.
	// A non-nil result is spawned as a background command.
	Update(widgets *W, message I, input Sender[I], output Sender[O]) Command[C]

	// UpdateCmd processes the result of a completed background command.
	// Commands cannot chain synchronously; further work must re-enter
	// through the input sender.
	UpdateCmd(widgets *W, message C, input Sender[I], output Sender[O])

	// UpdateView refreshes the widgets from the current model state after an
	// external mutation signalled through [Handle.Notify].
	UpdateView(widgets *W, input Sender[I], output Sender[O])

	// Shutdown is the model's last chance to emit outputs before the loop
	// terminates.
	Shutdown(widgets *W, output Sender[O])
}
