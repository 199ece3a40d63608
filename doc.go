// Package karst is a small cooperative runtime for stateful UI components.
// Every component owns a model, a set of live widgets, and one event loop
// that processes input and background-command messages sequentially.
//
// The core idea is:
//   - Implement a component by satisfying [Component] and providing a model
//     constructor for [Build].
//   - Wire it into a parent with [Launch], which starts the loop and returns
//     a [Handle] for sending input, requesting re-renders, and cancelling.
//   - Background work is returned from Update as a [Command]; results
//     re-enter the loop as CommandOutput messages.
//
// Concurrency model (high level):
//   - Each component owns a single loop task that has exclusive access to the
//     model and widgets; no locks are needed for component state.
//   - The loop multiplexes four event sources with fixed priority:
//     Input, then CommandOutput, then re-render notifications, then the
//     destruction signal.
//   - Senders are cheap values that only enqueue; they are the one handle
//     that is safe to share across tasks.
//
// Cancellation model (high level):
//   - Destroying the mounted view root or calling [Handle.Cancel] delivers
//     the destruction signal exactly once; both go through the same take-once
//     slot and the same teardown branch.
//   - Teardown lets the model emit final outputs, then fires a
//     [shutdown.Notifier] so in-flight commands can stop at their next await
//     point.
package karst
