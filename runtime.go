package karst

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/karstlib/karst/shutdown"
)

// runtimeSlot is the take-once cancellation slot shared by [Handle.Cancel]
// and the root's destruction callback. Whichever runs first delivers the
// one-shot stop token; the other becomes a no-op, so explicit cancellation
// and natural destruction go through the same teardown branch exactly once.
type runtimeSlot struct {
	once sync.Once
	stop chan<- struct{}
}

func (s *runtimeSlot) take() {
	s.once.Do(func() {
		s.stop <- struct{}{}
	})
}

// service is the running half of a component: it owns the model, the
// widgets, and every channel receiver, and it is the only task that touches
// them.
type service[W, I, O, C any, M Component[W, I, O, C]] struct {
	model   M
	widgets W
	kind    string

	inputTx  Sender[I]
	inputRx  *Receiver[I]
	outputTx Sender[O]
	outputRx *Receiver[O]
	cmdTx    Sender[C]
	cmdRx    *Receiver[C]
	notifyRx *Receiver[struct{}]

	stop    chan struct{}
	death   *shutdown.Notifier
	deathRx shutdown.Receiver

	system *System
	guard  guard
}

// Launch starts the component on the default system.
//
// See [LaunchIn].
func Launch[W, I, O, C, P any, M Component[W, I, O, C]](
	b *Builder[W, I, O, C, M],
	returned any,
	parent Sender[P],
	transform func(O) (P, bool),
) *Handle[M, I] {
	return LaunchIn(defaultSystem, b, returned, parent, transform)
}

// LaunchIn starts the component's loop and returns the handle that controls
// it.
//
// returned is the secondary artifact produced by mounting the builder's root
// into the parent container. transform maps each output to an optional
// parent message; reporting false swallows the output. The loop terminates
// when the root is destroyed by the toolkit or [Handle.Cancel] is called,
// whichever comes first.
func LaunchIn[W, I, O, C, P any, M Component[W, I, O, C]](
	system *System,
	b *Builder[W, I, O, C, M],
	returned any,
	parent Sender[P],
	transform func(O) (P, bool),
) *Handle[M, I] {
	// Decouples output-forwarding cadence from the loop: transformed outputs
	// flow to the parent until either end goes away, then the task exits
	// quietly.
	outputRx := b.outputRx
	system.track()
	system.spawn(func() {
		defer system.untrack()

		for {
			message, ok := outputRx.Recv()
			if !ok {
				return
			}

			forwarded, ok := transform(message)
			if !ok {
				continue
			}

			if !parent.Send(forwarded) {
				return
			}
		}
	})

	// Completed background commands report here.
	cmdTx, cmdRx := NewChannel[C]()

	// External re-render requests rendezvous here.
	notifyTx, notifyRx := newNotifyChannel()

	widgets := b.model.InitWidgets(b.index, b.root, returned, b.inputTx, b.outputTx)

	// The one-shot stop token gives the loop one last chance to say goodbye,
	// and the broadcast tells outstanding commands it is now deceased.
	stop := make(chan struct{}, 1)
	death, deathRx := shutdown.Channel()

	svc := &service[W, I, O, C, M]{
		model:    b.model,
		widgets:  widgets,
		kind:     kindOf(b.model),
		inputTx:  b.inputTx,
		inputRx:  b.inputRx,
		outputTx: b.outputTx,
		outputRx: outputRx,
		cmdTx:    cmdTx,
		cmdRx:    cmdRx,
		notifyRx: notifyRx,
		stop:     stop,
		death:    death,
		deathRx:  deathRx,
		system:   system,
	}

	system.track()
	system.spawn(svc.run)

	slot := &runtimeSlot{stop: stop}

	// When the toolkit destroys the root, deliver the stop token, unless an
	// explicit Cancel already took the slot.
	b.root.OnDestroy(slot.take)

	return &Handle[M, I]{
		Model:    b.model,
		Root:     b.root,
		Returned: returned,
		input:    b.inputTx,
		notifier: notifyTx,
		slot:     slot,
	}
}

func (s *service[W, I, O, C, M]) run() {
	defer s.system.untrack()

	logger.Debug(fmt.Sprintf("%s launched.", s.kind), "id", s.model.ID())

	for {
		// Input drives the primary state transitions, so when several
		// sources are ready at once it is drained first, then command
		// results, then re-render requests, then destruction. The blocking
		// select below only decides who wakes the loop; priority is settled
		// here.
		if message, ok := s.inputRx.TryRecv(); ok {
			s.handleInput(message)
			continue
		}

		if message, ok := s.cmdRx.TryRecv(); ok {
			s.handleCmd(message)
			continue
		}

		if _, ok := s.notifyRx.TryRecv(); ok {
			s.handleNotify()
			continue
		}

		select {
		case <-s.stop:
			s.shutdown()
			return
		default:
		}

		select {
		case message := <-s.inputRx.ch:
			s.handleInput(message)
		case message := <-s.cmdRx.ch:
			s.handleCmd(message)
		case <-s.notifyRx.ch:
			s.handleNotify()
		case <-s.stop:
			s.shutdown()
			return
		}
	}
}

func (s *service[W, I, O, C, M]) handleInput(message I) {
	logger.Debug(fmt.Sprintf("%s updating.", s.kind), "id", s.model.ID(), "input", message)

	s.guard.enter()
	command := s.model.Update(&s.widgets, message, s.inputTx, s.outputTx)
	s.guard.exit()

	if command != nil {
		recipient := s.deathRx.Clone()
		out := s.cmdTx

		s.system.background(func() {
			command(recipient, out)
		})
	}
}

func (s *service[W, I, O, C, M]) handleCmd(message C) {
	logger.Debug(fmt.Sprintf("%s handling command output.", s.kind), "id", s.model.ID(), "output", message)

	s.guard.enter()
	s.model.UpdateCmd(&s.widgets, message, s.inputTx, s.outputTx)
	s.guard.exit()
}

func (s *service[W, I, O, C, M]) handleNotify() {
	logger.Debug(fmt.Sprintf("%s refreshing view.", s.kind), "id", s.model.ID())

	s.guard.enter()
	s.model.UpdateView(&s.widgets, s.inputTx, s.outputTx)
	s.guard.exit()
}

// shutdown is the sole terminal transition. It runs at most once: the stop
// token arrives through the take-once slot only.
func (s *service[W, I, O, C, M]) shutdown() {
	logger.Debug(fmt.Sprintf("%s shutting down.", s.kind), "id", s.model.ID())

	s.guard.enter()
	s.model.Shutdown(&s.widgets, s.outputTx)
	s.guard.exit()

	// Outstanding commands learn to stop; results they still send are
	// dropped.
	s.death.Shutdown()

	s.inputRx.Close()
	s.cmdRx.Close()
	s.notifyRx.Close()

	// Final outputs are already enqueued; the forwarding task drains them
	// before it exits.
	s.outputRx.Close()

	logger.Debug(fmt.Sprintf("%s destroyed.", s.kind), "id", s.model.ID())
}

func kindOf(v any) string {
	t := reflect.TypeOf(v)

	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t == nil {
		return "Unknown"
	}

	return t.Name()
}
