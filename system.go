package karst

import "sync"

// Spawner schedules a task for execution.
type Spawner func(task func())

// System owns the task-spawning capability and tracks live component tasks
// so that callers can wait for them to exit.
//
// If you don't need explicit scoping or custom schedulers, use the
// package-level [Launch], [Wait] and [Done], which use a default system.
type System struct {
	spawn      Spawner
	background Spawner

	mu     sync.Mutex
	active int
	idle   chan struct{}
}

// NewSystem creates a system that runs component loops and background
// commands on plain goroutines.
func NewSystem() *System {
	return NewSystemWith(nil, nil)
}

// NewSystemWith creates a system with custom spawners.
//
// loop runs component services and forwarding tasks; a host embedding a view
// toolkit can supply one that pins them all to the toolkit's main loop.
// background runs commands and may dispatch to a worker pool. A nil spawner
// falls back to plain goroutines.
func NewSystemWith(loop, background Spawner) *System {
	if loop == nil {
		loop = func(task func()) { go task() }
	}

	if background == nil {
		background = func(task func()) { go task() }
	}

	return &System{spawn: loop, background: background}
}

func (s *System) track() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == 0 {
		s.idle = make(chan struct{})
	}

	s.active++
}

func (s *System) untrack() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active--

	if s.active == 0 {
		close(s.idle)
	}
}

// Done returns a channel that is closed once every component launched in
// this system so far has destroyed.
func (s *System) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == 0 {
		idle := make(chan struct{})
		close(idle)
		return idle
	}

	return s.idle
}

// Wait blocks until every component launched in this system so far has
// destroyed.
func (s *System) Wait() {
	<-s.Done()
}
