package karst

var defaultSystem = NewSystem()

// DefaultSystem returns the system used by the package-level [Launch].
func DefaultSystem() *System {
	return defaultSystem
}

// Wait blocks until all components launched in the default system have
// destroyed.
func Wait() {
	defaultSystem.Wait()
}

// Done returns a channel that is closed when all components launched in the
// default system have destroyed.
func Done() <-chan struct{} {
	return defaultSystem.Done()
}
