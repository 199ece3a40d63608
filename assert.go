//go:build !debug

package karst

// guard enforces the single-writer invariant on a component's model in debug
// builds. Release builds compile it away.
type guard struct{}

func (g *guard) enter() {}
func (g *guard) exit()  {}
