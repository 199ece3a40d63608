//go:build debug

package karst

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	// "goroutine 123 [running]:\n"
	var id uint64
	_, _ = fmt.Sscanf(string(buf[:n]), "goroutine %d ", &id)
	return id
}

// guard enforces the single-writer invariant on a component's model (debug
// only): model and widgets may only be accessed by one capability invocation
// at a time, on the loop goroutine.
type guard struct {
	holder atomic.Uint64
}

func (g *guard) enter() {
	id := goid()

	if !g.holder.CompareAndSwap(0, id) {
		panic(
			fmt.Sprintf(
				"karst: contract violation: model accessed from goroutine %d while goroutine %d holds it; "+
					"all model access must go through the component loop",
				id,
				g.holder.Load(),
			),
		)
	}
}

func (g *guard) exit() {
	g.holder.Store(0)
}
