package karst_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karstlib/karst"
)

func TestSystemCustomSpawners(t *testing.T) {
	var loops, backgrounds atomic.Int32

	system := karst.NewSystemWith(
		func(task func()) {
			loops.Add(1)
			go task()
		},
		func(task func()) {
			backgrounds.Add(1)
			go task()
		},
	)

	cmdSent := make(chan struct{})
	parentTx, _ := karst.NewChannel[string]()

	b := karst.Build[probeWidgets, string, string, string](newProbe, probeParams{cmdSent: cmdSent}, karst.NewIndex(0))
	h := karst.LaunchIn(system, b, nil, parentTx, passthrough)

	require.True(t, h.Send("spawn:r"))
	<-cmdSent

	h.Cancel()
	system.Wait()

	assert.Equal(t, int32(2), loops.Load(), "forwarding task and loop go through the loop spawner")
	assert.Equal(t, int32(1), backgrounds.Load(), "commands go through the background spawner")
}

func TestSystemWaitWithoutComponents(t *testing.T) {
	system := karst.NewSystem()

	select {
	case <-system.Done():
	default:
		t.Fatal("an idle system must report done")
	}

	system.Wait()
}

func TestSystemTracksMultipleComponents(t *testing.T) {
	system := karst.NewSystem()
	parentTx, _ := karst.NewChannel[string]()

	first := karst.Build[probeWidgets, string, string, string](newProbe, probeParams{}, karst.NewIndex(0))
	second := karst.Build[probeWidgets, string, string, string](newProbe, probeParams{}, karst.NewIndex(1))

	h1 := karst.LaunchIn(system, first, nil, parentTx, passthrough)
	h2 := karst.LaunchIn(system, second, nil, parentTx, passthrough)

	select {
	case <-system.Done():
		t.Fatal("system must not report done while components live")
	default:
	}

	h1.Cancel()
	h2.Cancel()
	system.Wait()

	assert.Equal(t, 1, h1.Model.log.count("shutdown"))
	assert.Equal(t, 1, h2.Model.log.count("shutdown"))
}
