package shutdown_test

import (
	"context"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karstlib/karst/shutdown"
)

func TestBroadcastFanOut(t *testing.T) {
	notifier, receiver := shutdown.Channel()

	const clones = 8
	var wg sync.WaitGroup

	for range clones {
		r := receiver.Clone()
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Wait()
		}()
	}

	notifier.Shutdown()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("not every receiver observed the shutdown")
	}
}

func TestShutdownIsIdempotent(t *testing.T) {
	notifier, receiver := shutdown.Channel()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			notifier.Shutdown()
		}()
	}
	wg.Wait()

	notifier.Shutdown()
	assert.True(t, receiver.Fired())
}

func TestReceiverAfterFiringResolvesImmediately(t *testing.T) {
	notifier, receiver := shutdown.Channel()

	assert.False(t, receiver.Fired())

	notifier.Shutdown()

	late := receiver.Clone()
	assert.True(t, late.Fired())
	late.Wait() // must not block
}

func TestDoneSelects(t *testing.T) {
	notifier, receiver := shutdown.Channel()

	select {
	case <-receiver.Done():
		t.Fatal("signal must not fire before Shutdown")
	default:
	}

	notifier.Shutdown()

	select {
	case <-receiver.Done():
	case <-time.After(time.Second):
		t.Fatal("signal never fired")
	}
}

func TestAttachContextCancelsOnShutdown(t *testing.T) {
	notifier, receiver := shutdown.Channel()

	ctx, cancel := receiver.AttachContext(context.Background())
	defer cancel()

	require.NoError(t, ctx.Err())

	notifier.Shutdown()

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context was not cancelled by the shutdown signal")
	}
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestAttachContextEarlyRelease(t *testing.T) {
	notifier, receiver := shutdown.Channel()

	ctx, cancel := receiver.AttachContext(context.Background())
	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("cancel must release the attachment")
	}

	assert.False(t, receiver.Fired(), "releasing the attachment must not fire the broadcast")
	runtime.KeepAlive(notifier)
}
