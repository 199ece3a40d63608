package karst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karstlib/karst"
)

func TestChannelSendRecv(t *testing.T) {
	tx, rx := karst.NewChannel[int]()

	require.True(t, tx.Send(1))
	require.True(t, tx.Send(2))

	got, ok := rx.Recv()
	require.True(t, ok)
	assert.Equal(t, 1, got)

	got, ok = rx.TryRecv()
	require.True(t, ok)
	assert.Equal(t, 2, got)

	_, ok = rx.TryRecv()
	assert.False(t, ok)
}

func TestChannelCloseDrains(t *testing.T) {
	tx, rx := karst.NewChannel[int]()

	tx.Send(1)
	tx.Send(2)
	rx.Close()

	got, ok := rx.Recv()
	require.True(t, ok, "messages enqueued before Close are still delivered")
	assert.Equal(t, 1, got)

	got, ok = rx.Recv()
	require.True(t, ok)
	assert.Equal(t, 2, got)

	_, ok = rx.Recv()
	assert.False(t, ok)

	assert.False(t, tx.Send(3), "sends after Close are dropped")

	rx.Close() // idempotent
}

func TestChannelZeroSender(t *testing.T) {
	var tx karst.Sender[int]
	assert.False(t, tx.Send(1))
}

func TestChannelSenderCopiesShareQueue(t *testing.T) {
	tx, rx := karst.NewChannel[string]()
	other := tx

	require.True(t, other.Send("a"))
	require.True(t, tx.Send("b"))

	got, _ := rx.Recv()
	assert.Equal(t, "a", got)
	got, _ = rx.Recv()
	assert.Equal(t, "b", got)
}
