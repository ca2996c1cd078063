package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, ch <-chan Event[T]) Event[T] {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(time.Second):
		require.FailNow(t, "timeout waiting for event")
		return Event[T]{}
	}
}

func TestBroker_DeliversToAllSubscribers(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ctx := context.Background()
	subs := []<-chan Event[string]{b.Subscribe(ctx), b.Subscribe(ctx)}
	require.Equal(t, 2, b.SubscriberCount())

	b.Publish("[INFO] [submit] started")
	for _, ch := range subs {
		ev := receive(t, ch)
		require.Equal(t, "[INFO] [submit] started", ev.Payload)
		require.False(t, ev.Timestamp.IsZero())
	}
}

func TestBroker_PreservesOrder(t *testing.T) {
	b := NewBroker[int]()
	defer b.Close()
	ch := b.Subscribe(context.Background())

	for i := range 10 {
		b.Publish(i)
	}
	for i := range 10 {
		require.Equal(t, i, receive(t, ch).Payload)
	}
}

func TestBroker_CancelUnsubscribes(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)
	cancel()

	require.Eventually(t, func() bool { return b.SubscriberCount() == 0 }, time.Second, 5*time.Millisecond)
	_, ok := <-ch
	require.False(t, ok)
}

func TestBroker_FullSubscriberDropsInsteadOfBlocking(t *testing.T) {
	b := NewBroker[int](WithBuffer(2))
	defer b.Close()
	ch := b.Subscribe(context.Background())

	done := make(chan struct{})
	go func() {
		for i := range 5 {
			b.Publish(i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.FailNow(t, "Publish blocked on a full subscriber")
	}

	require.Equal(t, uint64(3), b.Dropped())
	require.Equal(t, 0, receive(t, ch).Payload)
	require.Equal(t, 1, receive(t, ch).Payload)
}

func TestBroker_Close(t *testing.T) {
	b := NewBroker[string]()
	ch := b.Subscribe(context.Background())

	b.Close()
	b.Close()

	_, ok := <-ch
	require.False(t, ok)
	require.Zero(t, b.SubscriberCount())

	late := b.Subscribe(context.Background())
	_, ok = <-late
	require.False(t, ok, "subscriptions after Close are already closed")

	require.NotPanics(t, func() { b.Publish("ignored") })
}

func TestWithBuffer_IgnoresNonPositive(t *testing.T) {
	b := NewBroker[int](WithBuffer(0))
	require.Equal(t, defaultBufferSize, b.size)
}
