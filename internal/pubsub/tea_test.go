package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListener_YieldsEventsInTurn(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	l := NewListener(ctx, b)

	b.Publish("first")
	b.Publish("second")

	msg := l.Listen()()
	ev, ok := msg.(Event[string])
	require.True(t, ok)
	require.Equal(t, "first", ev.Payload)

	ev, ok = l.Listen()().(Event[string])
	require.True(t, ok)
	require.Equal(t, "second", ev.Payload)
}

func TestListener_NilAfterCancel(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	l := NewListener(ctx, b)
	cancel()

	require.Nil(t, l.Listen()())
}

func TestListener_NilAfterBrokerClose(t *testing.T) {
	b := NewBroker[string]()
	l := NewListener(context.Background(), b)
	b.Close()

	require.Nil(t, l.Listen()())
}
