package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPublishInvokesHandlersInOrder(t *testing.T) {
	d := NewInMemoryDispatcher(nil)
	var seen []string
	d.Subscribe(EventTicketAdded, func(_ context.Context, e Event) error {
		seen = append(seen, "first:"+e.TicketID)
		return nil
	})
	d.Subscribe(EventTicketAdded, func(_ context.Context, e Event) error {
		seen = append(seen, "second:"+e.TicketID)
		return nil
	})
	d.Subscribe(EventTicketDeleted, func(_ context.Context, _ Event) error {
		seen = append(seen, "wrong")
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketAdded, TicketID: "7"}))
	assert.Equal(t, []string{"first:7", "second:7"}, seen)
}

func TestPublishContinuesAfterHandlerError(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	d := NewInMemoryDispatcher(zap.New(core))
	called := false
	d.Subscribe(EventAuthChanged, func(context.Context, Event) error { return errors.New("boom") })
	d.Subscribe(EventAuthChanged, func(context.Context, Event) error {
		called = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventAuthChanged}))
	assert.True(t, called)
	assert.Equal(t, 1, logs.FilterMessage("event handler failed").Len())
}

func TestSubscribeAllRunsAfterTypedHandlers(t *testing.T) {
	d := NewInMemoryDispatcher(nil)
	var seen []string
	d.SubscribeAll(func(_ context.Context, e Event) error {
		seen = append(seen, "all:"+string(e.Type))
		return nil
	})
	d.Subscribe(EventRouteChanged, func(context.Context, Event) error {
		seen = append(seen, "typed")
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventRouteChanged}))
	require.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketDeleted}))
	assert.Equal(t, []string{"typed", "all:route_changed", "all:ticket_deleted"}, seen)
}

func TestPublishRecoversHandlerPanic(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	d := NewInMemoryDispatcher(zap.New(core))
	d.SubscribeAll(func(context.Context, Event) error { panic("kaboom") })

	require.NotPanics(t, func() {
		require.NoError(t, d.Publish(context.Background(), Event{Type: EventAuthChanged}))
	})
	assert.Equal(t, 1, logs.FilterMessage("event handler failed").Len())
}
