package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPublishContinuesAfterHandlerFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	dispatcher := NewInMemoryDispatcher(zap.New(core))

	dispatcher.Subscribe(EventTicketCreated, func(context.Context, Event) error {
		return errors.New("smtp unreachable")
	})
	delivered := false
	dispatcher.Subscribe(EventTicketCreated, func(context.Context, Event) error {
		delivered = true
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{
		ID:        "evt-1",
		Type:      EventTicketCreated,
		Timestamp: time.Now(),
	})
	require.NoError(t, err)
	require.True(t, delivered)

	entries := logs.FilterMessage("event handler failed").All()
	require.Len(t, entries, 1)
	require.Equal(t, "evt-1", entries[0].ContextMap()["event_id"])
}

func TestPublishWithoutSubscribersIsNoOp(t *testing.T) {
	dispatcher := NewInMemoryDispatcher(nil)
	err := dispatcher.Publish(context.Background(), Event{ID: "evt-2", Type: EventTicketStatusChanged})
	require.NoError(t, err)
}
