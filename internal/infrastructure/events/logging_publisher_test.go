package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	logginginfra "github.com/alexisbeaulieu97/statedemo/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/statedemo/internal/ports"
)

func newTestLogger(t *testing.T, buf *bytes.Buffer) ports.Logger {
	t.Helper()
	logger, err := logginginfra.New(logginginfra.Options{
		Writer:    buf,
		Level:     "debug",
		Layer:     "test",
		Component: "publisher",
	})
	require.NoError(t, err)
	return logger
}

func TestLoggingPublisherIncludesCorrelationID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newTestLogger(t, buf))

	ctx := ports.WithCorrelationID(context.Background(), "abc-123")
	err := publisher.Publish(ctx, ports.TransitionEvent{
		Container: "store",
		Operation: "increment",
		Count:     1,
		Theme:     "light",
	})
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "domain event", entry["message"])
	require.Equal(t, ports.EventStateTransition, entry["event_type"])
	require.Equal(t, "abc-123", entry["correlation_id"])
	require.Equal(t, "store", entry["container"])
	require.Equal(t, "increment", entry["operation"])
}

func TestLoggingPublisherInvokesSubscribersInOrder(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(nil)

	var order []string
	_, err := publisher.Subscribe(ports.EventStateNotified, func(ctx context.Context, event ports.DomainEvent) error {
		order = append(order, "first")
		return nil
	})
	require.NoError(t, err)
	_, err = publisher.Subscribe(ports.EventStateNotified, func(ctx context.Context, event ports.DomainEvent) error {
		order = append(order, "second")
		return nil
	})
	require.NoError(t, err)

	err = publisher.Publish(context.Background(), ports.NotificationEvent{Container: "context", Field: "count"})
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second"}, order)
}

func TestLoggingPublisherUnsubscribe(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(nil)
	calls := 0
	sub, err := publisher.Subscribe(ports.EventStateTransition, func(context.Context, ports.DomainEvent) error {
		calls++
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), ports.TransitionEvent{Container: "store"}))
	sub.Unsubscribe()
	require.NoError(t, publisher.Publish(context.Background(), ports.TransitionEvent{Container: "store"}))
	require.Equal(t, 1, calls)
}

func TestLoggingPublisherLogsHandlerFailures(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newTestLogger(t, buf))
	_, err := publisher.Subscribe(ports.EventActionIgnored, func(context.Context, ports.DomainEvent) error {
		return errors.New("handler exploded")
	})
	require.NoError(t, err)

	err = publisher.Publish(context.Background(), ports.IgnoredEvent{Container: "store", Request: "counter/double", Reason: "unknown action"})
	require.NoError(t, err)
	require.True(t, strings.Contains(buf.String(), "handler exploded"))
	require.True(t, strings.Contains(buf.String(), "event handler failed"))
}
