package ports

import "context"

const (
	// EventStateTransition is emitted after a container applies an operation.
	EventStateTransition = "state.transition"
	// EventStateNotified is emitted when a field subscriber is notified.
	EventStateNotified = "state.notified"
	// EventActionIgnored is emitted when a container receives a request it
	// does not handle (unknown store action, unsupported operation).
	EventActionIgnored = "state.ignored"
)

// DomainEvent represents a significant occurrence within the domain or
// application layer. Events carry structured payloads that downstream
// subscribers can use for logging, UI updates, or metrics.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish blocks until all handlers run. Implementations must
// be thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures should be
// surfaced via returned errors so publishers can log diagnostics and continue
// delivering to remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler. Callers must invoke
// Unsubscribe to stop receiving events.
type Subscription interface {
	Unsubscribe()
}

// TransitionEvent describes one applied operation.
type TransitionEvent struct {
	Container string
	Operation string
	Count     int
	Theme     string
	Changed   []string
}

// EventType implements DomainEvent.
func (e TransitionEvent) EventType() string { return EventStateTransition }

// Payload implements DomainEvent.
func (e TransitionEvent) Payload() interface{} {
	return map[string]interface{}{
		"container": e.Container,
		"operation": e.Operation,
		"count":     e.Count,
		"theme":     e.Theme,
		"changed":   e.Changed,
	}
}

// NotificationEvent describes a field subscriber being told about a change.
type NotificationEvent struct {
	Container string
	Field     string
}

// EventType implements DomainEvent.
func (e NotificationEvent) EventType() string { return EventStateNotified }

// Payload implements DomainEvent.
func (e NotificationEvent) Payload() interface{} {
	return map[string]interface{}{
		"container": e.Container,
		"field":     e.Field,
	}
}

// IgnoredEvent describes a request a container declined to handle.
type IgnoredEvent struct {
	Container string
	Request   string
	Reason    string
}

// EventType implements DomainEvent.
func (e IgnoredEvent) EventType() string { return EventActionIgnored }

// Payload implements DomainEvent.
func (e IgnoredEvent) Payload() interface{} {
	return map[string]interface{}{
		"container": e.Container,
		"request":   e.Request,
		"reason":    e.Reason,
	}
}
