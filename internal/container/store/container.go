package store

import (
	"github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"
	"github.com/alexisbeaulieu97/statedemo/internal/ports"
)

// Container adapts a Store to ports.Container: operations become dispatched
// actions and field subscriptions become selector subscriptions.
type Container struct {
	store *Store
}

// Container returns the ports.Container view of s.
func (s *Store) Container() *Container {
	return &Container{store: s}
}

// Store returns the underlying store.
func (c *Container) Store() *Store {
	return c.store
}

// Name implements ports.Container.
func (c *Container) Name() string {
	return Name
}

// Snapshot implements ports.Container.
func (c *Container) Snapshot() appstate.Snapshot {
	return c.store.GetState().Snapshot()
}

// Supports implements ports.Container. The store exposes every operation.
func (c *Container) Supports(op appstate.Operation) bool {
	_, ok := ActionFor(op)
	return ok
}

// Apply implements ports.Container by dispatching the matching action.
func (c *Container) Apply(op appstate.Operation) bool {
	action, ok := ActionFor(op)
	if !ok {
		c.store.publish(ports.IgnoredEvent{Container: Name, Request: string(op), Reason: "unsupported"})
		return false
	}
	c.store.Dispatch(action)
	return true
}

// Subscribe implements ports.Container through field selectors.
func (c *Container) Subscribe(field appstate.Field, fn func(appstate.Snapshot)) func() {
	if fn == nil {
		return func() {}
	}
	s := c.store
	notify := func(state RootState) {
		s.publish(ports.NotificationEvent{Container: Name, Field: string(field)})
		fn(state.Snapshot())
	}
	switch field {
	case appstate.FieldCount:
		return subscribeSelector(s, SelectCount, func(_ int, state RootState) { notify(state) })
	case appstate.FieldTheme:
		return subscribeSelector(s, SelectTheme, func(_ appstate.Theme, state RootState) { notify(state) })
	default:
		return func() {}
	}
}

var _ ports.Container = (*Container)(nil)
