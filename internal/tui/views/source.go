// Package views holds the three displays shown on each container page and
// the sources they read state through.
package views

import (
	"context"

	"github.com/alexisbeaulieu97/statedemo/internal/container/provider"
	"github.com/alexisbeaulieu97/statedemo/internal/container/store"
	"github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"
)

// Source is how a display reads, watches and changes state.
type Source interface {
	Variant() string
	Count() int
	Theme() appstate.Theme
	// Watch calls fn after each transition that changes field.
	Watch(field appstate.Field, fn func()) func()
	Operations() []appstate.Operation
	// Apply requests op and reports whether the source exposes it.
	Apply(op appstate.Operation) bool
}

// ContextSource reads through the provider attached to ctx. Without one,
// reads return the default bundle and mutations do nothing.
func ContextSource(ctx context.Context) Source {
	return contextSource{ctx: ctx}
}

type contextSource struct {
	ctx context.Context
}

func (c contextSource) Variant() string { return provider.Name }

func (c contextSource) Count() int {
	var count int
	provider.Consume(c.ctx, func(v provider.Value) {
		count = v.Count
	})
	return count
}

func (c contextSource) Theme() appstate.Theme {
	return provider.Use(c.ctx).Theme
}

func (c contextSource) Watch(field appstate.Field, fn func()) func() {
	p, ok := provider.FromContext(c.ctx)
	if !ok || fn == nil {
		return func() {}
	}
	return p.Subscribe(field, func(appstate.Snapshot) { fn() })
}

func (c contextSource) Operations() []appstate.Operation {
	return []appstate.Operation{appstate.OpIncrement, appstate.OpDecrement, appstate.OpToggleTheme}
}

func (c contextSource) Apply(op appstate.Operation) bool {
	value := provider.Use(c.ctx)
	switch op {
	case appstate.OpIncrement:
		value.Increment()
	case appstate.OpDecrement:
		value.Decrement()
	case appstate.OpToggleTheme:
		value.ToggleTheme()
	default:
		return false
	}
	return true
}

// StoreSource reads s through selectors and changes it by dispatching.
func StoreSource(s *store.Store) Source {
	return storeSource{store: s, container: s.Container()}
}

type storeSource struct {
	store     *store.Store
	container *store.Container
}

func (s storeSource) Variant() string { return store.Name }

func (s storeSource) Count() int {
	return store.UseSelector(s.store, store.SelectCount)
}

func (s storeSource) Theme() appstate.Theme {
	return store.UseSelector(s.store, store.SelectTheme)
}

func (s storeSource) Watch(field appstate.Field, fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return s.container.Subscribe(field, func(appstate.Snapshot) { fn() })
}

func (s storeSource) Operations() []appstate.Operation {
	return appstate.Operations()
}

func (s storeSource) Apply(op appstate.Operation) bool {
	action, ok := store.ActionFor(op)
	if !ok {
		return false
	}
	s.store.Dispatch(action)
	return true
}
