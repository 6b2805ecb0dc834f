// Package provider implements the context-style state container: a provider
// scope owns the counter and theme values and hands descendants a bundle of
// current values plus mutator closures. Descendants reach the provider
// through a context.Context and fall back to an inert default bundle when
// none is attached.
package provider

import (
	"context"

	"github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"
	"github.com/alexisbeaulieu97/statedemo/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/statedemo/internal/ports"
	"github.com/alexisbeaulieu97/statedemo/internal/reactive"
)

// Name identifies this container variant in logs, events and metrics.
const Name = "context"

// Value is the bundle a provider exposes to its descendants.
type Value struct {
	Count       int
	Theme       appstate.Theme
	Increment   func()
	Decrement   func()
	ToggleTheme func()
}

// Snapshot returns the values of the bundle without its mutators.
func (v Value) Snapshot() appstate.Snapshot {
	return appstate.Snapshot{Count: v.Count, Theme: v.Theme}
}

// DefaultValue is what a consumer sees outside any provider: count 0,
// theme light and mutators that do nothing.
func DefaultValue() Value {
	initial := appstate.InitialSnapshot()
	noop := func() {}
	return Value{
		Count:       initial.Count,
		Theme:       initial.Theme,
		Increment:   noop,
		Decrement:   noop,
		ToggleTheme: noop,
	}
}

// Option configures a Provider.
type Option func(*Provider)

// WithPublisher routes transition and notification events to publisher.
func WithPublisher(publisher ports.EventPublisher) Option {
	return func(p *Provider) {
		p.publisher = publisher
	}
}

// WithLogger sets the logger used for transition diagnostics.
func WithLogger(logger ports.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithEventContext sets the context events are published with, typically
// one carrying a correlation id.
func WithEventContext(ctx context.Context) Option {
	return func(p *Provider) {
		if ctx != nil {
			p.eventCtx = ctx
		}
	}
}

// Provider owns one counter signal and one theme signal.
type Provider struct {
	count *reactive.Signal[int]
	theme *reactive.Signal[appstate.Theme]

	publisher ports.EventPublisher
	logger    ports.Logger
	eventCtx  context.Context
}

// New creates a provider holding the initial state.
func New(opts ...Option) *Provider {
	initial := appstate.InitialSnapshot()
	p := &Provider{
		count:    reactive.NewComparable(initial.Count),
		theme:    reactive.NewComparable(initial.Theme),
		logger:   logging.NewNoOpLogger(),
		eventCtx: context.Background(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With("component", "provider", "container", Name)
	return p
}

// Value bundles the current values with mutators bound to this provider.
func (p *Provider) Value() Value {
	snap := p.Snapshot()
	return Value{
		Count:       snap.Count,
		Theme:       snap.Theme,
		Increment:   p.increment,
		Decrement:   p.decrement,
		ToggleTheme: p.toggleTheme,
	}
}

func (p *Provider) increment() {
	p.count.Update(func(count int) int {
		return appstate.Increment(appstate.CounterState{Count: count}).Count
	})
	p.record(appstate.OpIncrement, appstate.FieldCount)
}

func (p *Provider) decrement() {
	p.count.Update(func(count int) int {
		return appstate.Decrement(appstate.CounterState{Count: count}).Count
	})
	p.record(appstate.OpDecrement, appstate.FieldCount)
}

func (p *Provider) toggleTheme() {
	p.theme.Update(func(theme appstate.Theme) appstate.Theme {
		return appstate.ToggleTheme(appstate.ThemeState{Theme: theme}).Theme
	})
	p.record(appstate.OpToggleTheme, appstate.FieldTheme)
}

func (p *Provider) record(op appstate.Operation, field appstate.Field) {
	snap := p.Snapshot()
	p.logger.Debug(p.eventCtx, "transition applied", "operation", string(op), "count", snap.Count, "theme", snap.Theme.String())
	p.publish(ports.TransitionEvent{
		Container: Name,
		Operation: string(op),
		Count:     snap.Count,
		Theme:     snap.Theme.String(),
		Changed:   []string{string(field)},
	})
}

func (p *Provider) publish(event ports.DomainEvent) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.Publish(p.eventCtx, event); err != nil {
		p.logger.Warn(p.eventCtx, "event publish failed", "event_type", event.EventType(), "error", err)
	}
}

// Name implements ports.Container.
func (p *Provider) Name() string {
	return Name
}

// Snapshot implements ports.Container.
func (p *Provider) Snapshot() appstate.Snapshot {
	return appstate.Snapshot{Count: p.count.Get(), Theme: p.theme.Get()}
}

// Supports implements ports.Container. The provider exposes no reset.
func (p *Provider) Supports(op appstate.Operation) bool {
	switch op {
	case appstate.OpIncrement, appstate.OpDecrement, appstate.OpToggleTheme:
		return true
	default:
		return false
	}
}

// Apply implements ports.Container by calling the matching mutator.
func (p *Provider) Apply(op appstate.Operation) bool {
	value := p.Value()
	switch op {
	case appstate.OpIncrement:
		value.Increment()
	case appstate.OpDecrement:
		value.Decrement()
	case appstate.OpToggleTheme:
		value.ToggleTheme()
	default:
		p.publish(ports.IgnoredEvent{Container: Name, Request: string(op), Reason: "unsupported"})
		return false
	}
	return true
}

// Subscribe implements ports.Container. fn runs after the watched field's
// signal changes and receives a fresh snapshot.
func (p *Provider) Subscribe(field appstate.Field, fn func(appstate.Snapshot)) func() {
	if fn == nil {
		return func() {}
	}
	notify := func() {
		p.publish(ports.NotificationEvent{Container: Name, Field: string(field)})
		fn(p.Snapshot())
	}
	switch field {
	case appstate.FieldCount:
		return p.count.Subscribe(notify)
	case appstate.FieldTheme:
		return p.theme.Subscribe(notify)
	default:
		return func() {}
	}
}

var _ ports.Container = (*Provider)(nil)
