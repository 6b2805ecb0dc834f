// Package store implements the centralized state container: named slices of
// state updated only by pure reducers in response to dispatched actions.
// Views read through selectors and are notified when the selected value
// changes. A Store is constructed explicitly and passed to whoever needs it.
package store

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"
	"github.com/alexisbeaulieu97/statedemo/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/statedemo/internal/ports"
	"github.com/alexisbeaulieu97/statedemo/internal/reactive"
)

// Name identifies this container variant in logs, events and metrics.
const Name = "store"

// DispatchFunc sends an action through the middleware chain to the reducer.
type DispatchFunc func(Action) Action

// Middleware wraps dispatch. It receives the store so it can read state
// before and after calling next.
type Middleware func(s *Store, next DispatchFunc) DispatchFunc

// Option configures a Store.
type Option func(*Store)

// WithMiddleware appends middleware. The first middleware given is the
// outermost.
func WithMiddleware(mw ...Middleware) Option {
	return func(s *Store) {
		s.middleware = append(s.middleware, mw...)
	}
}

// WithPublisher routes transition and notification events to publisher.
func WithPublisher(publisher ports.EventPublisher) Option {
	return func(s *Store) {
		s.publisher = publisher
	}
}

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(logger ports.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithEventContext sets the context events are published with.
func WithEventContext(ctx context.Context) Option {
	return func(s *Store) {
		if ctx != nil {
			s.eventCtx = ctx
		}
	}
}

// Store holds the root state.
type Store struct {
	state      *reactive.Signal[RootState]
	reducer    Reducer[RootState]
	middleware []Middleware
	dispatch   DispatchFunc

	publisher ports.EventPublisher
	logger    ports.Logger
	eventCtx  context.Context
}

// Configure builds a store from the counter and theme slices.
func Configure(opts ...Option) *Store {
	s := &Store{
		state:    reactive.NewSignal(InitialRootState()),
		reducer:  RootReducer,
		logger:   logging.NewNoOpLogger(),
		eventCtx: context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "store", "container", Name)

	dispatch := DispatchFunc(s.baseDispatch)
	for i := len(s.middleware) - 1; i >= 0; i-- {
		if s.middleware[i] == nil {
			continue
		}
		dispatch = s.middleware[i](s, dispatch)
	}
	s.dispatch = dispatch
	return s
}

// GetState returns the current root state.
func (s *Store) GetState() RootState {
	return s.state.Get()
}

// Dispatch sends action through middleware to the root reducer and returns
// the action.
func (s *Store) Dispatch(action Action) Action {
	return s.dispatch(action)
}

// Subscribe registers fn to run after every dispatch a reducer handles.
// Unknown actions notify no one.
func (s *Store) Subscribe(fn func()) func() {
	return s.state.Subscribe(fn)
}

func (s *Store) baseDispatch(action Action) Action {
	if !Handles(action.Type) {
		s.logger.Debug(s.eventCtx, "action ignored", "action", action.Type)
		s.publish(ports.IgnoredEvent{Container: Name, Request: action.Type, Reason: "unknown action"})
		return action
	}

	var prev, next RootState
	s.state.Update(func(current RootState) RootState {
		prev = current
		next = s.reducer(current, action)
		return next
	})

	snap := next.Snapshot()
	changed := prev.Snapshot().Changed(snap)
	fields := make([]string, 0, len(changed))
	for _, field := range changed {
		fields = append(fields, string(field))
	}
	s.publish(ports.TransitionEvent{
		Container: Name,
		Operation: action.Type,
		Count:     snap.Count,
		Theme:     snap.Theme.String(),
		Changed:   fields,
	})
	return action
}

func (s *Store) publish(event ports.DomainEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(s.eventCtx, event); err != nil {
		s.logger.Warn(s.eventCtx, "event publish failed", "event_type", event.EventType(), "error", err)
	}
}

// Select registers fn to run with the selected value whenever a dispatch
// changes it.
func Select[T comparable](s *Store, selector func(RootState) T, fn func(T)) func() {
	if fn == nil {
		return func() {}
	}
	return subscribeSelector(s, selector, func(value T, _ RootState) { fn(value) })
}

// UseSelector reads the selected value once.
func UseSelector[T any](s *Store, selector func(RootState) T) T {
	return selector(s.GetState())
}

func subscribeSelector[T comparable](s *Store, selector func(RootState) T, fn func(T, RootState)) func() {
	var mu sync.Mutex
	last := selector(s.GetState())
	return s.state.Watch(func(RootState) {
		// Read the store, not the argument: a listener earlier in this round
		// may already have dispatched again.
		state := s.GetState()
		next := selector(state)
		mu.Lock()
		changed := next != last
		last = next
		mu.Unlock()
		if changed {
			fn(next, state)
		}
	})
}

// SelectCount reads the counter value.
func SelectCount(state RootState) int {
	return state.Counter.Count
}

// SelectTheme reads the theme value.
func SelectTheme(state RootState) appstate.Theme {
	return state.Theme.Theme
}
