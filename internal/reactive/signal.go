// Package reactive provides the small observer primitives both state
// containers use to notify views of field-level changes.
package reactive

import "sync"

// EqualFunc compares two values for equality.
type EqualFunc[T any] func(a, b T) bool

// EqualComparable compares comparable values with ==.
func EqualComparable[T comparable](a, b T) bool {
	return a == b
}

// Subscribable emits change notifications.
type Subscribable interface {
	Subscribe(fn func()) func()
}

// Signal holds a value and notifies subscribers when it changes.
type Signal[T any] struct {
	mu    sync.Mutex
	value T
	subs  map[int]func(T)
	order []int
	next  int
	equal EqualFunc[T]
}

// NewSignal creates a signal with an initial value. Every Set notifies; use
// NewComparable to suppress equal values.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

// NewComparable creates a signal that suppresses notifications when the new
// value equals the current one.
func NewComparable[T comparable](initial T) *Signal[T] {
	s := NewSignal(initial)
	s.equal = EqualComparable[T]
	return s
}

// Get returns the current value.
func (s *Signal[T]) Get() T {
	if s == nil {
		var zero T
		return zero
	}
	s.mu.Lock()
	value := s.value
	s.mu.Unlock()
	return value
}

// Set updates the value and notifies subscribers if it changed.
func (s *Signal[T]) Set(value T) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	if s.equal != nil && s.equal(s.value, value) {
		s.mu.Unlock()
		return false
	}
	s.value = value
	subs := s.copySubscribersLocked()
	s.mu.Unlock()

	s.notify(subs)
	return true
}

// Update replaces the value with fn(current). The read and write happen
// under one lock so concurrent updates cannot interleave; subscribers run
// after the lock is released.
func (s *Signal[T]) Update(fn func(T) T) bool {
	if s == nil || fn == nil {
		return false
	}
	s.mu.Lock()
	next := fn(s.value)
	if s.equal != nil && s.equal(s.value, next) {
		s.mu.Unlock()
		return false
	}
	s.value = next
	subs := s.copySubscribersLocked()
	s.mu.Unlock()

	s.notify(subs)
	return true
}

// notify hands each listener the value current at call time. A listener
// that sets the signal again triggers a nested round, and the listeners
// after it in this round must not see the older value.
func (s *Signal[T]) notify(subs []func(T)) {
	for _, fn := range subs {
		fn(s.Get())
	}
}

// Subscribe registers a listener for change notifications.
func (s *Signal[T]) Subscribe(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return s.Watch(func(T) { fn() })
}

// Watch registers a listener that receives the new value.
func (s *Signal[T]) Watch(fn func(T)) func() {
	if s == nil || fn == nil {
		return func() {}
	}
	s.mu.Lock()
	if s.subs == nil {
		s.subs = make(map[int]func(T))
	}
	id := s.next
	s.next++
	s.subs[id] = fn
	s.order = append(s.order, id)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			for i, existing := range s.order {
				if existing == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
			s.mu.Unlock()
		})
	}
}

// copySubscribersLocked returns listeners in registration order.
func (s *Signal[T]) copySubscribersLocked() []func(T) {
	if len(s.order) == 0 {
		return nil
	}
	subs := make([]func(T), 0, len(s.order))
	for _, id := range s.order {
		if fn, ok := s.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	return subs
}
