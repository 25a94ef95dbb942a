// Package state holds the shared reactive UI state of the landing page:
// the color theme and spring-animated pointer values.
//
// Stores are safe for concurrent use. Subscribers are called synchronously
// by the goroutine that changed the value, outside the store's lock.
package state

import (
	"maps"
	"slices"
	"sync"
)

// subscribers is a registry of change callbacks keyed by subscription id.
type subscribers[T any] struct {
	next int
	fns  map[int]func(T)
}

func (s *subscribers[T]) add(fn func(T)) int {
	if s.fns == nil {
		s.fns = make(map[int]func(T))
	}
	id := s.next
	s.next++
	s.fns[id] = fn
	return id
}

// snapshot returns the callbacks in subscription order.
func (s *subscribers[T]) snapshot() []func(T) {
	ids := slices.Sorted(maps.Keys(s.fns))
	out := make([]func(T), 0, len(ids))
	for _, id := range ids {
		out = append(out, s.fns[id])
	}
	return out
}

// Writable is a value with change notification.
type Writable[T comparable] struct {
	mu    sync.Mutex
	value T
	subs  subscribers[T]
}

// NewWritable returns a store holding v.
func NewWritable[T comparable](v T) *Writable[T] {
	return &Writable[T]{value: v}
}

// Get returns the current value.
func (w *Writable[T]) Get() T {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.value
}

// Set stores v and notifies subscribers if it changed.
func (w *Writable[T]) Set(v T) {
	w.Update(func(T) T { return v })
}

// Update replaces the value with fn(current) and notifies subscribers if
// it changed.
func (w *Writable[T]) Update(fn func(T) T) {
	w.mu.Lock()
	old := w.value
	w.value = fn(old)
	v := w.value
	var fns []func(T)
	if v != old {
		fns = w.subs.snapshot()
	}
	w.mu.Unlock()

	for _, f := range fns {
		f(v)
	}
}

// Subscribe calls fn with the current value, then on every change until
// the returned func is called.
func (w *Writable[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	w.mu.Lock()
	id := w.subs.add(fn)
	v := w.value
	w.mu.Unlock()

	fn(v)
	return func() {
		w.mu.Lock()
		delete(w.subs.fns, id)
		w.mu.Unlock()
	}
}
