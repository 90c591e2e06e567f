// Package reactive provides observable value containers.
package reactive

import (
	"sync"
)

// Subscriber receives every value held by a Writable
type Subscriber[T any] func(T)

// Writable holds a value and notifies subscribers whenever it is replaced.
//
// A new subscriber is called immediately with the current value. Subscribers run
// synchronously on the goroutine calling Set/Update, in subscription order, and
// must not call Set or Update themselves.
type Writable[T any] struct {
	mu     sync.RWMutex
	value  T
	subs   map[uint64]Subscriber[T]
	order  []uint64
	nextID uint64

	// notifyMu keeps notifications in the same order as the writes
	notifyMu sync.Mutex
}

// NewWritable creates a Writable holding initial
func NewWritable[T any](initial T) *Writable[T] {
	return &Writable[T]{
		value: initial,
		subs:  make(map[uint64]Subscriber[T]),
	}
}

// Get returns the current value
func (w *Writable[T]) Get() T {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.value
}

// Set replaces the value and notifies subscribers
func (w *Writable[T]) Set(value T) {
	w.notifyMu.Lock()
	defer w.notifyMu.Unlock()

	w.mu.Lock()
	w.value = value
	subs := w.snapshot()
	w.mu.Unlock()

	for _, fn := range subs {
		fn(value)
	}
}

// Update replaces the value with fn(current) and notifies subscribers
func (w *Writable[T]) Update(fn func(T) T) {
	w.notifyMu.Lock()
	defer w.notifyMu.Unlock()

	w.mu.Lock()
	value := fn(w.value)
	w.value = value
	subs := w.snapshot()
	w.mu.Unlock()

	for _, s := range subs {
		s(value)
	}
}

// Subscribe registers fn and calls it with the current value.
// The returned function unsubscribes; calling it more than once is harmless.
func (w *Writable[T]) Subscribe(fn Subscriber[T]) (unsubscribe func()) {
	w.notifyMu.Lock()
	defer w.notifyMu.Unlock()

	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.subs[id] = fn
	w.order = append(w.order, id)
	current := w.value
	w.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() { w.remove(id) })
	}
}

func (w *Writable[T]) remove(id uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.subs, id)
	for i, oid := range w.order {
		if oid == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// snapshot must be called with mu held
func (w *Writable[T]) snapshot() []Subscriber[T] {
	subs := make([]Subscriber[T], 0, len(w.order))
	for _, id := range w.order {
		subs = append(subs, w.subs[id])
	}
	return subs
}
