package cell

import (
	"fmt"
	"sync"
)

// Locked is a lazily initialized cell that takes the mutex on every access,
// populated reads included. Correct but serializing; prefer Cell unless the
// value is read rarely.
type Locked[T any] struct {
	mu   sync.Mutex
	done bool
	init func() (T, error)
	val  T
}

// NewLocked binds an initializer to a fresh locked cell.
func NewLocked[T any](init func() (T, error)) *Locked[T] {
	return &Locked[T]{init: init}
}

// Get returns the cached value, constructing it if the cell is empty. A
// failed initializer leaves the cell empty; retries are serialized by the
// same mutex.
func (l *Locked[T]) Get() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done {
		return l.val, nil
	}

	var zero T
	if l.init == nil {
		return zero, ErrNoInit
	}
	val, err := l.init()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrInitFailed, err)
	}

	l.val = val
	l.done = true
	return l.val, nil
}

// Initialized reports whether the cell holds a value.
func (l *Locked[T]) Initialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}
