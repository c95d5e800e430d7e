package cell

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

var (
	ErrInitFailed = errors.New("cell: init failed")
	ErrNoInit     = errors.New("cell: no initializer bound")
)

// Cell lazily constructs and caches exactly one value of type T.
//
// The value is published with an atomic flag: once the flag reads true every
// goroutine observes the fully written value, so readers after the first
// successful initialization never take the lock. A failed initializer leaves
// the cell empty and the next caller retries; only one goroutine runs the
// initializer at a time.
//
// The zero value is an empty cell usable with Do. Values stored in a Cell
// must not be mutated after publication.
type Cell[T any] struct {
	done atomic.Bool
	mu   sync.Mutex
	init func() (T, error)
	val  T
}

// New binds an initializer to a fresh empty cell.
func New[T any](init func() (T, error)) *Cell[T] {
	return &Cell[T]{init: init}
}

// GetOrInit returns the cached value, constructing it on first call via the
// initializer bound at New. Errors from the initializer wrap ErrInitFailed.
func (c *Cell[T]) GetOrInit() (T, error) {
	return c.Do(c.init)
}

// Do returns the cached value, constructing it with init if the cell is
// still empty. init is ignored once the cell is populated.
func (c *Cell[T]) Do(init func() (T, error)) (T, error) {
	if c.done.Load() {
		return c.val, nil
	}
	return c.initSlow(init)
}

func (c *Cell[T]) initSlow(init func() (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// A contending caller may have populated the cell while we waited.
	if c.done.Load() {
		return c.val, nil
	}

	var zero T
	if init == nil {
		return zero, ErrNoInit
	}
	val, err := init()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrInitFailed, err)
	}

	// Value write before the flag store; the atomic pair is what keeps
	// partially constructed values invisible to the fast path.
	c.val = val
	c.done.Store(true)
	return c.val, nil
}

// Get peeks at the cell without initializing it.
func (c *Cell[T]) Get() (T, bool) {
	if !c.done.Load() {
		var zero T
		return zero, false
	}
	return c.val, true
}

// Initialized reports whether the cell holds a value.
func (c *Cell[T]) Initialized() bool {
	return c.done.Load()
}
