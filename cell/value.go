package cell

import "sync"

// Value is a call-once cell for initializers that cannot fail. The
// exactly-once guarantee is sync.Once's, not hand-rolled locking.
type Value[T any] struct {
	once sync.Once
	fn   func() T
	val  T
}

// NewValue binds an infallible initializer to a fresh cell.
func NewValue[T any](fn func() T) *Value[T] {
	return &Value[T]{fn: fn}
}

// Load returns the value, constructing it on first call.
func (v *Value[T]) Load() T {
	v.once.Do(func() {
		v.val = v.fn()
	})
	return v.val
}

// Eager holds a value constructed before any access. Reads are plain; there
// is nothing left to synchronize.
type Eager[T any] struct {
	val T
}

// Of wraps an already constructed value.
func Of[T any](val T) Eager[T] {
	return Eager[T]{val: val}
}

// Load returns the wrapped value.
func (e Eager[T]) Load() T {
	return e.val
}
