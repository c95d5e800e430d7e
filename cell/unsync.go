package cell

// Unsync is the check-then-construct cell with no synchronization at all.
// It exists for single-goroutine use; shared across goroutines it can run
// the fill function twice and publish a half-written value, which is the
// exact defect the synchronized cells guard against. Do not share one.
//
// Recursive use from its own fill function panics instead of looping.
type Unsync[T any] struct {
	done    bool
	filling bool
	val     T
}

// Get returns the value, calling fill to construct it if needed. fill runs
// at most once.
func (u *Unsync[T]) Get(fill func() T) T {
	if !u.done {
		if u.filling {
			panic("cell: recursive Unsync fill")
		}
		u.filling = true
		u.val = fill()
		u.done = true
		u.filling = false
	}
	return u.val
}

// Set stores val if the cell is still empty and reports whether it did.
func (u *Unsync[T]) Set(val T) bool {
	if u.done {
		return false
	}
	if u.filling {
		panic("cell: Set during Unsync fill")
	}
	u.val = val
	u.done = true
	return true
}

// Initialized reports whether the cell holds a value.
func (u *Unsync[T]) Initialized() bool {
	return u.done
}
