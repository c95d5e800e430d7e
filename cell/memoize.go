package cell

// Func returns a memoized accessor for fn: every call returns the result of
// the single underlying invocation.
func Func[T any](fn func() T) func() T {
	v := NewValue(fn)
	return v.Load
}

// FuncErr returns a memoized accessor for a fallible fn. A failed call
// leaves nothing cached, so the next call invokes fn again.
func FuncErr[T any](fn func() (T, error)) func() (T, error) {
	c := New(fn)
	return c.GetOrInit
}
