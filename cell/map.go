package cell

import "sync"

// Map is a keyed collection of cells: each key is initialized at most once
// across all concurrent callers. Failed initializations leave their key
// empty, matching Cell semantics.
type Map[K comparable, V any] struct {
	cells sync.Map // map[K]*Cell[V]
}

// GetOrInit returns the value for key, constructing it with init if the
// key's cell is still empty.
func (m *Map[K, V]) GetOrInit(key K, init func() (V, error)) (V, error) {
	c, _ := m.cells.LoadOrStore(key, &Cell[V]{})
	return c.(*Cell[V]).Do(init)
}

// Get peeks at key without initializing it.
func (m *Map[K, V]) Get(key K) (V, bool) {
	c, ok := m.cells.Load(key)
	if !ok {
		var zero V
		return zero, false
	}
	return c.(*Cell[V]).Get()
}

// Initialized reports whether key holds a value.
func (m *Map[K, V]) Initialized(key K) bool {
	c, ok := m.cells.Load(key)
	return ok && c.(*Cell[V]).Initialized()
}
