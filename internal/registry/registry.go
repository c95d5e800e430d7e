// Package registry names lazily initialized resources and hands out shared
// handles to them.
//
// Ownership boundary:
// - binding resource ids to initializers
//
// - forcing and inspecting initialization state
//
// The registry never constructs resources itself; each handle defers to its
// cell, so the exactly-once guarantee is the cell's.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/danmuck/cellkit/cell"
)

var (
	ErrNotBound     = errors.New("registry: resource not bound")
	ErrAlreadyBound = errors.New("registry: resource already bound")
)

// Handle is a named slot for one lazily constructed resource.
type Handle struct {
	id   string
	kind string
	cell *cell.Cell[any]
}

func (h *Handle) ID() string {
	return h.id
}

func (h *Handle) Kind() string {
	return h.kind
}

// Resolve returns the resource, constructing it on first call.
func (h *Handle) Resolve() (any, error) {
	return h.cell.GetOrInit()
}

// Peek returns the resource only if it has already been constructed.
func (h *Handle) Peek() (any, bool) {
	return h.cell.Get()
}

func (h *Handle) Initialized() bool {
	return h.cell.Initialized()
}

// Registry stores resource handles by id.
type Registry struct {
	mu   sync.RWMutex
	repo map[string]*Handle
}

// NewRegistry initializes an empty resource registry.
func NewRegistry() *Registry {
	return &Registry{
		repo: make(map[string]*Handle),
	}
}

// Bind registers init under id and returns the shared handle. Binding an
// id twice is refused; the first initializer stays authoritative.
func (r *Registry) Bind(id, kind string, init func() (any, error)) (*Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.repo[id]; exists {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyBound, id)
	}
	h := &Handle{
		id:   id,
		kind: kind,
		cell: cell.New(init),
	}
	r.repo[id] = h
	return h, nil
}

// Get returns a handle by id.
func (r *Registry) Get(id string) (*Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.repo[id]
	return h, ok
}

// Resolve forces initialization of the resource bound under id.
func (r *Registry) Resolve(id string) (any, error) {
	h, ok := r.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotBound, id)
	}
	return h.Resolve()
}

// All returns a snapshot of all bound handles.
func (r *Registry) All() map[string]*Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]*Handle, len(r.repo))
	for id, h := range r.repo {
		out[id] = h
	}
	return out
}

// Default returns the process-wide registry, constructed on first use.
var Default = cell.Func(NewRegistry)
