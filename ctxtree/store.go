package ctxtree

import (
	"runtime"
	"sync"
	"weak"
)

// A Store is a caller-owned association of contexts to values. The context
// contributes identity and the ancestor chain; the Store holds the data.
// Each concern owns its own Store, so unrelated call graphs can never
// collide on a key.
//
// Keys are weak references: an entry neither keeps its context alive nor
// survives it. Once a key context becomes unreachable, its entry is removed
// by a runtime cleanup. A Store is safe for concurrent use.
type Store[V any] struct {
	mu sync.RWMutex
	m  map[weak.Pointer[Context]]V
}

// NewStore returns an empty Store.
func NewStore[V any]() *Store[V] {
	return &Store[V]{m: make(map[weak.Pointer[Context]]V)}
}

// Set associates v with ctx, replacing any previous value for that exact
// context. Ancestors and descendants are unaffected; a descendant entry
// shadows an ancestor's in Get.
func (s *Store[V]) Set(ctx *Context, v V) {
	k := weak.Make(ctx)
	s.mu.Lock()
	_, existed := s.m[k]
	s.m[k] = v
	s.mu.Unlock()
	if !existed {
		// The cleanup must not reference ctx itself, only the weak key,
		// or the context could never be reclaimed.
		runtime.AddCleanup(ctx, func(k weak.Pointer[Context]) {
			s.mu.Lock()
			delete(s.m, k)
			s.mu.Unlock()
		}, k)
	}
}

// Get walks from ctx toward the root and returns the value of the nearest
// context with an entry, or the zero value and false if no ancestor has
// one. The walk never mutates the Store and always terminates: parent
// links are set once, at construction, to an already-existing context, so
// the chain is finite and acyclic.
func (s *Store[V]) Get(ctx *Context) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for c := ctx; c != nil; c = c.parent {
		if v, ok := s.m[weak.Make(c)]; ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// Delete removes the entry for ctx, if any. Ancestor entries visible
// through Get are untouched.
func (s *Store[V]) Delete(ctx *Context) {
	s.mu.Lock()
	delete(s.m, weak.Make(ctx))
	s.mu.Unlock()
}

// Len returns the number of live entries.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
