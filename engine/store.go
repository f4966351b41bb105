package engine

import (
	"sync"

	"github.com/lixenwraith/ricochet/core"
)

// Store is a generic container for a specific component type T
// Uses sparse set pattern: dense component slice indexed through an entity map
// Iteration order is insertion order and survives removals
type Store[T any] struct {
	mu       sync.RWMutex
	index    map[core.Entity]int
	entities []core.Entity // Parallel to dense
	dense    []T
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[core.Entity]int),
		entities: make([]core.Entity, 0, 16),
		dense:    make([]T, 0, 16),
	}
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx, exists := s.index[e]; exists {
		s.dense[idx] = val
		return
	}
	s.index[e] = len(s.dense)
	s.entities = append(s.entities, e)
	s.dense = append(s.dense, val)
}

// Get retrieves a copy of the component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.index[e]
	if !ok {
		var zero T
		return zero, false
	}
	return s.dense[idx], true
}

// Ref returns a pointer to the stored component for in-place mutation
// Valid until the next insertion, removal or clear on this store; nil if absent
// Caller must hold the world update lock
func (s *Store[T]) Ref(e core.Entity) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.index[e]
	if !ok {
		return nil
	}
	return &s.dense[idx]
}

// Remove deletes the component of an entity, preserving order of the rest
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.index[e]
	if !exists {
		return
	}
	delete(s.index, e)

	copy(s.entities[idx:], s.entities[idx+1:])
	s.entities = s.entities[:len(s.entities)-1]
	copy(s.dense[idx:], s.dense[idx+1:])
	var zero T
	s.dense[len(s.dense)-1] = zero
	s.dense = s.dense[:len(s.dense)-1]

	for i := idx; i < len(s.entities); i++ {
		s.index[s.entities[i]] = i
	}
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[e]
	return ok
}

// All returns all entities with this component type in insertion order
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = make(map[core.Entity]int)
	s.entities = make([]core.Entity, 0, 16)
	s.dense = make([]T, 0, 16)
}
