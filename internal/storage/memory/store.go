package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/georgemunganga/storefront-api/internal/storage"
)

// Store is an in-memory storage.Repository for local runs and tests.
// Values are copied on the way in and out so callers never share state with the map.
type Store[T any, PT interface {
	*T
	storage.Entity
}] struct {
	mu     sync.RWMutex
	lastID int64
	items  map[int64]T
}

// NewStore returns an empty store. Identifiers start at 1.
func NewStore[T any, PT interface {
	*T
	storage.Entity
}]() *Store[T, PT] {
	return &Store[T, PT]{items: make(map[int64]T)}
}

// FindAll returns every entity ordered by identifier.
func (s *Store[T, PT]) FindAll(_ context.Context) ([]PT, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]PT, 0, len(ids))
	for _, id := range ids {
		item := s.items[id]
		result = append(result, PT(&item))
	}
	return result, nil
}

// FindByID returns a copy of the entity or storage.ErrNotFound.
func (s *Store[T, PT]) FindByID(_ context.Context, id int64) (PT, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return PT(&item), nil
}

// Save assigns the next identifier to new entities and overwrites existing ones.
func (s *Store[T, PT]) Save(_ context.Context, entity PT) (PT, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := *entity
	ref := PT(&item)
	id := ref.Identity()
	if id == 0 {
		s.lastID++
		id = s.lastID
		ref.AssignID(id)
	} else if id > s.lastID {
		// keep generated ids ahead of explicitly stored ones
		s.lastID = id
	}
	s.items[id] = item

	saved := item
	return PT(&saved), nil
}

// DeleteByID removes the entity. Deleted identifiers are not reused.
func (s *Store[T, PT]) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, id)
	return nil
}

// Len returns the number of stored entities.
func (s *Store[T, PT]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
