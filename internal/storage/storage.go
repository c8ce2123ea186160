// Package storage holds the repository abstraction shared by every resource
// module. Implementations live in the memory and postgres subpackages.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no entity exists for the requested identifier.
var ErrNotFound = errors.New("resource not found")

// Entity is a record keyed by a store-assigned numeric identifier.
// An identifier of zero means the entity has not been saved yet.
type Entity interface {
	Identity() int64
	AssignID(id int64)
}

// Repository is the generic persistence contract. T is a pointer to an entity.
type Repository[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int64) (T, error)
	// Save inserts the entity when its identifier is zero, otherwise it
	// inserts or overwrites the record stored under that identifier.
	Save(ctx context.Context, entity T) (T, error)
	// DeleteByID removes the entity if present. Missing ids are not an error.
	DeleteByID(ctx context.Context, id int64) error
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
