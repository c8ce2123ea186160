package category

import "github.com/georgemunganga/storefront-api/internal/storage"

// Repository defines the interface for category data storage.
type Repository = storage.Repository[*Category]
