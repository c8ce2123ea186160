package customer

import "github.com/georgemunganga/storefront-api/internal/storage"

// Repository defines the interface for customer data storage.
type Repository = storage.Repository[*Customer]
