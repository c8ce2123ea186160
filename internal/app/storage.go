package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/georgemunganga/storefront-api/internal/config"
	"github.com/georgemunganga/storefront-api/internal/health"
	"github.com/georgemunganga/storefront-api/internal/modules/category"
	"github.com/georgemunganga/storefront-api/internal/modules/customer"
	"github.com/georgemunganga/storefront-api/internal/modules/vendor"
	"github.com/georgemunganga/storefront-api/internal/storage/memory"
	"github.com/georgemunganga/storefront-api/internal/storage/postgres"
)

// Repositories holds one store per resource plus the backend handle used for
// health checks and shutdown.
type Repositories struct {
	Categories category.Repository
	Customers  customer.Repository
	Vendors    vendor.Repository

	db *postgres.Store
}

// NewMemoryRepositories returns empty in-process stores.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Categories: memory.NewStore[category.Category](),
		Customers:  memory.NewStore[customer.Customer](),
		Vendors:    memory.NewStore[vendor.Vendor](),
	}
}

// NewPostgresRepositories binds every resource to the given database.
func NewPostgresRepositories(store *postgres.Store) *Repositories {
	db := store.DB()
	return &Repositories{
		Categories: category.NewPostgresRepository(db),
		Customers:  customer.NewPostgresRepository(db),
		Vendors:    vendor.NewPostgresRepository(db),
		db:         store,
	}
}

// StorageChecker reports whether the backing store is reachable.
// Memory stores are always healthy.
func (r *Repositories) StorageChecker() health.Checker {
	return health.NewFuncChecker("storage", func(ctx context.Context) error {
		if r.db == nil {
			return nil
		}
		return r.db.Ping(ctx)
	})
}

func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

func openRepositories(ctx context.Context, cfg config.Config, logger *log.Entry) (*Repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		logger.Info("using in-memory storage")
		return NewMemoryRepositories(), nil
	case config.StorageDriverPostgres:
		store, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if cfg.AutoMigrate {
			if err := store.MigrateUp(ctx, 0); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("migrate postgres: %w", err)
			}
			logMigrationStatus(ctx, store, logger)
		}
		logger.Info("using postgres storage")
		return NewPostgresRepositories(store), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func logMigrationStatus(ctx context.Context, store *postgres.Store, logger *log.Entry) {
	version, count, err := store.MigrationStatus(ctx)
	if err != nil {
		logger.WithError(err).Warn("failed to read migration status")
		return
	}
	logger.WithFields(log.Fields{"version": version, "applied": count}).Info("migrations applied")
}
