// Package bootstrap loads the demo data set into empty stores at startup.
package bootstrap

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/georgemunganga/storefront-api/internal/modules/category"
	"github.com/georgemunganga/storefront-api/internal/modules/customer"
	"github.com/georgemunganga/storefront-api/internal/modules/vendor"
	"github.com/georgemunganga/storefront-api/internal/storage"
)

// Loader seeds each store once. Stores that already hold rows are skipped.
type Loader struct {
	categories category.Repository
	customers  customer.Repository
	vendors    vendor.Repository
	logger     *log.Entry
}

func NewLoader(categories category.Repository, customers customer.Repository, vendors vendor.Repository, logger *log.Entry) *Loader {
	return &Loader{
		categories: categories,
		customers:  customers,
		vendors:    vendors,
		logger:     logger.WithField("component", "bootstrap"),
	}
}

func (l *Loader) Run(ctx context.Context) error {
	if err := seed(ctx, l.logger, "categories", l.categories, []*category.Category{
		{Name: "Fruits"},
		{Name: "Dried"},
		{Name: "Fresh"},
		{Name: "Exotic"},
		{Name: "Nuts"},
	}); err != nil {
		return err
	}
	if err := seed(ctx, l.logger, "customers", l.customers, []*customer.Customer{
		{FirstName: "Joe", LastName: "Dirt"},
		{FirstName: "Ann", LastName: "Other"},
		{FirstName: "Bob", LastName: "Marley"},
		{FirstName: "Sid", LastName: "Vicious"},
	}); err != nil {
		return err
	}
	return seed(ctx, l.logger, "vendors", l.vendors, []*vendor.Vendor{
		{Name: "Western Tasty Fruits Ltd."},
		{Name: "Exotic Fruits Company"},
	})
}

func seed[T storage.Entity](ctx context.Context, logger *log.Entry, name string, repo storage.Repository[T], rows []T) error {
	existing, err := repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("seed %s: %w", name, err)
	}
	if len(existing) > 0 {
		logger.WithField("count", len(existing)).Debugf("%s already loaded", name)
		return nil
	}

	for _, row := range rows {
		if _, err := repo.Save(ctx, row); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
	}

	loaded, err := repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("seed %s: %w", name, err)
	}
	logger.WithField("count", len(loaded)).Infof("%s data loaded", name)
	return nil
}
