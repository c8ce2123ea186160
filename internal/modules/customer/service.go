package customer

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/georgemunganga/storefront-api/internal/platform/resource"
)

// Service defines customer business logic.
type Service interface {
	ListCustomers(ctx context.Context) ([]*CustomerDTO, error)
	GetCustomer(ctx context.Context, id int64) (*CustomerDTO, error)
	CreateCustomer(ctx context.Context, dto CustomerDTO) (*CustomerDTO, error)
	ReplaceCustomer(ctx context.Context, id int64, dto CustomerDTO) (*CustomerDTO, error)
	PatchCustomer(ctx context.Context, id int64, patch CustomerPatch) (*CustomerDTO, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

type service struct {
	repo   Repository
	logger *log.Entry
}

func NewService(repo Repository, logger *log.Entry) Service {
	return &service{repo: repo, logger: logger.WithField("component", "customer")}
}

func (s *service) ListCustomers(ctx context.Context) ([]*CustomerDTO, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	result := make([]*CustomerDTO, 0, len(customers))
	for _, c := range customers {
		result = append(result, toResponse(c))
	}
	return result, nil
}

func (s *service) GetCustomer(ctx context.Context, id int64) (*CustomerDTO, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	return toResponse(c), nil
}

func (s *service) CreateCustomer(ctx context.Context, dto CustomerDTO) (*CustomerDTO, error) {
	c := ToEntity(dto)
	c.ID = 0
	return s.save(ctx, &c)
}

func (s *service) ReplaceCustomer(ctx context.Context, id int64, dto CustomerDTO) (*CustomerDTO, error) {
	c := ToEntity(dto)
	c.ID = id
	return s.save(ctx, &c)
}

func (s *service) PatchCustomer(ctx context.Context, id int64, patch CustomerPatch) (*CustomerDTO, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("patch customer %d: %w", id, err)
	}
	if patch.FirstName != nil {
		c.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		c.LastName = *patch.LastName
	}
	return s.save(ctx, c)
}

func (s *service) DeleteCustomer(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete customer %d: %w", id, err)
	}
	s.logger.WithField("customer_id", id).Debug("customer deleted")
	return nil
}

func (s *service) save(ctx context.Context, c *Customer) (*CustomerDTO, error) {
	saved, err := s.repo.Save(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}
	s.logger.WithField("customer_id", saved.ID).Debug("customer saved")
	return toResponse(saved), nil
}

func toResponse(c *Customer) *CustomerDTO {
	dto := ToDTO(*c)
	dto.CustomerURL = resource.URL(BaseURL, c.ID)
	return &dto
}
