package category

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/georgemunganga/storefront-api/internal/platform/resource"
)

// Service defines category business logic.
type Service interface {
	ListCategories(ctx context.Context) ([]*CategoryDTO, error)
	GetCategory(ctx context.Context, id int64) (*CategoryDTO, error)
	CreateCategory(ctx context.Context, dto CategoryDTO) (*CategoryDTO, error)
	ReplaceCategory(ctx context.Context, id int64, dto CategoryDTO) (*CategoryDTO, error)
	PatchCategory(ctx context.Context, id int64, patch CategoryPatch) (*CategoryDTO, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type service struct {
	repo   Repository
	logger *log.Entry
}

func NewService(repo Repository, logger *log.Entry) Service {
	return &service{repo: repo, logger: logger.WithField("component", "category")}
}

func (s *service) ListCategories(ctx context.Context) ([]*CategoryDTO, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	result := make([]*CategoryDTO, 0, len(categories))
	for _, c := range categories {
		result = append(result, toResponse(c))
	}
	return result, nil
}

func (s *service) GetCategory(ctx context.Context, id int64) (*CategoryDTO, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	return toResponse(c), nil
}

func (s *service) CreateCategory(ctx context.Context, dto CategoryDTO) (*CategoryDTO, error) {
	c := ToEntity(dto)
	c.ID = 0
	return s.save(ctx, &c)
}

func (s *service) ReplaceCategory(ctx context.Context, id int64, dto CategoryDTO) (*CategoryDTO, error) {
	c := ToEntity(dto)
	c.ID = id
	return s.save(ctx, &c)
}

func (s *service) PatchCategory(ctx context.Context, id int64, patch CategoryPatch) (*CategoryDTO, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("patch category %d: %w", id, err)
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	return s.save(ctx, c)
}

func (s *service) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	s.logger.WithField("category_id", id).Debug("category deleted")
	return nil
}

func (s *service) save(ctx context.Context, c *Category) (*CategoryDTO, error) {
	saved, err := s.repo.Save(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("save category: %w", err)
	}
	s.logger.WithField("category_id", saved.ID).Debug("category saved")
	return toResponse(saved), nil
}

func toResponse(c *Category) *CategoryDTO {
	dto := ToDTO(*c)
	dto.CategoryURL = resource.URL(BaseURL, c.ID)
	return &dto
}
