package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fixpoint/repairdesk/internal/core/domain"
	"github.com/fixpoint/repairdesk/internal/core/ports"
)

// CatalogService implements category and article CRUD.
type CatalogService struct {
	categories ports.CategoryRepository
	articles   ports.ArticleRepository
	logger     zerolog.Logger
}

func NewCatalogService(categories ports.CategoryRepository, articles ports.ArticleRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{categories: categories, articles: articles, logger: logger}
}

func (s *CatalogService) CreateCategory(ctx context.Context, in ports.CategoryInput) (*domain.Category, error) {
	now := time.Now().UTC()
	category := &domain.Category{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	s.logger.Info().Str("category_id", category.ID).Msg("category created")
	return category, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, in ports.CategoryInput) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = in.Name
	category.Description = in.Description
	category.UpdatedAt = time.Now().UTC()
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return err
	}
	return s.categories.Delete(ctx, id)
}

// CreateArticle checks the category reference before writing so a dangling
// foreign key surfaces as a field-level validation failure, not a 500.
func (s *CatalogService) CreateArticle(ctx context.Context, in ports.ArticleInput) (*domain.Article, error) {
	if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
		if err == domain.ErrCategoryNotFound {
			return nil, domain.NewValidationError("category_id", "the referenced category does not exist")
		}
		return nil, err
	}

	now := time.Now().UTC()
	article := &domain.Article{
		ID:          uuid.NewString(),
		CategoryID:  in.CategoryID,
		Title:       in.Title,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		ImagePath:   in.ImagePath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.articles.Create(ctx, article); err != nil {
		return nil, err
	}
	s.logger.Info().Str("article_id", article.ID).Str("category_id", article.CategoryID).Msg("article created")
	return article, nil
}

func (s *CatalogService) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	return s.articles.FindByID(ctx, id)
}

func (s *CatalogService) ListArticles(ctx context.Context, categoryID string) ([]domain.Article, error) {
	return s.articles.List(ctx, categoryID)
}

func (s *CatalogService) UpdateArticle(ctx context.Context, id string, in ports.ArticleInput) (*domain.Article, error) {
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.CategoryID != "" && in.CategoryID != article.CategoryID {
		if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
			if err == domain.ErrCategoryNotFound {
				return nil, domain.NewValidationError("category_id", "the referenced category does not exist")
			}
			return nil, err
		}
		article.CategoryID = in.CategoryID
	}
	article.Title = in.Title
	article.Description = in.Description
	article.PriceCents = in.PriceCents
	if in.ImagePath != "" {
		article.ImagePath = in.ImagePath
	}
	article.UpdatedAt = time.Now().UTC()
	if err := s.articles.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *CatalogService) DeleteArticle(ctx context.Context, id string) error {
	if _, err := s.articles.FindByID(ctx, id); err != nil {
		return err
	}
	return s.articles.Delete(ctx, id)
}
