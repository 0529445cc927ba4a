package ports

import (
	"context"

	"github.com/fixpoint/repairdesk/internal/core/domain"
)

type CategoryInput struct {
	Name        string
	Description string
}

type ArticleInput struct {
	CategoryID  string
	Title       string
	Description string
	PriceCents  int64
	ImagePath   string
}

type CatalogService interface {
	CreateCategory(ctx context.Context, in CategoryInput) (*domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, id string, in CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateArticle(ctx context.Context, in ArticleInput) (*domain.Article, error)
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	ListArticles(ctx context.Context, categoryID string) ([]domain.Article, error)
	UpdateArticle(ctx context.Context, id string, in ArticleInput) (*domain.Article, error)
	DeleteArticle(ctx context.Context, id string) error
}
