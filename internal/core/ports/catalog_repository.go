package ports

import (
	"context"

	"github.com/fixpoint/repairdesk/internal/core/domain"
)

// CategoryRepository persists catalog categories. Deletes are soft.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}

// ArticleRepository persists catalog articles. Deletes are soft.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	List(ctx context.Context, categoryID string) ([]domain.Article, error)
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id string) error
}
