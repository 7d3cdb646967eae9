package categories

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	CreateCategory(ctx context.Context, category *Category) error
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryByName(ctx context.Context, name string) (*Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*Category, error)
}
