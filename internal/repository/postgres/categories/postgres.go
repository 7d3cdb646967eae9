package categories

import (
	"context"
	"errors"

	categoriesdomain "medtrack-go/internal/domain/categories"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(categoriesdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *categoriesdomain.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]categoriesdomain.Category, error) {
	var items []categoriesdomain.Category
	if err := r.db.WithContext(ctx).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetCategoryByName(ctx context.Context, name string) (*categoriesdomain.Category, error) {
	var category categoriesdomain.Category
	if err := r.db.WithContext(ctx).
		Where("lower(name) = lower(?)", name).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, categoriesdomain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *PostgresRepository) GetCategoryByID(ctx context.Context, categoryID string) (*categoriesdomain.Category, error) {
	var category categoriesdomain.Category
	if err := r.db.WithContext(ctx).
		Where("id = ?", categoryID).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, categoriesdomain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}
