package reports

import (
	"context"
	"time"

	categoriesdomain "medtrack-go/internal/domain/categories"
	medicinesdomain "medtrack-go/internal/domain/medicines"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CountMedicines(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&medicinesdomain.Medicine{}).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&categoriesdomain.Category{}).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountExpiringBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&medicinesdomain.Medicine{}).
		Where("expiry_date >= ? AND expiry_date <= ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) CountExpiredBefore(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&medicinesdomain.Medicine{}).
		Where("expiry_date < ?", day).
		Count(&count).Error
	return count, err
}
