package medicines

import (
	"context"
	"errors"
	"time"

	medicinesdomain "medtrack-go/internal/domain/medicines"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(medicinesdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) CreateMedicine(ctx context.Context, medicine *medicinesdomain.Medicine) error {
	return r.db.WithContext(ctx).Create(medicine).Error
}

func (r *PostgresRepository) ListMedicines(ctx context.Context) ([]medicinesdomain.Medicine, error) {
	var items []medicinesdomain.Medicine
	if err := r.db.WithContext(ctx).
		Order("expiry_date asc, created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) GetMedicineByID(ctx context.Context, medicineID string) (*medicinesdomain.Medicine, error) {
	var medicine medicinesdomain.Medicine
	if err := r.db.WithContext(ctx).
		Where("id = ?", medicineID).
		First(&medicine).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, medicinesdomain.ErrMedicineNotFound
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *PostgresRepository) GetMedicineByNameAndCategory(ctx context.Context, name, categoryID string) (*medicinesdomain.Medicine, error) {
	var medicine medicinesdomain.Medicine
	if err := r.db.WithContext(ctx).
		Where("lower(name) = lower(?) AND category_id = ?", name, categoryID).
		First(&medicine).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, medicinesdomain.ErrMedicineNotFound
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *PostgresRepository) UpdateQuantity(ctx context.Context, medicineID string, quantity int) error {
	return r.db.WithContext(ctx).
		Model(&medicinesdomain.Medicine{}).
		Where("id = ?", medicineID).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *PostgresRepository) ListExpiringBetween(ctx context.Context, from, to time.Time) ([]medicinesdomain.Medicine, error) {
	var items []medicinesdomain.Medicine
	if err := r.db.WithContext(ctx).
		Where("expiry_date >= ? AND expiry_date <= ?", from, to).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) ListExpiredBefore(ctx context.Context, day time.Time) ([]medicinesdomain.Medicine, error) {
	var items []medicinesdomain.Medicine
	if err := r.db.WithContext(ctx).
		Where("expiry_date < ? AND quantity > 0", day).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
