package alerts

import (
	"context"
	"time"

	alertsdomain "medtrack-go/internal/domain/alerts"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateAlert(ctx context.Context, alert *alertsdomain.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *PostgresRepository) ListPending(ctx context.Context, dueBy *time.Time) ([]alertsdomain.Alert, error) {
	query := r.db.WithContext(ctx).
		Where("status = ?", alertsdomain.StatusPending)
	if dueBy != nil {
		query = query.Where("alert_date <= ?", *dueBy)
	}

	var items []alertsdomain.Alert
	if err := query.Order("alert_date asc, created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) CountPendingByMedicine(ctx context.Context, medicineID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&alertsdomain.Alert{}).
		Where("medicine_id = ? AND status = ?", medicineID, alertsdomain.StatusPending).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, alertID, status string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&alertsdomain.Alert{}).
		Where("id = ?", alertID).
		Update("status", status)
	return result.RowsAffected > 0, result.Error
}
