package alerts

import (
	"context"
	"time"
)

type Repository interface {
	CreateAlert(ctx context.Context, alert *Alert) error
	// ListPending returns pending alerts, optionally only those whose
	// alert_date is on or before dueBy (nil means no date filter).
	ListPending(ctx context.Context, dueBy *time.Time) ([]Alert, error)
	CountPendingByMedicine(ctx context.Context, medicineID string) (int64, error)
	// UpdateStatus reports whether a row was updated so callers can map
	// zero rows to ErrAlertNotFound. No transition validation happens
	// here; the status vocabulary is the caller's concern.
	UpdateStatus(ctx context.Context, alertID, status string) (bool, error)
}
