package reports

import (
	"context"
	"time"
)

type Repository interface {
	CountMedicines(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
	// CountExpiringBetween counts medicines with from <= expiry_date <= to.
	CountExpiringBetween(ctx context.Context, from, to time.Time) (int64, error)
	// CountExpiredBefore counts medicines with expiry_date < day.
	CountExpiredBefore(ctx context.Context, day time.Time) (int64, error)
}
