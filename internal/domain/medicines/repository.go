package medicines

import (
	"context"
	"time"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	CreateMedicine(ctx context.Context, medicine *Medicine) error
	ListMedicines(ctx context.Context) ([]Medicine, error)
	GetMedicineByID(ctx context.Context, medicineID string) (*Medicine, error)
	GetMedicineByNameAndCategory(ctx context.Context, name, categoryID string) (*Medicine, error)
	UpdateQuantity(ctx context.Context, medicineID string, quantity int) error
	// ListExpiringBetween returns medicines with from <= expiry_date <= to.
	ListExpiringBetween(ctx context.Context, from, to time.Time) ([]Medicine, error)
	// ListExpiredBefore returns medicines with expiry_date < day that still
	// have stock.
	ListExpiredBefore(ctx context.Context, day time.Time) ([]Medicine, error)
}
