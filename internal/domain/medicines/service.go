package medicines

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	alertsdomain "medtrack-go/internal/domain/alerts"
	categoriesdomain "medtrack-go/internal/domain/categories"
)

// CategoriesService is the slice of the categories domain this service
// needs to check that a referenced category exists.
type CategoriesService interface {
	GetCategory(ctx context.Context, categoryID string) (*categoriesdomain.Category, error)
}

type Service struct {
	repo       Repository
	alerts     alertsdomain.Repository
	categories CategoriesService
	policy     AlertPolicy
	now        func() time.Time
}

func NewService(repo Repository, alerts alertsdomain.Repository, categories CategoriesService) *Service {
	return NewServiceWithPolicy(repo, alerts, categories, DefaultAlertPolicy())
}

func NewServiceWithPolicy(repo Repository, alerts alertsdomain.Repository, categories CategoriesService, policy AlertPolicy) *Service {
	if policy.LeadDays <= 0 {
		policy.LeadDays = DefaultAlertLeadDays
	}
	return &Service{
		repo:       repo,
		alerts:     alerts,
		categories: categories,
		policy:     policy,
		now:        time.Now,
	}
}

// AddMedicine adds stock under a category. A medicine that already exists
// under the same (name, category) pair gets its quantity incremented instead
// of a duplicate row; the expiry date of the existing row is kept as is.
// Every successful call schedules an alert dated LeadDays before the expiry
// date passed in, unless the policy reuses an existing pending alert on merge.
func (s *Service) AddMedicine(ctx context.Context, input AddMedicineInput) (*Medicine, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if input.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	if input.ExpiryDate.IsZero() {
		return nil, fmt.Errorf("expiry date is required")
	}
	if _, err := s.categories.GetCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	var (
		result Medicine
		merged bool
	)
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		existing, err := tx.GetMedicineByNameAndCategory(ctx, name, input.CategoryID)
		if err == nil {
			newQuantity := existing.Quantity + input.Quantity
			if err := tx.UpdateQuantity(ctx, existing.ID, newQuantity); err != nil {
				return err
			}
			refreshed, err := tx.GetMedicineByID(ctx, existing.ID)
			if err != nil {
				return err
			}
			result = *refreshed
			merged = true
			return nil
		}
		if !errors.Is(err, ErrMedicineNotFound) {
			return err
		}

		medicine := Medicine{
			ID:         uuid.NewString(),
			Name:       name,
			ExpiryDate: DateOnly(input.ExpiryDate),
			CategoryID: input.CategoryID,
			Quantity:   input.Quantity,
		}
		if err := tx.CreateMedicine(ctx, &medicine); err != nil {
			return err
		}
		result = medicine
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.scheduleAlert(ctx, result.ID, input.ExpiryDate, merged); err != nil {
		return nil, err
	}

	return &result, nil
}

// scheduleAlert dates the alert from the expiry the caller supplied, not from
// the stored row: a merge keeps the row's expiry, but the alert tracks the
// batch that was just added.
func (s *Service) scheduleAlert(ctx context.Context, medicineID string, expiryDate time.Time, merged bool) error {
	if merged && s.policy.ReuseOnMerge {
		pending, err := s.alerts.CountPendingByMedicine(ctx, medicineID)
		if err != nil {
			return err
		}
		if pending > 0 {
			return nil
		}
	}

	alert := alertsdomain.Alert{
		ID:         uuid.NewString(),
		MedicineID: medicineID,
		AlertDate:  DateOnly(expiryDate).AddDate(0, 0, -s.policy.LeadDays),
		Status:     alertsdomain.StatusPending,
	}
	return s.alerts.CreateAlert(ctx, &alert)
}

func (s *Service) ListMedicines(ctx context.Context) ([]Medicine, error) {
	return s.repo.ListMedicines(ctx)
}

func (s *Service) GetMedicine(ctx context.Context, medicineID string) (*Medicine, error) {
	return s.repo.GetMedicineByID(ctx, medicineID)
}

// DueAlerts returns pending alerts whose alert date has been reached. This
// is a different predicate from the Expiring Soon classification: an alert
// becomes due LeadDays before expiry, while classification works off the
// expiry date itself.
func (s *Service) DueAlerts(ctx context.Context) ([]alertsdomain.Alert, error) {
	today := DateOnly(s.now())
	return s.alerts.ListPending(ctx, &today)
}

// PendingAlerts returns every pending alert regardless of due date.
func (s *Service) PendingAlerts(ctx context.Context) ([]alertsdomain.Alert, error) {
	return s.alerts.ListPending(ctx, nil)
}

// ExpiringWithin returns medicines whose expiry date falls inside
// [today, today+days]. Zero or negative days falls back to the
// classification window.
func (s *Service) ExpiringWithin(ctx context.Context, days int) ([]Medicine, error) {
	if days <= 0 {
		days = ExpiringSoonWindowDays
	}
	today := DateOnly(s.now())
	return s.repo.ListExpiringBetween(ctx, today, today.AddDate(0, 0, days))
}

func (s *Service) MarkAlertSent(ctx context.Context, alertID string) error {
	updated, err := s.alerts.UpdateStatus(ctx, alertID, alertsdomain.StatusSent)
	if err != nil {
		return err
	}
	if !updated {
		return alertsdomain.ErrAlertNotFound
	}
	return nil
}

// DeleteExpired soft-deletes every medicine that expired before today by
// setting its quantity to zero. Rows and their alerts stay in place; the
// zeroed medicines are returned.
func (s *Service) DeleteExpired(ctx context.Context) ([]Medicine, error) {
	today := DateOnly(s.now())

	var cleared []Medicine
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		expired, err := tx.ListExpiredBefore(ctx, today)
		if err != nil {
			return err
		}

		cleared = make([]Medicine, 0, len(expired))
		for _, medicine := range expired {
			if err := tx.UpdateQuantity(ctx, medicine.ID, 0); err != nil {
				return err
			}
			medicine.Quantity = 0
			cleared = append(cleared, medicine)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cleared, nil
}
