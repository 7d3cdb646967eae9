package reports

import (
	"context"
	"time"

	medicinesdomain "medtrack-go/internal/domain/medicines"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Summary aggregates the dashboard counters. Expiring-soon and expired use
// the same day windows as the expiry classification.
func (s *Service) Summary(ctx context.Context) (StockSummary, error) {
	today := medicinesdomain.DateOnly(s.now())

	var summary StockSummary
	var err error

	if summary.TotalMedicines, err = s.repo.CountMedicines(ctx); err != nil {
		return StockSummary{}, err
	}
	if summary.TotalCategories, err = s.repo.CountCategories(ctx); err != nil {
		return StockSummary{}, err
	}
	soonUntil := today.AddDate(0, 0, medicinesdomain.ExpiringSoonWindowDays)
	if summary.ExpiringSoon, err = s.repo.CountExpiringBetween(ctx, today, soonUntil); err != nil {
		return StockSummary{}, err
	}
	if summary.Expired, err = s.repo.CountExpiredBefore(ctx, today); err != nil {
		return StockSummary{}, err
	}

	return summary, nil
}
