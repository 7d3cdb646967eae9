package categories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo     Repository
	cache    Cache
	cacheTTL time.Duration
}

func NewService(repo Repository) *Service {
	return NewServiceWithCache(repo, NoopCache(), 0)
}

func NewServiceWithCache(repo Repository, cache Cache, cacheTTL time.Duration) *Service {
	if cache == nil {
		cache = NoopCache()
	}
	return &Service{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

// AddCategory finds or creates a category by name. Repeated calls with the
// same name return the existing row unchanged; the unique index on the
// store side backs this up against concurrent writers.
func (s *Service) AddCategory(ctx context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	var (
		result  Category
		created bool
	)
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		existing, err := tx.GetCategoryByName(ctx, name)
		if err == nil {
			result = *existing
			return nil
		}
		if !errors.Is(err, ErrCategoryNotFound) {
			return err
		}

		category := Category{
			ID:   uuid.NewString(),
			Name: name,
		}
		if err := tx.CreateCategory(ctx, &category); err != nil {
			return err
		}

		result = category
		created = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Invalidate only after commit; a concurrent list between an in-tx
	// delete and the commit would re-fill the cache with the stale set.
	if created {
		s.cache.Delete()
	}

	return &result, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	if cached, ok := s.cache.Get(); ok {
		return cached, nil
	}

	items, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(items, s.cacheTTL)
	return items, nil
}

func (s *Service) GetCategory(ctx context.Context, categoryID string) (*Category, error) {
	return s.repo.GetCategoryByID(ctx, categoryID)
}
