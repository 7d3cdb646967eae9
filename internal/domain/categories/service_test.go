package categories

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"
)

type fakeCategoriesRepo struct {
	items map[string]*Category
}

func newFakeCategoriesRepo() *fakeCategoriesRepo {
	return &fakeCategoriesRepo{items: make(map[string]*Category)}
}

func (r *fakeCategoriesRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeCategoriesRepo) CreateCategory(ctx context.Context, category *Category) error {
	r.items[category.ID] = category
	return nil
}

func (r *fakeCategoriesRepo) ListCategories(ctx context.Context) ([]Category, error) {
	result := make([]Category, 0, len(r.items))
	for _, category := range r.items {
		result = append(result, *category)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (r *fakeCategoriesRepo) GetCategoryByName(ctx context.Context, name string) (*Category, error) {
	for _, category := range r.items {
		if strings.EqualFold(category.Name, name) {
			return category, nil
		}
	}
	return nil, ErrCategoryNotFound
}

func (r *fakeCategoriesRepo) GetCategoryByID(ctx context.Context, categoryID string) (*Category, error) {
	category, ok := r.items[categoryID]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

type countingCache struct {
	value   []Category
	sets    int
	deletes int
}

func (c *countingCache) Get() ([]Category, bool) {
	if c.value == nil {
		return nil, false
	}
	return c.value, true
}

func (c *countingCache) Set(categories []Category, _ time.Duration) {
	c.value = categories
	c.sets++
}

func (c *countingCache) Delete() {
	c.value = nil
	c.deletes++
}

func TestAddCategoryIdempotent(t *testing.T) {
	repo := newFakeCategoriesRepo()
	svc := NewService(repo)

	first, err := svc.AddCategory(context.Background(), "Painkillers")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	second, err := svc.AddCategory(context.Background(), "Painkillers")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected same category id, got %q and %q", first.ID, second.ID)
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected exactly one row, got %d", len(repo.items))
	}
}

func TestAddCategoryMatchesCaseInsensitively(t *testing.T) {
	repo := newFakeCategoriesRepo()
	svc := NewService(repo)

	first, err := svc.AddCategory(context.Background(), "Antibiotics")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	second, err := svc.AddCategory(context.Background(), "antibiotics")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected case-insensitive match, got %q and %q", first.ID, second.ID)
	}
}

func TestAddCategoryTrimsName(t *testing.T) {
	repo := newFakeCategoriesRepo()
	svc := NewService(repo)

	category, err := svc.AddCategory(context.Background(), "  Vitamins  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if category.Name != "Vitamins" {
		t.Fatalf("expected trimmed name, got %q", category.Name)
	}
}

func TestAddCategoryEmptyName(t *testing.T) {
	svc := NewService(newFakeCategoriesRepo())

	if _, err := svc.AddCategory(context.Background(), "   "); err == nil {
		t.Fatalf("expected validation error for empty name")
	}
}

type commitTrackingRepo struct {
	*fakeCategoriesRepo
	cache       *countingCache
	deletesInTx int
}

func (r *commitTrackingRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	err := fn(r.fakeCategoriesRepo)
	r.deletesInTx = r.cache.deletes
	return err
}

type failingCreateRepo struct {
	*fakeCategoriesRepo
}

func (r *failingCreateRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *failingCreateRepo) CreateCategory(ctx context.Context, category *Category) error {
	return errors.New("insert failed")
}

func TestAddCategoryInvalidatesCacheAfterCommit(t *testing.T) {
	cache := &countingCache{}
	repo := &commitTrackingRepo{fakeCategoriesRepo: newFakeCategoriesRepo(), cache: cache}
	svc := NewServiceWithCache(repo, cache, time.Minute)

	if _, err := svc.AddCategory(context.Background(), "Painkillers"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if repo.deletesInTx != 0 {
		t.Fatalf("expected no cache invalidation before commit, got %d", repo.deletesInTx)
	}
	if cache.deletes != 1 {
		t.Fatalf("expected cache invalidation after commit, got %d", cache.deletes)
	}
}

func TestAddCategoryKeepsCacheOnFailedCreate(t *testing.T) {
	cache := &countingCache{}
	repo := &failingCreateRepo{fakeCategoriesRepo: newFakeCategoriesRepo()}
	svc := NewServiceWithCache(repo, cache, time.Minute)

	if _, err := svc.AddCategory(context.Background(), "Painkillers"); err == nil {
		t.Fatalf("expected create error")
	}
	if cache.deletes != 0 {
		t.Fatalf("expected cache untouched on failure, got %d deletes", cache.deletes)
	}
}

func TestListCategoriesUsesCache(t *testing.T) {
	repo := newFakeCategoriesRepo()
	cache := &countingCache{}
	svc := NewServiceWithCache(repo, cache, time.Minute)

	if _, err := svc.AddCategory(context.Background(), "Painkillers"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cache.deletes != 1 {
		t.Fatalf("expected cache invalidation on create, got %d deletes", cache.deletes)
	}

	if _, err := svc.ListCategories(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected cache fill on miss, got %d sets", cache.sets)
	}

	repo.items = map[string]*Category{}
	items, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected cached result, got %d items", len(items))
	}
}
