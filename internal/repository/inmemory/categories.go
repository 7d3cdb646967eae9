package inmemory

import (
	"sync"
	"time"

	categoriesdomain "medtrack-go/internal/domain/categories"
)

// CategoriesCache is a process-local TTL cache for the full category list.
type CategoriesCache struct {
	mu        sync.RWMutex
	value     []categoriesdomain.Category
	expiresAt time.Time
}

func NewCategoriesCache() *CategoriesCache {
	return &CategoriesCache{}
}

func (c *CategoriesCache) Get() ([]categoriesdomain.Category, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.value == nil || !c.expiresAt.After(time.Now()) {
		return nil, false
	}
	return cloneCategories(c.value), true
}

func (c *CategoriesCache) Set(categories []categoriesdomain.Category, ttl time.Duration) {
	if ttl <= 0 {
		c.Delete()
		return
	}

	c.mu.Lock()
	c.value = cloneCategories(categories)
	c.expiresAt = time.Now().Add(ttl)
	c.mu.Unlock()
}

func (c *CategoriesCache) Delete() {
	c.mu.Lock()
	c.value = nil
	c.expiresAt = time.Time{}
	c.mu.Unlock()
}

func cloneCategories(categories []categoriesdomain.Category) []categoriesdomain.Category {
	cloned := make([]categoriesdomain.Category, len(categories))
	copy(cloned, categories)
	return cloned
}
