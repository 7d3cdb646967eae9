package categories

import "time"

type Cache interface {
	Get() ([]Category, bool)
	Set(categories []Category, ttl time.Duration)
	Delete()
}

type noopCache struct{}

func (noopCache) Get() ([]Category, bool) { return nil, false }

func (noopCache) Set([]Category, time.Duration) {}

func (noopCache) Delete() {}

func NoopCache() Cache { return noopCache{} }
