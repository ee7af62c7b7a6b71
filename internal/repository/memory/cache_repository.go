package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// CacheRepository is a small TTL cache for read-mostly lists such as
// active ads and the approved lawyer directory.
type CacheRepository[T any] struct {
	cache *cache.Cache
}

func NewCacheRepository[T any](ttl, cleanup time.Duration) *CacheRepository[T] {
	return &CacheRepository[T]{
		cache: cache.New(ttl, cleanup),
	}
}

func (r *CacheRepository[T]) Save(key string, value T) {
	r.cache.Set(key, value, cache.DefaultExpiration)
}

func (r *CacheRepository[T]) Get(key string) (T, bool) {
	if x, found := r.cache.Get(key); found {
		if v, ok := x.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (r *CacheRepository[T]) Delete(key string) {
	r.cache.Delete(key)
}

// Flush drops every entry. Used after writes that invalidate a whole listing.
func (r *CacheRepository[T]) Flush() {
	r.cache.Flush()
}
