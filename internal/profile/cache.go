package profile

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/metrics"
)

type cachedProfileEntry struct {
	Version  string
	Profile  *domain.Profile
	CachedAt time.Time
}

// profileCache holds committed profiles. Entries go in and come out as deep
// copies, so nothing outside the cache can alter a cached record.
type profileCache struct {
	lru *expirable.LRU[string, *cachedProfileEntry]
}

func newProfileCache(size int, ttl time.Duration) *profileCache {
	if size < 1 {
		size = 1
	}
	return &profileCache{
		lru: expirable.NewLRU[string, *cachedProfileEntry](size, nil, ttl),
	}
}

// Get returns a copy of the cached profile. Entries written under another
// schema version are dropped.
func (c *profileCache) Get(profileID string) (*domain.Profile, bool) {
	entry, found := c.lru.Get(profileID)
	if found && entry.Version != CacheSchemaVersion {
		c.lru.Remove(profileID)
		found = false
	}
	if !found {
		metrics.ProfileCacheLookups.WithLabelValues(metrics.CacheResultMiss).Inc()
		return nil, false
	}
	metrics.ProfileCacheLookups.WithLabelValues(metrics.CacheResultHit).Inc()
	return entry.Profile.Clone(), true
}

func (c *profileCache) Set(p *domain.Profile) {
	c.lru.Add(p.ID, &cachedProfileEntry{
		Version:  CacheSchemaVersion,
		Profile:  p.Clone(),
		CachedAt: time.Now(),
	})
}

func (c *profileCache) Invalidate(profileID string) {
	c.lru.Remove(profileID)
}

func (c *profileCache) Len() int {
	return c.lru.Len()
}
