package cache

import (
	"sync"
	"time"

	"github.com/tiffin-sathi/checkout-service/internal/models"
)

// PackageCache holds the last catalog snapshot that came back from a live
// fetch, so the service keeps serving real data across transient upstream
// outages.
type PackageCache struct {
	mu        sync.RWMutex
	packages  []models.MealPackage
	fetchedAt time.Time
}

func NewPackageCache() *PackageCache {
	return &PackageCache{}
}

// Get returns a copy of the cached snapshot and whether one exists.
func (c *PackageCache) Get() ([]models.MealPackage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.packages == nil {
		return nil, false
	}
	out := make([]models.MealPackage, len(c.packages))
	copy(out, c.packages)
	return out, true
}

// Set replaces the snapshot.
func (c *PackageCache) Set(packages []models.MealPackage) {
	snapshot := make([]models.MealPackage, len(packages))
	copy(snapshot, packages)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.packages = snapshot
	c.fetchedAt = time.Now()
}

// FetchedAt reports when the snapshot was taken; zero when empty.
func (c *PackageCache) FetchedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fetchedAt
}
