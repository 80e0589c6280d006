package memory

import (
	"time"

	"hr-assistant-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// PolicyCache keeps per-organization policy lists for a short TTL. Policy
// documents change rarely, unlike employee data which is never cached.
type PolicyCache struct {
	cache *cache.Cache
}

func NewPolicyCache() *PolicyCache {
	// Default expiration 5 minutes, purge every 10.
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &PolicyCache{
		cache: c,
	}
}

func (pc *PolicyCache) Save(organizationId string, policies []*entity.Policy) {
	pc.cache.Set(organizationId, policies, cache.DefaultExpiration)
}

func (pc *PolicyCache) Get(organizationId string) ([]*entity.Policy, bool) {
	if x, found := pc.cache.Get(organizationId); found {
		return x.([]*entity.Policy), true
	}
	return nil, false
}

func (pc *PolicyCache) Invalidate(organizationId string) {
	pc.cache.Delete(organizationId)
}
