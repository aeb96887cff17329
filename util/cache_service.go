// util/cache_service.go

package util

import (
	"context"

	"github.com/staffledger/api/db"
	"github.com/staffledger/api/model"
)

// CacheService fronts the Redis employee cache. A CacheService built with a
// nil store is disabled: reads miss and writes are no-ops.
type CacheService struct {
	store *db.RedisCache
}

func NewCacheService(store *db.RedisCache) *CacheService {
	return &CacheService{store: store}
}

func (c *CacheService) Enabled() bool {
	return c != nil && c.store != nil
}

func (c *CacheService) GetEmployee(ctx context.Context, employeeID int64) (*model.Employee, error) {
	if !c.Enabled() {
		return nil, nil
	}
	return c.store.GetCachedEmployee(ctx, employeeID)
}

func (c *CacheService) SetEmployee(ctx context.Context, employee model.Employee) error {
	if !c.Enabled() {
		return nil
	}
	return c.store.CacheEmployee(ctx, &employee)
}

func (c *CacheService) DeleteEmployee(ctx context.Context, employeeID int64) error {
	if !c.Enabled() {
		return nil
	}
	return c.store.DeleteCachedEmployee(ctx, employeeID)
}
