package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/identityservice/identity-service/internal/api/metrics"
	"github.com/identityservice/identity-service/internal/core/domain"
)

const (
	roleCacheKey = "identity:roles:all"
	roleCacheTTL = 5 * time.Minute
)

// RoleCache caches the full role list in Redis. It is strictly best
// effort: a backend error is reported as a miss and reads fall through to
// the repository.
type RoleCache struct {
	client *redis.Client
}

// NewRoleCache creates a RoleCache wrapping the given Redis client.
func NewRoleCache(client *redis.Client) *RoleCache {
	return &RoleCache{client: client}
}

func (c *RoleCache) Get(ctx context.Context) ([]domain.Role, bool) {
	raw, err := c.client.Get(ctx, roleCacheKey).Bytes()
	if err != nil {
		metrics.RoleCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var roles []domain.Role
	if err := json.Unmarshal(raw, &roles); err != nil {
		metrics.RoleCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.RoleCacheTotal.WithLabelValues("hit").Inc()
	return roles, true
}

func (c *RoleCache) Set(ctx context.Context, roles []domain.Role) error {
	raw, err := json.Marshal(roles)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, roleCacheKey, raw, roleCacheTTL).Err()
}

func (c *RoleCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, roleCacheKey).Err()
}
