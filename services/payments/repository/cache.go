package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stratodeck/copytrade/internal/pkg/database"
	"github.com/stratodeck/copytrade/internal/pkg/logger"
	"github.com/stratodeck/copytrade/internal/pkg/models"
	"github.com/stratodeck/copytrade/services/payments"
)

const pendingPaymentsKey = "payments:pending"

// pendingCache caches the hydrated pending review queue in Redis between
// admin polls. All failures degrade to cache misses.
type pendingCache struct {
	redis *database.RedisClient
	ttl   time.Duration
}

// NewPendingCache creates a Redis-backed pending payments cache. A nil
// client yields a cache that always misses.
func NewPendingCache(redis *database.RedisClient, cfg *models.Config) payments.PendingCache {
	ttl := time.Duration(cfg.Payments.PendingCacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &pendingCache{
		redis: redis,
		ttl:   ttl,
	}
}

func (c *pendingCache) Get(ctx context.Context) ([]models.PendingPayment, bool) {
	if c.redis == nil {
		return nil, false
	}
	raw, err := c.redis.Get(ctx, pendingPaymentsKey)
	if err != nil {
		return nil, false
	}
	var items []models.PendingPayment
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Warn("discarding corrupt pending payments cache entry", logger.Err(err))
		return nil, false
	}
	return items, true
}

func (c *pendingCache) Set(ctx context.Context, items []models.PendingPayment) {
	if c.redis == nil {
		return
	}
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, pendingPaymentsKey, data, c.ttl); err != nil {
		logger.Warn("failed to cache pending payments", logger.Err(err))
	}
}

func (c *pendingCache) Invalidate(ctx context.Context) {
	if c.redis == nil {
		return
	}
	if err := c.redis.Delete(ctx, pendingPaymentsKey); err != nil {
		logger.Warn("failed to invalidate pending payments cache", logger.Err(err))
	}
}
