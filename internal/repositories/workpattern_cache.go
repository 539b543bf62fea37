package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/drivelog/drivelog-api/internal/logger"
	"github.com/drivelog/drivelog-api/internal/models"
)

const workPatternCacheKey = "work_patterns:all"

// WorkPatternCacheRepository caches the pattern library in Redis. The
// library is read on every vehicle creation for work seeding, and
// changes rarely.
type WorkPatternCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached library
}

// NewWorkPatternCacheRepository creates a new repository instance with the given TTL
func NewWorkPatternCacheRepository(client *redis.Client, expiration time.Duration) *WorkPatternCacheRepository {
	return &WorkPatternCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached pattern library, or nil on a cache miss.
func (r *WorkPatternCacheRepository) Get(ctx context.Context) ([]models.WorkPatternDB, error) {
	val, err := r.client.Get(ctx, workPatternCacheKey).Result()
	if err != nil {
		logger.Log.Infow("cache get",
			"key", workPatternCacheKey,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var patterns []models.WorkPatternDB
	if err := json.Unmarshal([]byte(val), &patterns); err != nil {
		logger.Log.Errorw("cache get: corrupt entry",
			"key", workPatternCacheKey,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("cache get",
		"key", workPatternCacheKey,
		"result", len(patterns),
	)
	return patterns, nil
}

// Set caches the pattern library with the configured expiration.
func (r *WorkPatternCacheRepository) Set(ctx context.Context, patterns []models.WorkPatternDB) error {
	data, err := json.Marshal(patterns)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, workPatternCacheKey, data, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", workPatternCacheKey,
		"result", len(patterns),
		"error", err,
	)
	return err
}

// Invalidate drops the cached library. Called after every pattern
// write so the next vehicle creation snapshots fresh data.
func (r *WorkPatternCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, workPatternCacheKey).Err()

	logger.Log.Infow("cache invalidate",
		"key", workPatternCacheKey,
		"error", err,
	)
	return err
}
