package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/drivelog/drivelog-api/internal/models"
)

func TestWorkPatternCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewWorkPatternCacheRepository(rdb, 2*time.Second)

	library := []models.WorkPatternDB{
		{ID: 1, Title: "Oil change", IntervalMonth: 12, IntervalKM: 15000},
		{ID: 2, Title: "Brake pads", IntervalMonth: 24, IntervalKM: 40000},
	}

	t.Run("MissReturnsNil", func(t *testing.T) {
		patterns, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Nil(t, patterns)
	})

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, library))

		patterns, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Equal(t, library, patterns)
	})

	t.Run("Invalidate", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, library))
		require.NoError(t, repo.Invalidate(ctx))

		patterns, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Nil(t, patterns)
	})

	t.Run("Expires", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, library))
		time.Sleep(3 * time.Second)

		patterns, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Nil(t, patterns)
	})

	t.Run("CorruptEntry", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, "work_patterns:all", "not json", 0).Err())

		patterns, err := repo.Get(ctx)
		assert.Error(t, err)
		assert.Nil(t, patterns)
	})
}
