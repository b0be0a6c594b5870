package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumCacheKey(t *testing.T) {
	assert.Equal(t, "transaction_sum:12342:5", sumCacheKey(12342, 5))
	assert.NotEqual(t, sumCacheKey(1, 1), sumCacheKey(1, 2))
}

func TestSumCacheRepository_Unreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	repo := NewSumCacheRepository(rdb, time.Minute)
	ctx := context.Background()

	_, err := repo.GetSum(ctx, 1, 1)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSumCacheMiss))

	assert.Error(t, repo.SetSum(ctx, 1, 1, 10))
}
