package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/transaction-service/internal/logger"
)

// ErrSumCacheMiss is returned when no sum is cached for the requested key.
var ErrSumCacheMiss = errors.New("subtree sum not found in cache")

// SumCacheRepository caches subtree sums in Redis. Keys carry the ledger version the
// sum was computed at; entries of older versions are never read again and expire.
type SumCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewSumCacheRepository creates a cache with the given TTL per entry.
func NewSumCacheRepository(client *redis.Client, expiration time.Duration) *SumCacheRepository {
	return &SumCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func sumCacheKey(id int64, version uint64) string {
	return fmt.Sprintf("transaction_sum:%d:%d", id, version)
}

// GetSum returns the cached sum for id at the given ledger version.
func (r *SumCacheRepository) GetSum(ctx context.Context, id int64, version uint64) (float64, error) {
	key := sumCacheKey(id, version)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logger.Log.Debugw("sum cache miss", "key", key)
			return 0, ErrSumCacheMiss
		}
		logger.Log.Warnw("sum cache read failed", "key", key, "error", err)
		return 0, err
	}

	sum, err := strconv.ParseFloat(val, 64)
	if err != nil {
		logger.Log.Warnw("sum cache holds a malformed value", "key", key, "value", val, "error", err)
		return 0, err
	}

	logger.Log.Debugw("sum cache hit", "key", key, "sum", sum)
	return sum, nil
}

// SetSum caches the sum for id at the given ledger version.
func (r *SumCacheRepository) SetSum(ctx context.Context, id int64, version uint64, sum float64) error {
	key := sumCacheKey(id, version)
	err := r.client.Set(ctx, key, strconv.FormatFloat(sum, 'g', -1, 64), r.exp).Err()

	logger.Log.Debugw("sum cache write",
		"key", key,
		"sum", sum,
		"error", err,
	)

	return err
}
