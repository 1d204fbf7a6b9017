package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-funds-transfer/internal/logger"
)

// ErrCacheMiss is returned when a UPI id is not cached.
var ErrCacheMiss = errors.New("upi id not found in cache")

// UpiCacheRepository caches UPI id to account number resolutions in Redis.
type UpiCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached resolutions
}

// NewUpiCacheRepository creates a new cache with the given TTL.
func NewUpiCacheRepository(client *redis.Client, expiration time.Duration) *UpiCacheRepository {
	return &UpiCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func upiCacheKey(upiID string) string {
	return fmt.Sprintf("upi_id:%s", upiID)
}

// GetAccountNumber returns the cached account number for a UPI id.
func (r *UpiCacheRepository) GetAccountNumber(ctx context.Context, upiID string) (string, error) {
	key := upiCacheKey(upiID)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", val,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetAccountNumber caches the account number for a UPI id.
func (r *UpiCacheRepository) SetAccountNumber(ctx context.Context, upiID, accountNumber string) error {
	key := upiCacheKey(upiID)
	err := r.client.Set(ctx, key, accountNumber, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"value", accountNumber,
		"error", err,
	)

	return err
}
