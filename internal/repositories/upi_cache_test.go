package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpiCacheRepository(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	repo := NewUpiCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get account number", func(t *testing.T) {
		require.NoError(t, repo.SetAccountNumber(ctx, "alice@upi", "100000000001"))

		got, err := repo.GetAccountNumber(ctx, "alice@upi")
		assert.NoError(t, err)
		assert.Equal(t, "100000000001", got)
		assert.True(t, mr.Exists("upi_id:alice@upi"))
	})

	t.Run("Get missing key returns cache miss", func(t *testing.T) {
		_, err := repo.GetAccountNumber(ctx, "ghost@upi")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("Cached value expires", func(t *testing.T) {
		require.NoError(t, repo.SetAccountNumber(ctx, "bob@upi", "100000000002"))
		mr.FastForward(3 * time.Second)

		_, err := repo.GetAccountNumber(ctx, "bob@upi")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("Connection failure is not a miss", func(t *testing.T) {
		mr.Close()
		_, err := repo.GetAccountNumber(ctx, "alice@upi")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrCacheMiss)
	})
}
