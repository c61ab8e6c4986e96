package redis

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"ipay4u/config"
	"ipay4u/internal/domain/entity"
	"ipay4u/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, retention time.Duration) (repository.NonceRepository, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Nonce.Retention = retention

	return NewNonceRepository(client, cfg), server
}

func TestNonceRepository_InsertOnce(t *testing.T) {
	ctx := context.Background()
	store, server := newTestStore(t, 4*time.Minute)

	nonce := &entity.Nonce{Value: "n-1", DeviceID: "dev-1", CreatedAt: time.Now()}
	require.NoError(t, store.InsertNonce(ctx, nonce))
	assert.ErrorIs(t, store.InsertNonce(ctx, nonce), repository.ErrDuplicateNonce)

	assert.Equal(t, 4*time.Minute, server.TTL(nonceKeyPrefix+"n-1"))
	value, err := server.Get(nonceKeyPrefix + "n-1")
	require.NoError(t, err)
	assert.Equal(t, "dev-1", value)
}

func TestNonceRepository_ExpiredNonceIsReusable(t *testing.T) {
	ctx := context.Background()
	store, server := newTestStore(t, time.Minute)

	nonce := &entity.Nonce{Value: "n-1", DeviceID: "dev-1", CreatedAt: time.Now()}
	require.NoError(t, store.InsertNonce(ctx, nonce))

	server.FastForward(2 * time.Minute)

	assert.NoError(t, store.InsertNonce(ctx, nonce))
}

func TestNonceRepository_ConcurrentInsertSingleWinner(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, time.Minute)

	const workers = 32
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.InsertNonce(ctx, &entity.Nonce{Value: "race", DeviceID: "dev-1"}) == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
}

func TestNonceRepository_StoreUnavailable(t *testing.T) {
	store, server := newTestStore(t, time.Minute)
	server.SetError("LOADING redis is loading the dataset in memory")

	err := store.InsertNonce(context.Background(), &entity.Nonce{Value: "n-1", DeviceID: "dev-1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrDuplicateNonce)
}

func TestNonceRepository_DeleteIsNoop(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)

	deleted, err := store.DeleteNoncesBefore(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
