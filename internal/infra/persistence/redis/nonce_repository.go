package redis

import (
	"context"
	"time"

	"ipay4u/config"
	"ipay4u/internal/domain/entity"
	domainerrors "ipay4u/internal/domain/errors"
	"ipay4u/internal/domain/repository"

	goredis "github.com/redis/go-redis/v9"
)

const nonceKeyPrefix = "ipay4u:nonce:"

type nonceRepository struct {
	client    goredis.Cmdable
	retention time.Duration
}

// NewNonceRepository returns a nonce store where every nonce is a key written
// with SET NX and an expiry equal to the configured retention.
func NewNonceRepository(client goredis.Cmdable, cfg *config.Config) repository.NonceRepository {
	return &nonceRepository{
		client:    client,
		retention: cfg.Nonce.Retention,
	}
}

// InsertNonce records a nonce; SET NX guarantees a single winner across instances.
func (repo *nonceRepository) InsertNonce(ctx context.Context, nonce *entity.Nonce) error {
	ok, err := repo.client.SetNX(ctx, nonceKeyPrefix+nonce.Value, nonce.DeviceID, repo.retention).Result()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert nonce")
	}
	if !ok {
		return repository.ErrDuplicateNonce
	}

	return nil
}

// DeleteNoncesBefore is a no-op: keys expire on their own.
func (repo *nonceRepository) DeleteNoncesBefore(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}
