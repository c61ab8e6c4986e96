package impl

import (
	"context"
	"time"

	"ipay4u/config"
	"ipay4u/internal/domain/entity"
	domainerrors "ipay4u/internal/domain/errors"
	"ipay4u/internal/domain/repository"
	"ipay4u/internal/domain/service"
	"ipay4u/internal/usecase"

	"github.com/pkg/errors"
)

type replayGuard struct {
	nonceRepo repository.NonceRepository
	clock     service.Clock
	retention time.Duration
}

// NewReplayGuard builds a ReplayGuard on top of a nonce store with a uniqueness constraint.
func NewReplayGuard(nonceRepo repository.NonceRepository, clock service.Clock, cfg *config.Config) usecase.ReplayGuard {
	return &replayGuard{
		nonceRepo: nonceRepo,
		clock:     clock,
		retention: cfg.Nonce.Retention,
	}
}

// CheckAndRecord inserts the nonce; the store rejecting a duplicate is the replay signal.
func (g *replayGuard) CheckAndRecord(ctx context.Context, nonce, deviceID string) error {
	err := g.nonceRepo.InsertNonce(ctx, &entity.Nonce{
		Value:     nonce,
		DeviceID:  deviceID,
		CreatedAt: g.clock.Now(),
	})
	if err == nil {
		return nil
	}

	if errors.Is(err, repository.ErrDuplicateNonce) {
		return domainerrors.ErrReplayDetected
	}

	return errors.Wrap(err, "failed to record nonce")
}

// Prune deletes nonces that can no longer pass the timestamp window.
func (g *replayGuard) Prune(ctx context.Context) (int64, error) {
	if g.retention <= 0 {
		return 0, nil
	}

	deleted, err := g.nonceRepo.DeleteNoncesBefore(ctx, g.clock.Now().Add(-g.retention))
	if err != nil {
		return 0, errors.Wrap(err, "failed to prune nonces")
	}

	return deleted, nil
}
