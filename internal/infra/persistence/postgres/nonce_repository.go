package postgres

import (
	"context"
	"time"

	"ipay4u/internal/domain/entity"
	domainerrors "ipay4u/internal/domain/errors"
	"ipay4u/internal/domain/repository"
	"ipay4u/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type nonceRepository struct {
	db *gorm.DB
}

// NewNonceRepository is the constructor for the table-backed nonce store.
func NewNonceRepository(db *gorm.DB) repository.NonceRepository {
	return &nonceRepository{
		db: db,
	}
}

// InsertNonce records a nonce. The primary key on nonce makes concurrent
// inserts of the same value fail for all but one caller.
func (repo *nonceRepository) InsertNonce(ctx context.Context, nonce *entity.Nonce) error {
	nonceM := &model.NonceModel{
		Nonce:     nonce.Value,
		DeviceID:  nonce.DeviceID,
		CreatedAt: nonce.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(nonceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateNonce
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert nonce")
	}

	return nil
}

// DeleteNoncesBefore removes nonces recorded before cutoff and reports how many went.
func (repo *nonceRepository) DeleteNoncesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.NonceModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to prune nonces")
	}

	return result.RowsAffected, nil
}
