package repository

import (
	"context"
	"time"

	"ipay4u/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDuplicateNonce is returned when the nonce has been stored before.
var ErrDuplicateNonce = errors.New("nonce already used")

// NonceRepository stores consumed nonces. InsertNonce must rely on a uniqueness
// guarantee of the backing store, never on a read followed by a write.
type NonceRepository interface {
	// InsertNonce records the nonce, returning ErrDuplicateNonce if it exists.
	InsertNonce(ctx context.Context, nonce *entity.Nonce) error

	// DeleteNoncesBefore removes nonces created before the cutoff and returns how many were removed.
	DeleteNoncesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
