package repository

import (
	"context"

	"ipay4u/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrDuplicatePaymentEvent is returned when an event with the same client_txn_id exists.
	ErrDuplicatePaymentEvent = errors.New("payment event already recorded")
	// ErrPaymentEventNotFound is returned when no event carries the requested key.
	ErrPaymentEventNotFound = errors.New("payment event not found")
)

// PaymentEventRepository defines the persistence operations for payment events.
type PaymentEventRepository interface {
	// CreatePaymentEvent inserts the event, returning ErrDuplicatePaymentEvent on a
	// client_txn_id conflict. Existing rows are never modified.
	CreatePaymentEvent(ctx context.Context, event *entity.PaymentEvent) error

	// FindPaymentEventsByDevice lists a device's events, newest first.
	FindPaymentEventsByDevice(ctx context.Context, deviceID string, limit, offset int) ([]*entity.PaymentEvent, error)

	// FindPaymentEventByClientTxnID returns the event stored under the idempotency key.
	FindPaymentEventByClientTxnID(ctx context.Context, clientTxnID string) (*entity.PaymentEvent, error)
}
