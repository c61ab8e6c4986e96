package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentEvent is a bank-payment notification reported by a device.
// ClientTxnID is the client's idempotency key; at most one event exists per key.
type PaymentEvent struct {
	ID          uuid.UUID `json:"id"`
	ClientTxnID string    `json:"client_txn_id"`
	DeviceID    string    `json:"device_id"`
	Bank        string    `json:"bank"`
	Amount      float64   `json:"amount"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}
