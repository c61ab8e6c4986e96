package usecase

import (
	"context"

	"ipay4u/internal/domain/entity"
)

// Ingestion result statuses
const (
	IngestStatusOK               = "ok"
	IngestStatusDuplicateIgnored = "duplicate_ignored"
)

// NotifyPayload is the JSON body of /notify. Amount is a pointer so that an
// absent amount can be told apart from zero.
type NotifyPayload struct {
	ClientTxnID string   `json:"client_txn_id"`
	Bank        string   `json:"bank"`
	Amount      *float64 `json:"amount"`
	Title       string   `json:"title"`
	Message     string   `json:"message"`
}

// IngestResult describes what happened to a reported event
type IngestResult struct {
	Status      string `json:"status"`
	ClientTxnID string `json:"client_txn_id"`
	EventID     string `json:"event_id,omitempty"`
}

// EventIngestor records reported payment events exactly once per client_txn_id
type EventIngestor interface {
	// Ingest stores the event for device. A repeated client_txn_id is not an
	// error; it yields IngestStatusDuplicateIgnored.
	Ingest(ctx context.Context, device *entity.Device, payload *NotifyPayload) (*IngestResult, error)
}
