package service

import (
	"context"
)

// PaymentRecordedEvent is published once per newly stored payment event.
type PaymentRecordedEvent struct {
	RequestID   string  `json:"request_id,omitempty"` // For distributed tracing
	EventID     string  `json:"event_id"`
	ClientTxnID string  `json:"client_txn_id"`
	DeviceID    string  `json:"device_id"`
	Bank        string  `json:"bank"`
	Amount      float64 `json:"amount"`
	Title       string  `json:"title"`
	Message     string  `json:"message"`
	RecordedAt  string  `json:"recorded_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPaymentRecorded publishes a payment event for async processing
	PublishPaymentRecorded(ctx context.Context, event *PaymentRecordedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// PaymentRecordedEventType is carried in the event_type message attribute.
const PaymentRecordedEventType = "payment.recorded"

// PushEnvelope is the body Pub/Sub push subscriptions POST to an endpoint.
// Data is base64 in JSON, which []byte handles.
type PushEnvelope struct {
	Message struct {
		Data        []byte            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}
