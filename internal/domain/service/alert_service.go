package service

import (
	"context"
)

// AlertService delivers push alerts about recorded payments.
type AlertService interface {
	// SendTopicAlert sends a push notification to every subscriber of a topic.
	SendTopicAlert(ctx context.Context, topic, title, body string, data map[string]string) error
}
