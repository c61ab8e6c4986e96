// Package notification sends payment alerts to operators' phones.
package notification

import (
	"context"

	"ipay4u/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type firebaseAlertService struct {
	client *messaging.Client
}

// NewFirebaseAlertService creates an AlertService backed by Firebase Cloud Messaging
func NewFirebaseAlertService(ctx context.Context, projectID, credentialsPath string) (service.AlertService, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var fbConfig *firebase.Config
	if projectID != "" {
		fbConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseAlertService{client: client}, nil
}

// SendTopicAlert sends a high priority notification to every subscriber of topic
func (s *firebaseAlertService) SendTopicAlert(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrapf(err, "failed to send alert to topic %s", topic)
	}

	return nil
}
