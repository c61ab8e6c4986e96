package notification

import (
	"context"
	"log/slog"

	"ipay4u/internal/domain/service"
)

type logAlertService struct {
	logger *slog.Logger
}

// NewLogAlertService returns an AlertService that only logs, used when Firebase is not configured
func NewLogAlertService(logger *slog.Logger) service.AlertService {
	return &logAlertService{logger: logger}
}

func (s *logAlertService) SendTopicAlert(ctx context.Context, topic, title, body string, data map[string]string) error {
	s.logger.InfoContext(ctx, "Payment alert",
		slog.String("topic", topic),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}
