package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"ipay4u/config"
	deliverycontext "ipay4u/internal/delivery/context"
	"ipay4u/internal/domain/constants"
	"ipay4u/internal/domain/service"
	"ipay4u/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError marks failures that should make Pub/Sub redeliver the message
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler turns PaymentRecorded push messages into topic alerts
type PushHandler struct {
	verify     func(req *http.Request) error
	logger     *slog.Logger
	alertSvc   service.AlertService
	alertTopic string
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	AlertSvc service.AlertService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:     params.Logger.With(slog.String("component", "notify_worker")),
		alertSvc:   params.AlertSvc,
		alertTopic: "payments",
	}
	if params.Config.Firebase != nil && params.Config.Firebase.AlertTopic != "" {
		h.alertTopic = params.Config.Firebase.AlertTopic
	}

	// Only Google push subscriptions carry an OIDC token; local development posts directly.
	pubsubCfg := params.Config.PubSub
	if pubsubCfg != nil && pubsubCfg.Provider == constants.PubSubProviderGoogle && params.Config.Env.Env != constants.EnvDevelop {
		audience := pubsubCfg.PushAudience
		h.verify = func(req *http.Request) error {
			return verifyPubSubToken(req, audience)
		}
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope service.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if eventType := envelope.Message.Attributes["event_type"]; eventType != "" && eventType != service.PaymentRecordedEventType {
		h.logger.Debug("Skipping unrelated event", slog.String("event_type", eventType))

		return c.NoContent(http.StatusOK)
	}

	var event service.PaymentRecordedEvent
	if err := json.Unmarshal(envelope.Message.Data, &event); err != nil {
		h.logger.Error("Failed to parse payment event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &envelope, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("Processing payment event",
		slog.String("event_id", event.EventID),
		slog.String("device_id", event.DeviceID),
		slog.String("message_id", envelope.Message.MessageID),
	)

	if err := h.sendAlert(ctx, &event); err != nil {
		reqLogger.Error("Failed to send payment alert",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 triggers redelivery; 200 acknowledges a message that can never succeed.
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the incoming request
func (h *PushHandler) extractRequestID(ctx context.Context, envelope *service.PushEnvelope, event *service.PaymentRecordedEvent) string {
	if requestID := envelope.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

func (h *PushHandler) sendAlert(ctx context.Context, event *service.PaymentRecordedEvent) error {
	if event.EventID == "" || event.ClientTxnID == "" {
		return errors.New("payment event is missing event_id or client_txn_id")
	}

	title, body, data := alertContent(event)
	if err := h.alertSvc.SendTopicAlert(ctx, h.alertTopic, title, body, data); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// alertContent renders the push notification for a recorded payment
func alertContent(event *service.PaymentRecordedEvent) (title, body string, data map[string]string) {
	amount := strconv.FormatFloat(event.Amount, 'f', 2, 64)

	title = event.Title
	if title == "" {
		title = "Payment received"
	}

	body = amount
	if event.Bank != "" {
		body = event.Bank + ": " + amount
	}
	if event.Message != "" {
		body = body + " - " + event.Message
	}

	data = map[string]string{
		"event_id":      event.EventID,
		"client_txn_id": event.ClientTxnID,
		"device_id":     event.DeviceID,
		"bank":          event.Bank,
		"amount":        amount,
		"recorded_at":   event.RecordedAt,
	}

	return title, body, data
}

// verifyPubSubToken validates the OIDC token Google attaches to push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request, audience string) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = scheme + "://" + req.Host + req.URL.Path
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
