package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ipay4u/config"
	"ipay4u/internal/domain/constants"
	"ipay4u/internal/domain/service"
	"ipay4u/internal/errors"
	servicemocks "ipay4u/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, cfg *config.Config) (*PushHandler, *servicemocks.MockAlertService) {
	t.Helper()

	alerts := servicemocks.NewMockAlertService(t)
	h := NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		AlertSvc: alerts,
	})

	return h, alerts
}

func pushRequest(t *testing.T, event any, attributes map[string]string) *http.Request {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var envelope service.PushEnvelope
	envelope.Message.Data = data
	envelope.Message.Attributes = attributes
	envelope.Message.MessageID = "msg-1"
	envelope.Subscription = "projects/test/subscriptions/payment-recorded-push"

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func serve(h *PushHandler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

var recordedEvent = &service.PaymentRecordedEvent{
	RequestID:   "req-42",
	EventID:     "0b5f0a3e-4f57-4a59-9a49-7cf0c0d3c001",
	ClientTxnID: "txn-001",
	DeviceID:    "kiosk-1",
	Bank:        "KBank",
	Amount:      150.25,
	Title:       "Incoming transfer",
	Message:     "Received 150.25 THB",
	RecordedAt:  "2026-03-14T09:30:00Z",
}

func TestPushHandler_SendsTopicAlert(t *testing.T) {
	cfg := &config.Config{Firebase: &config.FirebaseConfig{AlertTopic: "shop-payments"}}
	h, alerts := newTestHandler(t, cfg)

	alerts.EXPECT().
		SendTopicAlert(mock.Anything, "shop-payments", "Incoming transfer", "KBank: 150.25 - Received 150.25 THB",
			mock.MatchedBy(func(data map[string]string) bool {
				return data["event_id"] == recordedEvent.EventID && data["amount"] == "150.25"
			})).
		Return(nil).
		Once()

	rec := serve(h, pushRequest(t, recordedEvent, map[string]string{"event_type": service.PaymentRecordedEventType}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_AlertFailureIsRetried(t *testing.T) {
	h, alerts := newTestHandler(t, &config.Config{})
	alerts.EXPECT().
		SendTopicAlert(mock.Anything, "payments", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable")).
		Once()

	rec := serve(h, pushRequest(t, recordedEvent, nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_IncompleteEventIsAcknowledged(t *testing.T) {
	h, _ := newTestHandler(t, &config.Config{})

	rec := serve(h, pushRequest(t, &service.PaymentRecordedEvent{DeviceID: "kiosk-1"}, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_SkipsOtherEventTypes(t *testing.T) {
	h, _ := newTestHandler(t, &config.Config{})

	rec := serve(h, pushRequest(t, recordedEvent, map[string]string{"event_type": "device.disabled"}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedData(t *testing.T) {
	h, _ := newTestHandler(t, &config.Config{})

	rec := serve(h, pushRequest(t, "not an event object", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_RejectsUnverifiedPush(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction
	h, _ := newTestHandler(t, cfg)
	require.NotNil(t, h.verify)

	rec := serve(h, pushRequest(t, recordedEvent, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAlertContent_Defaults(t *testing.T) {
	title, body, data := alertContent(&service.PaymentRecordedEvent{EventID: "e", ClientTxnID: "t", Amount: 5})

	assert.Equal(t, "Payment received", title)
	assert.Equal(t, "5.00", body)
	assert.Equal(t, "5.00", data["amount"])
}
