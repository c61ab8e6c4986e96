package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"ipay4u/config"
	"ipay4u/internal/delivery/api"
	apimiddleware "ipay4u/internal/delivery/api/middleware"
	"ipay4u/internal/delivery/api/router"
	"ipay4u/internal/delivery/api/router/handler"
	"ipay4u/internal/domain/constants"
	"ipay4u/internal/domain/service"
	"ipay4u/internal/infra/auth"
	"ipay4u/internal/infra/clock"
	"ipay4u/internal/infra/metrics"
	"ipay4u/internal/infra/persistence/postgres"
	"ipay4u/internal/infra/qrcode"
	servicemocks "ipay4u/internal/mocks/service"
	"ipay4u/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const registrationSecret = "let-me-in"

type testServer struct {
	echo      *echo.Echo
	signer    service.RequestSigner
	tokens    service.TokenService
	publisher *servicemocks.MockEventPublisher
	logs      *bytes.Buffer
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "ipay4u-test"
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.HTTP.PublicURL = "https://pay.example.com"
	cfg.Auth.TimestampSkew = 120 * time.Second
	cfg.Auth.Registration.Mode = constants.RegistrationModeSecret
	cfg.Auth.Registration.Secret = registrationSecret
	cfg.Auth.Admin.Secret = "admin-signing-secret"
	cfg.Auth.Admin.Issuer = "ipay4u"
	cfg.Nonce.Retention = 240 * time.Second
	cfg.Metrics.Enabled = true
	cfg.Metrics.Path = "/metrics"

	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, postgres.Migrate(db))

	logs := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(logs, nil))
	systemClock := clock.NewSystemClock()
	m := metrics.New(cfg)
	recorder := metrics.NewRecorder(m)
	signer := auth.NewHMACSigner()
	publisher := servicemocks.NewMockEventPublisher(t)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	deviceRepo := postgres.NewDeviceRepository(db)
	eventRepo := postgres.NewPaymentEventRepository(db)

	devices := impl.NewDeviceService(impl.DeviceServiceParams{
		DeviceRepo:  deviceRepo,
		EventRepo:   eventRepo,
		TxManager:   postgres.NewTransactionManager(db),
		TokenIssuer: auth.NewTokenIssuer(),
		QRCodeSvc:   qrcode.NewQRCodeService(256, "M"),
		Clock:       systemClock,
		Metrics:     recorder,
		Config:      cfg,
		Logger:      log,
	})
	authenticator := impl.NewRequestAuthenticator(impl.RequestAuthenticatorParams{
		Devices: devices,
		Replay:  impl.NewReplayGuard(postgres.NewNonceRepository(db), systemClock, cfg),
		Signer:  signer,
		Clock:   systemClock,
		Metrics: recorder,
		Config:  cfg,
	})
	ingestor := impl.NewEventIngestor(impl.EventIngestorParams{
		EventRepo: eventRepo,
		Publisher: publisher,
		Clock:     systemClock,
		Metrics:   recorder,
		Config:    cfg,
		Logger:    log,
	})

	routerParams := router.RouterParams{
		SystemHandler:        handler.NewSystemHandler(systemClock),
		DeviceHandler:        handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: devices}),
		NotifyHandler:        handler.NewNotifyHandler(handler.NotifyHandlerParams{Ingestor: ingestor}),
		AdminHandler:         handler.NewAdminHandler(handler.AdminHandlerParams{DeviceUC: devices, Logger: log}),
		DeviceAuthMiddleware: apimiddleware.NewDeviceAuthMiddleware(authenticator, log),
		AdminAuthMiddleware:  apimiddleware.NewAdminAuthMiddleware(tokens),
		RegistrationGate: apimiddleware.NewRegistrationGate(apimiddleware.RegistrationGateParams{
			Config:  cfg,
			Hasher:  auth.NewBcryptHasher(),
			Metrics: recorder,
			Logger:  log,
		}),
	}

	return &testServer{
		echo:      api.NewEcho(cfg, log, m, routerParams),
		signer:    signer,
		tokens:    tokens,
		publisher: publisher,
		logs:      logs,
	}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func (s *testServer) register(t *testing.T, deviceID string) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/register",
		bytes.NewBufferString(`{"device_id":"`+deviceID+`","device_name":"Front desk"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(apimiddleware.HeaderRegistrationSecret, registrationSecret)

	rec := s.do(req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decode(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, deviceID, body["device_id"])
	token, _ := body["device_token"].(string)
	require.Len(t, token, 64)

	return token
}

type signedCall struct {
	token     string
	body      string
	timestamp string
	nonce     string
	// signedBody, when set, is what the signature is computed over instead of body.
	signedBody string
}

func (s *testServer) notify(call signedCall) *httptest.ResponseRecorder {
	if call.timestamp == "" {
		call.timestamp = strconv.FormatInt(time.Now().Unix(), 10)
	}
	if call.nonce == "" {
		call.nonce = uuid.NewString()
	}
	signed := call.body
	if call.signedBody != "" {
		signed = call.signedBody
	}

	req := httptest.NewRequest(http.MethodPost, "/notify", bytes.NewBufferString(call.body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+call.token)
	req.Header.Set(apimiddleware.HeaderTimestamp, call.timestamp)
	req.Header.Set(apimiddleware.HeaderNonce, call.nonce)
	req.Header.Set(apimiddleware.HeaderSignature, s.signer.Sign(call.token, []byte(signed), call.timestamp, call.nonce))

	return s.do(req)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	body := decode(t, rec)
	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok, rec.Body.String())
	code, _ := errInfo["code"].(string)

	return code
}

func TestServer_RegisterNotifyDuplicateReplay(t *testing.T) {
	srv := newTestServer(t, newTestConfig())
	srv.publisher.EXPECT().
		PublishPaymentRecorded(mock.Anything, mock.MatchedBy(func(event *service.PaymentRecordedEvent) bool {
			return event.ClientTxnID == "txn-001" && event.DeviceID == "kiosk-1"
		})).
		Return(nil).
		Once()

	token := srv.register(t, "kiosk-1")
	payload := `{"client_txn_id":"txn-001","bank":"KBank","amount":150.25,"title":"Incoming transfer","message":"Received 150.25 THB"}`

	nonce := uuid.NewString()
	first := srv.notify(signedCall{token: token, body: payload, nonce: nonce})
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	firstBody := decode(t, first)
	assert.Equal(t, "ok", firstBody["status"])
	assert.Equal(t, "txn-001", firstBody["client_txn_id"])
	eventID, _ := firstBody["event_id"].(string)
	require.NotEmpty(t, eventID)
	assert.NotEmpty(t, first.Header().Get("X-Request-Id"))

	// Same event, fresh nonce: acknowledged without a second row.
	second := srv.notify(signedCall{token: token, body: payload})
	require.Equal(t, http.StatusOK, second.Code, second.Body.String())
	secondBody := decode(t, second)
	assert.Equal(t, "duplicate_ignored", secondBody["status"])
	assert.Equal(t, "txn-001", secondBody["client_txn_id"])
	assert.Equal(t, eventID, secondBody["event_id"])

	// Same nonce again: rejected before the payload is looked at.
	replay := srv.notify(signedCall{token: token, body: payload, nonce: nonce})
	assert.Equal(t, http.StatusConflict, replay.Code)
	assert.Equal(t, "REPLAY_DETECTED", errorCode(t, replay))
}

func TestServer_NotifyRejections(t *testing.T) {
	srv := newTestServer(t, newTestConfig())
	token := srv.register(t, "kiosk-2")
	payload := `{"client_txn_id":"txn-002","bank":"SCB","amount":10}`
	now := time.Now().Unix()

	tests := []struct {
		name       string
		call       signedCall
		wantStatus int
		wantCode   string
	}{
		{
			name:       "stale timestamp",
			call:       signedCall{token: token, body: payload, timestamp: strconv.FormatInt(now-121, 10)},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "STALE_REQUEST",
		},
		{
			name:       "future timestamp",
			call:       signedCall{token: token, body: payload, timestamp: strconv.FormatInt(now+121, 10)},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "STALE_REQUEST",
		},
		{
			name:       "non-numeric timestamp",
			call:       signedCall{token: token, body: payload, timestamp: "yesterday"},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "STALE_REQUEST",
		},
		{
			name:       "tampered body",
			call:       signedCall{token: token, body: payload, signedBody: `{"client_txn_id":"txn-002","bank":"SCB","amount":1}`},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "BAD_SIGNATURE",
		},
		{
			name:       "unknown token",
			call:       signedCall{token: "not-a-device", body: payload},
			wantStatus: http.StatusForbidden,
			wantCode:   "INVALID_DEVICE",
		},
		{
			name:       "missing amount",
			call:       signedCall{token: token, body: `{"client_txn_id":"txn-003","bank":"SCB"}`},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_PAYLOAD",
		},
		{
			name:       "malformed json",
			call:       signedCall{token: token, body: `{"client_txn_id":`},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_PAYLOAD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.notify(tt.call)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}

	t.Run("missing signature headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/notify", bytes.NewBufferString(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(apimiddleware.HeaderDeviceToken, token)

		rec := srv.do(req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_CREDENTIALS", errorCode(t, rec))
	})
}

func TestServer_TokenRotation(t *testing.T) {
	srv := newTestServer(t, newTestConfig())
	srv.publisher.EXPECT().PublishPaymentRecorded(mock.Anything, mock.Anything).Return(nil).Once()

	oldToken := srv.register(t, "kiosk-3")
	newToken := srv.register(t, "kiosk-3")
	require.NotEqual(t, oldToken, newToken)

	payload := `{"client_txn_id":"txn-rot","bank":"KTB","amount":99}`
	rec := srv.notify(signedCall{token: oldToken, body: payload})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "INVALID_DEVICE", errorCode(t, rec))

	rec = srv.notify(signedCall{token: newToken, body: payload})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestServer_RegistrationGate(t *testing.T) {
	srv := newTestServer(t, newTestConfig())

	tests := []struct {
		name   string
		secret string
	}{
		{name: "no secret"},
		{name: "wrong secret", secret: "let-me-out"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/register",
				bytes.NewBufferString(`{"device_id":"kiosk-x","device_name":"X"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.secret != "" {
				req.Header.Set(apimiddleware.HeaderRegistrationSecret, tt.secret)
			}

			rec := srv.do(req)
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "REGISTRATION_FORBIDDEN", errorCode(t, rec))
		})
	}

	t.Run("missing device name", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(`{"device_id":"kiosk-x"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(apimiddleware.HeaderRegistrationSecret, registrationSecret)

		rec := srv.do(req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", errorCode(t, rec))
	})
}

func TestServer_RegistrationGate_HashedSecretAndRateLimit(t *testing.T) {
	cfg := newTestConfig()
	hash, err := auth.NewBcryptHasher().Hash(registrationSecret)
	require.NoError(t, err)
	cfg.Auth.Registration.Secret = ""
	cfg.Auth.Registration.SecretHash = hash
	cfg.Auth.Registration.RateLimit.RequestsPerSecond = 0.001
	cfg.Auth.Registration.RateLimit.Burst = 1
	cfg.Auth.Registration.RateLimit.ExpiresIn = time.Minute

	srv := newTestServer(t, cfg)
	srv.register(t, "kiosk-4")

	req := httptest.NewRequest(http.MethodPost, "/register",
		bytes.NewBufferString(`{"device_id":"kiosk-5","device_name":"Five"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(apimiddleware.HeaderRegistrationSecret, registrationSecret)

	rec := srv.do(req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMITED", errorCode(t, rec))
}

func TestServer_FingerprintGate(t *testing.T) {
	cfg := newTestConfig()
	cfg.Auth.Registration.Mode = constants.RegistrationModeFingerprint
	srv := newTestServer(t, cfg)

	body := `{"device_id":"kiosk-fp","device_name":"FP"}`

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := srv.do(req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(apimiddleware.HeaderDeviceFingerprint, "a1b2c3")
	rec = srv.do(req)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestServer_AdminDeviceLifecycle(t *testing.T) {
	srv := newTestServer(t, newTestConfig())
	srv.publisher.EXPECT().PublishPaymentRecorded(mock.Anything, mock.Anything).Return(nil).Once()

	token := srv.register(t, "kiosk-6")
	require.Equal(t, http.StatusOK, srv.notify(signedCall{
		token: token,
		body:  `{"client_txn_id":"txn-600","bank":"BBL","amount":42}`,
	}).Code)

	adminToken, err := srv.tokens.GenerateAdminToken(uuid.New(), []string{constants.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	adminRequest := func(method, target, body string) *http.Request {
		req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+adminToken)

		return req
	}

	rec := srv.do(adminRequest(http.MethodGet, "/admin/devices/kiosk-6/events", ""))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	events, _ := decode(t, rec)["events"].([]any)
	assert.Len(t, events, 1)

	rec = srv.do(adminRequest(http.MethodPut, "/admin/devices/kiosk-6/status", `{"status":"disabled"}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "disabled", decode(t, rec)["status"])

	rec = srv.notify(signedCall{token: token, body: `{"client_txn_id":"txn-601","bank":"BBL","amount":1}`})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "DEVICE_DISABLED", errorCode(t, rec))

	statusReq := httptest.NewRequest(http.MethodGet, "/device-status", nil)
	statusReq.Header.Set(apimiddleware.HeaderDeviceToken, token)
	rec = srv.do(statusReq)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "disabled", decode(t, rec)["status"])

	rec = srv.do(adminRequest(http.MethodPut, "/admin/devices/unknown/status", `{"status":"active"}`))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(adminRequest(http.MethodPut, "/admin/devices/kiosk-6/status", `{"status":"paused"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(adminRequest(http.MethodPost, "/admin/devices", `{"device_id":"kiosk-7","device_name":"Seven"}`))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "kiosk-7", rec.Header().Get(handler.HeaderProvisionedDeviceID))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestServer_LogsCarryCallerIdentity(t *testing.T) {
	srv := newTestServer(t, newTestConfig())
	token := srv.register(t, "kiosk-9")

	rec := srv.notify(signedCall{token: token, body: `{"client_txn_id":"txn-900","bank":"SCB"}`})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, srv.logs.String(), "device_id=kiosk-9")

	adminID := uuid.New()
	adminToken, err := srv.tokens.GenerateAdminToken(adminID, []string{constants.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	srv.logs.Reset()
	req := httptest.NewRequest(http.MethodPut, "/admin/devices/kiosk-9/status", bytes.NewBufferString(`{"status":"disabled"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+adminToken)
	rec = srv.do(req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	logged := srv.logs.String()
	assert.Contains(t, logged, `msg="Device status changed"`)
	assert.Contains(t, logged, "admin_id="+adminID.String())
	assert.Contains(t, logged, "device_id=kiosk-9")
	assert.Contains(t, logged, "status=disabled")

	srv.logs.Reset()
	req = httptest.NewRequest(http.MethodPost, "/admin/devices", bytes.NewBufferString(`{"device_id":"kiosk-10","device_name":"Ten"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+adminToken)
	rec = srv.do(req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	logged = srv.logs.String()
	assert.Contains(t, logged, `msg="Device provisioned"`)
	assert.Contains(t, logged, "admin_id="+adminID.String())
	assert.Contains(t, logged, "device_id=kiosk-10")
}

func TestServer_AdminAuthorization(t *testing.T) {
	srv := newTestServer(t, newTestConfig())

	req := httptest.NewRequest(http.MethodGet, "/admin/devices/kiosk/events", nil)
	rec := srv.do(req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	viewerToken, err := srv.tokens.GenerateAdminToken(uuid.New(), []string{"viewer"}, time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/admin/devices/kiosk/events", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+viewerToken)
	rec = srv.do(req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_DeviceStatus(t *testing.T) {
	srv := newTestServer(t, newTestConfig())
	token := srv.register(t, "kiosk-8")

	req := httptest.NewRequest(http.MethodGet, "/device-status", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := srv.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "active", body["status"])
	assert.Equal(t, "kiosk-8", body["device_id"])

	rec = srv.do(httptest.NewRequest(http.MethodGet, "/device-status", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/device-status", nil)
	req.Header.Set(apimiddleware.HeaderDeviceToken, "unknown")
	rec = srv.do(req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_SystemEndpoints(t *testing.T) {
	srv := newTestServer(t, newTestConfig())

	rec := srv.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])

	rec = srv.do(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ipay4u server is running", rec.Body.String())

	srv.register(t, "kiosk-9")
	rec = srv.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `ipay4u_device_registrations_total`)
	assert.Contains(t, rec.Body.String(), `ipay4u_http_requests_total`)
}
