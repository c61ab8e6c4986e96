package impl

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"ipay4u/internal/domain/entity"
	domainerrors "ipay4u/internal/domain/errors"
	"ipay4u/internal/domain/service"
	"ipay4u/internal/infra/auth"
	mockSvc "ipay4u/internal/mocks/service"
	mockUsecase "ipay4u/internal/mocks/usecase"
	"ipay4u/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "9f8e7d6c5b4a39281706f5e4d3c2b1a09f8e7d6c5b4a39281706f5e4d3c2b1a0"

type authenticatorFixtures struct {
	authenticator usecase.RequestAuthenticator
	devices       *mockUsecase.MockDeviceUsecase
	replay        *mockUsecase.MockReplayGuard
	metrics       *mockSvc.MockMetricsRecorder
	signer        service.RequestSigner
}

func createTestAuthenticator(t *testing.T) authenticatorFixtures {
	fx := authenticatorFixtures{
		devices: mockUsecase.NewMockDeviceUsecase(t),
		replay:  mockUsecase.NewMockReplayGuard(t),
		metrics: mockSvc.NewMockMetricsRecorder(t),
		signer:  auth.NewHMACSigner(),
	}
	fx.authenticator = NewRequestAuthenticator(RequestAuthenticatorParams{
		Devices: fx.devices,
		Replay:  fx.replay,
		Signer:  fx.signer,
		Clock:   fixedClock{now: testNow},
		Metrics: fx.metrics,
		Config:  testConfig(),
	})

	return fx
}

func activeDevice() *entity.Device {
	return &entity.Device{DeviceID: "d1", Name: "n1", Token: testToken, Status: entity.DeviceStatusActive}
}

// signedRequest builds a correctly signed request with the timestamp offset from testNow.
func (fx authenticatorFixtures) signedRequest(offset time.Duration, nonce string) *usecase.SignedRequest {
	body := []byte(`{"client_txn_id":"tx1","bank":"X","amount":100,"title":"t","message":"m"}`)
	ts := strconv.FormatInt(testNow.Add(offset).Unix(), 10)

	return &usecase.SignedRequest{
		Token:     testToken,
		Timestamp: ts,
		Nonce:     nonce,
		Signature: fx.signer.Sign(testToken, body, ts, nonce),
		Body:      body,
	}
}

func TestRequestAuthenticator_Success(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()

	fx.devices.EXPECT().Authenticate(ctx, testToken).Return(activeDevice(), nil)
	fx.replay.EXPECT().CheckAndRecord(ctx, "n1", "d1").Return(nil)
	fx.metrics.EXPECT().RecordAuthOutcome("ok").Return()

	device, err := fx.authenticator.Authenticate(ctx, fx.signedRequest(0, "n1"))
	require.NoError(t, err)
	assert.Equal(t, "d1", device.DeviceID)
}

func TestRequestAuthenticator_MissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *usecase.SignedRequest)
	}{
		{"Missing token", func(r *usecase.SignedRequest) { r.Token = "" }},
		{"Missing timestamp", func(r *usecase.SignedRequest) { r.Timestamp = "" }},
		{"Missing nonce", func(r *usecase.SignedRequest) { r.Nonce = "" }},
		{"Missing signature", func(r *usecase.SignedRequest) { r.Signature = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthenticator(t)
			fx.metrics.EXPECT().RecordAuthOutcome("MISSING_CREDENTIALS").Return()

			req := fx.signedRequest(0, "n1")
			tt.mutate(req)

			_, err := fx.authenticator.Authenticate(context.Background(), req)
			assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
		})
	}

	t.Run("Nil request", func(t *testing.T) {
		fx := createTestAuthenticator(t)
		fx.metrics.EXPECT().RecordAuthOutcome("MISSING_CREDENTIALS").Return()

		_, err := fx.authenticator.Authenticate(context.Background(), nil)
		assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
	})
}

func TestRequestAuthenticator_NonceTooLong(t *testing.T) {
	fx := createTestAuthenticator(t)
	fx.metrics.EXPECT().RecordAuthOutcome("INVALID_INPUT").Return()

	_, err := fx.authenticator.Authenticate(context.Background(), fx.signedRequest(0, strings.Repeat("n", maxNonceLength+1)))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestRequestAuthenticator_TimestampWindow(t *testing.T) {
	tests := []struct {
		name     string
		offset   time.Duration
		accepted bool
	}{
		{"119 seconds old", -119 * time.Second, true},
		{"Exactly at the bound", -120 * time.Second, true},
		{"121 seconds old", -121 * time.Second, false},
		{"119 seconds ahead", 119 * time.Second, true},
		{"121 seconds ahead", 121 * time.Second, false},
		{"One day old", -24 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthenticator(t)
			ctx := context.Background()

			if tt.accepted {
				fx.devices.EXPECT().Authenticate(ctx, testToken).Return(activeDevice(), nil)
				fx.replay.EXPECT().CheckAndRecord(ctx, "n1", "d1").Return(nil)
				fx.metrics.EXPECT().RecordAuthOutcome("ok").Return()
			} else {
				fx.metrics.EXPECT().RecordAuthOutcome("STALE_REQUEST").Return()
			}

			_, err := fx.authenticator.Authenticate(ctx, fx.signedRequest(tt.offset, "n1"))
			if tt.accepted {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domainerrors.ErrStaleRequest)
			}
		})
	}
}

func TestRequestAuthenticator_MalformedTimestamp(t *testing.T) {
	for _, ts := range []string{"yesterday", "1.7e9", "0x10", "-9223372036854775808"} {
		t.Run(ts, func(t *testing.T) {
			fx := createTestAuthenticator(t)
			fx.metrics.EXPECT().RecordAuthOutcome("STALE_REQUEST").Return()

			req := fx.signedRequest(0, "n1")
			req.Timestamp = ts

			_, err := fx.authenticator.Authenticate(context.Background(), req)
			assert.ErrorIs(t, err, domainerrors.ErrStaleRequest)
		})
	}
}

func TestRequestAuthenticator_DeviceRejectedBeforeNonceConsumed(t *testing.T) {
	for _, deviceErr := range []error{domainerrors.ErrInvalidDevice, domainerrors.ErrDeviceDisabled} {
		t.Run(deviceErr.Error(), func(t *testing.T) {
			fx := createTestAuthenticator(t)
			ctx := context.Background()

			fx.devices.EXPECT().Authenticate(ctx, testToken).Return(nil, deviceErr)
			fx.metrics.EXPECT().RecordAuthOutcome(deviceErr.(domainerrors.AppError).ErrorCode()).Return()

			_, err := fx.authenticator.Authenticate(ctx, fx.signedRequest(0, "n1"))
			assert.ErrorIs(t, err, deviceErr)
			fx.replay.AssertNotCalled(t, "CheckAndRecord")
		})
	}
}

func TestRequestAuthenticator_ReplayDetected(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()

	fx.devices.EXPECT().Authenticate(ctx, testToken).Return(activeDevice(), nil)
	fx.replay.EXPECT().CheckAndRecord(ctx, "n1", "d1").Return(domainerrors.ErrReplayDetected)
	fx.metrics.EXPECT().RecordAuthOutcome("REPLAY_DETECTED").Return()

	_, err := fx.authenticator.Authenticate(ctx, fx.signedRequest(0, "n1"))
	assert.ErrorIs(t, err, domainerrors.ErrReplayDetected)
}

func TestRequestAuthenticator_SignatureBinding(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *usecase.SignedRequest)
	}{
		{"Body changed", func(r *usecase.SignedRequest) { r.Body = []byte(strings.Replace(string(r.Body), "100", "900", 1)) }},
		{"Trailing whitespace in body", func(r *usecase.SignedRequest) { r.Body = append(r.Body, '\n') }},
		{"Timestamp changed", func(r *usecase.SignedRequest) {
			ts, _ := strconv.ParseInt(r.Timestamp, 10, 64)
			r.Timestamp = strconv.FormatInt(ts-1, 10)
		}},
		{"Nonce changed", func(r *usecase.SignedRequest) { r.Nonce = "n2" }},
		{"Signature garbage", func(r *usecase.SignedRequest) { r.Signature = "zz" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthenticator(t)
			ctx := context.Background()

			req := fx.signedRequest(0, "n1")
			tt.mutate(req)

			fx.devices.EXPECT().Authenticate(ctx, testToken).Return(activeDevice(), nil)
			// The nonce is spent even though the signature fails.
			fx.replay.EXPECT().CheckAndRecord(ctx, req.Nonce, "d1").Return(nil).Once()
			fx.metrics.EXPECT().RecordAuthOutcome("BAD_SIGNATURE").Return()

			_, err := fx.authenticator.Authenticate(ctx, req)
			assert.ErrorIs(t, err, domainerrors.ErrBadSignature)
		})
	}
}
