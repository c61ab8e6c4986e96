package impl

import (
	"context"
	"strconv"
	"strings"
	"time"

	"ipay4u/config"
	"ipay4u/internal/domain/entity"
	domainerrors "ipay4u/internal/domain/errors"
	"ipay4u/internal/domain/service"
	"ipay4u/internal/usecase"

	"go.uber.org/fx"
)

// maxNonceLength matches the width of the nonce column.
const maxNonceLength = 255

type requestAuthenticator struct {
	devices usecase.DeviceUsecase
	replay  usecase.ReplayGuard
	signer  service.RequestSigner
	clock   service.Clock
	metrics service.MetricsRecorder
	skew    int64
}

// RequestAuthenticatorParams holds dependencies for RequestAuthenticator, injected by Fx.
type RequestAuthenticatorParams struct {
	fx.In

	Devices usecase.DeviceUsecase
	Replay  usecase.ReplayGuard
	Signer  service.RequestSigner
	Clock   service.Clock
	Metrics service.MetricsRecorder
	Config  *config.Config
}

// NewRequestAuthenticator is the constructor for requestAuthenticator.
func NewRequestAuthenticator(params RequestAuthenticatorParams) usecase.RequestAuthenticator {
	return &requestAuthenticator{
		devices: params.Devices,
		replay:  params.Replay,
		signer:  params.Signer,
		clock:   params.Clock,
		metrics: params.Metrics,
		skew:    int64(params.Config.Auth.TimestampSkew / time.Second),
	}
}

func (a *requestAuthenticator) Authenticate(ctx context.Context, req *usecase.SignedRequest) (*entity.Device, error) {
	device, err := a.authenticate(ctx, req)
	a.metrics.RecordAuthOutcome(outcomeOf(err))

	return device, err
}

func (a *requestAuthenticator) authenticate(ctx context.Context, req *usecase.SignedRequest) (*entity.Device, error) {
	if req == nil || req.Token == "" || req.Timestamp == "" || req.Nonce == "" || req.Signature == "" {
		return nil, domainerrors.ErrMissingCredentials
	}
	if len(req.Nonce) > maxNonceLength {
		return nil, domainerrors.ErrInvalidInput.WithDetails("nonce is too long")
	}

	if !a.withinWindow(req.Timestamp) {
		return nil, domainerrors.ErrStaleRequest
	}

	device, err := a.devices.Authenticate(ctx, req.Token)
	if err != nil {
		return nil, err
	}

	if err := a.replay.CheckAndRecord(ctx, req.Nonce, device.DeviceID); err != nil {
		return nil, err
	}

	if !a.signer.Verify(device.Token, req.Body, req.Timestamp, req.Nonce, req.Signature) {
		return nil, domainerrors.ErrBadSignature
	}

	return device, nil
}

// withinWindow reports whether the unix-seconds timestamp is at most skew
// seconds away from now, in either direction.
func (a *requestAuthenticator) withinWindow(timestamp string) bool {
	ts, err := strconv.ParseInt(strings.TrimSpace(timestamp), 10, 64)
	if err != nil {
		return false
	}

	now := a.clock.Now().Unix()

	return ts >= now-a.skew && ts <= now+a.skew
}
