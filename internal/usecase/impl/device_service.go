// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"ipay4u/config"
	deliverycontext "ipay4u/internal/delivery/context"
	"ipay4u/internal/domain/entity"
	domainerrors "ipay4u/internal/domain/errors"
	"ipay4u/internal/domain/repository"
	"ipay4u/internal/domain/service"
	"ipay4u/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// maxTokenAttempts bounds retries after a token collision with another device
	maxTokenAttempts = 3

	defaultEventPageSize = 50
	maxEventPageSize     = 200
)

type deviceService struct {
	deviceRepo  repository.DeviceRepository
	eventRepo   repository.PaymentEventRepository
	txManager   repository.TransactionManager
	tokenIssuer service.TokenIssuer
	qrcodeSvc   service.QRCodeService
	clock       service.Clock
	metrics     service.MetricsRecorder
	publicURL   string
	logger      *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo  repository.DeviceRepository
	EventRepo   repository.PaymentEventRepository
	TxManager   repository.TransactionManager
	TokenIssuer service.TokenIssuer
	QRCodeSvc   service.QRCodeService
	Clock       service.Clock
	Metrics     service.MetricsRecorder
	Config      *config.Config
	Logger      *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo:  params.DeviceRepo,
		eventRepo:   params.EventRepo,
		txManager:   params.TxManager,
		tokenIssuer: params.TokenIssuer,
		qrcodeSvc:   params.QRCodeSvc,
		clock:       params.Clock,
		metrics:     params.Metrics,
		publicURL:   params.Config.HTTP.PublicURL,
		logger:      params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register upserts the device keyed on device_id with a fresh token and active status.
func (srv *deviceService) Register(ctx context.Context, input *usecase.RegisterDeviceInput) (*entity.Device, error) {
	device, err := srv.register(ctx, input)
	srv.metrics.RecordRegistration(outcomeOf(err))

	return device, err
}

func (srv *deviceService) register(ctx context.Context, input *usecase.RegisterDeviceInput) (*entity.Device, error) {
	if input == nil || strings.TrimSpace(input.DeviceID) == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("device_id is required")
	}
	if strings.TrimSpace(input.DeviceName) == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("device_name is required")
	}

	for range maxTokenAttempts {
		now := srv.clock.Now()
		device := &entity.Device{
			DeviceID:  input.DeviceID,
			Name:      input.DeviceName,
			Token:     srv.tokenIssuer.Issue(),
			Status:    entity.DeviceStatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}

		err := srv.deviceRepo.UpsertDevice(ctx, device)
		if errors.Is(err, repository.ErrDuplicateDeviceToken) {
			srv.log(ctx).Warn("Issued device token collided, retrying", slog.String("device_id", input.DeviceID))

			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to register device")
		}

		srv.log(ctx).Info("Device registered", slog.String("device_id", device.DeviceID))

		return device, nil
	}

	return nil, domainerrors.ErrInternalError.WithDetails("could not issue a unique device token")
}

// Authenticate resolves the active device holding token.
func (srv *deviceService) Authenticate(ctx context.Context, token string) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindDeviceByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrInvalidDevice
		}

		return nil, errors.Wrap(err, "failed to look up device")
	}

	if !device.IsActive() {
		return nil, domainerrors.ErrDeviceDisabled
	}

	return device, nil
}

// Status returns the device holding token regardless of its status.
func (srv *deviceService) Status(ctx context.Context, token string) (*entity.Device, error) {
	if token == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	device, err := srv.deviceRepo.FindDeviceByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to look up device")
	}

	return device, nil
}

// SetStatus switches the device between active and disabled.
func (srv *deviceService) SetStatus(ctx context.Context, deviceID string, status entity.DeviceStatus) (*entity.Device, error) {
	if deviceID == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("device_id is required")
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("status must be active or disabled")
	}

	var device *entity.Device
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		devices := factory.NewDeviceRepository()
		if err := devices.UpdateDeviceStatus(ctx, deviceID, status); err != nil {
			return err
		}

		var err error
		device, err = devices.FindDeviceByDeviceID(ctx, deviceID)

		return err
	})
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, domainerrors.ErrDeviceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update device status")
	}

	srv.log(ctx).Info("Device status changed",
		slog.String("device_id", deviceID),
		slog.String("status", string(status)),
	)

	return device, nil
}

// Provision registers the device and renders its credential as a QR code.
func (srv *deviceService) Provision(ctx context.Context, input *usecase.RegisterDeviceInput) (*usecase.ProvisionedDevice, error) {
	device, err := srv.Register(ctx, input)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeSvc.GenerateProvisioningQR(&service.ProvisioningPayload{
		ServerURL:   srv.publicURL,
		DeviceID:    device.DeviceID,
		DeviceToken: device.Token,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render provisioning QR code")
	}

	return &usecase.ProvisionedDevice{Device: device, QRCode: png}, nil
}

// ListEvents returns a page of the device's payment events.
func (srv *deviceService) ListEvents(ctx context.Context, deviceID string, limit, offset int) ([]*entity.PaymentEvent, error) {
	if _, err := srv.deviceRepo.FindDeviceByDeviceID(ctx, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to look up device")
	}

	if limit <= 0 {
		limit = defaultEventPageSize
	}
	limit = min(limit, maxEventPageSize)
	offset = max(offset, 0)

	events, err := srv.eventRepo.FindPaymentEventsByDevice(ctx, deviceID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment events")
	}

	return events, nil
}

// outcomeOf maps an error to the label used by the outcome counters.
func outcomeOf(err error) string {
	if err == nil {
		return "ok"
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return "error"
}
