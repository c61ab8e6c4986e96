package impl

import (
	"context"
	"testing"

	"ipay4u/internal/domain/entity"
	domainerrors "ipay4u/internal/domain/errors"
	"ipay4u/internal/domain/repository"
	"ipay4u/internal/domain/service"
	mockRepo "ipay4u/internal/mocks/repository"
	mockSvc "ipay4u/internal/mocks/service"
	"ipay4u/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service     usecase.DeviceUsecase
	deviceRepo  *mockRepo.MockDeviceRepository
	eventRepo   *mockRepo.MockPaymentEventRepository
	tokenIssuer *mockSvc.MockTokenIssuer
	qrcodeSvc   *mockSvc.MockQRCodeService
	metrics     *mockSvc.MockMetricsRecorder
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	fx := deviceServiceFixtures{
		deviceRepo:  mockRepo.NewMockDeviceRepository(t),
		eventRepo:   mockRepo.NewMockPaymentEventRepository(t),
		tokenIssuer: mockSvc.NewMockTokenIssuer(t),
		qrcodeSvc:   mockSvc.NewMockQRCodeService(t),
		metrics:     mockSvc.NewMockMetricsRecorder(t),
	}
	fx.service = NewDeviceService(DeviceServiceParams{
		DeviceRepo:  fx.deviceRepo,
		EventRepo:   fx.eventRepo,
		TxManager:   inlineTx{devices: fx.deviceRepo, events: fx.eventRepo},
		TokenIssuer: fx.tokenIssuer,
		QRCodeSvc:   fx.qrcodeSvc,
		Clock:       fixedClock{now: testNow},
		Metrics:     fx.metrics,
		Config:      testConfig(),
		Logger:      discardLogger(),
	})

	return fx
}

func TestDeviceService_Register_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.tokenIssuer.EXPECT().Issue().Return("token-1")
	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(d *entity.Device) bool {
			return d.DeviceID == "d1" && d.Name == "n1" && d.Token == "token-1" &&
				d.Status == entity.DeviceStatusActive && d.CreatedAt.Equal(testNow)
		})).
		Return(nil)
	fx.metrics.EXPECT().RecordRegistration("ok").Return()

	device, err := fx.service.Register(ctx, &usecase.RegisterDeviceInput{DeviceID: "d1", DeviceName: "n1"})
	require.NoError(t, err)
	assert.Equal(t, "token-1", device.Token)
	assert.Equal(t, entity.DeviceStatusActive, device.Status)
}

func TestDeviceService_Register_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.RegisterDeviceInput
	}{
		{"Nil input", nil},
		{"Empty device id", &usecase.RegisterDeviceInput{DeviceName: "n1"}},
		{"Blank device id", &usecase.RegisterDeviceInput{DeviceID: "  ", DeviceName: "n1"}},
		{"Empty device name", &usecase.RegisterDeviceInput{DeviceID: "d1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			fx.metrics.EXPECT().RecordRegistration("INVALID_INPUT").Return()

			_, err := fx.service.Register(context.Background(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		})
	}
}

func TestDeviceService_Register_RetriesTokenCollision(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.tokenIssuer.EXPECT().Issue().Return("taken").Once()
	fx.tokenIssuer.EXPECT().Issue().Return("fresh").Once()
	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(d *entity.Device) bool { return d.Token == "taken" })).
		Return(repository.ErrDuplicateDeviceToken)
	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(d *entity.Device) bool { return d.Token == "fresh" })).
		Return(nil)
	fx.metrics.EXPECT().RecordRegistration("ok").Return()

	device, err := fx.service.Register(ctx, &usecase.RegisterDeviceInput{DeviceID: "d1", DeviceName: "n1"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", device.Token)
}

func TestDeviceService_Register_TokenCollisionExhausted(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.tokenIssuer.EXPECT().Issue().Return("taken").Times(maxTokenAttempts)
	fx.deviceRepo.EXPECT().UpsertDevice(ctx, mock.Anything).Return(repository.ErrDuplicateDeviceToken).Times(maxTokenAttempts)
	fx.metrics.EXPECT().RecordRegistration("INTERNAL_ERROR").Return()

	_, err := fx.service.Register(ctx, &usecase.RegisterDeviceInput{DeviceID: "d1", DeviceName: "n1"})
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestDeviceService_Register_StorageFailure(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	storageErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to upsert device")

	fx.tokenIssuer.EXPECT().Issue().Return("token-1")
	fx.deviceRepo.EXPECT().UpsertDevice(ctx, mock.Anything).Return(storageErr)
	fx.metrics.EXPECT().RecordRegistration("DATABASE_EXECUTE_FAILED").Return()

	_, err := fx.service.Register(ctx, &usecase.RegisterDeviceInput{DeviceID: "d1", DeviceName: "n1"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestDeviceService_Authenticate(t *testing.T) {
	active := &entity.Device{DeviceID: "d1", Token: "good", Status: entity.DeviceStatusActive}
	disabled := &entity.Device{DeviceID: "d2", Token: "off", Status: entity.DeviceStatusDisabled}

	tests := []struct {
		name      string
		token     string
		found     *entity.Device
		findErr   error
		expectErr error
	}{
		{"Active device", "good", active, nil, nil},
		{"Unknown token", "nope", nil, repository.ErrDeviceNotFound, domainerrors.ErrInvalidDevice},
		{"Disabled device", "off", disabled, nil, domainerrors.ErrDeviceDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			ctx := context.Background()
			fx.deviceRepo.EXPECT().FindDeviceByToken(ctx, tt.token).Return(tt.found, tt.findErr)

			device, err := fx.service.Authenticate(ctx, tt.token)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, device)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "d1", device.DeviceID)
		})
	}
}

func TestDeviceService_Status(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing token", func(t *testing.T) {
		fx := createTestDeviceService(t)

		_, err := fx.service.Status(ctx, "")
		assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
	})

	t.Run("Unknown token", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByToken(ctx, "nope").Return(nil, repository.ErrDeviceNotFound)

		_, err := fx.service.Status(ctx, "nope")
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("Disabled device still reports status", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByToken(ctx, "off").
			Return(&entity.Device{DeviceID: "d2", Status: entity.DeviceStatusDisabled}, nil)

		device, err := fx.service.Status(ctx, "off")
		require.NoError(t, err)
		assert.Equal(t, entity.DeviceStatusDisabled, device.Status)
	})
}

func TestDeviceService_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid status", func(t *testing.T) {
		fx := createTestDeviceService(t)

		_, err := fx.service.SetStatus(ctx, "d1", entity.DeviceStatus("paused"))
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("Unknown device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().UpdateDeviceStatus(ctx, "d9", entity.DeviceStatusDisabled).Return(repository.ErrDeviceNotFound)

		_, err := fx.service.SetStatus(ctx, "d9", entity.DeviceStatusDisabled)
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("Disable device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().UpdateDeviceStatus(ctx, "d1", entity.DeviceStatusDisabled).Return(nil)
		fx.deviceRepo.EXPECT().FindDeviceByDeviceID(ctx, "d1").
			Return(&entity.Device{DeviceID: "d1", Status: entity.DeviceStatusDisabled}, nil)

		device, err := fx.service.SetStatus(ctx, "d1", entity.DeviceStatusDisabled)
		require.NoError(t, err)
		assert.Equal(t, entity.DeviceStatusDisabled, device.Status)
	})
}

func TestDeviceService_Provision(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.tokenIssuer.EXPECT().Issue().Return("token-1")
	fx.deviceRepo.EXPECT().UpsertDevice(ctx, mock.Anything).Return(nil)
	fx.metrics.EXPECT().RecordRegistration("ok").Return()
	fx.qrcodeSvc.EXPECT().
		GenerateProvisioningQR(&service.ProvisioningPayload{
			ServerURL:   "https://pay.example.com",
			DeviceID:    "d1",
			DeviceToken: "token-1",
		}).
		Return([]byte("png"), nil)

	provisioned, err := fx.service.Provision(ctx, &usecase.RegisterDeviceInput{DeviceID: "d1", DeviceName: "n1"})
	require.NoError(t, err)
	assert.Equal(t, "d1", provisioned.Device.DeviceID)
	assert.Equal(t, []byte("png"), provisioned.QRCode)
}

func TestDeviceService_ListEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByDeviceID(ctx, "d9").Return(nil, repository.ErrDeviceNotFound)

		_, err := fx.service.ListEvents(ctx, "d9", 10, 0)
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	pages := []struct {
		name           string
		limit, offset  int
		expectedLimit  int
		expectedOffset int
	}{
		{"Default page size", 0, 0, defaultEventPageSize, 0},
		{"Clamped page size", 5000, 10, maxEventPageSize, 10},
		{"Negative offset", 20, -3, 20, 0},
	}
	for _, tt := range pages {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			fx.deviceRepo.EXPECT().FindDeviceByDeviceID(ctx, "d1").Return(&entity.Device{DeviceID: "d1"}, nil)
			fx.eventRepo.EXPECT().FindPaymentEventsByDevice(ctx, "d1", tt.expectedLimit, tt.expectedOffset).
				Return([]*entity.PaymentEvent{{ClientTxnID: "tx1"}}, nil)

			events, err := fx.service.ListEvents(ctx, "d1", tt.limit, tt.offset)
			require.NoError(t, err)
			assert.Len(t, events, 1)
		})
	}
}
