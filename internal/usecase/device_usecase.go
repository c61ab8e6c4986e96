package usecase

import (
	"context"

	"ipay4u/internal/domain/entity"
)

// RegisterDeviceInput carries the fields of a registration request
type RegisterDeviceInput struct {
	DeviceID   string `json:"device_id" validate:"required,max=255"`
	DeviceName string `json:"device_name" validate:"required,max=255"`
}

// ProvisionedDevice is a registered device plus its provisioning QR code (PNG)
type ProvisionedDevice struct {
	Device *entity.Device
	QRCode []byte
}

// DeviceUsecase owns device identities and their credentials
type DeviceUsecase interface {
	// Register creates the device or rotates its credential. The returned device
	// carries the freshly issued token; any previous token stops working.
	Register(ctx context.Context, input *RegisterDeviceInput) (*entity.Device, error)

	// Authenticate resolves an active device from its token
	Authenticate(ctx context.Context, token string) (*entity.Device, error)

	// Status reports the lifecycle state of the device holding token
	Status(ctx context.Context, token string) (*entity.Device, error)

	// SetStatus enables or disables a device
	SetStatus(ctx context.Context, deviceID string, status entity.DeviceStatus) (*entity.Device, error)

	// Provision registers a device on behalf of an administrator and renders
	// the credential as a QR code for the device app to scan
	Provision(ctx context.Context, input *RegisterDeviceInput) (*ProvisionedDevice, error)

	// ListEvents returns the device's payment events, newest first
	ListEvents(ctx context.Context, deviceID string, limit, offset int) ([]*entity.PaymentEvent, error)
}
