// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"ipay4u/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when no device matches the lookup key.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDeviceToken is returned when an issued token collides with another device's token.
	ErrDuplicateDeviceToken = errors.New("device token already in use")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// UpsertDevice creates the device or, when device_id already exists, replaces
	// its name, token and status in a single statement.
	UpsertDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByToken retrieves the device that owns the given token.
	FindDeviceByToken(ctx context.Context, token string) (*entity.Device, error)

	// FindDeviceByDeviceID retrieves a device by its client-chosen identifier.
	FindDeviceByDeviceID(ctx context.Context, deviceID string) (*entity.Device, error)

	// UpdateDeviceStatus sets the status of a device.
	UpdateDeviceStatus(ctx context.Context, deviceID string, status entity.DeviceStatus) error
}
