// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"ipay4u/internal/domain/entity"
	domainerrors "ipay4u/internal/domain/errors"
	"ipay4u/internal/domain/repository"
	"ipay4u/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// UpsertDevice inserts the device or, when device_id already exists, replaces its
// name, token and status. The previous token stops matching immediately.
func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"device_name", "device_token", "status", "updated_at"}),
		}).
		Create(deviceM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDeviceToken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	device.UpdatedAt = deviceM.UpdatedAt
	if device.CreatedAt.IsZero() {
		device.CreatedAt = deviceM.CreatedAt
	}

	return nil
}

// FindDeviceByToken retrieves the device currently holding the token.
func (repo *deviceRepository) FindDeviceByToken(ctx context.Context, token string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("device_token = ?", token).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device by token")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDeviceByDeviceID retrieves a device by its client-chosen identifier.
func (repo *deviceRepository) FindDeviceByDeviceID(ctx context.Context, deviceID string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device by device id")
	}

	return toDeviceDomain(&deviceM), nil
}

// UpdateDeviceStatus switches a device between active and disabled.
func (repo *deviceRepository) UpdateDeviceStatus(ctx context.Context, deviceID string, status entity.DeviceStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("device_id = ?", deviceID).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update device status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func fromDeviceDomain(device *entity.Device) *model.DeviceModel {
	if device == nil {
		return nil
	}

	return &model.DeviceModel{
		DeviceID:    device.DeviceID,
		DeviceName:  device.Name,
		DeviceToken: device.Token,
		Status:      string(device.Status),
		CreatedAt:   device.CreatedAt,
		UpdatedAt:   device.UpdatedAt,
	}
}

func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		DeviceID:  data.DeviceID,
		Name:      data.DeviceName,
		Token:     data.DeviceToken,
		Status:    entity.DeviceStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
