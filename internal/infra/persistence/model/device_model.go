package model

import (
	"time"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
type DeviceModel struct {
	DeviceID    string `gorm:"type:varchar(255);primaryKey"`
	DeviceName  string `gorm:"type:varchar(255);not null"`
	DeviceToken string `gorm:"type:varchar(128);not null;uniqueIndex:idx_devices_device_token"`
	Status      string `gorm:"type:varchar(16);not null;default:'active'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
