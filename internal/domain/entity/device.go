// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// DeviceStatus is the lifecycle state of a registered device.
type DeviceStatus string

const (
	// DeviceStatusActive devices may authenticate and report events.
	DeviceStatusActive DeviceStatus = "active"
	// DeviceStatusDisabled devices are rejected by authentication; set by an administrator.
	DeviceStatusDisabled DeviceStatus = "disabled"
)

// IsValid reports whether s is one of the known statuses.
func (s DeviceStatus) IsValid() bool {
	return s == DeviceStatusActive || s == DeviceStatusDisabled
}

// Device is a mobile device allowed to report payment notifications.
// Token is both the bearer credential and the HMAC key; it is never serialized.
type Device struct {
	DeviceID  string       `json:"device_id"`   // Client-chosen stable identifier.
	Name      string       `json:"device_name"` // Display label.
	Token     string       `json:"-"`           // Server-issued secret.
	Status    DeviceStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// IsActive reports whether the device may authenticate.
func (d *Device) IsActive() bool {
	return d.Status == DeviceStatusActive
}
