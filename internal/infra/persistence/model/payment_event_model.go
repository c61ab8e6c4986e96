package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentEventModel is the GORM-specific struct for the 'payment_events' table.
type PaymentEventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientTxnID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_payment_events_client_txn_id"`
	DeviceID    string    `gorm:"type:varchar(255);not null;index:idx_payment_events_device_id"`
	Bank        string    `gorm:"type:text"`
	Amount      float64   `gorm:"type:numeric(18,2);not null"`
	Title       string    `gorm:"type:text"`
	Message     string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`

	Device *DeviceModel `gorm:"foreignKey:DeviceID;references:DeviceID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentEventModel) TableName() string {
	return "payment_events"
}
