package model

import (
	"time"
)

// NonceModel is the GORM-specific struct for the 'nonces' table.
// The primary key on nonce is what makes replay detection atomic.
type NonceModel struct {
	Nonce     string    `gorm:"type:varchar(255);primaryKey"`
	DeviceID  string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_nonces_created_at"`
}

// TableName explicitly sets the table name for GORM.
func (NonceModel) TableName() string {
	return "nonces"
}
