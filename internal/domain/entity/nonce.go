package entity

import "time"

// Nonce is a single-use request value consumed during authentication.
type Nonce struct {
	Value     string
	DeviceID  string
	CreatedAt time.Time
}
