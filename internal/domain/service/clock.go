// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "time"

// Clock supplies the current time for timestamp-window checks and record timestamps.
type Clock interface {
	Now() time.Time
}
