// Package clock provides the wall-clock implementation of service.Clock.
package clock

import (
	"time"

	"ipay4u/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a Clock backed by time.Now in UTC.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
