package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"ipay4u/config"
	"ipay4u/internal/domain/repository"
)

// fixedClock pins Now to a known instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.PublicURL = "https://pay.example.com"
	cfg.Auth.TimestampSkew = 120 * time.Second
	cfg.Nonce.Retention = 240 * time.Second

	return cfg
}

// inlineTx runs the callback directly against the given repositories.
type inlineTx struct {
	devices repository.DeviceRepository
	events  repository.PaymentEventRepository
}

func (tx inlineTx) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tx)
}

func (tx inlineTx) NewDeviceRepository() repository.DeviceRepository {
	return tx.devices
}

func (tx inlineTx) NewPaymentEventRepository() repository.PaymentEventRepository {
	return tx.events
}
