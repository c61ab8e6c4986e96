// Package pruner runs the background sweep that forgets expired nonces.
package pruner

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"ipay4u/config"
	"ipay4u/internal/delivery"
	"ipay4u/internal/domain/constants"
	"ipay4u/internal/domain/service"
	"ipay4u/internal/usecase"

	"go.uber.org/fx"
)

// Params holds dependencies for the pruner, injected by Fx.
type Params struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	Replay  usecase.ReplayGuard
	Metrics service.MetricsRecorder
}

// Pruner periodically deletes nonces older than the retention window.
type Pruner struct {
	interval time.Duration
	enabled  bool
	logger   *slog.Logger
	replay   usecase.ReplayGuard
	metrics  service.MetricsRecorder

	stopCtx context.Context
	cancel  context.CancelFunc
	started atomic.Bool
	done    chan struct{}
}

// New creates the pruner. Redis-backed nonces expire on their own, so the
// loop is disabled for that store.
func New(params Params) delivery.Delivery {
	p := &Pruner{
		interval: params.Config.Nonce.PruneInterval,
		enabled:  params.Config.Nonce.Store != constants.NonceStoreRedis,
		logger:   params.Logger.With(slog.String("component", "nonce_pruner")),
		replay:   params.Replay,
		metrics:  params.Metrics,
		done:     make(chan struct{}),
	}
	p.stopCtx, p.cancel = context.WithCancel(context.Background())

	params.Lc.Append(fx.Hook{
		OnStop: p.stop,
	})

	return p
}

// Serve blocks, sweeping every interval until the pruner is stopped or ctx ends.
func (p *Pruner) Serve(ctx context.Context) error {
	p.started.Store(true)
	defer close(p.done)

	if !p.enabled || p.interval <= 0 {
		p.logger.Info("Nonce pruner disabled")

		return nil
	}

	p.logger.Info("Starting nonce pruner", slog.Duration("interval", p.interval))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-p.stopCtx.Done():
			return nil
		case <-ticker.C:
			p.RunOnce(p.stopCtx)
		}
	}
}

// RunOnce performs a single sweep. Failures are logged and retried on the next tick.
func (p *Pruner) RunOnce(ctx context.Context) {
	deleted, err := p.replay.Prune(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Error("Failed to prune nonces", slog.Any("error", err))
		}

		return
	}

	p.metrics.RecordNoncesPruned(deleted)
	if deleted > 0 {
		p.logger.Debug("Pruned expired nonces", slog.Int64("deleted", deleted))
	}
}

func (p *Pruner) stop(ctx context.Context) error {
	p.cancel()
	if !p.started.Load() {
		return nil
	}

	select {
	case <-p.done:
	case <-ctx.Done():
	}

	return nil
}
