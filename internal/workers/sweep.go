package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/service"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
)

// sweepWorker periodically deletes expired token rows and failure events
// that are too old to influence any throttling decision. The sweep is an
// eviction pass only; correctness never depends on it because expiry is
// re-checked on every read.
type sweepWorker struct {
	ctx      context.Context
	tokens   service.TokenService
	failures store.FailureEventRepository

	interval  time.Duration
	retention time.Duration

	logger *logger.Logger
}

func newSweepWorker(ctx context.Context, tokens service.TokenService, failures store.FailureEventRepository, cfg *config.StructuredConfig, logger *logger.Logger) *sweepWorker {
	// A failure event stops mattering once it is outside both the counting
	// window and the longest possible ban.
	retention := cfg.App.RelevanceWindow
	if cfg.App.BanDuration > retention {
		retention = cfg.App.BanDuration
	}

	return &sweepWorker{
		ctx:       ctx,
		tokens:    tokens,
		failures:  failures,
		interval:  cfg.Workers.SweepInterval,
		retention: retention,
		logger:    logger,
	}
}

func (w *sweepWorker) Run() {
	go w.loop()
}

func (w *sweepWorker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			w.logger.Info().Msg("sweep worker stopped")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *sweepWorker) sweep() {
	sweptTokens, err := w.tokens.SweepExpired(w.ctx)
	if err != nil {
		w.logger.Warn().Err(err).Str("func", "sweepWorker.sweep").Msg("token sweep incomplete")
	}

	sweptFailures, err := w.failures.DeleteOlderThan(w.ctx, time.Now().Add(-w.retention))
	if err != nil {
		w.logger.Warn().Err(err).Str("func", "sweepWorker.sweep").Msg("failure event sweep incomplete")
	}

	w.logger.Debug().
		Int64("tokens", sweptTokens).
		Int64("failure_events", sweptFailures).
		Msg("sweep pass complete")
}
