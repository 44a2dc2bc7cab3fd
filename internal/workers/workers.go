package workers

import (
	"context"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/service"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by the configuration.
// With a zero sweep interval no worker is created and Run is a no-op.
func NewWorkers(ctx context.Context, services *service.Services, storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Workers {
	var enabled []Worker

	if cfg.Workers.SweepInterval > 0 {
		enabled = append(enabled, newSweepWorker(ctx, services.Tokens, storages.Failures, cfg, logger))
	}

	return &Workers{workers: enabled}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
