package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wu-catalog/internal/config"
	"github.com/MKhiriev/go-wu-catalog/internal/logger"
	"github.com/MKhiriev/go-wu-catalog/internal/service"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers builds the workers enabled by the available services. Without
// a snapshot store there is no refresh job and the result is empty.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{logger: logger}
	if services != nil && services.RefreshJob != nil {
		w.workers = append(w.workers, newRefreshWorker(services.RefreshJob, cfg.RefreshInterval))
	}
	logger.Info().Int("count", len(w.workers)).Msg("workers created")
	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

type refreshWorker struct {
	job      service.RefreshJob
	interval time.Duration
}

func newRefreshWorker(job service.RefreshJob, interval time.Duration) *refreshWorker {
	return &refreshWorker{job: job, interval: interval}
}

func (r *refreshWorker) Run(ctx context.Context) {
	r.job.Start(ctx, r.interval)
}

func (r *refreshWorker) Stop() {
	r.job.Stop()
}
