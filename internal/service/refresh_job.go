package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-wu-catalog/internal/logger"
	"github.com/MKhiriev/go-wu-catalog/internal/metrics"
	"github.com/MKhiriev/go-wu-catalog/models"
)

const defaultRefreshInterval = 6 * time.Hour

type refreshJob struct {
	catalog   CatalogService
	snapshots SnapshotService
	machines  []models.MachineType
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a job that rediscovers the builds of every machine
// and saves them as the new snapshot. The job is idle until Start is called.
func NewRefreshJob(catalog CatalogService, snapshots SnapshotService, machines []models.MachineType, logger *logger.Logger) RefreshJob {
	return &refreshJob{
		catalog:   catalog,
		snapshots: snapshots,
		machines:  machines,
		logger:    logger,
	}
}

// RunOnce implements RefreshJob. A failing machine does not stop the others;
// all failures are returned joined.
func (j *refreshJob) RunOnce(ctx context.Context) error {
	var errs []error
	for _, machine := range j.machines {
		if err := j.refresh(ctx, machine); err != nil {
			errs = append(errs, fmt.Errorf("refresh %s: %w", machine, err))
		}
	}

	err := errors.Join(errs...)
	metrics.RecordRefresh(err)
	return err
}

func (j *refreshJob) refresh(ctx context.Context, machine models.MachineType) error {
	start := time.Now()

	builds, err := j.catalog.GetAvailableBuilds(ctx, machine)
	if err != nil {
		return err
	}
	if len(builds) == 0 {
		j.logger.Warn().
			Str("machine", machine.String()).
			Msg("discovery returned no builds, keeping previous snapshot")
		return nil
	}
	if err = j.snapshots.SaveBuilds(ctx, machine, builds); err != nil {
		return err
	}

	j.logger.Info().
		Str("machine", machine.String()).
		Int("builds", len(builds)).
		Dur("took", time.Since(start)).
		Msg("catalog snapshot refreshed")
	return nil
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a background goroutine that refreshes immediately and then every
// interval. If interval is zero or negative it defaults to 6 hours. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(j.logger.WithContext(ctx))
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			if err := j.RunOnce(jobCtx); err != nil && jobCtx.Err() == nil {
				j.logger.Err(err).Msg("catalog refresh failed")
			}

			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
			}
		}
	}()
}

// Stop implements RefreshJob. It cancels the background goroutine and blocks
// until it has exited. Safe to call when the job is not running.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
