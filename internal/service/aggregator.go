package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-wu-catalog/internal/adapter"
	"github.com/MKhiriev/go-wu-catalog/internal/config"
	"github.com/MKhiriev/go-wu-catalog/internal/logger"
	"github.com/MKhiriev/go-wu-catalog/internal/metrics"
	"github.com/MKhiriev/go-wu-catalog/internal/targeting"
	"github.com/MKhiriev/go-wu-catalog/internal/utils"
	"github.com/MKhiriev/go-wu-catalog/models"
)

type aggregator struct {
	pager       SyncPager
	rings       func(models.MachineType) []targeting.RingProfile
	maxParallel int

	logger *logger.Logger
}

// NewAggregator returns a Discoverer that syncs every ring of
// [targeting.Rings] through pager, at most cfg.MaxParallelProfiles at a time.
func NewAggregator(pager SyncPager, cfg config.Workers, logger *logger.Logger) Discoverer {
	maxParallel := cfg.MaxParallelProfiles
	if maxParallel < 1 {
		maxParallel = 1
	}

	return &aggregator{
		pager:       pager,
		rings:       targeting.Rings,
		maxParallel: maxParallel,
		logger:      logger,
	}
}

// Discover implements Discoverer. A ring that fails contributes nothing;
// cancellation returns whatever the finished rings produced.
func (a *aggregator) Discover(ctx context.Context, machine models.MachineType, contentType string) []models.UpdateRecord {
	start := time.Now()
	rings := a.rings(machine)
	pages := make([][]adapter.SyncResult, len(rings))

	var g errgroup.Group
	g.SetLimit(a.maxParallel)
	for i, ring := range rings {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			pages[i] = a.syncRing(ctx, ring)
			return nil
		})
	}
	_ = g.Wait()

	records := a.dedup(rings, pages)
	kept := filterRelevant(records, contentType)

	metrics.RecordDiscovery(time.Since(start), len(kept))
	a.logger.Info().
		Str("machine", machine.String()).
		Int("rings", len(rings)).
		Int("candidates", len(records)).
		Int("kept", len(kept)).
		Dur("took", time.Since(start)).
		Msg("discovery finished")

	return kept
}

func (a *aggregator) syncRing(ctx context.Context, ring targeting.RingProfile) []adapter.SyncResult {
	log := a.logger.ForRing(ring.Label)

	result, err := a.pager.Sync(utils.WithRing(ctx, ring.Label), ring.Profile, nil)
	switch {
	case err == nil:
		return result
	case errors.Is(err, ErrPageLimitExceeded):
		log.Warn().Err(err).Int("pages", len(result)).Msg("ring hit the page limit, keeping collected pages")
		return result
	case ctx.Err() != nil:
		log.Debug().Err(err).Msg("ring sync cancelled")
		return nil
	default:
		log.Error().Err(err).Msg("ring sync failed")
		metrics.ProfileFailures.WithLabelValues(ring.Label).Inc()
		return nil
	}
}

type candidate struct {
	ring   int
	page   int
	record models.UpdateRecord
}

// metadataKey identifies a build across rings by its metadata payload.
type metadataKey struct {
	digest string
	files  int
}

// dedup runs after all workers joined. Candidates are visited in
// (ring, page, id) order so the result does not depend on which worker
// finished first.
func (a *aggregator) dedup(rings []targeting.RingProfile, pages [][]adapter.SyncResult) []models.UpdateRecord {
	var candidates []candidate
	for ri, ringPages := range pages {
		for pi, page := range ringPages {
			records, errs := Assemble(page, rings[ri].Profile)
			if len(errs) > 0 {
				a.logger.ForRing(rings[ri].Label).Warn().
					Err(errors.Join(errs...)).
					Int("page", pi+1).
					Int("dropped", len(errs)).
					Msg("dropped malformed updates")
			}
			for _, r := range records {
				candidates = append(candidates, candidate{ring: ri, page: pi, record: r})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ci, cj := candidates[i], candidates[j]
		if ci.ring != cj.ring {
			return ci.ring < cj.ring
		}
		if ci.page != cj.page {
			return ci.page < cj.page
		}
		return ci.record.ID < cj.record.ID
	})

	var out []models.UpdateRecord
	byID := make(map[uint64]int)
	byMetadata := make(map[metadataKey]int)

	for _, c := range candidates {
		if idx, ok := byID[c.record.ID]; ok {
			MergeInto(&out[idx], c.record)
			continue
		}

		if meta, ok := c.record.Xml.MetadataFile(); ok {
			key := metadataKey{digest: meta.Digest, files: len(c.record.Xml.Files)}
			if idx, dup := byMetadata[key]; dup {
				byID[c.record.ID] = idx
				continue
			}
			byMetadata[key] = len(out)
		}

		byID[c.record.ID] = len(out)
		out = append(out, c.record)
	}

	return out
}

// filterRelevant keeps records that have extended properties of the
// requested content type and at least one file.
func filterRelevant(records []models.UpdateRecord, contentType string) []models.UpdateRecord {
	kept := make([]models.UpdateRecord, 0, len(records))
	for _, r := range records {
		if r.Xml == nil || r.Xml.ExtendedProperties == nil {
			continue
		}
		if r.Xml.ExtendedProperties.ContentType != contentType {
			continue
		}
		if len(r.Xml.Files) == 0 {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}
