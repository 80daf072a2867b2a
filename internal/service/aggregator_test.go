package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wu-catalog/internal/adapter"
	"github.com/MKhiriev/go-wu-catalog/internal/config"
	"github.com/MKhiriev/go-wu-catalog/internal/logger"
	"github.com/MKhiriev/go-wu-catalog/internal/targeting"
	"github.com/MKhiriev/go-wu-catalog/models"
)

// fakePager answers per ring label. It is safe for concurrent use.
type fakePager struct {
	pages map[string][]adapter.SyncResult
	errs  map[string]error
	delay map[string]time.Duration

	active    atomic.Int32
	maxActive atomic.Int32

	mu    sync.Mutex
	calls []string
}

func (f *fakePager) Sync(ctx context.Context, profile models.TargetingProfile, _ []string) ([]adapter.SyncResult, error) {
	n := f.active.Add(1)
	defer f.active.Add(-1)
	for {
		cur := f.maxActive.Load()
		if n <= cur || f.maxActive.CompareAndSwap(cur, n) {
			break
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, profile.Ring)
	f.mu.Unlock()

	if d := f.delay[profile.Ring]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.pages[profile.Ring], f.errs[profile.Ring]
}

func testRings(labels ...string) func(models.MachineType) []targeting.RingProfile {
	return func(models.MachineType) []targeting.RingProfile {
		rings := make([]targeting.RingProfile, 0, len(labels))
		for _, l := range labels {
			rings = append(rings, targeting.RingProfile{Label: l, Profile: models.TargetingProfile{Ring: l}})
		}
		return rings
	}
}

func newTestAggregator(p SyncPager, maxParallel int, labels ...string) *aggregator {
	return &aggregator{
		pager:       p,
		rings:       testRings(labels...),
		maxParallel: maxParallel,
		logger:      logger.Nop(),
	}
}

func ids(records []models.UpdateRecord) []uint64 {
	out := make([]uint64, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestNewAggregator_UsesRingCatalog(t *testing.T) {
	d := NewAggregator(&fakePager{}, config.Workers{MaxParallelProfiles: 0}, logger.Nop())

	a, ok := d.(*aggregator)
	require.True(t, ok)
	assert.Equal(t, 1, a.maxParallel)
	assert.Len(t, a.rings(models.MachineAMD64), len(targeting.Rings(models.MachineAMD64)))
}

func TestAggregator_Discover_OrderIndependent(t *testing.T) {
	shared := fixture{id: 10, guid: "g10", revision: "1", created: "2024-01-01T00:00:00Z", metaName: "a.cab", metaDigest: "D1", extraFiles: 1}

	for _, slow := range []string{"A", "B"} {
		t.Run("slow "+slow, func(t *testing.T) {
			p := &fakePager{
				pages: map[string][]adapter.SyncResult{
					"A": {page(shared)},
					"B": {page(shared)},
				},
				delay: map[string]time.Duration{slow: 30 * time.Millisecond},
			}

			got := newTestAggregator(p, 2, "A", "B").Discover(testContext(), models.MachineAMD64, models.ContentTypeProductRelease)

			require.Len(t, got, 1)
			assert.Equal(t, "A", got[0].Profile.Ring)
		})
	}
}

func TestAggregator_Discover_Dedup(t *testing.T) {
	created := "2024-01-01T00:00:00Z"

	p := &fakePager{
		pages: map[string][]adapter.SyncResult{
			"A": {
				page(fixture{id: 1, guid: "g1", revision: "1", created: created, metaName: "m.cab", metaDigest: "D", extraFiles: 2}),
				page(fixture{id: 5, guid: "g5", revision: "1", created: created, extraFiles: 1}),
			},
			"B": {
				page(
					// same metadata payload under another id: dropped
					fixture{id: 2, guid: "g2", revision: "1", created: created, metaName: "m.cab", metaDigest: "D", extraFiles: 2},
					// same digest, different file count: kept
					fixture{id: 3, guid: "g3", revision: "1", created: created, metaName: "m.cab", metaDigest: "D", extraFiles: 3},
					// exact id seen before: merged, carries the title
					fixture{id: 5, guid: "g5", revision: "1", created: created, extraFiles: 1, title: "Feature update"},
				),
			},
		},
	}

	got := newTestAggregator(p, 4, "A", "B").Discover(testContext(), models.MachineAMD64, models.ContentTypeProductRelease)

	assert.Equal(t, []uint64{1, 5, 3}, ids(got))

	merged := got[1]
	assert.Equal(t, "A", merged.Profile.Ring)
	require.NotNil(t, merged.Xml.LocalizedProperties)
	assert.Equal(t, "Feature update", merged.Xml.LocalizedProperties.Title)
}

func TestAggregator_Discover_FiltersIrrelevant(t *testing.T) {
	p := &fakePager{
		pages: map[string][]adapter.SyncResult{
			"A": {page(
				fixture{id: 1, guid: "g1", revision: "1", extraFiles: 1},
				fixture{id: 2, guid: "g2", revision: "1", extraFiles: 1, contentType: models.ContentTypeApplication},
				fixture{id: 3, guid: "g3", revision: "1"},
			)},
		},
	}

	got := newTestAggregator(p, 1, "A").Discover(testContext(), models.MachineAMD64, models.ContentTypeProductRelease)
	assert.Equal(t, []uint64{1}, ids(got))

	got = newTestAggregator(p, 1, "A").Discover(testContext(), models.MachineAMD64, models.ContentTypeApplication)
	assert.Equal(t, []uint64{2}, ids(got))
}

func TestAggregator_Discover_ToleratesRingFailures(t *testing.T) {
	p := &fakePager{
		pages: map[string][]adapter.SyncResult{
			"A": {page(fixture{id: 1, guid: "g1", revision: "1", extraFiles: 1})},
			"B": {page(fixture{id: 2, guid: "g2", revision: "1", extraFiles: 1})},
			"C": {page(fixture{id: 3, guid: "g3", revision: "1", extraFiles: 1})},
		},
		errs: map[string]error{
			"B": errors.New("service unavailable"),
			"C": ErrPageLimitExceeded,
		},
	}

	got := newTestAggregator(p, 3, "A", "B", "C").Discover(testContext(), models.MachineAMD64, models.ContentTypeProductRelease)

	// a failed ring contributes nothing; a capped ring keeps its pages
	assert.Equal(t, []uint64{1, 3}, ids(got))
}

func TestAggregator_Discover_DropsMalformedRecordsOnly(t *testing.T) {
	bad := page(fixture{id: 1, guid: "g1", revision: "1", extraFiles: 1})
	bad.Updates = append(bad.Updates, models.RawUpdate{ID: "not-a-number", Xml: "<Files/>"})
	bad.Updates = append(bad.Updates, models.RawUpdate{ID: "77", Xml: "<Files/>"})

	p := &fakePager{pages: map[string][]adapter.SyncResult{"A": {bad}}}

	got := newTestAggregator(p, 1, "A").Discover(testContext(), models.MachineAMD64, models.ContentTypeProductRelease)
	assert.Equal(t, []uint64{1}, ids(got))
}

func TestAggregator_Discover_BoundedParallelism(t *testing.T) {
	labels := []string{"A", "B", "C", "D", "E", "F"}
	p := &fakePager{delay: map[string]time.Duration{}}
	for _, l := range labels {
		p.delay[l] = 20 * time.Millisecond
	}

	newTestAggregator(p, 2, labels...).Discover(testContext(), models.MachineAMD64, models.ContentTypeProductRelease)

	assert.LessOrEqual(t, p.maxActive.Load(), int32(2))
	assert.Len(t, p.calls, len(labels))
}

func TestAggregator_Discover_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	p := &fakePager{
		pages: map[string][]adapter.SyncResult{
			"A": {page(fixture{id: 1, guid: "g1", revision: "1", extraFiles: 1})},
		},
	}

	got := newTestAggregator(p, 1, "A").Discover(ctx, models.MachineAMD64, models.ContentTypeProductRelease)
	assert.Empty(t, got)
}

func TestFilterRelevant(t *testing.T) {
	withFiles := record(fixture{id: 1, guid: "g", revision: "1", extraFiles: 1}, models.TargetingProfile{})
	noXML := models.UpdateRecord{ID: 2}

	got := filterRelevant([]models.UpdateRecord{noXML, withFiles}, models.ContentTypeProductRelease)
	assert.Equal(t, []uint64{1}, ids(got))
}
