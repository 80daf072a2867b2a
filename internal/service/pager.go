package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wu-catalog/internal/adapter"
	"github.com/MKhiriev/go-wu-catalog/internal/config"
	"github.com/MKhiriev/go-wu-catalog/internal/logger"
	"github.com/MKhiriev/go-wu-catalog/internal/metrics"
	"github.com/MKhiriev/go-wu-catalog/models"
)

// baselineUpdateIDs are reported as already known on every sync request.
// They are the category and detectoid revisions a freshly installed client
// carries.
var baselineUpdateIDs = []string{
	"1", "2", "3", "11", "19", "544", "549", "2359974", "2359977", "5169044",
	"8788830", "23110993", "23110994", "54341900", "54343656", "59830006",
	"59830007", "59830008", "60484010", "62450018", "62450019", "62450020",
	"66027979", "66053150", "97657898", "98822896", "98959022", "98959023",
	"98959024", "98959025", "98959026", "104433538", "104900364", "105489019",
	"117765322", "129905029", "130040031", "132387090", "132393049",
	"133399034", "138537048", "140377312", "143747671", "158941041",
	"158941042", "158941043", "158941044", "159123858", "159130928",
	"164836897", "164847386", "164848327", "164852241", "164852246",
	"164852252", "164852253",
}

type pager struct {
	catalogAdapter adapter.CatalogAdapter
	maxPages       int

	logger *logger.Logger
}

// NewPager returns a SyncPager over catalogAdapter. cfg.MaxPages caps the
// number of non-empty pages per run; zero disables the cap.
func NewPager(catalogAdapter adapter.CatalogAdapter, cfg config.Catalog, logger *logger.Logger) SyncPager {
	return &pager{
		catalogAdapter: catalogAdapter,
		maxPages:       cfg.MaxPages,
		logger:         logger,
	}
}

// Sync implements SyncPager. Pages are requested strictly one after another
// because each request carries the cookie returned by the previous one.
func (p *pager) Sync(ctx context.Context, profile models.TargetingProfile, categoryIDs []string) ([]adapter.SyncResult, error) {
	log := p.logger.ForRing(profile.Ring)

	cookie, err := p.catalogAdapter.GetCookie(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting session cookie: %w", err)
	}
	session := newSyncSession(cookie)

	var pages []adapter.SyncResult
	for {
		if err = ctx.Err(); err != nil {
			return pages, err
		}
		if p.maxPages > 0 && len(pages) >= p.maxPages {
			return pages, fmt.Errorf("%w: stopped after %d pages", ErrPageLimitExceeded, len(pages))
		}

		page, err := p.catalogAdapter.SyncUpdates(ctx, adapter.SyncRequest{
			Cookie:              session.cookie,
			Profile:             profile,
			InstalledNonLeafIDs: session.installedNonLeaf.list(),
			OtherCachedIDs:      session.otherCached.list(),
			CategoryIDs:         categoryIDs,
		})
		if err != nil {
			return pages, fmt.Errorf("error syncing page %d: %w", len(pages)+1, err)
		}

		session.cookie = page.NewCookie
		if page.Empty() {
			break
		}

		pages = append(pages, page)
		session.observe(page)
		metrics.SyncPages.WithLabelValues(profile.Ring).Inc()

		log.Debug().
			Int("page", len(pages)).
			Int("updates", len(page.UpdateInfos)).
			Msg("received sync page")
	}

	return pages, nil
}

// syncSession is the per-run pagination state. It is never shared between
// runs or goroutines.
type syncSession struct {
	cookie           adapter.Cookie
	installedNonLeaf *idSet
	otherCached      *idSet
}

func newSyncSession(cookie adapter.Cookie) *syncSession {
	return &syncSession{
		cookie:           cookie,
		installedNonLeaf: newIDSet(baselineUpdateIDs),
		otherCached:      newIDSet(baselineUpdateIDs),
	}
}

func (s *syncSession) observe(page adapter.SyncResult) {
	for _, info := range page.UpdateInfos {
		s.installedNonLeaf.add(info.ID)
		s.otherCached.add(info.ID)
	}
}

// idSet is an insertion-ordered set of update ids.
type idSet struct {
	seen  map[string]struct{}
	order []string
}

func newIDSet(seed []string) *idSet {
	s := &idSet{seen: make(map[string]struct{}, len(seed))}
	for _, id := range seed {
		s.add(id)
	}
	return s
}

func (s *idSet) add(id string) {
	if id == "" {
		return
	}
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *idSet) list() []string {
	return append([]string(nil), s.order...)
}
