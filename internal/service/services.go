package service

import (
	"github.com/MKhiriev/go-wu-catalog/internal/adapter"
	"github.com/MKhiriev/go-wu-catalog/internal/archive"
	"github.com/MKhiriev/go-wu-catalog/internal/config"
	"github.com/MKhiriev/go-wu-catalog/internal/logger"
	"github.com/MKhiriev/go-wu-catalog/internal/store"
	"github.com/MKhiriev/go-wu-catalog/models"
)

// cabExtractBinary is looked up in PATH.
const cabExtractBinary = "cabextract"

type Services struct {
	CatalogService  CatalogService
	SnapshotService SnapshotService
	RefreshJob      RefreshJob
}

// NewServices wires the catalog engine on top of catalogAdapter. storages
// may be nil, in which case no snapshot service or refresh job is built.
func NewServices(catalogAdapter adapter.CatalogAdapter, storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	pager := NewPager(catalogAdapter, cfg.Catalog, logger)
	catalog := NewCatalogService(CatalogDeps{
		Discoverer: NewAggregator(pager, cfg.Workers, logger),
		Resolver:   NewResolver(catalogAdapter, logger),
		Archive:    archive.NewCabExtract(cabExtractBinary, logger),
		Downloader: NewHTTPDownloader(cfg.Adapter),
	}, cfg.Catalog, logger)

	services := &Services{CatalogService: catalog}
	if storages == nil {
		return services
	}

	services.SnapshotService = NewSnapshotService(storages.BuildRepository, logger)

	var machines []models.MachineType
	if machine, ok := models.ParseMachineType(cfg.Catalog.Machine); ok {
		machines = append(machines, machine)
	}
	services.RefreshJob = NewRefreshJob(catalog, services.SnapshotService, machines, logger)

	return services
}
