package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-wu-catalog/internal/adapter"
	"github.com/MKhiriev/go-wu-catalog/internal/logger"
	"github.com/MKhiriev/go-wu-catalog/models"
)

type resolver struct {
	catalogAdapter adapter.CatalogAdapter

	logger *logger.Logger
}

func NewResolver(catalogAdapter adapter.CatalogAdapter, logger *logger.Logger) FileResolver {
	return &resolver{
		catalogAdapter: catalogAdapter,
		logger:         logger,
	}
}

// GetFileURL implements FileResolver. A digest that only appears as an
// additional digest on the record's file list is first translated to the
// primary digest the service keys locations by.
func (r *resolver) GetFileURL(ctx context.Context, record *models.UpdateRecord, digest string) (*models.FileDownloadInfo, error) {
	if record != nil && record.Xml != nil {
		if f, ok := record.Xml.FileByAdditionalDigest(digest); ok {
			digest = f.Digest
		}
	}

	locations, err := r.fileLocations(ctx, record)
	if err != nil {
		return nil, err
	}

	for _, loc := range locations {
		if loc.FileDigest == digest {
			info := toDownloadInfo(loc)
			return &info, nil
		}
	}

	r.logger.Debug().
		Uint64("update_id", record.ID).
		Str("digest", digest).
		Msg("file not listed by service")
	return nil, nil
}

// GetFileURLs implements FileResolver.
func (r *resolver) GetFileURLs(ctx context.Context, record *models.UpdateRecord) ([]models.FileDownloadInfo, error) {
	locations, err := r.fileLocations(ctx, record)
	if err != nil {
		return nil, err
	}

	infos := make([]models.FileDownloadInfo, 0, len(locations))
	for _, loc := range locations {
		infos = append(infos, toDownloadInfo(loc))
	}
	return infos, nil
}

// GetExtendedInfo implements FileResolver. It opens a fresh session and asks
// for the extended fragments of the record's revision.
func (r *resolver) GetExtendedInfo(ctx context.Context, record *models.UpdateRecord) (adapter.ExtendedInfoResult, error) {
	if record == nil {
		return adapter.ExtendedInfoResult{}, ErrMissingIdentity
	}

	cookie, err := r.catalogAdapter.GetCookie(ctx)
	if err != nil {
		return adapter.ExtendedInfoResult{}, fmt.Errorf("error getting session cookie: %w", err)
	}

	return r.catalogAdapter.GetExtendedUpdateInfo(ctx, adapter.ExtendedInfoRequest{
		Cookie:           cookie,
		RevisionIDs:      []string{strconv.FormatUint(record.ID, 10)},
		DeviceAttributes: record.Profile.DeviceAttributes,
	})
}

func (r *resolver) fileLocations(ctx context.Context, record *models.UpdateRecord) ([]adapter.FileLocation, error) {
	if record == nil || record.Xml == nil || record.Xml.UpdateIdentity.UpdateID == "" {
		return nil, ErrMissingIdentity
	}

	identity := record.Xml.UpdateIdentity
	locations, err := r.catalogAdapter.GetExtendedUpdateInfo2(ctx, adapter.FileLocationsRequest{
		UpdateID:         identity.UpdateID,
		RevisionNumber:   identity.RevisionNumber,
		DeviceAttributes: record.Profile.DeviceAttributes,
	})
	if err != nil {
		return nil, fmt.Errorf("error resolving files of update %d: %w", record.ID, err)
	}
	return locations, nil
}

func toDownloadInfo(loc adapter.FileLocation) models.FileDownloadInfo {
	info := models.FileDownloadInfo{
		URL:    loc.URL,
		Digest: loc.FileDigest,
	}
	if loc.EsrpDecryptionInformation != "" {
		info.DecryptionInfo = []byte(loc.EsrpDecryptionInformation)
	}
	return info
}
