package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wu-catalog/internal/logger"
	"github.com/MKhiriev/go-wu-catalog/internal/store"
	"github.com/MKhiriev/go-wu-catalog/models"
)

type snapshotService struct {
	repo  store.BuildRepository
	retry RetryConfig
	now   func() time.Time

	logger *logger.Logger
}

func NewSnapshotService(repo store.BuildRepository, logger *logger.Logger) SnapshotService {
	return &snapshotService{
		repo:   repo,
		retry:  DefaultRetryConfig,
		now:    time.Now,
		logger: logger,
	}
}

// SaveBuilds implements SnapshotService. Builds without a backing record are
// skipped, and an empty result never replaces the stored snapshot. Transient
// store failures are retried.
func (s *snapshotService) SaveBuilds(ctx context.Context, machine models.MachineType, builds []models.AvailableBuild) error {
	if machine.String() == "" {
		return fmt.Errorf("%w: %d", ErrUnknownMachine, machine)
	}

	fetchedAt := s.now().UTC()
	rows := make([]models.CachedBuild, 0, len(builds))
	for _, b := range builds {
		if b.Update == nil {
			continue
		}
		rows = append(rows, toCachedBuild(machine, b, fetchedAt))
	}
	if len(rows) == 0 {
		s.logger.Warn().Str("machine", machine.String()).Msg("no builds to save, snapshot left unchanged")
		return nil
	}

	return Retry(ctx, s.retry, func(ctx context.Context) error {
		err := s.repo.SaveSnapshot(ctx, machine.String(), rows)
		if err != nil && !errors.Is(err, store.ErrRetryable) {
			return Permanent(err)
		}
		return err
	})
}

func toCachedBuild(machine models.MachineType, b models.AvailableBuild, fetchedAt time.Time) models.CachedBuild {
	r := b.Update
	cb := models.CachedBuild{
		UpdateID:         r.ID,
		Machine:          machine.String(),
		Ring:             b.Ring,
		Title:            b.Title,
		Description:      b.Description,
		BuildNumber:      b.BuildNumber,
		Created:          b.Created,
		UpdateXml:        r.Update.Xml,
		UpdateInfoXml:    r.UpdateInfo.Xml,
		DeviceAttributes: r.Profile.DeviceAttributes,
		CallerAttributes: r.Profile.CallerAttributes,
		Products:         r.Profile.Products,
		SyncCurrentOnly:  r.Profile.SyncCurrentVersionOnly,
		FetchedAt:        fetchedAt,
	}
	if r.Xml != nil {
		cb.UpdateGUID = r.Xml.UpdateIdentity.UpdateID
		cb.RevisionNumber = r.Xml.UpdateIdentity.RevisionNumber
		if r.Xml.ExtendedProperties != nil {
			cb.ContentType = r.Xml.ExtendedProperties.ContentType
		}
		if lp := r.Xml.LocalizedProperties; lp != nil {
			cb.Language = lp.Language
			cb.LocalizedTitle = lp.Title
			cb.LocalizedDescription = lp.Description
		}
	}
	return cb
}

// ListBuilds implements SnapshotService.
func (s *snapshotService) ListBuilds(ctx context.Context, machine models.MachineType) ([]models.CachedBuild, error) {
	if machine.String() == "" {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMachine, machine)
	}
	return s.repo.ListBuilds(ctx, machine.String())
}

// GetRecord implements SnapshotService. It reassembles the stored protocol
// fragments into an UpdateRecord usable by the file resolver.
func (s *snapshotService) GetRecord(ctx context.Context, updateID uint64) (*models.UpdateRecord, error) {
	cb, err := s.repo.GetBuild(ctx, updateID)
	if errors.Is(err, store.ErrBuildNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrBuildNotFound, updateID)
	}
	if err != nil {
		return nil, err
	}

	record, err := RecordFromCache(cb)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "snapshotService.GetRecord").
			Uint64("update_id", updateID).
			Msg("stored build could not be reassembled")
		return nil, err
	}
	return record, nil
}
