package service

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-wu-catalog/internal/adapter"
	"github.com/MKhiriev/go-wu-catalog/models"
)

// Assemble pairs the Update and UpdateInfo fragments of one page by numeric
// id and parses them into records. A record whose id does not parse, whose
// pair is missing, or whose embedded documents are malformed is dropped and
// reported in the error slice; the rest of the page is still returned.
func Assemble(page adapter.SyncResult, profile models.TargetingProfile) ([]models.UpdateRecord, []error) {
	var errs []error

	infos := make(map[uint64]models.RawUpdateInfo, len(page.UpdateInfos))
	for _, info := range page.UpdateInfos {
		id, err := parseUpdateID(info.ID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := infos[id]; !dup {
			infos[id] = info
		}
	}

	records := make([]models.UpdateRecord, 0, len(page.Updates))
	for _, update := range page.Updates {
		id, err := parseUpdateID(update.ID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		info, ok := infos[id]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %d", ErrMissingUpdateInfo, id))
			continue
		}

		record, err := assembleRecord(id, update, info)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		record.Profile = profile
		record.SyncResponse = page.RawBody

		records = append(records, record)
	}

	return records, errs
}

func assembleRecord(id uint64, update models.RawUpdate, info models.RawUpdateInfo) (models.UpdateRecord, error) {
	descriptor, err := parseDescriptor(update.Xml, info.Xml)
	if err != nil {
		return models.UpdateRecord{}, fmt.Errorf("update %d: %w", id, err)
	}

	record := models.UpdateRecord{
		ID:         id,
		Update:     update,
		UpdateInfo: info,
		Xml:        descriptor,
	}

	if blob, ok := descriptor.ApplicabilityBlob(); ok {
		appx, err := parseAppxMetadata(blob)
		if err != nil {
			return models.UpdateRecord{}, fmt.Errorf("update %d: %w", id, err)
		}
		record.AppxMetadata = appx
	}

	return record, nil
}

func parseUpdateID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidUpdateID, raw, err)
	}
	return id, nil
}

// parseDescriptor parses the concatenation of the escaped fragments as one
// <Xml> document.
func parseDescriptor(fragments ...string) (*models.UpdateDescriptor, error) {
	var b strings.Builder
	b.WriteString("<Xml>")
	for _, f := range fragments {
		b.WriteString(f)
	}
	b.WriteString("</Xml>")

	var d models.UpdateDescriptor
	if err := xml.Unmarshal([]byte(b.String()), &d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedXML, err)
	}
	return &d, nil
}

func parseAppxMetadata(blob string) (*models.AppxMetadata, error) {
	var appx models.AppxMetadata
	if err := json.Unmarshal([]byte(blob), &appx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedAppx, err)
	}
	if err := json.Unmarshal([]byte(blob), &appx.Raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedAppx, err)
	}
	return &appx, nil
}

// MergeInto patches existing with data only incoming carries. The first
// non-nil LocalizedProperties wins; existing data is never overwritten.
func MergeInto(existing *models.UpdateRecord, incoming models.UpdateRecord) {
	if existing == nil || incoming.Xml == nil {
		return
	}
	if existing.Xml == nil {
		existing.Xml = incoming.Xml
		return
	}
	if existing.Xml.LocalizedProperties == nil && incoming.Xml.LocalizedProperties != nil {
		lp := *incoming.Xml.LocalizedProperties
		existing.Xml.LocalizedProperties = &lp
	}
	if existing.AppxMetadata == nil {
		existing.AppxMetadata = incoming.AppxMetadata
	}
}

// RecordFromCache rebuilds an UpdateRecord from a persisted snapshot row.
func RecordFromCache(cb models.CachedBuild) (*models.UpdateRecord, error) {
	id := strconv.FormatUint(cb.UpdateID, 10)
	page := adapter.SyncResult{
		UpdateInfos: []models.RawUpdateInfo{{ID: id, Xml: cb.UpdateInfoXml}},
		Updates:     []models.RawUpdate{{ID: id, Xml: cb.UpdateXml}},
	}
	profile := models.TargetingProfile{
		DeviceAttributes:       cb.DeviceAttributes,
		CallerAttributes:       cb.CallerAttributes,
		Products:               cb.Products,
		SyncCurrentVersionOnly: cb.SyncCurrentOnly,
		Ring:                   cb.Ring,
	}

	records, errs := Assemble(page, profile)
	if len(records) == 0 {
		return nil, fmt.Errorf("cached build %d: %w", cb.UpdateID, errors.Join(errs...))
	}

	record := &records[0]
	if cb.LocalizedTitle != "" || cb.LocalizedDescription != "" {
		MergeInto(record, models.UpdateRecord{Xml: &models.UpdateDescriptor{
			LocalizedProperties: &models.LocalizedProperties{
				Language:    cb.Language,
				Title:       cb.LocalizedTitle,
				Description: cb.LocalizedDescription,
			},
		}})
	}
	return record, nil
}
