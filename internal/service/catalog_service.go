package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/MKhiriev/go-wu-catalog/internal/archive"
	"github.com/MKhiriev/go-wu-catalog/internal/config"
	"github.com/MKhiriev/go-wu-catalog/internal/logger"
	"github.com/MKhiriev/go-wu-catalog/internal/utils"
	"github.com/MKhiriev/go-wu-catalog/models"
)

var (
	buildNumberPattern = regexp.MustCompile(`^\d+\.\d+(\.\d+)*`)
	compDBPattern      = regexp.MustCompile(`(?i)^DesktopTargetCompDB_(?:([A-Za-z0-9]+)_)?([a-z]{2,3}(?:-[a-z0-9]+)*)\.xml\.cab$`)
)

type catalogService struct {
	discoverer Discoverer
	resolver   FileResolver
	archive    archive.Archive
	downloader Downloader
	decrypter  Decrypter

	contentType string
	workDir     string
	retry       RetryConfig

	logger *logger.Logger
}

// CatalogDeps groups the collaborators of NewCatalogService. Decrypter may
// be nil, in which case encrypted files cannot be downloaded.
type CatalogDeps struct {
	Discoverer Discoverer
	Resolver   FileResolver
	Archive    archive.Archive
	Downloader Downloader
	Decrypter  Decrypter
}

func NewCatalogService(deps CatalogDeps, cfg config.Catalog, logger *logger.Logger) CatalogService {
	return &catalogService{
		discoverer:  deps.Discoverer,
		resolver:    deps.Resolver,
		archive:     deps.Archive,
		downloader:  deps.Downloader,
		decrypter:   deps.Decrypter,
		contentType: cfg.ContentType,
		workDir:     os.TempDir(),
		retry:       DefaultRetryConfig,
		logger:      logger,
	}
}

// GetAvailableBuilds implements CatalogService. Builds are sorted newest
// first. Records without localized properties get one extended info lookup
// to fill them in; failures there only leave the title empty.
func (s *catalogService) GetAvailableBuilds(ctx context.Context, machine models.MachineType) ([]models.AvailableBuild, error) {
	if machine.String() == "" {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMachine, machine)
	}

	records := s.discoverer.Discover(ctx, machine, s.contentType)

	builds := make([]models.AvailableBuild, 0, len(records))
	for i := range records {
		record := &records[i]
		if record.Xml.LocalizedProperties == nil {
			s.refreshLocalizedProperties(ctx, record)
		}
		builds = append(builds, projectBuild(record))
	}

	sort.SliceStable(builds, func(i, j int) bool {
		return builds[i].Created.After(builds[j].Created)
	})

	return builds, nil
}

func (s *catalogService) refreshLocalizedProperties(ctx context.Context, record *models.UpdateRecord) {
	log := s.logger.With().Uint64("update_id", record.ID).Logger()

	res, err := s.resolver.GetExtendedInfo(ctx, record)
	if err != nil {
		log.Warn().Err(err).Msg("could not refresh localized properties")
		return
	}

	for _, u := range res.Updates {
		descriptor, err := parseDescriptor(u.Xml)
		if err != nil {
			log.Warn().Err(err).Msg("skipping malformed extended fragment")
			continue
		}
		MergeInto(record, models.UpdateRecord{Xml: descriptor})
		if record.Xml.LocalizedProperties != nil {
			return
		}
	}
}

func projectBuild(record *models.UpdateRecord) models.AvailableBuild {
	build := models.AvailableBuild{
		Ring:   record.Profile.Ring,
		Update: record,
	}

	if lp := record.Xml.LocalizedProperties; lp != nil {
		build.Title = lp.Title
		build.Description = lp.Description
	}
	if ep := record.Xml.ExtendedProperties; ep != nil {
		build.Created = ep.Created()
		if build.Title == "" {
			build.Title = ep.ProductName
		}
	}

	if meta, ok := record.Xml.MetadataFile(); ok {
		build.BuildNumber = buildNumberPattern.FindString(meta.FileName)
	}
	if build.BuildNumber != "" {
		build.Title = fmt.Sprintf("%s (%s)", build.Title, build.BuildNumber)
	}

	return build
}

// GetAvailableBuildLanguages implements CatalogService. A record without a
// metadata file has no languages: nil, nil.
func (s *catalogService) GetAvailableBuildLanguages(ctx context.Context, record *models.UpdateRecord) ([]string, error) {
	entries, err := s.compDBEntries(ctx, record)
	if err != nil || entries == nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var langs []string
	for _, e := range entries {
		if _, ok := seen[e.lang]; ok {
			continue
		}
		seen[e.lang] = struct{}{}
		langs = append(langs, e.lang)
	}
	sort.Strings(langs)
	return langs, nil
}

// GetAvailableEditions implements CatalogService.
func (s *catalogService) GetAvailableEditions(ctx context.Context, record *models.UpdateRecord, lang string) ([]string, error) {
	entries, err := s.compDBEntries(ctx, record)
	if err != nil || entries == nil {
		return nil, err
	}

	lang = strings.ToLower(strings.TrimSpace(lang))
	seen := make(map[string]struct{})
	var editions []string
	for _, e := range entries {
		if e.edition == "" || e.lang != lang {
			continue
		}
		if _, ok := seen[e.edition]; ok {
			continue
		}
		seen[e.edition] = struct{}{}
		editions = append(editions, e.edition)
	}
	sort.Strings(editions)
	return editions, nil
}

type compDBEntry struct {
	edition string
	lang    string
}

func parseCompDBName(name string) (compDBEntry, bool) {
	m := compDBPattern.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return compDBEntry{}, false
	}
	return compDBEntry{edition: m[1], lang: strings.ToLower(m[2])}, true
}

// compDBEntries downloads the metadata cabinet of record and parses the
// composition database names it lists.
func (s *catalogService) compDBEntries(ctx context.Context, record *models.UpdateRecord) ([]compDBEntry, error) {
	if record == nil || record.Xml == nil {
		return nil, ErrMissingIdentity
	}
	meta, ok := record.Xml.MetadataFile()
	if !ok {
		return nil, nil
	}

	info, err := s.resolver.GetFileURL(ctx, record, meta.Digest)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, nil
	}

	dir, err := os.MkdirTemp(s.workDir, "wu-metadata-")
	if err != nil {
		return nil, fmt.Errorf("error creating work dir: %w", err)
	}
	defer os.RemoveAll(dir)

	cabPath := filepath.Join(dir, filepath.Base(meta.FileName))
	if err = s.DownloadFile(ctx, *info, cabPath); err != nil {
		return nil, err
	}

	names, err := s.archive.ListEntries(ctx, cabPath)
	if err != nil {
		return nil, fmt.Errorf("error listing %s: %w", meta.FileName, err)
	}

	entries := make([]compDBEntry, 0, len(names))
	for _, n := range names {
		if e, ok := parseCompDBName(n); ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// GetFileURL implements CatalogService.
func (s *catalogService) GetFileURL(ctx context.Context, record *models.UpdateRecord, digest string) (*models.FileDownloadInfo, error) {
	return s.resolver.GetFileURL(ctx, record, digest)
}

// GetFileURLs implements CatalogService.
func (s *catalogService) GetFileURLs(ctx context.Context, record *models.UpdateRecord) ([]models.FileDownloadInfo, error) {
	return s.resolver.GetFileURLs(ctx, record)
}

// DownloadFile implements CatalogService. The transfer is retried, the
// result is checked against info.Digest, and encrypted files are handed to
// the decrypter before landing at dest.
func (s *catalogService) DownloadFile(ctx context.Context, info models.FileDownloadInfo, dest string) error {
	if info.Encrypted() && s.decrypter == nil {
		return ErrDecrypterUnavailable
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("error creating %s: %w", filepath.Dir(dest), err)
	}

	target := dest
	if info.Encrypted() {
		target = dest + ".encrypted"
		defer os.Remove(target)
	}

	err := Retry(ctx, s.retry, func(ctx context.Context) error {
		if err := s.downloader.Download(ctx, info.URL, target); err != nil {
			return err
		}
		return verifyDigest(target, info.Digest)
	})
	if err != nil {
		return err
	}

	if !info.Encrypted() {
		return nil
	}

	ok, err := s.decrypter.Decrypt(ctx, target, dest, info)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	if !ok {
		_ = os.Remove(dest)
		return ErrDecryptionFailed
	}
	return nil
}

// verifyDigest compares the file at path with a base64 SHA-1 or SHA-256
// digest, chosen by the decoded length. An empty digest is not checked.
func verifyDigest(path, digest string) error {
	if digest == "" {
		return nil
	}

	algorithm, err := digestAlgorithm(digest)
	if err != nil {
		return Permanent(err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", path, err)
	}
	got, err := utils.DigestReader(f, algorithm)
	f.Close()
	if err != nil {
		return err
	}
	if got != digest {
		_ = os.Remove(path)
		return fmt.Errorf("%w: %s: want %s, got %s", ErrDigestMismatch, filepath.Base(path), digest, got)
	}
	return nil
}

func digestAlgorithm(digest string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(digest)
	if err != nil {
		return "", fmt.Errorf("%w: undecodable digest %q", ErrDigestMismatch, digest)
	}
	switch len(raw) {
	case 20:
		return utils.DigestSHA1, nil
	case 32:
		return utils.DigestSHA256, nil
	default:
		return "", fmt.Errorf("%w: unsupported digest length %d", ErrDigestMismatch, len(raw))
	}
}
