package service

import (
	"context"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-wu-catalog/internal/adapter"
	"github.com/MKhiriev/go-wu-catalog/internal/config"
	"github.com/MKhiriev/go-wu-catalog/internal/logger"
	"github.com/MKhiriev/go-wu-catalog/internal/mock"
	"github.com/MKhiriev/go-wu-catalog/models"
)

type catalogMocks struct {
	discoverer *mock.MockDiscoverer
	resolver   *mock.MockFileResolver
	archive    *mock.MockArchive
	downloader *mock.MockDownloader
	decrypter  *mock.MockDecrypter
}

func newTestCatalog(t *testing.T, withDecrypter bool) (*catalogService, catalogMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := catalogMocks{
		discoverer: mock.NewMockDiscoverer(ctrl),
		resolver:   mock.NewMockFileResolver(ctrl),
		archive:    mock.NewMockArchive(ctrl),
		downloader: mock.NewMockDownloader(ctrl),
		decrypter:  mock.NewMockDecrypter(ctrl),
	}

	deps := CatalogDeps{
		Discoverer: m.discoverer,
		Resolver:   m.resolver,
		Archive:    m.archive,
		Downloader: m.downloader,
	}
	if withDecrypter {
		deps.Decrypter = m.decrypter
	}

	s := NewCatalogService(deps, config.Catalog{ContentType: models.ContentTypeProductRelease}, logger.Nop()).(*catalogService)
	s.workDir = t.TempDir()
	s.retry = RetryConfig{MaxAttempts: 2, InitialInterval: time.Millisecond, Multiplier: 1}
	return s, m
}

func sha1Digest(data []byte) string {
	sum := sha1.Sum(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

func sha256Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// writeFile makes a Downloader mock produce content at dest.
func writeFile(content []byte) func(context.Context, string, string) error {
	return func(_ context.Context, _ string, dest string) error {
		return os.WriteFile(dest, content, 0o644)
	}
}

func TestCatalogService_GetAvailableBuilds(t *testing.T) {
	s, m := newTestCatalog(t, false)

	older := record(fixture{
		id: 1, guid: "g1", revision: "1", created: "2023-01-01T00:00:00Z",
		title: "Windows 10", metaName: "19045.2965_metadata.cab", metaDigest: "D1",
	}, models.TargetingProfile{Ring: "Retail"})
	newer := record(fixture{
		id: 2, guid: "g2", revision: "1", created: "2024-06-01T00:00:00Z",
		metaName: "metadata.cab", metaDigest: "D2",
	}, models.TargetingProfile{Ring: "Dev"})

	m.discoverer.EXPECT().
		Discover(gomock.Any(), models.MachineARM64, models.ContentTypeProductRelease).
		Return([]models.UpdateRecord{older, newer})

	// the newer record lacks localized properties and gets one lookup
	lp := fixture{id: 2, title: "Windows 11 Insider"}
	m.resolver.EXPECT().GetExtendedInfo(gomock.Any(), gomock.Any()).
		Return(adapter.ExtendedInfoResult{Updates: []models.RawUpdate{
			{ID: "2", Xml: "<broken"},
			{ID: "2", Xml: lp.updateXML()},
		}}, nil)

	builds, err := s.GetAvailableBuilds(testContext(), models.MachineARM64)
	require.NoError(t, err)
	require.Len(t, builds, 2)

	assert.Equal(t, "Windows 11 Insider", builds[0].Title)
	assert.Equal(t, "Dev", builds[0].Ring)
	assert.Equal(t, uint64(2), builds[0].UpdateID())
	assert.Empty(t, builds[0].BuildNumber)

	assert.Equal(t, "Windows 10 (19045.2965)", builds[1].Title)
	assert.Equal(t, "19045.2965", builds[1].BuildNumber)
	assert.Equal(t, "Windows 10 notes", builds[1].Description)
	assert.True(t, builds[0].Created.After(builds[1].Created))
}

func TestCatalogService_GetAvailableBuilds_ExtendedInfoFailure(t *testing.T) {
	s, m := newTestCatalog(t, false)

	r := record(fixture{id: 3, guid: "g3", revision: "1", created: "2024-06-01T00:00:00Z"}, models.TargetingProfile{})
	m.discoverer.EXPECT().Discover(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.UpdateRecord{r})
	m.resolver.EXPECT().GetExtendedInfo(gomock.Any(), gomock.Any()).Return(adapter.ExtendedInfoResult{}, errors.New("boom"))

	builds, err := s.GetAvailableBuilds(testContext(), models.MachineAMD64)
	require.NoError(t, err)
	require.Len(t, builds, 1)
	// falls back to the product name
	assert.Equal(t, "Windows", builds[0].Title)
}

func TestCatalogService_GetAvailableBuilds_UnknownMachine(t *testing.T) {
	s, _ := newTestCatalog(t, false)

	_, err := s.GetAvailableBuilds(testContext(), models.MachineUnknown)
	assert.ErrorIs(t, err, ErrUnknownMachine)
}

func compDBRecord() *models.UpdateRecord {
	r := record(fixture{id: 4, guid: "g4", revision: "1", metaName: "22631.1_metadata.cab", metaDigest: "META"}, models.TargetingProfile{})
	return &r
}

func expectCompDB(t *testing.T, m catalogMocks, names []string) {
	t.Helper()
	m.resolver.EXPECT().GetFileURL(gomock.Any(), gomock.Any(), "META").
		Return(&models.FileDownloadInfo{URL: "http://dl/meta.cab"}, nil)
	m.downloader.EXPECT().Download(gomock.Any(), "http://dl/meta.cab", gomock.Any()).
		DoAndReturn(writeFile([]byte("cab")))
	m.archive.EXPECT().ListEntries(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cabPath string) ([]string, error) {
			assert.Equal(t, "22631.1_metadata.cab", filepath.Base(cabPath))
			return names, nil
		})
}

var compDBNames = []string{
	"DesktopTargetCompDB_Professional_en-us.xml.cab",
	"DesktopTargetCompDB_Core_en-us.xml.cab",
	"DesktopTargetCompDB_Professional_de-de.xml.cab",
	"DesktopTargetCompDB_en-gb.xml.cab",
	"DesktopTargetCompDB_App_Neutral.xml.cab.sig",
	"Metadata\\DesktopTargetCompDB_Core_en-us.xml.cab",
	"Unrelated.xml",
}

func TestCatalogService_GetAvailableBuildLanguages(t *testing.T) {
	s, m := newTestCatalog(t, false)
	expectCompDB(t, m, compDBNames)

	langs, err := s.GetAvailableBuildLanguages(testContext(), compDBRecord())
	require.NoError(t, err)
	assert.Equal(t, []string{"de-de", "en-gb", "en-us"}, langs)
}

func TestCatalogService_GetAvailableEditions(t *testing.T) {
	s, m := newTestCatalog(t, false)
	expectCompDB(t, m, compDBNames)

	editions, err := s.GetAvailableEditions(testContext(), compDBRecord(), " EN-US ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Core", "Professional"}, editions)
}

func TestCatalogService_CompDB_NoMetadata(t *testing.T) {
	s, m := newTestCatalog(t, false)

	noMeta := record(fixture{id: 5, guid: "g5", revision: "1", extraFiles: 1}, models.TargetingProfile{})
	langs, err := s.GetAvailableBuildLanguages(testContext(), &noMeta)
	require.NoError(t, err)
	assert.Nil(t, langs)

	// the service does not list the metadata file
	m.resolver.EXPECT().GetFileURL(gomock.Any(), gomock.Any(), "META").Return(nil, nil)
	editions, err := s.GetAvailableEditions(testContext(), compDBRecord(), "en-us")
	require.NoError(t, err)
	assert.Nil(t, editions)

	_, err = s.GetAvailableBuildLanguages(testContext(), nil)
	assert.ErrorIs(t, err, ErrMissingIdentity)
}

func TestParseCompDBName(t *testing.T) {
	tests := []struct {
		name    string
		want    compDBEntry
		matches bool
	}{
		{"DesktopTargetCompDB_Professional_en-us.xml.cab", compDBEntry{edition: "Professional", lang: "en-us"}, true},
		{"DesktopTargetCompDB_CoreCountrySpecific_zh-cn.xml.cab", compDBEntry{edition: "CoreCountrySpecific", lang: "zh-cn"}, true},
		{"desktoptargetcompdb_en-us.xml.cab", compDBEntry{lang: "en-us"}, true},
		{"DesktopTargetCompDB_sr-latn-rs.xml.cab", compDBEntry{lang: "sr-latn-rs"}, true},
		{"DesktopTargetCompDB_Professional_en-us.xml", compDBEntry{}, false},
		{"ServerTargetCompDB_Datacenter_en-us.xml.cab", compDBEntry{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseCompDBName(tt.name)
			assert.Equal(t, tt.matches, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogService_DownloadFile(t *testing.T) {
	content := []byte("payload bytes")

	t.Run("sha1 verified", func(t *testing.T) {
		s, m := newTestCatalog(t, false)
		dest := filepath.Join(t.TempDir(), "out", "file.esd")
		m.downloader.EXPECT().Download(gomock.Any(), "http://dl/f", dest).DoAndReturn(writeFile(content))

		err := s.DownloadFile(testContext(), models.FileDownloadInfo{URL: "http://dl/f", Digest: sha1Digest(content)}, dest)
		require.NoError(t, err)

		got, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("sha256 verified", func(t *testing.T) {
		s, m := newTestCatalog(t, false)
		dest := filepath.Join(t.TempDir(), "file.esd")
		m.downloader.EXPECT().Download(gomock.Any(), gomock.Any(), dest).DoAndReturn(writeFile(content))

		err := s.DownloadFile(testContext(), models.FileDownloadInfo{URL: "http://dl/f", Digest: sha256Digest(content)}, dest)
		assert.NoError(t, err)
	})

	t.Run("mismatch is retried then reported", func(t *testing.T) {
		s, m := newTestCatalog(t, false)
		dest := filepath.Join(t.TempDir(), "file.esd")
		m.downloader.EXPECT().Download(gomock.Any(), gomock.Any(), dest).DoAndReturn(writeFile([]byte("corrupt"))).Times(2)

		err := s.DownloadFile(testContext(), models.FileDownloadInfo{URL: "http://dl/f", Digest: sha1Digest(content)}, dest)
		assert.ErrorIs(t, err, ErrDigestMismatch)
		assert.NoFileExists(t, dest)
	})

	t.Run("unsupported digest is permanent", func(t *testing.T) {
		s, m := newTestCatalog(t, false)
		dest := filepath.Join(t.TempDir(), "file.esd")
		m.downloader.EXPECT().Download(gomock.Any(), gomock.Any(), dest).DoAndReturn(writeFile(content)).Times(1)

		err := s.DownloadFile(testContext(), models.FileDownloadInfo{URL: "http://dl/f", Digest: "AAAA"}, dest)
		assert.ErrorIs(t, err, ErrDigestMismatch)
	})

	t.Run("transient download failure recovers", func(t *testing.T) {
		s, m := newTestCatalog(t, false)
		dest := filepath.Join(t.TempDir(), "file.esd")
		gomock.InOrder(
			m.downloader.EXPECT().Download(gomock.Any(), gomock.Any(), dest).Return(ErrDownloadFailed),
			m.downloader.EXPECT().Download(gomock.Any(), gomock.Any(), dest).DoAndReturn(writeFile(content)),
		)

		err := s.DownloadFile(testContext(), models.FileDownloadInfo{URL: "http://dl/f", Digest: sha1Digest(content)}, dest)
		assert.NoError(t, err)
	})
}

func TestCatalogService_DownloadFile_Encrypted(t *testing.T) {
	content := []byte("encrypted bytes")
	info := models.FileDownloadInfo{URL: "http://dl/enc", Digest: sha1Digest(content), DecryptionInfo: []byte(`{"KeyData":"k"}`)}

	t.Run("no decrypter", func(t *testing.T) {
		s, _ := newTestCatalog(t, false)

		err := s.DownloadFile(testContext(), info, filepath.Join(t.TempDir(), "f.esd"))
		assert.ErrorIs(t, err, ErrDecrypterUnavailable)
	})

	t.Run("decrypted", func(t *testing.T) {
		s, m := newTestCatalog(t, true)
		dest := filepath.Join(t.TempDir(), "f.esd")

		m.downloader.EXPECT().Download(gomock.Any(), info.URL, dest+".encrypted").DoAndReturn(writeFile(content))
		m.decrypter.EXPECT().Decrypt(gomock.Any(), dest+".encrypted", dest, info).
			DoAndReturn(func(_ context.Context, in, out string, _ models.FileDownloadInfo) (bool, error) {
				assert.FileExists(t, in)
				return true, os.WriteFile(out, []byte("plain"), 0o644)
			})

		require.NoError(t, s.DownloadFile(testContext(), info, dest))
		assert.FileExists(t, dest)
		assert.NoFileExists(t, dest+".encrypted")
	})

	t.Run("wrong key", func(t *testing.T) {
		s, m := newTestCatalog(t, true)
		dest := filepath.Join(t.TempDir(), "f.esd")

		m.downloader.EXPECT().Download(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(writeFile(content))
		m.decrypter.EXPECT().Decrypt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		err := s.DownloadFile(testContext(), info, dest)
		assert.ErrorIs(t, err, ErrDecryptionFailed)
		assert.NoFileExists(t, dest)
		assert.NoFileExists(t, dest+".encrypted")
	})

	t.Run("decrypter error", func(t *testing.T) {
		s, m := newTestCatalog(t, true)
		boom := errors.New("tool crashed")

		m.downloader.EXPECT().Download(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(writeFile(content))
		m.decrypter.EXPECT().Decrypt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, boom)

		err := s.DownloadFile(testContext(), info, filepath.Join(t.TempDir(), "f.esd"))
		assert.ErrorIs(t, err, ErrDecryptionFailed)
		assert.ErrorIs(t, err, boom)
	})
}

func TestCatalogService_Delegates(t *testing.T) {
	s, m := newTestCatalog(t, false)
	r := compDBRecord()
	info := &models.FileDownloadInfo{URL: "u", Digest: "d"}

	m.resolver.EXPECT().GetFileURL(gomock.Any(), r, "d").Return(info, nil)
	m.resolver.EXPECT().GetFileURLs(gomock.Any(), r).Return([]models.FileDownloadInfo{*info}, nil)

	got, err := s.GetFileURL(testContext(), r, "d")
	require.NoError(t, err)
	assert.Same(t, info, got)

	all, err := s.GetFileURLs(testContext(), r)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
