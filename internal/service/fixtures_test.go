package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-wu-catalog/internal/adapter"
	"github.com/MKhiriev/go-wu-catalog/models"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// fixture describes one update pair as the service would return it.
type fixture struct {
	id          uint64
	guid        string
	revision    string
	contentType string
	created     string
	title       string // empty: no LocalizedProperties
	metaName    string // empty: no metadata file
	metaDigest  string
	extraFiles  int
	appxBlob    string
}

func (f fixture) infoXML() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<UpdateIdentity UpdateID="%s" RevisionNumber="%s" />`, f.guid, f.revision)
	b.WriteString(`<Properties UpdateType="Software" />`)
	if f.appxBlob != "" {
		b.WriteString(`<ApplicabilityRules><Metadata><AppxPackageMetadata><AppxMetadata PackageType="AppxBundle">`)
		b.WriteString(`<ApplicabilityBlob>` + f.appxBlob + `</ApplicabilityBlob>`)
		b.WriteString(`</AppxMetadata></AppxPackageMetadata></Metadata></ApplicabilityRules>`)
	}
	return b.String()
}

func (f fixture) updateXML() string {
	var b strings.Builder
	contentType := f.contentType
	if contentType == "" {
		contentType = models.ContentTypeProductRelease
	}
	fmt.Fprintf(&b, `<ExtendedProperties ContentType="%s" CreationDate="%s" ProductName="Windows" />`, contentType, f.created)
	b.WriteString(`<Files>`)
	if f.metaName != "" {
		fmt.Fprintf(&b, `<File FileName="%s" Digest="%s" DigestAlgorithm="SHA1" Size="10" PatchingType="metadata" />`, f.metaName, f.metaDigest)
	}
	for i := 0; i < f.extraFiles; i++ {
		fmt.Fprintf(&b, `<File FileName="payload%d.esd" Digest="payload-%d-%d" DigestAlgorithm="SHA1" Size="100" />`, i, f.id, i)
	}
	b.WriteString(`</Files>`)
	if f.title != "" {
		fmt.Fprintf(&b, `<LocalizedProperties><Language>en</Language><Title>%s</Title><Description>%s notes</Description></LocalizedProperties>`, f.title, f.title)
	}
	return b.String()
}

func (f fixture) rawUpdate() models.RawUpdate {
	return models.RawUpdate{ID: strconv.FormatUint(f.id, 10), Xml: f.updateXML()}
}

func (f fixture) rawInfo() models.RawUpdateInfo {
	return models.RawUpdateInfo{ID: strconv.FormatUint(f.id, 10), Xml: f.infoXML()}
}

// page builds a sync page from fixtures.
func page(fixtures ...fixture) adapter.SyncResult {
	var p adapter.SyncResult
	for _, f := range fixtures {
		p.UpdateInfos = append(p.UpdateInfos, f.rawInfo())
		p.Updates = append(p.Updates, f.rawUpdate())
	}
	p.RawBody = "<raw/>"
	return p
}

// record assembles a single fixture the way the aggregator would.
func record(f fixture, profile models.TargetingProfile) models.UpdateRecord {
	records, errs := Assemble(page(f), profile)
	if len(errs) > 0 || len(records) != 1 {
		panic(fmt.Sprintf("bad fixture %d: %v", f.id, errs))
	}
	return records[0]
}
