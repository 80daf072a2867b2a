package models

import (
	"encoding/xml"
	"strings"
	"time"
)

// Content types found in ExtendedProperties/@ContentType.
const (
	ContentTypeApplication    = "Application"
	ContentTypeProductRelease = "ProductRelease"
)

// PatchingTypeMetadata marks the file whose digest anchors the identity of a
// build across rings.
const PatchingTypeMetadata = "metadata"

// RawUpdate is an <Update> element of ExtendedUpdateInfo: the update id and
// its escaped extended XML fragment.
type RawUpdate struct {
	ID  string `xml:"ID" json:"id"`
	Xml string `xml:"Xml" json:"xml"`
}

// RawUpdateInfo is an <UpdateInfo> element of NewUpdates: the update id,
// deployment data and its escaped core XML fragment.
type RawUpdateInfo struct {
	ID         string     `xml:"ID" json:"id"`
	Deployment Deployment `xml:"Deployment" json:"deployment"`
	IsLeaf     bool       `xml:"IsLeaf" json:"is_leaf"`
	IsShared   bool       `xml:"IsShared" json:"is_shared"`
	Xml        string     `xml:"Xml" json:"xml"`
}

// Deployment carries the server side deployment decision for an update.
type Deployment struct {
	ID             string `xml:"ID" json:"id"`
	Action         string `xml:"Action" json:"action"`
	IsAssigned     bool   `xml:"IsAssigned" json:"is_assigned"`
	LastChangeTime string `xml:"LastChangeTime" json:"last_change_time"`
	AutoSelect     string `xml:"AutoSelect" json:"auto_select"`
	AutoDownload   string `xml:"AutoDownload" json:"auto_download"`
	FlightID       string `xml:"FlightId" json:"flight_id"`
}

// UpdateRecord is one logical catalog entry, merged from the UpdateInfo and
// Update fragments sharing the same numeric id.
type UpdateRecord struct {
	ID           uint64
	Update       RawUpdate
	UpdateInfo   RawUpdateInfo
	Xml          *UpdateDescriptor
	AppxMetadata *AppxMetadata
	Profile      TargetingProfile
	// SyncResponse is the raw SyncUpdates response body the record came from.
	SyncResponse string
}

// UpdateDescriptor is the parsed <Xml> document obtained by concatenating
// both fragments of an update. Unknown elements are ignored.
type UpdateDescriptor struct {
	XMLName             xml.Name             `xml:"Xml"`
	UpdateIdentity      UpdateIdentity       `xml:"UpdateIdentity"`
	Properties          *UpdateProperties    `xml:"Properties"`
	ExtendedProperties  *ExtendedProperties  `xml:"ExtendedProperties"`
	Files               []File               `xml:"Files>File"`
	LocalizedProperties *LocalizedProperties `xml:"LocalizedProperties"`
	ApplicabilityRules  *ApplicabilityRules  `xml:"ApplicabilityRules"`
}

// UpdateIdentity is the (guid, revision) pair used by GetExtendedUpdateInfo2.
type UpdateIdentity struct {
	UpdateID       string `xml:"UpdateID,attr"`
	RevisionNumber string `xml:"RevisionNumber,attr"`
}

type UpdateProperties struct {
	UpdateType           string `xml:"UpdateType,attr"`
	ExplicitlyDeployable string `xml:"ExplicitlyDeployable,attr"`
	PerUser              string `xml:"PerUser,attr"`
	IsAppxFramework      string `xml:"IsAppxFramework,attr"`
}

type ExtendedProperties struct {
	DefaultPropertiesLanguage string `xml:"DefaultPropertiesLanguage,attr"`
	Handler                   string `xml:"Handler,attr"`
	CreationDate              string `xml:"CreationDate,attr"`
	IsAppxFramework           string `xml:"IsAppxFramework,attr"`
	CompatibleProtocolVersion string `xml:"CompatibleProtocolVersion,attr"`
	UpdateType                string `xml:"UpdateType,attr"`
	PackageIdentityName       string `xml:"PackageIdentityName,attr"`
	ProductName               string `xml:"ProductName,attr"`
	ReleaseVersion            string `xml:"ReleaseVersion,attr"`
	ContentType               string `xml:"ContentType,attr"`
}

// Created parses CreationDate. A missing or malformed value yields the zero
// time.
func (e *ExtendedProperties) Created() time.Time {
	if e == nil || e.CreationDate == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, e.CreationDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

type File struct {
	FileName                    string            `xml:"FileName,attr"`
	Digest                      string            `xml:"Digest,attr"`
	DigestAlgorithm             string            `xml:"DigestAlgorithm,attr"`
	Size                        string            `xml:"Size,attr"`
	Modified                    string            `xml:"Modified,attr"`
	InstallerSpecificIdentifier string            `xml:"InstallerSpecificIdentifier,attr"`
	PatchingType                string            `xml:"PatchingType,attr"`
	AdditionalDigest            *AdditionalDigest `xml:"AdditionalDigest"`
}

// AdditionalDigest is a secondary digest some servers use to identify a file.
type AdditionalDigest struct {
	Algorithm string `xml:"Algorithm,attr"`
	Value     string `xml:",chardata"`
}

type LocalizedProperties struct {
	Language    string `xml:"Language"`
	Title       string `xml:"Title"`
	Description string `xml:"Description"`
}

type ApplicabilityRules struct {
	Metadata *ApplicabilityMetadata `xml:"Metadata"`
}

type ApplicabilityMetadata struct {
	AppxPackageMetadata *AppxPackageMetadata `xml:"AppxPackageMetadata"`
}

type AppxPackageMetadata struct {
	AppxMetadata *AppxMetadataElement `xml:"AppxMetadata"`
}

type AppxMetadataElement struct {
	PackageType       string `xml:"PackageType,attr"`
	IsAppxBundle      string `xml:"IsAppxBundle,attr"`
	PackageMoniker    string `xml:"PackageMoniker,attr"`
	ApplicabilityBlob string `xml:"ApplicabilityBlob"`
}

// ApplicabilityBlob returns the embedded appx applicability JSON, if any.
func (d *UpdateDescriptor) ApplicabilityBlob() (string, bool) {
	if d == nil || d.ApplicabilityRules == nil || d.ApplicabilityRules.Metadata == nil {
		return "", false
	}
	pkg := d.ApplicabilityRules.Metadata.AppxPackageMetadata
	if pkg == nil || pkg.AppxMetadata == nil {
		return "", false
	}
	blob := strings.TrimSpace(pkg.AppxMetadata.ApplicabilityBlob)
	return blob, blob != ""
}

// MetadataFile returns the file entry whose PatchingType is "metadata".
func (d *UpdateDescriptor) MetadataFile() (File, bool) {
	if d == nil {
		return File{}, false
	}
	for _, f := range d.Files {
		if strings.EqualFold(f.PatchingType, PatchingTypeMetadata) {
			return f, true
		}
	}
	return File{}, false
}

// FileByAdditionalDigest finds the file whose additional digest equals digest.
func (d *UpdateDescriptor) FileByAdditionalDigest(digest string) (File, bool) {
	if d == nil {
		return File{}, false
	}
	for _, f := range d.Files {
		if f.AdditionalDigest != nil && strings.TrimSpace(f.AdditionalDigest.Value) == digest {
			return f, true
		}
	}
	return File{}, false
}

// FileByDigest finds the descriptor file whose primary or additional digest
// equals digest.
func (d *UpdateDescriptor) FileByDigest(digest string) (File, bool) {
	if d == nil {
		return File{}, false
	}
	for _, f := range d.Files {
		if f.Digest == digest {
			return f, true
		}
	}
	return d.FileByAdditionalDigest(digest)
}

// AppxMetadata is the JSON applicability blob carried by store applications.
type AppxMetadata struct {
	BlobVersion     int64                `json:"blob.version"`
	IsMain          bool                 `json:"content.isMain"`
	PackageID       string               `json:"content.packageId"`
	ProductID       string               `json:"content.productId"`
	ContentType     int                  `json:"content.type"`
	TargetPlatforms []AppxTargetPlatform `json:"content.targetPlatforms"`
	Policy          map[string]any       `json:"policy,omitempty"`
	Policy2         map[string]any       `json:"policy2,omitempty"`

	// Raw keeps every key of the blob, including ones not modelled above.
	Raw map[string]any `json:"-"`
}

type AppxTargetPlatform struct {
	MaxVersionTested int64 `json:"platform.maxVersionTested"`
	MinVersion       int64 `json:"platform.minVersion"`
	Target           int   `json:"platform.target"`
}
