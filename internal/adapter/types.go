package adapter

import (
	"github.com/MKhiriev/go-wu-catalog/models"
)

// Info types understood by GetExtendedUpdateInfo and GetExtendedUpdateInfo2.
const (
	InfoTypeFileURL             = "FileUrl"
	InfoTypeFileDecryption      = "FileDecryption"
	InfoTypeExtended            = "Extended"
	InfoTypeLocalizedProperties = "LocalizedProperties"
	InfoTypeEula                = "Eula"
	InfoTypeVerification        = "Verification"
)

// Cookie is the opaque, expiring session blob echoed back on every sync call.
type Cookie struct {
	Expiration    string `xml:"Expiration"`
	EncryptedData string `xml:"EncryptedData"`
}

// SyncRequest is the input of one SyncUpdates page.
type SyncRequest struct {
	Cookie  Cookie
	Profile models.TargetingProfile

	// InstalledNonLeafIDs and OtherCachedIDs are sent verbatim; the caller
	// merges in the baseline ids.
	InstalledNonLeafIDs []string
	OtherCachedIDs      []string

	// CategoryIDs optionally restricts the sync to application categories.
	CategoryIDs []string
}

// SyncResult is one decoded SyncUpdates page.
type SyncResult struct {
	NewCookie   Cookie
	UpdateInfos []models.RawUpdateInfo
	Updates     []models.RawUpdate
	Truncated   bool

	// RawBody is the undecoded response body.
	RawBody string
}

// Empty reports whether the page carries no updates.
func (r SyncResult) Empty() bool {
	return len(r.UpdateInfos) == 0
}

// ExtendedInfoRequest is the input of the legacy GetExtendedUpdateInfo call.
type ExtendedInfoRequest struct {
	Cookie           Cookie
	RevisionIDs      []string
	InfoTypes        []string
	Locales          []string
	DeviceAttributes string
}

// ExtendedInfoResult is the decoded reply of GetExtendedUpdateInfo.
type ExtendedInfoResult struct {
	Updates       []models.RawUpdate
	FileLocations []FileLocation
	RawBody       string
}

// FileLocationsRequest identifies one update revision for file resolution.
type FileLocationsRequest struct {
	UpdateID         string
	RevisionNumber   string
	DeviceAttributes string
}

// FileLocation is one resolved download URL keyed by the file's primary
// digest.
type FileLocation struct {
	FileDigest                string `xml:"FileDigest"`
	URL                       string `xml:"Url"`
	EsrpDecryptionInformation string `xml:"EsrpDecryptionInformation"`
}
