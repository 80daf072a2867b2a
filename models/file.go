package models

import (
	"net/url"
	"strconv"
	"time"
)

// expirationParam is the query parameter carrying the Unix expiry of a
// signed download URL.
const expirationParam = "P1"

// FileDownloadInfo is a resolved download location for one file of an update.
type FileDownloadInfo struct {
	URL    string `json:"url"`
	Digest string `json:"digest"`
	// DecryptionInfo is the opaque ESRP payload; empty for plain files.
	DecryptionInfo []byte `json:"decryption_info,omitempty"`
}

// Encrypted reports whether the file must be decrypted after download.
func (f FileDownloadInfo) Encrypted() bool {
	return len(f.DecryptionInfo) > 0
}

// Expiration returns the expiry encoded in the URL's P1 parameter. The second
// result is false when the URL never expires: no P1, an unparsable URL, or a
// non-numeric value.
func (f FileDownloadInfo) Expiration() (time.Time, bool) {
	u, err := url.Parse(f.URL)
	if err != nil {
		return time.Time{}, false
	}
	raw := u.Query().Get(expirationParam)
	if raw == "" {
		return time.Time{}, false
	}
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(secs, 0).UTC(), true
}

// ExpiresWithin reports whether the URL expires before now+d.
func (f FileDownloadInfo) ExpiresWithin(now time.Time, d time.Duration) bool {
	exp, ok := f.Expiration()
	if !ok {
		return false
	}
	return exp.Before(now.Add(d))
}
