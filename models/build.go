package models

import "time"

// AvailableBuild is the presentation projection of an [UpdateRecord].
type AvailableBuild struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Created     time.Time     `json:"created"`
	BuildNumber string        `json:"build_number,omitempty"`
	Ring        string        `json:"ring"`
	Update      *UpdateRecord `json:"-"`
}

// UpdateID returns the numeric id of the backing record, or zero.
func (b AvailableBuild) UpdateID() uint64 {
	if b.Update == nil {
		return 0
	}
	return b.Update.ID
}

// CachedBuild is the persisted form of an [AvailableBuild]. It keeps the raw
// protocol fragments so the record can be reassembled without another sync.
type CachedBuild struct {
	UpdateID         uint64    `json:"update_id"`
	UpdateGUID       string    `json:"update_guid"`
	RevisionNumber   string    `json:"revision_number"`
	Machine          string    `json:"machine"`
	Ring             string    `json:"ring"`
	ContentType      string    `json:"content_type"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	BuildNumber      string    `json:"build_number"`
	Created          time.Time `json:"created"`
	UpdateXml        string    `json:"-"`
	UpdateInfoXml    string    `json:"-"`
	DeviceAttributes string    `json:"-"`
	CallerAttributes string    `json:"-"`
	Products         string    `json:"-"`
	SyncCurrentOnly  bool      `json:"-"`
	FetchedAt        time.Time `json:"fetched_at"`

	// Localized properties as merged at discovery time. The raw fragments
	// may not carry them when they came from a separate extended info call.
	Language             string `json:"-"`
	LocalizedTitle       string `json:"-"`
	LocalizedDescription string `json:"-"`
}
