package models

// TargetingProfile is the client targeting attributes context (CTAC) sent
// with every catalog query. It is built once per (sku, ring) combination and
// never mutated afterwards.
type TargetingProfile struct {
	// DeviceAttributes is a single "E:"-prefixed, '&'-joined key=value list.
	DeviceAttributes string `json:"device_attributes"`
	// CallerAttributes identifies the calling component (update orchestrator
	// or store).
	CallerAttributes string `json:"caller_attributes"`
	// Products selects the OS product; empty when targeting the store channel.
	Products string `json:"products"`
	// SyncCurrentVersionOnly restricts results to the reported version.
	SyncCurrentVersionOnly bool `json:"sync_current_version_only"`

	// Ring is the label of the ring this profile was built for, e.g.
	// "Retail (vb_release)". It is informational and never sent on the wire.
	Ring string `json:"ring,omitempty"`
	// Sku is the reporting edition of the profile.
	Sku OSSkuID `json:"sku,omitempty"`
}
