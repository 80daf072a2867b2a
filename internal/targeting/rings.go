package targeting

import "github.com/MKhiriev/go-wu-catalog/models"

// RingProfile is one entry of the ring catalog queried during discovery.
type RingProfile struct {
	Label   string
	Input   ProfileInput
	Profile models.TargetingProfile
}

type ringSpec struct {
	label       string
	version     string
	ring        string
	flighting   string
	readiness   string
	branch      string
	releaseType string
	currentOnly bool
}

var ringCatalog = []ringSpec{
	{label: "Insider Slow (rs2)", version: "10.0.15063.534", ring: "WIS", flighting: "", readiness: "CB", branch: "rs2_release", releaseType: "Production"},
	{label: "Insider Fast (rs2)", version: "10.0.15063.534", ring: "WIF", flighting: "", readiness: "CB", branch: "rs2_release", releaseType: "Production"},
	{label: "Retail (rs3)", version: "10.0.16299.15", ring: "Retail", readiness: "CB", branch: "rs3_release", releaseType: "Production", currentOnly: true},
	{label: "Retail (rs4)", version: "10.0.17134.1", ring: "Retail", readiness: "CB", branch: "rs4_release", releaseType: "Production", currentOnly: true},
	{label: "Retail (rs5)", version: "10.0.17763.1", ring: "Retail", readiness: "CB", branch: "rs5_release", releaseType: "Production", currentOnly: true},
	{label: "Retail (19h1)", version: "10.0.18362.1", ring: "Retail", readiness: "CB", branch: "19h1_release", releaseType: "Production", currentOnly: true},
	{label: "Retail (vb)", version: "10.0.19041.84", ring: "Retail", readiness: "CB", branch: "vb_release", releaseType: "Production", currentOnly: true},
	{label: "Retail (co)", version: "10.0.22000.1", ring: "Retail", readiness: "CB", branch: "co_release", releaseType: "Production", currentOnly: true},
	{label: "Retail (ni)", version: "10.0.22621.1", ring: "Retail", readiness: "CB", branch: "ni_release", releaseType: "Production", currentOnly: true},
	{label: "Retail", version: "10.0.19041.84", ring: "Retail", readiness: "CB", branch: "vb_release", releaseType: "Production"},
	{label: "Release Preview", version: "10.0.19041.84", ring: "External", flighting: "ReleasePreview", readiness: "CB", branch: "vb_release", releaseType: "Production"},
	{label: "Beta", version: "10.0.19041.84", ring: "External", flighting: "Beta", readiness: "CB", branch: "vb_release", releaseType: "Production"},
	{label: "Dev", version: "10.0.19041.84", ring: "External", flighting: "Dev", readiness: "CB", branch: "vb_release", releaseType: "Production"},
	{label: "Canary", version: "10.0.19041.84", ring: "External", flighting: "CanaryChannel", readiness: "CB", branch: "vb_release", releaseType: "Production"},
	{label: "Skip Ahead", version: "10.0.19041.84", ring: "WIF", flighting: "Skip", readiness: "CB", branch: "vb_release", releaseType: "Production"},
}

// Rings returns the fixed ring catalog for a machine type, with profiles
// already built. Every call returns fresh values in catalog order.
func Rings(machine models.MachineType) []RingProfile {
	out := make([]RingProfile, 0, len(ringCatalog))
	for _, r := range ringCatalog {
		in := ProfileInput{
			Sku:                    models.SkuProfessional,
			Version:                r.version,
			Machine:                machine,
			Ring:                   r.ring,
			FlightingBranch:        r.flighting,
			BranchReadinessLevel:   r.readiness,
			CurrentBranch:          r.branch,
			ReleaseType:            r.releaseType,
			SyncCurrentVersionOnly: r.currentOnly,
			Label:                  r.label,
		}
		out = append(out, RingProfile{Label: r.label, Input: in, Profile: BuildProfile(in)})
	}
	return out
}
