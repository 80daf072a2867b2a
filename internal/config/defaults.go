package config

import (
	"time"

	"github.com/MKhiriev/go-wu-catalog/models"
)

const (
	DefaultEndpoint            = "https://fe3.delivery.mp.microsoft.com"
	DefaultMaxPages            = 100
	DefaultMaxParallelProfiles = 8
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			Endpoint:        DefaultEndpoint,
			RequestTimeout:  60 * time.Second,
			BreakerFailures: 5,
		},
		Catalog: Catalog{
			Machine:     models.MachineAMD64.String(),
			ContentType: models.ContentTypeProductRelease,
			MaxPages:    DefaultMaxPages,
			Language:    "en-us",
			DownloadDir: "downloads",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 2 * time.Minute,
		},
		Workers: Workers{
			RefreshInterval:     6 * time.Hour,
			MaxParallelProfiles: DefaultMaxParallelProfiles,
		},
	}
}
