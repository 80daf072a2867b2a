package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

type StructuredJSONConfig struct {
	Adapter struct {
		Endpoint           string   `json:"endpoint"`
		RequestTimeout     Duration `json:"request_timeout"`
		InsecureSkipVerify bool     `json:"insecure_skip_verify"`
		RateLimit          float64  `json:"rate_limit"`
		BreakerFailures    uint32   `json:"breaker_failures"`
		Ticket             string   `json:"ticket"`
	} `json:"adapter,omitempty"`

	Catalog struct {
		Machine     string `json:"machine"`
		ContentType string `json:"content_type"`
		MaxPages    int    `json:"max_pages"`
		Language    string `json:"language"`
		DownloadDir string `json:"download_dir"`
	} `json:"catalog,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		RefreshInterval     Duration `json:"refresh_interval"`
		MaxParallelProfiles int      `json:"max_parallel_profiles"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			Endpoint:           jsonCfg.Adapter.Endpoint,
			RequestTimeout:     time.Duration(jsonCfg.Adapter.RequestTimeout),
			InsecureSkipVerify: jsonCfg.Adapter.InsecureSkipVerify,
			RateLimit:          jsonCfg.Adapter.RateLimit,
			BreakerFailures:    jsonCfg.Adapter.BreakerFailures,
			Ticket:             jsonCfg.Adapter.Ticket,
		},
		Catalog: Catalog{
			Machine:     jsonCfg.Catalog.Machine,
			ContentType: jsonCfg.Catalog.ContentType,
			MaxPages:    jsonCfg.Catalog.MaxPages,
			Language:    jsonCfg.Catalog.Language,
			DownloadDir: jsonCfg.Catalog.DownloadDir,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			RefreshInterval:     time.Duration(jsonCfg.Workers.RefreshInterval),
			MaxParallelProfiles: jsonCfg.Workers.MaxParallelProfiles,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
