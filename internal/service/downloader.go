package service

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/MKhiriev/go-wu-catalog/internal/config"
	"github.com/MKhiriev/go-wu-catalog/internal/utils"
)

type httpDownloader struct {
	client *utils.HTTPClient
}

// NewHTTPDownloader returns a Downloader on a resty client without a request
// timeout; transfers are bounded by the caller's context instead.
func NewHTTPDownloader(cfg config.Adapter) Downloader {
	return &httpDownloader{
		client: utils.NewHTTPClient(utils.HTTPClientOptions{
			InsecureSkipVerify: cfg.InsecureSkipVerify,
		}),
	}
}

// Download implements Downloader. A partial file is removed on failure.
func (d *httpDownloader) Download(ctx context.Context, url, dest string) error {
	resp, err := d.client.R().
		SetContext(ctx).
		SetOutput(dest).
		Get(url)
	if err != nil {
		_ = os.Remove(dest)
		return fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	if resp.StatusCode() != http.StatusOK {
		_ = os.Remove(dest)
		err = fmt.Errorf("%w: http %d", ErrDownloadFailed, resp.StatusCode())
		if resp.StatusCode() == http.StatusNotFound || resp.StatusCode() == http.StatusForbidden {
			return Permanent(err)
		}
		return err
	}

	return nil
}
