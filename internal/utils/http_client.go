package utils

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{Timeout: time.Minute})
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions controls the transport policy of an [HTTPClient].
type HTTPClientOptions struct {
	// Timeout bounds a whole request including reading the body. Zero means
	// no timeout, which suits large downloads bounded by a context instead.
	Timeout time.Duration

	// InsecureSkipVerify accepts self-signed or otherwise invalid server
	// certificates.
	InsecureSkipVerify bool

	// DisableRedirects returns 3xx responses to the caller unchanged.
	DisableRedirects bool

	// UserAgent is sent with every request when non-empty.
	UserAgent string
}

// NewHTTPClient creates and returns a new HTTPClient instance configured by
// opts.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. The client is safe for
// concurrent use.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New()

	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.InsecureSkipVerify {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // opt-in via config
	}
	if opts.DisableRedirects {
		client.SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &HTTPClient{Client: client}
}
