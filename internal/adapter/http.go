package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-wu-catalog/internal/config"
	"github.com/MKhiriev/go-wu-catalog/internal/logger"
	"github.com/MKhiriev/go-wu-catalog/internal/metrics"
	"github.com/MKhiriev/go-wu-catalog/internal/utils"
)

// UserAgent is the agent string the service expects from update clients.
const UserAgent = "Windows-Update-Agent/10.0.10011.16384 Client-Protocol/2.50"

var (
	defaultFragmentTypes = []string{InfoTypeExtended, InfoTypeLocalizedProperties, InfoTypeEula}
	defaultLocales       = []string{"en-US", "en"}
	fileInfoTypes        = []string{InfoTypeFileURL, InfoTypeFileDecryption}
)

type soapAdapter struct {
	client   *utils.HTTPClient
	endpoint string
	ticket   string

	cv      *correlationVector
	ids     *utils.MessageIDGenerator
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[[]byte]
	now     func() time.Time

	logger *logger.Logger
}

// NewSOAPAdapter constructs the SOAP implementation of [CatalogAdapter].
// It normalises and validates the endpoint from cfg, configures the shared
// HTTP client (timeout, redirects disabled, optional TLS verification bypass)
// and, when enabled in cfg, the outbound rate limiter and circuit breaker.
//
// Returns an error wrapping [ErrInvalidEndpoint] if cfg.Endpoint cannot be
// parsed as an absolute URL.
func NewSOAPAdapter(cfg config.Adapter, log *logger.Logger) (CatalogAdapter, error) {
	endpoint, err := normalizeBaseURL(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		Timeout:            cfg.RequestTimeout,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		DisableRedirects:   true,
		UserAgent:          UserAgent,
	})
	client.SetBaseURL(endpoint)

	a := &soapAdapter{
		client:   client,
		endpoint: endpoint,
		ticket:   strings.TrimSpace(cfg.Ticket),
		cv:       newCorrelationVector(),
		ids:      utils.NewMessageIDGenerator(),
		now:      time.Now,
		logger:   log,
	}

	if cfg.RateLimit > 0 {
		burst := int(cfg.RateLimit)
		if burst < 1 {
			burst = 1
		}
		a.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	if cfg.BreakerFailures > 0 {
		a.breaker = newBreaker(cfg.BreakerFailures, log)
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetCookie implements [CatalogAdapter].
func (a *soapAdapter) GetCookie(ctx context.Context) (Cookie, error) {
	payload := getCookieBody{
		OldCookie:       oldCookie{Expiration: oldCookieExpiration},
		LastChange:      lastChange,
		CurrentTime:     a.now().UTC().Format(soapTimeLayout),
		ProtocolVersion: protocolVersion,
	}

	raw, err := a.call(ctx, opGetCookie, payload)
	if err != nil {
		return Cookie{}, err
	}

	var resp getCookieResponse
	if err = unmarshalEnvelope(raw, &resp); err != nil {
		return Cookie{}, err
	}
	if resp.Result == nil {
		return Cookie{}, fmt.Errorf("%w: missing GetCookieResult", ErrMalformedResponse)
	}

	return *resp.Result, nil
}

// SyncUpdates implements [CatalogAdapter].
func (a *soapAdapter) SyncUpdates(ctx context.Context, req SyncRequest) (SyncResult, error) {
	params := syncUpdateParameters{
		InstalledNonLeafUpdateIDs:     req.InstalledNonLeafIDs,
		OtherCachedUpdateIDs:          req.OtherCachedIDs,
		NeedTwoGroupOutOfScopeUpdates: true,
		ExtendedUpdateInfoParameters: extendedUpdateInfoParameters{
			XMLUpdateFragmentTypes: defaultFragmentTypes,
			Locales:                defaultLocales,
		},
		ClientPreferredLanguages: defaultLocales[:1],
		ProductsParameters: productsParameters{
			SyncCurrentVersionOnly: req.Profile.SyncCurrentVersionOnly,
			DeviceAttributes:       req.Profile.DeviceAttributes,
			CallerAttributes:       req.Profile.CallerAttributes,
			Products:               req.Profile.Products,
		},
	}
	if len(req.CategoryIDs) > 0 {
		filter := &filterAppCategoryIDs{}
		for _, id := range req.CategoryIDs {
			filter.CategoryIdentifiers = append(filter.CategoryIdentifiers, categoryIdentifier{ID: id})
		}
		params.FilterAppCategoryIDs = filter
	}

	raw, err := a.call(ctx, opSyncUpdates, syncUpdatesBody{Cookie: req.Cookie, Parameters: params})
	if err != nil {
		return SyncResult{}, err
	}

	var resp syncUpdatesResponse
	if err = unmarshalEnvelope(raw, &resp); err != nil {
		return SyncResult{}, err
	}
	if resp.Result == nil {
		return SyncResult{}, fmt.Errorf("%w: missing SyncUpdatesResult", ErrMalformedResponse)
	}

	return SyncResult{
		NewCookie:   resp.Result.NewCookie,
		UpdateInfos: resp.Result.NewUpdates,
		Updates:     resp.Result.Updates,
		Truncated:   resp.Result.Truncated,
		RawBody:     string(raw),
	}, nil
}

// GetExtendedUpdateInfo implements [CatalogAdapter].
func (a *soapAdapter) GetExtendedUpdateInfo(ctx context.Context, req ExtendedInfoRequest) (ExtendedInfoResult, error) {
	payload := getExtendedUpdateInfoBody{
		Cookie:           req.Cookie,
		RevisionIDs:      req.RevisionIDs,
		InfoTypes:        req.InfoTypes,
		Locales:          req.Locales,
		DeviceAttributes: req.DeviceAttributes,
	}
	if len(payload.InfoTypes) == 0 {
		payload.InfoTypes = defaultFragmentTypes
	}
	if len(payload.Locales) == 0 {
		payload.Locales = defaultLocales
	}

	raw, err := a.call(ctx, opGetExtendedUpdateInfo, payload)
	if err != nil {
		return ExtendedInfoResult{}, err
	}

	var resp getExtendedUpdateInfoResponse
	if err = unmarshalEnvelope(raw, &resp); err != nil {
		return ExtendedInfoResult{}, err
	}
	if resp.Result == nil {
		return ExtendedInfoResult{}, fmt.Errorf("%w: missing GetExtendedUpdateInfoResult", ErrMalformedResponse)
	}

	return ExtendedInfoResult{
		Updates:       resp.Result.Updates,
		FileLocations: resp.Result.FileLocations,
		RawBody:       string(raw),
	}, nil
}

// GetExtendedUpdateInfo2 implements [CatalogAdapter].
func (a *soapAdapter) GetExtendedUpdateInfo2(ctx context.Context, req FileLocationsRequest) ([]FileLocation, error) {
	payload := getExtendedUpdateInfo2Body{
		UpdateIDs:        []updateIdentity{{UpdateID: req.UpdateID, RevisionNumber: req.RevisionNumber}},
		InfoTypes:        fileInfoTypes,
		DeviceAttributes: req.DeviceAttributes,
	}

	raw, err := a.call(ctx, opGetExtendedUpdateInfo2, payload)
	if err != nil {
		return nil, err
	}

	var resp getExtendedUpdateInfo2Response
	if err = unmarshalEnvelope(raw, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, fmt.Errorf("%w: missing GetExtendedUpdateInfo2Result", ErrMalformedResponse)
	}

	return resp.Result.FileLocations, nil
}

// call performs one protocol round trip and records its duration.
func (a *soapAdapter) call(ctx context.Context, op operation, payload any) ([]byte, error) {
	start := time.Now()
	raw, err := a.roundTrip(ctx, op, payload)
	metrics.RecordProtocolCall(op.name, time.Since(start), err)

	if err != nil {
		log := a.logger.ForOperation(op.name)
		if ring, ok := utils.GetRingFromContext(ctx); ok {
			log = log.ForRing(ring)
		}
		log.Debug().Err(err).Dur("took", time.Since(start)).Msg("protocol call failed")
		return nil, fmt.Errorf("%s: %w", op.name, err)
	}

	return raw, nil
}

func (a *soapAdapter) roundTrip(ctx context.Context, op operation, payload any) ([]byte, error) {
	now := a.now()
	if op != opGetCookie {
		if err := checkTicket(a.ticket, now); err != nil {
			return nil, err
		}
	}

	data, err := marshalEnvelope(newEnvelope(envelopeParams{
		op:        op,
		endpoint:  a.endpoint,
		messageID: a.ids.Generate(),
		ticket:    a.ticket,
		now:       now,
	}, payload))
	if err != nil {
		return nil, err
	}

	if a.limiter != nil {
		if err = a.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	send := func() ([]byte, error) {
		resp, err := a.client.R().
			SetContext(ctx).
			SetHeaders(map[string]string{
				"Content-Type":  "application/soap+xml; charset=utf-8",
				"SOAPAction":    op.action(),
				"MS-CV":         a.cv.Next(),
				"Cache-Control": "no-cache",
				"Pragma":        "no-cache",
				"Connection":    "keep-alive",
			}).
			SetBody(data).
			Post(op.path())
		if err != nil {
			return nil, fmt.Errorf("post request: %w", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, err
		}
		return resp.Body(), nil
	}

	if a.breaker == nil {
		return send()
	}

	raw, err := a.breaker.Execute(send)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
	}
	return raw, err
}
