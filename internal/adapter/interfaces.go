// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the Windows Update client
// web service.
//
// The primary abstraction is [CatalogAdapter], which decouples the sync loop
// and the file resolver from the SOAP wire format. The package ships one
// implementation ([NewSOAPAdapter]) that posts SOAP 1.2 envelopes over HTTPS
// with resty.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// SOAP faults by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrUnexpectedStatus] for any
// non-2xx reply, [ErrMalformedResponse] for an undecodable body).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_adapter_mock.go -package=mock

// CatalogAdapter exposes the four remote operations of the client web
// service. Implementations are safe for concurrent use; the only state shared
// between calls is the correlation counter.
type CatalogAdapter interface {
	// GetCookie obtains a fresh session cookie from the plain endpoint. No
	// ticket is attached.
	GetCookie(ctx context.Context) (Cookie, error)

	// SyncUpdates requests one page of the catalog for the given targeting
	// profile. The reply carries a replacement cookie and zero or more
	// update pairs; an empty page means the catalog is exhausted.
	SyncUpdates(ctx context.Context, req SyncRequest) (SyncResult, error)

	// GetExtendedUpdateInfo fetches extended metadata for a list of revision
	// ids from the secured endpoint.
	GetExtendedUpdateInfo(ctx context.Context, req ExtendedInfoRequest) (ExtendedInfoResult, error)

	// GetExtendedUpdateInfo2 resolves the download locations of every file
	// of one update from the secured endpoint.
	GetExtendedUpdateInfo2(ctx context.Context, req FileLocationsRequest) ([]FileLocation, error)
}
