// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned for malformed API requests. Callers can match
// against them with [errors.Is].
var (
	// ErrMissingMachine is returned when GET /api/builds has no machine
	// query parameter.
	ErrMissingMachine = errors.New("`machine` query parameter is required")

	// ErrInvalidBuildID is returned when the {id} path segment is not a
	// positive decimal update id.
	ErrInvalidBuildID = errors.New("invalid build id")

	// ErrMissingLanguage is returned when the editions endpoint is called
	// without a lang query parameter.
	ErrMissingLanguage = errors.New("`lang` query parameter is required")

	// ErrSnapshotsUnavailable is returned when the server runs without a
	// snapshot store.
	ErrSnapshotsUnavailable = errors.New("build snapshots are not available")
)
