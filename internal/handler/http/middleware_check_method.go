// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-wu-catalog/internal/logger"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// chi only reaches it when the path resolves to a route, including routes of
// mounted subrouters, that has no handler for the request method. The
// request is answered with 404 Not Found instead of chi's default 405, so
// unsupported methods do not reveal which routes exist. The router is never
// re-entered from here.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod())
func CheckHTTPMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("method not registered for route")
		w.WriteHeader(http.StatusNotFound)
	}
}
