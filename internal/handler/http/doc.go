// Package http implements the read-only HTTP API of the catalog server.
//
// It exposes the cached build snapshots, per-build file links, languages and
// editions, the Prometheus metrics endpoint and the build information of the
// running binary. Request tracing, access logging and response compression
// are handled here before requests reach the service layer.
package http
