// Package server runs the HTTP API and the background workers of the
// catalog server, including signal handling and graceful shutdown.
package server
