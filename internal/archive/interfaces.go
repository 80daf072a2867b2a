// Package archive wraps an external cabinet tool behind a small interface so
// that edition discovery can enumerate the contents of metadata cabinets.
package archive

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/archive_mock.go -package=mock

// Archive expands and enumerates cabinet files.
type Archive interface {
	// Extract expands every entry of cabPath into destDir.
	Extract(ctx context.Context, cabPath, destDir string) error
	// ListEntries returns the entry names of cabPath in archive order.
	ListEntries(ctx context.Context, cabPath string) ([]string, error)
}
