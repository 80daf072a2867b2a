// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the catalog engine on top of the protocol
// adapter: the per-profile sync loop, the multi-ring aggregator with its
// deduplication rules, record assembly, file resolution and download, and the
// snapshot refresh job used by the server.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wu-catalog/internal/adapter"
	"github.com/MKhiriev/go-wu-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncPager drives the cookie-based pagination of one targeting profile.
type SyncPager interface {
	// Sync returns every non-empty page in the order received. On error the
	// pages collected so far are returned alongside it.
	Sync(ctx context.Context, profile models.TargetingProfile, categoryIDs []string) ([]adapter.SyncResult, error)
}

// Discoverer fans the sync loop out over the ring catalog and returns the
// deduplicated, relevant update records.
type Discoverer interface {
	Discover(ctx context.Context, machine models.MachineType, contentType string) []models.UpdateRecord
}

// FileResolver resolves download locations for the files of one update.
type FileResolver interface {
	// GetFileURL returns the location of the file with the given digest, or
	// nil, nil when the service does not list it.
	GetFileURL(ctx context.Context, record *models.UpdateRecord, digest string) (*models.FileDownloadInfo, error)
	GetFileURLs(ctx context.Context, record *models.UpdateRecord) ([]models.FileDownloadInfo, error)
	GetExtendedInfo(ctx context.Context, record *models.UpdateRecord) (adapter.ExtendedInfoResult, error)
}

// Downloader fetches url into the file at dest.
type Downloader interface {
	Download(ctx context.Context, url, dest string) error
}

// Decrypter unwraps an ESRP-encrypted file. It reports false when the
// payload could not be decrypted with the given key material.
type Decrypter interface {
	Decrypt(ctx context.Context, inputFile, outputFile string, info models.FileDownloadInfo) (bool, error)
}

// CatalogService is the outward API of the engine.
type CatalogService interface {
	GetAvailableBuilds(ctx context.Context, machine models.MachineType) ([]models.AvailableBuild, error)
	GetAvailableBuildLanguages(ctx context.Context, record *models.UpdateRecord) ([]string, error)
	GetAvailableEditions(ctx context.Context, record *models.UpdateRecord, lang string) ([]string, error)
	GetFileURL(ctx context.Context, record *models.UpdateRecord, digest string) (*models.FileDownloadInfo, error)
	GetFileURLs(ctx context.Context, record *models.UpdateRecord) ([]models.FileDownloadInfo, error)
	DownloadFile(ctx context.Context, info models.FileDownloadInfo, dest string) error
}

// SnapshotService persists discovered builds and serves them back without a
// live sync.
type SnapshotService interface {
	SaveBuilds(ctx context.Context, machine models.MachineType, builds []models.AvailableBuild) error
	ListBuilds(ctx context.Context, machine models.MachineType) ([]models.CachedBuild, error)
	GetRecord(ctx context.Context, updateID uint64) (*models.UpdateRecord, error)
}

// RefreshJob periodically rediscovers builds and saves a snapshot.
type RefreshJob interface {
	Start(ctx context.Context, interval time.Duration)
	RunOnce(ctx context.Context) error
	Stop()
}
