package store

import (
	"context"

	"github.com/MKhiriev/go-wu-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BuildRepository persists catalog snapshots.
type BuildRepository interface {
	// SaveSnapshot replaces every build of machine with builds in one
	// transaction.
	SaveSnapshot(ctx context.Context, machine string, builds []models.CachedBuild) error
	// ListBuilds returns the builds of machine, newest first.
	ListBuilds(ctx context.Context, machine string) ([]models.CachedBuild, error)
	// GetBuild returns one build or ErrBuildNotFound.
	GetBuild(ctx context.Context, updateID uint64) (models.CachedBuild, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ErrorClassification tells a snapshot write whether it is worth repeating.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)
