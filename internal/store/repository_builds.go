// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wu-catalog/internal/logger"
	"github.com/MKhiriev/go-wu-catalog/models"
)

// buildRepository is the SQL implementation of [BuildRepository]. It works
// against both PostgreSQL and SQLite through the embedded [*DB].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so database interactions carry the caller's fields.
type buildRepository struct {
	*DB
	logger *logger.Logger
}

// NewBuildRepository constructs a [BuildRepository] backed by db.
func NewBuildRepository(db *DB, logger *logger.Logger) BuildRepository {
	return &buildRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveSnapshot deletes the stored builds of machine and inserts builds in a
// single transaction. An empty builds slice clears the machine's snapshot.
//
// Failures the connection's classifier considers transient are additionally
// wrapped with [ErrRetryable].
func (r *buildRepository) SaveSnapshot(ctx context.Context, machine string, builds []models.CachedBuild) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "buildRepository.SaveSnapshot").
			Str("machine", machine).
			Msg("failed to begin transaction")
		return r.classify(fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
	}
	defer tx.Rollback()

	query, args, err := buildDeleteMachineBuildsQuery(machine)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "buildRepository.SaveSnapshot").
			Str("machine", machine).
			Msg("failed to delete previous snapshot")
		return r.classify(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	for i, b := range builds {
		b.Machine = machine
		query, args, err = buildInsertBuildQuery(b)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "buildRepository.SaveSnapshot").
				Str("machine", machine).
				Uint64("update_id", b.UpdateID).
				Int("iteration", i).
				Msg("failed to insert build")
			return r.classify(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "buildRepository.SaveSnapshot").
			Str("machine", machine).
			Msg("failed to commit snapshot")
		return r.classify(fmt.Errorf("%w: %w", ErrCommitingTransaction, err))
	}

	log.Debug().
		Str("func", "buildRepository.SaveSnapshot").
		Str("machine", machine).
		Int("builds", len(builds)).
		Msg("snapshot saved")

	return nil
}

// ListBuilds returns the stored builds of machine ordered newest first.
// Returns an empty slice when nothing is stored.
func (r *buildRepository) ListBuilds(ctx context.Context, machine string) ([]models.CachedBuild, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMachineBuildsQuery(machine)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "buildRepository.ListBuilds").
			Str("machine", machine).
			Msg("failed to execute query for listing builds")
		return nil, r.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	builds := make([]models.CachedBuild, 0, 16)
	for rows.Next() {
		b, scanErr := scanBuild(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "buildRepository.ListBuilds").
				Str("machine", machine).
				Msg("failed to scan build row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		builds = append(builds, b)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "buildRepository.ListBuilds").
			Str("machine", machine).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return builds, nil
}

// GetBuild returns the most recently fetched build with updateID, or
// [ErrBuildNotFound].
func (r *buildRepository) GetBuild(ctx context.Context, updateID uint64) (models.CachedBuild, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBuildQuery(updateID)
	if err != nil {
		return models.CachedBuild{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	b, err := scanBuild(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.CachedBuild{}, ErrBuildNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "buildRepository.GetBuild").
			Uint64("update_id", updateID).
			Msg("failed to get build")
		return models.CachedBuild{}, r.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	return b, nil
}

func (r *buildRepository) classify(err error) error {
	if r.errorClassificator != nil && r.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrRetryable, err)
	}
	return err
}
