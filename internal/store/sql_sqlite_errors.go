package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// sqliteErrorClassifier implements [ErrorClassificator] for SQLite. Only
// lock contention is worth retrying.
type sqliteErrorClassifier struct{}

func (sqliteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}
	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	default:
		return NonRetryable
	}
}
