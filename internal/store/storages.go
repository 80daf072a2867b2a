package store

import "github.com/MKhiriev/go-wu-catalog/internal/logger"

// Storages groups the repositories built on one database connection.
type Storages struct {
	BuildRepository BuildRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		BuildRepository: NewBuildRepository(db, log),
	}
}
