package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/app-dashboard/internal/config"
	"github.com/MKhiriev/app-dashboard/internal/logger"
)

// Storages groups the repositories of the server together with the
// connection they share, so that main can open it once and close it at
// shutdown.
type Storages struct {
	AppRepository AppRepository

	db *DB
}

// NewStorages opens the database selected by cfg.DB.DSN, applies pending
// migrations and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	backend, dataSource, err := ParseDSN(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	var db *DB
	switch backend {
	case BackendSQLite:
		db, err = NewConnectSQLite(ctx, dataSource, logger)
	default:
		db, err = NewConnectPostgres(ctx, dataSource, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", backend, err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		AppRepository: NewAppRepository(db, logger),
		db:            db,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
