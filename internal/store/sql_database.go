package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/app-dashboard/internal/logger"
	"github.com/MKhiriev/app-dashboard/migrations"
	"github.com/sethvargo/go-retry"
)

const (
	maxRetries    = 2
	retryInterval = 100 * time.Millisecond
)

// DB wraps a *sql.DB with the backend it talks to, a squirrel builder using
// that backend's placeholder format and an error classifier.
type DB struct {
	*sql.DB
	backend            Backend
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, backend Backend, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if backend == BackendPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		backend:            backend,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Migrate applies pending schema migrations for the backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.backend.migrationDialect())
}

// withRetry runs fn and repeats it while the classifier reports the error as
// transient. Only read-only calls go through it: a retried write could apply
// twice when the failure arrives after the commit.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxRetries, retry.NewConstant(retryInterval))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}
