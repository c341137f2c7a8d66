package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/app-dashboard/internal/logger"
	"github.com/MKhiriev/app-dashboard/models"
)

// appRepository is the SQL implementation of [AppRepository]. Each record
// is one row of app_details whose document column holds the app as a JSON
// object; the name column duplicates the name for lookups.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type appRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAppRepository constructs an [AppRepository] backed by db.
func NewAppRepository(db *DB, logger *logger.Logger) AppRepository {
	logger.Debug().Msg("creating app repository")
	return &appRepository{
		db:     db,
		logger: logger,
	}
}

// ListApps implements [AppRepository].
func (r *appRepository) ListApps(ctx context.Context) ([]models.App, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListAppsQuery()
	if err != nil {
		log.Err(err).Str("func", "*appRepository.ListApps").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var documents [][]byte
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		documents = documents[:0]

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var document []byte
			if err := rows.Scan(&document); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			documents = append(documents, document)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*appRepository.ListApps").Msg("error listing apps")
		return nil, err
	}

	apps := make([]models.App, 0, len(documents))
	for _, document := range documents {
		var app models.App
		if err := json.Unmarshal(document, &app); err != nil {
			log.Err(err).Str("func", "*appRepository.ListApps").Msg("stored document is not an app")
			return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
		}
		apps = append(apps, app)
	}

	return apps, nil
}

// CreateApp implements [AppRepository].
func (r *appRepository) CreateApp(ctx context.Context, app models.App) error {
	log := logger.FromContext(ctx)

	document, err := json.Marshal(app)
	if err != nil {
		log.Err(err).Str("func", "*appRepository.CreateApp").Msg("error encoding app")
		return fmt.Errorf("error encoding app: %w", err)
	}

	query, args, err := r.db.buildInsertAppQuery(app.Name, string(document))
	if err != nil {
		log.Err(err).Str("func", "*appRepository.CreateApp").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*appRepository.CreateApp").Msg("error saving app")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		log.Error().Str("func", "*appRepository.CreateApp").Msg("provided app was not saved")
		return ErrAppNotSaved
	}

	return nil
}

// DeleteAppByName implements [AppRepository].
func (r *appRepository) DeleteAppByName(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteAppByNameQuery(name)
	if err != nil {
		log.Err(err).Str("func", "*appRepository.DeleteAppByName").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*appRepository.DeleteAppByName").Msg("error deleting app")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*appRepository.DeleteAppByName").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if rowsAffected == 0 {
		return ErrAppNotFound
	}

	return nil
}
