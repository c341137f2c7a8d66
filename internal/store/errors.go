package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAppNotFound is returned when a delete targets a name no record has.
	ErrAppNotFound = errors.New("app was not found")

	// ErrAppNotSaved is returned when an INSERT completes without error but
	// affects no rows.
	ErrAppNotSaved = errors.New("app was not saved")

	// ErrUnsupportedDSN is returned when the DSN scheme selects no known
	// backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning a result row fails.
	ErrScanningRows = errors.New("failed to scan app rows")

	// ErrDecodingDocument is returned when a stored document is not a valid
	// app JSON object.
	ErrDecodingDocument = errors.New("failed to decode stored app document")
)
