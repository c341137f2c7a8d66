package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/app-dashboard/migrations"
)

// Backend identifies a supported database engine.
type Backend int

const (
	BackendPostgres Backend = iota
	BackendSQLite
)

func (b Backend) String() string {
	switch b {
	case BackendPostgres:
		return "postgres"
	case BackendSQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// migrationDialect returns the goose dialect of the backend.
func (b Backend) migrationDialect() string {
	if b == BackendSQLite {
		return migrations.DialectSQLite
	}
	return migrations.DialectPostgres
}

var sqliteSuffixes = []string{".db", ".sqlite", ".sqlite3"}

// ParseDSN picks a backend by the DSN's scheme and returns the data source
// name its driver expects.
//
//	postgres://... postgresql://...  -> PostgreSQL, DSN unchanged
//	sqlite://path                    -> SQLite, "path"
//	file:..., :memory:, *.db         -> SQLite, DSN unchanged
func ParseDSN(dsn string) (Backend, string, error) {
	lower := strings.ToLower(dsn)

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return BackendPostgres, dsn, nil
	case strings.HasPrefix(lower, "sqlite://"):
		path := dsn[len("sqlite://"):]
		if path == "" {
			return 0, "", fmt.Errorf("%w: empty sqlite path", ErrUnsupportedDSN)
		}
		return BackendSQLite, path, nil
	case strings.HasPrefix(lower, "file:"), dsn == ":memory:":
		return BackendSQLite, dsn, nil
	}

	for _, suffix := range sqliteSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return BackendSQLite, dsn, nil
		}
	}

	return 0, "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, scheme(dsn))
}

// scheme returns the part before "://" so the error never echoes credentials.
func scheme(dsn string) string {
	if s, _, ok := strings.Cut(dsn, "://"); ok {
		return s + "://"
	}
	return "<no scheme>"
}
