package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
)

// Storages groups every store the service depends on.
type Storages struct {
	UserRepository UserRepository
	HealthChecker  HealthChecker

	db *DB
}

// NewStorages connects to the database selected by cfg.DB.DSN, applies
// migrations and builds the repositories.
//
// DSN forms:
//   - "postgres://..." or "postgresql://..." → PostgreSQL via pgx;
//   - "sqlite://<path>" → SQLite file at path;
//   - "file:...", ":memory:" or a path ending in ".db" → SQLite as given.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connect(ctx, cfg.DB.DSN, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		HealthChecker:  db,
		db:             db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func connect(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, "sqlite://"):
		return NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), log)
	case strings.HasPrefix(dsn, "file:"), dsn == ":memory:", strings.HasSuffix(dsn, ".db"):
		return NewConnectSQLite(ctx, dsn, log)
	default:
		return nil, fmt.Errorf("%w: expected postgres://, sqlite://, file: or :memory:", ErrUnsupportedDSN)
	}
}
