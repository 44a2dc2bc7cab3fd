package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
)

// Storages bundles every repository the services depend on, all sharing one
// database connection.
type Storages struct {
	Users    UserRepository
	Tokens   TokenRepository
	Failures FailureEventRepository

	db *DB
}

// NewStorages connects to the configured database, runs migrations, and
// wires the repositories on top of the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	// sqlite bootstraps its schema on connect; goose migrations cover pgx
	if cfg.DB.Driver == "pgx" {
		if err := db.Migrate(); err != nil {
			return nil, fmt.Errorf("error running migrations: %w", err)
		}
	}

	return &Storages{
		Users:    NewUserRepository(db, log),
		Tokens:   NewTokenRepository(db, log),
		Failures: NewFailureEventRepository(db, log),
		db:       db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
