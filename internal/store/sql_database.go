package store

import (
	"database/sql"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/migrations"
)

// DB wraps the standard *sql.DB with the application logger and remembers
// which driver opened it, so that migration dialects and error
// classification can follow the driver.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Migrate applies all embedded migrations using the dialect matching the
// driver this DB was opened with.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
