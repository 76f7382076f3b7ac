package store

import (
	"database/sql"

	"github.com/MKhiriev/sparknest-admin/internal/logger"
	"github.com/MKhiriev/sparknest-admin/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewDB wraps an open connection. Used with sqlmock in tests.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{DB: conn, logger: log}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
