package database

import (
	"github.com/ecosedes/facilities/internal/common/config"

	"github.com/glebarez/sqlite"
)

// SQLite implements the Database interface using SQLite
type SQLite struct {
	*store
}

// NewSQLite opens (or creates) the database file and migrates the schema.
// Foreign keys are enabled through the DSN so every pooled connection
// enforces them. The pool is pinned to a single connection, which keeps a
// ":memory:" database alive and serializes writers.
func NewSQLite(cfg *config.DatabaseConfig) (Database, error) {
	s, err := openStore(sqlite.Open(cfg.GetDSN()), cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := s.migrate(); err != nil {
		return nil, err
	}
	return &SQLite{store: s}, nil
}
