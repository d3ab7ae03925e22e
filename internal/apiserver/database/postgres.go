package database

import (
	"context"
	"fmt"

	"github.com/ecosedes/facilities/internal/common/config"

	"gorm.io/driver/postgres"
)

// Postgres implements the Database interface using PostgreSQL
type Postgres struct {
	*store
}

// NewPostgres creates a new Postgres instance
func NewPostgres(cfg *config.DatabaseConfig) (Database, error) {
	s, err := openStore(postgres.Open(cfg.GetDSN()), cfg)
	if err != nil {
		return nil, err
	}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return &Postgres{store: s}, nil
}

// SyncSequences moves serial sequences past ids inserted explicitly by the
// bulk import.
func (db *Postgres) SyncSequences(ctx context.Context) error {
	for _, table := range []string{"centers", "sites", "users"} {
		stmt := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)",
			table)
		if err := db.conn(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("sync sequence for %s: %w", table, err)
		}
	}
	return nil
}
