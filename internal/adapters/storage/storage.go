// Package storage elige el backend según config: Postgres, SQLite o memoria.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"pet-health-tracker/internal/adapters/storage/memory"
	"pet-health-tracker/internal/adapters/storage/postgres"
	"pet-health-tracker/internal/adapters/storage/sqlite"
	"pet-health-tracker/internal/adapters/storage/sqlstore"
	"pet-health-tracker/internal/domain/accounts"
	"pet-health-tracker/internal/domain/health"
	"pet-health-tracker/internal/domain/pets"
	"pet-health-tracker/internal/platform/config"
)

// Repositories es todo lo que necesitan los servicios.
type Repositories struct {
	Driver string

	Accounts accounts.Repository
	Pets     pets.Repository
	Health   health.Repositories

	closeFn func() error
}

func (r *Repositories) Close() error {
	if r.closeFn == nil {
		return nil
	}
	return r.closeFn()
}

// Memory arma repos en memoria; es el fallback de dev y de tests.
func Memory() *Repositories {
	s := memory.NewStore()
	return &Repositories{
		Driver:   config.DriverMemory,
		Accounts: s.Accounts(),
		Pets:     s.Pets(),
		Health:   s.Health(),
	}
}

// Open abre el backend configurado y aplica el schema.
func Open(ctx context.Context, cfg config.StorageConfig) (*Repositories, error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		slog.WarnContext(ctx, "using in-memory storage; data is lost on restart")
		return Memory(), nil

	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return fromSQL(config.DriverPostgres, db, postgres.New(db)), nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := sqlite.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return fromSQL(config.DriverSQLite, db, sqlite.New(db)), nil

	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}

func fromSQL(driver string, db *sql.DB, store *sqlstore.DB) *Repositories {
	return &Repositories{
		Driver:   driver,
		Accounts: store.Accounts(),
		Pets:     store.Pets(),
		Health:   store.Health(),
		closeFn:  db.Close,
	}
}
