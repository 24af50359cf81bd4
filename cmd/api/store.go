package main

import (
	"context"
	"database/sql"
	"fmt"

	"pets-api/internal/adapters/storage/postgres"
	"pets-api/internal/adapters/storage/sqlite"
	"pets-api/internal/adapters/storage/sqlstore"
	"pets-api/internal/platform/config"
	"pets-api/internal/platform/logger"
)

// openStore abre la base según database.driver. Con memory devuelve db nil
// y el router usa el store en memoria.
func openStore(ctx context.Context, cfg config.DatabaseConfig, log logger.Logger) (*sql.DB, sqlstore.Dialect, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		log.Warn("using in-memory store; data is lost on restart", nil)
		return nil, 0, nil

	case config.DriverPostgres:
		if cfg.AutoMigrate {
			st, err := postgres.Migrate(cfg.DSN)
			if err != nil {
				return nil, 0, err
			}
			log.Info("migrations applied", map[string]any{"version": st.Version, "dirty": st.Dirty})
		}
		db, err := postgres.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, 0, err
		}
		log.Info("store opened", map[string]any{"driver": cfg.Driver})
		return db, sqlstore.Postgres, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, 0, err
		}
		log.Info("store opened", map[string]any{"driver": cfg.Driver, "path": cfg.DSN})
		return db, sqlstore.SQLite, nil

	default:
		return nil, 0, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
