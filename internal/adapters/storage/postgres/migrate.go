package postgres

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationStatus es la versión aplicada del esquema.
type MigrationStatus struct {
	Version uint
	Dirty   bool
	// None indica que todavía no se aplicó ninguna migración.
	None bool
}

// newMigrate usa las migraciones embebidas. dsn tiene que ser una URL postgres://.
func newMigrate(dsn string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("postgres: migrations source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: migrate instance: %w", err)
	}
	return m, nil
}

// Migrate aplica las migraciones pendientes. Sin cambios no es error.
func Migrate(dsn string) (MigrationStatus, error) {
	m, err := newMigrate(dsn)
	if err != nil {
		return MigrationStatus{}, err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return MigrationStatus{}, fmt.Errorf("postgres: migrate up: %w", err)
	}
	return status(m)
}

// MigrateDown revierte steps migraciones (mínimo 1).
func MigrateDown(dsn string, steps int) (MigrationStatus, error) {
	if steps < 1 {
		steps = 1
	}
	m, err := newMigrate(dsn)
	if err != nil {
		return MigrationStatus{}, err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Steps(-steps); err != nil {
		return MigrationStatus{}, fmt.Errorf("postgres: migrate down: %w", err)
	}
	return status(m)
}

func MigrationVersion(dsn string) (MigrationStatus, error) {
	m, err := newMigrate(dsn)
	if err != nil {
		return MigrationStatus{}, err
	}
	defer func() { _, _ = m.Close() }()

	return status(m)
}

func status(m *migrate.Migrate) (MigrationStatus, error) {
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return MigrationStatus{None: true}, nil
	}
	if err != nil {
		return MigrationStatus{}, fmt.Errorf("postgres: migrate version: %w", err)
	}
	return MigrationStatus{Version: v, Dirty: dirty}, nil
}
