// Package sqlite abre la base SQLite (modernc.org/sqlite, sin cgo) y crea el esquema.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Open abre (o crea) la base en path y asegura el esquema. Una sola conexión:
// SQLite serializa escrituras y así las transacciones no chocan con SQLITE_BUSY.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("sqlite: empty path")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}

	if err := createSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: creating schema: %w", err)
	}

	return db, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func createSchema(ctx context.Context, db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS animal_groups (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scientific_name TEXT NOT NULL,
			scientific_name_key TEXT NOT NULL UNIQUE,
			created_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS traits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			name_key TEXT NOT NULL UNIQUE,
			created_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS pets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			age INTEGER NOT NULL,
			weight REAL NOT NULL,
			sex TEXT NOT NULL DEFAULT 'Not Informed'
				CHECK (sex IN ('Male', 'Female', 'Not Informed')),
			group_id INTEGER NOT NULL REFERENCES animal_groups(id)
		);

		CREATE INDEX IF NOT EXISTS idx_pets_group_id ON pets(group_id);

		CREATE TABLE IF NOT EXISTS pet_traits (
			pet_id INTEGER NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
			trait_id INTEGER NOT NULL REFERENCES traits(id),
			PRIMARY KEY (pet_id, trait_id)
		);

		CREATE INDEX IF NOT EXISTS idx_pet_traits_trait_id ON pet_traits(trait_id);
	`
	_, err := db.ExecContext(ctx, schema)
	return err
}
