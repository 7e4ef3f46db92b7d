// Package stores owns the SQLite database shared by the explorer, the
// drill deck, and the solve server: connection setup, migrations, and
// the row/proxy models stored in it.
package stores

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// Open opens the database at dbPath, creating it if needed, and brings
// the schema up to date from migrationsPath (a migrate source URL such
// as "file://db/migrations").
func Open(dbPath, migrationsPath string) (*sql.DB, error) {
	m, err := migrate.New(migrationsPath, "sqlite3://"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening migrations: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	e1, e2 := m.Close()
	if e1 != nil || e2 != nil {
		log.Err(e1).Msg("close-source")
		log.Err(e2).Msg("close-database")
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
