package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

//go:embed migrations/*.sql
var migrations embed.FS

// InitDB opens the database and applies the embedded migrations. With an empty
// primaryURL dbPath is a local SQLite file (or ":memory:"); otherwise the
// Turso database at primaryURL is used.
func InitDB(dbPath string, primaryURL string, authToken string) (*sql.DB, func(), error) {
	db, err := open(dbPath, primaryURL, authToken)
	if err != nil {
		return nil, nil, err
	}
	teardown := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}

	if err := migrate(db); err != nil {
		teardown()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("Database initialized successfully")
	return db, teardown, nil
}

func open(dbPath, primaryURL, authToken string) (*sql.DB, error) {
	if primaryURL == "" {
		log.Info("Initializing local-only SQLite database", "path", dbPath)
		db, err := sql.Open("sqlite3", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open local database: %w", err)
		}
		// Every connection to ":memory:" would get its own empty database.
		db.SetMaxOpenConns(1)
		return db, nil
	}

	log.Info("Initializing Turso database", "url", primaryURL)
	db, err := sql.Open("libsql", primaryURL+"?authToken="+authToken)
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", primaryURL, err)
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(log.Default())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}
