package db

import (
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate applies all pending schema migrations. The SQL differs enough
// between the two backends (autoincrement, timestamp types) that each
// dialect keeps its own migration directory.
func Migrate(db *sqlx.DB) error {
	dialect, dir := "sqlite3", "migrations/sqlite"
	if db.DriverName() == "pgx" {
		dialect, dir = "postgres", "migrations/postgres"
	}

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	if err := goose.Up(db.DB, dir); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
