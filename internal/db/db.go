package db

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

func init() {
	// modernc's driver registers as "sqlite", which sqlx doesn't know about.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open opens a database connection for the given DSN. Postgres URLs go
// through pgx; anything else is treated as a SQLite file path. All store
// queries are written with ? placeholders and rebound per driver, so both
// backends share one store implementation.
func Open(dsn string) (*sqlx.DB, error) {
	driver := "sqlite"
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		driver = "pgx"
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if driver == "sqlite" {
		// Every pooled connection to :memory: would get its own database.
		if strings.Contains(dsn, ":memory:") {
			db.SetMaxOpenConns(1)
		}

		// Pragmas for performance and correctness.
		pragmas := []string{
			"PRAGMA journal_mode=WAL",
			"PRAGMA busy_timeout=5000",
			"PRAGMA foreign_keys=ON",
			"PRAGMA synchronous=NORMAL",
		}
		for _, p := range pragmas {
			if _, err := db.Exec(p); err != nil {
				db.Close()
				return nil, fmt.Errorf("setting pragma %q: %w", p, err)
			}
		}
	} else {
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("pinging database: %w", err)
		}
	}

	return db, nil
}
