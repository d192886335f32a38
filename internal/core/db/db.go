// Package db provides database connection management for the content
// catalog. Supports SQLite (development, content-pack files) and PostgreSQL
// (hosted) via sqlx; named queries load from embedded .sql files and schema
// migrations run from the embedded migrations module.
package db

import (
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// The catalog workload is read-mostly: bulk snapshot loads plus the
// applicable-expansion query. A small pool is enough; writes come only from
// content tooling and migrations.
const (
	maxOpenConns    = 8
	maxIdleConns    = 2
	connMaxIdleTime = 5 * time.Minute
	connMaxLifetime = 30 * time.Minute
)

// Open establishes a database connection from a URL and configures the
// connection pool. Supported URL schemes: sqlite://, postgres://.
// SQLite URLs: sqlite://path/to/file.db (relative) or sqlite:///abs/path.
func Open(dbURL string) (*sqlx.DB, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}

	var driverName, dataSource string
	switch u.Scheme {
	case "sqlite":
		driverName = "sqlite3"
		// sqlite://file.db parses the leading path element as host;
		// sqlite:///abs/path has an empty host and a path-only URL.
		if u.Host != "" {
			dataSource = u.Host + u.Path
		} else {
			dataSource = u.Path
		}
	case "postgres":
		driverName = "postgres"
		dataSource = dbURL
	default:
		return nil, fmt.Errorf("unsupported database scheme: %s (expected sqlite or postgres)", u.Scheme)
	}

	conn, err := sqlx.Open(driverName, dataSource)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)
	conn.SetConnMaxIdleTime(connMaxIdleTime)
	conn.SetConnMaxLifetime(connMaxLifetime)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}
