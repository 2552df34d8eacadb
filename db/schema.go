package db

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"vtb/errors"

	_ "github.com/mattn/go-sqlite3"
)

// Schema of the backend's persistent entities. Every statement is an
// ensure-exists operation so initialization is restart-safe: running it
// against an already-initialized database changes nothing.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL,
		full_name TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		wallet_balance REAL NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL,
		is_superuser BOOLEAN NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS tickets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users (id),
		subject TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'open',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS ticket_messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ticket_id INTEGER NOT NULL REFERENCES tickets (id),
		sender TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tickets_user_id ON tickets (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_ticket_messages_ticket_id ON ticket_messages (ticket_id)`,
}

// Tables returns the table names the initializer ensures.
func Tables() []string {
	return []string{"users", "admins", "tickets", "ticket_messages"}
}

// ParseDatabaseURL splits a database URL into a database/sql driver name
// and its DSN. Only sqlite URLs are supported; the backend's networked
// engines are provisioned outside this tool.
func ParseDatabaseURL(url string) (driver, dsn string, err error) {
	scheme, rest, found := strings.Cut(url, "://")
	if !found {
		return "", "", fmt.Errorf("invalid database URL %q", url)
	}

	switch scheme {
	case "sqlite", "sqlite3":
		// sqlite:///relative.db and sqlite:////absolute.db, following the
		// three-slash URL convention.
		return "sqlite3", strings.TrimPrefix(rest, "/"), nil
	default:
		return "", "", &errors.UnsupportedDatabaseError{Scheme: scheme}
	}
}

// Initializer ensures the backend's tables exist before the service is
// allowed to start. The connection is scoped to EnsureSchema and released
// before the handoff to the service process.
type Initializer struct {
	URL string
}

func NewInitializer(url string) *Initializer {
	return &Initializer{URL: url}
}

func (i *Initializer) EnsureSchema() error {
	driver, dsn, err := ParseDatabaseURL(i.URL)
	if err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}

	slog.Info("Initializing database tables")
	slog.Debug("Database DSN: " + dsn)

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open database '%s': %w", dsn, err)
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		return fmt.Errorf("database '%s' is not reachable: %w", dsn, err)
	}

	for _, stmt := range schemaStatements {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	slog.Info("Database tables ready")
	return nil
}
