// Package sqlite implements the repository interfaces using SQLite as the
// storage backend.
//
// WHY SQLITE?
// SQLite is an embedded database — a single file, no separate server to
// install or manage. For a single-server CRUD API that's all the store we
// need, and ":memory:" gives tests a real database for free.
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo, which needs a C compiler and makes
// cross-compilation painful. modernc.org/sqlite is a pure Go translation
// of SQLite — works everywhere Go works.
package sqlite

import (
	"database/sql"
	"fmt"

	// Side-effect import: the driver registers itself with database/sql
	// under the name "sqlite" in its init().
	_ "modernc.org/sqlite"
)

// DB owns the sql.DB connection pool and exposes the per-entity stores.
// Blogs and Users share the pool; Close shuts it down for both.
type DB struct {
	conn  *sql.DB
	Blogs *BlogStore
	Users *UserStore
}

// New creates a SQLite connection pool and runs migrations.
//
// dbPath examples:
//   - "data/bloglist.db" → file-based database (persistent)
//   - ":memory:"         → in-memory database (tests, lost on close)
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// sql.Open doesn't actually connect — Ping forces the first connection
	// so a bad path or permissions problem surfaces here, not on the first
	// query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL mode allows concurrent reads while a write is in progress —
	// the store is the only shared mutable resource, so this is where
	// request isolation actually happens.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// Foreign keys are OFF by default in SQLite. blogs.user_id references
	// users(id), so we want referential integrity enforced.
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{
		conn:  conn,
		Blogs: &BlogStore{conn: conn},
		Users: &UserStore{conn: conn},
	}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection pool. Always defer this next to New.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the schema. CREATE TABLE IF NOT EXISTS keeps it
// idempotent — safe to run on every startup.
//
// Note the blogs.user_id foreign key: ownership lives on the blog row, so
// creating a blog is a single INSERT. There is no separate "append blog id
// to the user's collection" write, and therefore no partial-update window
// between two dependent writes — the user's blog list is derived by query.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			username      TEXT NOT NULL UNIQUE,
			name          TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS blogs (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			author     TEXT NOT NULL DEFAULT '',
			url        TEXT NOT NULL,
			likes      INTEGER NOT NULL DEFAULT 0,
			user_id    TEXT NOT NULL REFERENCES users(id),
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_blogs_user_id ON blogs(user_id);
		CREATE INDEX IF NOT EXISTS idx_blogs_created_at ON blogs(created_at);
	`)
	if err != nil {
		return fmt.Errorf("creating blogs table: %w", err)
	}

	return nil
}
