package persist

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore is the default, embedded, pure-Go backend: zero operational
// overhead, suitable for a single simulator process. It enables WAL mode
// the same way the teacher's SQLiteStore does.
type SQLiteStore struct {
	*sqlStore
	path string
}

// NewSQLiteStore opens (creating if necessary) a SQLite database at path.
// Pass ":memory:" for a throwaway store, as this package's own tests do.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("persist: failed to open sqlite connection: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("persist: failed to enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("persist: failed to enable foreign keys: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("persist: failed to set busy timeout: %w", err)
	}

	base, err := newSQLStore(db)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{sqlStore: base, path: path}, nil
}

// Path returns the database file path this store was opened with.
func (s *SQLiteStore) Path() string { return s.path }
