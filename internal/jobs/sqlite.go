package jobs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

const defaultSQLitePath = "textractkit.db"

var sqliteDialect = dialect{
	name: "sqlite",
	create: `CREATE TABLE IF NOT EXISTS jobs (
		job_id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		payload BLOB NOT NULL
	)`,
	upsert: `INSERT INTO jobs (job_id, kind, payload) VALUES (?, ?, ?)
		ON CONFLICT(job_id) DO UPDATE SET kind = excluded.kind, payload = excluded.payload`,
	get:  `SELECT payload FROM jobs WHERE job_id = ?`,
	list: `SELECT payload FROM jobs`,
}

// SQLiteStore keeps the ledger in a local SQLite file.
type SQLiteStore struct {
	*sqlStore
	path string
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (creating when needed) the ledger at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		path = defaultSQLitePath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store, err := newSQLStore(ctx, db, sqliteDialect)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{sqlStore: store, path: path}, nil
}

// Path returns the database file location.
func (s *SQLiteStore) Path() string { return s.path }
