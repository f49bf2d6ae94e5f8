package jobs

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

const (
	postgresDriver     = "pgx"
	defaultPostgresDSN = "postgres://localhost/textractkit?sslmode=disable"
)

var (
	sqlOpen = sql.Open
	openMu  sync.Mutex
)

var postgresDialect = dialect{
	name: "postgres",
	create: `CREATE TABLE IF NOT EXISTS jobs (
		job_id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		payload JSONB NOT NULL
	)`,
	upsert: `INSERT INTO jobs (job_id, kind, payload) VALUES ($1, $2, $3)
		ON CONFLICT (job_id) DO UPDATE SET kind = EXCLUDED.kind, payload = EXCLUDED.payload`,
	get:  `SELECT payload FROM jobs WHERE job_id = $1`,
	list: `SELECT payload FROM jobs`,
}

// PostgresStore keeps the ledger in a Postgres table.
type PostgresStore struct {
	*sqlStore
}

var _ Store = (*PostgresStore)(nil)

// OpenPostgres connects to dsn (falls back to the local default) and ensures
// the jobs table exists.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	if dsn == "" {
		dsn = defaultPostgresDSN
	}
	openMu.Lock()
	db, err := sqlOpen(postgresDriver, dsn)
	openMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	store, err := newSQLStore(ctx, db, postgresDialect)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresStore{sqlStore: store}, nil
}
