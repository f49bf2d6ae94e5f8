package jobs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"textractkit/internal/wire"
)

// dialect holds the statements that differ between SQL drivers.
type dialect struct {
	name   string
	create string
	upsert string
	get    string
	list   string
}

// sqlStore persists each record as one JSON payload row keyed by job id.
type sqlStore struct {
	db      *sql.DB
	dialect dialect
}

func newSQLStore(ctx context.Context, db *sql.DB, d dialect) (*sqlStore, error) {
	if _, err := db.ExecContext(ctx, d.create); err != nil {
		return nil, fmt.Errorf("create %s jobs table: %w", d.name, err)
	}
	return &sqlStore{db: db, dialect: d}, nil
}

func (s *sqlStore) Save(ctx context.Context, rec Record) error {
	if err := validate(rec); err != nil {
		return err
	}
	payload, err := wire.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, s.dialect.upsert, rec.JobID, string(rec.Kind), payload); err != nil {
		return fmt.Errorf("save job %s: %w", rec.JobID, err)
	}
	return nil
}

func (s *sqlStore) Get(ctx context.Context, jobID string) (Record, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, s.dialect.get, jobID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, jobID)
	}
	if err != nil {
		return Record{}, fmt.Errorf("load job %s: %w", jobID, err)
	}
	var rec Record
	if err := wire.Unmarshal(payload, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *sqlStore) List(ctx context.Context) (_ []Record, retErr error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.list)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil && retErr == nil {
			retErr = err
		}
	}()
	var out []Record
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		var rec Record
		if err := wire.Unmarshal(payload, &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}
	sortRecords(out)
	return out, nil
}

func (s *sqlStore) Close() error { return s.db.Close() }

// DB exposes the underlying handle for tests.
func (s *sqlStore) DB() *sql.DB { return s.db }
