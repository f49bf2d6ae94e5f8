package jobs

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// overrideSQLOpen swaps the postgres opener and returns a restore func.
func overrideSQLOpen(fn func(driverName, dsn string) (*sql.DB, error)) func() {
	openMu.Lock()
	prev := sqlOpen
	sqlOpen = fn
	openMu.Unlock()
	return func() {
		openMu.Lock()
		sqlOpen = prev
		openMu.Unlock()
	}
}

// stubConn answers exactly the statements in postgresDialect.
type stubConn struct {
	mu       sync.Mutex
	payloads map[string][]byte
	execs    []string
	failPing bool
}

type stubDriver struct{ conn *stubConn }

func (d *stubDriver) Open(string) (driver.Conn, error) { return d.conn, nil }

var (
	stubSeq   atomic.Int64
	stubConns sync.Map
)

func newStubDB() *sql.DB {
	conn := &stubConn{payloads: make(map[string][]byte)}
	name := fmt.Sprintf("stubjobs%d", stubSeq.Add(1))
	sql.Register(name, &stubDriver{conn: conn})
	db, err := sql.Open(name, "stub")
	if err != nil {
		panic(err)
	}
	db.SetMaxOpenConns(1)
	stubConns.Store(db, conn)
	return db
}

func stubConnOf(db *sql.DB) *stubConn {
	conn, _ := stubConns.Load(db)
	return conn.(*stubConn)
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) { return nil, fmt.Errorf("not implemented") }
func (c *stubConn) Close() error                        { return nil }
func (c *stubConn) Begin() (driver.Tx, error)           { return nil, fmt.Errorf("not implemented") }

func (c *stubConn) Ping(context.Context) error {
	if c.failPing {
		return fmt.Errorf("ping fail")
	}
	return nil
}

func (c *stubConn) ExecContext(_ context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.execs = append(c.execs, query)
	switch query {
	case postgresDialect.create:
		return driver.RowsAffected(0), nil
	case postgresDialect.upsert:
		if len(args) != 3 {
			return nil, fmt.Errorf("upsert expects 3 args, got %d", len(args))
		}
		id, _ := args[0].Value.(string)
		payload, _ := args[2].Value.([]byte)
		c.payloads[id] = append([]byte(nil), payload...)
		return driver.RowsAffected(1), nil
	}
	return nil, fmt.Errorf("unexpected exec: %s", query)
}

func (c *stubConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch query {
	case postgresDialect.get:
		id, _ := args[0].Value.(string)
		rows := &stubRows{}
		if payload, ok := c.payloads[id]; ok {
			rows.values = [][]byte{payload}
		}
		return rows, nil
	case postgresDialect.list:
		rows := &stubRows{}
		for _, payload := range c.payloads {
			rows.values = append(rows.values, payload)
		}
		return rows, nil
	}
	return nil, fmt.Errorf("unexpected query: %s", query)
}

type stubRows struct {
	values [][]byte
	pos    int
}

func (r *stubRows) Columns() []string { return []string{"payload"} }
func (r *stubRows) Close() error      { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.values) {
		return io.EOF
	}
	dest[0] = r.values[r.pos]
	r.pos++
	return nil
}
