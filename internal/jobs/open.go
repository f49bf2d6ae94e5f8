package jobs

import (
	"context"
	"fmt"
)

// Driver names a ledger backend.
type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Config selects and configures a ledger backend.
type Config struct {
	Driver      Driver
	SQLitePath  string
	PostgresDSN string
}

// Open returns the Store named by cfg.Driver. An empty driver selects sqlite.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverSQLite, "":
		return OpenSQLite(ctx, cfg.SQLitePath)
	case DriverPostgres:
		return OpenPostgres(ctx, cfg.PostgresDSN)
	default:
		return nil, fmt.Errorf("jobs: unknown driver %q", cfg.Driver)
	}
}
