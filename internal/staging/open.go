package staging

import (
	"context"
	"fmt"
)

// Config selects and configures a staging backend.
type Config struct {
	Driver Driver
	S3     S3Config
}

// Open returns the Stager named by cfg.Driver. An empty driver selects s3.
func Open(ctx context.Context, cfg Config) (Stager, error) {
	switch cfg.Driver {
	case DriverS3, "":
		return NewS3(ctx, cfg.S3)
	case DriverMemory:
		return NewMemory(cfg.S3.Bucket), nil
	default:
		return nil, fmt.Errorf("staging: unknown driver %q", cfg.Driver)
	}
}
