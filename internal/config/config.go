// Package config resolves textractkit settings from an optional TOML file and
// TEXTRACTKIT_* environment variables. Environment values win over the file.
//
//	TEXTRACTKIT_REGION              AWS region (default us-east-1)
//	TEXTRACTKIT_ENDPOINT            custom Textract endpoint (optional)
//	TEXTRACTKIT_JOBS_DRIVER         memory|sqlite|postgres (default sqlite)
//	TEXTRACTKIT_SQLITE_PATH         ledger file (default textractkit.db)
//	TEXTRACTKIT_POSTGRES_DSN        ledger DSN for the postgres driver
//	TEXTRACTKIT_STAGING_DRIVER      s3|memory (default s3)
//	TEXTRACTKIT_STAGING_BUCKET      bucket for staged documents (required for s3)
//	TEXTRACTKIT_STAGING_PREFIX      key prefix (default uploads/)
//	TEXTRACTKIT_STAGING_ENDPOINT    custom S3 endpoint, e.g. MinIO (optional)
//	TEXTRACTKIT_STAGING_PATH_STYLE  true|false (default false)
//	TEXTRACTKIT_POLL_INTERVAL       job status poll interval (default 5s)
//	TEXTRACTKIT_METRICS             none|expvar|prometheus (default none)
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"textractkit/internal/jobs"
	"textractkit/internal/staging"
	"textractkit/pkg/client"
)

// ErrInvalidDriver is returned when a driver or exporter name is not
// recognised.
var ErrInvalidDriver = errors.New("config: invalid driver")

// Metrics names the client metrics exporter.
type Metrics string

const (
	MetricsNone       Metrics = "none"
	MetricsExpvar     Metrics = "expvar"
	MetricsPrometheus Metrics = "prometheus"
)

const (
	defaultRegion        = "us-east-1"
	defaultSQLitePath    = "textractkit.db"
	defaultPostgresDSN   = "postgres://localhost/textractkit?sslmode=disable"
	defaultStagingPrefix = "uploads/"
)

// Config is the resolved configuration.
type Config struct {
	Region       string        `toml:"region"`
	Endpoint     string        `toml:"endpoint,omitempty"`
	PollInterval time.Duration `toml:"-"`
	Metrics      Metrics       `toml:"metrics"`
	Jobs         Jobs          `toml:"jobs"`
	Staging      Staging       `toml:"staging"`
}

// Jobs configures the job ledger.
type Jobs struct {
	Driver      jobs.Driver `toml:"driver"`
	SQLitePath  string      `toml:"sqlite_path"`
	PostgresDSN string      `toml:"postgres_dsn"`
}

// Staging configures document staging.
type Staging struct {
	Driver    staging.Driver `toml:"driver"`
	Bucket    string         `toml:"bucket"`
	Prefix    string         `toml:"prefix"`
	Endpoint  string         `toml:"endpoint,omitempty"`
	PathStyle bool           `toml:"path_style"`
}

// fileConfig mirrors Config for decoding; the poll interval is a duration
// string in the file.
type fileConfig struct {
	Config
	PollInterval string `toml:"poll_interval"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Region:       defaultRegion,
		PollInterval: client.DefaultPollInterval,
		Metrics:      MetricsNone,
		Jobs: Jobs{
			Driver:      jobs.DriverSQLite,
			SQLitePath:  defaultSQLitePath,
			PostgresDSN: defaultPostgresDSN,
		},
		Staging: Staging{
			Driver: staging.DriverS3,
			Prefix: defaultStagingPrefix,
		},
	}
}

// DefaultPath returns ~/.textractkit/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".textractkit", "config.toml"), nil
}

// Load reads path over the defaults, then applies environment overrides from
// lookup (os.LookupEnv when nil). An empty path tries DefaultPath and
// tolerates its absence; an explicit path must exist.
func Load(path string, lookup func(string) (string, bool)) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg := Default()
	optional := false
	if path == "" {
		p, err := DefaultPath()
		if err == nil {
			path = p
			optional = true
		}
	}
	if path != "" {
		if err := readFile(path, optional, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string, optional bool, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	fc := fileConfig{Config: *cfg}
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if fc.PollInterval != "" {
		d, err := time.ParseDuration(fc.PollInterval)
		if err != nil {
			return fmt.Errorf("parse config %s: poll_interval: %w", path, err)
		}
		fc.Config.PollInterval = d
	}
	*cfg = fc.Config
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	str("TEXTRACTKIT_REGION", &cfg.Region)
	str("TEXTRACTKIT_ENDPOINT", &cfg.Endpoint)
	str("TEXTRACTKIT_SQLITE_PATH", &cfg.Jobs.SQLitePath)
	str("TEXTRACTKIT_POSTGRES_DSN", &cfg.Jobs.PostgresDSN)
	str("TEXTRACTKIT_STAGING_BUCKET", &cfg.Staging.Bucket)
	str("TEXTRACTKIT_STAGING_PREFIX", &cfg.Staging.Prefix)
	str("TEXTRACTKIT_STAGING_ENDPOINT", &cfg.Staging.Endpoint)
	if v, ok := lookup("TEXTRACTKIT_JOBS_DRIVER"); ok && v != "" {
		cfg.Jobs.Driver = jobs.Driver(v)
	}
	if v, ok := lookup("TEXTRACTKIT_STAGING_DRIVER"); ok && v != "" {
		cfg.Staging.Driver = staging.Driver(v)
	}
	if v, ok := lookup("TEXTRACTKIT_METRICS"); ok && v != "" {
		cfg.Metrics = Metrics(v)
	}
	if v, ok := lookup("TEXTRACTKIT_STAGING_PATH_STYLE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TEXTRACTKIT_STAGING_PATH_STYLE: %w", err)
		}
		cfg.Staging.PathStyle = b
	}
	if v, ok := lookup("TEXTRACTKIT_POLL_INTERVAL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TEXTRACTKIT_POLL_INTERVAL: %w", err)
		}
		cfg.PollInterval = d
	}
	return nil
}

// Validate checks driver names and the poll interval.
func (c Config) Validate() error {
	switch c.Jobs.Driver {
	case jobs.DriverMemory, jobs.DriverSQLite, jobs.DriverPostgres:
	default:
		return fmt.Errorf("%w: jobs driver %q", ErrInvalidDriver, c.Jobs.Driver)
	}
	switch c.Staging.Driver {
	case staging.DriverS3, staging.DriverMemory:
	default:
		return fmt.Errorf("%w: staging driver %q", ErrInvalidDriver, c.Staging.Driver)
	}
	switch c.Metrics {
	case MetricsNone, MetricsExpvar, MetricsPrometheus:
	default:
		return fmt.Errorf("%w: metrics exporter %q", ErrInvalidDriver, c.Metrics)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("config: poll interval must be positive, got %s", c.PollInterval)
	}
	return nil
}

// JobsConfig returns the ledger settings.
func (c Config) JobsConfig() jobs.Config {
	return jobs.Config{Driver: c.Jobs.Driver, SQLitePath: c.Jobs.SQLitePath, PostgresDSN: c.Jobs.PostgresDSN}
}

// StagingConfig returns the staging settings. The staging S3 client shares
// the Textract region.
func (c Config) StagingConfig() staging.Config {
	return staging.Config{
		Driver: c.Staging.Driver,
		S3: staging.S3Config{
			Region:    c.Region,
			Bucket:    c.Staging.Bucket,
			Endpoint:  c.Staging.Endpoint,
			PathStyle: c.Staging.PathStyle,
		},
	}
}

// ClientConfig returns the Textract client settings.
func (c Config) ClientConfig() client.Config {
	return client.Config{Region: c.Region, Endpoint: c.Endpoint}
}
