package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textractkit/internal/jobs"
	"textractkit/internal/staging"
)

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, MetricsNone, cfg.Metrics)
	assert.Equal(t, jobs.DriverSQLite, cfg.Jobs.Driver)
	assert.Equal(t, "textractkit.db", cfg.Jobs.SQLitePath)
	assert.Equal(t, staging.DriverS3, cfg.Staging.Driver)
	assert.Equal(t, "uploads/", cfg.Staging.Prefix)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
region = "eu-central-1"
poll_interval = "750ms"
metrics = "prometheus"

[jobs]
driver = "postgres"
postgres_dsn = "postgres://db/jobs"

[staging]
bucket = "scans"
path_style = true
`)

	cfg, err := Load(path, envMap(nil))

	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", cfg.Region)
	assert.Equal(t, 750*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, MetricsPrometheus, cfg.Metrics)
	assert.Equal(t, jobs.DriverPostgres, cfg.Jobs.Driver)
	assert.Equal(t, "postgres://db/jobs", cfg.Jobs.PostgresDSN)
	assert.Equal(t, "textractkit.db", cfg.Jobs.SQLitePath, "unset keys keep defaults")
	assert.Equal(t, "scans", cfg.Staging.Bucket)
	assert.True(t, cfg.Staging.PathStyle)
	assert.Equal(t, "uploads/", cfg.Staging.Prefix)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
region = "eu-central-1"
[jobs]
driver = "postgres"
[staging]
bucket = "from-file"
`)

	cfg, err := Load(path, envMap(map[string]string{
		"TEXTRACTKIT_REGION":             "ap-southeast-2",
		"TEXTRACTKIT_ENDPOINT":           "http://localhost:4566",
		"TEXTRACTKIT_JOBS_DRIVER":        "memory",
		"TEXTRACTKIT_STAGING_BUCKET":     "from-env",
		"TEXTRACTKIT_STAGING_DRIVER":     "memory",
		"TEXTRACTKIT_STAGING_PATH_STYLE": "true",
		"TEXTRACTKIT_POLL_INTERVAL":      "2s",
		"TEXTRACTKIT_METRICS":            "expvar",
		"TEXTRACTKIT_SQLITE_PATH":        "",
	}))

	require.NoError(t, err)
	assert.Equal(t, "ap-southeast-2", cfg.Region)
	assert.Equal(t, "http://localhost:4566", cfg.Endpoint)
	assert.Equal(t, jobs.DriverMemory, cfg.Jobs.Driver)
	assert.Equal(t, "from-env", cfg.Staging.Bucket)
	assert.Equal(t, staging.DriverMemory, cfg.Staging.Driver)
	assert.True(t, cfg.Staging.PathStyle)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, MetricsExpvar, cfg.Metrics)
	assert.Equal(t, "textractkit.db", cfg.Jobs.SQLitePath, "empty env values are ignored")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"), envMap(nil))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MissingDefaultFileIsFine(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", envMap(nil))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		env     map[string]string
		invalid bool
	}{
		{name: "bad toml", file: "region = "},
		{name: "bad file interval", file: `poll_interval = "soon"`},
		{name: "bad env interval", env: map[string]string{"TEXTRACTKIT_POLL_INTERVAL": "soon"}},
		{name: "zero interval", env: map[string]string{"TEXTRACTKIT_POLL_INTERVAL": "0s"}},
		{name: "bad path style", env: map[string]string{"TEXTRACTKIT_STAGING_PATH_STYLE": "maybe"}},
		{name: "jobs driver", env: map[string]string{"TEXTRACTKIT_JOBS_DRIVER": "mongo"}, invalid: true},
		{name: "staging driver", file: "[staging]\ndriver = \"gcs\"", invalid: true},
		{name: "metrics", env: map[string]string{"TEXTRACTKIT_METRICS": "statsd"}, invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file)

			_, err := Load(path, envMap(tt.env))

			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidDriver)
			} else {
				assert.NotErrorIs(t, err, ErrInvalidDriver)
			}
		})
	}
}

func TestDerivedConfigs(t *testing.T) {
	cfg := Default()
	cfg.Region = "eu-west-1"
	cfg.Endpoint = "http://localhost:4566"
	cfg.Staging.Bucket = "scans"
	cfg.Staging.PathStyle = true

	jc := cfg.JobsConfig()
	sc := cfg.StagingConfig()
	cc := cfg.ClientConfig()

	assert.Equal(t, jobs.DriverSQLite, jc.Driver)
	assert.Equal(t, "textractkit.db", jc.SQLitePath)
	assert.Equal(t, staging.DriverS3, sc.Driver)
	assert.Equal(t, "scans", sc.S3.Bucket)
	assert.Equal(t, "eu-west-1", sc.S3.Region)
	assert.True(t, sc.S3.PathStyle)
	assert.Equal(t, "eu-west-1", cc.Region)
	assert.Equal(t, "http://localhost:4566", cc.Endpoint)
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultPath()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".textractkit", "config.toml"), path)
}
