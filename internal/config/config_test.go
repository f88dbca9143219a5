package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultInputPath, cfg.Input)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.True(t, cfg.Parallel)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.SQLite.Enabled)
	assert.Equal(t, "resumemcp:", cfg.Redis.Prefix)
}

func TestLoad_YAMLFile(t *testing.T) {
	content := `
input: resume.yaml
output_dir: public/mcp
parallel: false
logging:
  level: debug
  format: json
sqlite:
  enabled: true
  path: out/resume.db
redis:
  addr: cache:6379
  ttl: 24h
`
	path := filepath.Join(t.TempDir(), "resumemcp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "resume.yaml", cfg.Input)
	assert.Equal(t, "public/mcp", cfg.OutputDir)
	assert.False(t, cfg.Parallel)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.SQLite.Enabled)
	assert.Equal(t, "out/resume.db", cfg.SQLite.Path)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
	// untouched sections keep their defaults
	assert.Equal(t, "resume-mcp", cfg.ObjectStore.Bucket)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RESUMEMCP_OUTPUT_DIR", "/srv/static")
	t.Setenv("RESUMEMCP_PARALLEL", "false")
	t.Setenv("RESUMEMCP_REDIS_DB", "3")
	t.Setenv("RESUMEMCP_REDIS_TTL", "90s")
	t.Setenv("RESUMEMCP_OBJECTSTORE_USE_SSL", "true")
	t.Setenv("RESUMEMCP_METRICS_ENABLED", "not-a-bool")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/srv/static", cfg.OutputDir)
	assert.False(t, cfg.Parallel)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 90*time.Second, cfg.Redis.TTL)
	assert.True(t, cfg.ObjectStore.UseSSL)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: [unclosed"), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "parsing config file")
}
