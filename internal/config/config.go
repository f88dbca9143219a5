// Package config loads generator settings from an optional YAML file with
// RESUMEMCP_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"resumemcp/internal/logger"
)

const (
	DefaultInputPath = "config.json"
	DefaultOutputDir = "./dist"
	envPrefix        = "RESUMEMCP_"
)

// Config is the top-level configuration.
type Config struct {
	Input       string            `yaml:"input"`
	OutputDir   string            `yaml:"output_dir"`
	Parallel    bool              `yaml:"parallel"`
	Logging     logger.Config     `yaml:"logging"`
	SQLite      SQLiteConfig      `yaml:"sqlite"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	ObjectStore ObjectStoreConfig `yaml:"objectstore"`
	Redis       RedisConfig       `yaml:"redis"`
}

// SQLiteConfig controls the relational export of the index.
type SQLiteConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// MetricsConfig controls the Prometheus textfile written after each run.
type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Textfile string `yaml:"textfile"`
}

// ObjectStoreConfig holds S3-compatible bucket settings used by publish.
type ObjectStoreConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// RedisConfig holds Redis settings used by publish.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl"`
}

// Load reads a YAML config file (if path is non-empty) over the defaults and
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input:     DefaultInputPath,
		OutputDir: DefaultOutputDir,
		Parallel:  true,
		Logging: logger.Config{
			Level:  "info",
			Format: "pretty",
		},
		SQLite: SQLiteConfig{
			Path: "resume.db",
		},
		Metrics: MetricsConfig{
			Textfile: "resumemcp.prom",
		},
		ObjectStore: ObjectStoreConfig{
			Endpoint: "localhost:9000",
			Bucket:   "resume-mcp",
		},
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "resumemcp:",
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Input, "INPUT")
	setString(&cfg.OutputDir, "OUTPUT_DIR")
	setBool(&cfg.Parallel, "PARALLEL")
	setString(&cfg.Logging.Level, "LOG_LEVEL")
	setString(&cfg.Logging.Format, "LOG_FORMAT")
	setBool(&cfg.SQLite.Enabled, "SQLITE_ENABLED")
	setString(&cfg.SQLite.Path, "SQLITE_PATH")
	setBool(&cfg.Metrics.Enabled, "METRICS_ENABLED")
	setString(&cfg.Metrics.Textfile, "METRICS_TEXTFILE")
	setString(&cfg.ObjectStore.Endpoint, "OBJECTSTORE_ENDPOINT")
	setString(&cfg.ObjectStore.AccessKey, "OBJECTSTORE_ACCESS_KEY")
	setString(&cfg.ObjectStore.SecretKey, "OBJECTSTORE_SECRET_KEY")
	setString(&cfg.ObjectStore.Bucket, "OBJECTSTORE_BUCKET")
	setString(&cfg.ObjectStore.Prefix, "OBJECTSTORE_PREFIX")
	setBool(&cfg.ObjectStore.UseSSL, "OBJECTSTORE_USE_SSL")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.Redis.Prefix, "REDIS_PREFIX")
	if v := os.Getenv(envPrefix + "REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = db
		}
	}
	if v := os.Getenv(envPrefix + "REDIS_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil {
			cfg.Redis.TTL = ttl
		}
	}
}

func setString(dst *string, name string) {
	if v := os.Getenv(envPrefix + name); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, name string) {
	if v := os.Getenv(envPrefix + name); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
