package config

import (
	"time"

	"github.com/dmitrijs2005/sprintpilot/internal/common"
)

// Config holds runtime settings for the sprintpilot CLI.
//
// Fields:
//   - APIBaseURL: root of the backend, without the /api/v1 prefix.
//   - DatabasePath: SQLite file holding the persisted credential.
//   - DefaultProvider: generation engine used when a command names none.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - ExportDir: where exported documents are written.
//   - LogLevel: debug, info, warn or error.
//   - S3*: optional bucket for "export ... s3".
type Config struct {
	APIBaseURL          string
	DatabasePath        string
	DefaultProvider     string
	OnlineCheckInterval time.Duration
	ExportDir           string
	LogLevel            string

	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.DatabasePath = "sprintpilot.db"
	c.DefaultProvider = common.DefaultProvider
	c.OnlineCheckInterval = 3 * time.Second
	c.ExportDir = "exports"
	c.LogLevel = "warn"
	c.S3Region = "us-east-1"
}

// S3Enabled reports whether a bucket is configured.
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (and .env), JSON (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
