package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// envFile is read before the process environment is consulted. Variables
// already set in the environment win over the file.
var envFile = ".env"

const (
	EnvAPIURL      = "SPRINTPILOT_API_URL"
	EnvDatabase    = "SPRINTPILOT_DB"
	EnvProvider    = "SPRINTPILOT_PROVIDER"
	EnvLogLevel    = "SPRINTPILOT_LOG_LEVEL"
	EnvExportDir   = "SPRINTPILOT_EXPORT_DIR"
	EnvS3Bucket    = "SPRINTPILOT_S3_BUCKET"
	EnvS3Region    = "SPRINTPILOT_S3_REGION"
	EnvS3Endpoint  = "SPRINTPILOT_S3_ENDPOINT"
	EnvS3AccessKey = "SPRINTPILOT_S3_ACCESS_KEY"
	EnvS3SecretKey = "SPRINTPILOT_S3_SECRET_KEY"
)

// parseEnv overlays Config with environment variables. A missing .env file
// is fine; a malformed one panics like a malformed JSON config does.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	cfg.APIBaseURL = getEnv(EnvAPIURL, cfg.APIBaseURL)
	cfg.DatabasePath = getEnv(EnvDatabase, cfg.DatabasePath)
	cfg.DefaultProvider = getEnv(EnvProvider, cfg.DefaultProvider)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	cfg.ExportDir = getEnv(EnvExportDir, cfg.ExportDir)
	cfg.S3Bucket = getEnv(EnvS3Bucket, cfg.S3Bucket)
	cfg.S3Region = getEnv(EnvS3Region, cfg.S3Region)
	cfg.S3BaseEndpoint = getEnv(EnvS3Endpoint, cfg.S3BaseEndpoint)
	cfg.S3AccessKey = getEnv(EnvS3AccessKey, cfg.S3AccessKey)
	cfg.S3SecretKey = getEnv(EnvS3SecretKey, cfg.S3SecretKey)
}

func getEnv(key, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultValue
}
