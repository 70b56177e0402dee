package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withEnvFile points envFile at a temp file holding content ("" = no file).
func withEnvFile(t *testing.T, content string) {
	t.Helper()
	orig := envFile
	t.Cleanup(func() { envFile = orig })

	envFile = filepath.Join(t.TempDir(), ".env")
	if content != "" {
		require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
	}
}

func TestParseEnv_Variables(t *testing.T) {
	withEnvFile(t, "")
	t.Setenv(EnvAPIURL, "https://api.example.com")
	t.Setenv(EnvDatabase, "/tmp/sp.db")
	t.Setenv(EnvS3Bucket, "plans")
	t.Setenv(EnvProvider, "  ")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/sp.db", cfg.DatabasePath)
	assert.Equal(t, "ollama", cfg.DefaultProvider, "blank value keeps the default")
	assert.True(t, cfg.S3Enabled())
}

func TestParseEnv_DotEnvFile(t *testing.T) {
	// godotenv sets the variables process-wide; register them for cleanup
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvExportDir, "")
	require.NoError(t, os.Unsetenv(EnvLogLevel))
	require.NoError(t, os.Unsetenv(EnvExportDir))
	withEnvFile(t, EnvLogLevel+"=debug\n"+EnvExportDir+"=out\n")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "out", cfg.ExportDir)
}

func TestParseEnv_ProcessEnvWinsOverFile(t *testing.T) {
	t.Setenv(EnvProvider, "groq")
	withEnvFile(t, EnvProvider+"=openai\n")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "groq", cfg.DefaultProvider)
}

func TestParseEnv_MalformedFilePanics(t *testing.T) {
	withEnvFile(t, EnvAPIURL+"=\"unterminated\n")

	var cfg Config
	require.Panics(t, func() { parseEnv(&cfg) })
}
