package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

var envVars = []string{
	"HTTP_ADDR", "PORT", "LOG_LEVEL", "LOG_FORMAT", "DATABASE_DSN",
	"N8N_WEBHOOK_URL", "N8N_AUTH_HEADER", "RELAY_TIMEOUT", "HTTP_WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT", "CORS_ORIGINS",
}

// clearEnv unsets every variable the config reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envVars {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
}

func load(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	v := viper.New()
	require.NoError(t, BindFlags(flags, v))
	require.NoError(t, flags.Parse(args))
	return Load(v)
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.HTTPAddr)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
	assert.Equal(t, "auto", cfg.LogFormat)
	assert.Equal(t, ":memory:", cfg.DatabaseDSN)
	assert.Equal(t, 5*time.Second, cfg.RelayTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
	assert.Empty(t, cfg.CORSOrigins)
	assert.False(t, cfg.RelayConfigured())
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("N8N_WEBHOOK_URL", "https://n8n.test/webhook/chat")
	t.Setenv("N8N_AUTH_HEADER", "Bearer secret")
	t.Setenv("RELAY_TIMEOUT", "2s")
	t.Setenv("CORS_ORIGINS", "https://a.test, https://b.test")

	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "https://n8n.test/webhook/chat", cfg.WebhookURL)
	assert.Equal(t, "Bearer secret", cfg.WebhookAuthHeader)
	assert.Equal(t, 2*time.Second, cfg.RelayTimeout)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.CORSOrigins)
	assert.True(t, cfg.RelayConfigured())
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":1111")

	cfg, err := load(t, "--http-addr", "127.0.0.1:2222")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:2222", cfg.HTTPAddr)
}

func TestLoad_RelayNeedsBothSettings(t *testing.T) {
	clearEnv(t)
	t.Setenv("N8N_WEBHOOK_URL", "https://n8n.test/webhook/chat")

	cfg, err := load(t)
	require.NoError(t, err)
	assert.False(t, cfg.RelayConfigured())
}

func TestLoad_NonPositiveRelayTimeoutFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("RELAY_TIMEOUT", "0s")

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.RelayTimeout)
}

func TestLoad_RelayTimeoutMustFitWriteTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("RELAY_TIMEOUT", "30s")
	_, err := load(t)
	assert.ErrorContains(t, err, "must be shorter than the HTTP write timeout")

	clearEnv(t)
	t.Setenv("RELAY_TIMEOUT", "45s")
	t.Setenv("HTTP_WRITE_TIMEOUT", "1m")
	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, cfg.RelayTimeout)
	assert.Equal(t, time.Minute, cfg.WriteTimeout)

	clearEnv(t)
	_, err = load(t, "--relay-timeout", "10s", "--http-write-timeout", "10s")
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "loud")
	_, err := load(t)
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("LOG_FORMAT", "xml")
	_, err = load(t)
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("N8N_WEBHOOK_URL=https://from-dotenv.test\nPORT=9000\n"), 0600))
	t.Setenv("PORT", "7000")

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "https://from-dotenv.test", os.Getenv("N8N_WEBHOOK_URL"))
	// already-set variables are not overridden
	assert.Equal(t, "7000", os.Getenv("PORT"))
}

func TestLoadDotEnv_MissingFileIsFine(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}
