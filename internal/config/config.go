package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	defaultPort            = "5000"
	defaultRelayTimeout    = 5 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultWriteTimeout    = 30 * time.Second
)

type Config struct {
	HTTPAddr string

	LogLevel  zapcore.Level
	LogFormat string

	// DatabaseDSN selects the SQLite database backing the entity store.
	DatabaseDSN string

	// Chat relay target. Both must be set for messages to be forwarded.
	WebhookURL        string
	WebhookAuthHeader string
	RelayTimeout      time.Duration

	// WriteTimeout bounds a whole response and must exceed RelayTimeout.
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

// RelayConfigured reports whether chat messages should be forwarded.
func (c Config) RelayConfigured() bool {
	return c.WebhookURL != "" && c.WebhookAuthHeader != ""
}

type option struct {
	key   string
	env   string
	value interface{}
	desc  string
}

var options = []option{
	{"http-addr", "HTTP_ADDR", "", "listen address (defaults to :$PORT, then :" + defaultPort + ")"},
	{"port", "PORT", "", "listen port, used when http-addr is empty"},
	{"log-level", "LOG_LEVEL", "info", "log level: debug, info, warn or error"},
	{"log-format", "LOG_FORMAT", "auto", "log format: auto, console or json"},
	{"database-dsn", "DATABASE_DSN", ":memory:", "SQLite DSN for the entity store"},
	{"n8n-webhook-url", "N8N_WEBHOOK_URL", "", "chat relay target URL"},
	{"n8n-auth-header", "N8N_AUTH_HEADER", "", "Authorization header value sent to the chat relay target"},
	{"relay-timeout", "RELAY_TIMEOUT", defaultRelayTimeout, "timeout for a single chat relay call"},
	{"http-write-timeout", "HTTP_WRITE_TIMEOUT", defaultWriteTimeout, "maximum time to write a response, must exceed relay-timeout"},
	{"shutdown-timeout", "SHUTDOWN_TIMEOUT", defaultShutdownTimeout, "graceful shutdown budget"},
	{"cors-origins", "CORS_ORIGINS", "", "comma-separated origins allowed by CORS, * for any"},
}

// BindFlags registers every option on flags and binds it, together with its
// environment variable, to v. Flags win over the environment, which wins
// over the defaults.
func BindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	for _, o := range options {
		switch d := o.value.(type) {
		case string:
			flags.String(o.key, d, o.desc)
		case time.Duration:
			flags.Duration(o.key, d, o.desc)
		default:
			// add a case when introducing an option of a new type
			panic(fmt.Errorf("unknown option type %T", o.value))
		}
		if err := v.BindPFlag(o.key, flags.Lookup(o.key)); err != nil {
			return err
		}
		if err := v.BindEnv(o.key, o.env); err != nil {
			return err
		}
	}
	return nil
}

// LoadDotEnv loads KEY=value pairs from the given files (".env" if none)
// into the process environment. Missing files are ignored and variables
// that are already set are left alone.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads the configuration bound by BindFlags.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		HTTPAddr:          v.GetString("http-addr"),
		LogFormat:         v.GetString("log-format"),
		DatabaseDSN:       v.GetString("database-dsn"),
		WebhookURL:        strings.TrimSpace(v.GetString("n8n-webhook-url")),
		WebhookAuthHeader: strings.TrimSpace(v.GetString("n8n-auth-header")),
		RelayTimeout:      v.GetDuration("relay-timeout"),
		WriteTimeout:      v.GetDuration("http-write-timeout"),
		ShutdownTimeout:   v.GetDuration("shutdown-timeout"),
		CORSOrigins:       splitList(v.GetString("cors-origins")),
	}

	if cfg.HTTPAddr == "" {
		port := v.GetString("port")
		if port == "" {
			port = defaultPort
		}
		cfg.HTTPAddr = ":" + port
	}

	level, err := zapcore.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid log level: %w", err)
	}
	cfg.LogLevel = level

	switch cfg.LogFormat {
	case "", "auto", "console", "json":
	default:
		return Config{}, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}

	if cfg.RelayTimeout <= 0 {
		cfg.RelayTimeout = defaultRelayTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	if cfg.RelayTimeout >= cfg.WriteTimeout {
		return Config{}, fmt.Errorf("relay timeout %s must be shorter than the HTTP write timeout %s", cfg.RelayTimeout, cfg.WriteTimeout)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
