// Package config builds the process configuration from the environment.
// It is read once at startup and passed to the components that need it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kansah/site/internal/database"
	"github.com/kansah/site/internal/model"
)

// Run modes.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Content sources.
const (
	SourceDatabase = "database"
	SourceStatic   = "static"
)

const insecureSecretKey = "dev-secret-change-in-production"

// Config is the full process configuration.
type Config struct {
	DB                 database.Config
	SecretKey          string
	Mode               string
	Port               int
	FrontendURL        string
	ContentSource      string
	LogLevel           string
	LogFile            string
	RateLimitPerMinute int
	TrustedProxyCount  int
}

// Load reads the configuration from the environment. Missing variables
// take their documented defaults; malformed numbers and durations are
// reported as model.ErrConfiguration.
func Load() (*Config, error) {
	dbPort, err := getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	connectTimeout, err := getEnvDuration("DB_CONNECT_TIMEOUT", database.DefaultConnectTimeout)
	if err != nil {
		return nil, err
	}
	port, err := getEnvInt("PORT", 5000)
	if err != nil {
		return nil, err
	}
	rateLimit, err := getEnvInt("RATE_LIMIT_PER_MINUTE", 30)
	if err != nil {
		return nil, err
	}
	trustedProxies, err := getEnvInt("TRUSTED_PROXY_COUNT", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DB: database.Config{
			Server:         getEnv("DB_SERVER", "localhost"),
			Database:       getEnv("DB_NAME", "kansah"),
			Username:       os.Getenv("DB_USERNAME"),
			Password:       os.Getenv("DB_PASSWORD"),
			Driver:         strings.ToLower(getEnv("DB_DRIVER", database.DriverPostgres)),
			Port:           dbPort,
			ConnectTimeout: connectTimeout,
		},
		SecretKey:          getEnv("SECRET_KEY", insecureSecretKey),
		Mode:               strings.ToLower(getEnv("APP_ENV", ModeDevelopment)),
		Port:               port,
		FrontendURL:        getEnv("FRONTEND_URL", fmt.Sprintf("http://localhost:%d", port)),
		ContentSource:      strings.ToLower(getEnv("CONTENT_SOURCE", SourceDatabase)),
		LogLevel:           getEnv("LOG_LEVEL", "INFO"),
		LogFile:            os.Getenv("LOG_FILE"),
		RateLimitPerMinute: rateLimit,
		TrustedProxyCount:  trustedProxies,
	}
	return cfg, nil
}

// Validate checks the configuration as a whole. It is meant to be called
// once at startup; any error is fatal.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeDevelopment, ModeProduction:
	default:
		return fmt.Errorf("%w: unknown APP_ENV %q", model.ErrConfiguration, c.Mode)
	}
	if c.Mode != ModeDevelopment && (c.SecretKey == "" || c.SecretKey == insecureSecretKey) {
		return fmt.Errorf("%w: SECRET_KEY must be set outside development", model.ErrConfiguration)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: PORT %d out of range", model.ErrConfiguration, c.Port)
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("%w: RATE_LIMIT_PER_MINUTE must be positive", model.ErrConfiguration)
	}
	if c.TrustedProxyCount < 0 {
		return fmt.Errorf("%w: TRUSTED_PROXY_COUNT must not be negative", model.ErrConfiguration)
	}
	switch c.ContentSource {
	case SourceDatabase:
	case SourceStatic:
		// The write endpoints still need the store, so DB is validated either way.
	default:
		return fmt.Errorf("%w: unknown CONTENT_SOURCE %q", model.ErrConfiguration, c.ContentSource)
	}
	return c.DB.Validate()
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// IsDevelopment reports whether the process runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Mode == ModeDevelopment
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a number", model.ErrConfiguration, key, v)
	}
	return n, nil
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a duration", model.ErrConfiguration, key, v)
	}
	return d, nil
}
