package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// OIDCConfig holds the OpenID Connect client settings
type OIDCConfig struct {
	Domain       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// Enabled reports whether authentication is configured
func (c OIDCConfig) Enabled() bool {
	return c.Domain != "" && c.ClientID != ""
}

// Config holds the runtime configuration of the service
type Config struct {
	Port string

	DBDriver    string
	DatabaseURL string

	RegistryPath      string
	RegistryWatch     bool
	RegistryCacheSize int

	APIPrefix   string
	AdminPrefix string

	RedisAddr        string
	RedisPassword    string
	SettingsCacheTTL time.Duration

	MaxBodyBytes int64

	LogLevel  string
	LogFormat string

	UseHTTPS       bool
	MetricsEnabled bool

	OIDC OIDCConfig
}

// Load reads an optional .env file and builds the configuration from the environment
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:          getString("PORT", "8080"),
		DBDriver:      getString("DB_DRIVER", "sqlite3"),
		DatabaseURL:   getString("DATABASE_URL", "content_audit.db"),
		RegistryPath:  getString("REGISTRY_PATH", "content-types.yaml"),
		APIPrefix:     strings.Trim(getString("API_PREFIX", "api"), "/"),
		AdminPrefix:   "/" + strings.Trim(getString("ADMIN_PREFIX", "/audit-logs"), "/"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		LogLevel:      getString("LOG_LEVEL", "info"),
		LogFormat:     getString("LOG_FORMAT", "text"),
		OIDC: OIDCConfig{
			Domain:       os.Getenv("OIDC_DOMAIN"),
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			CallbackURL:  os.Getenv("OIDC_CALLBACK_URL"),
		},
	}

	var err error
	if cfg.RegistryWatch, err = getBool("REGISTRY_WATCH", false); err != nil {
		return nil, err
	}
	if cfg.RegistryCacheSize, err = getInt("REGISTRY_CACHE_SIZE", 256); err != nil {
		return nil, err
	}
	if cfg.SettingsCacheTTL, err = getDuration("SETTINGS_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	maxBody, err := getInt("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		return nil, err
	}
	cfg.MaxBodyBytes = int64(maxBody)
	if cfg.UseHTTPS, err = getBool("USE_HTTPS", false); err != nil {
		return nil, err
	}
	if cfg.MetricsEnabled, err = getBool("METRICS_ENABLED", true); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the service cannot run with
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite3", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.APIPrefix == "" {
		return errors.New("API_PREFIX must not be empty")
	}
	if c.AdminPrefix == "/" {
		return errors.New("ADMIN_PREFIX must not be the root path")
	}
	if c.RegistryCacheSize < 0 {
		return fmt.Errorf("REGISTRY_CACHE_SIZE must not be negative, got %d", c.RegistryCacheSize)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	}
	if c.OIDC.Enabled() && (c.OIDC.ClientSecret == "" || c.OIDC.CallbackURL == "") {
		return errors.New("OIDC_CLIENT_SECRET and OIDC_CALLBACK_URL are required when OIDC is enabled")
	}
	return nil
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for %s: %s", key, v)
	}
	return b, nil
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %s", key, v)
	}
	return n, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %s", key, v)
	}
	return d, nil
}
