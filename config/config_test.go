package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite3", cfg.DBDriver)
	assert.Equal(t, "api", cfg.APIPrefix)
	assert.Equal(t, "/audit-logs", cfg.AdminPrefix)
	assert.Equal(t, 256, cfg.RegistryCacheSize)
	assert.Equal(t, 5*time.Minute, cfg.SettingsCacheTTL)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.OIDC.Enabled())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("API_PREFIX", "/content/")
	t.Setenv("ADMIN_PREFIX", "admin/audit")
	t.Setenv("REGISTRY_WATCH", "true")
	t.Setenv("SETTINGS_CACHE_TTL", "30s")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "content", cfg.APIPrefix)
	assert.Equal(t, "/admin/audit", cfg.AdminPrefix)
	assert.True(t, cfg.RegistryWatch)
	assert.Equal(t, 30*time.Second, cfg.SettingsCacheTTL)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad driver", "DB_DRIVER", "mysql"},
		{"bad bool", "REGISTRY_WATCH", "sometimes"},
		{"bad int", "REGISTRY_CACHE_SIZE", "lots"},
		{"bad duration", "SETTINGS_CACHE_TTL", "forever"},
		{"zero body limit", "MAX_BODY_BYTES", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestFromEnv_OIDCRequiresSecretAndCallback(t *testing.T) {
	t.Setenv("OIDC_DOMAIN", "example.eu.auth0.com")
	t.Setenv("OIDC_CLIENT_ID", "client")

	_, err := FromEnv()
	require.Error(t, err)

	t.Setenv("OIDC_CLIENT_SECRET", "secret")
	t.Setenv("OIDC_CALLBACK_URL", "http://localhost:8080/auth/callback")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.OIDC.Enabled())
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("LOG_LEVEL") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingEnvFileIsNotAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
