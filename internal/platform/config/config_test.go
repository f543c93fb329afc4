package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestLoadFrom_DefaultsToMemory(t *testing.T) {
	cfg, err := LoadFrom("", env(map[string]string{
		"JWT_SECRET": "0123456789abcdef0123",
	}))
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL.Duration())
	assert.Equal(t, "pet-health-tracker", cfg.Auth.Issuer)
}

func TestLoadFrom_DSNSelectsPostgres(t *testing.T) {
	cfg, err := LoadFrom("", env(map[string]string{
		"JWT_SECRET": "0123456789abcdef0123",
		"DB_DSN":     "postgres://localhost/pets",
		"PORT":       "5000",
		"TOKEN_TTL":  "2h",
	}))
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL.Duration())
}

func TestLoadFrom_YAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yml := `
port: "9000"
storage:
  driver: sqlite
  sqlite_path: ./pets.db
auth:
  jwt_secret: yaml-secret-yaml-secret
  token_ttl: 90m
  cookie_secure: true
cors_origins:
  - https://pets.example.com
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg, err := LoadFrom(path, env(map[string]string{
		"PORT":         "9100",
		"CORS_ORIGINS": "https://a.example.com, https://b.example.com",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "./pets.db", cfg.Storage.SQLitePath)
	assert.Equal(t, 90*time.Minute, cfg.Auth.TokenTTL.Duration())
	assert.True(t, cfg.Auth.CookieSecure)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestLoadFrom_Invalid(t *testing.T) {
	_, err := LoadFrom("", env(map[string]string{}))
	assert.ErrorContains(t, err, "JWT_SECRET")

	_, err = LoadFrom("", env(map[string]string{
		"JWT_SECRET":     "0123456789abcdef0123",
		"STORAGE_DRIVER": "postgres",
	}))
	assert.ErrorContains(t, err, "DB_DSN")

	_, err = LoadFrom("", env(map[string]string{
		"JWT_SECRET":    "0123456789abcdef0123",
		"AUTH_DEV_MODE": "maybe",
	}))
	assert.ErrorContains(t, err, "AUTH_DEV_MODE")
}

func TestLoadFrom_DevModeGetsSecret(t *testing.T) {
	cfg, err := LoadFrom("", env(map[string]string{"AUTH_DEV_MODE": "true"}))
	require.NoError(t, err)

	assert.True(t, cfg.Auth.DevMode)
	assert.True(t, cfg.UsingDevSecret())
}
