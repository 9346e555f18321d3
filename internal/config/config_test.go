package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "mcpdict.db", cfg.Database.Path)
	assert.Equal(t, 128, cfg.Query.MaxChars)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("DB_PATH", "/data/mcpdict.db")
	t.Setenv("QUERY_MAX_CHARS", "64")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "/data/mcpdict.db", cfg.Database.Path)
	assert.Equal(t, 64, cfg.Query.MaxChars)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  addr: ":7070"
database:
  path: /srv/mcpdict.db
query:
  max_chars: 32
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "/srv/mcpdict.db", cfg.Database.Path)
	assert.Equal(t, 32, cfg.Query.MaxChars)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("QUERY_MAX_CHARS", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Database:  DatabaseConfig{Path: "mcpdict.db"},
		Query:     QueryConfig{MaxChars: 128},
		RateLimit: RateLimitConfig{RPS: 20, Burst: 40},
	}
	assert.NoError(t, valid.Validate())

	noPath := valid
	noPath.Database.Path = ""
	assert.Error(t, noPath.Validate())

	noBurst := valid
	noBurst.RateLimit.Burst = 0
	assert.Error(t, noBurst.Validate())
}
