package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "STORE_DRIVER", "DATABASE_PATH", "NAVIGATION_ROUTE", "NAVIGATE_ONCE", "STRICT_SINGLE_UPLOAD", "MAX_UPLOAD_BYTES"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, StoreDriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "./data/playlists.db", cfg.DatabasePath)
	assert.Equal(t, "/iptv", cfg.NavigationRoute)
	assert.False(t, cfg.NavigateOnce)
	assert.False(t, cfg.StrictSingleUpload)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("DATABASE_PATH", "/tmp/p.db")
	t.Setenv("NAVIGATION_ROUTE", "/player")
	t.Setenv("NAVIGATE_ONCE", "true")
	t.Setenv("STRICT_SINGLE_UPLOAD", "1")
	t.Setenv("MAX_UPLOAD_BYTES", "2048")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, "/tmp/p.db", cfg.DatabasePath)
	assert.Equal(t, "/player", cfg.NavigationRoute)
	assert.True(t, cfg.NavigateOnce)
	assert.True(t, cfg.StrictSingleUpload)
	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("NAVIGATE_ONCE", "sometimes")
	t.Setenv("MAX_UPLOAD_BYTES", "-5")

	cfg := Load()

	assert.Equal(t, StoreDriverSQLite, cfg.StoreDriver)
	assert.False(t, cfg.NavigateOnce)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
}
