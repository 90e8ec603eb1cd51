package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "3333", cfg.Server.Port)
	assert.Equal(t, "200", cfg.Server.DefaultShow)
	assert.Equal(t, "https://waifuapi.karitham.dev", cfg.Collection.BaseURL)
	assert.Equal(t, 120, cfg.Collection.CacheTTLSeconds)
	assert.Equal(t, "https://graphql.anilist.co", cfg.Catalog.URL)
	assert.Equal(t, 25, cfg.Catalog.PageSize)
	assert.False(t, cfg.Storage.Enabled)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("CATALOG_PAGE_SIZE", "50")
	t.Setenv("STORAGE_ENABLED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, 50, cfg.Catalog.PageSize)
	assert.True(t, cfg.Storage.Enabled)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	content := []byte("collection:\n  base_url: http://localhost:4000\nlog:\n  format: console\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:4000", cfg.Collection.BaseURL)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 5, cfg.Collection.TimeoutSeconds)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_API_KEY=secret\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SERVER_API_KEY") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Server.ApiKey)
}
