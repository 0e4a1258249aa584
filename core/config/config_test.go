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

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "me", cfg.Data.Player)
	assert.Equal(t, "COLLECTION/", cfg.Data.CollectionPrefix)
	assert.Equal(t, "RULES/constructed.yaml", cfg.Data.RulesObject)
	assert.Equal(t, 8, cfg.Data.Concurrency)
	assert.Equal(t, 300, cfg.Data.CacheTTLSeconds)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, 50, cfg.History.Limit)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("DATA_PLAYER", "Kelon")
	t.Setenv("HISTORY_ENABLED", "true")
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "Kelon", cfg.Data.Player)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATA_CONCURRENCY=3\nSTORAGE_BUCKET=kb\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("DATA_CONCURRENCY")
		os.Unsetenv("STORAGE_BUCKET")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Data.Concurrency)
	assert.Equal(t, "kb", cfg.Storage.Bucket)
}
