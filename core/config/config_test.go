package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"pair-compare/core/compare"
	"pair-compare/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 32, cfg.Server.BodyLimitMB)
	assert.Equal(t, "comparisons", cfg.Storage.Bucket)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, compare.DuplicateFanOut, cfg.Compare.DuplicatePolicy)
	assert.Equal(t, "Merged", cfg.Compare.SheetName)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("COMPARE_DUPLICATE_POLICY", "reject")
	t.Setenv("STORAGE_ENABLED", "true")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, compare.DuplicateReject, cfg.Compare.DuplicatePolicy)
	assert.True(t, cfg.Storage.Enabled)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_FORMAT=console\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("LOG_FORMAT") })

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"policy", "COMPARE_DUPLICATE_POLICY", "merge"},
		{"driver", "DATABASE_DRIVER", "oracle"},
		{"body limit", "SERVER_BODY_LIMIT_MB", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.LoadConfig(t.TempDir())
			assert.Error(t, err)
		})
	}
}

func TestValidate_InvalidPolicy(t *testing.T) {
	cfg := &config.Config{Compare: compare.Config{DuplicatePolicy: "latest"}}
	assert.ErrorIs(t, cfg.Validate(), compare.ErrInvalidPolicy)
}
