package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/config"
)

func TestLoadMergedConfig_NoConfigFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadMergedConfig("", config.Config{Input: dir, Workers: 2})
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Input)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoadMergedConfig_FlagsWin(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"workers": 8, "api_key": "from-file"}`), 0644))

	cfg, err := loadMergedConfig(configPath, config.Config{Input: dir, Workers: 2})
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "from-file", cfg.APIKey)
}

func TestLoadMergedConfig_InvalidMergedConfig(t *testing.T) {
	_, err := loadMergedConfig("", config.Config{Workers: -3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'workers' must be non-negative")
}

func TestBuildParser_WithoutAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	p, err := buildParser(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, p)
}
