package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "@", cfg.HeadGlyph)
	assert.Equal(t, "|", cfg.AbbrevGlyph)
	assert.False(t, cfg.Color)
}

func TestLoadNoConfig(t *testing.T) {
	t.Setenv("GITABBREV_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gitabbrev.toml")
	require.NoError(t, os.WriteFile(path, []byte("head_glyph = \"H\"\ncolor = true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "H", cfg.HeadGlyph)
	assert.Equal(t, "|", cfg.AbbrevGlyph, "unset glyphs keep defaults")
	assert.True(t, cfg.Color)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadEnvMissingFileFallsBack(t *testing.T) {
	t.Setenv("GITABBREV_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
