package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	content := "gnu_extensions: false\ninclude_dirs:\n  - vendor/include\nformat: repr\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".cclex.yaml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.False(t, cfg.GNUExtensions)
	assert.Equal(t, []string{"vendor/include"}, cfg.IncludeDirs)
	assert.Equal(t, "repr", cfg.Format)
}

func TestResolvePathSearchesIncludeDirs(t *testing.T) {
	dir := t.TempDir()
	includeDir := filepath.Join(dir, "inc")
	require.NoError(t, os.Mkdir(includeDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(includeDir, "foo.h"), []byte("//"), 0o644))

	cfg := Config{IncludeDirs: []string{includeDir}}
	got, err := cfg.ResolvePath(dir, "foo.h")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(includeDir, "foo.h"), got)
}

func TestResolvePathNotFound(t *testing.T) {
	cfg := Config{}
	_, err := cfg.ResolvePath(t.TempDir(), "missing.h")
	assert.Error(t, err)
}
