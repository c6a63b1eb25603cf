package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clexlang/cclex/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestExpandPathsWalksDirectoryByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.c"), "")
	writeFile(t, filepath.Join(dir, "sub", "b.h"), "")
	writeFile(t, filepath.Join(dir, "notes.txt"), "")

	got, err := expandPaths([]string{dir}, config.Default())
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.c"),
		filepath.Join(dir, "sub", "b.h"),
	}, got)
}

func TestExpandPathsPassesExplicitFileThrough(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weird.ext")
	writeFile(t, path, "")

	got, err := expandPaths([]string{path}, config.Default())
	require.NoError(t, err)
	assert.Equal(t, []string{path}, got)
}

func TestExpandPathsResolvesMissingFileViaIncludeDirs(t *testing.T) {
	dir := t.TempDir()
	includeDir := filepath.Join(dir, "inc")
	writeFile(t, filepath.Join(includeDir, "foo.h"), "")

	cfg := config.Config{IncludeDirs: []string{includeDir}}
	got, err := expandPaths([]string{"foo.h"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(includeDir, "foo.h")}, got)
}

func TestExpandPathsMissingFileIsError(t *testing.T) {
	_, err := expandPaths([]string{"does-not-exist.c"}, config.Default())
	assert.Error(t, err)
}
