package fsutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "plan.hcl"), "")
	writeFile(t, filepath.Join(dir, "sub", "extra.hcl"), "")
	writeFile(t, filepath.Join(dir, "notes.txt"), "")

	files, err := FindFilesByExtension(dir, ".hcl")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "plan.hcl"),
		filepath.Join(dir, "sub", "extra.hcl"),
	}, files)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(dir, "") })
}

func TestIterFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one", "a"), "")
	writeFile(t, filepath.Join(dir, "one", "deep", "b"), "")
	writeFile(t, filepath.Join(dir, "two", "c"), "")

	files, err := IterFiles([]string{filepath.Join(dir, "one"), filepath.Join(dir, "two")})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "one", "a"),
		filepath.Join(dir, "one", "deep", "b"),
		filepath.Join(dir, "two", "c"),
	}, files)
}

func TestIterFilesMatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "db.dump"), "")
	writeFile(t, filepath.Join(dir, "sub", "etc.dump"), "")
	writeFile(t, filepath.Join(dir, "readme.md"), "")

	files, err := IterFilesMatch([]string{dir}, "*.dump")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "db.dump"),
		filepath.Join(dir, "sub", "etc.dump"),
	}, files)

	_, err = IterFilesMatch([]string{dir}, "[")
	assert.ErrorContains(t, err, "bad file pattern")
}

func TestFileContainsPatterns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dump.sql")
	writeFile(t, path, "CREATE TABLE nodes;\nCOPY nodes FROM stdin;\nPostgreSQL database dump complete\n")

	t.Run("all patterns present", func(t *testing.T) {
		missing, err := FileContainsPatterns(path, []string{
			`CREATE TABLE`,
			`dump complete`,
		})
		require.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("absent patterns are reported in input order", func(t *testing.T) {
		missing, err := FileContainsPatterns(path, []string{
			`DROP TABLE`,
			`CREATE TABLE`,
			`pg_restore`,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{`DROP TABLE`, `pg_restore`}, missing)
	})

	t.Run("invalid pattern is an error", func(t *testing.T) {
		_, err := FileContainsPatterns(path, []string{`(`})
		assert.ErrorContains(t, err, "bad pattern")
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := FileContainsPatterns(filepath.Join(dir, "nope"), []string{`x`})
		assert.Error(t, err)
	})
}
