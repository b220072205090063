package fsutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteToMegabyte(t *testing.T) {
	assert.Equal(t, uint64(0), ByteToMegabyte(0))
	assert.Equal(t, uint64(1), ByteToMegabyte(1))
	assert.Equal(t, uint64(1), ByteToMegabyte(1000*1000))
	assert.Equal(t, uint64(2), ByteToMegabyte(1000*1000+1))
}

func TestDirSizeMB(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a"), strings.Repeat("x", 10))
	writeFile(t, filepath.Join(dir, "sub", "b"), strings.Repeat("y", 20))

	size, err := DirSizeMB(dir)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), size) // 30 bytes round up to one megabyte

	_, err = DirSizeMB(filepath.Join(dir, "nope"))
	assert.Error(t, err)
}

func TestFilesSizeMB(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	writeFile(t, a, strings.Repeat("x", 5))

	assert.Equal(t, uint64(1), FilesSizeMB([]string{a, filepath.Join(dir, "missing")}))
	assert.Equal(t, uint64(0), FilesSizeMB(nil))
}

func TestFreeSpaceMB(t *testing.T) {
	free, err := FreeSpaceMB(t.TempDir())
	require.NoError(t, err)
	assert.Greater(t, free, uint64(0))
}

func TestFindMountPoint(t *testing.T) {
	root, err := FindMountPoint("/")
	require.NoError(t, err)
	assert.Equal(t, "/", root)

	dir := t.TempDir()
	mount, err := FindMountPoint(filepath.Join(dir, "does", "not", "exist"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dir, mount) || mount == "/",
		"mount point %q should prefix %q", mount, dir)
}
