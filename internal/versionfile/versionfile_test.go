package versionfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestNext(t *testing.T) {
	t.Run("first version is .1", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "db.dump")
		next, err := New(base).Next()
		require.NoError(t, err)
		assert.Equal(t, base+".1", next)
	})

	t.Run("continues after the highest existing version", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "db.dump")
		touch(t, base+".1")
		touch(t, base+".2")
		touch(t, base+".10")

		next, err := New(base).Next()
		require.NoError(t, err)
		assert.Equal(t, base+".11", next)
	})

	t.Run("non-numeric extensions are ignored", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "db.dump")
		touch(t, base+".bak")
		touch(t, base+".3")

		next, err := New(base).Next()
		require.NoError(t, err)
		assert.Equal(t, base+".4", next)
	})
}

func TestSorted(t *testing.T) {
	base := filepath.Join(t.TempDir(), "db.dump")
	touch(t, base+".2")
	touch(t, base+".10")
	touch(t, base+".1")
	touch(t, base+".old")

	files, err := New(base).Sorted()
	require.NoError(t, err)
	assert.Equal(t, []string{base + ".10", base + ".2", base + ".1"}, files)
}
