package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("substitutes parameters", func(t *testing.T) {
		out, err := Render("cfg", "listen {{.host}}:{{.port}}", map[string]any{
			"host": "127.0.0.1",
			"port": 8000,
		})
		require.NoError(t, err)
		assert.Equal(t, "listen 127.0.0.1:8000", out)
	})

	t.Run("missing key is an error", func(t *testing.T) {
		_, err := Render("cfg", "listen {{.host}}", map[string]any{})
		assert.ErrorContains(t, err, "rendering template")
	})

	t.Run("parse failure is an error", func(t *testing.T) {
		_, err := Render("cfg", "{{.unclosed", nil)
		assert.ErrorContains(t, err, "parsing template")
	})
}

func TestToFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "nginx.conf.tmpl")
	dst := filepath.Join(dir, "nginx.conf")
	require.NoError(t, os.WriteFile(src, []byte("root {{.docroot}};\n"), 0o644))

	require.NoError(t, ToFile(src, dst, map[string]any{"docroot": "/var/www"}))

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "root /var/www;\n", string(b))

	assert.Error(t, ToFile(filepath.Join(dir, "missing.tmpl"), dst, nil))
}
