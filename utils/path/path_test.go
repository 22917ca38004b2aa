package path

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootPath(t *testing.T) {
	ok, err := Exists(filepath.Join(RootPath(), "go.mod"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, filepath.Join("/srv", "conf", "app.yaml"), Resolve("app.yaml", "/srv", "conf"))
	assert.Equal(t, filepath.Join("/srv", ".env"), Resolve(".env", "/srv"))
	assert.Equal(t, "/etc/lovedj.yaml", Resolve("/etc/lovedj.yaml", "/srv", "conf"))
	assert.Equal(t, "", Resolve("", "/srv"))
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "x")
	require.NoError(t, os.WriteFile(file, []byte("1"), 0o600))

	ok, err := Exists(file)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)
}
