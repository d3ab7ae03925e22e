package helper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCfgPath(t *testing.T) {
	assert.Panics(t, func() { GetCfgPath("") })
	assert.Equal(t, "/tmp/apiserver.yaml", GetCfgPath("/tmp/apiserver.yaml"))

	old, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(old) })
	tmp := t.TempDir()
	require.NoError(t, os.Chdir(tmp))

	name := "apiserver.yaml"
	require.NoError(t, os.WriteFile(name, []byte("x"), 0o644))
	exp, _ := filepath.EvalSymlinks(filepath.Join(tmp, name))
	got, _ := filepath.EvalSymlinks(GetCfgPath(name))
	assert.Equal(t, exp, got)

	require.NoError(t, os.Remove(name))
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", name), []byte("x"), 0o644))
	exp, _ = filepath.EvalSymlinks(filepath.Join(tmp, "configs", name))
	got, _ = filepath.EvalSymlinks(GetCfgPath(name))
	assert.Equal(t, exp, got)

	require.NoError(t, os.Remove(filepath.Join("configs", name)))
	assert.Equal(t, filepath.Join(SystemConfigDir, name), GetCfgPath(name))
}
