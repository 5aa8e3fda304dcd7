package debug

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_NoopWithoutEnv(t *testing.T) {
	t.Setenv(EnvVar, "")
	require.NoError(t, Close())

	l := Logger()
	require.NotNil(t, l)
	assert.False(t, l.Core().Enabled(-1), "debug level must be disabled")
	assert.Same(t, l, Logger(), "logger is shared")
}

func TestLogger_FromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	t.Setenv(EnvVar, path)
	require.NoError(t, Close())
	t.Cleanup(func() { _ = Close() })

	Logger().Debug("layout computed")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "layout computed")
}

func TestInit_ReplacesDestination(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")
	t.Cleanup(func() { _ = Close() })

	require.NoError(t, Init(first))
	Logger().Info("one")
	require.NoError(t, Init(second))
	Logger().Info("two")
	require.NoError(t, Close())

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Contains(t, string(a), "one")
	assert.NotContains(t, string(a), "two")
	assert.Contains(t, string(b), "two")
}
