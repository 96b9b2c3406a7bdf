package scaffold

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir, testLogger()))

	proj, err := os.ReadFile(filepath.Join(dir, "project.lp"))
	require.NoError(t, err)
	assert.Contains(t, string(proj), "project\n")
	assert.Contains(t, string(proj), "\t@file")

	_, err = os.Stat(filepath.Join(dir, "promptgen.config.yml"))
	require.NoError(t, err)
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "project.lp"), []byte("mine"), 0644))

	err := Init(dir, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to overwrite")

	// Nothing was written, not even the non-colliding file.
	_, statErr := os.Stat(filepath.Join(dir, "promptgen.config.yml"))
	assert.True(t, os.IsNotExist(statErr))

	kept, err := os.ReadFile(filepath.Join(dir, "project.lp"))
	require.NoError(t, err)
	assert.Equal(t, "mine", string(kept))
}
