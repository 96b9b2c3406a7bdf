package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdoutSink(t *testing.T) {
	var buf bytes.Buffer
	sink := &StdoutSink{Out: &buf}

	require.NoError(t, sink.Write("prompt text"))
	assert.Equal(t, "prompt text", buf.String())
	assert.Equal(t, "stdout", sink.Name())
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.md")
	sink := NewFile(path)

	require.NoError(t, sink.Write("prompt text"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "prompt text", string(data))
	assert.Equal(t, path, sink.Name())
}

func TestFileSink_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	require.NoError(t, NewFile(path).Write("new"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestFileSink_BadPath(t *testing.T) {
	sink := NewFile(filepath.Join(t.TempDir(), "no", "such", "dir", "prompt.md"))
	err := sink.Write("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write prompt")
}
