package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "proj.lp")
	require.NoError(t, os.WriteFile(path, []byte("project\n\tname: demo\n"), 0644))

	doc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, dir, doc.Dir)
	require.Len(t, doc.Lines, 2)
	assert.Equal(t, 1, doc.Lines[0].Number)
	assert.Equal(t, "project", doc.Lines[0].Text)
	assert.Equal(t, 2, doc.Lines[1].Number)
	assert.Equal(t, "\tname: demo", doc.Lines[1].Text)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.lp"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read project file")
}

func TestFromString_Empty(t *testing.T) {
	doc := FromString("")
	assert.Empty(t, doc.Lines)
}

func TestFromString_TrailingNewline(t *testing.T) {
	// A trailing newline terminates the last line, it does not add one.
	doc := FromString("a\nb\n")
	require.Len(t, doc.Lines, 2)
	assert.Equal(t, "b", doc.Lines[1].Text)

	doc = FromString("a\nb")
	require.Len(t, doc.Lines, 2)
}

func TestFromString_BlankLinesKeepNumbering(t *testing.T) {
	doc := FromString("a\n\nc")
	require.Len(t, doc.Lines, 3)
	assert.Equal(t, "", doc.Lines[1].Text)
	assert.Equal(t, 3, doc.Lines[2].Number)
}
