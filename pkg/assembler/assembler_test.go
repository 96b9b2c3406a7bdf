package assembler

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/promptkit/promptgen/pkg/document"
	"github.com/promptkit/promptgen/pkg/resolver"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssembler() *Assembler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger)
}

func docInDir(dir, content string) *document.Document {
	doc := document.FromString(content)
	doc.Dir = dir
	return doc
}

func TestBuild_NoReferences(t *testing.T) {
	out := newTestAssembler().Build(docInDir(t.TempDir(), "project\n\tname: demo"))

	assert.Contains(t, out, DefaultPreamble)
	assert.Contains(t, out, DefaultFooter)
	assert.NotContains(t, out, "## Referenced Files")
}

func TestBuild_PassThroughIsVerbatim(t *testing.T) {
	content := "project\n\tname: demo\n\n# comment\n  spaced line\nstray text\n\t@git"
	out := newTestAssembler().Build(docInDir(t.TempDir(), content))

	// The fenced block reproduces the input exactly, warts and all.
	assert.Contains(t, out, DefaultFence+"\n"+content+"\n"+DefaultFence)
}

func TestBuild_ReferencedFileEmbedded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha content\n"), 0644))

	out := newTestAssembler().Build(docInDir(dir, "structure\n\t@file\n\t\ta.txt"))

	assert.Contains(t, out, "## Referenced Files")
	assert.Contains(t, out, "### "+filepath.Join(dir, "a.txt")+"\n")
	assert.Contains(t, out, "alpha content")
	assert.NotContains(t, out, "(NOT FOUND)")
}

func TestBuild_MixedFoundAndMissing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha"), 0644))

	out := newTestAssembler().Build(docInDir(dir, "\t@file\n\t\ta.txt\n\t\tmissing.txt"))

	assert.Equal(t, 1, strings.Count(out, "(NOT FOUND)"))
	assert.Contains(t, out, "### "+filepath.Join(dir, "missing.txt")+" (NOT FOUND)")

	// Found block precedes the missing one, matching document order.
	foundIdx := strings.Index(out, "a.txt")
	missingIdx := strings.Index(out, "missing.txt (NOT FOUND)")
	assert.Less(t, foundIdx, missingIdx)
}

func TestBuild_Idempotent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha"), 0644))
	doc := docInDir(dir, "structure\n\t@file\n\t\ta.txt")

	a := newTestAssembler()
	assert.Equal(t, a.Build(doc), a.Build(doc))
}

func TestCompose_SectionOrder(t *testing.T) {
	dir := t.TempDir()
	doc := docInDir(dir, "project")
	refs := []resolver.Reference{{Path: "x.txt", Resolved: "/x.txt"}}

	out := newTestAssembler().Compose(doc, refs)

	preambleIdx := strings.Index(out, DefaultPreamble)
	contentIdx := strings.Index(out, DefaultFence+"\nproject\n")
	refsIdx := strings.Index(out, "## Referenced Files")
	footerIdx := strings.Index(out, DefaultFooter)

	require.NotEqual(t, -1, preambleIdx)
	require.NotEqual(t, -1, contentIdx)
	require.NotEqual(t, -1, refsIdx)
	require.NotEqual(t, -1, footerIdx)
	assert.Less(t, preambleIdx, contentIdx)
	assert.Less(t, contentIdx, refsIdx)
	assert.Less(t, refsIdx, footerIdx)
}

func TestCompose_ContentWithoutTrailingNewlineGetsOne(t *testing.T) {
	doc := docInDir(t.TempDir(), "project")
	refs := []resolver.Reference{{Path: "a", Resolved: "/a", Found: true, Content: []byte("no newline")}}

	out := newTestAssembler().Compose(doc, refs)
	assert.Contains(t, out, "no newline\n"+DefaultFence)
}

func TestNewWithTemplate_Overrides(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	a := NewWithTemplate(logger, Template{Preamble: "CUSTOM HEAD\n", Fence: "~~~"})

	out := a.Build(docInDir(t.TempDir(), "project"))
	assert.Contains(t, out, "CUSTOM HEAD")
	assert.Contains(t, out, "~~~\nproject\n~~~")
	assert.Contains(t, out, DefaultFooter, "unset fields fall back to defaults")
	assert.NotContains(t, out, DefaultPreamble)
}
