// Package resolver materializes the files referenced from @file blocks in a
// project description file.
package resolver

import (
	"os"
	"path/filepath"

	"github.com/promptkit/promptgen/pkg/document"
	"github.com/promptkit/promptgen/pkg/scanner"
	"github.com/sirupsen/logrus"
)

// FileMarker is the only resource marker the resolver acts on. Other markers
// (@git, ...) pass through the build as plain content.
const FileMarker = "file"

// Reference is one resolved @file path entry. Found is false when the file
// could not be read; that is a soft failure recorded in the output.
type Reference struct {
	Path     string // path text as written in the document
	Resolved string // absolute path after base-directory resolution
	Found    bool
	Content  []byte
}

// Resolver reads referenced files in document order.
type Resolver struct {
	logger *logrus.Logger
}

// New creates a new resolver instance.
func New(logger *logrus.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve scans the document for @file blocks and reads every path entry.
// Relative paths resolve against the document's directory; absolute paths
// are used unchanged. A missing or unreadable file never aborts the pass —
// it yields a Reference with Found set to false. Order follows the document;
// duplicate paths are read again, not deduplicated.
func (r *Resolver) Resolve(doc *document.Document) []Reference {
	var refs []Reference
	block := ""

	for _, ev := range scanner.Scan(doc) {
		switch ev.Type {
		case scanner.ResourceBlockEntered:
			block = ev.Name
		case scanner.SectionEntered:
			block = ""
		case scanner.PathEntry:
			if block != FileMarker {
				continue
			}
			refs = append(refs, r.read(doc, ev.Name))
		}
	}

	return refs
}

func (r *Resolver) read(doc *document.Document, path string) Reference {
	resolved := path
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(doc.Dir, resolved)
	}

	content, err := os.ReadFile(resolved)
	if err != nil {
		r.logger.WithError(err).Warnf("Referenced file not found: %s", resolved)
		return Reference{Path: path, Resolved: resolved}
	}

	r.logger.Debugf("Resolved %s (%d bytes)", resolved, len(content))
	return Reference{Path: path, Resolved: resolved, Found: true, Content: content}
}
