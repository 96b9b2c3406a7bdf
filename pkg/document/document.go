// Package document loads project description files into an immutable,
// line-addressed form shared by the validate and build passes.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Line is a single raw input line with its 1-based position.
type Line struct {
	Number int
	Text   string
}

// Document is an ordered, read-only view of a project description file.
// Dir is the absolute directory containing the file; relative @file paths
// resolve against it.
type Document struct {
	Path  string
	Dir   string
	Lines []Line
}

// Load reads a project description file from disk. A missing or unreadable
// file is the only fatal input condition in the pipeline, so the error is
// returned before any processing begins.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	doc := FromString(string(data))
	doc.Path = absPath
	doc.Dir = filepath.Dir(absPath)
	return doc, nil
}

// FromString builds a Document from in-memory content. The base directory
// defaults to the current directory; Load overrides it for files on disk.
func FromString(content string) *Document {
	doc := &Document{Dir: "."}
	if content == "" {
		return doc
	}

	// A trailing newline terminates the last line rather than opening an
	// empty one.
	content = strings.TrimSuffix(content, "\n")

	for i, text := range strings.Split(content, "\n") {
		doc.Lines = append(doc.Lines, Line{Number: i + 1, Text: text})
	}
	return doc
}
