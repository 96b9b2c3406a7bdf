// Package writer abstracts the output sinks for built prompt documents.
// The build pipeline produces a single text blob; sinks decide where it
// lands: stdout, a file, or the system clipboard.
package writer

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
)

// Sink writes a finished prompt document somewhere.
type Sink interface {
	// Write delivers the prompt document.
	Write(content string) error

	// Name identifies the sink for logging.
	Name() string
}

// StdoutSink writes the prompt to a stream, os.Stdout by default.
type StdoutSink struct {
	Out io.Writer
}

// NewStdout creates a sink writing to standard output.
func NewStdout() *StdoutSink {
	return &StdoutSink{Out: os.Stdout}
}

func (s *StdoutSink) Write(content string) error {
	_, err := io.WriteString(s.Out, content)
	return err
}

func (s *StdoutSink) Name() string { return "stdout" }

// FileSink writes the prompt to a file, replacing any previous content.
type FileSink struct {
	Path string
}

// NewFile creates a sink writing to the given path.
func NewFile(path string) *FileSink {
	return &FileSink{Path: path}
}

func (s *FileSink) Write(content string) error {
	if err := os.WriteFile(s.Path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write prompt to %s: %w", s.Path, err)
	}
	return nil
}

func (s *FileSink) Name() string { return s.Path }

// ClipboardSink copies the prompt to the system clipboard.
type ClipboardSink struct{}

// NewClipboard creates a sink writing to the system clipboard.
func NewClipboard() *ClipboardSink {
	return &ClipboardSink{}
}

func (s *ClipboardSink) Write(content string) error {
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("failed to copy prompt to clipboard: %w", err)
	}
	return nil
}

func (s *ClipboardSink) Name() string { return "clipboard" }
