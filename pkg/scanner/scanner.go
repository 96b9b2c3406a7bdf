// Package scanner classifies the lines of a project description file and
// turns them into a typed event stream. The validate and build passes each
// run their own Scanner so no block-tracking state is shared between them.
package scanner

import (
	"strings"
	"unicode"

	"github.com/promptkit/promptgen/pkg/document"
)

// EventType identifies what a scanned line means to the grammar.
type EventType int

const (
	// SectionEntered is an unindented bare-word line opening a section.
	SectionEntered EventType = iota
	// ResourceBlockEntered is an `@word` marker at the first indentation
	// level, opening a resource block.
	ResourceBlockEntered
	// PathEntry is a line indented at least two levels inside a resource
	// block; Name carries the trimmed path text.
	PathEntry
	// ContentLine is any other non-blank, non-comment line (directives,
	// indented values, freeform text).
	ContentLine
	// BlankLine and CommentLine are ignored by the validator and passed
	// through verbatim by the assembler.
	BlankLine
	CommentLine
)

// Event is one classified line. Name holds the section name, marker word, or
// path text depending on Type. SpaceIndented is set when the line starts
// with whitespace whose first character is not a tab.
type Event struct {
	Type          EventType
	Line          document.Line
	Name          string
	Depth         int
	SpaceIndented bool
}

// Scanner walks a document line by line, tracking the current resource
// block. The zero value is ready to use.
type Scanner struct {
	block string // marker word of the open resource block, "" when closed
}

// Scan classifies every line of doc in order and returns the full event
// stream. Each caller gets an independent cursor.
func Scan(doc *document.Document) []Event {
	var s Scanner
	events := make([]Event, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		events = append(events, s.Next(line))
	}
	return events
}

// Next classifies a single line and advances the block cursor.
func (s *Scanner) Next(line document.Line) Event {
	raw := line.Text
	trimmed := strings.TrimSpace(raw)
	depth := indentDepth(raw)

	ev := Event{
		Line:          line,
		Depth:         depth,
		SpaceIndented: spaceIndented(raw),
	}

	switch {
	case trimmed == "":
		ev.Type = BlankLine
		return ev
	case strings.HasPrefix(trimmed, "#"):
		ev.Type = CommentLine
		return ev
	}

	// Path entries take precedence over the block-closing rule: paths
	// typically begin with a letter themselves.
	if s.block != "" && depth >= 2 {
		ev.Type = PathEntry
		ev.Name = trimmed
		return ev
	}

	// Any shallower line opening with a letter or marker ends the block.
	first := rune(trimmed[0])
	if unicode.IsLetter(first) || first == '@' {
		s.block = ""
	}

	switch {
	case depth == 0 && raw != "" && unicode.IsLetter(rune(raw[0])):
		ev.Type = SectionEntered
		ev.Name = sectionName(raw)
	case depth == 1 && isResourceMarker(trimmed):
		ev.Type = ResourceBlockEntered
		ev.Name = strings.TrimPrefix(trimmed, "@")
		s.block = ev.Name
	default:
		ev.Type = ContentLine
		ev.Name = trimmed
	}
	return ev
}

// indentDepth counts leading tabs, the only recognized indentation unit.
func indentDepth(raw string) int {
	depth := 0
	for _, r := range raw {
		if r != '\t' {
			break
		}
		depth++
	}
	return depth
}

// spaceIndented reports whether a line starts with whitespace that is not a
// tab. Such lines violate the indentation discipline but still parse.
func spaceIndented(raw string) bool {
	if raw == "" {
		return false
	}
	first := rune(raw[0])
	return first != '\t' && unicode.IsSpace(first)
}

// sectionName strips all whitespace from a header line.
func sectionName(raw string) string {
	return strings.Join(strings.Fields(raw), "")
}

// isResourceMarker matches `@word` with nothing but the marker on the line.
func isResourceMarker(trimmed string) bool {
	if len(trimmed) < 2 || trimmed[0] != '@' {
		return false
	}
	for _, r := range trimmed[1:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
