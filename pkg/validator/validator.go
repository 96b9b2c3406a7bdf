// Package validator checks project description files against the section
// whitelist and the tabs-only indentation rule.
package validator

import (
	"fmt"

	"github.com/promptkit/promptgen/pkg/document"
	"github.com/promptkit/promptgen/pkg/scanner"
	"github.com/sirupsen/logrus"
)

// Diagnostic is one structural warning tied to its source line.
type Diagnostic struct {
	Line    int
	Message string
}

// Result is the complete outcome of a validation pass. Diagnostics are in
// document order and the pass never stops early, so the list is exhaustive.
type Result struct {
	Diagnostics []Diagnostic
}

// OK reports whether the document passed with no diagnostics.
func (r Result) OK() bool {
	return len(r.Diagnostics) == 0
}

// Count returns the number of accumulated diagnostics.
func (r Result) Count() int {
	return len(r.Diagnostics)
}

// knownSections is the closed set of recognized top-level sections.
var knownSections = map[string]bool{
	"project":      true,
	"environment":  true,
	"dependencies": true,
	"structure":    true,
}

// Validator accumulates structural warnings over a document.
type Validator struct {
	logger *logrus.Logger
}

// New creates a new validator instance.
func New(logger *logrus.Logger) *Validator {
	return &Validator{logger: logger}
}

// Validate scans every line of the document and collects diagnostics.
// Unknown section names and space indentation are warnings, never fatal:
// the scan always runs to the end of input.
func (v *Validator) Validate(doc *document.Document) Result {
	var result Result

	for _, ev := range scanner.Scan(doc) {
		switch ev.Type {
		case scanner.BlankLine, scanner.CommentLine:
			continue
		case scanner.SectionEntered:
			if !knownSections[ev.Name] {
				result.Diagnostics = append(result.Diagnostics, Diagnostic{
					Line:    ev.Line.Number,
					Message: fmt.Sprintf("Unknown section '%s'", ev.Name),
				})
			}
		default:
			// Lines with zero leading whitespace that are not section
			// headers are tolerated; only space indentation is flagged.
			if ev.SpaceIndented {
				result.Diagnostics = append(result.Diagnostics, Diagnostic{
					Line:    ev.Line.Number,
					Message: "Should use tabs for indentation, not spaces",
				})
			}
		}
	}

	v.logger.Debugf("Validated %s: %d diagnostic(s)", doc.Path, result.Count())
	return result
}
