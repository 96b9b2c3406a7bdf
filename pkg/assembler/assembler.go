// Package assembler composes the final prompt document: a fixed preamble,
// the project description reproduced verbatim, the resolved file references,
// and a fixed instructions footer.
package assembler

import (
	"fmt"
	"strings"

	"github.com/promptkit/promptgen/pkg/document"
	"github.com/promptkit/promptgen/pkg/resolver"
	"github.com/sirupsen/logrus"
)

// Assembler builds prompt documents from a parsed project description.
type Assembler struct {
	logger *logrus.Logger
	tpl    Template
}

// New creates an assembler with the built-in template.
func New(logger *logrus.Logger) *Assembler {
	return NewWithTemplate(logger, DefaultTemplate())
}

// NewWithTemplate creates an assembler with an injected template. Empty
// template fields fall back to the defaults.
func NewWithTemplate(logger *logrus.Logger, tpl Template) *Assembler {
	def := DefaultTemplate()
	if tpl.Preamble == "" {
		tpl.Preamble = def.Preamble
	}
	if tpl.Footer == "" {
		tpl.Footer = def.Footer
	}
	if tpl.Fence == "" {
		tpl.Fence = def.Fence
	}
	return &Assembler{logger: logger, tpl: tpl}
}

// Build runs the resolver over the document and composes the prompt text.
// Content-level problems never fail the build: missing references are
// embedded as (NOT FOUND) blocks and the result is always produced.
func (a *Assembler) Build(doc *document.Document) string {
	refs := resolver.New(a.logger).Resolve(doc)
	return a.Compose(doc, refs)
}

// Compose concatenates the preamble, the verbatim content block, the
// resolved references, and the footer. Input lines are reproduced exactly;
// nothing is reordered, summarized, or truncated.
func (a *Assembler) Compose(doc *document.Document, refs []resolver.Reference) string {
	var b strings.Builder

	b.WriteString(a.tpl.Preamble)
	b.WriteString("\n")
	b.WriteString(a.tpl.Fence)
	b.WriteString("\n")
	for _, line := range doc.Lines {
		b.WriteString(line.Text)
		b.WriteString("\n")
	}
	b.WriteString(a.tpl.Fence)
	b.WriteString("\n")

	if len(refs) > 0 {
		b.WriteString("\n## Referenced Files\n")
		for _, ref := range refs {
			writeReference(&b, ref, a.tpl.Fence)
		}
	}

	b.WriteString("\n")
	b.WriteString(a.tpl.Footer)

	a.logger.Debugf("Assembled prompt: %d line(s), %d reference(s)", len(doc.Lines), len(refs))
	return b.String()
}

// writeReference emits one titled block per reference, in resolution order.
func writeReference(b *strings.Builder, ref resolver.Reference, fence string) {
	if !ref.Found {
		fmt.Fprintf(b, "\n### %s (NOT FOUND)\n", ref.Resolved)
		return
	}

	fmt.Fprintf(b, "\n### %s\n\n%s\n", ref.Resolved, fence)
	b.Write(ref.Content)
	if len(ref.Content) > 0 && ref.Content[len(ref.Content)-1] != '\n' {
		b.WriteString("\n")
	}
	b.WriteString(fence)
	b.WriteString("\n")
}
