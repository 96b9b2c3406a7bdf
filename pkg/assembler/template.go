package assembler

// DefaultPreamble explains the project description grammar to the downstream
// model before the verbatim content block.
const DefaultPreamble = `# Project Generation Request

You are given a project description written in a small, tab-indented text
format. Read it carefully before producing any output.

## Format Specification

- The file is organized into top-level sections. A section is a bare word at
  the start of a line. The recognized sections are:
  - ` + "`project`" + `: name, description, and goals of the project
  - ` + "`environment`" + `: language, runtime, and tooling requirements
  - ` + "`dependencies`" + `: libraries and services the project relies on
  - ` + "`structure`" + `: files and directories the project should contain
- Lines inside a section are indented with tabs, one tab per level.
- A ` + "`key: value`" + ` line is a directive scoped to its section. Apply it as
  written; do not reinterpret it.
- A line of the form ` + "`@word`" + ` introduces a resource block. Entries nested
  under ` + "`@file`" + ` name external files whose full contents are reproduced in
  the Referenced Files section below. Other markers are informational.
- Lines starting with ` + "`#`" + ` are comments left by the author.

## Project Description
`

// DefaultFooter carries the fixed instructions appended after the resolved
// references.
const DefaultFooter = `## Instructions

Generate the project exactly as described above.

- Honor every directive in the description; treat the author's wording as
  authoritative.
- Use the referenced file contents as context. A reference marked
  (NOT FOUND) was listed by the author but unavailable; note it and proceed.
- Do not invent sections, dependencies, or files that the description does
  not ask for.
- Output complete files, never fragments or placeholders.
`

// DefaultFence wraps the verbatim content block.
const DefaultFence = "```"

// Template groups the static text injected around the document content. The
// config layer may override any field; zero values fall back to defaults.
type Template struct {
	Preamble string
	Footer   string
	Fence    string
}

// DefaultTemplate returns the built-in preamble, footer, and fence.
func DefaultTemplate() Template {
	return Template{
		Preamble: DefaultPreamble,
		Footer:   DefaultFooter,
		Fence:    DefaultFence,
	}
}
