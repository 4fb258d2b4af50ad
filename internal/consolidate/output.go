package consolidate

import (
	"strings"
	"time"

	"github.com/ig4e/awesome-coding-prompts/internal/document"
)

const (
	titleBlock = `# Awesome Coding Prompts

> A single document combining every coding-standards prompt in this
> repository. Generated by promptpack; do not edit by hand.`

	instructionsHeading = "## General Instructions"

	footerBlock = `## About This Document

- Built by consolidating the instructions document and every prompt in the prompts directory.
- Priority prompts appear first; the remainder follows in alphabetical order.
- Regenerate with ` + "`promptpack`" + ` instead of editing this file.`

	separator = "---"

	// DateLayout is the footer timestamp format.
	DateLayout = "2006-01-02"
)

// Build renders the consolidated document. The result is deterministic given
// the inputs and the clock: the current date only appears in the footer line.
//
// Ordering: prompts whose filename appears in the priority list are emitted
// first, in priority order, skipping absent names. Every remaining prompt
// follows in its original listing order. Each loaded prompt appears exactly
// once.
func Build(instructions document.Document, prompts []document.Document, priority []string, now time.Time) string {
	var sb strings.Builder

	sb.WriteString(titleBlock)
	sb.WriteString("\n\n")
	sb.WriteString(separator)
	sb.WriteString("\n\n")

	sb.WriteString(instructionsHeading)
	sb.WriteString("\n\n")
	if instructions.Body != "" {
		sb.WriteString(instructions.Body)
		sb.WriteString("\n\n")
	}
	sb.WriteString(separator)
	sb.WriteString("\n\n")

	for _, doc := range OrderPrompts(prompts, priority) {
		writePrompt(&sb, doc)
	}

	sb.WriteString(footerBlock)
	sb.WriteString("\n\n")
	sb.WriteString(separator)
	sb.WriteString("\n\n")
	sb.WriteString("Generated: ")
	sb.WriteString(now.Format(DateLayout))
	sb.WriteString("\n")

	return sb.String()
}

// OrderPrompts applies the priority list, then appends the rest in listing
// order. Membership is by exact filename, so a priority document is never
// emitted a second time in the remainder pass.
func OrderPrompts(prompts []document.Document, priority []string) []document.Document {
	byName := make(map[string]document.Document, len(prompts))
	for _, doc := range prompts {
		byName[doc.Name] = doc
	}
	prioritized := make(map[string]bool, len(priority))
	ordered := make([]document.Document, 0, len(prompts))
	for _, name := range priority {
		prioritized[name] = true
		if doc, ok := byName[name]; ok {
			ordered = append(ordered, doc)
		}
	}
	for _, doc := range prompts {
		if !prioritized[doc.Name] {
			ordered = append(ordered, doc)
		}
	}
	return ordered
}

// writePrompt emits one prompt section: heading, optional emphasized
// description, body, then a rule.
func writePrompt(sb *strings.Builder, doc document.Document) {
	title := doc.Stem()
	if name, ok := doc.Header.Get("name"); ok && name != "" {
		title = name
	}
	sb.WriteString("## ")
	sb.WriteString(FormatHeading(title))
	sb.WriteString("\n")
	if desc, ok := doc.Header.Get("description"); ok && desc != "" {
		sb.WriteString("*")
		sb.WriteString(desc)
		sb.WriteString("*\n")
	}
	sb.WriteString("\n")
	sb.WriteString(doc.Body)
	sb.WriteString("\n\n")
	sb.WriteString(separator)
	sb.WriteString("\n\n")
}
