// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of the loaded resume.
func (p *Printer) PrintResume(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", resume.ContactInfo.Name.Render()))
	sb.WriteString(fmt.Sprintf("Details:  %d\n", len(resume.ContactInfo.Details)))
	if !resume.ContactInfo.TagLine.IsZero() {
		sb.WriteString(fmt.Sprintf("Tagline:  %s\n", resume.ContactInfo.TagLine.Render()))
	}
	if resume.Summary != nil {
		sb.WriteString("Summary:  present\n")
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Sections (%d):\n", len(resume.Sections)))
	for i, section := range resume.Sections {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Sections)-maxItemsToShow))
			break
		}
		title := section.Title.Render()
		if title == "" {
			title = "(untitled)"
		}
		sb.WriteString(fmt.Sprintf("  %s: %d entries\n", title, len(section.Entries)))
	}

	p.printBox("Resume", strings.TrimRight(sb.String(), "\n"))
}

// PrintSaved outputs where the rendered document was written and its size.
func (p *Printer) PrintSaved(path string, size int) {
	content := fmt.Sprintf("Path:  %s\nSize:  %d bytes", path, size)
	p.printBox("Output", content)
}
