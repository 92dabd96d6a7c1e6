// Package rendering turns a resume document into a single HTML page.
package rendering

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

// Substitution markers. A usable template contains each marker exactly
// once; Render replaces each exactly once with literal text replacement.
// This is deliberately not a templating language: the markers and their
// counts are the whole contract, and nothing else about the template's
// structure is assumed.
const (
	MarkerName        = "__NAME__"
	MarkerContactInfo = "__CONTACT_INFO__"
	MarkerSummary     = "__SUMMARY__"
	MarkerSections    = "__SECTIONS__"
)

// markers lists every substitution marker a template must carry.
var markers = []string{MarkerName, MarkerContactInfo, MarkerSummary, MarkerSections}

// defaultTemplate is the built-in page: a self-contained HTML document
// with an inline stylesheet, treated as an opaque asset by the renderer.
//
//go:embed template.html
var defaultTemplate string

// DefaultTemplate returns the built-in HTML template.
func DefaultTemplate() string {
	return defaultTemplate
}

// LoadTemplate reads a custom template file and checks it against the
// marker contract.
func LoadTemplate(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", path),
				Cause:   err,
			}
		}
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", path),
			Cause:   err,
		}
	}

	tmpl := string(content)
	if err := CheckTemplate(tmpl); err != nil {
		return "", err
	}
	return tmpl, nil
}

// CheckTemplate verifies that each substitution marker appears exactly
// once. A malformed template fails here rather than producing a
// half-substituted document.
func CheckTemplate(tmpl string) error {
	for _, marker := range markers {
		switch n := strings.Count(tmpl, marker); n {
		case 1:
		case 0:
			return &TemplateError{Message: fmt.Sprintf("missing marker %s", marker)}
		default:
			return &TemplateError{Message: fmt.Sprintf("marker %s appears %d times, want exactly one", marker, n)}
		}
	}
	return nil
}
