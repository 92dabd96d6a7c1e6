// Package rendering turns a resume document into a single HTML page.
package rendering

import "fmt"

// TemplateError represents a template that cannot be used: it could not
// be read, or it violates the marker contract.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
