// Package types provides the document entities that make up a resume.
package types

import "fmt"

// InvalidResumeError represents a construction-time invariant violation
type InvalidResumeError struct {
	Field   string
	Message string
}

func (e *InvalidResumeError) Error() string {
	return fmt.Sprintf("invalid resume: %s: %s", e.Field, e.Message)
}
