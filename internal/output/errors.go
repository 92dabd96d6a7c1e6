// Package output persists rendered resume documents to disk.
package output

import "fmt"

// WriteError represents a failure writing the rendered document
type WriteError struct {
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("write error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("write error: %s", e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
