// Package document loads resume definition files and converts them into document entities.
package document

import "fmt"

// LoadError represents an error during file I/O or decoding
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// FormatError represents a definition file that decodes but does not
// conform to the text-value format
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format error: %s", e.Message)
}
