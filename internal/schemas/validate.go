// Package schemas provides JSON Schema validation for resume definition files.
package schemas

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// resumeSchema is the JSON Schema describing a resume definition file.
// It ships with the binary so validation works regardless of working
// directory.
//
//go:embed resume.schema.json
var resumeSchema []byte

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema or the
// document under validation
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateResume validates raw JSON bytes against the embedded resume
// schema. It returns a *ValidationError listing every violation with its
// field path, or a *SchemaLoadError when the document is not parseable
// JSON at all.
func ValidateResume(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(resumeSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Message: "failed to validate document",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	fieldErrors := make([]FieldError, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   resultErr.Field(),
			Message: resultErr.Description(),
		})
	}

	// Stable order so error output is deterministic across runs
	sort.Slice(fieldErrors, func(i, j int) bool {
		if fieldErrors[i].Field != fieldErrors[j].Field {
			return fieldErrors[i].Field < fieldErrors[j].Field
		}
		return fieldErrors[i].Message < fieldErrors[j].Message
	})

	return &ValidationError{Errors: fieldErrors}
}
