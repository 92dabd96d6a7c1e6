// Package schemas provides JSON Schema validation for resume definition files.
package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResume_ValidDocument(t *testing.T) {
	doc := []byte(`{
		"contact_info": {
			"name": "Ada Lovelace",
			"details": ["ada@example.org", {"link": {"text": "t", "url": "u"}}],
			"tag_line": "Poetical science."
		},
		"sections": [
			{"title": "Experience", "entries": [{"title": "Analytical Engine"}]}
		]
	}`)
	assert.NoError(t, ValidateResume(doc))
}

func TestValidateResume_MinimalDocument(t *testing.T) {
	assert.NoError(t, ValidateResume([]byte(`{"contact_info": {"name": "Ada"}}`)))
}

func TestValidateResume_MissingContactInfo(t *testing.T) {
	err := ValidateResume([]byte(`{"sections": []}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "contact_info")
}

func TestValidateResume_BadTextValue(t *testing.T) {
	err := ValidateResume([]byte(`{"contact_info": {"name": 42}}`))
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateResume_MultiKeyFormattingObject(t *testing.T) {
	err := ValidateResume([]byte(`{"contact_info": {"name": {"bold": "a", "italics": "b"}}}`))
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateResume_LinkRequiresURL(t *testing.T) {
	err := ValidateResume([]byte(`{"contact_info": {"name": {"link": {"text": "t"}}}}`))
	assert.Error(t, err)
}

func TestValidateResume_NotJSON(t *testing.T) {
	err := ValidateResume([]byte("not json at all"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
