// Package config provides configuration loading and validation for the CLI.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"input": "resume.json", "output": "out.html", "verbose": true}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "resume.json", cfg.Input)
	assert.Equal(t, "out.html", cfg.Output)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_InputMustExist(t *testing.T) {
	cfg := &Config{Input: filepath.Join(t.TempDir(), "missing.json")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input file not found")
}

func TestValidate_TemplateMustExist(t *testing.T) {
	cfg := &Config{Template: filepath.Join(t.TempDir(), "missing.html")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template file not found")
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := Config{Output: "out.html"}
	merged := cfg.MergeWithDefaults(Config{Input: "resume.json", Output: "ignored.html"})

	assert.Equal(t, "resume.json", merged.Input)
	assert.Equal(t, "out.html", merged.Output)
}

func TestMergeWithDefaults_BoolsNotMerged(t *testing.T) {
	cfg := Config{}
	merged := cfg.MergeWithDefaults(Config{Verbose: true})

	// Bool defaults never merge; the caller decides verbose from flags
	assert.False(t, merged.Verbose)
}
