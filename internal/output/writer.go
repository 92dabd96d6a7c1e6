// Package output persists rendered resume documents to disk.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultFilename derives the output file name from the resume's contact
// name: "<name>_resume.html".
func DefaultFilename(resume *types.Resume) string {
	return fmt.Sprintf("%s_resume.html", resume.ContactInfo.Name.Render())
}

// Save writes the rendered HTML to path, deriving the default file name
// when path is empty. Parent directories are created as needed. The
// document is written to a uniquely named temp file in the target
// directory and renamed into place, so a crash mid-write never leaves a
// truncated resume behind. It returns the path actually written.
func Save(resume *types.Resume, html string, path string) (string, error) {
	if path == "" {
		path = DefaultFilename(resume)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &WriteError{
			Message: fmt.Sprintf("failed to create output directory %s", dir),
			Cause:   err,
		}
	}

	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmpPath, []byte(html), 0644); err != nil {
		return "", &WriteError{
			Message: fmt.Sprintf("failed to write temp file %s", tmpPath),
			Cause:   err,
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return "", &WriteError{
			Message: fmt.Sprintf("failed to move output into place at %s", path),
			Cause:   err,
		}
	}

	return path, nil
}
