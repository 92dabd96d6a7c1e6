// Package document loads resume definition files and converts them into document entities.
package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-builder/internal/markup"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// File is the root of a resume definition file.
type File struct {
	ContactInfo ContactInfoSpec `json:"contact_info" yaml:"contact_info"`
	Summary     *SummarySpec    `json:"summary,omitempty" yaml:"summary,omitempty"`
	Sections    []SectionSpec   `json:"sections,omitempty" yaml:"sections,omitempty" validate:"dive"`
}

// ContactInfoSpec is the file form of the contact header.
type ContactInfoSpec struct {
	Name    Value   `json:"name" yaml:"name" validate:"required"`
	Details []Value `json:"details,omitempty" yaml:"details,omitempty"`
	TagLine Value   `json:"tag_line,omitempty" yaml:"tag_line,omitempty"`
}

// SummarySpec is the file form of the summary block.
type SummarySpec struct {
	Title       Value `json:"title,omitempty" yaml:"title,omitempty"`
	Description Value `json:"description,omitempty" yaml:"description,omitempty"`
}

// SectionSpec is the file form of one resume section.
type SectionSpec struct {
	Title   Value       `json:"title,omitempty" yaml:"title,omitempty"`
	Entries []EntrySpec `json:"entries" yaml:"entries" validate:"required"`
}

// EntrySpec is the file form of one section entry.
type EntrySpec struct {
	Title       Value `json:"title,omitempty" yaml:"title,omitempty"`
	Caption     Value `json:"caption,omitempty" yaml:"caption,omitempty"`
	Location    Value `json:"location,omitempty" yaml:"location,omitempty"`
	Dates       Value `json:"dates,omitempty" yaml:"dates,omitempty"`
	Description Value `json:"description,omitempty" yaml:"description,omitempty"`
}

// Validate checks the struct-level constraints of the decoded file.
func (f *File) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}

// ToResume converts the decoded file into document entities.
func (f *File) ToResume() *types.Resume {
	resume := &types.Resume{
		ContactInfo: types.ContactInfo{
			Name:    f.ContactInfo.Name.toStrLike(),
			Details: toStrLikeSlice(f.ContactInfo.Details),
			TagLine: f.ContactInfo.TagLine.toStrLike(),
		},
	}

	if f.Summary != nil {
		resume.Summary = &types.Summary{
			Title:       f.Summary.Title.toStrLike(),
			Description: f.Summary.Description.toStrLike(),
		}
	}

	for _, section := range f.Sections {
		entries := make([]types.SectionEntry, 0, len(section.Entries))
		for _, entry := range section.Entries {
			entries = append(entries, types.SectionEntry{
				Title:       entry.Title.toStrLike(),
				Caption:     entry.Caption.toStrLike(),
				Location:    entry.Location.toStrLike(),
				Dates:       entry.Dates.toStrLike(),
				Description: entry.Description.toStrLike(),
			})
		}
		resume.Sections = append(resume.Sections, types.Section{
			Title:   section.Title.toStrLike(),
			Entries: entries,
		})
	}

	return resume
}

// toStrLikeSlice converts decoded values, keeping a nil slice nil so an
// absent details list stays absent.
func toStrLikeSlice(values []Value) []markup.StrLike {
	if values == nil {
		return nil
	}
	return toStrLikes(values)
}

// Load reads a resume definition file and returns the validated document
// entities. JSON input (the default) is validated against the embedded
// JSON Schema before decoding; .yaml/.yml files decode via the YAML
// path, which enforces the same text-value format structurally.
func Load(path string) (*types.Resume, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var file File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &file); err != nil {
			return nil, &LoadError{
				Message: "failed to unmarshal YAML",
				Cause:   err,
			}
		}
	default:
		if err := schemas.ValidateResume(content); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(content, &file); err != nil {
			return nil, &LoadError{
				Message: "failed to unmarshal JSON",
				Cause:   err,
			}
		}
	}

	if err := file.Validate(); err != nil {
		return nil, &LoadError{
			Message: "definition file failed validation",
			Cause:   err,
		}
	}

	resume := file.ToResume()
	if err := resume.Validate(); err != nil {
		return nil, err
	}
	return resume, nil
}
