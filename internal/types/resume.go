// Package types provides the document entities that make up a resume.
package types

import "github.com/jonathan/resume-builder/internal/markup"

// SectionEntry represents one achievement, role, or item line within a
// resume section. Every field is optional; absent fields are suppressed
// entirely when rendered (no empty tags).
type SectionEntry struct {
	// Title is the headline of the entry, e.g. a company name.
	Title markup.StrLike
	// Caption qualifies the title, e.g. a job title.
	Caption markup.StrLike
	// Location is where the entry took place, e.g. "Boston, MA".
	Location markup.StrLike
	// Dates covers the entry's time span, e.g. employment dates.
	Dates markup.StrLike
	// Description is the body of the entry, often a BulletedList.
	Description markup.StrLike
}

// Section represents one titled group of entries. Entry order is
// rendering order and is meaningful: it reflects the chronological or
// priority order chosen by the author.
type Section struct {
	Title   markup.StrLike
	Entries []SectionEntry
}

// ContactInfo represents the header block of the resume.
//
// When TagLine is absent or blank the header renders a bare line break
// in its place rather than nothing; existing stylesheets depend on that
// filler, so the asymmetry with other optional fields is kept on
// purpose.
type ContactInfo struct {
	// Name is the author's name. It is the only mandatory field on a
	// resume; Resume.Validate rejects a document without it.
	Name markup.StrLike
	// Details are contact lines (phone, email, links) in display order.
	Details []markup.StrLike
	// TagLine is a short subtitle shown near the name.
	TagLine markup.StrLike
}

// Summary represents an introductory section such as a summary,
// objective, or research statement. A resume may omit it entirely.
type Summary struct {
	Title       markup.StrLike
	Description markup.StrLike
}

// Resume is the root document: one ContactInfo, an optional Summary, and
// an ordered list of Sections. It is built once and treated as read-only
// afterwards; rendering never mutates it, so a Resume may be rendered
// repeatedly or concurrently without synchronization.
type Resume struct {
	ContactInfo ContactInfo
	Summary     *Summary
	Sections    []Section
}

// Validate checks the construction-time invariants of the document.
// Rendering assumes a validated resume and performs no checks of its own.
func (r *Resume) Validate() error {
	if r.ContactInfo.Name.IsZero() || r.ContactInfo.Name.Render() == "" {
		return &InvalidResumeError{Field: "contact_info.name", Message: "name is required"}
	}
	return nil
}
