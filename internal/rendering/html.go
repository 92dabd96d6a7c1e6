// Package rendering turns a resume document into a single HTML page.
package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// RenderContactInfo renders the header block: the name as an <h1>, the
// contact details as a list when present, and the tagline. An absent or
// blank tagline renders a bare line break in its place; see
// types.ContactInfo.
func RenderContactInfo(info types.ContactInfo) string {
	var sb strings.Builder
	sb.WriteString(`<h1 id="name">` + info.Name.Render() + "</h1>\n")

	if len(info.Details) > 0 {
		sb.WriteString("<ul id=\"contact\">\n")
		for _, detail := range info.Details {
			sb.WriteString("<li>" + detail.Render() + "</li>\n")
		}
		sb.WriteString("</ul>\n")
	}
	if !info.TagLine.IsBlank() {
		sb.WriteString(`<p id="objective">` + info.TagLine.Render() + "</p>\n")
	} else {
		sb.WriteString("<br>\n")
	}
	return sb.String()
}

// RenderSummary renders the summary block, or the empty string when the
// resume has no summary.
func RenderSummary(summary *types.Summary) string {
	if summary == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("<div class='container'>\n")
	sb.WriteString("<section>\n")
	sb.WriteString("<h2>" + summary.Title.Render() + "</h2>\n")
	sb.WriteString("<div class=\"entry\">\n")
	sb.WriteString("<p>\n" + summary.Description.Render() + "</p>\n")
	sb.WriteString("</div>")
	sb.WriteString("</section>\n")
	sb.WriteString("</div>\n")
	return sb.String()
}

// RenderSection renders one section. Blank entry fields (absent, or an
// empty raw string) are suppressed entirely; the entry container is
// always emitted.
func RenderSection(section types.Section) string {
	var sb strings.Builder
	sb.WriteString("<div class='container'>\n")
	sb.WriteString("<section>\n")
	if !section.Title.IsBlank() {
		sb.WriteString("<h2>" + section.Title.Render() + "</h2>\n")
	}
	for _, entry := range section.Entries {
		sb.WriteString("<div class=\"entry\">\n")
		if !entry.Title.IsBlank() {
			sb.WriteString("<h3>" + entry.Title.Render() + "</h3>\n")
		}
		if !entry.Caption.IsBlank() {
			sb.WriteString(`<span class="role">` + entry.Caption.Render() + "</span>\n")
		}
		if !entry.Location.IsBlank() {
			sb.WriteString(`<span class="loc">` + entry.Location.Render() + "</span>\n")
		}
		if !entry.Dates.IsBlank() {
			sb.WriteString(`<span class="date">` + entry.Dates.Render() + "</span>\n")
		}
		if !entry.Description.IsBlank() {
			sb.WriteString("<p>\n" + entry.Description.Render() + "</p>\n")
		}
		sb.WriteString("</div>\n")
	}
	sb.WriteString("</section>\n")
	sb.WriteString("</div>\n")
	return sb.String()
}

// RenderSections renders every section in document order with no
// separator between them.
func RenderSections(sections []types.Section) string {
	var sb strings.Builder
	for _, section := range sections {
		sb.WriteString(RenderSection(section))
	}
	return sb.String()
}

// Render produces the complete HTML document for a resume by
// substituting each template marker exactly once. With an empty tmpl the
// built-in template is used. Rendering is a pure read of the document
// tree: it never fails for valid content, and the only error source is a
// template violating the marker contract.
func Render(resume *types.Resume, tmpl string) (string, error) {
	if tmpl == "" {
		tmpl = defaultTemplate
	}
	if err := CheckTemplate(tmpl); err != nil {
		return "", err
	}

	s := strings.Replace(tmpl, MarkerName, resume.ContactInfo.Name.Render(), 1)
	s = strings.Replace(s, MarkerContactInfo, RenderContactInfo(resume.ContactInfo), 1)
	s = strings.Replace(s, MarkerSummary, RenderSummary(resume.Summary), 1)
	s = strings.Replace(s, MarkerSections, RenderSections(resume.Sections), 1)
	return s, nil
}
