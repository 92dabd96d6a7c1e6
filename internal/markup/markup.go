// Package markup provides the text formatting primitives used to describe resume content.
package markup

import "strings"

// Node represents a single renderable text element. The variant set is
// closed: every implementation lives in this package, so callers can rely
// on the fragment shapes documented on each type.
//
// Render is pure and side-effect-free; it depends only on the node's own
// data and renders child nodes recursively. No HTML escaping is performed
// anywhere in this package: text is emitted verbatim, and callers who need
// entities escaped must pre-escape their content. This is a deliberate
// simplicity trade-off, not an oversight.
type Node interface {
	Render() string

	// node restricts implementations to this package.
	node()
}

// PlainText represents a plain text element rendered verbatim.
type PlainText struct {
	Text string
}

func (t PlainText) Render() string {
	return t.Text
}

func (t PlainText) node() {}

// BoldText represents a text element rendered in bold.
type BoldText struct {
	Text string
}

func (t BoldText) Render() string {
	return "<strong>" + t.Text + "</strong>"
}

func (t BoldText) node() {}

// ItalicsText represents a text element rendered in italics via the
// description style class.
type ItalicsText struct {
	Text string
}

func (t ItalicsText) Render() string {
	return `<p class="des">` + t.Text + `</p>`
}

func (t ItalicsText) node() {}

// UnderlinedText represents a text element rendered with an underline via
// the label style class.
type UnderlinedText struct {
	Text string
}

func (t UnderlinedText) Render() string {
	return `<span class="label">` + t.Text + `</span>`
}

func (t UnderlinedText) node() {}

// LinkText represents a text element with a hyperlink. When ShowIcon is
// set, the anchor carries the open-link class so the stylesheet draws an
// external-link icon next to the text.
type LinkText struct {
	Text     string
	URL      string
	ShowIcon bool
}

func (t LinkText) Render() string {
	if !t.ShowIcon {
		return `<a target="_blank" href="` + t.URL + `">` + t.Text + `</a>`
	}
	return `<a target="_blank" class="open-link" href="` + t.URL + `">` + t.Text + `</a>`
}

func (t LinkText) node() {}

// BulletedList represents a bulleted list. Items render in input order,
// one <li><p>…</p></li> line per item.
type BulletedList struct {
	Items []StrLike
}

func (t BulletedList) Render() string {
	var sb strings.Builder
	sb.WriteString("<ul>\n")
	for _, item := range t.Items {
		sb.WriteString("<li><p>")
		sb.WriteString(item.Render())
		sb.WriteString("</p></li>\n")
	}
	sb.WriteString("</ul>\n")
	return sb.String()
}

func (t BulletedList) node() {}

// ConcatText concatenates multiple text elements back-to-back with no
// separator.
type ConcatText struct {
	Parts []StrLike
}

// Concat builds a ConcatText from its arguments.
func Concat(parts ...StrLike) ConcatText {
	return ConcatText{Parts: parts}
}

func (t ConcatText) Render() string {
	var sb strings.Builder
	for _, part := range t.Parts {
		sb.WriteString(part.Render())
	}
	return sb.String()
}

func (t ConcatText) node() {}

// List builds a BulletedList from its arguments.
func List(items ...StrLike) BulletedList {
	return BulletedList{Items: items}
}

// Link builds a LinkText without an icon.
func Link(text, url string) LinkText {
	return LinkText{Text: text, URL: url}
}

// IconLink builds a LinkText that shows the external-link icon.
func IconLink(text, url string) LinkText {
	return LinkText{Text: text, URL: url, ShowIcon: true}
}
