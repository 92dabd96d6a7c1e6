// Package markup provides the text formatting primitives used to describe resume content.
package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText_RendersVerbatim(t *testing.T) {
	assert.Equal(t, "x", PlainText{Text: "x"}.Render())
}

func TestPlainText_NoEscaping(t *testing.T) {
	// Callers are responsible for pre-escaping; entities pass through untouched
	assert.Equal(t, "a < b & c", PlainText{Text: "a < b & c"}.Render())
}

func TestBoldText_Render(t *testing.T) {
	assert.Equal(t, "<strong>hi</strong>", BoldText{Text: "hi"}.Render())
}

func TestItalicsText_Render(t *testing.T) {
	assert.Equal(t, `<p class="des">hi</p>`, ItalicsText{Text: "hi"}.Render())
}

func TestUnderlinedText_Render(t *testing.T) {
	assert.Equal(t, `<span class="label">hi</span>`, UnderlinedText{Text: "hi"}.Render())
}

func TestLinkText_WithoutIcon(t *testing.T) {
	got := Link("t", "u").Render()
	assert.Equal(t, `<a target="_blank" href="u">t</a>`, got)
}

func TestLinkText_WithIcon(t *testing.T) {
	got := IconLink("t", "u").Render()
	assert.Equal(t, `<a target="_blank" class="open-link" href="u">t</a>`, got)
}

func TestBulletedList_RendersItemsInOrder(t *testing.T) {
	list := List(Str("first"), Str("second"), Wrap(BoldText{Text: "third"}))
	want := "<ul>\n" +
		"<li><p>first</p></li>\n" +
		"<li><p>second</p></li>\n" +
		"<li><p><strong>third</strong></p></li>\n" +
		"</ul>\n"
	assert.Equal(t, want, list.Render())
}

func TestBulletedList_Empty(t *testing.T) {
	assert.Equal(t, "<ul>\n</ul>\n", BulletedList{}.Render())
}

func TestConcatText_NoSeparator(t *testing.T) {
	got := Concat(Wrap(BoldText{Text: "a"}), Str(" "), Wrap(ItalicsText{Text: "b"})).Render()
	assert.Equal(t, `<strong>a</strong> <p class="des">b</p>`, got)
}

func TestConcatText_Empty(t *testing.T) {
	assert.Equal(t, "", Concat().Render())
}

func TestConcatText_Nested(t *testing.T) {
	inner := Concat(Wrap(UnderlinedText{Text: "Languages:"}), Str(" Go, Python"))
	outer := Concat(Str("See "), Wrap(inner))
	assert.Equal(t, `See <span class="label">Languages:</span> Go, Python`, outer.Render())
}

func TestStrLike_ZeroValueIsAbsent(t *testing.T) {
	var s StrLike
	assert.True(t, s.IsZero())
	assert.Equal(t, "", s.Render())
}

func TestStrLike_EmptyStringIsPresent(t *testing.T) {
	s := Str("")
	assert.False(t, s.IsZero())
	assert.Equal(t, "", s.Render())
}

func TestStrLike_WrapNilIsAbsent(t *testing.T) {
	assert.True(t, Wrap(nil).IsZero())
}

func TestStrLike_BlankValues(t *testing.T) {
	var absent StrLike
	assert.True(t, absent.IsBlank())
	assert.True(t, Str("").IsBlank())
	assert.False(t, Str("x").IsBlank())
}

func TestStrLike_NodeIsNeverBlank(t *testing.T) {
	// Node values render even when their fragment is empty
	assert.False(t, Wrap(PlainText{}).IsBlank())
	assert.False(t, Wrap(Concat()).IsBlank())
}

func TestStrLike_RawAndNodeRenderAlike(t *testing.T) {
	assert.Equal(t, PlainText{Text: "x"}.Render(), Str("x").Render())
}

func TestRender_Deterministic(t *testing.T) {
	list := List(
		Wrap(Concat(Wrap(UnderlinedText{Text: "Tools:"}), Str(" make, git"))),
		Wrap(Link("docs", "https://example.com")),
	)
	first := list.Render()
	second := list.Render()
	assert.Equal(t, first, second)
}
