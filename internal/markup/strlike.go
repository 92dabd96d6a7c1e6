// Package markup provides the text formatting primitives used to describe resume content.
package markup

// StrLike holds either a raw string or a markup Node. Fields that accept
// formatted text take a StrLike so call sites can pass plain strings
// without wrapping them in PlainText themselves. The zero value is
// "absent" and renders nothing; use IsZero to distinguish an absent value
// from present-but-empty text (Str("")).
type StrLike struct {
	raw  string
	node Node
	set  bool
}

// Str wraps a raw string. The string renders verbatim, exactly as a
// PlainText node would.
func Str(s string) StrLike {
	return StrLike{raw: s, set: true}
}

// Wrap wraps a markup node. A nil node yields the absent value.
func Wrap(n Node) StrLike {
	if n == nil {
		return StrLike{}
	}
	return StrLike{node: n, set: true}
}

// IsZero reports whether the value is absent.
func (s StrLike) IsZero() bool {
	return !s.set
}

// IsBlank reports whether the value is absent or holds an empty raw
// string. The renderer suppresses blank fields: an empty raw string
// behaves exactly like an absent one, while a node value always renders
// even when its fragment happens to be empty. Raw strings are judged by
// content and nodes by presence.
func (s StrLike) IsBlank() bool {
	return s.node == nil && s.raw == ""
}

// Render produces the HTML fragment for the held value: the raw string
// verbatim, the node's fragment, or the empty string when absent.
func (s StrLike) Render() string {
	if s.node != nil {
		return s.node.Render()
	}
	return s.raw
}
