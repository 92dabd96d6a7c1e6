// Package document loads resume definition files and converts them into document entities.
package document

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-builder/internal/markup"
)

// Value is the definition-file form of a text value: either a bare
// string or a single-key formatting object ({"bold": …}, {"link": …},
// {"list": […]}, …). The zero value means the field was absent.
type Value struct {
	str  *string
	node *nodeSpec
}

// nodeSpec mirrors the formatting-object shape of the file format.
// Exactly one field may be set.
type nodeSpec struct {
	Bold      *string   `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italics   *string   `json:"italics,omitempty" yaml:"italics,omitempty"`
	Underline *string   `json:"underline,omitempty" yaml:"underline,omitempty"`
	Link      *linkSpec `json:"link,omitempty" yaml:"link,omitempty"`
	List      []Value   `json:"list,omitempty" yaml:"list,omitempty"`
	Concat    []Value   `json:"concat,omitempty" yaml:"concat,omitempty"`
}

// linkSpec mirrors the hyperlink object of the file format.
type linkSpec struct {
	Text     string `json:"text" yaml:"text"`
	URL      string `json:"url" yaml:"url"`
	ShowIcon bool   `json:"show_icon,omitempty" yaml:"show_icon,omitempty"`
}

// check enforces the single-key contract of a formatting object. The
// JSON Schema already rejects malformed JSON input; this covers YAML and
// programmatic decoding, which bypass the schema.
func (n *nodeSpec) check() error {
	count := 0
	if n.Bold != nil {
		count++
	}
	if n.Italics != nil {
		count++
	}
	if n.Underline != nil {
		count++
	}
	if n.Link != nil {
		count++
	}
	if n.List != nil {
		count++
	}
	if n.Concat != nil {
		count++
	}
	if count != 1 {
		return &FormatError{Message: "a formatting object must have exactly one of bold, italics, underline, link, list, concat"}
	}
	return nil
}

// UnmarshalJSON decodes either a JSON string or a formatting object.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return &FormatError{Message: "text value must not be null; omit the field instead"}
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v.str = &s
		return nil
	}

	var spec nodeSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return &FormatError{Message: "text value must be a string or a formatting object"}
	}
	if err := spec.check(); err != nil {
		return err
	}
	v.node = &spec
	return nil
}

// UnmarshalYAML decodes either a YAML scalar or a formatting mapping.
func (v *Value) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		v.str = &s
		return nil
	case yaml.MappingNode:
		var spec nodeSpec
		if err := value.Decode(&spec); err != nil {
			return err
		}
		if err := spec.check(); err != nil {
			return err
		}
		v.node = &spec
		return nil
	default:
		return &FormatError{Message: "text value must be a string or a formatting mapping"}
	}
}

// IsZero reports whether the value was absent from the file.
func (v Value) IsZero() bool {
	return v.str == nil && v.node == nil
}

// toStrLike converts the decoded value into its markup form.
func (v Value) toStrLike() markup.StrLike {
	if v.str != nil {
		return markup.Str(*v.str)
	}
	if v.node != nil {
		return markup.Wrap(v.node.toNode())
	}
	return markup.StrLike{}
}

// toNode builds the markup node for a formatting object. check has
// already guaranteed exactly one case is set.
func (n *nodeSpec) toNode() markup.Node {
	switch {
	case n.Bold != nil:
		return markup.BoldText{Text: *n.Bold}
	case n.Italics != nil:
		return markup.ItalicsText{Text: *n.Italics}
	case n.Underline != nil:
		return markup.UnderlinedText{Text: *n.Underline}
	case n.Link != nil:
		return markup.LinkText{Text: n.Link.Text, URL: n.Link.URL, ShowIcon: n.Link.ShowIcon}
	case n.List != nil:
		return markup.BulletedList{Items: toStrLikes(n.List)}
	default:
		return markup.ConcatText{Parts: toStrLikes(n.Concat)}
	}
}

func toStrLikes(values []Value) []markup.StrLike {
	out := make([]markup.StrLike, 0, len(values))
	for _, v := range values {
		out = append(out, v.toStrLike())
	}
	return out
}
