package tagged

import (
	"github.com/goliatone/go-elements/pkg/dom"
	"github.com/goliatone/go-elements/pkg/model"
)

// Kind discriminates the variants of Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindNode
	KindTemplate
	KindTag
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindTemplate:
		return "template"
	case KindTag:
		return "tag"
	case KindText:
		return "text"
	default:
		return "invalid"
	}
}

// Value is one interpolated slot: an existing node, a template, a bare tag
// name or plain text. The zero Value is invalid.
type Value struct {
	kind     Kind
	node     *dom.Node
	template model.Template
	text     string
}

// Node wraps an existing node. A nil node yields an invalid value.
func Node(n *dom.Node) Value {
	if n == nil {
		return Value{}
	}
	return Value{kind: KindNode, node: n}
}

// Template wraps a template to materialize.
func Template(tpl model.Template) Value {
	return Value{kind: KindTemplate, template: tpl}
}

// Tag names an element to materialize with no further declarations.
func Tag(tag string) Value {
	return Value{kind: KindTag, text: tag}
}

// Text is inserted as a text node. It cannot be a host.
func Text(text string) Value {
	return Value{kind: KindText, text: text}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}
