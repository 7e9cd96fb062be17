package tagged

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-elements/pkg/dom"
	"github.com/goliatone/go-elements/pkg/model"
)

// Materializer is the subset of *materialize.Materializer the parser needs.
type Materializer interface {
	Create(tpl model.Template) (*dom.Node, error)
	Text(text string) *dom.Node
	Document() *dom.Document
}

// Parse builds a node from a template invocation. values[0] selects the
// host: a node is used as is, a template or tag name is materialized. The
// segment in front of the host is dropped; the remaining segments and
// values are appended alternately, skipping empty segments.
func Parse(m Materializer, segments []string, values ...Value) (*dom.Node, error) {
	if len(values) == 0 {
		return nil, &InvalidHostError{Kind: KindInvalid}
	}
	host, err := resolveHost(m, values[0])
	if err != nil {
		return nil, err
	}
	if len(segments) > 0 {
		segments = segments[1:]
	}
	return fill(m, host, segments, values[1:])
}

// ParseWith materializes host as the host element and treats every segment
// and value as content.
func ParseWith(m Materializer, host model.Template, segments []string, values ...Value) (*dom.Node, error) {
	node, err := m.Create(model.Merge(host, model.Template{}))
	if err != nil {
		return nil, fmt.Errorf("tagged: host: %w", err)
	}
	return fill(m, node, segments, values)
}

// Format is Parse over the segments of a {} placeholder string.
func Format(m Materializer, format string, values ...Value) (*dom.Node, error) {
	return Parse(m, Split(format), values...)
}

// FormatWith is ParseWith over the segments of a {} placeholder string.
func FormatWith(m Materializer, host model.Template, format string, values ...Value) (*dom.Node, error) {
	return ParseWith(m, host, Split(format), values...)
}

// Split cuts format at every {} placeholder, returning one more segment
// than there are placeholders. {{}} stands for a literal {}.
func Split(format string) []string {
	var (
		segments []string
		current  strings.Builder
	)
	for i := 0; i < len(format); {
		switch {
		case strings.HasPrefix(format[i:], "{{}}"):
			current.WriteString("{}")
			i += 4
		case strings.HasPrefix(format[i:], "{}"):
			segments = append(segments, current.String())
			current.Reset()
			i += 2
		default:
			current.WriteByte(format[i])
			i++
		}
	}
	return append(segments, current.String())
}

func fill(m Materializer, host *dom.Node, segments []string, values []Value) (*dom.Node, error) {
	doc := m.Document()
	next := 0
	appendValue := func() error {
		if next >= len(values) {
			return nil
		}
		child, err := resolve(m, values[next])
		if err != nil {
			return fmt.Errorf("tagged: value %d: %w", next, err)
		}
		next++
		if err := doc.AppendChild(host, child); err != nil {
			return fmt.Errorf("tagged: value %d: %w", next-1, err)
		}
		return nil
	}

	for _, segment := range segments {
		if segment != "" {
			if err := doc.AppendChild(host, m.Text(segment)); err != nil {
				return nil, fmt.Errorf("tagged: text: %w", err)
			}
		}
		if err := appendValue(); err != nil {
			return nil, err
		}
	}
	for next < len(values) {
		if err := appendValue(); err != nil {
			return nil, err
		}
	}
	return host, nil
}

func resolveHost(m Materializer, v Value) (*dom.Node, error) {
	switch v.kind {
	case KindNode, KindTemplate, KindTag:
		node, err := resolve(m, v)
		if err != nil {
			return nil, fmt.Errorf("tagged: host: %w", err)
		}
		return node, nil
	default:
		return nil, &InvalidHostError{Kind: v.kind}
	}
}

func resolve(m Materializer, v Value) (*dom.Node, error) {
	switch v.kind {
	case KindNode:
		return v.node, nil
	case KindTemplate:
		return m.Create(v.template)
	case KindTag:
		return m.Create(model.FromTag(v.text))
	case KindText:
		return m.Text(v.text), nil
	default:
		return nil, ErrInvalidValue
	}
}
