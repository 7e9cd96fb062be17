package dom

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// SetAttribute sets name to value, replacing an existing value in place.
// Attribute names are lowercased as in an HTML document. Names rejected by
// ValidAttributeName are ignored.
func (d *Document) SetAttribute(n *Node, name, value string) {
	if n == nil || !ValidAttributeName(name) {
		return
	}
	key := strings.ToLower(strings.TrimSpace(name))
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

// Attribute returns the value of name and whether it is set.
func (d *Document) Attribute(n *Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	key := strings.ToLower(strings.TrimSpace(name))
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// ValidAttributeName reports whether name can be serialised as an
// attribute name: non-empty after trimming and free of whitespace, quotes,
// '>', '/', '=' and control characters.
func ValidAttributeName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case unicode.IsSpace(r), unicode.IsControl(r):
			return false
		case r == '"', r == '\'', r == '>', r == '/', r == '=', r == '<':
			return false
		case r >= 0xFDD0 && r <= 0xFDEF:
			return false
		}
	}
	return true
}

// RemoveAttribute deletes name from n.
func (d *Document) RemoveAttribute(n *Node, name string) {
	if n == nil {
		return
	}
	key := strings.ToLower(strings.TrimSpace(name))
	kept := n.Attr[:0]
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			continue
		}
		kept = append(kept, attr)
	}
	n.Attr = kept
}

// SetID sets the id attribute.
func (d *Document) SetID(n *Node, id string) {
	d.SetAttribute(n, "id", id)
}

// AddClass adds each class token to n's class list, keeping insertion
// order and skipping tokens already present. Values containing whitespace
// are split into separate tokens.
func (d *Document) AddClass(n *Node, classes ...string) {
	if n == nil {
		return
	}
	current := d.Classes(n)
	seen := make(map[string]struct{}, len(current))
	for _, class := range current {
		seen[class] = struct{}{}
	}
	changed := false
	for _, value := range classes {
		for _, token := range strings.Fields(value) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			current = append(current, token)
			changed = true
		}
	}
	if changed {
		d.SetAttribute(n, "class", strings.Join(current, " "))
	}
}

// Classes returns n's class tokens in order.
func (d *Document) Classes(n *Node) []string {
	value, ok := d.Attribute(n, "class")
	if !ok {
		return nil
	}
	return strings.Fields(value)
}

// HasClass reports whether class is in n's class list.
func (d *Document) HasClass(n *Node, class string) bool {
	for _, token := range d.Classes(n) {
		if token == class {
			return true
		}
	}
	return false
}
