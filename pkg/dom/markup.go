package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// SetHTML replaces n's children with the nodes parsed from markup. The
// markup is passed through the document's sanitizer first and parsed in the
// context of n, so table rows, list items and similar context-sensitive
// content land where a browser would put them.
func (d *Document) SetHTML(n *Node, markup string) error {
	if n == nil {
		return ErrNilNode
	}
	if n.Type != html.ElementNode {
		return fmt.Errorf("%w: cannot set markup on %s node", ErrHierarchy, nodeKind(n))
	}
	if d.sanitizer != nil {
		markup = d.sanitizer.Sanitize(markup)
	}

	nodes, err := html.ParseFragment(strings.NewReader(markup), n)
	if err != nil {
		return fmt.Errorf("dom: parse markup: %w", err)
	}

	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	for _, c := range nodes {
		detach(c)
		n.AppendChild(c)
	}
	return nil
}
