package dom

import (
	"fmt"

	"golang.org/x/net/html"
)

// AppendChild appends child as the last child of parent. A child that is
// already attached elsewhere is moved.
func (d *Document) AppendChild(parent, child *Node) error {
	if parent == nil || child == nil {
		return ErrNilNode
	}
	if parent.Type != html.ElementNode && parent.Type != html.DocumentNode {
		return fmt.Errorf("%w: %s node cannot have children", ErrHierarchy, nodeKind(parent))
	}
	if child.Type == html.DocumentNode {
		return fmt.Errorf("%w: document node cannot be a child", ErrHierarchy)
	}
	for p := parent; p != nil; p = p.Parent {
		if p == child {
			return fmt.Errorf("%w: node cannot be appended to itself or a descendant", ErrHierarchy)
		}
	}

	detach(child)
	parent.AppendChild(child)
	return nil
}

// RemoveChild detaches child from its parent. Detached nodes are ignored.
func (d *Document) RemoveChild(child *Node) {
	if child == nil {
		return
	}
	detach(child)
}

// Children returns the direct children of n in order.
func Children(n *Node) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// Contains reports whether other is n or one of its descendants.
func Contains(n, other *Node) bool {
	for p := other; p != nil; p = p.Parent {
		if p == n {
			return true
		}
	}
	return false
}

func detach(n *Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

func nodeKind(n *Node) string {
	switch n.Type {
	case html.TextNode:
		return "text"
	case html.CommentNode:
		return "comment"
	case html.DoctypeNode:
		return "doctype"
	case html.DocumentNode:
		return "document"
	case html.ElementNode:
		return "element"
	default:
		return "unknown"
	}
}
