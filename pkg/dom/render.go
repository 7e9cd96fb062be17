package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Render writes the whole document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// RenderNode writes n and its subtree as HTML.
func RenderNode(w io.Writer, n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	return html.Render(w, n)
}

// OuterHTML returns the serialised form of n, or "" for a nil node.
func OuterHTML(n *Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return ""
	}
	return b.String()
}

// InnerHTML returns the serialised children of n.
func InnerHTML(n *Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return ""
		}
	}
	return b.String()
}

// TextContent concatenates the text of every text node under n.
func TextContent(n *Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	var walk func(*Node)
	walk = func(node *Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
