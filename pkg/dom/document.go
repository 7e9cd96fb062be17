package dom

import (
	"fmt"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is a host tree node.
type Node = html.Node

// Sanitizer cleans markup before SetHTML parses it. *bluemonday.Policy
// satisfies it.
type Sanitizer interface {
	Sanitize(markup string) string
}

// Option configures a Document at construction.
type Option func(*Document)

// WithSanitizer replaces the default markup sanitizer.
func WithSanitizer(sanitizer Sanitizer) Option {
	return func(d *Document) {
		if sanitizer != nil {
			d.sanitizer = sanitizer
		}
	}
}

// WithoutSanitizer makes SetHTML parse markup verbatim.
func WithoutSanitizer() Option {
	return func(d *Document) {
		d.sanitizer = nil
	}
}

// WithCustomElements defines custom element names up front. Invalid names
// are skipped; use Define to get an error for them.
func WithCustomElements(names ...string) Option {
	return func(d *Document) {
		for _, name := range names {
			_ = d.Define(name)
		}
	}
}

// Document owns a tree rooted at a document node with html, head and body
// elements, plus the side tables that hold per-node state.
type Document struct {
	mu sync.RWMutex

	root *Node
	head *Node
	body *Node

	sanitizer Sanitizer
	custom    map[string]struct{}
	listeners map[*Node][]binding
	meta      map[*Node]any
}

// NewDocument creates an empty document.
func NewDocument(options ...Option) *Document {
	d := &Document{
		sanitizer: defaultSanitizer(),
		custom:    make(map[string]struct{}),
		listeners: make(map[*Node][]binding),
		meta:      make(map[*Node]any),
	}

	d.root = &Node{Type: html.DocumentNode}
	htmlNode := &Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html}
	d.head = &Node{Type: html.ElementNode, Data: "head", DataAtom: atom.Head}
	d.body = &Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	htmlNode.AppendChild(d.head)
	htmlNode.AppendChild(d.body)
	d.root.AppendChild(&Node{Type: html.DoctypeNode, Data: "html"})
	d.root.AppendChild(htmlNode)

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	return d
}

var (
	uiPolicyOnce sync.Once
	uiPolicy     *bluemonday.Policy
)

// defaultSanitizer extends the UGC policy with the markup UI templates are
// made of: classes, inline styles, form controls and sectioning elements.
// Scripts and event handler attributes are still removed.
func defaultSanitizer() Sanitizer {
	uiPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowElements(uiElements...)
		policy.AllowNoAttrs().OnElements(uiElements...)
		policy.AllowAttrs("class").Globally()
		policy.AllowAttrs("style").Globally()
		policy.AllowStyles(uiStyleProperties...).Globally()
		policy.AllowAttrs("role").Globally()
		policy.AllowAttrs("type").OnElements("button", "input")
		policy.AllowAttrs("name", "value", "disabled").OnElements("button", "input", "select", "textarea", "option")
		policy.AllowAttrs("placeholder", "checked", "readonly", "required", "min", "max", "step", "maxlength", "pattern", "autocomplete").OnElements("input", "textarea")
		policy.AllowAttrs("selected").OnElements("option")
		policy.AllowAttrs("multiple").OnElements("select", "input")
		policy.AllowAttrs("rows", "cols").OnElements("textarea")
		policy.AllowAttrs("for").OnElements("label", "output")
		policy.AllowAttrs("open").OnElements("details", "dialog")
		policy.AllowDataAttributes()
		uiPolicy = policy
	})
	return uiPolicy
}

var uiElements = []string{
	"button", "datalist", "dialog", "fieldset", "form", "input", "label",
	"legend", "meter", "optgroup", "option", "output", "progress", "select",
	"textarea", "article", "aside", "footer", "header", "main", "nav",
	"section", "search",
}

var uiStyleProperties = []string{
	"align-items", "background", "background-color", "border", "border-radius",
	"color", "display", "flex", "flex-direction", "font-family", "font-size",
	"font-style", "font-weight", "gap", "grid-template-columns", "height",
	"justify-content", "line-height", "margin", "margin-bottom", "margin-left",
	"margin-right", "margin-top", "max-width", "min-width", "opacity",
	"padding", "padding-bottom", "padding-left", "padding-right", "padding-top",
	"text-align", "text-decoration", "width",
}

// Root returns the document node.
func (d *Document) Root() *Node {
	return d.root
}

// Head returns the document's head element.
func (d *Document) Head() *Node {
	return d.head
}

// Body returns the document's body element.
func (d *Document) Body() *Node {
	return d.body
}

// Define registers a custom element name so CreateElement accepts it.
func (d *Document) Define(name string) error {
	normalized := normalizeTag(name)
	if !validCustomElementName(normalized) {
		return fmt.Errorf("%w: %q", ErrInvalidCustomElement, name)
	}
	if _, known := knownElements[normalized]; known {
		return fmt.Errorf("%w: %q is a built-in element", ErrInvalidCustomElement, name)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.custom[normalized] = struct{}{}
	return nil
}

// Defined reports whether tag can be constructed by CreateElement.
func (d *Document) Defined(tag string) bool {
	name := normalizeTag(tag)
	if _, ok := knownElements[name]; ok {
		return true
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.custom[name]
	return ok
}

// CreateElement constructs a detached element. Tags are matched case
// insensitively and stored lowercase.
func (d *Document) CreateElement(tag string) (*Node, error) {
	if !d.Defined(tag) {
		return nil, &InvalidTagError{Tag: tag}
	}
	name := normalizeTag(tag)
	return &Node{
		Type:     html.ElementNode,
		Data:     name,
		DataAtom: atom.Lookup([]byte(name)),
	}, nil
}

// CreateTextNode constructs a detached text node.
func (d *Document) CreateTextNode(text string) *Node {
	return &Node{Type: html.TextNode, Data: text}
}
