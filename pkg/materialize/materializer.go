package materialize

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-elements/pkg/dom"
	"github.com/goliatone/go-elements/pkg/model"
)

// Option customises a Materializer.
type Option func(*Materializer)

// WithDocument builds into doc instead of a fresh document.
func WithDocument(doc *dom.Document) Option {
	return func(m *Materializer) {
		if doc != nil {
			m.doc = doc
		}
	}
}

// Materializer creates nodes from templates. It keeps no state of its own;
// the originating template of every node is recorded in the document's
// metadata side table.
type Materializer struct {
	doc *dom.Document
}

// New constructs a Materializer. Without WithDocument it owns a new
// dom.Document.
func New(options ...Option) *Materializer {
	m := &Materializer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	if m.doc == nil {
		m.doc = dom.NewDocument()
	}
	return m
}

// Document returns the document nodes are created in.
func (m *Materializer) Document() *dom.Document {
	return m.doc
}

// Create materializes tpl and its children into a new node. An invalid tag
// anywhere in the tree fails the call with a wrapped *dom.InvalidTagError,
// and an attribute name that cannot be serialised with
// dom.ErrInvalidAttributeName. Style values that do not parse are skipped.
// Nodes appended to external parents before a failure stay attached.
func (m *Materializer) Create(tpl model.Template) (*dom.Node, error) {
	b := &build{doc: m.doc}
	node, err := b.node(tpl, "template")
	if err != nil {
		b.discard()
		return nil, fmt.Errorf("materialize: %w", err)
	}
	return node, nil
}

// CreateMany materializes each template in order and then applies nodeMap,
// appending the listed child nodes to their parent for every entry. The
// map is not checked for cycles beyond what the document refuses, and a
// node listed under two parents ends up under the last one.
func (m *Materializer) CreateMany(templates []model.Template, nodeMap model.NodeMap) ([]*dom.Node, error) {
	nodes := make([]*dom.Node, 0, len(templates))
	for idx, tpl := range templates {
		b := &build{doc: m.doc}
		node, err := b.node(tpl, fmt.Sprintf("templates[%d]", idx))
		if err != nil {
			b.discard()
			return nil, fmt.Errorf("materialize: %w", err)
		}
		nodes = append(nodes, node)
	}

	for _, wiring := range nodeMap {
		parent, err := nodeAt(nodes, wiring.Parent)
		if err != nil {
			return nil, err
		}
		for _, childIdx := range wiring.Children {
			child, err := nodeAt(nodes, childIdx)
			if err != nil {
				return nil, err
			}
			if err := m.doc.AppendChild(parent, child); err != nil {
				return nil, fmt.Errorf("materialize: wire %d -> %d: %w", wiring.Parent, childIdx, err)
			}
		}
	}
	return nodes, nil
}

// Text creates a detached text node.
func (m *Materializer) Text(text string) *dom.Node {
	return m.doc.CreateTextNode(text)
}

// IsGenerated reports whether n carries an originating template.
func (m *Materializer) IsGenerated(n *dom.Node) bool {
	_, ok := m.Template(n)
	return ok
}

// Template returns a copy of the template n was materialized from.
func (m *Materializer) Template(n *dom.Node) (model.Template, bool) {
	value, ok := m.doc.Meta(n)
	if !ok {
		return model.Template{}, false
	}
	tpl, ok := value.(model.Template)
	if !ok {
		return model.Template{}, false
	}
	return tpl.Clone(), true
}

// UpdateTemplate merges override into the template recorded for n and
// stores the result, which is also returned. The node itself is not
// changed; Remake builds a node from the updated template.
func (m *Materializer) UpdateTemplate(n *dom.Node, override model.Template) model.Template {
	current, _ := m.Template(n)
	merged := model.Merge(current, override)
	m.doc.SetMeta(n, merged.Clone())
	return merged
}

// Remake materializes a new node from the template recorded for n.
func (m *Materializer) Remake(n *dom.Node) (*dom.Node, error) {
	tpl, ok := m.Template(n)
	if !ok {
		return nil, ErrNotGenerated
	}
	return m.Create(tpl)
}

// Forget drops the recorded templates and listeners of n and its
// descendants. Call it once a tree is discarded; the document otherwise
// keeps them for as long as it lives.
func (m *Materializer) Forget(n *dom.Node) {
	m.doc.ForgetTree(n)
}

func nodeAt(nodes []*dom.Node, idx int) (*dom.Node, error) {
	if idx < 0 || idx >= len(nodes) {
		return nil, fmt.Errorf("%w: %d (batch has %d nodes)", ErrIndexOutOfRange, idx, len(nodes))
	}
	return nodes[idx], nil
}

// build tracks the nodes created during one call so a failed call leaves
// no metadata behind.
type build struct {
	doc     *dom.Document
	created []*dom.Node
}

func (b *build) node(tpl model.Template, path string) (*dom.Node, error) {
	doc := b.doc

	node, err := doc.CreateElement(tpl.Tag)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	b.created = append(b.created, node)
	doc.SetMeta(node, tpl.Clone())

	if tpl.ID != "" {
		doc.SetID(node, tpl.ID)
	}
	for _, class := range tpl.ClassList {
		doc.AddClass(node, class)
	}
	// A rejected style value is dropped and the other declarations stay.
	for _, property := range sortedKeys(tpl.Styles) {
		_ = doc.SetStyle(node, property, tpl.Styles[property])
	}
	for _, name := range sortedKeys(tpl.Attributes) {
		if !dom.ValidAttributeName(name) {
			return nil, fmt.Errorf("%s: attributes: %w: %q", path, dom.ErrInvalidAttributeName, name)
		}
		doc.SetAttribute(node, name, tpl.Attributes[name])
	}
	if tpl.Text != "" {
		if err := doc.AppendChild(node, doc.CreateTextNode(tpl.Text)); err != nil {
			return nil, fmt.Errorf("%s: text: %w", path, err)
		}
	}
	if tpl.HTML != "" {
		if err := doc.SetHTML(node, tpl.HTML); err != nil {
			return nil, fmt.Errorf("%s: html: %w", path, err)
		}
	}
	for _, binding := range tpl.EventBindings {
		doc.AddEventListener(node, binding.Event, binding.Listener)
	}
	for idx, childTpl := range tpl.Children {
		child, err := b.node(childTpl, fmt.Sprintf("%s.children[%d]", path, idx))
		if err != nil {
			return nil, err
		}
		if err := doc.AppendChild(node, child); err != nil {
			return nil, fmt.Errorf("%s.children[%d]: %w", path, idx, err)
		}
	}
	for idx, existing := range tpl.ExistingChildren {
		if err := doc.AppendChild(node, existing); err != nil {
			return nil, fmt.Errorf("%s.existingChildren[%d]: %w", path, idx, err)
		}
	}
	if tpl.Parent != nil {
		if err := doc.AppendChild(tpl.Parent, node); err != nil {
			return nil, fmt.Errorf("%s: parent: %w", path, err)
		}
	}
	return node, nil
}

func (b *build) discard() {
	for _, node := range b.created {
		b.doc.Forget(node)
	}
	b.created = nil
}

// sortedKeys gives map-valued declarations a stable application order.
func sortedKeys(in map[string]string) []string {
	if len(in) == 0 {
		return nil
	}
	keys := make([]string, 0, len(in))
	for key := range in {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
