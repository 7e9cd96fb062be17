package elements

import (
	"sync"

	"github.com/goliatone/go-elements/pkg/dom"
	"github.com/goliatone/go-elements/pkg/materialize"
	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/shortcuts"
	"github.com/goliatone/go-elements/pkg/tagged"
)

// Template describes one element; alias exported via the root package for
// convenience.
type Template = model.Template

// Node is a materialized host tree node.
type Node = dom.Node

// NodeMap wires a flat batch of nodes into parents and children.
type NodeMap = model.NodeMap

// EventBinding attaches a listener while materializing.
type EventBinding = model.EventBinding

// Event is delivered to listeners by Document().Dispatch.
type Event = dom.Event

// Value is one interpolated slot of a tagged call.
type Value = tagged.Value

// InvalidTagError reports an element that cannot be constructed.
type InvalidTagError = dom.InvalidTagError

// InvalidHostError reports a tagged call whose host is not a node, a
// template or a tag name.
type InvalidHostError = tagged.InvalidHostError

// NotInstantiableError reports use of a registry that was not constructed.
type NotInstantiableError = shortcuts.NotInstantiableError

var (
	defaultOnce         sync.Once
	defaultMaterializer *materialize.Materializer

	shortcutsOnce sync.Once
	shortcutsReg  *shortcuts.Registry
	shortcutsErr  error
)

// Default returns the package-level materializer backing the functions of
// this package. It builds into its own document, which lives for the whole
// process and keeps the template and listeners of every node it created.
// Long-running callers should pass discarded trees to Forget, or use their
// own materializer.
func Default() *materialize.Materializer {
	defaultOnce.Do(func() {
		defaultMaterializer = materialize.New()
	})
	return defaultMaterializer
}

// Document returns the document of the default materializer.
func Document() *dom.Document {
	return Default().Document()
}

// Create materializes tpl with the default materializer.
func Create(tpl Template) (*Node, error) {
	return Default().Create(tpl)
}

// CreateMany materializes templates and applies nodeMap, which may be nil.
func CreateMany(templates []Template, nodeMap NodeMap) ([]*Node, error) {
	return Default().CreateMany(templates, nodeMap)
}

// Merge returns base overridden by every field present in override.
func Merge(base, override Template) Template {
	return model.Merge(base, override)
}

// Text creates a detached text node.
func Text(text string) *Node {
	return Default().Text(text)
}

// IsGenerated reports whether n was materialized by the default
// materializer.
func IsGenerated(n *Node) bool {
	return Default().IsGenerated(n)
}

// GetTemplate returns a copy of the template n was materialized from.
func GetTemplate(n *Node) (Template, bool) {
	return Default().Template(n)
}

// UpdateTemplate merges override into the template recorded for n.
func UpdateTemplate(n *Node, override Template) Template {
	return Default().UpdateTemplate(n, override)
}

// Remake materializes a new node from the template recorded for n.
func Remake(n *Node) (*Node, error) {
	return Default().Remake(n)
}

// Forget releases the template and listeners the default document holds
// for n and its descendants. IsGenerated reports false for them afterwards.
func Forget(n *Node) {
	Default().Forget(n)
}

// Parse builds a node from segments and values, taking the host from the
// first value.
func Parse(segments []string, values ...Value) (*Node, error) {
	return tagged.Parse(Default(), segments, values...)
}

// Format is Parse over a {} placeholder string.
func Format(format string, values ...Value) (*Node, error) {
	return tagged.Format(Default(), format, values...)
}

// Shortcuts returns the default HTML shortcut registry, built on first use
// with the default materializer.
func Shortcuts() (*shortcuts.Registry, error) {
	shortcutsOnce.Do(func() {
		shortcutsReg, shortcutsErr = shortcuts.NewDefault(shortcuts.WithMaterializer(Default()))
	})
	return shortcutsReg, shortcutsErr
}

// E calls the default shortcut name with a {} placeholder string, e.g.
// E("p", "Hello {}", tagged.Tag("br")).
func E(name, format string, values ...Value) (*Node, error) {
	reg, err := Shortcuts()
	if err != nil {
		return nil, err
	}
	return reg.Format(name, format, values...)
}
