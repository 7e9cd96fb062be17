// Package elements builds HTML element trees from plain data. A Template
// names a tag and declares id, classes, styles, attributes, text, markup,
// event bindings and children; Create turns it into a live node of a
// dom.Document, CreateMany materializes a flat batch and wires it with a
// NodeMap, and Format/Parse splice text and nodes into a host element the
// way a tagged template literal would. Shortcuts exposes one callable per
// HTML element.
//
// The package-level functions share one default materializer. Callers that
// need their own document use pkg/materialize, pkg/tagged and pkg/shortcuts
// directly.
package elements
