// Package materialize turns templates into live nodes of a dom.Document.
//
// Create applies a template's declarations in a fixed order: construct the
// element, id, classes, styles, attributes, text, markup, event listeners,
// templated children, existing children and finally attachment to the
// parent. Markup is applied after text and replaces it when both are given.
// CreateMany materializes a flat list and then wires parents and children
// from a NodeMap.
package materialize
