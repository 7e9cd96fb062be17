// Package dom provides the host document the element materializer builds
// into. Nodes are golang.org/x/net/html nodes so trees can be inspected,
// walked and rendered with the standard x/net/html tooling, while the
// Document layers browser-like behaviour on top: element construction by tag
// name, class and style mutation, sanitised markup parsing, event listeners
// and an identity-keyed side table for per-node metadata.
//
// Node mutation is not synchronised; callers build a tree from a single
// goroutine. The Document's own side tables (listeners, metadata, custom
// element definitions) are guarded so read-mostly callers such as shortcut
// registries can share one Document.
package dom
