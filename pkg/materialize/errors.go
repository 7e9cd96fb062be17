package materialize

import "errors"

var (
	// ErrIndexOutOfRange is returned when a NodeMap names a node index the
	// batch does not contain.
	ErrIndexOutOfRange = errors.New("materialize: node map index out of range")
	// ErrNotGenerated is returned by Remake for nodes that were not produced
	// by a materializer sharing the same document.
	ErrNotGenerated = errors.New("materialize: node was not generated from a template")
)
