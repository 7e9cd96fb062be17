package dom

import (
	"errors"
	"fmt"
)

var (
	// ErrHierarchy reports a tree mutation the document refuses, such as
	// appending a node to one of its descendants or to a text node.
	ErrHierarchy = errors.New("dom: hierarchy request error")
	// ErrNilNode is returned when a nil node is passed to a tree operation.
	ErrNilNode = errors.New("dom: node is nil")
	// ErrInvalidCustomElement is returned by Define for names that are not
	// valid custom element names.
	ErrInvalidCustomElement = errors.New("dom: invalid custom element name")
	// ErrInvalidStyle is returned by SetStyle for a value that is not a single
	// CSS declaration value, or when the existing style attribute does not
	// parse.
	ErrInvalidStyle = errors.New("dom: invalid style")
	// ErrInvalidAttributeName reports an attribute name that cannot be
	// serialised.
	ErrInvalidAttributeName = errors.New("dom: invalid attribute name")
)

// InvalidTagError is returned when an element cannot be constructed because
// its tag does not name a known or defined element.
type InvalidTagError struct {
	Tag string
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("dom: invalid tag name %q", e.Tag)
}
