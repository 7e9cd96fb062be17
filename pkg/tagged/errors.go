package tagged

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is returned for a child value that cannot be turned into
// a node.
var ErrInvalidValue = errors.New("tagged: invalid value")

// InvalidHostError is returned when the host value is not a node, a
// template or a tag name.
type InvalidHostError struct {
	Kind Kind
}

func (e *InvalidHostError) Error() string {
	if e.Kind == KindInvalid {
		return "tagged: host requires a node, a template or a tag name"
	}
	return fmt.Sprintf("tagged: host requires a node, a template or a tag name, got %s", e.Kind)
}
