package shortcuts

import "errors"

var (
	// ErrUnknownShortcut is returned for names the registry does not hold.
	ErrUnknownShortcut = errors.New("shortcuts: unknown shortcut")
	// ErrVoidShortcut is returned when a void entry is called with content.
	ErrVoidShortcut = errors.New("shortcuts: void element takes no content")
)

// NotInstantiableError is returned by every operation of a Registry that
// was not built by New or NewDefault.
type NotInstantiableError struct{}

func (*NotInstantiableError) Error() string {
	return "shortcuts: registry must be constructed with shortcuts.New or shortcuts.NewDefault"
}
