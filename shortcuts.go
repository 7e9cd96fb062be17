package elements

import (
	"io/fs"

	"github.com/goliatone/go-elements/pkg/materialize"
	"github.com/goliatone/go-elements/pkg/shortcuts"
)

// DefaultShortcutsFS exposes the bundled shortcut documents so callers can
// extend them or serve them alongside their own.
func DefaultShortcutsFS() fs.FS {
	return shortcuts.EmbeddedFS()
}

// NewShortcuts loads the shortcut documents of fsys into a registry that
// builds with m, or with the default materializer when m is nil.
func NewShortcuts(fsys fs.FS, m *materialize.Materializer) (*shortcuts.Registry, error) {
	defs, err := shortcuts.LoadFS(fsys)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = Default()
	}
	return shortcuts.New(defs, shortcuts.WithMaterializer(m))
}
