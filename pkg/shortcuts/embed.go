package shortcuts

import (
	"embed"
	"io/fs"
)

//go:embed defaults/*
var embeddedDefaults embed.FS

// EmbeddedFS returns the bundled shortcut documents. NewDefault loads it.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedDefaults, "defaults")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}
