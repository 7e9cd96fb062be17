// Package shortcuts exposes named default templates as callables. Each
// Shortcut parses its call (text segments interleaved with values) with the
// default template as host, so
//
//	reg, _ := shortcuts.NewDefault()
//	p, _ := reg.MustShortcut("p").Format("Hello {}", tagged.Tag("br"))
//
// builds <p>Hello <br/></p>. Void entries (br, img, input and the other
// self-closing elements) take no content and are materialized once, when
// the registry is built. Registries are read-only after construction.
package shortcuts
