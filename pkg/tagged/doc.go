// Package tagged builds an element from interleaved text segments and
// values, the Go counterpart of a tagged template literal:
//
//	node, err := tagged.Format(m, "{}Hello {}, welcome back{}",
//	    tagged.Tag("p"), tagged.Template(model.Template{Tag: "strong", Text: name}), tagged.Text("!"))
//
// The first value is the host element; every following segment becomes a
// text child and every following value a child node, in order. ParseWith
// binds the host to a fixed template so the whole call is content.
package tagged
