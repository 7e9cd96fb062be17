package testsupport

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/goliatone/go-elements/pkg/document"
	"github.com/goliatone/go-elements/pkg/dom"
	"github.com/goliatone/go-elements/pkg/materialize"
	"github.com/goliatone/go-elements/pkg/model"
)

// MustLoadDocument reads a batch document fixture, failing the test on
// error.
func MustLoadDocument(t testing.TB, path string) document.Document {
	t.Helper()

	doc, err := document.LoadFile(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// MustCreate materializes tpl with m, failing the test on error.
func MustCreate(t testing.TB, m *materialize.Materializer, tpl model.Template) *dom.Node {
	t.Helper()

	node, err := m.Create(tpl)
	if err != nil {
		t.Fatalf("create %q: %v", tpl.Tag, err)
	}
	return node
}

// AssertHTML compares the serialised form of n with want.
func AssertHTML(t testing.TB, want string, n *dom.Node) {
	t.Helper()

	if diff := cmp.Diff(want, dom.OuterHTML(n)); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

// ChildTags returns the tag of every element child of n, in order.
func ChildTags(n *dom.Node) []string {
	var tags []string
	for _, child := range dom.Children(n) {
		if child.Type == html.ElementNode {
			tags = append(tags, child.Data)
		}
	}
	return tags
}
