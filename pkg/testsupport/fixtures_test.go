package testsupport

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-elements/pkg/materialize"
	"github.com/goliatone/go-elements/pkg/model"
)

func TestHelpers(t *testing.T) {
	m := materialize.New()
	node := MustCreate(t, m, model.Template{
		Tag:      "nav",
		Text:     "menu",
		Children: []model.Template{{Tag: "a"}, {Tag: "a"}, {Tag: "span"}},
	})

	AssertHTML(t, "<nav>menu<a></a><a></a><span></span></nav>", node)
	if diff := cmp.Diff([]string{"a", "a", "span"}, ChildTags(node)); diff != "" {
		t.Fatalf("child tags mismatch (-want +got):\n%s", diff)
	}
}

func TestMustLoadDocument(t *testing.T) {
	doc := MustLoadDocument(t, "../document/testdata/card.yaml")
	if len(doc.Templates) != 3 {
		t.Fatalf("expected 3 templates, got %d", len(doc.Templates))
	}
}
