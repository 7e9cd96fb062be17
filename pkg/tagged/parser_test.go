package tagged_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-elements/pkg/dom"
	"github.com/goliatone/go-elements/pkg/materialize"
	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/tagged"
)

func TestParse_HostFromTag(t *testing.T) {
	m := materialize.New()

	node, err := tagged.Parse(m, []string{"ignored", "Hello ", "!"},
		tagged.Tag("p"),
		tagged.Template(model.Template{Tag: "strong", Text: "world"}),
	)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := dom.OuterHTML(node); got != "<p>Hello <strong>world</strong>!</p>" {
		t.Fatalf("unexpected markup %s", got)
	}
	if !m.IsGenerated(node) {
		t.Fatalf("expected materialized host")
	}
}

func TestParse_HostFromTemplateAndNode(t *testing.T) {
	m := materialize.New()

	node, err := tagged.Parse(m, []string{"", "x"}, tagged.Template(model.Template{Tag: "div", ID: "host"}))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := dom.OuterHTML(node); got != `<div id="host">x</div>` {
		t.Fatalf("unexpected markup %s", got)
	}

	existing, _ := m.Document().CreateElement("section")
	got, err := tagged.Parse(m, []string{"", "body"}, tagged.Node(existing))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != existing {
		t.Fatalf("expected existing node to be the host")
	}
	if m.IsGenerated(got) {
		t.Fatalf("existing host must not be marked generated")
	}
}

func TestParse_SkipsEmptySegments(t *testing.T) {
	m := materialize.New()

	node, err := tagged.Parse(m, []string{"", "", "", ""},
		tagged.Tag("ul"), tagged.Tag("li"), tagged.Tag("li"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var kinds []string
	for _, child := range dom.Children(node) {
		kinds = append(kinds, child.Data)
	}
	if diff := cmp.Diff([]string{"li", "li"}, kinds); diff != "" {
		t.Fatalf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_InvalidHost(t *testing.T) {
	m := materialize.New()

	cases := []struct {
		name   string
		values []tagged.Value
		kind   tagged.Kind
	}{
		{name: "no values", values: nil, kind: tagged.KindInvalid},
		{name: "text host", values: []tagged.Value{tagged.Text("p")}, kind: tagged.KindText},
		{name: "nil node", values: []tagged.Value{tagged.Node(nil)}, kind: tagged.KindInvalid},
		{name: "zero value", values: []tagged.Value{{}}, kind: tagged.KindInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tagged.Parse(m, []string{"", ""}, tc.values...)
			var hostErr *tagged.InvalidHostError
			if !errors.As(err, &hostErr) {
				t.Fatalf("expected InvalidHostError, got %v", err)
			}
			if hostErr.Kind != tc.kind {
				t.Fatalf("expected kind %s, got %s", tc.kind, hostErr.Kind)
			}
		})
	}
}

func TestParse_InvalidHostTag(t *testing.T) {
	m := materialize.New()

	_, err := tagged.Parse(m, []string{""}, tagged.Tag("nope"))
	var tagErr *dom.InvalidTagError
	if !errors.As(err, &tagErr) {
		t.Fatalf("expected InvalidTagError, got %v", err)
	}
}

func TestParse_InvalidChildValue(t *testing.T) {
	m := materialize.New()

	_, err := tagged.Parse(m, []string{"", "a", ""}, tagged.Tag("p"), tagged.Value{})
	if !errors.Is(err, tagged.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestParseWith_BoundHost(t *testing.T) {
	m := materialize.New()
	host := model.Template{Tag: "button", ClassList: []string{"btn"}}

	node, err := tagged.ParseWith(m, host, []string{"Save ", ""}, tagged.Text("now"))
	if err != nil {
		t.Fatalf("parse with: %v", err)
	}
	if got := dom.OuterHTML(node); got != `<button class="btn">Save now</button>` {
		t.Fatalf("unexpected markup %s", got)
	}
	if diff := cmp.Diff(model.Template{Tag: "button", ClassList: []string{"btn"}}, host); diff != "" {
		t.Fatalf("host template mutated (-want +got):\n%s", diff)
	}
}

func TestParseWith_ExtraValuesAppended(t *testing.T) {
	m := materialize.New()

	node, err := tagged.ParseWith(m, model.FromTag("div"), []string{"a"},
		tagged.Tag("hr"), tagged.Text("b"))
	if err != nil {
		t.Fatalf("parse with: %v", err)
	}
	if got := dom.OuterHTML(node); got != "<div>a<hr/>b</div>" {
		t.Fatalf("unexpected markup %s", got)
	}
}

func TestSplit(t *testing.T) {
	cases := map[string][]string{
		"":             {""},
		"plain":        {"plain"},
		"{}":           {"", ""},
		"a{}b{}c":      {"a", "b", "c"},
		"{}Hi {}!":     {"", "Hi ", "!"},
		"brace {{}} x": {"brace {} x"},
	}
	for in, want := range cases {
		if diff := cmp.Diff(want, tagged.Split(in)); diff != "" {
			t.Fatalf("split %q mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestFormat(t *testing.T) {
	m := materialize.New()

	node, err := tagged.Format(m, "{}Hello {}, welcome back{}",
		tagged.Tag("p"),
		tagged.Template(model.Template{Tag: "strong", Text: "Ada"}),
		tagged.Text("!"),
	)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got := dom.OuterHTML(node); got != "<p>Hello <strong>Ada</strong>, welcome back!</p>" {
		t.Fatalf("unexpected markup %s", got)
	}

	bound, err := tagged.FormatWith(m, model.FromTag("em"), "{} and {}", tagged.Text("x"), tagged.Text("y"))
	if err != nil {
		t.Fatalf("format with: %v", err)
	}
	if got := dom.TextContent(bound); got != "x and y" {
		t.Fatalf("unexpected text %q", got)
	}
}
