package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-elements/pkg/document"
	"github.com/goliatone/go-elements/pkg/model"
	"github.com/goliatone/go-elements/pkg/testsupport"
)

const cardFixture = "../../pkg/document/testdata/card.yaml"

type scriptedPrompter struct {
	answers []any
}

func (s *scriptedPrompter) next() (any, error) {
	if len(s.answers) == 0 {
		return nil, errors.New("script exhausted")
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *scriptedPrompter) Input(message, _ string, validate func(string) error) (string, error) {
	answer, err := s.next()
	if err != nil {
		return "", err
	}
	value, ok := answer.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected a string answer, got %v", message, answer)
	}
	if validate != nil {
		if err := validate(value); err != nil {
			return "", err
		}
	}
	return value, nil
}

func (s *scriptedPrompter) Confirm(message string, _ bool) (bool, error) {
	answer, err := s.next()
	if err != nil {
		return false, err
	}
	value, ok := answer.(bool)
	if !ok {
		return false, fmt.Errorf("%s: expected a bool answer, got %v", message, answer)
	}
	return value, nil
}

func TestRunBuilder(t *testing.T) {
	p := &scriptedPrompter{answers: []any{
		"div", "box", "a b", "hi",
		true, "title", "t",
		false,
		false,
		true,
		"p", "", "", "inner",
		false, false, false,
		false,
	}}

	result, err := runBuilder(p)
	if err != nil {
		t.Fatalf("run builder: %v", err)
	}
	if len(p.answers) != 0 {
		t.Fatalf("expected every answer to be consumed, %d left", len(p.answers))
	}
	if want := `<div id="box" class="a b" title="t">hi<p>inner</p></div>`; result.Preview != want {
		t.Fatalf("unexpected preview\nwant %s\ngot  %s", want, result.Preview)
	}

	doc, err := document.Parse([]byte(result.Document), "built.yaml")
	if err != nil {
		t.Fatalf("parse built document: %v", err)
	}
	want := document.Document{
		Title: "div",
		Templates: []model.Template{{
			Tag:        "div",
			ID:         "box",
			ClassList:  []string{"a", "b"},
			Attributes: map[string]string{"title": "t"},
			Text:       "hi",
			Children:   []model.Template{{Tag: "p", Text: "inner"}},
		}},
	}
	if diff := cmp.Diff(want, doc, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestRunBuilder_RejectsUnknownTag(t *testing.T) {
	p := &scriptedPrompter{answers: []any{"blink"}}

	if _, err := runBuilder(p); err == nil || !strings.Contains(err.Error(), "not an HTML element") {
		t.Fatalf("expected tag validation error, got %v", err)
	}
}

func TestRenderDocument_Fragment(t *testing.T) {
	doc := testsupport.MustLoadDocument(t, cardFixture)

	got, err := renderDocument(doc, renderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(got, `<article id="card"`) {
		t.Fatalf("unexpected fragment %s", got)
	}
}

func TestRenderDocument_DefaultPage(t *testing.T) {
	doc := testsupport.MustLoadDocument(t, cardFixture)

	got, err := renderDocument(doc, renderOptions{Page: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, fragment := range []string{"<title>Card</title>", `<h2>Pricing</h2>`, "</body>"} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected page to contain %q, got:\n%s", fragment, got)
		}
	}
}

func TestRenderFile_CustomLayout(t *testing.T) {
	dir := t.TempDir()
	layout := filepath.Join(dir, "layout.html")
	if err := os.WriteFile(layout, []byte("{{ title }}|{{ body|safe }}"), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}

	got, err := renderFile(cardFixture, renderOptions{Page: true, Layout: layout})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(got, `Card|<article id="card"`) {
		t.Fatalf("unexpected page %s", got)
	}
}

func TestWatchFile_CallsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	if err := os.WriteFile(path, []byte("templates: [{tag: p}]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for waiting := true; waiting; {
		select {
		case <-changed:
			waiting = false
		case <-ticker.C:
			if err := os.WriteFile(path, []byte("templates: [{tag: div}]\n"), 0o644); err != nil {
				t.Fatalf("rewrite: %v", err)
			}
		case <-deadline:
			t.Fatalf("timed out waiting for change notification")
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("watch returned error: %v", err)
	}
}
