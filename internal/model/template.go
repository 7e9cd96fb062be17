package model

import (
	"strings"

	"github.com/goliatone/go-elements/pkg/dom"
)

// Template describes one element to materialize. A field counts as present
// when it holds a non-zero value. Event bindings and node references exist
// only at runtime and are never serialised.
type Template struct {
	Tag              string            `json:"tag,omitempty" yaml:"tag,omitempty"`
	ID               string            `json:"id,omitempty" yaml:"id,omitempty"`
	ClassList        []string          `json:"classList,omitempty" yaml:"classList,omitempty"`
	Styles           map[string]string `json:"styles,omitempty" yaml:"styles,omitempty"`
	Attributes       map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	EventBindings    []EventBinding    `json:"-" yaml:"-"`
	Text             string            `json:"text,omitempty" yaml:"text,omitempty"`
	HTML             string            `json:"html,omitempty" yaml:"html,omitempty"`
	Children         []Template        `json:"children,omitempty" yaml:"children,omitempty"`
	ExistingChildren []*dom.Node       `json:"-" yaml:"-"`
	Parent           *dom.Node         `json:"-" yaml:"-"`
	// Void marks a self-closing element that takes no text or children.
	Void bool `json:"void,omitempty" yaml:"void,omitempty"`
}

// EventBinding attaches Listener to Event on the materialized node.
type EventBinding struct {
	Event    string
	Listener dom.Listener
}

// On is shorthand for an EventBinding.
func On(event string, listener dom.Listener) EventBinding {
	return EventBinding{Event: event, Listener: listener}
}

// FromTag returns a template that only names a tag.
func FromTag(tag string) Template {
	return Template{Tag: strings.TrimSpace(tag)}
}

// IsZero reports whether no field of the template is present.
func (t Template) IsZero() bool {
	return t.Tag == "" &&
		t.ID == "" &&
		len(t.ClassList) == 0 &&
		len(t.Styles) == 0 &&
		len(t.Attributes) == 0 &&
		len(t.EventBindings) == 0 &&
		t.Text == "" &&
		t.HTML == "" &&
		len(t.Children) == 0 &&
		len(t.ExistingChildren) == 0 &&
		t.Parent == nil &&
		!t.Void
}

// Clone returns a copy that shares no slices or maps with t. Node
// references and listeners are copied by reference.
func (t Template) Clone() Template {
	out := t
	out.ClassList = cloneStrings(t.ClassList)
	out.Styles = cloneStringMap(t.Styles)
	out.Attributes = cloneStringMap(t.Attributes)
	if len(t.EventBindings) > 0 {
		out.EventBindings = append([]EventBinding(nil), t.EventBindings...)
	} else {
		out.EventBindings = nil
	}
	if len(t.Children) > 0 {
		out.Children = make([]Template, len(t.Children))
		for idx, child := range t.Children {
			out.Children[idx] = child.Clone()
		}
	} else {
		out.Children = nil
	}
	if len(t.ExistingChildren) > 0 {
		out.ExistingChildren = append([]*dom.Node(nil), t.ExistingChildren...)
	} else {
		out.ExistingChildren = nil
	}
	return out
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	return append([]string(nil), in...)
}

func cloneStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
