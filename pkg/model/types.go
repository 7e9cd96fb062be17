package model

import internalmodel "github.com/goliatone/go-elements/internal/model"

// Template re-exports the internal template type.
type Template = internalmodel.Template

type EventBinding = internalmodel.EventBinding
type Wiring = internalmodel.Wiring
type NodeMap = internalmodel.NodeMap

// Merge returns base overridden by every field present in override.
func Merge(base, override Template) Template {
	return internalmodel.Merge(base, override)
}

// FromTag returns a template that only names a tag.
func FromTag(tag string) Template {
	return internalmodel.FromTag(tag)
}

// On builds an EventBinding.
var On = internalmodel.On

// Wire builds a single NodeMap entry.
var Wire = internalmodel.Wire
