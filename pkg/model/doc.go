// Package model defines the template schema callers use to describe
// elements: tag, id, class list, styles, attributes, text, markup, event
// bindings and children, plus runtime-only references to existing nodes and
// a parent to attach to. Templates are plain values; Merge combines a
// default template with per-call overrides without aliasing either input,
// and NodeMap describes post-hoc parent/child wiring over a flat batch of
// materialized nodes. Types live in internal/model and are aliased here.
package model
