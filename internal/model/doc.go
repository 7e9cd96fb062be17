// Package model holds the template types shared by the materializer, the
// tagged-template parser and the shortcut registry. pkg/model re-exports
// them for callers.
package model
