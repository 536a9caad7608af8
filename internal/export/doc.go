// Package export serializes a built model to YAML so that emitters
// written in any language can consume it.
package export
