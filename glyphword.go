// Package glyphword provides a fluent API for grouping positioned glyphs into
// words.
//
// Basic usage:
//
//	words, err := glyphword.From(glyphs).Words()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	text, err := glyphword.From(glyphs).
//	    Parallelism(4).
//	    NoOrientationGrouping().
//	    Text()
//
// For full control over distance measures and filters, use the words package
// directly.
package glyphword

import (
	"github.com/tsawler/glyphword/model"
)

// From returns an Extractor over glyphs for fluent configuration.
// The slice is not modified.
//
// Example:
//
//	words, err := glyphword.From(glyphs).Words()
func From(glyphs []model.Glyph) *Extractor {
	return &Extractor{
		glyphs:  glyphs,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	text := glyphword.Must(glyphword.From(glyphs).Text())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
