// Package typeset produces positioned glyphs from a string, the way a content
// stream interpreter would report them for text painted with a given font.
//
// Two sources are provided. [Layout] places runes one by one with an
// x/image font.Face, applying pair kerning. [Shape] runs full OpenType
// shaping with go-text/typesetting, so ligatures arrive as a single glyph
// that carries several runes.
//
// Both place the text on a baseline starting at Options.Origin and turned
// counter-clockwise by Options.Angle, in page space (Y up).
package typeset
