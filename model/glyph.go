package model

import (
	"image/color"
	"strings"
)

// Glyph is a single positioned character (or ligature) as it was painted on a
// page. Glyphs are produced by a content-stream interpreter, an OCR engine or a
// typesetter and are never modified by the word extractors.
type Glyph struct {
	// Text is the Unicode value of the glyph; a ligature may carry several runes.
	Text string

	// BBox is the glyph rectangle.
	BBox BBox

	// StartBaseline is where the glyph's baseline starts (the leading anchor).
	StartBaseline Point

	// EndBaseline is where the glyph's baseline ends (the trailing anchor).
	EndBaseline Point

	// Width is the advance width of the glyph in user space.
	Width float64

	// PointSize is the font size in points after the text matrix is applied.
	PointSize float64

	// FontName is the name of the font used to paint the glyph.
	FontName string

	// Orientation is the classified direction of the baseline.
	Orientation Orientation

	// Color is the fill color.
	Color color.RGBA
}

// IsWhitespace reports whether the glyph's text is empty or consists only of
// whitespace.
func (g Glyph) IsWhitespace() bool {
	return strings.TrimSpace(g.Text) == ""
}
