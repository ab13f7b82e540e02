// Package model provides the data types shared by every glyphword package.
//
// Glyphs come in from an external producer (a PDF content-stream interpreter,
// an OCR engine or a typesetter) and words come out of the word extractors.
// Nothing in this package performs clustering.
//
// # Glyphs
//
// A [Glyph] carries its text, its glyph rectangle, two baseline anchors and
// the font metrics the extractors need:
//
//	g := model.Glyph{
//	    Text:          "a",
//	    BBox:          model.NewBBox(10, 100, 6, 9),
//	    StartBaseline: model.Point{X: 10, Y: 100},
//	    EndBaseline:   model.Point{X: 16, Y: 100},
//	    Width:         6,
//	    PointSize:     12,
//	}
//
// The StartBaseline is the leading anchor (where a neighbour arrives) and the
// EndBaseline is the trailing anchor (where the search for the next glyph
// begins).
//
// # Orientation
//
// [Orientation] is a closed set: [Horizontal], [Rotate90], [Rotate180],
// [Rotate270] and [Other]. [OrientationOf] classifies a baseline.
//
// # Words
//
// A [Word] wraps one ordered group of glyphs. It is immutable once built by
// [NewWord]; [Word.Glyphs] returns a copy.
//
// # Geometry
//
//   - [Point] - 2D point with Euclidean and Manhattan distances
//   - [BBox] - bounding box with union and overlap tests
//   - [Matrix] - 2D affine transformation matrix
package model
