package words

import (
	"math"

	"github.com/tsawler/glyphword/model"
)

// thresholdFactor scales the largest glyph dimension of a pair into the
// maximum gap between them.
const thresholdFactor = 0.2

// DefaultMaxDistance returns the largest of both glyphs' rectangle widths,
// advance widths and point sizes, times 0.2. The result is doubled when
// either glyph is not axis-aligned.
func DefaultMaxDistance(a, b model.Glyph) float64 {
	maxDist := math.Max(
		math.Max(math.Max(math.Abs(a.BBox.Width), math.Abs(b.BBox.Width)),
			math.Max(math.Abs(a.Width), math.Abs(b.Width))),
		math.Max(a.PointSize, b.PointSize),
	) * thresholdFactor

	if a.Orientation == model.Other || b.Orientation == model.Other {
		return 2 * maxDist
	}
	return maxDist
}

// NotWhitespace rejects candidates whose text is empty or whitespace, so a
// space ends a word instead of extending it.
func NotWhitespace(_, candidate model.Glyph) bool {
	return !candidate.IsWhitespace()
}

// PivotNotWhitespace keeps whitespace glyphs from starting a search.
func PivotNotWhitespace(g model.Glyph) bool {
	return !g.IsWhitespace()
}

// LeadingAnchor is where a neighbour arrives at a glyph: the start of its
// baseline.
func LeadingAnchor(g model.Glyph) model.Point {
	return g.StartBaseline
}

// TrailingAnchor is where the search for the next glyph starts: the end of
// the glyph's baseline.
func TrailingAnchor(g model.Glyph) model.Point {
	return g.EndBaseline
}
