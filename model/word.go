package model

import (
	"errors"
	"strings"

	"github.com/tsawler/glyphword/text"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyWord is returned when a word is built from no glyphs.
var ErrEmptyWord = errors.New("model: word must contain at least one glyph")

// Word is an ordered group of glyphs that were found to belong together.
// The glyph order is the order in which the glyphs were chained, which for
// well-formed text is the reading order of the word.
type Word struct {
	// Text is the concatenated text of the glyphs in order.
	Text string

	// BBox is the union of the glyph rectangles.
	BBox BBox

	// Orientation is shared by all glyphs, or Other when they disagree.
	Orientation Orientation

	// FontName is the font of the first glyph.
	FontName string

	// Direction is the dominant writing direction of Text.
	Direction text.Direction

	glyphs []Glyph
}

// NewWord creates a word from an ordered glyph group. The slice is copied.
func NewWord(glyphs []Glyph) (Word, error) {
	if len(glyphs) == 0 {
		return Word{}, ErrEmptyWord
	}

	owned := make([]Glyph, len(glyphs))
	copy(owned, glyphs)

	var sb strings.Builder
	bbox := owned[0].BBox
	orientation := owned[0].Orientation
	for i, g := range owned {
		sb.WriteString(g.Text)
		if i > 0 {
			bbox = bbox.Union(g.BBox)
		}
		if g.Orientation != orientation {
			orientation = Other
		}
	}

	txt := sb.String()
	return Word{
		Text:        txt,
		BBox:        bbox,
		Orientation: orientation,
		FontName:    owned[0].FontName,
		Direction:   text.DetectDirection(txt),
		glyphs:      owned,
	}, nil
}

// Glyphs returns a copy of the word's glyphs in chain order.
func (w Word) Glyphs() []Glyph {
	out := make([]Glyph, len(w.glyphs))
	copy(out, w.glyphs)
	return out
}

// Len returns the number of glyphs in the word.
func (w Word) Len() int {
	return len(w.glyphs)
}

// NormalizedText returns Text in Unicode NFKC form, which folds ligature
// glyphs such as "ﬁ" into their component letters.
func (w Word) NormalizedText() string {
	return norm.NFKC.String(w.Text)
}

// IsWhitespace reports whether the word holds only whitespace.
func (w Word) IsWhitespace() bool {
	return strings.TrimSpace(w.Text) == ""
}
