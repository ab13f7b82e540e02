// Package text classifies the writing direction of glyph and word text.
//
// Word extraction chains glyphs by geometry, so the glyphs of a right-to-left
// word come out in visual (left-to-right) order. The [Direction] of a word
// tells a consumer when the text has to be reversed:
//
//	if word.Direction == text.RTL {
//	    logical := text.Reverse(word.Text)
//	}
//
// Directions are taken from the Unicode bidirectional class of each rune:
//
//   - LTR - strong left-to-right (Latin, Cyrillic, Greek, CJK, etc.)
//   - RTL - strong right-to-left (Arabic, Hebrew, Syriac, Thaana, N'Ko)
//   - Neutral - digits, punctuation, whitespace and symbols
package text
