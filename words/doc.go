// Package words turns positioned glyphs into words.
//
// Two extractors are provided, both implementing [Extractor]:
//
//   - [NearestNeighbourExtractor] links every glyph to the closest glyph that
//     starts near where it ends, using the cluster package. It copes with
//     glyphs painted in any order.
//   - [StreamExtractor] splits the glyphs in painting order. It is cheaper but
//     relies on the content stream painting words left to right.
//
// # Usage
//
//	words, err := words.Extract(glyphs, words.DefaultNearestNeighbourOptions())
//
// Each extractor accepts only its own options type. Passing the wrong one, or
// options with a nil required function, fails when the extractor is built:
//
//	_, err := words.NewStreamExtractor(words.DefaultNearestNeighbourOptions())
//	errors.Is(err, words.ErrInvalidOptions) // true
//
// # Defaults
//
// Two glyphs may be linked when the gap from the end of the first baseline to
// the start of the second is at most [DefaultMaxDistance]: a fifth of the
// largest width or point size of the pair, doubled for rotated text.
// Whitespace glyphs never start a search and are never linked to, so they end
// up as single-glyph words.
//
// With GroupByOrientation (the default) glyphs are clustered per orientation.
// Axis-aligned text is measured with the Manhattan distance and everything
// else with the Euclidean distance.
package words
